package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/leave"
	leaveerrors "github.com/nearzk/ddd-leave-sample/internal/leave/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLeaveDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&leave.LeaveRow{}, &leave.ApprovalInfoRow{}, &leave.LeaveEventRow{}))
	return db
}

var errEventStore = errors.New("event store unavailable")

// failingEvents delegates to the real repository but fails every event write.
type failingEvents struct {
	leave.Repository
}

func (r failingEvents) WithinTx(ctx context.Context, fn func(repo leave.Repository) error) error {
	return r.Repository.WithinTx(ctx, func(tx leave.Repository) error {
		return fn(failingEvents{tx})
	})
}

func (failingEvents) SaveEvent(context.Context, *leave.LeaveEventRow) error {
	return errEventStore
}

func newSQLiteDomain(repo leave.Repository, now time.Time) leave.DomainService {
	return leave.NewDomainService(repo, leave.NewFactory(nil), nil, leave.WithClock(fixedClock(now)))
}

func TestRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := leave.NewRepository(setupLeaveDB(t))

	row := approvingRow("l1")
	row.Version = 0
	require.NoError(t, repo.Save(ctx, &row))
	assert.Equal(t, int64(1), row.Version)

	got, err := repo.FindByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ApplicantID)
	assert.Equal(t, "a1", *got.ApproverID)
	assert.Equal(t, 3, got.LeaderMaxLevel)
	assert.Equal(t, int64(1), got.Version)
	assert.True(t, got.StartTime.Equal(t0))

	t.Run("full overwrite bumps version", func(t *testing.T) {
		update := *got
		update.Reason = "changed"
		update.ApproverID = nil
		update.ApproverName = nil
		update.ApproverLevel = nil
		require.NoError(t, repo.Save(ctx, &update))
		assert.Equal(t, int64(2), update.Version)

		reloaded, err := repo.FindByID(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, "changed", reloaded.Reason)
		assert.Nil(t, reloaded.ApproverID)
		assert.Equal(t, int64(2), reloaded.Version)
	})

	t.Run("negative stale version", func(t *testing.T) {
		stale := *got
		stale.Reason = "stale"

		err := repo.Save(ctx, &stale)

		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentModification)
		reloaded, _ := repo.FindByID(ctx, "l1")
		assert.Equal(t, "changed", reloaded.Reason)
	})

	t.Run("negative duplicate identity", func(t *testing.T) {
		dup := approvingRow("l1")
		dup.Version = 0

		err := repo.Save(ctx, &dup)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyExists)
	})

	t.Run("negative missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "nope")

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

// Walks the full chain of scenarios against a real database.
func TestDomainService_SQLite_ApprovalFlow(t *testing.T) {
	ctx := context.Background()
	db := setupLeaveDB(t)
	repo := leave.NewRepository(db)
	a1 := mustApprover(t, "a1", 1)
	a2 := mustApprover(t, "a2", 2)

	svc := newSQLiteDomain(repo, t0)
	created, err := svc.CreateRequest(ctx, newDraft(t), 3, a1)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproving, created.Status())
	assertApproverID(t, created, "a1")
	assert.Empty(t, created.HistoryApprovalInfos())

	require.NoError(t, created.RecordDecision(mustInfo(t, "i1", a1, leave.DecisionAgree, t0.Add(time.Hour))))
	agreed, err := newSQLiteDomain(repo, t0.Add(time.Hour)).SubmitApproval(ctx, created, &a2)
	require.NoError(t, err)
	assertApproverID(t, agreed, "a2")
	require.Len(t, agreed.HistoryApprovalInfos(), 1)

	byApprover, err := svc.QueryByApprover(ctx, "a2")
	require.NoError(t, err)
	require.Len(t, byApprover, 1)
	assert.Equal(t, created.ID(), byApprover[0].ID())

	require.NoError(t, agreed.RecordDecision(mustInfo(t, "i2", a2, leave.DecisionAgree, t0.Add(2*time.Hour))))
	approved, err := newSQLiteDomain(repo, t0.Add(2*time.Hour)).SubmitApproval(ctx, agreed, nil)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status())

	stored, err := svc.GetRequest(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, stored.Status())
	assert.True(t, stored.Approver().IsAbsent())
	assert.Equal(t, 2*time.Hour, stored.Duration())
	history := stored.HistoryApprovalInfos()
	require.Len(t, history, 2)
	assert.Equal(t, "i1", history[0].ID())
	assert.Equal(t, "a1", history[0].Approver().PersonID())
	assert.Equal(t, "i2", history[1].ID())
	assert.Equal(t, int64(3), stored.Version())

	byApplicant, err := svc.QueryByApplicant(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byApplicant, 1)

	var events []leave.LeaveEventRow
	require.NoError(t, db.Order("occurred_at ASC").Find(&events).Error)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"CREATE", "AGREE", "APPROVED"}, []string{events[0].EventType, events[1].EventType, events[2].EventType})
	for _, e := range events {
		assert.Equal(t, leave.EventStatusPending, e.Status)
		assert.Equal(t, created.ID(), e.AggregateID)
	}

	t.Run("negative replay on closed request", func(t *testing.T) {
		_, err := newSQLiteDomain(repo, t0.Add(3*time.Hour)).SubmitApproval(ctx, agreed, nil)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotApproving)
	})
}

func TestDomainService_SQLite_RejectFlow(t *testing.T) {
	ctx := context.Background()
	repo := leave.NewRepository(setupLeaveDB(t))
	a1 := mustApprover(t, "a1", 1)

	created, err := newSQLiteDomain(repo, t0).CreateRequest(ctx, newDraft(t), 3, a1)
	require.NoError(t, err)

	require.NoError(t, created.RecordDecision(mustInfo(t, "i1", a1, leave.DecisionReject, t0.Add(time.Hour))))
	rejected, err := newSQLiteDomain(repo, t0.Add(time.Hour)).SubmitApproval(ctx, created, nil)
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, rejected.ID())
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", stored.Status)
	assert.Nil(t, stored.ApproverID)
	require.Len(t, stored.History, 1)
	assert.Equal(t, "REJECT", stored.History[0].Decision)
}

func TestDomainService_SQLite_UpdateKeepsRepeatedHistory(t *testing.T) {
	ctx := context.Background()
	repo := leave.NewRepository(setupLeaveDB(t))
	a1 := mustApprover(t, "a1", 1)
	a2 := mustApprover(t, "a2", 2)

	created, err := newSQLiteDomain(repo, t0).CreateRequest(ctx, newDraft(t), 3, a1)
	require.NoError(t, err)
	require.NoError(t, created.RecordDecision(mustInfo(t, "i1", a1, leave.DecisionAgree, t0.Add(time.Hour))))
	agreed, err := newSQLiteDomain(repo, t0.Add(time.Hour)).SubmitApproval(ctx, created, &a2)
	require.NoError(t, err)

	repeated := agreed.HistoryApprovalInfos()[0]
	agreed.AddHistoryApprovalInfo(repeated)
	updated, err := newSQLiteDomain(repo, t0.Add(time.Hour)).UpdateRequestInfo(ctx, agreed)
	require.NoError(t, err)
	require.Len(t, updated.HistoryApprovalInfos(), 2)

	stored, err := newSQLiteDomain(repo, t0).GetRequest(ctx, agreed.ID())
	require.NoError(t, err)
	history := stored.HistoryApprovalInfos()
	require.Len(t, history, len(updated.HistoryApprovalInfos()))
	for i, info := range history {
		assert.Equal(t, "i1", info.ID(), i)
		assert.Equal(t, leave.DecisionAgree, info.Decision(), i)
		assert.True(t, info.DecidedAt().Equal(t0.Add(time.Hour)), i)
	}
	assert.Equal(t, updated.Version(), stored.Version())
}

func TestRepository_SaveReplacesHistory(t *testing.T) {
	ctx := context.Background()
	repo := leave.NewRepository(setupLeaveDB(t))

	row := approvingRow("l1")
	row.Version = 0
	row.History = []leave.ApprovalInfoRow{
		{Seq: 0, ApprovalInfoID: "i1", ApproverID: "a1", ApproverName: "A1", ApproverLevel: 1, Decision: "AGREE", Message: "ok", DecidedAt: t0},
		{Seq: 1, ApprovalInfoID: "i2", ApproverID: "a2", ApproverName: "A2", ApproverLevel: 2, Decision: "AGREE", Message: "ok", DecidedAt: t0.Add(time.Hour)},
	}
	require.NoError(t, repo.Save(ctx, &row))

	t.Run("changed entry is overwritten and dropped entry removed", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "l1")
		require.NoError(t, err)
		got.History = got.History[:1]
		got.History[0].Message = "edited"
		require.NoError(t, repo.Save(ctx, got))

		reloaded, err := repo.FindByID(ctx, "l1")
		require.NoError(t, err)
		require.Len(t, reloaded.History, 1)
		assert.Equal(t, "edited", reloaded.History[0].Message)
	})

	t.Run("negative stale version keeps stored history", func(t *testing.T) {
		stale := row
		stale.History = nil

		err := repo.Save(ctx, &stale)

		assert.ErrorIs(t, err, leaveerrors.ErrConcurrentModification)
		assert.Equal(t, int64(1), stale.Version)
		reloaded, err := repo.FindByID(ctx, "l1")
		require.NoError(t, err)
		assert.Len(t, reloaded.History, 1)
	})
}

func TestDomainService_SQLite_EventWriteRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupLeaveDB(t)
	repo := leave.NewRepository(db)
	a1 := mustApprover(t, "a1", 1)

	t.Run("create leaves no row", func(t *testing.T) {
		_, err := newSQLiteDomain(failingEvents{repo}, t0).CreateRequest(ctx, newDraft(t), 3, a1)

		assert.ErrorIs(t, err, errEventStore)
		var count int64
		require.NoError(t, db.Model(&leave.LeaveRow{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("submit restores previous state", func(t *testing.T) {
		created, err := newSQLiteDomain(repo, t0).CreateRequest(ctx, newDraft(t), 3, a1)
		require.NoError(t, err)
		require.NoError(t, created.RecordDecision(mustInfo(t, "i1", a1, leave.DecisionReject, t0.Add(time.Hour))))

		_, err = newSQLiteDomain(failingEvents{repo}, t0.Add(time.Hour)).SubmitApproval(ctx, created, nil)

		assert.ErrorIs(t, err, errEventStore)
		stored, err := repo.FindByID(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, "APPROVING", stored.Status)
		assert.Equal(t, "a1", *stored.ApproverID)
		assert.Equal(t, int64(1), stored.Version)
		assert.Empty(t, stored.History)

		var events int64
		require.NoError(t, db.Model(&leave.LeaveEventRow{}).Where("aggregate_id = ?", created.ID()).Count(&events).Error)
		assert.Equal(t, int64(1), events)
	})
}
