package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	leaveerrors "github.com/nearzk/ddd-leave-sample/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	// WithinTx runs fn in one transaction. The Repository handed to fn is
	// bound to it; fn returning an error rolls everything back.
	WithinTx(ctx context.Context, fn func(repo Repository) error) error
	Save(ctx context.Context, row *LeaveRow) error
	SaveEvent(ctx context.Context, row *LeaveEventRow) error
	FindByID(ctx context.Context, id string) (*LeaveRow, error)
	FindByApplicantID(ctx context.Context, applicantID string) ([]LeaveRow, error)
	FindByApproverID(ctx context.Context, approverID string) ([]LeaveRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithinTx(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

// Save inserts a row with version 0 and otherwise overwrites it in full,
// guarded by the version it was read with. The stored history is replaced
// by row.History. On success row.Version holds the stored version.
func (r *repository) Save(ctx context.Context, row *LeaveRow) error {
	version := row.Version
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if version == 0 {
			row.Version = 1
			if err := tx.Omit(clause.Associations).Create(row).Error; err != nil {
				return mapWriteError(err)
			}
		} else {
			res := tx.Model(&LeaveRow{}).
				Where("id = ? AND version = ?", row.ID, version).
				Updates(map[string]any{
					"applicant_id":     row.ApplicantID,
					"applicant_name":   row.ApplicantName,
					"applicant_type":   row.ApplicantType,
					"approver_id":      row.ApproverID,
					"approver_name":    row.ApproverName,
					"approver_level":   row.ApproverLevel,
					"leave_type":       row.LeaveType,
					"reason":           row.Reason,
					"status":           row.Status,
					"start_time":       row.StartTime,
					"end_time":         row.EndTime,
					"duration_ms":      row.DurationMs,
					"leader_max_level": row.LeaderMaxLevel,
					"version":          version + 1,
					"updated_at":       time.Now().UTC(),
				})
			if res.Error != nil {
				return mapWriteError(res.Error)
			}
			if res.RowsAffected == 0 {
				return leaveerrors.ErrConcurrentModification
			}
			row.Version = version + 1

			if err := tx.Where("leave_id = ?", row.ID).Delete(&ApprovalInfoRow{}).Error; err != nil {
				return err
			}
		}

		if len(row.History) == 0 {
			return nil
		}
		for i := range row.History {
			row.History[i].LeaveID = row.ID
		}
		return tx.Create(&row.History).Error
	})
	if err != nil {
		row.Version = version
		return err
	}
	return nil
}

func (r *repository) SaveEvent(ctx context.Context, row *LeaveEventRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRow, error) {
	var row LeaveRow
	err := r.withHistory(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindByApplicantID(ctx context.Context, applicantID string) ([]LeaveRow, error) {
	var rows []LeaveRow
	err := r.withHistory(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByApproverID(ctx context.Context, approverID string) ([]LeaveRow, error) {
	var rows []LeaveRow
	err := r.withHistory(ctx).
		Where("approver_id = ?", approverID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) withHistory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	})
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return leaveerrors.ErrLeaveAlreadyExists.WithCause(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return leaveerrors.ErrLeaveAlreadyExists.WithCause(err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint failed") {
		return leaveerrors.ErrLeaveAlreadyExists.WithCause(err)
	}
	return err
}
