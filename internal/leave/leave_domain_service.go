package leave

import (
	"context"
	"time"

	leaveerrors "github.com/nearzk/ddd-leave-sample/internal/leave/errors"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const DefaultEventSource = "leave-service"

// DomainService runs every workflow step as one unit of work: transition,
// row write and event write commit together, publishing happens after.
// The aggregate passed in is never modified; the persisted result is
// returned instead.
//
//go:generate mockgen -source=leave_domain_service.go -destination=mock/leave_domain_service_mock.go -package=mock
type DomainService interface {
	CreateRequest(ctx context.Context, leave *Leave, leaderMaxLevel int, initialApprover Approver) (*Leave, error)
	UpdateRequestInfo(ctx context.Context, leave *Leave) (*Leave, error)
	SubmitApproval(ctx context.Context, leave *Leave, nextApprover *Approver) (*Leave, error)
	GetRequest(ctx context.Context, id string) (*Leave, error)
	QueryByApplicant(ctx context.Context, applicantID string) ([]*Leave, error)
	QueryByApprover(ctx context.Context, approverID string) ([]*Leave, error)
}

type DomainOption func(*domainService)

func WithClock(now func() time.Time) DomainOption {
	return func(s *domainService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithEventSource(source string) DomainOption {
	return func(s *domainService) {
		if source != "" {
			s.source = source
		}
	}
}

// WithEventLog records publish outcomes on the stored event.
func WithEventLog(log EventLog) DomainOption {
	return func(s *domainService) {
		s.eventLog = log
	}
}

func WithLogger(logger *zap.Logger) DomainOption {
	return func(s *domainService) {
		if logger != nil {
			s.logger = logger.Named("leave.domain")
		}
	}
}

type domainService struct {
	repo      Repository
	factory   *Factory
	publisher EventPublisher
	eventLog  EventLog
	now       func() time.Time
	source    string
	logger    *zap.Logger
}

func NewDomainService(repo Repository, factory *Factory, publisher EventPublisher, opts ...DomainOption) DomainService {
	if factory == nil {
		factory = NewFactory(nil)
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	s := &domainService{
		repo:      repo,
		factory:   factory,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		source:    DefaultEventSource,
		logger:    zap.L().Named("leave.domain"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *domainService) CreateRequest(ctx context.Context, leave *Leave, leaderMaxLevel int, initialApprover Approver) (*Leave, error) {
	if leave == nil {
		return nil, leaveerrors.ErrInvalidLeave
	}
	s.logger.Debug("create leave request requested",
		zap.String("applicant_id", leave.Applicant().PersonID()),
		zap.String("approver_id", initialApprover.PersonID()),
		zap.Int("leader_max_level", leaderMaxLevel),
	)

	draft := leave.clone()
	if err := draft.Create(s.now(), leaderMaxLevel, initialApprover); err != nil {
		s.logger.Warn("create leave request rejected", zap.Error(err))
		return nil, err
	}

	saved, err := s.commit(ctx, draft, EventTypeCreate, nil)
	if err != nil {
		s.logger.Error("create leave request failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("create leave request success",
		zap.String("leave_id", saved.ID()),
		zap.String("applicant_id", saved.Applicant().PersonID()),
	)
	return saved, nil
}

func (s *domainService) UpdateRequestInfo(ctx context.Context, leave *Leave) (*Leave, error) {
	if leave == nil {
		return nil, leaveerrors.ErrInvalidLeave
	}
	if leave.ID() == "" {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	s.logger.Debug("update leave request requested", zap.String("leave_id", leave.ID()))

	draft := leave.clone()
	var saved *Leave
	err := s.repo.WithinTx(ctx, func(repo Repository) error {
		if _, err := repo.FindByID(ctx, draft.ID()); err != nil {
			return err
		}
		row := s.factory.ToRow(draft)
		if err := repo.Save(ctx, &row); err != nil {
			return err
		}
		saved = s.factory.FromRow(row)
		return nil
	})
	if err != nil {
		s.logger.Error("update leave request failed", zap.String("leave_id", leave.ID()), zap.Error(err))
		return nil, err
	}
	s.logger.Info("update leave request success",
		zap.String("leave_id", saved.ID()),
		zap.Int64("version", saved.Version()),
	)
	return saved, nil
}

func (s *domainService) SubmitApproval(ctx context.Context, leave *Leave, nextApprover *Approver) (*Leave, error) {
	if leave == nil {
		return nil, leaveerrors.ErrInvalidLeave
	}
	s.logger.Debug("submit approval requested",
		zap.String("leave_id", leave.ID()),
		zap.Bool("has_next_approver", nextApprover != nil),
	)

	draft := leave.clone()
	info, ok := draft.CurrentApprovalInfo().Get()
	if !ok {
		s.logger.Warn("submit approval rejected", zap.String("leave_id", leave.ID()), zap.Error(leaveerrors.ErrNoDecisionRecorded))
		return nil, leaveerrors.ErrNoDecisionRecorded
	}

	var (
		eventType EventType
		err       error
	)
	switch {
	case info.Decision() == DecisionReject:
		eventType = EventTypeReject
		err = draft.Reject(s.now())
	case nextApprover != nil:
		eventType = EventTypeAgree
		err = draft.Agree(*nextApprover)
	default:
		eventType = EventTypeApproved
		err = draft.Finish(s.now())
	}
	if err != nil {
		s.logger.Warn("submit approval rejected", zap.String("leave_id", leave.ID()), zap.Error(err))
		return nil, err
	}
	draft.AddHistoryApprovalInfo(info)

	saved, err := s.commit(ctx, draft, eventType, func(repo Repository) error {
		current, err := repo.FindByID(ctx, draft.ID())
		if err != nil {
			return err
		}
		if Status(current.Status) != StatusApproving {
			return leaveerrors.ErrLeaveNotApproving
		}
		return nil
	})
	if err != nil {
		s.logger.Error("submit approval failed", zap.String("leave_id", leave.ID()), zap.Error(err))
		return nil, err
	}
	s.logger.Info("submit approval success",
		zap.String("leave_id", saved.ID()),
		zap.String("event_type", string(eventType)),
		zap.String("status", string(saved.Status())),
	)
	return saved, nil
}

func (s *domainService) GetRequest(ctx context.Context, id string) (*Leave, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.factory.FromRow(*row), nil
}

func (s *domainService) QueryByApplicant(ctx context.Context, applicantID string) ([]*Leave, error) {
	rows, err := s.repo.FindByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row LeaveRow, _ int) *Leave { return s.factory.FromRow(row) }), nil
}

func (s *domainService) QueryByApprover(ctx context.Context, approverID string) ([]*Leave, error) {
	rows, err := s.repo.FindByApproverID(ctx, approverID)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row LeaveRow, _ int) *Leave { return s.factory.FromRow(row) }), nil
}

// commit writes the row and its event in one transaction, then publishes.
func (s *domainService) commit(ctx context.Context, draft *Leave, eventType EventType, check func(repo Repository) error) (*Leave, error) {
	var (
		saved *Leave
		event LeaveEvent
	)
	err := s.repo.WithinTx(ctx, func(repo Repository) error {
		if check != nil {
			if err := check(repo); err != nil {
				return err
			}
		}

		row := s.factory.ToRow(draft)
		if err := repo.Save(ctx, &row); err != nil {
			return err
		}
		saved = s.factory.FromRow(row)

		event = s.factory.NewEvent(eventType, saved, s.source, s.now())
		eventRow, err := s.factory.ToEventRow(event)
		if err != nil {
			return err
		}
		return repo.SaveEvent(ctx, &eventRow)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event)
	return saved, nil
}

// publish only logs failures. An event not marked sent is relayed later.
func (s *domainService) publish(ctx context.Context, event LeaveEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish leave event failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
		if s.eventLog != nil {
			if markErr := s.eventLog.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				s.logger.Warn("mark leave event failed failed", zap.String("event_id", event.ID), zap.Error(markErr))
			}
		}
		return
	}

	if s.eventLog != nil {
		if err := s.eventLog.MarkSent(ctx, event.ID); err != nil {
			s.logger.Warn("mark leave event sent failed", zap.String("event_id", event.ID), zap.Error(err))
		}
	}
}
