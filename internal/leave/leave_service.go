package leave

import (
	"context"
	"time"

	leaveerrors "github.com/nearzk/ddd-leave-sample/internal/leave/errors"
	"github.com/nearzk/ddd-leave-sample/internal/person"
	"github.com/nearzk/ddd-leave-sample/internal/rule"
	"github.com/nearzk/ddd-leave-sample/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	SubmitApproval(ctx context.Context, id string, req SubmitApprovalRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]LeaveResponse, error)
	ListByApprover(ctx context.Context, approverID string) ([]LeaveResponse, error)
}

type service struct {
	domain    DomainService
	directory person.Directory
	rules     rule.Service
	ids       IDGenerator
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(domain DomainService, directory person.Directory, rules rule.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		domain:    domain,
		directory: directory,
		rules:     rules,
		ids:       UUIDGenerator{},
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("create leave requested",
		zap.String("applicant_id", req.ApplicantID),
		zap.String("leave_type", req.LeaveType),
	)

	leaveType, err := ParseLeaveType(req.LeaveType)
	if err != nil {
		return LeaveResponse{}, err
	}

	p, err := s.directory.FindByID(ctx, req.ApplicantID)
	if err != nil {
		log.Warn("create leave applicant lookup failed", zap.String("applicant_id", req.ApplicantID), zap.Error(err))
		return LeaveResponse{}, err
	}
	applicant, err := ApplicantFromPerson(p)
	if err != nil {
		return LeaveResponse{}, err
	}
	draft, err := NewLeave(applicant, leaveType, req.Reason)
	if err != nil {
		return LeaveResponse{}, err
	}

	maxLevel, err := s.rules.LeaderMaxLevel(ctx, string(applicant.PersonType()), string(leaveType))
	if err != nil {
		log.Error("create leave rule lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	first, err := s.directory.FindFirstApprover(ctx, applicant.PersonID(), maxLevel)
	if err != nil {
		log.Error("create leave approver lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if first == nil {
		log.Warn("create leave no approver available",
			zap.String("applicant_id", applicant.PersonID()),
			zap.Int("leader_max_level", maxLevel),
		)
		return LeaveResponse{}, leaveerrors.ErrNoApproverAvailable
	}
	approver, err := ApproverFromPerson(*first)
	if err != nil {
		return LeaveResponse{}, err
	}

	saved, err := s.domain.CreateRequest(ctx, draft, maxLevel, approver)
	if err != nil {
		return LeaveResponse{}, err
	}
	log.Info("create leave success",
		zap.String("leave_id", saved.ID()),
		zap.String("applicant_id", applicant.PersonID()),
		zap.String("approver_id", approver.PersonID()),
	)
	return mapToResponse(saved), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("update leave requested", zap.String("leave_id", id), zap.String("leave_type", req.LeaveType))

	leaveType, err := ParseLeaveType(req.LeaveType)
	if err != nil {
		return LeaveResponse{}, err
	}

	current, err := s.domain.GetRequest(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if req.Version != nil && *req.Version != current.Version() {
		return LeaveResponse{}, leaveerrors.ErrConcurrentModification
	}
	if err := current.ChangeDetails(leaveType, req.Reason); err != nil {
		log.Warn("update leave rejected", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	saved, err := s.domain.UpdateRequestInfo(ctx, current)
	if err != nil {
		return LeaveResponse{}, err
	}
	log.Info("update leave success", zap.String("leave_id", id))
	return mapToResponse(saved), nil
}

func (s *service) SubmitApproval(ctx context.Context, id string, req SubmitApprovalRequest) (LeaveResponse, error) {
	log := s.log(ctx)
	approverID, err := actingApprover(ctx, req.ApproverID)
	if err != nil {
		log.Warn("submit approval approver mismatch",
			zap.String("leave_id", id),
			zap.String("approver_id", req.ApproverID),
			zap.String("person_id", contextutil.GetPersonID(ctx)),
		)
		return LeaveResponse{}, err
	}
	log.Debug("submit approval requested",
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.String("decision", req.Decision),
	)

	decision, err := ParseDecision(req.Decision)
	if err != nil {
		return LeaveResponse{}, err
	}

	current, err := s.domain.GetRequest(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if req.Version != nil && *req.Version != current.Version() {
		return LeaveResponse{}, leaveerrors.ErrConcurrentModification
	}

	active, ok := current.Approver().Get()
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotApproving
	}
	if active.PersonID() != approverID {
		log.Warn("submit approval by non current approver",
			zap.String("leave_id", id),
			zap.String("approver_id", approverID),
			zap.String("current_approver_id", active.PersonID()),
		)
		return LeaveResponse{}, leaveerrors.ErrNotCurrentApprover
	}

	info, err := NewApprovalInfo(s.ids.NewID(), active, decision, req.Message, s.now())
	if err != nil {
		return LeaveResponse{}, err
	}
	if err := current.RecordDecision(info); err != nil {
		return LeaveResponse{}, err
	}

	var next *Approver
	if decision == DecisionAgree {
		p, err := s.directory.FindNextApprover(ctx, active.PersonID(), current.LeaderMaxLevel())
		if err != nil {
			log.Error("submit approval next approver lookup failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		if p != nil {
			a, err := ApproverFromPerson(*p)
			if err != nil {
				return LeaveResponse{}, err
			}
			next = &a
		}
	}

	saved, err := s.domain.SubmitApproval(ctx, current, next)
	if err != nil {
		return LeaveResponse{}, err
	}
	log.Info("submit approval success",
		zap.String("leave_id", id),
		zap.String("decision", string(decision)),
		zap.String("status", string(saved.Status())),
	)
	return mapToResponse(saved), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.domain.GetRequest(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(l), nil
}

func (s *service) ListByApplicant(ctx context.Context, applicantID string) ([]LeaveResponse, error) {
	leaves, err := s.domain.QueryByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListByApprover(ctx context.Context, approverID string) ([]LeaveResponse, error) {
	leaves, err := s.domain.QueryByApprover(ctx, approverID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// actingApprover prefers the person set on the request context by the
// gateway. The body may only repeat it; without a context person the
// body value is used.
func actingApprover(ctx context.Context, bodyApproverID string) (string, error) {
	personID := contextutil.GetPersonID(ctx)
	if personID == "" {
		return bodyApproverID, nil
	}
	if bodyApproverID != "" && bodyApproverID != personID {
		return "", leaveerrors.ErrApproverMismatch
	}
	return personID, nil
}
