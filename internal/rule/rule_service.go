package rule

import (
	"context"
	"errors"

	ruleerrors "github.com/nearzk/ddd-leave-sample/internal/rule/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rule_service.go -destination=mock/rule_service_mock.go -package=mock
type Service interface {
	LeaderMaxLevel(ctx context.Context, personType, leaveType string) (int, error)
	Configure(ctx context.Context, personType, leaveType string, leaderMaxLevel int) error
}

type service struct {
	repo         Repository
	defaultLevel int
	logger       *zap.Logger
}

// NewService returns a rule service falling back to defaultLevel when no
// rule matches a request.
func NewService(repo Repository, defaultLevel int, logger ...*zap.Logger) Service {
	l := zap.L().Named("rule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rule.service")
	}
	return &service{repo: repo, defaultLevel: defaultLevel, logger: l}
}

func (s *service) LeaderMaxLevel(ctx context.Context, personType, leaveType string) (int, error) {
	r, err := s.repo.FindByTypes(ctx, personType, leaveType)
	if errors.Is(err, ruleerrors.ErrRuleNotFound) {
		s.logger.Debug("approval rule not configured, using default",
			zap.String("person_type", personType),
			zap.String("leave_type", leaveType),
			zap.Int("leader_max_level", s.defaultLevel),
		)
		return s.defaultLevel, nil
	}
	if err != nil {
		s.logger.Error("find approval rule failed", zap.Error(err))
		return 0, err
	}
	return r.LeaderMaxLevel, nil
}

func (s *service) Configure(ctx context.Context, personType, leaveType string, leaderMaxLevel int) error {
	if leaderMaxLevel < 1 {
		return ruleerrors.ErrInvalidLeaderMaxLevel
	}
	err := s.repo.Upsert(ctx, &ApprovalRule{
		ID:             uuid.NewString(),
		PersonType:     personType,
		LeaveType:      leaveType,
		LeaderMaxLevel: leaderMaxLevel,
	})
	if err != nil {
		s.logger.Error("configure approval rule failed", zap.Error(err))
		return err
	}
	s.logger.Info("configure approval rule success",
		zap.String("person_type", personType),
		zap.String("leave_type", leaveType),
		zap.Int("leader_max_level", leaderMaxLevel),
	)
	return nil
}
