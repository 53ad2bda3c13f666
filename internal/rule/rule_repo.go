package rule

import (
	"context"
	"errors"

	ruleerrors "github.com/nearzk/ddd-leave-sample/internal/rule/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rule_repo.go -destination=mock/rule_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, r *ApprovalRule) error
	FindByTypes(ctx context.Context, personType, leaveType string) (*ApprovalRule, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert keeps one rule per (person_type, leave_type) pair.
func (r *repository) Upsert(ctx context.Context, rule *ApprovalRule) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "person_type"}, {Name: "leave_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"leader_max_level", "updated_at"}),
		}).
		Create(rule).Error
}

func (r *repository) FindByTypes(ctx context.Context, personType, leaveType string) (*ApprovalRule, error) {
	var rule ApprovalRule
	err := r.db.WithContext(ctx).
		Where("person_type = ? AND leave_type = ?", personType, leaveType).
		First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ruleerrors.ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
