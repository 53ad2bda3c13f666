package person

import (
	"context"
	"errors"

	personerrors "github.com/nearzk/ddd-leave-sample/internal/person/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=person_repo.go -destination=mock/person_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Person) error
	FindByID(ctx context.Context, id string) (*Person, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, personerrors.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
