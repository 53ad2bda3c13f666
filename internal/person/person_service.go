package person

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	personerrors "github.com/nearzk/ddd-leave-sample/internal/person/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const PersonKeyPrefix = "persons:"

func GetPersonKey(id string) string {
	return PersonKeyPrefix + id
}

// Directory resolves persons and walks the reporting hierarchy to find
// approvers. A nil approver with a nil error means the chain is exhausted.
//
//go:generate mockgen -source=person_service.go -destination=mock/person_service_mock.go -package=mock
type Directory interface {
	FindByID(ctx context.Context, id string) (Person, error)
	FindFirstApprover(ctx context.Context, applicantID string, leaderMaxLevel int) (*Person, error)
	FindNextApprover(ctx context.Context, currentApproverID string, leaderMaxLevel int) (*Person, error)
}

type directory struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewDirectory builds a Directory. rdb may be nil to disable caching.
func NewDirectory(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Directory {
	l := zap.L().Named("person.directory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("person.directory")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &directory{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (d *directory) FindByID(ctx context.Context, id string) (Person, error) {
	cacheKey := GetPersonKey(id)

	if d.rdb != nil {
		if cached, err := d.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var p Person
			if json.Unmarshal([]byte(cached), &p) == nil {
				return p, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			d.logger.Warn("person cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	// one database read per person id while approvers are resolved concurrently
	v, err, _ := d.sf.Do(cacheKey, func() (any, error) {
		p, err := d.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if d.rdb != nil {
			if data, err := json.Marshal(p); err == nil {
				if err := d.rdb.Set(ctx, cacheKey, data, d.ttl).Err(); err != nil {
					d.logger.Warn("person cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return *p, nil
	})
	if err != nil {
		return Person{}, err
	}

	return v.(Person), nil
}

func (d *directory) FindFirstApprover(ctx context.Context, applicantID string, leaderMaxLevel int) (*Person, error) {
	d.logger.Debug("find first approver requested",
		zap.String("applicant_id", applicantID),
		zap.Int("leader_max_level", leaderMaxLevel),
	)
	applicant, err := d.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return d.walkUp(ctx, applicant, leaderMaxLevel)
}

func (d *directory) FindNextApprover(ctx context.Context, currentApproverID string, leaderMaxLevel int) (*Person, error) {
	d.logger.Debug("find next approver requested",
		zap.String("approver_id", currentApproverID),
		zap.Int("leader_max_level", leaderMaxLevel),
	)
	current, err := d.FindByID(ctx, currentApproverID)
	if err != nil {
		return nil, err
	}
	return d.walkUp(ctx, current, leaderMaxLevel)
}

// walkUp returns the closest active leader above from whose level does not
// exceed leaderMaxLevel.
func (d *directory) walkUp(ctx context.Context, from Person, leaderMaxLevel int) (*Person, error) {
	visited := map[string]struct{}{from.ID: {}}
	p := from

	for p.LeaderID != nil && *p.LeaderID != "" {
		leaderID := *p.LeaderID
		if _, seen := visited[leaderID]; seen {
			d.logger.Error("reporting hierarchy cycle detected",
				zap.String("person_id", from.ID),
				zap.String("leader_id", leaderID),
			)
			return nil, personerrors.ErrHierarchyCycle
		}
		visited[leaderID] = struct{}{}

		leader, err := d.FindByID(ctx, leaderID)
		if err != nil {
			if errors.Is(err, personerrors.ErrPersonNotFound) {
				return nil, personerrors.ErrLeaderNotFound.WithCause(err)
			}
			return nil, err
		}
		if leader.RoleLevel > leaderMaxLevel {
			return nil, nil
		}
		if leader.IsActive() {
			return &leader, nil
		}
		p = leader
	}

	return nil, nil
}
