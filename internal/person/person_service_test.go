package person_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nearzk/ddd-leave-sample/internal/person"
	personerrors "github.com/nearzk/ddd-leave-sample/internal/person/errors"
	personMock "github.com/nearzk/ddd-leave-sample/internal/person/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

// org chart used by the walking tests:
// emp(0) -> lead(1) -> manager(2, inactive) -> director(3) -> ceo(4)
func orgChart() map[string]*person.Person {
	return map[string]*person.Person{
		"emp":      {ID: "emp", Name: "Employee", PersonType: person.PersonTypeInternal, RoleLevel: 0, LeaderID: strPtr("lead"), Status: person.StatusActive},
		"lead":     {ID: "lead", Name: "Team Lead", PersonType: person.PersonTypeInternal, RoleLevel: 1, LeaderID: strPtr("manager"), Status: person.StatusActive},
		"manager":  {ID: "manager", Name: "Manager", PersonType: person.PersonTypeInternal, RoleLevel: 2, LeaderID: strPtr("director"), Status: person.StatusInactive},
		"director": {ID: "director", Name: "Director", PersonType: person.PersonTypeInternal, RoleLevel: 3, LeaderID: strPtr("ceo"), Status: person.StatusActive},
		"ceo":      {ID: "ceo", Name: "CEO", PersonType: person.PersonTypeInternal, RoleLevel: 4, Status: person.StatusActive},
	}
}

func setupChartRepo(t *testing.T, chart map[string]*person.Person) *personMock.MockRepository {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := personMock.NewMockRepository(ctrl)
	repo.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) (*person.Person, error) {
			p, ok := chart[id]
			if !ok {
				return nil, personerrors.ErrPersonNotFound
			}
			cp := *p
			return &cp, nil
		}).
		AnyTimes()
	return repo
}

func TestDirectory_FindByID(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := personMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()

		cached := person.Person{ID: "p1", Name: "Alice", PersonType: person.PersonTypeInternal, RoleLevel: 1, Status: person.StatusActive}
		data, _ := json.Marshal(cached)
		redisMock.ExpectGet(person.GetPersonKey("p1")).SetVal(string(data))

		dir := person.NewDirectory(repo, rdb, ttl)
		got, err := dir.FindByID(ctx, "p1")

		assert.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := personMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()

		stored := &person.Person{ID: "p2", Name: "Bob", PersonType: person.PersonTypeExternal, RoleLevel: 2, Status: person.StatusActive}
		data, _ := json.Marshal(stored)

		redisMock.ExpectGet(person.GetPersonKey("p2")).RedisNil()
		repo.EXPECT().FindByID(ctx, "p2").Return(stored, nil)
		redisMock.ExpectSet(person.GetPersonKey("p2"), data, ttl).SetVal("OK")

		dir := person.NewDirectory(repo, rdb, ttl)
		got, err := dir.FindByID(ctx, "p2")

		assert.NoError(t, err)
		assert.Equal(t, *stored, got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := personMock.NewMockRepository(ctrl)
		repo.EXPECT().FindByID(ctx, "missing").Return(nil, personerrors.ErrPersonNotFound)

		dir := person.NewDirectory(repo, nil, ttl)
		_, err := dir.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, personerrors.ErrPersonNotFound)
	})
}

func TestDirectory_FindFirstApprover(t *testing.T) {
	ctx := context.Background()
	dir := person.NewDirectory(setupChartRepo(t, orgChart()), nil, time.Minute)

	t.Run("direct leader", func(t *testing.T) {
		got, err := dir.FindFirstApprover(ctx, "emp", 3)

		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, "lead", got.ID)
		}
	})

	t.Run("leader above max level", func(t *testing.T) {
		got, err := dir.FindFirstApprover(ctx, "emp", 0)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("negative unknown applicant", func(t *testing.T) {
		_, err := dir.FindFirstApprover(ctx, "nobody", 3)

		assert.ErrorIs(t, err, personerrors.ErrPersonNotFound)
	})
}

func TestDirectory_FindNextApprover(t *testing.T) {
	ctx := context.Background()
	dir := person.NewDirectory(setupChartRepo(t, orgChart()), nil, time.Minute)

	t.Run("skips inactive leader", func(t *testing.T) {
		got, err := dir.FindNextApprover(ctx, "lead", 3)

		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, "director", got.ID)
		}
	})

	t.Run("chain exhausted at max level", func(t *testing.T) {
		got, err := dir.FindNextApprover(ctx, "director", 3)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("top of hierarchy", func(t *testing.T) {
		got, err := dir.FindNextApprover(ctx, "ceo", 10)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("negative cycle", func(t *testing.T) {
		chart := map[string]*person.Person{
			"a": {ID: "a", RoleLevel: 1, LeaderID: strPtr("b"), Status: person.StatusInactive},
			"b": {ID: "b", RoleLevel: 1, LeaderID: strPtr("a"), Status: person.StatusInactive},
		}
		cyclic := person.NewDirectory(setupChartRepo(t, chart), nil, time.Minute)

		_, err := cyclic.FindNextApprover(ctx, "a", 5)

		assert.ErrorIs(t, err, personerrors.ErrHierarchyCycle)
	})

	t.Run("negative dangling leader", func(t *testing.T) {
		chart := map[string]*person.Person{
			"a": {ID: "a", RoleLevel: 1, LeaderID: strPtr("ghost"), Status: person.StatusActive},
		}
		dangling := person.NewDirectory(setupChartRepo(t, chart), nil, time.Minute)

		_, err := dangling.FindNextApprover(ctx, "a", 5)

		assert.ErrorIs(t, err, personerrors.ErrLeaderNotFound)
		assert.True(t, errors.Is(err, personerrors.ErrPersonNotFound))
	})
}
