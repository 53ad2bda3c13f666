package rule_test

import (
	"context"
	"testing"

	"github.com/nearzk/ddd-leave-sample/internal/rule"
	ruleerrors "github.com/nearzk/ddd-leave-sample/internal/rule/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRuleDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	assert.NoError(t, db.AutoMigrate(&rule.ApprovalRule{}))
	return db
}

func TestRuleRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupRuleDB(t)
	repo := rule.NewRepository(db)

	assert.NoError(t, repo.Upsert(ctx, &rule.ApprovalRule{ID: "r1", PersonType: "INTERNAL", LeaveType: "ANNUAL", LeaderMaxLevel: 2}))
	assert.NoError(t, repo.Upsert(ctx, &rule.ApprovalRule{ID: "r2", PersonType: "INTERNAL", LeaveType: "ANNUAL", LeaderMaxLevel: 5}))

	got, err := repo.FindByTypes(ctx, "INTERNAL", "ANNUAL")
	assert.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, 5, got.LeaderMaxLevel)

	var count int64
	assert.NoError(t, db.Model(&rule.ApprovalRule{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRuleRepository_FindByTypes_NotFound(t *testing.T) {
	repo := rule.NewRepository(setupRuleDB(t))

	got, err := repo.FindByTypes(context.Background(), "EXTERNAL", "SICK")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ruleerrors.ErrRuleNotFound)
}
