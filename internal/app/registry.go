package app

import (
	"database/sql"

	"github.com/nearzk/ddd-leave-sample/internal/leave"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka/producer"
	"github.com/nearzk/ddd-leave-sample/internal/middleware"
	"github.com/nearzk/ddd-leave-sample/internal/person"
	"github.com/nearzk/ddd-leave-sample/internal/rule"
	"github.com/nearzk/ddd-leave-sample/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type modules struct {
	sqlDB  *sql.DB
	gormDB *gorm.DB
	rdb    *redis.Client
	// writer is nil when no broker is configured
	writer producer.MessageWriter
}

func registerModules(router *gin.Engine, cfg config.Config, m modules) {
	// --- Repositories ---
	personRepo := person.NewRepository(m.gormDB)
	ruleRepo := rule.NewRepository(m.gormDB)
	leaveRepo := leave.NewRepository(m.gormDB)
	outboxRepo := kafka.NewOutboxRepository(m.sqlDB)

	// --- Services ---
	directory := person.NewDirectory(personRepo, m.rdb, cfg.Leave.PersonCacheTTL)
	ruleService := rule.NewService(ruleRepo, cfg.Leave.DefaultLeaderMaxLevel)

	publisher := leave.NewNoopEventPublisher()
	opts := []leave.DomainOption{leave.WithEventSource(cfg.Leave.EventSource)}
	if m.writer != nil {
		publisher = producer.NewLeaveEventPublisher(m.writer, cfg.Kafka.Topic)
		opts = append(opts, leave.WithEventLog(outboxRepo))
	}
	domainService := leave.NewDomainService(leaveRepo, leave.NewFactory(nil), publisher, opts...)
	leaveService := leave.NewService(domainService, directory, ruleService)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService)
	ruleHandler := rule.NewHandler(ruleService)

	// --- Middleware ---
	router.Use(
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateBurst),
	)
	writeMiddleware := []gin.HandlerFunc{
		middleware.RateLimitByPerson(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateBurst),
		middleware.Idempotency(m.rdb, cfg.HTTP.IdempotencyTTL),
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler, writeMiddleware...)
		rule.RegisterRoutes(api, ruleHandler, writeMiddleware...)
	}
}
