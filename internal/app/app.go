package app

import (
	"github.com/nearzk/ddd-leave-sample/internal/leave"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka/producer"
	"github.com/nearzk/ddd-leave-sample/internal/person"
	"github.com/nearzk/ddd-leave-sample/internal/rule"
	"github.com/nearzk/ddd-leave-sample/internal/shared/config"
	"github.com/nearzk/ddd-leave-sample/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and registers every module on
// router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	log := zap.L().Named("app.api")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("auto migrate success")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DB.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	closers := []func() error{rdb.Close, sqlDB.Close}

	// without a broker events stay pending until the worker relays them
	var writer producer.MessageWriter
	if cfg.Kafka.Broker != "" {
		kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.DB.MaxRetries)
		if err != nil {
			log.Warn("kafka unavailable, events will be relayed by the worker", zap.Error(err))
		} else {
			writer = kafkaWriter
			closers = append([]func() error{kafkaWriter.Close}, closers...)
		}
	}

	registerModules(router, cfg, modules{sqlDB: sqlDB, gormDB: gormDB, rdb: rdb, writer: writer})

	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("close connection failed", zap.Error(err))
			}
		}
	}
	return cleanup, nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&person.Person{},
		&rule.ApprovalRule{},
		&leave.LeaveRow{},
		&leave.ApprovalInfoRow{},
		&leave.LeaveEventRow{},
	)
}
