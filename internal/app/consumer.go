package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nearzk/ddd-leave-sample/internal/bootstrap"
	"github.com/nearzk/ddd-leave-sample/internal/messaging/kafka/consumer"
	"github.com/nearzk/ddd-leave-sample/internal/shared/config"
	"github.com/nearzk/ddd-leave-sample/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          cfg.Kafka.Topic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	handler := consumer.NewLeaveEventHandler(rdb, bootstrap.NewStdoutAuditLogger(), cfg.Kafka.DedupeTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeLeaveEvents(ctx, reader, handler, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
