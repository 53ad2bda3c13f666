package main

import (
	"github.com/nearzk/ddd-leave-sample/internal/app"
	"github.com/nearzk/ddd-leave-sample/internal/bootstrap"
	"github.com/nearzk/ddd-leave-sample/internal/shared/apperror"
	"github.com/nearzk/ddd-leave-sample/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfigFrom(cfg.HTTP),
		bootstrap.NewStdoutAuditLogger(),
	)
}
