package main

import (
	"github.com/vidheexx/Nutrimate/config"
	"github.com/vidheexx/Nutrimate/routes"
	"github.com/vidheexx/Nutrimate/utils"

	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	if err := utils.InitS3(); err != nil {
		logger.Fatal("s3 init failed", zap.Error(err))
	}

	r := routes.SetupRouter(routes.Deps{DB: db, Logger: logger})

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
