package main

import (
	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/SeakMengs/PropDesk/internal/database"
	"github.com/SeakMengs/PropDesk/internal/env"
	"github.com/SeakMengs/PropDesk/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(model.All()...)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	logger.Infof("Migrated %d tables", len(model.All()))
}
