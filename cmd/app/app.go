package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/esprit/eventsproject/internal/api"
	"github.com/esprit/eventsproject/internal/config"
	"github.com/esprit/eventsproject/internal/db"
	"github.com/esprit/eventsproject/internal/logger"
	"github.com/esprit/eventsproject/internal/worker"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventService := api.NewEventService(postgresDB)
	costWorker := worker.NewCostWorker(eventService, conf.Costing.Organizer(), conf.Costing.Interval)
	s := api.NewServer(conf, eventService, costWorker.Organizer)

	err = config.Watch(configPath, func(newConf *config.AppConfig) {
		costWorker.SetOrganizer(newConf.Costing.Organizer())
		costWorker.SetInterval(newConf.Costing.Interval)
	})
	if err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	if conf.Costing.Enabled {
		go costWorker.Run(ctx)
	}

	if err = s.ListenAndServe(ctx, ":"+s.Config.API.Port); err != nil {
		return fmt.Errorf("failed to run the server -> %w", err)
	}

	zap.L().Info("server stopped")

	return nil
}
