package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/SeakMengs/PropDesk/internal/database"
	"github.com/SeakMengs/PropDesk/internal/env"
	"github.com/SeakMengs/PropDesk/internal/mailer"
	"github.com/SeakMengs/PropDesk/internal/queue"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const (
	MAX_WORKER = 3
)

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	// SendGrid when a key is configured, otherwise Gmail SMTP
	var mail mailer.Client
	if cfg.Mail.SEND_GRID.API_KEY != "" {
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	} else {
		mail = mailer.NewGmailMailer(cfg.Mail.GMAIL.USERNAME, cfg.Mail.GMAIL.PASSWORD, logger)
	}

	repo := repository.NewRepository(db, logger)
	app := queue.MailConsumerContext{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rabbitMQ.ConsumeMailJob(ctx, queue.HandleMailJob, MAX_WORKER, &app); err != nil {
		logger.Fatalf("Failed to consume mail job: %v", err)
	}

	logger.Infof("Started consuming mail job")

	<-ctx.Done()
	logger.Info("Mail consumer stopped")
}
