package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ecoba/careers/mail-svc/config"
	"github.com/ecoba/careers/mail-svc/infra/queue"
	"github.com/ecoba/careers/mail-svc/internal/api/rest/handlers"
	"github.com/ecoba/careers/mail-svc/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	cfg.ApplyLogLevel()
	if missing := cfg.Validate(); len(missing) > 0 {
		log.Fatalf("missing config: %s", strings.Join(missing, ", "))
	}

	log.WithFields(log.Fields{
		"broker": cfg.KafkaBroker,
		"topic":  cfg.KafkaTopic,
		"group":  cfg.KafkaGroupID,
	}).Info("mail service starting")

	mailer := services.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.GmailUser,
		cfg.GmailAppPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)
	mailService := services.NewMailService(mailer, cfg.AppBaseURL)
	handler := handlers.NewMailHandler(mailService)

	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)
	defer func() {
		if err := consumer.Close(); err != nil {
			log.WithError(err).Warn("consumer close")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("listening for events")
	consumer.Listen(ctx)
	log.Info("mail service stopped")
}
