package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"guidelight/internal/chat/app"
	"guidelight/internal/chat/repository"
	"guidelight/pkg/config"
	"guidelight/pkg/database"
	"guidelight/pkg/logger"
	"guidelight/pkg/mailer"

	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.NotificationService, config.EnvConfig.NotificationServiceLogPath)
	cfg := config.LoadConfig[config.Notification](config.EnvConfig.NotificationService, config.EnvConfig.NotificationServiceYAMLPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.MongoSQL.User, cfg.MongoSQL.Password, cfg.MongoSQL.Host, cfg.MongoSQL.Port)
	mongo, err := database.NewMongoDB(ctx,
		database.Connection{
			ConnectStr:    uri,
			RetryCount:    cfg.MongoSQL.RetryCount,
			RetryInterval: time.Duration(cfg.MongoSQL.RetryInterval),
		},
		cfg.MongoSQL.Database)
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to mongoDB database after retries",
			zap.String("address", fmt.Sprintf("[%s]", uri)),
			zap.Error(err),
		)
	}
	defer mongo.Close(ctx)

	reader := database.NewKafkaReader(database.KafkaConnection{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer reader.Close()

	mail := mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)

	consumer := app.NewNotificationConsumer(
		reader,
		repository.NewMongoGroupRepository(mongo.Database),
		repository.NewMongoDirectoryRepository(mongo.Database),
		mail,
	)

	log.Printf("Notification Service consuming %s", cfg.Kafka.Topic)
	if err := consumer.Run(ctx); err != nil {
		logger.Log.Fatal("notification consumer stopped", zap.Error(err))
	}
}
