package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"guidelight/internal/chat/app"
	"guidelight/internal/chat/repository"
	"guidelight/internal/chat/router"
	"guidelight/pkg/config"
	"guidelight/pkg/database"
	"guidelight/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ChatService, config.EnvConfig.ChatServiceLogPath)
	cfg := config.LoadConfig[config.Chat](config.EnvConfig.ChatService, config.EnvConfig.ChatServiceYAMLPath)

	ctx := context.Background()
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

	masterName, sentinel := config.GetRedisSetting()
	redisClient, err := database.NewRedisClient(masterName, sentinel, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}

	// Notification events ride Kafka. A dead broker downgrades the
	// feature instead of blocking chat startup.
	var events repository.NotificationPublisher
	kafkaWriter, err := database.NewKafkaWriterWithRetry(database.KafkaConnection{
		Brokers:       cfg.Kafka.Brokers,
		Topic:         cfg.Kafka.Topic,
		RetryCount:    3,
		RetryInterval: 2,
	})
	if err != nil {
		logger.Log.Errorf("kafka unavailable, notifications disabled: ", err)
	} else {
		defer kafkaWriter.Close()
		events = repository.NewKafkaNotificationPublisher(kafkaWriter)
	}

	msgRepo := repository.NewMongoMessageRepository(mongo.Database)
	groupRepo := repository.NewMongoGroupRepository(mongo.Database)
	typingRepo := repository.NewRedisTypingRepository(redisClient)
	dirRepo := repository.NewMongoDirectoryRepository(mongo.Database)
	pub := repository.NewRedisPubSub(redisClient)

	groupUC := app.NewGroupUseCase(groupRepo, msgRepo, pub)
	dirUC := app.NewDirectoryUseCase(dirRepo)

	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ChatServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, app.NewChatWebsocketHandler(msgRepo, typingRepo, pub, events, groupUC, dirUC, dirRepo))

	port := ":" + cfg.Port
	log.Printf("Chat Service listening on %s", port)
	if err := r.Listen(port); err != nil {
		log.Fatalf("Failed to start Fiber: %v", err)
	}
}
