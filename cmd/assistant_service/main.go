package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"guidelight/internal/assistant/app"
	"guidelight/internal/assistant/repository"
	"guidelight/internal/assistant/router"
	"guidelight/pkg/config"
	"guidelight/pkg/database"
	"guidelight/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.AssistantService, config.EnvConfig.AssistantServiceLogPath)
	cfg := config.LoadConfig[config.Assistant](config.EnvConfig.AssistantService, config.EnvConfig.AssistantServiceYAMLPath)

	pgURI := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	db, err := database.NewGormConnection(database.Connection{
		ConnectStr:    pgURI,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to database after retries",
			zap.String("address", fmt.Sprintf("[%s]", pgURI)),
			zap.Error(err),
		)
	}

	pathRepo := repository.NewCareerPathRepo(db)
	if err := pathRepo.AutoMigrate(); err != nil {
		logger.Log.Fatal(fmt.Sprintf("career path migrate err : %v", err))
	}
	if err := pathRepo.Seed(); err != nil {
		logger.Log.Fatal(fmt.Sprintf("career path seed err : %v", err))
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	searcher := repository.NewGoogleSearchClient(cfg.GoogleAPIKey, cfg.GoogleCSEID, timeout)
	llm := repository.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel, timeout)

	usecase := app.NewAssistantUseCase(searcher, llm, pathRepo)

	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.AssistantServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, app.NewAssistantHandler(usecase))

	port := ":" + cfg.Port
	log.Printf("Assistant Service listening on %s", port)
	if err := r.Listen(port); err != nil {
		log.Fatalf("Failed to start Fiber: %v", err)
	}
}
