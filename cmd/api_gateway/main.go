package main

import (
	"fmt"
	"log"
	"os"
	"time"

	_ "guidelight/cmd/api_gateway/docs"
	"guidelight/internal/api/client"
	"guidelight/internal/api/handlers"
	"guidelight/internal/api/router"
	"guidelight/pkg/config"
	"guidelight/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

const upstreamTimeout = 30 * time.Second

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.APIGateway, config.EnvConfig.APIGatewayLogPath)
	cfg := config.LoadConfig[config.APIGateway](config.EnvConfig.APIGateway, config.EnvConfig.APIGatewayYAMLPath)

	memberClient := client.NewServiceClient(
		fmt.Sprintf("http://%s:%s", cfg.MemberService.Name, cfg.MemberService.Port), upstreamTimeout)
	assistantClient := client.NewServiceClient(
		fmt.Sprintf("http://%s:%s", cfg.AssistantService.Name, cfg.AssistantService.Port), upstreamTimeout)

	memberHandler := handlers.NewMemberHandler(memberClient)
	assistantHandler := handlers.NewAssistantHandler(assistantClient)

	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.APIGatewayLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, memberHandler, assistantHandler)

	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
