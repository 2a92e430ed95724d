package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "servicescale/docs"
	"servicescale/internal/adapter/http/routes"
	"servicescale/internal/config"
	"servicescale/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           HVAC Quote Service API
// @version         1.0
// @description     Customer and pricebook imports, HVAC zone rules and quote generation.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.LoadEnv()

	zapLogger, err := logger.NewZapLogger(cfg.Server.AppEnv, cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("[app][main] server stopped", zap.Error(err))
	}
}
