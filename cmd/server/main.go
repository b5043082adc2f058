package main

import (
	"context"
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/config"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/database"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/logger"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/metrics"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/routes"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.New()
	defer func() {
		_ = zlog.Sync()
	}()

	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	db, err := database.Connect(context.Background(), cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	metrics.Init()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	routes.RegisterRoutes(app, cfg, db, zlog)

	accounts := services.NewAccountService(db, zlog)
	if err := accounts.EnsureAdmin(context.Background(), cfg.DefaultAdminEmail, cfg.DefaultAdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
