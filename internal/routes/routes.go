package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/config"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/handlers"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/middleware"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/repository"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/services"
	"go.uber.org/zap"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, log *zap.Logger) {
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	planRepo := repository.NewPlanRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	accountService := services.NewAccountService(db, log)
	studentService := services.NewStudentService(accountService, studentRepo, log)
	planService := services.NewPlanService(planRepo, log)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	studentHandler := handlers.NewStudentHandler(studentService)
	planHandler := handlers.NewPlanHandler(planService)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	admin := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret), middleware.AdminOnly())

	students := admin.Group("/students")
	students.Get("", studentHandler.ListStudents)
	students.Post("", studentHandler.CreateStudent)
	students.Get("/:id", studentHandler.GetStudent)
	students.Put("/:id", studentHandler.UpdateStudent)

	admin.Get("/plans", planHandler.ListPlans)

	settings := admin.Group("/settings")
	settings.Get("", settingsHandler.GetSettings)
	settings.Put("/:key", settingsHandler.UpdateSetting)
}
