package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/sossoukouame/kousossou-bot-be/internal/config"
	"github.com/sossoukouame/kousossou-bot-be/internal/core/engine"
	"github.com/sossoukouame/kousossou-bot-be/internal/core/search"
	"github.com/sossoukouame/kousossou-bot-be/internal/database"
	"github.com/sossoukouame/kousossou-bot-be/internal/handlers"
	"github.com/sossoukouame/kousossou-bot-be/internal/repositories"
	"github.com/sossoukouame/kousossou-bot-be/internal/services"
	"github.com/sossoukouame/kousossou-bot-be/internal/utils"

	_ "github.com/sossoukouame/kousossou-bot-be/docs"
)

// @title Kousossou FAQ Chatbot API
// @version 1.0
// @description French FAQ chatbot backend with knowledge base matching and web-search fallback
// @contact.name Sossou Kouamé Appolinaire
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger()
	log.Printf("🚀 Starting kousossou-bot api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories
	categoryRepo := repositories.NewCategoryRepo(db.GORM)
	knowledgeRepo := repositories.NewKnowledgeRepo(db.GORM)
	unansweredRepo := repositories.NewUnansweredRepo(db.GORM)

	// Init match engine with a seeded random source
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	matcher := engine.NewMatcher(rnd)
	composer := engine.NewComposer(rnd)

	// Init web-search fallback (disabled without an API key)
	var searcher search.Provider
	if cfg.OpenAIKey != "" {
		searcher = search.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.LLMModel)
	} else {
		log.Println("⚠️ OPENAI_API_KEY not set, web-search fallback disabled")
	}

	// Init services
	unansweredService := services.NewUnansweredService(unansweredRepo, knowledgeRepo)
	chatService := services.NewChatService(knowledgeRepo, unansweredService, matcher, composer, searcher)
	categoryService := services.NewCategoryService(categoryRepo)
	importService := services.NewImportService(knowledgeRepo, unansweredRepo)
	seedService := services.NewSeedService(categoryRepo, knowledgeRepo)
	statsService := services.NewStatsService(categoryRepo, knowledgeRepo, unansweredRepo)

	// Seed default data if empty
	if err := seedService.Run(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	// Init handlers
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(cfg.AdminPassword)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	knowledgeHandler := handlers.NewKnowledgeHandler(importService)
	unansweredHandler := handlers.NewUnansweredHandler(unansweredService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Kousossou FAQ Chatbot API",
	})

	// Middleware
	app.Use(cors.New())
	app.Use(requestLogger())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "kousossou-bot",
		})
	})

	// Chat routes
	app.Post("/api/chat/ask", chatHandler.Ask)

	// Admin routes
	app.Post("/api/admin/login", adminHandler.Login)

	// Category routes
	app.Get("/api/categories", categoryHandler.List)
	app.Post("/api/categories", categoryHandler.Create)
	app.Delete("/api/categories/:id", categoryHandler.Delete)

	// Knowledge routes
	app.Post("/api/knowledge/import", knowledgeHandler.Import)

	// Unanswered routes
	app.Get("/api/unanswered", unansweredHandler.List)
	app.Post("/api/unanswered/resolve", unansweredHandler.Resolve)

	// Daily stats heartbeat
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", statsService.LogCounts); err != nil {
		log.Fatalf("❌ Failed to schedule stats job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	log.Printf("✅ kousossou-bot api running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// requestLogger tags each request with an id and logs the outcome.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		start := time.Now()

		err := c.Next()

		utils.LogInfo("request", map[string]interface{}{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"duration":   time.Since(start).String(),
		})
		return err
	}
}
