package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/TiGG-TV/Realtime/internal/config"
	"github.com/TiGG-TV/Realtime/internal/handlers"
	"github.com/TiGG-TV/Realtime/internal/repositories"
	"github.com/TiGG-TV/Realtime/internal/services"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	profileRepo := repositories.NewProfileRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)
	briefRepo := repositories.NewBriefRepository(db)
	log.Println("✅ Repositories initialized successfully")

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}
	pdfParser := services.NewPDFParserService()

	// Missing LLM credentials do not stop the server; affected endpoints
	// answer 503 instead.
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel)
	if err != nil {
		log.Printf("⚠️  Gemini unavailable: %v\n", err)
	}

	grader := initGrader(cfg, geminiService)

	var qdrantService services.QdrantService
	if q, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection); err != nil {
		log.Printf("⚠️  Qdrant unavailable, profile search disabled: %v\n", err)
	} else if err := q.InitCollection(context.Background()); err != nil {
		log.Printf("⚠️  Qdrant collection unavailable, profile search disabled: %v\n", err)
	} else {
		qdrantService = q
		log.Println("✅ Qdrant initialized successfully")
	}

	var embedder services.Embedder
	if geminiService != nil {
		embedder = geminiService
	}

	retry := services.RetryPolicy{
		MaxAttempts:    cfg.Grading.MaxAttempts,
		AttemptTimeout: cfg.Grading.Timeout,
		Delay:          cfg.Grading.RetryDelay,
	}

	profileService := services.NewProfileService(profileRepo)
	searchService := services.NewProfileSearchService(embedder, qdrantService, profileService)
	scorerService := services.NewScorerService(grader, retry)
	generator := services.NewProfileGenerator(grader, profileService, searchService, briefRepo, pdfParser, retry)
	conversationService := services.NewConversationService(chatRepo, scoreRepo, profileService, scorerService)
	progressService := services.NewProgressService(chatRepo, scoreRepo)
	log.Println("✅ Services initialized successfully")

	worker := services.NewWorker(chatRepo, conversationService, services.WorkerOptions{
		Concurrency:  cfg.Worker.Concurrency,
		QueueSize:    cfg.Worker.QueueSize,
		PollInterval: cfg.Worker.PollInterval,
		StaleAfter:   retry.Budget() + cfg.Worker.PollInterval,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "ChatChamp Scoring API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: retry.Budget() + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app.Group("/api/v1"), handlers.Handlers{
		Chat:     handlers.NewChatHandler(conversationService, worker),
		Profile:  handlers.NewProfileHandler(profileService, searchService, generator),
		Brief:    handlers.NewBriefHandler(briefRepo, storageService, cfg.Storage.MaxFileSize),
		Progress: handlers.NewProgressHandler(progressService),
	})
	log.Println("✅ Handlers initialized")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ChatChamp Scoring API",
			"version": "1.0.0",
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initGrader returns nil when the configured provider cannot be created.
func initGrader(cfg *config.Config, gemini services.GeminiService) services.TextGenerator {
	switch cfg.Grading.Provider {
	case config.ProviderGemini:
		if gemini == nil {
			log.Println("⚠️  Grading provider gemini selected but unavailable")
			return nil
		}
		log.Printf("✅ Grading with Gemini (%s)\n", cfg.Gemini.Model)
		return gemini
	default:
		openai, err := services.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		if err != nil {
			log.Printf("⚠️  OpenAI unavailable, scoring disabled: %v\n", err)
			return nil
		}
		log.Printf("✅ Grading with OpenAI (%s)\n", cfg.OpenAI.Model)
		return openai
	}
}
