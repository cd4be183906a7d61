package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/config"
	"alfredoptarigan/resume-relevance/internal/handlers"
	"alfredoptarigan/resume-relevance/internal/logger"
	"alfredoptarigan/resume-relevance/internal/repositories"
	"alfredoptarigan/resume-relevance/internal/scoring"
	"alfredoptarigan/resume-relevance/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.Logging.JSON, cfg.Logging.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	log.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	// Initialize database
	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	// Initializes repositories
	resumeRepo := repositories.NewResumeRepository(db)
	jdRepo := repositories.NewJobDescriptionRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)
	log.Info("✅ Repositories initialized successfully")

	// Skill ontology
	ontology, err := scoring.LoadOntology(cfg.Scoring.OntologyPath)
	if err != nil {
		log.Fatal("❌ Failed to load skill ontology", zap.Error(err))
	}

	pipelineCfg, err := services.PipelineConfig(cfg.Scoring, ontology)
	if err != nil {
		log.Fatal("❌ Invalid scoring configuration", zap.Error(err))
	}

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}

	ctx := context.Background()

	embedder, err := services.NewEmbedder(ctx, cfg, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize embedder", zap.Error(err))
	}
	log.Info("✅ Embedder initialized successfully")

	// Qdrant is optional; semantic search answers 503 without it
	var index services.VectorIndex
	if cfg.Qdrant.Enabled() {
		qdrantIndex, err := services.NewQdrantIndex(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			cfg.Scoring.EmbedDimensions,
			log,
		)
		if err != nil {
			log.Fatal("❌ Failed to initialize Qdrant", zap.Error(err))
		}
		if err := qdrantIndex.InitCollection(ctx); err != nil {
			log.Fatal("❌ Failed to initialize Qdrant collection", zap.Error(err))
		}
		index = qdrantIndex
		log.Info("✅ Qdrant initialized successfully", zap.String("collection", cfg.Qdrant.Collection))
	} else {
		log.Info("⚠️ QDRANT_URL not set, semantic search disabled")
	}

	ingestService := services.NewIngestService(
		resumeRepo,
		jdRepo,
		services.NewTextExtractor(),
		embedder,
		index,
		services.NewSkillExtractorFor(cfg.Scoring, ontology),
		ontology,
		log,
	)
	evaluatorService := services.NewEvaluatorService(
		evalRepo,
		resumeRepo,
		jdRepo,
		scoring.NewPipeline(embedder, pipelineCfg, log),
		log,
	)
	searchService := services.NewSearchService(evalRepo, resumeRepo, jdRepo, embedder, index)
	log.Info("✅ Services initialized successfully")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Relevance API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, handlers.Handlers{
		Upload:     handlers.NewUploadHandler(ingestService, storageService, log),
		Evaluation: handlers.NewEvaluationHandler(evaluatorService),
		Result:     handlers.NewResultHandler(evaluatorService, searchService),
		Search:     handlers.NewSearchHandler(searchService),
	})

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Relevance API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload/resume",
				"POST /api/v1/upload/jd",
				"POST /api/v1/upload/jd-file",
				"POST /api/v1/evaluate",
				"GET /api/v1/evaluations/dashboard",
				"GET /api/v1/evaluations/:id",
				"GET /api/v1/search/shortlist",
				"GET /api/v1/search/matrix",
				"GET /api/v1/search/semantic",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
