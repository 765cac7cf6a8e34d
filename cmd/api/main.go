package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/lethanhdat/meeting-extractor/internal/adapter/handler"
	meetinguse "github.com/lethanhdat/meeting-extractor/internal/usecase/meeting"
	pkgai "github.com/lethanhdat/meeting-extractor/pkg/ai"
	"github.com/lethanhdat/meeting-extractor/pkg/config"
	pkgvalidator "github.com/lethanhdat/meeting-extractor/pkg/validator"
)

// @title           Meeting Extractor API
// @version         1.0
// @description     Forwards user-submitted meeting notes to a generative-AI API and relays the structured extraction

// @host      localhost:3000
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = false

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics so no request can crash the process
	e.Use(middleware.Recover())

	// Request IDs for log correlation
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Outer transport guard; the 10MB file limit itself is enforced in the
	// handler so oversized uploads get the documented error body.
	e.Use(middleware.BodyLimit("25M"))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger, !cfg.IsProduction())

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	meetingService := meetinguse.NewService(groqClient, cfg, logger)
	meetingController := handler.NewMeetingController(meetingService, logger, cfg)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
