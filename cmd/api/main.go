package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizdeck/internal/adapter/feedback"
	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/domain"
	"quizdeck/internal/handler"
	"quizdeck/internal/logger"
	"quizdeck/internal/middleware"
	"quizdeck/internal/repository"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request after it completes
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.Database.URL)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepository := repository.NewSQLXUserRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)

	// Feedback stays available as a route even without a Gemini credential;
	// the service answers 503 until one is configured.
	var generator domain.FeedbackGenerator
	if cfg.Gemini.APIKey == "" {
		appLogger.Warn("GEMINI_API_KEY is not set; quiz feedback will be unavailable")
	} else {
		generator, err = feedback.NewGeminiFeedbackGenerator(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			appLogger.Fatal("Failed to create Gemini client", zap.Error(err))
		}
		appLogger.Info("Gemini feedback generator initialized", zap.String("model", cfg.Gemini.Model))
	}

	authService := service.NewAuthService(userRepository)
	quizService := service.NewQuizService(quizRepository)
	feedbackService := service.NewFeedbackService(generator)

	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(quizService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/health", handler.Health)
	app.Post("/health", handler.Health)

	apiGroup := app.Group("/api")

	apiGroup.Post("/register", authHandler.Register)
	apiGroup.Post("/login", authHandler.Login)

	apiGroup.Post("/quiz-sets/import-json", quizHandler.ImportQuizSet)
	apiGroup.Get("/quiz-sets", quizHandler.ListQuizSets)
	apiGroup.Get("/quiz-sets/:id/questions", quizHandler.ListQuestions)
	apiGroup.Put("/quiz-sets/:id", quizHandler.UpdateQuizSet)
	apiGroup.Delete("/quiz-sets/:id", quizHandler.DeleteQuizSet)
	apiGroup.Put("/questions/:id", quizHandler.UpdateQuestion)
	apiGroup.Delete("/questions/:id", quizHandler.DeleteQuestion)

	apiGroup.Post("/quiz-feedback", feedbackHandler.GenerateFeedback)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
