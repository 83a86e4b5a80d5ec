package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"swasthya/config"
	"swasthya/handlers"
	"swasthya/knowledge"
	"swasthya/middleware"
	"swasthya/routes"
	"swasthya/services/diet"
	"swasthya/services/dialog"
	"swasthya/services/ocr"
	"swasthya/services/predictor"
	"swasthya/services/translate"
	"swasthya/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	kb, err := knowledge.Load(config.AppConfig.DataDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load knowledge base: %v", err)
	}

	// Collaborators are constructed once here and injected; nothing is
	// loaded lazily at request time.
	var translator predictor.Translator
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		geminiTranslator, err := translate.NewGeminiTranslator(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize translator: %v", err)
		}
		translator = geminiTranslator
	} else {
		logger.Warn("main: no Gemini API key configured, translation fallback disabled")
	}

	symptomPredictor := predictor.NewClient(config.AppConfig.PredictorURL, translator)
	reportPipeline := ocr.NewReportPipeline(
		ocr.NewKolosalClient(config.AppConfig.OCRAPIURL, config.AppConfig.OCRAPIKey),
	)
	dietAdvisor := diet.NewKBAdvisor(kb)

	engine := dialog.NewEngine(kb, symptomPredictor, reportPipeline, dietAdvisor)
	chatHandler := handlers.NewChatHandler(engine)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, chatHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
