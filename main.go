// File: skyline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skyline/config"
	"skyline/cron"
	"skyline/database"
	bookingRepoPkg "skyline/database/repository/booking"
	customerRepoPkg "skyline/database/repository/customer"
	flightRepoPkg "skyline/database/repository/flight"
	"skyline/handlers"
	"skyline/routes"
	"skyline/services/assistant"
	"skyline/services/customer"
	"skyline/services/tasks"
	"skyline/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if config.AppConfig.SeedDemoData {
		if err := database.SeedDemoData(); err != nil {
			logger.Sugar().Fatalf("main: failed to seed demo data: %v", err)
		}
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	flightRepo := flightRepoPkg.NewMongoFlightRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()

	// services.
	customerService := &customer.DefaultCustomerService{
		Repo: customerRepo,
	}
	handlers.SetCustomerService(customerService)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	notifier := &tasks.ItineraryNotifier{Client: asynqClient}

	ctxTTL := time.Duration(config.AppConfig.ContextTTLMin) * time.Minute
	ctxStore := assistant.NewRedisContextStore(utils.GetCacheClient(), ctxTTL)
	history := assistant.NewRedisHistory(utils.GetCacheClient(), config.AppConfig.HistoryLimit)

	assistantRouter := &assistant.Router{}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		classifier, err := assistant.NewGeminiClassifier(key)
		if err != nil {
			logger.Sugar().Warnf("main: Gemini classifier unavailable, routing by keywords: %v", err)
		} else {
			assistantRouter.Classifier = classifier
		}
	}

	searchFlow := &assistant.SearchFlow{
		Contexts: ctxStore,
		Flights:  flightRepo,
	}
	bookingFlow := &assistant.BookingFlow{
		Contexts: ctxStore,
		Flights:  flightRepo,
		Bookings: bookingRepo,
		Notifier: notifier,
	}
	responders := &assistant.Responders{
		Flights:   flightRepo,
		Bookings:  bookingRepo,
		Customers: customerRepo,
	}
	assistantService := assistant.NewAssistantService(assistantRouter, searchFlow, bookingFlow, responders, history)
	handlers.SetAssistantService(assistantService)

	// Background itinerary worker and health monitor.
	cron.InitItineraryWorker(bookingRepo, customerRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	routes.RegisterRoutes(router)

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

	asynqClient.Close()
	logger.Sugar().Info("main: server stopped gracefully")
}
