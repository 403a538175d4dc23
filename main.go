// File: roofline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"roofline/config"
	"roofline/cron"
	"roofline/database"
	appointmentRepo "roofline/database/repository/appointment"
	blockRuleRepo "roofline/database/repository/blockrule"
	callbackRepo "roofline/database/repository/callback"
	"roofline/handlers"
	"roofline/models"
	"roofline/routes"
	"roofline/services/scheduling"
	"roofline/services/tasks"
	"roofline/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	ruleRepo := blockRuleRepo.NewMongoBlockRuleRepo()
	cbRepo := callbackRepo.NewMongoCallbackRepo()

	// services.
	engine := scheduling.NewEngine(config.Regions(), models.OperatingHours(), config.Holidays())
	resync := tasks.NewEnqueuer()
	defer resync.Close()

	schedulingService := &scheduling.DefaultSchedulingService{
		ApptRepo:    apptRepo,
		RuleRepo:    ruleRepo,
		Engine:      engine,
		Cache:       utils.GetCacheClient(),
		Resync:      resync,
		SnapshotTTL: time.Duration(config.AppConfig.SnapshotTTLSeconds) * time.Second,
	}

	// Background workers: the delayed cache resync consumer and the
	// nightly purge of past-dated block rules.
	cron.InitResyncWorker(schedulingService)
	maintenance := cron.StartMaintenanceCron(ruleRepo)
	defer maintenance.Stop()

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Register routes with the assembled handler bundle.
	handlerBundle := handlers.NewHandlerBundle(schedulingService, cbRepo)
	routes.RegisterRoutes(router, handlerBundle)

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
