// File: medagenda/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medagenda/config"
	"medagenda/cron"
	"medagenda/handlers"
	"medagenda/middleware"
	"medagenda/routes"
	"medagenda/services/catalog"
	"medagenda/services/platform"
	"medagenda/services/registration"
	"medagenda/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	utils.InitSessionCache()
	utils.InitAuthCache()
	utils.InitCatalogCache()

	// External collaborators.
	platformClient := platform.NewClient(config.AppConfig.PlatformBaseURL, config.PlatformTimeout(), logger)
	authStore := platform.NewAuthStore(utils.GetAuthCacheClient(), logger)

	// Services.
	sessionStore := registration.NewRedisSessionStore(utils.GetSessionCacheClient(), config.SessionTTL(), logger)
	wizardSvc := registration.NewWizardService(sessionStore, platformClient, authStore, logger)
	catalogSvc := catalog.NewCatalogService(platformClient, utils.GetCatalogCacheClient(), config.CatalogTTL(), logger)

	// Background workers and monitors.
	cron.InitCatalogWorker(catalogSvc)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetCatalogCacheClient(),
	}, platformClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLoggerMiddleware(logger))
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Handlers and routes.
	registrationHandler := handlers.NewRegistrationHandler(wizardSvc, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc, logger)
	routes.RegisterRegistrationRoutes(router, registrationHandler)
	routes.RegisterCatalogRoutes(router, catalogHandler)
	routes.RegisterHealthRoute(router)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("medagenda registration gateway listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
}
