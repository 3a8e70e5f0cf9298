package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bankapp "github.com/gerSanzag/mibanco/internal/application/bank"
	"github.com/gerSanzag/mibanco/internal/infrastructure/auth"
	"github.com/gerSanzag/mibanco/internal/infrastructure/config"
	"github.com/gerSanzag/mibanco/internal/infrastructure/logger"
	"github.com/gerSanzag/mibanco/internal/infrastructure/persistence"
	"github.com/gerSanzag/mibanco/internal/interfaces/http/handler"
	"github.com/gerSanzag/mibanco/internal/interfaces/http/middleware"
	"github.com/gerSanzag/mibanco/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting bank service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Entity stores with their snapshot files
	registry := persistence.NewRegistry(persistence.RegistryConfig{
		DataDir:        cfg.Store.DataDir,
		FlushThreshold: cfg.Store.FlushThreshold,
		Logger:         log,
	})

	// Application services
	clientService := bankapp.NewClientService(registry.Clients, registry.Accounts, log)
	accountService := bankapp.NewAccountService(registry.Accounts, registry.Clients, log)
	cardService := bankapp.NewCardService(registry.Cards, registry.Accounts, log)
	fundsService := bankapp.NewFundsService(registry.Accounts, registry.Transactions, bankapp.NewAccountLocks(), log)

	// Authentication
	jwtService := auth.NewJWTService(cfg.JWT)
	credentials := auth.NewCredentials(cfg.Auth)

	// HTTP handlers
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version)
	authHandler := handler.NewAuthHandler(jwtService, credentials)
	clientHandler := handler.NewClientHandler(clientService)
	accountHandler := handler.NewAccountHandler(accountService)
	cardHandler := handler.NewCardHandler(cardService)
	fundsHandler := handler.NewFundsHandler(fundsService)
	auditHandler := handler.NewAuditHandler(registry)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register request validators", zap.Error(err))
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.JWTAuth(jwtService))
	engine.Use(middleware.AuditUser(registry))

	router.New(engine).
		Register(systemHandler, authHandler, clientHandler).
		Register(accountHandler, cardHandler, fundsHandler, auditHandler).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Persist any unflushed mutations before exit
	if err := registry.FlushAll(ctx); err != nil {
		log.Error("Error flushing entity stores", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
