package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	packageapp "github.com/muhammadheryan/package-crud/application/packages"
	userapp "github.com/muhammadheryan/package-crud/application/user"
	"github.com/muhammadheryan/package-crud/cmd/config"
	mongoclient "github.com/muhammadheryan/package-crud/cmd/mongo"
	redisclient "github.com/muhammadheryan/package-crud/cmd/redis"
	_ "github.com/muhammadheryan/package-crud/docs"
	packageRepo "github.com/muhammadheryan/package-crud/repository/packages"
	redisRepo "github.com/muhammadheryan/package-crud/repository/redis"
	userRepo "github.com/muhammadheryan/package-crud/repository/user"
	"github.com/muhammadheryan/package-crud/thirdparty/rabbitmq"
	"github.com/muhammadheryan/package-crud/transport"
	"github.com/muhammadheryan/package-crud/utils/logger"
	validatorx "github.com/muhammadheryan/package-crud/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title PACKAGE CRUD API
// @version 1.0
// @description User and package CRUD API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "api"); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Connect to database
	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoclient.Close(ctx)
	}()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Event publisher is optional
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.GetAMQPURI())
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Warn("RabbitMQ disabled, entity events will not be published")
	}

	// Initialize repositories
	db := mongoclient.Database()
	UserRepo := userRepo.NewUserRepository(db)
	PackageRepo := packageRepo.NewPackageRepository(db)
	RedisRepo := redisRepo.NewRepository(redisclient.Get())

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo, publisher)
	PackageApp := packageapp.NewPackageApp(PackageRepo, RedisRepo, publisher)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := transport.NewMetricsMiddleware(reg)
	if err != nil {
		logger.Fatal("err register metrics", zap.Error(err))
	}

	httpTransport := transport.NewTransport(UserApp, PackageApp, transport.Options{
		InternalAPIKey: cfg.Internal.APIKey,
		Metrics:        metrics,
		Gatherer:       reg,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
