package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	auditapp "github.com/muhammadheryan/package-crud/application/audit"
	"github.com/muhammadheryan/package-crud/cmd/config"
	mongoclient "github.com/muhammadheryan/package-crud/cmd/mongo"
	auditRepo "github.com/muhammadheryan/package-crud/repository/audit"
	"github.com/muhammadheryan/package-crud/thirdparty/rabbitmq"
	"github.com/muhammadheryan/package-crud/utils/logger"
	"go.uber.org/zap"
)

// audit consumes entity events and stores them in the audit_events collection
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "audit"); err != nil {
		panic(err)
	}
	defer logger.Close()

	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoclient.Close(ctx)
	}()

	AuditApp := auditapp.NewAuditApp(auditRepo.NewAuditRepository(mongoclient.Database()))

	consumer, err := rabbitmq.NewConsumer(cfg.GetAMQPURI(), AuditApp.Record)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Audit consumer running", zap.String("queue", rabbitmq.AuditQueue))

	select {
	case <-ctx.Done():
		logger.Info("Shutting down audit consumer")
	case <-done:
		logger.Warn("Audit consumer channel closed")
	}
}
