package main

import (
	"context"
	"fmt"

	"github.com/ecomward/order-service/internal/adapter/client/notification"
	"github.com/ecomward/order-service/internal/adapter/client/product"
	"github.com/ecomward/order-service/internal/adapter/client/user"
	"github.com/ecomward/order-service/internal/adapter/config"
	"github.com/ecomward/order-service/internal/adapter/handler/http"
	"github.com/ecomward/order-service/internal/adapter/logger"
	"github.com/ecomward/order-service/internal/adapter/storage"
	"github.com/ecomward/order-service/internal/adapter/storage/repository"
	"github.com/ecomward/order-service/internal/adapter/storage/seed"
	"github.com/ecomward/order-service/internal/adapter/telemetry"
	"github.com/ecomward/order-service/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}

	if err := seed.Load(ctx, repo, log.Named("Seed")); err != nil {
		log.Warn("seed data loading error", zap.Error(err))
	}

	telemetryClient, err := telemetry.NewClient(conf.Telemetry, log.Named("Telemetry"))
	if err != nil {
		log.Error("telemetry client creating error", zap.Error(err))
		return
	}

	userClient, err := user.NewClient(conf.UserService, telemetryClient, log.Named("UserClient"))
	if err != nil {
		log.Error("user client creating error", zap.Error(err))
		return
	}
	productClient, err := product.NewClient(conf.ProductService, telemetryClient, log.Named("ProductClient"))
	if err != nil {
		log.Error("product client creating error", zap.Error(err))
		return
	}
	notificationClient, err := notification.NewClient(conf.NotificationService, telemetryClient, log.Named("NotificationClient"))
	if err != nil {
		log.Error("notification client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, userClient, productClient, notificationClient,
		telemetryClient, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	healthHandler, err := http.NewHealthHandler(map[string]string{
		"user-service":    conf.UserService.BaseURL,
		"product-service": conf.ProductService.BaseURL,
	}, log.Named("Health handler"))
	if err != nil {
		log.Error("health handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, healthHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
