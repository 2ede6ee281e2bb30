package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database            *Database
	HTTP                *HTTP
	UserService         *UserService
	ProductService      *ProductService
	NotificationService *NotificationService
	Telemetry           *Telemetry
	App                 *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type UserService struct {
	BaseURL string `env:"USER_SERVICE_URL"`
}

type ProductService struct {
	BaseURL string `env:"PRODUCT_SERVICE_URL"`
}

type NotificationService struct {
	BaseURL string `env:"NOTIFICATION_SERVICE_URL"`
}

type Telemetry struct {
	BaseURL     string `env:"TELEMETRY_SERVICE_URL"`
	ServiceName string `env:"TELEMETRY_SERVICE_NAME"`
}

func NewConfig() (*Config, error) {
	var db Database
	var httpConf HTTP
	var users UserService
	var products ProductService
	var notifications NotificationService
	var telemetry Telemetry
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&httpConf.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&users.BaseURL, "user-service", `http://localhost:8081`, "User service base URL")
	flag.StringVar(&products.BaseURL, "product-service", `http://localhost:8082`, "Product service base URL")
	flag.StringVar(&notifications.BaseURL, "notification-service", `http://localhost:8085`, "Notification service base URL")
	flag.StringVar(&telemetry.BaseURL, "telemetry-service", `http://localhost:8086`, "Telemetry service base URL")
	flag.StringVar(&telemetry.ServiceName, "service-name", `order-service`, "Service name reported in telemetry events")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&httpConf)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&users)
	if err != nil {
		return nil, fmt.Errorf("error parsing user service config: %w", err)
	}
	err = env.Parse(&products)
	if err != nil {
		return nil, fmt.Errorf("error parsing product service config: %w", err)
	}
	err = env.Parse(&notifications)
	if err != nil {
		return nil, fmt.Errorf("error parsing notification service config: %w", err)
	}
	err = env.Parse(&telemetry)
	if err != nil {
		return nil, fmt.Errorf("error parsing telemetry config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:            &db,
		HTTP:                &httpConf,
		UserService:         &users,
		ProductService:      &products,
		NotificationService: &notifications,
		Telemetry:           &telemetry,
		App:                 &app,
	}

	return &config, nil
}
