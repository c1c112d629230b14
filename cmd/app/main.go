package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"deliveries/cmd"
	"deliveries/internal/adapters/out/postgres"
	"deliveries/internal/adapters/out/postgres/restaurantrepo"
	"deliveries/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const subscribeTimeout = 30 * time.Second

func main() {
	configs := getConfigs()

	if err := postgres.CreateDbIfNotExists(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	); err != nil {
		log.Fatalf("create database: %v", err)
	}

	gormDB, err := postgres.ConnectDb(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err = postgres.MigrateDb(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	seeded, err := restaurantrepo.Seed(gormDB)
	if err != nil {
		log.Fatalf("seed restaurants: %v", err)
	}
	if seeded > 0 {
		log.Infof("seeded %d restaurants", seeded)
	}

	root := cmd.NewCompositionRoot(configs, gormDB)

	// The service is useless without the bus subscription: inbound order
	// events are the only way deliveries get created.
	ctx, cancel := context.WithTimeout(context.Background(), subscribeTimeout)
	defer cancel()
	err = root.EventBusClient().Subscribe(
		ctx, []string{ports.EventTypeOrderProcessed}, configs.EventCallbackURL)
	if err != nil {
		log.Fatalf("subscribe to event bus: %v", err)
	}

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		EventBusURL:      os.Getenv("EVENT_BUS_URL"),
		EventCallbackURL: os.Getenv("EVENT_CALLBACK_URL"),
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
