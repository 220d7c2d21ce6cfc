package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mailroom/api"
	"mailroom/cmd"
	httpadapter "mailroom/internal/adapters/in/http"
	"mailroom/internal/adapters/out/postgres"
	"mailroom/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(ctx, configs, logger)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	if configs.SeedsAdmin() {
		seedAdmin(ctx, &app, configs, logger)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func mustOpenDatabase(ctx context.Context, configs cmd.Config, logger *slog.Logger) *gorm.DB {
	if configs.DBCreate {
		if _, err := postgres.EnsureDatabase(ctx, configs.MaintenanceDSN(), configs.DBName, logger); err != nil {
			log.Fatalf("Error creating database: %v", err)
		}
	}

	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func seedAdmin(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	command, err := commands.NewBootstrapAdminCommand(
		configs.SeedAdminName, configs.SeedAdminEmail, configs.SeedAdminPassword)
	if err != nil {
		log.Fatalf("Invalid seed admin: %v", err)
	}

	handler := app.CreateBootstrapAdminCommandHandler()
	created, err := handler.Handle(ctx, command)
	if err != nil {
		log.Fatalf("Error seeding admin: %v", err)
	}
	if created {
		logger.InfoContext(ctx, "Super admin created", "email", configs.SeedAdminEmail)
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := api.Load()
	if err != nil {
		log.Fatalf("Error loading OpenAPI contract: %v", err)
	}
	if err = api.RegisterSwagger(doc); err != nil {
		log.Fatalf("Error registering Swagger document: %v", err)
	}

	e := httpadapter.NewRouter(app.CreateServer(), doc, logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("Listening", "port", port)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
