package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lynxmind/task-portal/internal/app"
	"github.com/lynxmind/task-portal/internal/config"
	"github.com/lynxmind/task-portal/internal/database"
	"github.com/lynxmind/task-portal/internal/handlers"
	"github.com/lynxmind/task-portal/internal/logger"
	"github.com/lynxmind/task-portal/internal/repository"
	"github.com/lynxmind/task-portal/internal/services"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Connect to database
	if err := database.Connect(cfg.Database, log); err != nil {
		return err
	}
	defer database.Close()

	// Run migrations
	if err := database.Migrate(database.GetDB(), log); err != nil {
		return err
	}

	taskRepo := repository.NewTaskRepository(database.GetDB())
	taskService := services.NewTaskService(taskRepo)
	if n, err := taskService.CountTasks(context.Background()); err == nil {
		log.Info().Int64("tasks", n).Str("driver", cfg.Database.Driver).Msg("database ready")
	}

	taskHandler := handlers.NewTaskHandler(taskService, log, cfg.Server.StrictNotFound)
	router := handlers.NewRouter(taskHandler, cfg.Server.CORSOrigin, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.ListenAndServe(ctx, cfg.ListenAddr(), router, cfg.Server.ShutdownTimeout, log); err != nil {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}
