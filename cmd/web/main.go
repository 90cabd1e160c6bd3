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
	"github.com/lynxmind/task-portal/internal/client"
	"github.com/lynxmind/task-portal/internal/config"
	"github.com/lynxmind/task-portal/internal/logger"
	"github.com/lynxmind/task-portal/internal/web"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("ui stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	gin.SetMode(cfg.Server.GinMode)

	api := client.New(cfg.Web.APIBaseURL, nil)
	server := web.NewServer(api, web.Options{
		SessionSecret: cfg.Web.SessionSecret,
		SecureCookie:  cfg.Server.GinMode == gin.ReleaseMode,
	}, log)

	router, err := server.Router()
	if err != nil {
		return fmt.Errorf("build ui router: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("api", cfg.Web.APIBaseURL).Msg("[ui] starting")
	if err := app.ListenAndServe(ctx, cfg.WebListenAddr(), router, cfg.Server.ShutdownTimeout, log); err != nil {
		return fmt.Errorf("ui server: %w", err)
	}
	return nil
}
