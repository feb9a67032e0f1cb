package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"climate-api/config"
	v1 "climate-api/internal/controllers/http/v1"
	"climate-api/internal/repositories"
	"climate-api/internal/services/climate"
	"climate-api/pkg/httpserver"
	"climate-api/pkg/logger"
	"climate-api/pkg/observe"
)

// @title Climate API
// @version 1.0.0
// @description Read-only climate observation API over station metadata and daily measurements.

// @contact.name Climate API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Climate
// @tag.description Climate observation queries
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.Sentry.Debug)
		if err != nil {
			log.Printf("error reporting disabled: %v", err)
		} else {
			writers = append(writers, hook)
		}
	}

	l := logger.NewZapLogger(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)

	repo, err := repositories.InitClimateRepository(ctx, cnf, l)
	if err != nil {
		l.Fatal("cannot open climate dataset", map[string]any{"err": err, "driver": cnf.Storage.Driver})
	}

	service := climate.NewClimateService(repo, l)

	app := httpserver.InitFiberServer(cnf.App.Name, cnf.Server, service.Ready)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"storage": repo.Name(),
		"version": cnf.App.Version,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if err := repo.Close(); err != nil {
			l.Error(err, map[string]any{"op": "close storage"})
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
