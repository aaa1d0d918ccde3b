package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/medicore/portal/internal/config"
	"github.com/medicore/portal/internal/events"
	"github.com/medicore/portal/internal/httpserver"
	"github.com/medicore/portal/internal/idgen"
	"github.com/medicore/portal/internal/repo"
	"github.com/medicore/portal/internal/search"
	"github.com/medicore/portal/internal/service"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/internal/store"
	"github.com/medicore/portal/pkg/db"
	"github.com/medicore/portal/pkg/logging"
	loggingmw "github.com/medicore/portal/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.ServiceName, cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	stateRepo := &repo.GormRepo{DB: database}
	if err := stateRepo.Migrate(); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
	if err != nil {
		logger.Warn("search_unavailable", "error", err)
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers)

	snapshots := store.New(state.Seed())
	portal := &service.Portal{
		Store:     snapshots,
		Repo:      stateRepo,
		Events:    publisher,
		ES:        esClient,
		IDs:       &idgen.Generator{},
		JWTSecret: cfg.JWTSecret,
	}

	if delay := cfg.SimulatedLatency; delay != 0 {
		portal.Latency = func(ctx context.Context, _ time.Duration) error {
			if delay < 0 {
				return nil
			}
			select {
			case <-time.After(delay):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	bridge := &repo.Bridge{Repo: stateRepo, Log: logger}
	snapshots.Subscribe(bridge.OnChange)

	bootCtx := logging.IntoContext(context.Background(), logger)
	if err := portal.Restore(bootCtx); err != nil {
		logger.Warn("restore_error", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(loggingmw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Handler:   &httpserver.PortalHTTP{Svc: portal},
		JWTSecret: cfg.JWTSecret,
	})

	go func() {
		addr := ":" + strconv.Itoa(cfg.ServerPort)
		logger.Info("starting portal", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if err := publisher.Close(); err != nil {
		logger.Error("events close", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
}
