package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evan-taojiangcb/huangli-programmer/internal/adapters/cache"
	"github.com/evan-taojiangcb/huangli-programmer/internal/adapters/clock"
	httpadapter "github.com/evan-taojiangcb/huangli-programmer/internal/adapters/http"
	"github.com/evan-taojiangcb/huangli-programmer/internal/adapters/pricefeed"
	"github.com/evan-taojiangcb/huangli-programmer/internal/app"
	"github.com/evan-taojiangcb/huangli-programmer/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	fortunes := cache.NewMemoryStore(cfg.CacheMaxEntries, logger)
	svc := app.NewAlmanacService(fortunes, clock.System{}, cfg.Location)

	// The ticker is decorative; auto-seeded randomness is fine here.
	feed := pricefeed.NewMockFeed(cfg.TickerBasePrice, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), logger)
	ticker := app.NewTickerService(feed)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, ticker)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go feed.Run(ctx, cfg.TickerInterval)

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "timezone", cfg.Location.String())
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
