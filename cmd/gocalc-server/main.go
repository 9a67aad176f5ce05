// Command gocalc-server serves the gocalc HTTP JSON API.
//
// Usage:
//
//	gocalc-server
//	gocalc-server --config gocalc.yaml --addr :9090
//
// Example requests:
//
//	curl http://localhost:8080/health
//	curl http://localhost:8080/v1/operations
//	curl -X POST http://localhost:8080/v1/calculate \
//	  -H "Content-Type: application/json" \
//	  -d '{"op":"divide","a":6,"b":3}'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/internal/httpd"
	"github.com/mamaar/gocalc/pkg/watch"
)

const watchDebounce = 500 * time.Millisecond

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file (defaults to searching gocalc.yaml)")
		addrFlag    = flag.String("addr", "", "Listen address (overrides http.addr from config)")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging and gin debug mode")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gocalc-server v%s\n", httpd.ServiceVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.HTTP.Addr = *addrFlag
	}

	logCfg := cfg.Log
	if *debugFlag {
		logCfg.Level = "debug"
	}
	logger, level, err := config.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *debugFlag {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store := config.NewStore(cfg)
	registry := prometheus.NewRegistry()
	metrics := httpd.NewMetrics(registry)
	handlers := httpd.NewHandlers(store, logger, metrics)
	router := httpd.NewRouter(handlers, logger, metrics, registry)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gocalc-server listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("version", httpd.ServiceVersion),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if path := watchTarget(*configFlag); path != "" {
		startReloader(ctx, g, path, store, level, logger)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// watchTarget picks the config file to hot-reload: the explicit --config
// path, or gocalc.yaml in the working directory when one exists.
func watchTarget(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("gocalc.yaml"); err == nil {
		return "gocalc.yaml"
	}
	return ""
}

func startReloader(ctx context.Context, g *errgroup.Group, path string, store *config.Store, level zap.AtomicLevel, logger *zap.Logger) {
	watcher, err := watch.NewWatcher(path, watchDebounce, logger)
	if err != nil {
		logger.Warn("config watcher unavailable, hot reload disabled",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	reloader := config.NewReloader(path, store, level, logger)
	ch := make(chan []watch.ChangeEvent, 4)

	g.Go(func() error {
		defer func() { _ = watcher.Close() }()
		if err := watcher.Run(ctx, ch); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})
	g.Go(func() error {
		reloader.Run(ctx, ch)
		return nil
	})

	logger.Info("watching config for changes", zap.String("path", path))
}
