package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/config"
	"github.com/awmpietro/algoviz/internal/observability"
	"github.com/awmpietro/algoviz/internal/transport/httptransport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := observability.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	solveObserver := observability.NewAsyncSolveObserver(observability.Fanout{
		observability.NewSolveLogger(logger),
		observability.NewCollector(prometheus.DefaultRegisterer),
	}, cfg.ObsBuffer)
	defer solveObserver.Close()

	svc := app.NewService(
		app.WithObserver(solveObserver),
		app.WithLogger(logger),
		app.WithMaxTraceCells(cfg.MaxTraceCells),
	)
	h := httptransport.NewHandler(svc,
		httptransport.WithLogger(logger),
		httptransport.WithMaxBodyBytes(int64(cfg.MaxBodyBytes)),
	)

	mux := http.NewServeMux()
	h.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h.Middleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.String("error", err.Error()))
	}
}
