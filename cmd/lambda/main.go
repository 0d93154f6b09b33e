package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/config"
	"github.com/awmpietro/algoviz/internal/observability"
	"github.com/awmpietro/algoviz/internal/transport/lambdatransport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := observability.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// Nothing scrapes a Lambda, so solve events only go to the log.
	solveObserver := observability.NewAsyncSolveObserver(observability.NewSolveLogger(logger), cfg.ObsBuffer)
	defer solveObserver.Close()

	svc := app.NewService(
		app.WithObserver(solveObserver),
		app.WithLogger(logger),
		app.WithMaxTraceCells(cfg.MaxTraceCells),
	)
	h := lambdatransport.NewHandler(svc, logger)

	lambda.Start(h.Handle)
}
