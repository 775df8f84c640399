package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/hooplink/hooplink/pkg/config"
	"github.com/hooplink/hooplink/pkg/gamelog"
	"github.com/hooplink/hooplink/pkg/logging"
	"github.com/hooplink/hooplink/pkg/metrics"
	"github.com/hooplink/hooplink/pkg/pipeline"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config (defaults apply when empty)")
		inputPath  = flag.String("input", "", "path to game-log CSV (required)")
		outputPath = flag.String("output", "", "path for JSON results export (optional)")
		topN       = flag.Int("top", 10, "rows per report table")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: hooplink -input gamelogs.csv [-config config.yaml] [-output results.json]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hooplink: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	registry := metrics.NewRegistry()

	if cfg.MetricsListen != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", registry.Handler())
			if err := http.ListenAndServe(cfg.MetricsListen, mux); err != nil {
				logger.Warn("metrics listener stopped", logging.Error(err))
			}
		}()
		logger.Info("metrics listener started", logging.String("addr", cfg.MetricsListen))
	}

	rows, err := gamelog.ReadCSVFile(*inputPath)
	if err != nil {
		logger.Error("failed to read game logs", logging.Path(*inputPath), logging.Error(err))
		os.Exit(1)
	}

	result, err := pipeline.New(cfg, logger, registry).Run(rows)
	if err != nil {
		logger.Error("analysis failed", logging.Error(err))
		os.Exit(1)
	}

	fmt.Print(renderReport(result, *topN))

	if *outputPath != "" {
		if err := result.WriteJSON(*outputPath); err != nil {
			logger.Error("failed to write results", logging.Path(*outputPath), logging.Error(err))
			os.Exit(1)
		}
		logger.Info("results written", logging.Path(*outputPath))
	}
}
