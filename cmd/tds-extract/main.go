package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/taxkit/tds-extract/internal/batch"
	"github.com/taxkit/tds-extract/internal/config"
	"github.com/taxkit/tds-extract/internal/extract"
	"github.com/taxkit/tds-extract/internal/pdf"
	"github.com/taxkit/tds-extract/internal/report"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures the process-wide logger. Debug mode raises the
// level and tees everything into a file-backed sink as well.
func setupLogging(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	var out io.Writer = os.Stdout

	if cfg.Debug {
		level = slog.LevelDebug
		if logFile, err := os.OpenFile(config.DefaultLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = io.MultiWriter(os.Stdout, logFile)
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}
	if cfg.Debug {
		logger.Debug("debug mode enabled", "config", cfg.String())
	}

	spec := extract.NewSpec(logger)
	pdfService := pdf.NewService(cfg.MaxFileSize, cfg.Debug, logger)
	extractor := extract.NewExtractor(spec, logger)
	writer := report.NewWriter(logger)
	driver := batch.NewDriver(pdfService, extractor, writer, cfg.Workers, logger)

	if err := driver.Run(cfg.InputDir, cfg.OutputFile); err != nil {
		logger.Error("extraction encountered issues", "error", err)
		os.Exit(1)
	}

	logger.Info("extraction completed successfully", "output", cfg.OutputFile)
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("TDS Extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
