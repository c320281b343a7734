package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/daniel1mor3055/real-estate-investing/internal/config"
	"github.com/daniel1mor3055/real-estate-investing/internal/simulation"
	"github.com/daniel1mor3055/real-estate-investing/pkg/constants"
	"github.com/daniel1mor3055/real-estate-investing/pkg/output"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	perTrack := flag.Bool("per-track", false, "include the per-track breakdown")
	annual := flag.Bool("annual", false, "include the annual roll-up (for csv: emit it instead of the monthly schedule)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("invalid output format %s", outputFormat),
			zap.String("op", "main"),
		)
	}

	mortgage, err := conf.ToMortgage()
	if err != nil {
		logger.Fatal("invalid mortgage configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	simulator := simulation.NewSimulator(logger)
	result, err := simulator.RunMortgage(mortgage)
	if err != nil {
		logger.Fatal("simulation failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	opts := output.Options{
		StartDate: conf.Output.StartDate,
		PerTrack:  conf.Output.PerTrack || *perTrack,
		Annual:    conf.Output.Annual || *annual,
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		err = output.CsvFormat(result, opts)
	default:
		err = output.PrettyFormat(result, opts)
	}
	if err != nil {
		logger.Fatal("failed to render output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
