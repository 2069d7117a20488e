package cmd

import (
	"fmt"
	"os"

	"s3hive/core/config"
	"s3hive/core/hive"
	"s3hive/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "s3hive",
	Short: "S3 bucket management tool",
	Long: `s3hive is a thin convenience layer over S3-compatible object storage.
It exposes bucket and object operations (list, upload, download, delete,
presigned URLs) without composing low-level API calls by hand.

Connection settings come from the environment or a .env file:
STORAGE_ENDPOINT, STORAGE_REGION, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// newHive loads configuration and builds the facade with its logger attached.
func newHive() (*hive.Hive, *config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	h, err := hive.New(cfg.Storage, hive.WithLogger(logg))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return h, cfg, logg, nil
}
