// Command listing-audit consumes listing events from RabbitMQ and appends
// one line per event to an audit log.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/queue"
)

var (
	outPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "listing-audit",
	Short: "Append venue, artist and show listing events to an audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		qc := config.LoadQueueConfig()

		logger, err := config.NewLogger(logLevel, true)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		out, closeOut, err := openAuditLog(outPath)
		if err != nil {
			return err
		}
		defer closeOut()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("consuming listing events", zap.String("queue", qc.Queue), zap.String("out", outPath))
		err = queue.StartListingConsumer(ctx, qc.URL, qc.Queue, out, logger)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// openAuditLog opens path for appending, creating parent directories.  "-"
// writes to stdout.
func openAuditLog(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open audit log: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", filepath.Join("logs", "listing.log"), "audit log path, - for stdout")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "zap log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
