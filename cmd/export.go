package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/blusalice3/sokubaikai/core/config"
	"github.com/blusalice3/sokubaikai/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the export command
	exportEvent string
	exportOut   string
)

// exportCmd dumps an event's items as a CSV file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an event's items as CSV",
	Long: `Export an event's items as a BOM-prefixed CSV table in route order.

Examples:
  # Write to stdout
  export --event c106

  # Write to a file
  export --event c106 --out c106.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportEvent, "event", "", "Event name to export (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to stdout)")
	_ = exportCmd.MarkFlagRequired("event")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc, err := newEventService(cfg, l)
	if err != nil {
		return err
	}
	if err := svc.Load(ctx); err != nil {
		return err
	}

	data, err := svc.ExportCSV(exportEvent)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	l.Info("Export written", zap.String("event", exportEvent), zap.String("file", exportOut))
	return nil
}
