package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/blusalice3/sokubaikai/core/config"
	"github.com/blusalice3/sokubaikai/core/logger"
	"github.com/blusalice3/sokubaikai/feature/event/models"
	"github.com/blusalice3/sokubaikai/feature/event/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileEvent  string
	reconcileURL    string
	reconcileSheet  string
	dryRunReconcile bool
	yesConfirm      bool
)

// reconcileCmd reconciles an event against its published spreadsheet.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile an event against the published circle spreadsheet",
	Long: `Reconcile an event's items against the published circle spreadsheet.

Reports items to add, update and delete. Nothing is applied without
confirmation.

Examples:
  # Report only (dry-run)
  reconcile --event c106 --dry-run

  # Reconcile using the event's stored sheet locator (with interactive confirmation)
  reconcile --event c106

  # Reconcile a specific sheet with auto-confirm (non-interactive)
  reconcile --event c106 --url https://docs.google.com/spreadsheets/d/abc --sheet day1 --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileEvent, "event", "", "Event name to reconcile (required)")
	reconcileCmd.Flags().StringVar(&reconcileURL, "url", "", "Spreadsheet URL (defaults to the event's stored locator)")
	reconcileCmd.Flags().StringVar(&reconcileSheet, "sheet", "", "Sheet name within the spreadsheet")
	reconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Report only, never apply")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the apply (non-interactive)")
	_ = reconcileCmd.MarkFlagRequired("event")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting reconciliation", zap.String("event", reconcileEvent))

	svc, err := newEventService(cfg, l)
	if err != nil {
		return err
	}
	if err := svc.Load(ctx); err != nil {
		return err
	}

	// Step 1: Plan (always runs)
	plan, err := svc.Plan(ctx, reconcileEvent, reconcileURL, reconcileSheet)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	// Step 2: Print report
	printReconcileReport(l, plan)

	if plan.Empty() {
		l.Info("Already in sync. Nothing to apply.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if dryRunReconcile {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmApply() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	if err := svc.Confirm(ctx, reconcileEvent, plan, reconcileURL, reconcileSheet); err != nil {
		return fmt.Errorf("failed to apply change-set: %w", err)
	}

	l.Info("Reconciliation applied",
		zap.Int("adds", plan.Summary.Adds),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("deletes", plan.Summary.Deletes))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.ChangeSet) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("fetched_rows", s.FetchedRows),
		zap.Int("skipped_rows", s.SkippedRows),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("adds", s.Adds),
		zap.Int("updates", s.Updates),
		zap.Int("deletes", s.Deletes),
	)

	// Show a sample of each bucket (max 5 for logger)
	logSample(l, "Planned delete", plan.ToDelete)
	logSample(l, "Planned update", plan.ToUpdate)
	logSample(l, "Planned add", plan.ToAdd)
}

func logSample(l *zap.Logger, msg string, items []models.Item) {
	maxShow := 5
	if len(items) < maxShow {
		maxShow = len(items)
	}
	for i := 0; i < maxShow; i++ {
		it := items[i]
		l.Info(msg,
			zap.String("circle", it.CircleName),
			zap.String("place", it.Block+"-"+it.Number),
			zap.String("title", it.Title),
		)
	}
	if len(items) > maxShow {
		l.Info("Additional entries not shown", zap.Int("count", len(items)-maxShow))
	}
}

// confirmApply prompts the user for confirmation or uses the --yes flag.
func confirmApply() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to apply the change-set: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
