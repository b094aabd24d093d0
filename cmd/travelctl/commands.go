package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"travelbook/internal/domain/catalog"
	"travelbook/internal/domain/chat"
	"travelbook/internal/domain/notification"
	"travelbook/internal/server"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		if err := server.Migrate(e.db.WithContext(cmd.Context())); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		e.log.Info("migration completed")
		return nil
	},
}

var (
	dryRun    bool
	batchSize int
)

var normalizeListsCmd = &cobra.Command{
	Use:   "normalize-lists",
	Short: "Rewrite legacy list columns as JSON arrays",
	Long: `Walk every free-text list column (attractions, amenities, inclusions,
exclusions, languages, highlights) and rewrite values stored in a legacy
encoding as canonical JSON arrays. The parsed list is never changed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		reports, err := catalog.NormalizeLists(cmd.Context(), e.db, batchSize, dryRun, e.log)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tCOLUMN\tSCANNED\tREWRITTEN")
		for _, r := range reports {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", r.Table, r.Column, r.Scanned, r.Rewritten)
		}
		if dryRun {
			fmt.Fprintln(w, "(dry run, nothing written)")
		}
		return w.Flush()
	},
}

var olderThan time.Duration

var cleanupInquiriesCmd = &cobra.Command{
	Use:   "cleanup-inquiries",
	Short: "Delete closed inquiries and their messages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if olderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		svc := chat.NewService(chat.NewRepository(e.db), nil)
		n, err := svc.CleanupClosed(cmd.Context(), olderThan)
		if err != nil {
			return err
		}
		e.log.Info("closed inquiries removed", zap.Int64("count", n), zap.Duration("older_than", olderThan))
		return nil
	},
}

var notificationRetention time.Duration

var cleanupNotificationsCmd = &cobra.Command{
	Use:   "cleanup-notifications",
	Short: "Delete old in-app notifications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		n, err := notification.NewService(notification.NewRepository(e.db)).Cleanup(cmd.Context(), notificationRetention)
		if err != nil {
			return err
		}
		e.log.Info("old notifications removed", zap.Int64("count", n), zap.Duration("older_than", notificationRetention))
		return nil
	},
}

func init() {
	normalizeListsCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	normalizeListsCmd.Flags().IntVar(&batchSize, "batch-size", 200, "Rows read per query")

	cleanupInquiriesCmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Minimum age of the last message in a closed inquiry")
	cleanupNotificationsCmd.Flags().DurationVar(&notificationRetention, "older-than", 90*24*time.Hour, "Minimum notification age")
}
