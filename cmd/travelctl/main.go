package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelbook/internal/config"
	"travelbook/internal/database"
	"travelbook/internal/pkg/logger"
)

var databaseURL string

// rootCmd is the maintenance CLI for the booking database.
var rootCmd = &cobra.Command{
	Use:          "travelctl",
	Short:        "Maintenance tasks for the travel booking database",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Database DSN (default: DATABASE_URL)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(normalizeListsCmd)
	rootCmd.AddCommand(cleanupInquiriesCmd)
	rootCmd.AddCommand(cleanupNotificationsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// env is what every subcommand needs: configuration, a logger and an open
// database.
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	lg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: lg, db: db}, nil
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = e.log.Sync()
}
