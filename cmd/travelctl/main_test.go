package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/database"
	"travelbook/internal/domain/catalog"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestNormalizeListsCommand(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	dsn := filepath.Join(t.TempDir(), "travelctl.db")

	run(t, "--database-url", dsn, "migrate")

	db, err := database.Connect(dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	hotel := &catalog.Hotel{Name: "Old Hotel", PricePerNight: 80, Amenities: "Parking, Breakfast"}
	require.NoError(t, db.Create(hotel).Error)

	out := run(t, "--database-url", dsn, "normalize-lists", "--dry-run")
	assert.Contains(t, out, "amenities")
	assert.Contains(t, out, "dry run")

	var stored catalog.Hotel
	require.NoError(t, db.First(&stored, hotel.ID).Error)
	assert.Equal(t, "Parking, Breakfast", stored.Amenities)

	run(t, "--database-url", dsn, "normalize-lists", "--dry-run=false")
	require.NoError(t, db.First(&stored, hotel.ID).Error)
	assert.Equal(t, `["Parking","Breakfast"]`, stored.Amenities)
}

func TestCleanupNotificationsCommand_RejectsZeroAge(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	dsn := filepath.Join(t.TempDir(), "travelctl.db")

	run(t, "--database-url", dsn, "migrate")

	rootCmd.SetArgs([]string{"--database-url", dsn, "cleanup-notifications", "--older-than", "0s"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	assert.Error(t, rootCmd.Execute())
}

func TestCleanupInquiriesCommand_AgeIsLastMessage(t *testing.T) {
	flag := cleanupInquiriesCmd.Flags().Lookup("older-than")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Usage, "last message")
	assert.Equal(t, "720h0m0s", flag.DefValue)
}
