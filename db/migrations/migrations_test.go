package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embedMigrations, migrationDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, e := range entries {
		body, err := fs.ReadFile(embedMigrations, migrationDir+"/"+e.Name())
		require.NoError(t, err)
		require.Contains(t, string(body), "-- +goose Up", e.Name())
		require.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestSchemaIsAdditive(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, migrationDir+"/00002_listing_status.sql")
	require.NoError(t, err)

	up := strings.Split(string(body), "-- +goose Down")[0]
	require.Contains(t, up, "ADD COLUMN IF NOT EXISTS status")
	require.Contains(t, up, "DEFAULT 'available'")
	require.Contains(t, up, "ADD COLUMN IF NOT EXISTS claimed_by")
}
