package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedPerDialect(t *testing.T) {
	for _, dir := range []string{PostgresDir, SQLiteDir} {
		entries, err := fs.ReadDir(Migrations, dir)
		require.NoError(t, err, dir)
		require.NotEmpty(t, entries, dir)

		b, err := fs.ReadFile(Migrations, dir+"/00001_create_seashells.sql")
		require.NoError(t, err)
		body := string(b)
		assert.True(t, strings.Contains(body, "-- +goose Up"), dir)
		assert.True(t, strings.Contains(body, "-- +goose Down"), dir)
		assert.True(t, strings.Contains(body, "CREATE TABLE IF NOT EXISTS seashells"), dir)
	}
}
