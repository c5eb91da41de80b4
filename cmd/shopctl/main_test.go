package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_SQLite(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "shop.db"))
	t.Setenv("ES_URL", "")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Database seeded successfully")

	out, err = run(t, "create-admin", "--email", "ops@naturals.in", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "admin ops@naturals.in created")

	out, err = run(t, "create-admin", "--email", "ops@naturals.in", "--password", "other")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	_, err = run(t, "create-admin", "--email", "x@naturals.in")
	require.Error(t, err, "password flag is required")

	_, err = run(t, "reindex")
	require.EqualError(t, err, "ES_URL is not set")

	_, err = run(t, "seed", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
