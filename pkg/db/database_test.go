package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	t.Parallel()

	gdb, err := Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "postgres", "")
	assert.Error(t, err)

	_, err = Open(context.Background(), "oracle", "dsn")
	assert.Error(t, err)

	_, err = OpenMongo(context.Background(), "", "db")
	assert.Error(t, err)
}
