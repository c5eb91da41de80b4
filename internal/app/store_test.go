package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/naturals/pkg/config"
)

func TestOpenStore_SQLite(t *testing.T) {
	ctx := context.Background()
	store, err := OpenStore(ctx, config.Config{StoreDriver: "sqlite", DatabaseURL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	require.NoError(t, store.Ping(ctx))
	n, err := store.CountBanners(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), config.Config{StoreDriver: "oracle", DatabaseURL: "x"})
	require.Error(t, err)
}

func TestOpenIndex_Disabled(t *testing.T) {
	idx, err := OpenIndex(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.Nil(t, idx)
}
