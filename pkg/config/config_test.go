package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a", want: []string{"a"}},
		{in: " a, b ,,c ", want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CSV(tt.in), tt.in)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DEFAULT_ADMIN_EMAIL", "Admin@Example.com")

	cfg := Load()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "admin@example.com", cfg.DefaultAdminEmail)
	assert.Equal(t, "products", cfg.ESIndex)
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("X_INT", "42")

	assert.Equal(t, 42, EnvIntDefault("X_INT", 1))
	assert.Equal(t, 7, EnvIntDefault("X_MISSING", 7))
}
