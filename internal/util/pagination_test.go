package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		skip, limit         int
		wantSkip, wantLimit int
	}{
		{0, 10, 0, 10},
		{40, 20, 40, 20},
		{-5, 0, 0, DefaultLimit},
		{0, 500, 0, 500},
	}
	for _, tt := range tests {
		skip, limit := Window(tt.skip, tt.limit, DefaultLimit)
		assert.Equal(t, tt.wantSkip, skip)
		assert.Equal(t, tt.wantLimit, limit)
	}
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("abc", 7))
	assert.Equal(t, 12, ParseIntDefault("12", 7))
}
