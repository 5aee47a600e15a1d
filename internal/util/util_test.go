package util

import (
	"testing"
	"time"

	"vidtube/internal/domain/lifecycle"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "empty staged file", bytes: 0, expected: "0 B"},
		{name: "tiny avatar", bytes: 512, expected: "512 B"},
		{name: "thumbnail sized avatar", bytes: 48 * 1024, expected: "48.0 KB"},
		{name: "phone photo cover", bytes: 3*1024*1024 + 512*1024, expected: "3.5 MB"},
		{name: "default body limit", bytes: 10 * 1024 * 1024, expected: "10.0 MB"},
		{name: "oversized upload", bytes: 2 * 1024 * 1024 * 1024, expected: "2.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "store timeout", duration: 5 * time.Second, expected: "5s"},
		{name: "shutdown timeout", duration: lifecycle.DefaultTimeout, expected: "10s"},
		{name: "access token ttl", duration: 15 * time.Minute, expected: "15m0s"},
		{name: "sub-second rounds up", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "refresh token ttl", duration: 240 * time.Hour, expected: "240h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
