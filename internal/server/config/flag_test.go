package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		initial     *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:8080", "-g", ":50051", "-d", "sqlite://shells.db",
			"-l", "debug", "-t", "12", "-m", "4",
		},
			initial: &Config{},
			expected: &Config{
				EndpointAddrHTTP: "127.0.0.1:8080",
				EndpointAddrGRPC: ":50051",
				DatabaseDSN:      "sqlite://shells.db",
				LogLevel:         "debug",
				ShutdownTimeout:  12 * time.Second,
				DBMaxOpenConns:   4,
			}},
		{name: "no flags keeps values", args: []string{"cmd", "-c", "cfg.json"},
			initial: &Config{EndpointAddrHTTP: ":8000", LogLevel: "info", ShutdownTimeout: 5 * time.Second},
			expected: &Config{
				EndpointAddrHTTP: ":8000",
				LogLevel:         "info",
				ShutdownTimeout:  5 * time.Second,
			}},
		{name: "bad int", args: []string{"cmd", "-t", "soon"},
			initial:     &Config{},
			expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := tt.initial

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
