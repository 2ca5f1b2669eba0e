// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/seashells/internal/common"
)

// Config holds runtime settings for the seashells server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint; empty disables it.
//   - DatabaseDSN: postgres:// or sqlite:// DSN. Required.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
//   - DBMaxOpenConns: connection pool cap, 0 keeps the driver default.
type Config struct {
	EndpointAddrHTTP string
	EndpointAddrGRPC string
	DatabaseDSN      string
	LogLevel         string
	ShutdownTimeout  time.Duration
	DBMaxOpenConns   int
}

// LoadDefaults populates Config with development defaults.
// There is no default DSN.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.EndpointAddrGRPC = ""
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
	c.DBMaxOpenConns = 0
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return common.ErrMissingDSN
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
