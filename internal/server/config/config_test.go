package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/seashells/internal/common"
	"github.com/dmitrijs2005/seashells/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvDatabaseURL, EnvHTTPAddr, EnvGRPCAddr, EnvLogLevel, flagx.ConfigEnvVar} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8000", c.EndpointAddrHTTP)
	assert.Equal(t, "", c.EndpointAddrGRPC)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 0, c.DBMaxOpenConns)
}

func TestValidate(t *testing.T) {
	c := &Config{}
	assert.ErrorIs(t, c.Validate(), common.ErrMissingDSN)

	c.DatabaseDSN = "sqlite://seashells.db"
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	clearEnv(t)

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, ":8000", c.EndpointAddrHTTP)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.ErrorIs(t, c.Validate(), common.ErrMissingDSN)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	clearEnv(t)

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_http": ":7000",
		"database_dsn":       "sqlite://from-json.db",
		"log_level":          "warn",
		"shutdown_timeout":   "9s",
	})

	t.Setenv(EnvDatabaseURL, "postgres://env/db")
	t.Setenv(EnvLogLevel, "error")
	os.Args = []string{"testbin", "-c", path, "-l", "debug"}

	c := LoadConfig()

	assert.Equal(t, ":7000", c.EndpointAddrHTTP, "json over defaults")
	assert.Equal(t, "postgres://env/db", c.DatabaseDSN, "env over json")
	assert.Equal(t, "debug", c.LogLevel, "flags over env")
	assert.Equal(t, 9*time.Second, c.ShutdownTimeout)
}

func TestParseEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHTTPAddr, ":9999")
	t.Setenv(EnvGRPCAddr, ":50051")

	c := &Config{EndpointAddrHTTP: ":8000", DatabaseDSN: "keep", LogLevel: "info"}
	parseEnv(c)

	assert.Equal(t, ":9999", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "keep", c.DatabaseDSN, "empty variable leaves value")
	assert.Equal(t, "info", c.LogLevel)
}
