package config

import "os"

const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvHTTPAddr    = "HTTP_ADDR"
	EnvGRPCAddr    = "GRPC_ADDR"
	EnvLogLevel    = "LOG_LEVEL"
)

// parseEnv overlays the variables that are set and non-empty.
func parseEnv(config *Config) {
	for name, dst := range map[string]*string{
		EnvDatabaseURL: &config.DatabaseDSN,
		EnvHTTPAddr:    &config.EndpointAddrHTTP,
		EnvGRPCAddr:    &config.EndpointAddrGRPC,
		EnvLogLevel:    &config.LogLevel,
	} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
}
