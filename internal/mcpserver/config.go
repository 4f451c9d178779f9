package mcpserver

import (
	"log/slog"
	"time"

	env "github.com/caarlos0/env/v11"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from DTOGEN_MCP_* environment variables.
type serverConfig struct {
	// AllowWrites permits generate_dtos to write files.
	AllowWrites bool `env:"ALLOW_WRITES" envDefault:"true"`
	// MaxContentSize limits inline spec content in bytes.
	MaxContentSize int `env:"MAX_CONTENT_SIZE" envDefault:"10485760"`
	// Timeout bounds a single translation.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

const envPrefix = "DTOGEN_MCP_"

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig(nil)

// loadConfig reads the configuration from environ, or from the process
// environment when environ is nil. Invalid values log a warning and fall
// back to the defaults.
func loadConfig(environ map[string]string) *serverConfig {
	var c serverConfig
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&c, opts); err != nil {
		slog.Warn("invalid MCP env var, using defaults", "error", err)
		c = serverConfig{}
		_ = env.ParseWithOptions(&c, env.Options{Prefix: envPrefix, Environment: map[string]string{}})
	}
	return &c
}
