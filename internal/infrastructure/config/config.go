package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=4000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret-change-me"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// AccessTokenTTL is the access token lifetime in seconds.
	AccessTokenTTL int `env:"ACCESS_TOKEN_EXPIRES_IN_SECONDS, default=3600"`

	// StorePath points at the JSON document file. The server refuses to
	// start when the file is missing or unreadable; seed it with initstore.
	StorePath string `env:"STORE_PATH, default=data/db.json"`

	TLS TLSConfig
}

// TLSConfig enables the HTTPS listener when both file paths are set.
type TLSConfig struct {
	Port     string `env:"HTTPS_PORT,    default=4443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

// Enabled reports whether the TLS listener should be started.
func (t TLSConfig) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
