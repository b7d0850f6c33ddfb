// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads CLI configuration from the environment.
// Only non-secret settings live here; the bearer token goes to the
// credential store.
package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"gophsocial/cli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// APIURL is the base path of the social API, including the version prefix.
	APIURL string `env:"GOPHSOCIAL_API_URL, default=http://localhost:8080/v1"`
	// LogLevel is the minimum zerolog level for diagnostic output.
	LogLevel string `env:"GOPHSOCIAL_LOG_LEVEL, default=warn"`
	// HTTPTimeout bounds every request to the API.
	HTTPTimeout time.Duration `env:"GOPHSOCIAL_HTTP_TIMEOUT, default=10s"`
	// NoKeychain forces the file-backed credential store (headless hosts, CI).
	NoKeychain bool `env:"GOPHSOCIAL_NO_KEYCHAIN, default=false"`
}

// Load reads configuration from the environment, honouring a .env file in
// the working directory and one under the per-user config directory. The
// working directory takes precedence; real environment variables beat both.
func Load(ctx context.Context) (Config, error) {
	// Missing .env files are the normal case.
	_ = godotenv.Load()
	if dir, err := xdg.ConfigDir(); err == nil {
		_ = godotenv.Load(filepath.Join(dir, ".env"))
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
