// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.APIURL != "http://localhost:8080/v1" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.NoKeychain {
		t.Error("NoKeychain should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GOPHSOCIAL_API_URL", "https://social.example.com/v1")
	t.Setenv("GOPHSOCIAL_LOG_LEVEL", "debug")
	t.Setenv("GOPHSOCIAL_HTTP_TIMEOUT", "3s")
	t.Setenv("GOPHSOCIAL_NO_KEYCHAIN", "true")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.APIURL != "https://social.example.com/v1" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if !cfg.NoKeychain {
		t.Error("NoKeychain override not applied")
	}
}

func TestLoadConfigDirDotEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "gophsocial")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	env := "GOPHSOCIAL_API_URL=https://dotenv.example.com/v1\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// The variable must be unset so the .env value is the one picked up;
	// t.Setenv registers the restore.
	t.Setenv("GOPHSOCIAL_API_URL", "")
	os.Unsetenv("GOPHSOCIAL_API_URL")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.APIURL != "https://dotenv.example.com/v1" {
		t.Errorf("APIURL = %q, want the config-dir .env value", cfg.APIURL)
	}
}

func TestLoadRealEnvBeatsDotEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "gophsocial")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	env := "GOPHSOCIAL_LOG_LEVEL=trace\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("GOPHSOCIAL_LOG_LEVEL", "error")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, the real environment must win over .env", cfg.LogLevel)
	}
}
