// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/config"
	"gophsocial/cli/internal/credstore"
	"gophsocial/cli/internal/logging"
	"gophsocial/cli/internal/session"
)

// app bundles the wired collaborators every command works with: config,
// credential store, API client and the session manager. It is built per
// invocation and passed explicitly, never looked up ambiently.
type app struct {
	cfg     config.Config
	store   credstore.Store
	client  api.Client
	session *session.Manager
}

// newApp loads configuration and wires the credential store, API client and
// session manager together.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.LogLevel)

	store, err := credstore.Open(cfg.NoKeychain)
	if err != nil {
		return nil, err
	}

	client := api.New(store, api.Options{BaseURL: cfg.APIURL, Timeout: cfg.HTTPTimeout})
	return &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		session: session.New(store, client),
	}, nil
}
