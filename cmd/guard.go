// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/guard"
	"gophsocial/cli/internal/httperrors"
	"gophsocial/cli/internal/session"
)

// errSignInRequired marks a guarded command that was refused entry.
// Execute recognises it and exits non-zero without reprinting.
var errSignInRequired = errors.New("sign-in required")

// errReported marks a failure already explained on screen.
var errReported = errors.New("reported")

// presentError explains transport failures with troubleshooting hints
// naming the configured API host; remote rejections already carry a
// display-ready message and pass through.
func (a *app) presentError(err error, doing string) error {
	if err == nil {
		return nil
	}
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Status == 0 && reqErr.Unwrap() != nil {
		host := httperrors.ExtractHostFromURL(a.cfg.APIURL)
		_ = httperrors.FormatNetworkError(reqErr.Unwrap(), doing, host)
		return errReported
	}
	return err
}

// resolveSession hydrates the session and blocks through the loading
// interstitial until the guard can decide. On refusal the sign-in hint is
// printed here and errSignInRequired returned.
func (a *app) resolveSession(ctx context.Context) (session.Snapshot, error) {
	a.session.Hydrate(ctx)

	snap := a.session.Snapshot()
	if guard.Decide(snap) == guard.Wait {
		stop := startInterstitial("Checking your session")
		var err error
		snap, err = a.session.Wait(ctx)
		stop()
		if err != nil {
			return snap, err
		}
	}

	switch guard.Decide(snap) {
	case guard.Allow:
		return snap, nil
	default:
		fmt.Println("🔒 You're not signed in yet!")
		fmt.Printf("   Run '%s login' to get started.\n", appName)
		return snap, errSignInRequired
	}
}

// runGuarded wraps a command body so it only runs with an admitted session.
func runGuarded(fn func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		snap, err := a.resolveSession(cmd.Context())
		if err != nil {
			return err
		}
		return a.presentError(fn(cmd, a, snap, args), "talking to the server")
	}
}
