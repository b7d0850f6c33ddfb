// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gophsocial/cli/internal/guard"
)

var loginEmail string

// loginCmd signs the user in: it exchanges email and password for a bearer
// token, persists it and runs the full validation path (decode, expiry
// check, profile fetch) before reporting success.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with your email and password",
	Long: `The login command authenticates against the gophsocial API. The issued
bearer token is stored in the OS keychain (or a private file when no
keychain is available) and reused by every subsequent command until it
expires or the server rejects it.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		// If already signed in with a valid token, short-circuit.
		a.session.Hydrate(ctx)
		if snap, err := a.session.Wait(ctx); err == nil && snap.User != nil {
			fmt.Printf("Already signed in as %s\n", snap.User.Username)
			return nil
		}

		email := loginEmail
		if email == "" {
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		stop := startInterstitial("Signing in")
		tok, err := a.client.SignIn(ctx, email, password)
		stop()
		if err != nil {
			return a.presentError(err, "signing in")
		}

		// SignIn re-runs validation rather than trusting the fresh token.
		if err := a.session.SignIn(ctx, tok); err != nil {
			return err
		}
		stop = startInterstitial("Checking your session")
		snap, err := a.session.Wait(ctx)
		stop()
		if err != nil {
			return err
		}
		if guard.Decide(snap) != guard.Allow || snap.User == nil {
			return fmt.Errorf("sign-in succeeded but the session could not be validated")
		}

		fmt.Printf("👋 Welcome back, %s!\n", snap.User.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email to sign in with (prompted when omitted)")
}
