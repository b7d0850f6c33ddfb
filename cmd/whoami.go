// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pterm/pterm"
)

// whoamiCmd shows the current identity. It runs the full hydration path, so
// an expired or server-rejected credential shows up as signed out here.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently signed-in account",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		a.session.Hydrate(ctx)
		stop := startInterstitial("Checking your session")
		snap, err := a.session.Wait(ctx)
		stop()
		if err != nil {
			return err
		}

		if snap.User == nil {
			fmt.Println("🔒 You're not signed in yet!")
			fmt.Printf("   Run '%s login' to get started.\n", appName)
			return nil
		}

		pterm.Printf("👤 Signed in as %s (#%d, %s)\n", snap.User.Username, snap.User.ID, snap.User.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
