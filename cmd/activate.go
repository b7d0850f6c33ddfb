// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// activateCmd redeems the activation token from the confirmation email.
var activateCmd = &cobra.Command{
	Use:   "activate <token>",
	Short: "Activate a freshly registered account",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		stop := startInterstitial("Activating your account")
		err = a.client.Activate(ctx, args[0])
		stop()
		if err != nil {
			return a.presentError(err, "activating your account")
		}

		fmt.Println("✅ Account activated. You can sign in now:")
		fmt.Printf("   %s login\n", appName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activateCmd)
}
