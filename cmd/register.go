// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerUsername string
	registerEmail    string
)

// registerCmd creates a new account. The account stays inactive until the
// activation token from the confirmation email is redeemed (see activate).
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		username := registerUsername
		if username == "" {
			if username, err = promptLine("Username: "); err != nil {
				return err
			}
		}
		email := registerEmail
		if email == "" {
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		stop := startInterstitial("Creating your account")
		user, err := a.client.Register(ctx, username, email, password)
		stop()
		if err != nil {
			return a.presentError(err, "creating your account")
		}

		fmt.Printf("✅ Account created for %s (#%d).\n", user.Username, user.ID)
		fmt.Println("   Check your email for the activation link, then run:")
		fmt.Printf("   %s activate <token>\n", appName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Username for the new account (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email for the new account (prompted when omitted)")
}
