// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gophsocial/cli/internal/session"
)

var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Short: "Follow a user so their posts appear in your feed",
	Args:  cobra.ExactArgs(1),

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stop := startInterstitial("Following")
		err = a.client.Follow(ctx, id)
		stop()
		if err != nil {
			return err
		}
		fmt.Printf("➕ Now following user #%d\n", id)
		return nil
	}),
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <user-id>",
	Short: "Stop following a user",
	Args:  cobra.ExactArgs(1),

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stop := startInterstitial("Unfollowing")
		err = a.client.Unfollow(ctx, id)
		stop()
		if err != nil {
			return err
		}
		fmt.Printf("➖ Unfollowed user #%d\n", id)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(followCmd, unfollowCmd)
}
