// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gophsocial/cli/internal/session"
)

// commentCmd adds a comment to a post. The author id comes from the
// resolved session identity, so this command additionally requires the
// profile fetch to have succeeded, not just a stored token.
var commentCmd = &cobra.Command{
	Use:   "comment <post-id> <text...>",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		if snap.User == nil {
			return fmt.Errorf("your profile could not be resolved; try again or sign in anew")
		}
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}
		content := strings.Join(args[1:], " ")

		stop := startInterstitial("Posting comment")
		comment, err := a.client.CreateComment(ctx, postID, snap.User.ID, content)
		stop()
		if err != nil {
			return err
		}
		fmt.Printf("💬 Comment #%d added to post #%d\n", comment.ID, postID)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(commentCmd)
}
