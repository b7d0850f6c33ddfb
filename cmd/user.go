// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/session"
)

var (
	userPostsLimit  int
	userPostsOffset int
)

// userCmd shows a user's profile and their recent posts.
var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a user's profile and posts",
	Args:  cobra.ExactArgs(1),

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		stop := startInterstitial("Loading profile")
		user, err := a.client.User(ctx, id)
		stop()
		if err != nil {
			return err
		}
		printUser(user)

		stop = startInterstitial("Loading posts")
		posts, err := a.client.UserPosts(ctx, id, api.FeedParams{
			Limit:  userPostsLimit,
			Offset: userPostsOffset,
			Sort:   "desc",
		})
		stop()
		if err != nil {
			// The profile is already on screen; the post list failing is
			// reported without discarding it.
			pterm.Println()
			pterm.Printf("⚠️  Could not load posts: %s\n", err)
			return nil
		}

		pterm.Println()
		if len(posts) == 0 {
			pterm.Println("No posts yet.")
			return nil
		}
		for _, p := range posts {
			printFeedItem(p)
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.Flags().IntVar(&userPostsLimit, "limit", 10, "Maximum number of posts")
	userCmd.Flags().IntVar(&userPostsOffset, "offset", 0, "Number of posts to skip")
}
