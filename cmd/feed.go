// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/session"
)

var feedParams api.FeedParams

// feedCmd lists posts from followed users. Entry requires an admitted
// session; loading and sign-in redirects are handled by the guard.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show posts from users you follow",

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		stop := startInterstitial("Loading your feed")
		posts, err := a.client.Feed(ctx, feedParams)
		stop()
		if err != nil {
			return err
		}

		if len(posts) == 0 {
			pterm.Println("Your feed is empty. Follow some users to fill it up:")
			pterm.Printf("  %s follow <user-id>\n", appName)
			return nil
		}
		for _, p := range posts {
			printFeedItem(p)
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().IntVar(&feedParams.Limit, "limit", 20, "Maximum number of posts")
	feedCmd.Flags().IntVar(&feedParams.Offset, "offset", 0, "Number of posts to skip")
	feedCmd.Flags().StringVar(&feedParams.Sort, "sort", "desc", "Sort order by creation time (asc|desc)")
	feedCmd.Flags().StringVar(&feedParams.Tags, "tags", "", "Only posts carrying these comma-separated tags")
	feedCmd.Flags().StringVar(&feedParams.Search, "search", "", "Full-text filter on title and content")
}
