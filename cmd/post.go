// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/session"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Read and manage posts",
}

var postShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a post with its comments",
	Args:  cobra.ExactArgs(1),

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stop := startInterstitial("Loading post")
		post, err := a.client.Post(ctx, id)
		stop()
		if err != nil {
			return err
		}
		printPost(post)
		return nil
	}),
}

var (
	createTitle   string
	createContent string
	createTags    []string
)

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new post",

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		title := createTitle
		var err error
		if title == "" {
			if title, err = promptLine("Title: "); err != nil {
				return err
			}
		}
		content := createContent
		if content == "" {
			if content, err = promptLine("Content: "); err != nil {
				return err
			}
		}

		stop := startInterstitial("Publishing")
		post, err := a.client.CreatePost(ctx, title, content, createTags)
		stop()
		if err != nil {
			return err
		}
		fmt.Printf("✅ Published post #%d: %s\n", post.ID, post.Title)
		return nil
	}),
}

var (
	editTitle   string
	editContent string
	editTags    []string
)

var postEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update the title, content or tags of a post",
	Args:  cobra.ExactArgs(1),

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		// Only fields whose flags were set travel in the PATCH body.
		var upd api.PostUpdate
		flags := cmd.Flags()
		if flags.Changed("title") {
			upd.Title = &editTitle
		}
		if flags.Changed("content") {
			upd.Content = &editContent
		}
		if flags.Changed("tags") {
			upd.Tags = &editTags
		}
		if upd.Title == nil && upd.Content == nil && upd.Tags == nil {
			return fmt.Errorf("nothing to update: pass --title, --content or --tags")
		}

		stop := startInterstitial("Updating")
		post, err := a.client.UpdatePost(ctx, id, upd)
		stop()
		if err != nil {
			return err
		}
		fmt.Printf("✅ Updated post #%d (version %d)\n", post.ID, post.Version)
		return nil
	}),
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),

	RunE: runGuarded(func(cmd *cobra.Command, a *app, snap session.Snapshot, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stop := startInterstitial("Deleting")
		err = a.client.DeletePost(ctx, id)
		stop()
		if err != nil {
			return err
		}
		fmt.Printf("🗑  Deleted post #%d\n", id)
		return nil
	}),
}

// parseID parses a numeric command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.AddCommand(postShowCmd, postCreateCmd, postEditCmd, postDeleteCmd)

	postCreateCmd.Flags().StringVar(&createTitle, "title", "", "Post title (prompted when omitted)")
	postCreateCmd.Flags().StringVar(&createContent, "content", "", "Post content (prompted when omitted)")
	postCreateCmd.Flags().StringSliceVar(&createTags, "tags", nil, "Tags for the post")

	postEditCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	postEditCmd.Flags().StringVar(&editContent, "content", "", "New content")
	postEditCmd.Flags().StringSliceVar(&editTags, "tags", nil, "New tag set (replaces the old one)")
}
