// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of the gophsocial client.
// It implements subcommands for authentication, the feed, posts, comments
// and follow relationships using the Cobra framework, with a terminal UI
// built on pterm.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// appName is the binary name used in hints printed to the user.
const appName = "gophsocial"

var showVersion bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Terminal client for the gophsocial posting platform",
	Long:          `gophsocial is a terminal client for the gophsocial social-posting API: sign in, read your feed, publish posts, comment and follow other users.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			serverStatus := "unreachable"
			if status, err := a.client.Health(ctx); err == nil && status != "" {
				serverStatus = status
			}
			fmt.Printf("%s %s\nserver %s\n", appName, Version, serverStatus)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSignInRequired) && !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show client and server version information")
}
