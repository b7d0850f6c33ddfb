// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/terminal"
)

// startInterstitial shows a spinner while a session validation or network
// call is in flight. The returned function stops the spinner and restores
// the cursor.
func startInterstitial(text string) func() {
	cursor.Hide()
	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		cursor.Show()
		return func() {}
	}
	return func() {
		_ = spinner.Stop()
		cursor.Show()
	}
}

// promptLine prints a prompt and reads one line from stdin. The echoed
// input is cleared from the screen afterwards.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	terminal.ClearPreviousLines(len(prompt) + len(line))
	return line, nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// formatTimestamp renders a server timestamp in a compact human form.
// Unparseable values are shown as-is.
func formatTimestamp(ts string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Local().Format("2006-01-02 15:04")
		}
	}
	return ts
}

// printFeedItem renders one feed entry: title line, author/date line, tags.
func printFeedItem(p api.PostWithMetadata) {
	title := pterm.NewStyle(pterm.Bold).Sprint(p.Title)
	pterm.Printf("#%d  %s\n", p.ID, title)
	pterm.Printf("    by %s on %s · %d comment(s)\n", p.User.Username, formatTimestamp(p.CreatedAt), p.CommentsCount)
	if len(p.Tags) > 0 {
		pterm.Printf("    tags: %s\n", strings.Join(p.Tags, ", "))
	}
	pterm.Println()
}

// printPost renders a full post with its comments.
func printPost(p api.Post) {
	pterm.DefaultSection.Printf("#%d %s", p.ID, p.Title)
	pterm.Printf("by %s on %s", p.User.Username, formatTimestamp(p.CreatedAt))
	if len(p.Tags) > 0 {
		pterm.Printf(" · tags: %s", strings.Join(p.Tags, ", "))
	}
	pterm.Println()
	pterm.Println()
	pterm.Println(p.Content)

	if len(p.Comments) > 0 {
		pterm.Println()
		pterm.Printf("%d comment(s):\n", len(p.Comments))
		for _, c := range p.Comments {
			pterm.Printf("  [%s] %s: %s\n", formatTimestamp(c.CreatedAt), c.User.Username, c.Content)
		}
	}
}

// printUser renders a profile card.
func printUser(u api.User) {
	status := "inactive"
	if u.Active {
		status = "active"
	}
	pterm.DefaultSection.Printf("%s (#%d)", u.Username, u.ID)
	pterm.Printf("email:  %s\n", u.Email)
	pterm.Printf("joined: %s\n", formatTimestamp(u.CreatedAt))
	pterm.Printf("status: %s\n", status)
}
