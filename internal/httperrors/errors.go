// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors presents HTTP/network failures in a user-friendly way.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError prints a user-friendly message for a failed request
// and returns a wrapped error for logging. context describes the attempted
// action, e.g. "loading the feed"; host names the server being talked to
// (see ExtractHostFromURL).
func FormatNetworkError(err error, context, host string) error {
	if err == nil {
		return nil
	}
	displayErrorMessage(err, context, host)
	return fmt.Errorf("network error: %w", err)
}

func displayErrorMessage(err error, context, host string) {
	switch {
	case isTimeoutError(err):
		pterm.Printf("⏱  Connection timeout while %s\n", context)
		pterm.Printf("   %s took too long to respond. Try again in a moment.\n", host)
	case isDNSError(err):
		pterm.Printf("🌐 Cannot resolve %s while %s\n", host, context)
		pterm.Println("   Check your internet connection and the configured API URL.")
	case isConnectionRefused(err):
		pterm.Printf("🚫 %s refused the connection while %s\n", host, context)
		pterm.Println("   The server is not accepting connections. Is the API running?")
	default:
		pterm.Printf("❌ Cannot reach %s while %s\n", host, context)
		pterm.Println("   Check your connection and the configured API URL.")
	}
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
