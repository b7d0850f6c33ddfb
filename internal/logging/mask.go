// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the debug logger and secure log/error presentation.
// It masks credentials (bearer tokens, passwords) so they are never exposed
// in logs or in error messages shown to users.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]+)(")`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reJWT      = regexp.MustCompile(`\b[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}\b`)
)

// Mask replaces sensitive values in the input string with "***".
// JWT-shaped strings are masked wholesale so a raw token never leaks.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, `$1***$3`)
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJWT.ReplaceAllString(out, "***")
	return out
}
