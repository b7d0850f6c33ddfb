// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package guard decides whether the current session admits entry into an
// authenticated surface. The decision is a pure function of session state;
// rendering the interstitial or the sign-in redirect is the caller's job.
package guard

import (
	"gophsocial/cli/internal/session"
)

// Decision is the outcome of evaluating a protected entry attempt.
type Decision int

const (
	// Wait means validation is still in flight; show an interstitial and
	// do not decide yet.
	Wait Decision = iota
	// Allow admits entry. A resolved user profile is preferred but its
	// absence alone is not grounds for a redirect; that call belongs to
	// the consuming surface.
	Allow
	// SignIn refuses entry and points the user at the sign-in flow.
	SignIn
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case SignIn:
		return "sign-in"
	default:
		return "wait"
	}
}

// Decide evaluates a session snapshot against the protected-entry policy.
func Decide(s session.Snapshot) Decision {
	if s.Loading {
		return Wait
	}
	if s.Token == "" {
		return SignIn
	}
	return Allow
}
