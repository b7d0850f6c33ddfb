// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package guard

import (
	"testing"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/session"
)

func TestDecide(t *testing.T) {
	user := &api.User{ID: 42, Username: "gopher"}

	tests := []struct {
		name string
		snap session.Snapshot
		want Decision
	}{
		{
			name: "loading defers the decision",
			snap: session.Snapshot{Token: "t", Loading: true},
			want: Wait,
		},
		{
			name: "no token redirects to sign-in",
			snap: session.Snapshot{},
			want: SignIn,
		},
		{
			name: "token with resolved user is admitted",
			snap: session.Snapshot{Token: "t", User: user},
			want: Allow,
		},
		{
			name: "token without resolved user is still admitted",
			snap: session.Snapshot{Token: "t"},
			want: Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.snap); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}
