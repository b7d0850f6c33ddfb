// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func segment(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal segment: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// craft builds an unsigned token with the given payload claims.
func craft(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := segment(t, map[string]string{"alg": "HS256", "typ": "JWT"})
	return header + "." + segment(t, claims) + ".c2lnbmF0dXJl"
}

func TestDecode(t *testing.T) {
	future := float64(time.Now().Add(time.Hour).Unix())

	tests := []struct {
		name    string
		token   string
		wantErr bool
		wantSub int64
	}{
		{
			name:    "valid token",
			token:   craft(t, map[string]any{"sub": "42", "exp": future}),
			wantSub: 42,
		},
		{
			name:    "wrong segment count",
			token:   "only.two",
			wantErr: true,
		},
		{
			name:    "not base64",
			token:   "a.!!!.c",
			wantErr: true,
		},
		{
			name:    "payload not json",
			token:   "a." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".c",
			wantErr: true,
		},
		{
			name:    "missing sub",
			token:   craft(t, map[string]any{"exp": future}),
			wantErr: true,
		},
		{
			name:    "missing exp",
			token:   craft(t, map[string]any{"sub": "42"}),
			wantErr: true,
		},
		{
			name:    "sub not numeric",
			token:   craft(t, map[string]any{"sub": "alice", "exp": future}),
			wantErr: true,
		},
		{
			name:    "empty string",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Decode(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode() = %+v, want error", claims)
				}
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Decode() error = %v, want ErrInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if claims.Subject != tt.wantSub {
				t.Errorf("Subject = %d, want %d", claims.Subject, tt.wantSub)
			}
		})
	}
}

func TestClaimsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name string
		exp  time.Time
		want bool
	}{
		{name: "in the future", exp: now.Add(time.Hour), want: false},
		{name: "in the past", exp: now.Add(-time.Hour), want: true},
		{name: "exactly now", exp: now, want: true},
		{name: "one second left", exp: now.Add(time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Claims{Subject: 1, ExpiresAt: tt.exp}
			if got := c.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeKeepsExpiry(t *testing.T) {
	exp := time.Now().Add(-time.Minute).Unix()
	claims, err := Decode(craft(t, map[string]any{"sub": "7", "exp": float64(exp)}))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !claims.Expired(time.Now()) {
		t.Errorf("token with past exp should report expired")
	}
	if claims.ExpiresAt.Unix() != exp {
		t.Errorf("ExpiresAt = %d, want %d", claims.ExpiresAt.Unix(), exp)
	}
}
