// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package token decodes the self-contained claims of the bearer token
// issued by the social API.
//
// Decoding is advisory only: it splits the token, base64url-decodes the
// payload segment and reads the subject and expiry so the client can skip
// network calls with dead credentials. The cryptographic signature is NOT
// verified here; the server is the sole authority on token validity, and a
// forged but well-formed token is caught when the profile fetch is rejected.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid marks a token that cannot be decoded: wrong segment count,
// bad base64, non-JSON payload, or missing sub/exp claims.
var ErrInvalid = errors.New("invalid token")

// Claims are the decoded fields the client relies on.
type Claims struct {
	// Subject is the signed-in user's id (the stringified "sub" claim).
	Subject int64
	// ExpiresAt is the "exp" claim, Unix seconds resolution.
	ExpiresAt time.Time
}

// Expired reports whether the claims have expired at the given instant.
// The exp claim is in seconds; the comparison is done in milliseconds.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt.UnixMilli() <= now.UnixMilli()
}

var parser = jwt.NewParser()

// Decode extracts Claims from a raw token string without verifying the
// signature. Any structural defect yields an error wrapping ErrInvalid.
func Decode(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, fmt.Errorf("%w: missing sub claim", ErrInvalid)
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: sub is not a user id", ErrInvalid)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, fmt.Errorf("%w: missing exp claim", ErrInvalid)
	}

	return Claims{Subject: id, ExpiresAt: exp.Time}, nil
}
