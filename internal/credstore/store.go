// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credstore persists the bearer token issued by the social API.
// Exactly one credential is stored per OS user; absence means signed out.
// The primary backend is the OS keychain via 99designs/keyring, with a
// plain-file fallback for platforms where no native keychain is available.
// No validation happens here, storage only.
package credstore

// Store is the credential storage contract. Get returns the empty string
// (and no error) when no token is stored.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// ServiceName identifies the gophsocial namespace in the OS keychain.
const ServiceName = "gophsocial"

// tokenKey is the single key under which the bearer token is stored.
const tokenKey = "bearer_token"

// Open returns the best available store: the OS keychain when it can be
// opened, otherwise a file-backed store under the XDG state directory.
// Set preferFile to skip the keychain entirely (headless machines, CI).
func Open(preferFile bool) (Store, error) {
	if !preferFile {
		if s, err := OpenKeyring(); err == nil {
			return s, nil
		}
	}
	return OpenFile()
}
