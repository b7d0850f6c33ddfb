// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the client's belief about who is signed in.
//
// The Manager holds the authoritative in-memory state (token, resolved user
// profile, loading flag) and validates the stored token on every hydration:
// decode locally, check expiry, then fetch the profile the token points at.
// Any failure along that path demotes to anonymous and discards the stored
// credential. Every token mutation starts a new validation sequence tagged
// with a monotonically increasing number; a completing fetch only commits if
// its tag is still current, so a stale validation can never overwrite a
// newer sign-in or sign-out.
package session

import (
	"context"
	"sync"
	"time"

	"gophsocial/cli/internal/api"
	"gophsocial/cli/internal/credstore"
	"gophsocial/cli/internal/logging"
	"gophsocial/cli/internal/token"
)

// UserFetcher is the one API operation validation depends on.
type UserFetcher interface {
	User(ctx context.Context, id int64) (api.User, error)
}

// State is the coarse session state derived from a Snapshot.
type State int

const (
	Anonymous State = iota
	Loading
	Authenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Snapshot is an immutable view of the session at one instant.
// User is non-nil only while Token is non-empty and was valid at last check.
// Loading is true exactly between a token being read and its validation
// (decode + profile fetch) resolving.
type Snapshot struct {
	Token   string
	User    *api.User
	Loading bool
}

// State derives the coarse state of the snapshot.
func (s Snapshot) State() State {
	switch {
	case s.Loading:
		return Loading
	case s.Token != "" && s.User != nil:
		return Authenticated
	default:
		return Anonymous
	}
}

// Manager orchestrates the credential store, the token codec and the profile
// fetch into a single session state machine. It is safe for concurrent use;
// consumers receive it explicitly rather than via ambient lookup.
type Manager struct {
	store credstore.Store
	fetch UserFetcher
	now   func() time.Time

	mu   sync.Mutex
	seq  uint64
	snap Snapshot
	done chan struct{} // closed whenever Loading is false
	subs []chan Snapshot
}

// New creates a Manager in the anonymous state. Call Hydrate to pick up a
// previously stored credential.
func New(store credstore.Store, fetch UserFetcher) *Manager {
	done := make(chan struct{})
	close(done)
	return &Manager{
		store: store,
		fetch: fetch,
		now:   time.Now,
		done:  done,
	}
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Subscribe returns a channel receiving every committed snapshot, and a
// cancel function. Slow receivers miss intermediate snapshots rather than
// blocking the state machine.
func (m *Manager) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, c := range m.subs {
			if c == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
	return ch, cancel
}

// Hydrate reads the stored token and, when one is present, starts the
// validation sequence. With no stored token the session is anonymous
// immediately. A credential store read failure is treated as signed out.
func (m *Manager) Hydrate(ctx context.Context) {
	tok, err := m.store.Get()
	if err != nil {
		logging.Get().Debug().Err(err).Msg("credential store read failed, treating as signed out")
	}
	if tok == "" {
		m.mu.Lock()
		m.seq++
		m.apply(Snapshot{})
		m.mu.Unlock()
		return
	}
	m.begin(ctx, tok)
}

// SignIn persists the token and re-runs the full validation path rather
// than trusting the caller's claim that the token is good.
func (m *Manager) SignIn(ctx context.Context, tok string) error {
	if err := m.store.Set(tok); err != nil {
		return err
	}
	m.begin(ctx, tok)
	return nil
}

// SignOut clears the credential and the in-memory identity synchronously.
// No network call is made; signing out while already anonymous is a no-op.
func (m *Manager) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++ // invalidate any in-flight validation
	if err := m.store.Clear(); err != nil {
		logging.Get().Debug().Err(err).Msg("credential store clear failed")
	}
	m.apply(Snapshot{})
}

// begin installs tok as the current token, marks the session loading and
// starts validation tagged with a fresh sequence number.
func (m *Manager) begin(ctx context.Context, tok string) {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	if m.snap.Loading {
		// Release waiters of the superseded sequence; they re-check and
		// pick up the new done channel.
		close(m.done)
	}
	m.snap = Snapshot{Token: tok, Loading: true}
	m.done = make(chan struct{})
	m.notify()
	m.mu.Unlock()

	go m.validate(ctx, tok, seq)
}

// validate decodes the token, checks expiry and resolves the profile.
// The result is committed only if seq is still the current sequence.
func (m *Manager) validate(ctx context.Context, tok string, seq uint64) {
	claims, err := token.Decode(tok)
	if err != nil || claims.Expired(m.now()) {
		if err != nil {
			logging.Get().Debug().Err(err).Msg("stored token undecodable")
		} else {
			logging.Get().Debug().Time("expired_at", claims.ExpiresAt).Msg("stored token expired")
		}
		m.commit(seq, Snapshot{}, true)
		return
	}

	user, err := m.fetch.User(ctx, claims.Subject)
	if err != nil {
		// Locally the token looked fine; the server (or the network)
		// disagreed. The credential is discarded, not retried.
		logging.Get().Debug().Int64("user_id", claims.Subject).Err(err).Msg("profile fetch rejected, signing out")
		m.commit(seq, Snapshot{}, true)
		return
	}

	m.commit(seq, Snapshot{Token: tok, User: &user}, false)
}

// commit applies the outcome of a validation sequence. Stale sequences are
// dropped: the store is only touched when the sequence is still current, so
// a late failure can never clear a newer credential.
func (m *Manager) commit(seq uint64, snap Snapshot, clearStore bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if seq != m.seq {
		return
	}
	if clearStore {
		if err := m.store.Clear(); err != nil {
			logging.Get().Debug().Err(err).Msg("credential store clear failed")
		}
	}
	m.apply(snap)
}

// apply installs snap, releases waiters and notifies subscribers.
// Callers hold m.mu.
func (m *Manager) apply(snap Snapshot) {
	wasLoading := m.snap.Loading
	m.snap = snap
	if wasLoading && !snap.Loading {
		close(m.done)
	}
	m.notify()
}

// notify fans the current snapshot out to subscribers. Callers hold m.mu.
func (m *Manager) notify() {
	for _, ch := range m.subs {
		select {
		case ch <- m.snap:
		default:
		}
	}
}

// Wait blocks until the session leaves the loading state (or ctx ends) and
// returns the resulting snapshot.
func (m *Manager) Wait(ctx context.Context) (Snapshot, error) {
	for {
		m.mu.Lock()
		snap := m.snap
		done := m.done
		m.mu.Unlock()

		if !snap.Loading {
			return snap, nil
		}
		select {
		case <-ctx.Done():
			return snap, ctx.Err()
		case <-done:
		}
	}
}
