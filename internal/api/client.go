// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api provides the client for the remote social-posting API.
// It defines the operation contract and an HTTP implementation that attaches
// the stored bearer token to every request and normalizes the server's
// {data, error} envelope into typed results.
package api

import (
	"context"
	"time"

	"gophsocial/cli/internal/credstore"
)

// Client defines the remote operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide mocks for tests.
type Client interface {
	// Health checks reachability of the API and returns its status string.
	Health(ctx context.Context) (string, error)

	// SignIn exchanges credentials for a bearer token.
	SignIn(ctx context.Context, email, password string) (string, error)
	// Register creates a new (inactive) account.
	Register(ctx context.Context, username, email, password string) (User, error)
	// Activate confirms a registration using the emailed activation token.
	Activate(ctx context.Context, activationToken string) error

	// User fetches a user profile by id.
	User(ctx context.Context, id int64) (User, error)
	// UserPosts lists a user's posts with pagination.
	UserPosts(ctx context.Context, id int64, p FeedParams) ([]PostWithMetadata, error)
	// Follow subscribes the signed-in user to another user's posts.
	Follow(ctx context.Context, id int64) error
	// Unfollow removes the subscription.
	Unfollow(ctx context.Context, id int64) error
	// Feed lists posts from followed users. A null server payload yields
	// an empty slice, never nil.
	Feed(ctx context.Context, p FeedParams) ([]PostWithMetadata, error)

	// Post fetches a single post with its comments.
	Post(ctx context.Context, id int64) (Post, error)
	CreatePost(ctx context.Context, title, content string, tags []string) (Post, error)
	UpdatePost(ctx context.Context, id int64, upd PostUpdate) (Post, error)
	DeletePost(ctx context.Context, id int64) error

	// CreateComment adds a comment to a post on behalf of a user.
	CreateComment(ctx context.Context, postID, userID int64, content string) (Comment, error)
}

// Options configures the HTTP client construction.
type Options struct {
	// BaseURL is the API root, including the version prefix.
	BaseURL string
	// Timeout bounds every request. Zero means the default of 10 seconds.
	Timeout time.Duration
}

// New creates a Client implementation backed by real HTTP endpoints.
// The store is consulted on every request for the bearer token; the client
// itself never mutates it.
func New(store credstore.Store, opts Options) Client {
	return newHTTP(store, opts)
}
