// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/http"
)

// User calls GET /users/{id}.
func (h *HTTP) User(ctx context.Context, id int64) (User, error) {
	raw, err := h.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	if err != nil {
		return User{}, err
	}
	return decode[User](raw)
}

// UserPosts calls GET /users/{id}/posts with pagination parameters.
func (h *HTTP) UserPosts(ctx context.Context, id int64, p FeedParams) ([]PostWithMetadata, error) {
	raw, err := h.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/posts%s", id, listQuery(p)), nil)
	if err != nil {
		return nil, err
	}
	posts, err := decode[[]PostWithMetadata](raw)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []PostWithMetadata{}
	}
	return posts, nil
}

// Follow calls PUT /users/{id}/follow.
func (h *HTTP) Follow(ctx context.Context, id int64) error {
	_, err := h.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/follow", id), nil)
	return err
}

// Unfollow calls PUT /users/{id}/unfollow.
func (h *HTTP) Unfollow(ctx context.Context, id int64) error {
	_, err := h.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/unfollow", id), nil)
	return err
}

// Feed calls GET /users/feed. The server reports an empty feed as a null
// data field; that is normalized to an empty slice here.
func (h *HTTP) Feed(ctx context.Context, p FeedParams) ([]PostWithMetadata, error) {
	raw, err := h.do(ctx, http.MethodGet, "/users/feed"+listQuery(p), nil)
	if err != nil {
		return nil, err
	}
	posts, err := decode[[]PostWithMetadata](raw)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []PostWithMetadata{}
	}
	return posts, nil
}
