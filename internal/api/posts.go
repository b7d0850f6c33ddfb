// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Post calls GET /posts/{id}. The detail payload embeds the author and the
// comment list.
func (h *HTTP) Post(ctx context.Context, id int64) (Post, error) {
	raw, err := h.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil)
	if err != nil {
		return Post{}, err
	}
	return decode[Post](raw)
}

// CreatePost calls POST /posts.
func (h *HTTP) CreatePost(ctx context.Context, title, content string, tags []string) (Post, error) {
	body := map[string]any{"title": title, "content": content, "tags": tags}
	raw, err := h.do(ctx, http.MethodPost, "/posts", body)
	if err != nil {
		return Post{}, err
	}
	return decode[Post](raw)
}

// UpdatePost calls PATCH /posts/{id} with only the fields set in upd.
func (h *HTTP) UpdatePost(ctx context.Context, id int64, upd PostUpdate) (Post, error) {
	raw, err := h.do(ctx, http.MethodPatch, fmt.Sprintf("/posts/%d", id), upd)
	if err != nil {
		return Post{}, err
	}
	return decode[Post](raw)
}

// DeletePost calls DELETE /posts/{id}.
func (h *HTTP) DeletePost(ctx context.Context, id int64) error {
	_, err := h.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil)
	return err
}

// CreateComment calls POST /posts/{id}/comments. The author id travels in
// the body; the server cross-checks it against the bearer token.
func (h *HTTP) CreateComment(ctx context.Context, postID, userID int64, content string) (Comment, error) {
	body := map[string]any{"user_id": userID, "content": content}
	raw, err := h.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), body)
	if err != nil {
		return Comment{}, err
	}
	return decode[Comment](raw)
}
