// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// User is the profile record the API owns.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	Active    bool   `json:"active"`
	RoleID    int64  `json:"role_id"`
}

// Comment belongs to a post; User is the author, embedded by the server.
type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	UserID    int64  `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	User      User   `json:"user"`
}

// Post is a single post with its author and, on detail fetches, comments.
// Tags and Comments may be null in the server payload.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	UserID    int64     `json:"user_id"`
	Version   int       `json:"version"`
	Tags      []string  `json:"tags"`
	Comments  []Comment `json:"comments"`
	User      User      `json:"user"`
}

// PostWithMetadata is the feed-listing shape: a post plus aggregate counts.
type PostWithMetadata struct {
	Post
	CommentsCount int `json:"comments_count"`
}

// FeedParams are the optional query parameters of listing calls.
// Zero values are omitted from the query string.
type FeedParams struct {
	Limit  int
	Offset int
	Sort   string // "asc" or "desc"
	Tags   string // comma-separated
	Search string
}

// PostUpdate is a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}
