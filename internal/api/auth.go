// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"net/url"
)

// SignIn calls POST /authentication/token and returns the issued bearer
// token. The token is returned to the caller, not stored; persisting it is
// the session manager's job.
func (h *HTTP) SignIn(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := h.do(ctx, http.MethodPost, "/authentication/token", body)
	if err != nil {
		return "", err
	}
	return decode[string](raw)
}

// Register calls POST /authentication/user. The created account is inactive
// until the emailed activation token is confirmed.
func (h *HTTP) Register(ctx context.Context, username, email, password string) (User, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	raw, err := h.do(ctx, http.MethodPost, "/authentication/user", body)
	if err != nil {
		return User{}, err
	}
	return decode[User](raw)
}

// Activate calls PUT /users/activate/{token} to confirm a registration.
func (h *HTTP) Activate(ctx context.Context, activationToken string) error {
	_, err := h.do(ctx, http.MethodPut, "/users/activate/"+url.PathEscape(activationToken), nil)
	return err
}
