// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gophsocial/cli/internal/credstore"
)

func newTestClient(t *testing.T, store credstore.Store, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(store, Options{BaseURL: srv.URL})
}

func TestAuthorizationHeaderInjection(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{name: "no stored token", token: "", wantHeader: ""},
		{name: "stored token sent verbatim", token: "aaa.bbb.ccc", wantHeader: "Bearer aaa.bbb.ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			store := credstore.NewMemory()
			if tt.token != "" {
				_ = store.Set(tt.token)
			}
			c := newTestClient(t, store, func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.Write([]byte(`{"data":{"id":1}}`))
			})

			if _, err := c.User(context.Background(), 1); err != nil {
				t.Fatalf("User(): %v", err)
			}
			if gotAuth != tt.wantHeader {
				t.Errorf("Authorization = %q, want %q", gotAuth, tt.wantHeader)
			}
		})
	}
}

func TestContentTypeOnlyWithBody(t *testing.T) {
	var gets, posts string
	c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets = r.Header.Get("Content-Type")
			w.Write([]byte(`{"data":[]}`))
		case http.MethodPost:
			posts = r.Header.Get("Content-Type")
			w.Write([]byte(`{"data":"tok"}`))
		}
	})

	ctx := context.Background()
	if _, err := c.Feed(ctx, FeedParams{}); err != nil {
		t.Fatalf("Feed(): %v", err)
	}
	if _, err := c.SignIn(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("SignIn(): %v", err)
	}

	if gets != "" {
		t.Errorf("GET Content-Type = %q, want empty", gets)
	}
	if posts != "application/json" {
		t.Errorf("POST Content-Type = %q, want application/json", posts)
	}
}

func TestServerErrorMessageWins(t *testing.T) {
	c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"email already taken"}`))
	})

	_, err := c.Register(context.Background(), "u", "a@b.c", "pw")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Message != "email already taken" {
		t.Errorf("Message = %q, want server message", reqErr.Message)
	}
	if reqErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", reqErr.Status)
	}
}

func TestGenericHTTPStatusFallback(t *testing.T) {
	c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.Follow(context.Background(), 3)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Message != "HTTP 502" {
		t.Errorf("Message = %q, want %q", reqErr.Message, "HTTP 502")
	}
}

func TestFeedNullNormalizesToEmpty(t *testing.T) {
	c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})

	posts, err := c.Feed(context.Background(), FeedParams{})
	if err != nil {
		t.Fatalf("Feed(): %v", err)
	}
	if posts == nil {
		t.Fatal("Feed() = nil, want empty slice")
	}
	if len(posts) != 0 {
		t.Errorf("len = %d, want 0", len(posts))
	}
}

func TestFeedQueryParameters(t *testing.T) {
	var got string
	c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := c.Feed(context.Background(), FeedParams{Limit: 5, Offset: 10, Sort: "desc", Tags: "go,news", Search: "cli"})
	if err != nil {
		t.Fatalf("Feed(): %v", err)
	}
	want := "limit=5&offset=10&search=cli&sort=desc&tags=go%2Cnews"
	if got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestSignInReturnsToken(t *testing.T) {
	c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/authentication/token" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":"h.p.s"}`))
	})

	tok, err := c.SignIn(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("SignIn(): %v", err)
	}
	if tok != "h.p.s" {
		t.Errorf("token = %q, want %q", tok, "h.p.s")
	}
}

func TestTransportFailureNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := New(credstore.NewMemory(), Options{BaseURL: srv.URL})

	_, err := c.User(context.Background(), 1)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v (%T), want *RequestError", err, err)
	}
	if reqErr.Status != 0 {
		t.Errorf("Status = %d, want 0 for transport failure", reqErr.Status)
	}
	if reqErr.Message == "" {
		t.Error("transport failure must carry a display-ready message")
	}
}

func TestDeleteToleratesEmptyBody(t *testing.T) {
	c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeletePost(context.Background(), 9); err != nil {
		t.Fatalf("DeletePost(): %v", err)
	}
}

func TestHealthAcceptsBareStatusBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "bare status body", status: http.StatusOK, body: `{"status":"ok"}`, want: "ok"},
		{name: "enveloped body", status: http.StatusOK, body: `{"data":"ok"}`, want: "ok"},
		{name: "auth-gated probe is still reachable", status: http.StatusUnauthorized, body: `Unauthorized`, want: "HTTP 401"},
		{name: "empty body", status: http.StatusOK, body: ``, want: "HTTP 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, credstore.NewMemory(), func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.Health(context.Background())
			if err != nil {
				t.Fatalf("Health(): %v", err)
			}
			if got != tt.want {
				t.Errorf("Health() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHealthTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := New(credstore.NewMemory(), Options{BaseURL: base})
	if _, err := c.Health(context.Background()); err == nil {
		t.Fatal("Health() against a closed server must fail")
	}
}
