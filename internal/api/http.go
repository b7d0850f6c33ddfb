// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"gophsocial/cli/internal/credstore"
	"gophsocial/cli/internal/logging"
)

// HTTP implements Client over the REST endpoints of the social API.
// Every response is expected to use the {data, error} envelope; the data
// field is returned raw and decoded per operation.
type HTTP struct {
	baseURL string
	store   credstore.Store
	client  *http.Client
}

func newHTTP(store credstore.Store, opts Options) *HTTP {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTP{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		store:   store,
		client:  &http.Client{Timeout: timeout},
	}
}

// envelope is the uniform response wrapper of the API.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// do issues a request against path (relative to the base URL) and returns
// the raw data field of the envelope. A non-2xx status becomes a
// RequestError carrying the server's error string; transport and decoding
// failures are normalized into the same shape. Requests are never retried.
func (h *HTTP) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, transportError("encoding request", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, transportError("building request", err)
	}
	h.setHeaders(req, body != nil)

	requestID := req.Header.Get("X-Request-ID")
	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		logging.Get().Debug().
			Str("method", method).Str("path", path).Str("request_id", requestID).
			Err(err).Msg("api request failed")
		return nil, transportError("calling the api", err)
	}
	defer resp.Body.Close()

	logging.Get().Debug().
		Str("method", method).Str("path", path).Str("request_id", requestID).
		Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).
		Msg("api request")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("reading response", err)
	}

	var env envelope
	if len(raw) > 0 {
		// An unparseable body on a success status is a malformed response;
		// on a failure status the generic "HTTP <status>" message applies.
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return nil, transportError("decoding response", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, env.Error)
	}
	return env.Data, nil
}

// setHeaders attaches the standard header set: the bearer token whenever the
// credential store holds one, a content type for calls with a body, and a
// correlation id. The store is read on every request so a sign-in or
// sign-out between calls takes effect immediately.
func (h *HTTP) setHeaders(req *http.Request, withBody bool) {
	if token, err := h.store.Get(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if withBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// decode unmarshals an envelope data field into T. A null or absent data
// field yields the zero value.
func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 || string(raw) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, transportError("decoding response", err)
	}
	return v, nil
}

// listQuery renders FeedParams as a query string, omitting zero values.
func listQuery(p FeedParams) string {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Tags != "" {
		q.Set("tags", p.Tags)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Health probes GET /health. The endpoint answers with a bare
// {"status":"ok"} body rather than the {data, error} envelope, and may sit
// behind auth, so this bypasses do: any HTTP response at all means the
// server is reachable and yields a status string, even a 401. An error is
// returned only for transport-level failures.
func (h *HTTP) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return "", transportError("building request", err)
	}
	h.setHeaders(req, false)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", transportError("calling the api", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	var body struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Status != "" {
			return body.Status, nil
		}
		if body.Data != "" {
			return body.Data, nil
		}
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode), nil
}
