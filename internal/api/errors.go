// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"fmt"

	"gophsocial/cli/internal/logging"
)

// RequestError is the uniform failure of any Client call: a display-ready
// message, whether the server rejected the request or the transport failed.
// Status is the HTTP status code, or 0 for transport-level failures.
type RequestError struct {
	Status  int
	Message string
	cause   error
}

func (e *RequestError) Error() string { return e.Message }

// Unwrap exposes the underlying transport error, nil for remote rejections.
func (e *RequestError) Unwrap() error { return e.cause }

// statusError builds a RequestError from a non-2xx response. The
// server-supplied error string wins; "HTTP <status>" is the fallback.
func statusError(status int, serverMessage string) *RequestError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &RequestError{Status: status, Message: msg}
}

// transportError normalizes a transport or decoding failure into the same
// display-ready shape as a remote rejection. Secrets are masked.
func transportError(context string, err error) *RequestError {
	return &RequestError{Message: logging.PresentError(context, err), cause: err}
}
