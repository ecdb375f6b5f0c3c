// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the HTTP layer itself. Callers can match against
// them with [errors.Is].
var (
	// ErrMissingToken is returned by the protect middleware when the request
	// has no "Authorization" header or the header carries no token.
	ErrMissingToken = errors.New("no token in `Authorization` header")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingMovie is returned when an add request has no "movie" object.
	ErrMissingMovie = errors.New("movie data is required")

	// ErrNoUserInContext means a protected handler ran without the protect
	// middleware.
	ErrNoUserInContext = errors.New("no user in request context")

	// ErrTooManyRequests is returned when a client exceeds the auth rate
	// limit.
	ErrTooManyRequests = errors.New("too many requests")
)
