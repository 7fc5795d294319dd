package api

import "errors"

// Sentinel errors the CLI matches on. Server-provided messages are wrapped
// around these so callers can both branch and display.
var (
	// ErrUnavailable indicates the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized indicates a missing, invalid, or expired token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated role is insufficient.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the referenced account no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates the per-IP request budget is exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer indicates an unexpected server-side failure.
	ErrServer = errors.New("server error")
)
