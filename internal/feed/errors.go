package feed

import "errors"

var (
	// ErrNotAuthenticated is returned when a query arrives without a
	// resolved user identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrBadCursor is returned for a non-numeric pagination cursor. The
	// cursor is never silently coerced to zero.
	ErrBadCursor = errors.New("invalid cursor")
)
