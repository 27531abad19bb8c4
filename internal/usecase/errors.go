package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// MsgPlayerStatsUnavailable is the user-facing message surfaced when any
// request in a season batch fails.
const MsgPlayerStatsUnavailable = "Unable to load stats for this player."
