package model

import "errors"

// Common errors used across the application
var (
	// ErrNoToken means an authenticated backend call was attempted with no
	// token held; the call is failed locally without any network I/O
	ErrNoToken = errors.New("no authentication token held")

	// ErrNoSession means an operation needed an established session
	ErrNoSession = errors.New("no active session")

	// ErrRateLimited means too many attempts were made within the window
	ErrRateLimited = errors.New("too many attempts, try again later")
)
