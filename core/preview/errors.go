package preview

import "errors"

var (
	// ErrAlreadyRunning is returned by Start while a server is registered.
	ErrAlreadyRunning = errors.New("server is already running")
	// ErrNotRunning is returned by Stop when no server is registered.
	ErrNotRunning = errors.New("no server running")
	// ErrBindFailed wraps the listener error when the address is taken.
	ErrBindFailed = errors.New("failed to bind preview server")
)
