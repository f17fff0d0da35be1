package codes

import "errors"

var (
	// ErrInvalidParameters is returned before any generation work is done.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrNoValidCandidate means the search finished without any code set having a distance >0.
	ErrNoValidCandidate = errors.New("no valid matrix/codes found")
	// ErrSelfCheckFailed means a generated code set broke its own construction guarantees.
	ErrSelfCheckFailed = errors.New("self-check failed")
)
