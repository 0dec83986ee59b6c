package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrUpstream marks a recommendation-provider failure; the command that
	// hit it is aborted without persisting anything.
	ErrUpstream = errors.New("upstream failure")
)
