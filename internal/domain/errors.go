package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	// ErrSyncAborted marks a sync that could not start because the listing
	// page was unavailable.
	ErrSyncAborted = errors.New("sync aborted")
)
