// Package domain holds sentinel errors shared across layers.
package domain

import "errors"

// Sentinel errors returned by use cases and repositories. The transport layer
// maps these to HTTP status codes.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownEntityKind indicates an unrecognized content entity kind.
	ErrUnknownEntityKind = errors.New("unknown entity kind")

	// ErrInvalidFilter indicates a filter that cannot be compiled into a store query.
	ErrInvalidFilter = errors.New("invalid filter")
)
