package utils

import "errors"

// Shared error taxonomy for the query engines. Handlers map these to
// response codes with errors.Is; nothing matches on error text.
var (
	// ErrNotFound marks a valid query whose filter matched no rows.
	ErrNotFound = errors.New("not found")

	// ErrDataUnavailable marks a snapshot that cannot be read or parsed.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrComputation marks a query that cannot be evaluated even though
	// its inputs are well-formed (e.g. similarity over an empty corpus).
	ErrComputation = errors.New("computation failed")
)
