package registry

import "errors"

// Registry error types that can be matched by consumers of this package
// using errors.Is. Lookup and Register wrap these sentinels with the
// offending name for context.
var (
	// ErrNotFound is returned when no schema type is registered under the
	// requested short or qualified name.
	ErrNotFound = errors.New("schema not found")

	// ErrAmbiguous is returned when a short name has candidates from more
	// than one defining location and the caller asked for exactly one.
	ErrAmbiguous = errors.New("ambiguous schema name")

	// ErrInvalidName is returned when a registration carries an empty name
	// or an empty defining location.
	ErrInvalidName = errors.New("invalid schema name")
)
