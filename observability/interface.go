package observability

import "time"

// Observer is a unified interface for observability across schemakit packages.
// It allows external code to observe operations happening inside the library
// (registry registrations and lookups, validation aggregation) without
// coupling those packages to specific observability implementations
// (metrics, tracing, logging).
//
// This interface is optional - schemakit packages work perfectly fine without
// an observer.
type Observer interface {
	// ObserveOperation is called when a library operation completes.
	// It provides all context about the operation in a structured format.
	ObserveOperation(ctx OperationContext)
}

// OperationContext contains all information about a completed library
// operation. The struct is generic enough to describe operations across all
// schemakit packages while providing enough detail for comprehensive
// observability.
type OperationContext struct {
	// Component identifies which schemakit package performed the operation.
	// Examples: "registry", "validation"
	Component string

	// Operation describes what operation was performed.
	// Examples:
	//   Registry:   "register", "lookup", "lookup_all", "reset"
	//   Validation: "merge"
	Operation string

	// Resource identifies the primary resource being operated on.
	// Examples:
	//   Registry:   the schema name or qualified name being registered or resolved
	//   Validation: the location key a merge attached messages to
	Resource string

	// SubResource provides additional resource context (optional).
	// Examples:
	//   Registry: the defining-location path of a registration
	SubResource string

	// Duration is how long the operation took from start to completion.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	// nil indicates successful operation.
	Error error

	// Size represents the size of data involved in the operation (optional).
	// Examples:
	//   Registry:   number of candidate types returned by a lookup
	//   Validation: number of locations in a merged mapping
	Size int64

	// Metadata provides additional operation-specific information (optional).
	// This map can contain any extra context that doesn't fit in the standard
	// fields.
	// Examples:
	//   Registry: {"superseded": true}, {"ambiguous": true}
	Metadata map[string]interface{}
}
