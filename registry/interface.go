package registry

// Registry provides an interface for the process-wide schema type store used
// by nested-schema resolution: fields that declare their target schema by
// name (rather than by direct reference) are resolved through Lookup.
//
// This interface is implemented by the concrete *Store type and is the
// capability handed to the serialization engine. Composition roots own the
// Store; tests construct isolated instances instead of mutating shared
// process state.
type Registry interface {
	// Register records a schema type under its short name and its qualified
	// name (defining location + "." + short name). Registration happens as a
	// side effect of schema-type creation in the surrounding system.
	//
	// Short-key entries accumulate across distinct defining locations; a
	// re-registration from the same defining location supersedes the
	// previous short-key entry instead. Qualified-key entries accumulate
	// every registration.
	Register(name string, schema SchemaType, origin string) error

	// Lookup resolves a short or qualified name to exactly one schema type.
	// Fails with ErrNotFound when the name is unregistered and ErrAmbiguous
	// when a short name has candidates from multiple defining locations.
	Lookup(name string) (SchemaType, error)

	// LookupAll resolves a short or qualified name to the full ordered
	// candidate list. Fails with ErrNotFound when the name is unregistered.
	LookupAll(name string) ([]SchemaType, error)

	// Snapshot returns a copy of every entry for diagnostics/docs.
	Snapshot() map[string][]SchemaType

	// Count returns the number of registered keys.
	Count() int

	// Reset clears all registered entries.
	Reset()
}
