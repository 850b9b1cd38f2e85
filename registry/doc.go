// Package registry provides the process-wide schema type registry used by
// schema-based (de)serialization.
//
// The registry maps human-readable schema names to the schema-defining types
// that implement them, supporting deferred and forward lookups: a field can
// reference a schema defined later, or in another module, by name instead of
// by direct reference. Registration happens as a side effect of schema-type
// creation in the surrounding system; the registry itself never loads or
// instantiates anything.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Registry interface: Defines the contract for registry operations
//   - Store struct: Concrete implementation of the Registry interface
//   - NewStore constructor: Returns *Store (concrete type)
//   - FX module: Provides both *Store and Registry interface for dependency injection
//
// The store is explicit and injectable rather than an implicit module-level
// singleton: the composition root that constructs the serialization system
// owns it, and tests construct isolated instances instead of mutating shared
// process state.
//
// # Name Resolution
//
// Two kinds of keys coexist in one namespace:
//
//   - short key: the bare declared name of a schema type, e.g. "UserSchema"
//   - qualified key: "<defining-location>.<declared-name>", e.g.
//     "app/schemas.UserSchema", guaranteed unique per definition site
//
// A short name is usable for lookup only while it is unambiguous. When two
// independently-loaded modules register distinct types under the same short
// name, Lookup fails with ErrAmbiguous instead of silently guessing; callers
// disambiguate with the qualified name or opt into the full candidate list
// with LookupAll. Re-registration from the same defining location (for
// example, an interactive reload) supersedes the previous short-key entry so
// phantom duplicates never accumulate, while the qualified-key entry keeps
// the full registration history.
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a store directly:
//
//	import "github.com/aalemi-dev/schemakit/registry"
//
//	store := registry.NewStore(registry.Config{})
//
//	if err := store.Register("UserSchema", userSchema, "app/schemas"); err != nil {
//	    return err
//	}
//
//	schema, err := store.Lookup("UserSchema")
//	if errors.Is(err, registry.ErrAmbiguous) {
//	    schema, err = store.Lookup(registry.QualifiedName("app/schemas", "UserSchema"))
//	}
//
// # FX Module Integration
//
// For applications using Uber's fx, use the FXModule which provides both the
// concrete type and interface:
//
//	app := fx.New(
//	    logger.FXModule,
//	    registry.FXModule,
//	    fx.Invoke(func(r registry.Registry) {
//	        // hand r to the serialization engine
//	    }),
//	)
//
// # Error Handling
//
// Lookup failures wrap the package sentinels and are matched with errors.Is:
//
//	_, err := store.Lookup("NeverRegistered")
//	if errors.Is(err, registry.ErrNotFound) {
//	    // the defining module was never loaded
//	}
//
// Registry errors are narrow and immediately fatal to the operation; there is
// no partial result and nothing is ever silently defaulted.
//
// # Thread Safety
//
// All methods on Store are safe for concurrent use by multiple goroutines;
// a single mutex guards both key spaces. Operations are short, bounded,
// in-memory map accesses with no suspension points, so no context or timeout
// semantics apply.
package registry
