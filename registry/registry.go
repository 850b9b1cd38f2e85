package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aalemi-dev/schemakit/observability"
)

// bgctx is a convenience alias used for log calls that don't receive a caller context.
var bgctx = context.Background

// SchemaType is an opaque handle to a schema-defining type. The registry only
// resolves names to handles; how a handle is instantiated or walked is the
// concern of the surrounding (de)serialization engine.
type SchemaType interface{}

// QualifiedName returns the globally unique key for a schema declared as
// `name` at the defining-location path `origin`.
func QualifiedName(origin, name string) string {
	return origin + "." + name
}

// record pairs a registered handle with the location that defined it, so
// same-origin re-registrations can be detected later.
type record struct {
	schema SchemaType
	origin string
}

// Store is the default implementation of Registry: an in-memory, mutex-guarded
// map from short and qualified names to registered schema types.
//
// A single RWMutex guards both key spaces; all operations are short, bounded,
// in-memory map accesses, so one lock is sufficient and the zero contention
// cost keeps lookups cheap on the hot deserialization path.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]record

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// logger provides optional context-aware logging capabilities
	logger Logger
}

// Config holds configuration for the schema registry store.
type Config struct {
	// Observer receives an event per registry operation (optional)
	Observer observability.Observer

	// Logger is used for structured logging of registry operations (optional)
	Logger Logger
}

// Logger is an interface that matches the schemakit logger.Logger interface.
// It provides context-aware structured logging with optional error and field parameters.
type Logger interface {
	// DebugWithContext logs a debug-level message with trace context.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// NewStore creates a new empty schema registry store.
// Returns the concrete *Store type.
func NewStore(config Config) *Store {
	return &Store{
		entries:  make(map[string][]record),
		observer: config.Observer,
		logger:   config.Logger,
	}
}

// Register records `schema` under both its short name and its qualified name.
//
// Short-key entries grow across distinct defining locations, so a short name
// registered from two modules lists both candidates (and Lookup refuses to
// guess between them). A re-registration from the same origin instead resets
// the short-key entry to the new handle only: the previous definition from
// that location is stale and drops out of short-name visibility.
//
// Qualified-key entries strictly accumulate every registration, so the full
// re-definition history of one defining location stays observable via
// LookupAll(QualifiedName(origin, name)).
//
// Register is expected to run as a side effect of schema-type creation;
// callers must not double-register without intent.
func (s *Store) Register(name string, schema SchemaType, origin string) error {
	start := time.Now()

	if name == "" || origin == "" {
		err := fmt.Errorf("schema name and defining location must be non-empty: %w", ErrInvalidName)
		s.observeOperation("register", name, origin, time.Since(start), err, nil)
		return err
	}

	qualified := QualifiedName(origin, name)
	rec := record{schema: schema, origin: origin}

	s.mu.Lock()
	superseded := false
	if existing, ok := s.entries[name]; ok {
		if sameOrigin(existing, origin) {
			// Re-definition at the same location: the stale entry is
			// dropped from short-key visibility.
			s.entries[name] = []record{rec}
			superseded = true
		} else {
			s.entries[name] = append(existing, rec)
		}
	} else {
		s.entries[name] = []record{rec}
	}

	s.entries[qualified] = append(s.entries[qualified], rec)
	s.mu.Unlock()

	s.logDebug(bgctx(), "schema registered", map[string]interface{}{
		"schema":     name,
		"origin":     origin,
		"superseded": superseded,
	})
	s.observeOperation("register", name, origin, time.Since(start), nil, map[string]interface{}{
		"superseded": superseded,
	})
	return nil
}

// Lookup resolves `name` (short or qualified) to exactly one schema type.
//
// It fails with ErrNotFound when nothing is registered under `name`, and with
// ErrAmbiguous when a short name has accumulated candidates from more than
// one defining location - the registry never silently guesses among true
// duplicates. Use the qualified name, or LookupAll, to disambiguate.
func (s *Store) Lookup(name string) (SchemaType, error) {
	start := time.Now()

	s.mu.RLock()
	records, ok := s.entries[name]
	count := len(records)
	var first SchemaType
	if count > 0 {
		first = records[0].schema
	}
	s.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("schema with name %q was not found; you may need to ensure its defining module is loaded: %w", name, ErrNotFound)
		s.observeOperation("lookup", name, "", time.Since(start), err, nil)
		return nil, err
	}

	if count > 1 {
		err := fmt.Errorf("multiple schemas with name %q were found; please use the fully qualified name: %w", name, ErrAmbiguous)
		s.logWarn(bgctx(), "ambiguous schema lookup", map[string]interface{}{
			"schema":     name,
			"candidates": count,
		})
		s.observeOperation("lookup", name, "", time.Since(start), err, map[string]interface{}{
			"ambiguous":  true,
			"candidates": count,
		})
		return nil, err
	}

	s.observeOperation("lookup", name, "", time.Since(start), nil, nil)
	return first, nil
}

// LookupAll resolves `name` (short or qualified) to the full candidate list,
// in registration order. It fails with ErrNotFound when nothing is registered
// under `name`. The returned slice is a copy; mutating it does not affect the
// store.
func (s *Store) LookupAll(name string) ([]SchemaType, error) {
	start := time.Now()

	s.mu.RLock()
	records, ok := s.entries[name]
	schemas := make([]SchemaType, len(records))
	for i, rec := range records {
		schemas[i] = rec.schema
	}
	s.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("schema with name %q was not found; you may need to ensure its defining module is loaded: %w", name, ErrNotFound)
		s.observeOperation("lookup_all", name, "", time.Since(start), err, nil)
		return nil, err
	}

	s.observeOperation("lookup_all", name, "", time.Since(start), nil, map[string]interface{}{
		"candidates": len(schemas),
	})
	return schemas, nil
}

// Snapshot returns a copy of the whole store, keyed by short and qualified
// names, for diagnostics. Mutating the returned map does not affect the store.
func (s *Store) Snapshot() map[string][]SchemaType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string][]SchemaType, len(s.entries))
	for key, records := range s.entries {
		schemas := make([]SchemaType, len(records))
		for i, rec := range records {
			schemas[i] = rec.schema
		}
		snapshot[key] = schemas
	}
	return snapshot
}

// Count returns the number of keys (short and qualified) currently registered.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Reset clears all entries. Registered types persist for the lifetime of the
// store otherwise; tests sharing one store must call Reset between runs.
func (s *Store) Reset() {
	start := time.Now()

	s.mu.Lock()
	s.entries = make(map[string][]record)
	s.mu.Unlock()

	s.observeOperation("reset", "", "", time.Since(start), nil, nil)
}

// sameOrigin reports whether any record was registered from `origin`.
func sameOrigin(records []record, origin string) bool {
	for _, rec := range records {
		if rec.origin == origin {
			return true
		}
	}
	return false
}

// WithObserver sets the observer for this store and returns the store for method chaining.
// The observer receives events about registry operations (register, lookup, lookup_all, reset).
//
// Example:
//
//	store := registry.NewStore(registry.Config{}).WithObserver(myObserver).WithLogger(myLogger)
func (s *Store) WithObserver(observer observability.Observer) *Store {
	s.observer = observer
	return s
}

// WithLogger sets the logger for this store and returns the store for method chaining.
// The logger is used for structured logging of registry operations.
//
// Example:
//
//	store := registry.NewStore(registry.Config{}).WithObserver(myObserver).WithLogger(myLogger)
func (s *Store) WithLogger(logger Logger) *Store {
	s.logger = logger
	return s
}

// logDebug logs a debug message if a logger is configured
func (s *Store) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.DebugWithContext(ctx, msg, nil, fields)
	}
}

// logWarn logs a warning message if a logger is configured
func (s *Store) logWarn(ctx context.Context, msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.WarnWithContext(ctx, msg, nil, fields)
	}
}
