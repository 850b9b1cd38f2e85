// Package observability provides a unified interface for observing operations
// across all schemakit packages.
//
// # Overview
//
// The observability package defines a single Observer interface that all
// schemakit packages can use to emit operation events. This allows
// applications to implement metrics, tracing, and logging in a consistent way
// across the library without the library depending on any particular backend.
//
// # Design Philosophy
//
// 1. **Optional**: schemakit packages work perfectly without an observer
// 2. **Unified**: Same interface for every package (registry, validation)
// 3. **Flexible**: Observer can implement metrics, tracing, logging, or all three
// 4. **Generic**: OperationContext works across different package types
// 5. **Non-intrusive**: Minimal code in schemakit packages
//
// # Usage in schemakit Packages
//
// Packages accept an optional Observer in their config:
//
//	import "github.com/aalemi-dev/schemakit/observability"
//
//	type Config struct {
//	    // Optional observer for operation tracking
//	    Observer observability.Observer
//	}
//
// Then call the observer when operations complete:
//
//	func (s *Store) Lookup(name string) (SchemaType, error) {
//	    start := time.Now()
//	    schema, err := s.resolve(name)
//
//	    if s.observer != nil {
//	        s.observer.ObserveOperation(observability.OperationContext{
//	            Component: "registry",
//	            Operation: "lookup",
//	            Resource:  name,
//	            Duration:  time.Since(start),
//	            Error:     err,
//	        })
//	    }
//
//	    return schema, err
//	}
//
// # Usage in Applications
//
// Applications implement the Observer interface to handle operations:
//
//	type MetricsObserver struct {
//	    lookups *prometheus.CounterVec
//	}
//
//	func (o *MetricsObserver) ObserveOperation(ctx observability.OperationContext) {
//	    switch ctx.Component {
//	    case "registry":
//	        o.lookups.WithLabelValues(ctx.Operation, outcome(ctx.Error)).Inc()
//	    }
//	}
//
// A single observer can handle metrics, tracing, and logging together; see the
// OperationContext fields for what is available per event.
//
// # FX Integration
//
// Wire the observer through dependency injection:
//
//	fx.Provide(
//	    fx.Annotate(
//	        NewMetricsObserver,
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// Packages whose FX modules declare an optional Observer dependency pick it up
// automatically.
//
// # Performance
//
// The observer pattern adds minimal overhead:
//   - One nil check per operation
//   - One function call if observer is present
//   - No allocations if observer is nil
//
// # Thread Safety
//
// Observer implementations must be thread-safe. They will be called
// concurrently from multiple goroutines.
package observability
