package registry

import (
	"time"

	"github.com/aalemi-dev/schemakit/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track registry operations for metrics and tracing.
//
// Notes:
//   - resource: the schema name (short or qualified) being registered or resolved
//   - subResource: the defining-location path (for registrations)
func (s *Store) observeOperation(operation, resource, subResource string, duration time.Duration, err error, metadata map[string]interface{}) {
	if s == nil || s.observer == nil {
		return
	}

	s.observer.ObserveOperation(observability.OperationContext{
		Component:   "registry",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Metadata:    metadata,
	})
}
