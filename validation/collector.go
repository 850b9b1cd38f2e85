package validation

import (
	"errors"
	"time"

	"go.uber.org/multierr"

	"github.com/aalemi-dev/schemakit/observability"
)

// Collector aggregates failures from one validation pass. Validation errors
// contribute their normalized messages, merged keyed by location, so the
// caller receives one mapping describing every failure instead of only the
// first one encountered. Errors that are not validation errors are combined
// separately and surfaced alongside.
//
// The zero value is ready to use. A Collector is not safe for concurrent use;
// each validation pass owns its own.
type Collector struct {
	merged      FieldMap
	validOutput interface{}
	other       error

	observer observability.Observer
}

// WithObserver sets the observer for this collector and returns the collector
// for method chaining. The observer receives one "merge" event per collected
// validation error.
func (c *Collector) WithObserver(observer observability.Observer) *Collector {
	c.observer = observer
	return c
}

// Add records err. Validation errors (matched with errors.As) are merged
// into the aggregate mapping; the most recent non-nil valid output wins.
// Other errors are combined with multierr. Adding nil is a no-op.
func (c *Collector) Add(err error) {
	if err == nil {
		return
	}
	start := time.Now()

	var verr *Error
	if errors.As(err, &verr) {
		c.merged = MergeMessages(c.merged, verr.NormalizedMessages())
		if out := verr.ValidOutput(); out != nil {
			c.validOutput = out
		}
		c.observeMerge(verr.Field(), time.Since(start))
		return
	}

	c.other = multierr.Append(c.other, err)
}

// HasErrors reports whether anything has been collected.
func (c *Collector) HasErrors() bool {
	return len(c.merged) > 0 || c.other != nil
}

// Err returns the aggregate outcome of the pass: nil when nothing was
// collected, a single *Error carrying the merged mapping (and the last seen
// valid output) when only validation errors occurred, or a multierr-combined
// error when non-validation errors were collected too.
func (c *Collector) Err() error {
	var verr error
	if len(c.merged) > 0 {
		opts := []Option{}
		if c.validOutput != nil {
			opts = append(opts, WithValidOutput(c.validOutput))
		}
		verr = NewError(c.merged, opts...)
	}

	switch {
	case verr == nil:
		return c.other
	case c.other == nil:
		return verr
	default:
		return multierr.Append(verr, c.other)
	}
}

// observeMerge notifies the observer about a merge if one is configured.
func (c *Collector) observeMerge(location string, duration time.Duration) {
	if c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "validation",
		Operation: "merge",
		Resource:  location,
		Duration:  duration,
		Size:      int64(len(c.merged)),
	})
}
