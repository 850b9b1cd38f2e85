// Package validation provides the structured validation-error model used by
// schema-based (de)serialization.
//
// Validation logic occurring at arbitrary nesting depth (individual field,
// nested sub-schema, whole schema) attaches messages to precise locations and
// aggregates them into one client-facing error. The package does not validate
// data itself - it records where a failure occurred and aggregates records.
//
// # Message Payloads
//
// A payload is one of three shapes, expressed as the sealed Messages union:
//
//   - Text: a single message ("bad value")
//   - List: a flat sequence of messages
//   - FieldMap: a mapping from location key to payload, recursively, for
//     failures in nested data graphs
//
// A Text payload is canonicalized into a one-element List at construction,
// never treated as a sequence of characters. Switches over Messages are
// exhaustive across the three variants.
//
// # Constructing Errors
//
//	err := validation.NewError(validation.Text("must be positive"),
//	    validation.WithField("age"),
//	    validation.WithRawInput(input),
//	)
//
// The location defaults to SchemaLevelKey ("_schema") when the failure is not
// attributable to one field. Raw input and partially valid output are two
// independent optional attachments; either or both may be set.
//
// # Normalization and Aggregation
//
// NormalizedMessages reshapes any error into a mapping from location key to
// payload. Collector merges those mappings across one validation pass:
//
//	var c validation.Collector
//	c.Add(validation.NewError(validation.Text("must be positive"), validation.WithField("age")))
//	c.Add(validation.NewError(validation.Text("not an email"), validation.WithField("email")))
//	err := c.Err() // one *Error with both "age" and "email" entries
//
// Errors that are not validation errors are combined with
// go.uber.org/multierr and surfaced alongside the aggregate.
//
// # Partial Success
//
// A failed pass may still have produced usable output. Callers inspect it via
// ValidOutput and decide whether to reject everything or accept the valid
// part:
//
//	var verr *validation.Error
//	if errors.As(err, &verr) {
//	    partial := verr.ValidOutput()
//	    report(verr.NormalizedMessages())
//	}
//
// # Thread Safety
//
// Error values are immutable after construction and freely shareable across
// goroutines without synchronization. A Collector belongs to one validation
// pass and is not safe for concurrent use.
package validation
