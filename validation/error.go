package validation

import "fmt"

// Error is raised when validation fails on a field or schema. It is the
// expected channel for reporting that a value failed semantic checks, not an
// abnormal condition: callers decide whether to reject, report, or partially
// accept the already-valid output carried alongside it.
//
// An Error is constructed once at the point a rule fails and is immutable
// thereafter; outer validation layers wrap inner payloads under their own
// location key instead of mutating the inner error.
type Error struct {
	// messages holds the canonicalized payload: a single message is stored
	// as a one-element List.
	messages Messages

	// field is the location key the payload is attached to. Defaults to
	// SchemaLevelKey when the failure is not attributable to one field.
	field string

	// rawInput is the input that failed validation (optional).
	rawInput interface{}

	// validOutput is the partially valid output already produced before the
	// failure (optional). Independent of rawInput; both may be set.
	validOutput interface{}
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithField attaches the error to a specific field name instead of the
// schema-level sentinel.
func WithField(name string) Option {
	return func(e *Error) {
		e.field = name
	}
}

// WithRawInput attaches the raw input that failed validation.
func WithRawInput(input interface{}) Option {
	return func(e *Error) {
		e.rawInput = input
	}
}

// WithValidOutput attaches the partially valid output produced before the
// failure, enabling partial-success handling by the caller.
func WithValidOutput(output interface{}) Option {
	return func(e *Error) {
		e.validOutput = output
	}
}

// NewError creates a validation error with the given message payload.
// A Text payload is wrapped into a one-element List. The location defaults
// to SchemaLevelKey unless WithField is given.
func NewError(messages Messages, opts ...Option) *Error {
	e := &Error{
		messages: canonical(messages),
		field:    SchemaLevelKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Error implements the error interface. The output renders the normalized
// mapping with sorted keys, so it is deterministic.
func (e *Error) Error() string {
	return "validation failed: " + render(e.NormalizedMessages())
}

// Messages returns the canonicalized message payload.
func (e *Error) Messages() Messages {
	return e.messages
}

// Field returns the location key the payload is attached to.
func (e *Error) Field() string {
	return e.field
}

// RawInput returns the raw input that failed validation, or nil.
func (e *Error) RawInput() interface{} {
	return e.rawInput
}

// ValidOutput returns the partially valid output produced before the
// failure, or nil.
func (e *Error) ValidOutput() interface{} {
	return e.validOutput
}

// NormalizedMessages reshapes the payload into a canonical mapping from
// location key to payload. A mapping payload attached at the schema level
// already expresses per-location structure and passes through unchanged;
// anything else becomes a one-entry mapping under the stored location key.
func (e *Error) NormalizedMessages() FieldMap {
	if e.field == SchemaLevelKey {
		if fields, ok := e.messages.(FieldMap); ok {
			return fields
		}
	}
	return FieldMap{e.field: e.messages}
}

// MessagesMap returns the payload only if it is already a mapping. It fails
// with ErrNotAMapping otherwise; callers must not coerce non-mapping payloads.
func (e *Error) MessagesMap() (FieldMap, error) {
	fields, ok := e.messages.(FieldMap)
	if !ok {
		return nil, fmt.Errorf("cannot access messages as a mapping when the payload is of type %T: %w", e.messages, ErrNotAMapping)
	}
	return fields, nil
}
