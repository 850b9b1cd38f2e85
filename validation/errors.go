package validation

import "errors"

// ErrNotAMapping is returned by MessagesMap when the payload is a single
// message or a list rather than a field mapping. This indicates a programmer
// error (the caller assumed mapping structure that is not present), not a
// data error.
var ErrNotAMapping = errors.New("messages payload is not a mapping")
