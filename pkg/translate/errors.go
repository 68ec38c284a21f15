package translate

import "errors"

// Sentinel errors for façade-level error inspection. The parser and
// recognizer never return an error on the happy path; these back
// errors.Is checks against the wrapped error TranslateJSON logs before it
// downgrades the failure to a textual "# Error: ..." line.
var (
	ErrInvalidDocument = errors.New("invalid workflow document")
	ErrEmptyPayload    = errors.New("empty payload")
	ErrPayloadTooLarge = errors.New("payload exceeds configured max size")
	ErrTooManyNodes    = errors.New("document exceeds configured max node count")
)
