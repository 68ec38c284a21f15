package graph

import "errors"

// Sentinel errors for graph parsing. Per the module's design the core
// parse/schedule path never returns these on the happy path — a malformed
// or cyclic document degrades gracefully (unknown class types become
// "other", cyclic nodes get execution_order -1). They back the façade's
// typed error inspection for document shapes that are not a JSON object
// of node entries at all.
var (
	ErrEmptyDocument = errors.New("workflow document is empty")
	ErrInvalidNode   = errors.New("workflow node is not an object")
	ErrInvalidInputs = errors.New("node inputs field is not an object")
)
