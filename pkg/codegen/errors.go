package codegen

import "errors"

// ErrNoBasePattern is never returned to a façade caller as an error value;
// Generate degrades to a single explanatory comment line in the main
// section instead, matching the core's no-hard-errors contract. It is
// kept as a sentinel for tests and for callers that want to detect the
// condition with errors.Is against the comment-producing path.
var ErrNoBasePattern = errors.New("codegen: no base generation pattern recognized")
