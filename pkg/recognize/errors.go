package recognize

import "errors"

// ErrNoGraph names the nil-graph condition. Analyze itself returns no
// error: a nil graph yields a nil slice, and a well-formed but
// pattern-free graph yields an empty one.
var ErrNoGraph = errors.New("recognize: graph is nil")
