package config

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidMaxNodes     = errors.New("invalid max nodes: must be non-negative")
	ErrInvalidMaxEdges     = errors.New("invalid max edges: must be non-negative")
	ErrInvalidPayloadSize  = errors.New("invalid max payload size: must be non-negative")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	ErrInvalidIndentWidth  = errors.New("invalid indent width: must be positive")
)
