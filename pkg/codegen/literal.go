package codegen

import "strconv"

// pyNumber renders a JSON-decoded float64 as a Python numeric literal:
// whole numbers print without a decimal point (steps=20), fractional
// values print as Python would (cfg=7.5). Workflow documents carry no
// int/float distinction of their own (JSON numbers decode to float64), so
// this is the one place that reconstructs it from the value's shape.
func pyNumber(v any) string {
	f, ok := v.(float64)
	if !ok {
		return "0"
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// pyString returns v's text for embedding inside a Python string literal
// (the caller supplies the quotes), falling back to def for nil, empty or
// non-string values.
func pyString(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}
