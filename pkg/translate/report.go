package translate

import "encoding/json"

// PatternSummary is the JSON-facing view of a types.PatternMatch.
type PatternSummary struct {
	Type   string         `json:"type"`
	Config map[string]any `json:"config"`
	Nodes  []string       `json:"nodes"`
}

// Report is the structured result of AnalyzeJSON: graph shape and the
// patterns recognized over it, without generating code.
type Report struct {
	NodeCount      int              `json:"node_count"`
	ExecutionOrder []string         `json:"execution_order"`
	RootNodes      []string         `json:"root_nodes"`
	TerminalNodes  []string         `json:"terminal_nodes"`
	Patterns       []PatternSummary `json:"patterns"`
	Summary        string           `json:"summary"`

	// errText, when non-empty, makes MarshalJSON emit {"error": errText}
	// instead of the report fields above, matching the original system's
	// wire contract for a malformed document.
	errText string
}

// MarshalJSON implements json.Marshaler.
func (r *Report) MarshalJSON() ([]byte, error) {
	if r.errText != "" {
		return json.Marshal(map[string]string{"error": r.errText})
	}
	type reportAlias Report
	return json.Marshal((*reportAlias)(r))
}
