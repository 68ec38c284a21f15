package translate

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema constrains a workflow document to the shape the parser
// expects: a node id keyed map of {class_type: string, inputs?: object}.
// It is a convenience pre-check, not on the mandatory parse path — Parse
// degrades gracefully on anything json.Unmarshal accepts regardless.
const documentSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["class_type"],
    "properties": {
      "class_type": {"type": "string"},
      "inputs": {"type": "object"}
    }
  }
}`

// ValidateDocument checks doc against documentSchema and returns a
// human-readable issue per violation, or nil if it is well-formed. It never
// blocks TranslateDocument; callers use it for early, structured feedback.
func ValidateDocument(doc map[string]any) []string {
	docBytes, err := json.Marshal(doc)
	if err != nil {
		return []string{fmt.Sprintf("failed to serialize document: %v", err)}
	}

	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(docBytes)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("schema validation failed: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, e.String())
	}
	return issues
}
