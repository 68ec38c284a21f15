// Package codegen lowers a recognized PatternMatch list into a Python
// diffusers script; the WorkflowGraph itself is not an input. Generate always succeeds: a
// workflow with no recognizable base pattern still produces a complete,
// syntactically valid file whose main section is a single explanatory
// comment, matching the core's no-hard-errors contract.
package codegen

import (
	"strings"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

const indent = "    "

// Generate assembles the five labelled sections — header, imports,
// configuration, main, save — in that order, each separated by a blank
// line, and returns the complete script text.
func Generate(patterns []types.PatternMatch) string {
	sections := []string{
		generateHeader(patterns),
		generateImports(patterns),
		generateConfig(patterns),
		generateMain(patterns),
		generateSave(patterns),
	}
	return strings.Join(sections, "\n\n")
}

func findBase(patterns []types.PatternMatch) *types.PatternMatch {
	for i := range patterns {
		if types.BasePatterns[patterns[i].Type] {
			return &patterns[i]
		}
	}
	return nil
}

func byType(patterns []types.PatternMatch, t types.PatternType) []types.PatternMatch {
	var out []types.PatternMatch
	for _, p := range patterns {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

func configValue(config map[string]any, key string, def any) any {
	if v, ok := config[key]; ok && v != nil {
		return v
	}
	return def
}

func join(lines []string) string {
	return strings.Join(lines, "\n")
}
