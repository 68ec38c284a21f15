// Package recognize identifies semantic constructs in a parsed workflow
// graph — the base generation pattern plus any modifiers layered on top of
// it — and reduces them to a flat, ordered list of PatternMatch records
// the code generator lowers into Python.
//
// Detectors never execute the graph; every extracted config value is
// either a literal input on the matched node or a value read by following
// a single incoming link to its source node. Detection order is fixed:
// base pattern, then controlnet, ipadapter, lora, upscale, inpaint, and
// within a detector, candidate nodes are visited in ascending node-id
// order so two graphs with identical content always yield identical
// pattern lists regardless of map iteration.
package recognize

import (
	"sort"
	"strings"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

// detector finds every pattern of one kind in the graph, in ascending
// node-id order.
type detector func(g *types.WorkflowGraph) []types.PatternMatch

// Analyze runs every registered detector over g in the documented order
// and returns the concatenated result. A graph with no recognizable
// pattern yields an empty, non-nil slice.
func Analyze(g *types.WorkflowGraph) []types.PatternMatch {
	if g == nil {
		return nil
	}

	detectors := []detector{
		detectBaseSlice,
		detectControlNet,
		detectIPAdapter,
		detectLoRA,
		detectUpscale,
		detectInpaint,
	}

	matches := make([]types.PatternMatch, 0, len(g.Nodes))
	for _, d := range detectors {
		matches = append(matches, d(g)...)
	}
	return matches
}

func detectBaseSlice(g *types.WorkflowGraph) []types.PatternMatch {
	m := detectBase(g)
	if m == nil {
		return nil
	}
	return []types.PatternMatch{*m}
}

// sortedIDs returns the node identifiers of g in ascending lexicographic
// order, the iteration order every detector uses.
func sortedIDs(g *types.WorkflowGraph) []string {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// firstByClassType returns the first node (in ascending id order) whose
// class_type is in classTypes, or nil.
func firstByClassType(g *types.WorkflowGraph, classTypes map[string]bool) *types.Node {
	for _, id := range sortedIDs(g) {
		if node := g.Nodes[id]; classTypes[node.ClassType] {
			return node
		}
	}
	return nil
}

// linkSource follows a single link hop from node's named input to its
// source node, or returns nil if the input is absent, a literal, or
// dangling.
func linkSource(g *types.WorkflowGraph, node *types.Node, inputName string) *types.Node {
	in, ok := node.Inputs[inputName]
	if !ok || !in.IsLink {
		return nil
	}
	return g.Node(in.SourceNode)
}

// Summarize renders a short human-readable description of matches, in the
// style of a build log rather than a data dump.
func Summarize(matches []types.PatternMatch) string {
	if len(matches) == 0 {
		return "No recognizable patterns detected"
	}

	lines := []string{"Detected patterns:"}
	for _, p := range matches {
		switch p.Type {
		case types.PatternTxt2Img:
			lines = append(lines,
				"  - Text-to-Image generation",
				"    Model: "+toString(p.Config["checkpoint"]),
			)
		case types.PatternImg2Img:
			lines = append(lines, "  - Image-to-Image generation")
		case types.PatternSDXLRefiner:
			lines = append(lines, "  - SDXL base+refiner generation")
		case types.PatternControlNet:
			lines = append(lines, "  - ControlNet: "+toString(p.Config["preprocessor"]))
		case types.PatternIPAdapter:
			lines = append(lines, "  - IPAdapter: "+toString(p.Config["type"]))
		case types.PatternLoRA:
			lines = append(lines, "  - LoRA: "+toString(p.Config["name"]))
		case types.PatternUpscale:
			lines = append(lines, "  - Upscale: "+toString(p.Config["method"]))
		case types.PatternInpaint:
			lines = append(lines, "  - Inpainting")
		}
	}
	return strings.Join(lines, "\n")
}

func toString(v any) string {
	if v == nil {
		return "unknown"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "unknown"
}
