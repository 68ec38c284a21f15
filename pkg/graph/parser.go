package graph

import (
	"strconv"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

// DanglingLink records a link input whose source node id does not appear
// in the document. The input is dropped from the consuming node rather
// than kept as a broken link.
type DanglingLink struct {
	NodeID     string
	InputName  string
	SourceNode string
}

// Diagnostics carries the non-fatal findings of a parse: links that could
// not be resolved and nodes that could not be scheduled because of a
// cycle. Neither condition stops translation.
type Diagnostics struct {
	DanglingLinks []DanglingLink
	CycleNodes    []string
}

func (d *Diagnostics) HasFindings() bool {
	return d != nil && (len(d.DanglingLinks) > 0 || len(d.CycleNodes) > 0)
}

// Parse lifts a workflow document (node id -> {class_type, inputs}) into a
// WorkflowGraph: node construction, input classification, link resolution,
// root/terminal analysis, and topological scheduling, in that order. A
// node entry that is not a JSON object is skipped rather than aborting the
// whole parse; a missing class_type defaults to "Unknown".
func Parse(doc map[string]any, extra Classifier) (*types.WorkflowGraph, *Diagnostics) {
	g := &types.WorkflowGraph{Nodes: make(map[string]*types.Node, len(doc))}
	diag := &Diagnostics{}

	for id, raw := range doc {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		g.Nodes[id] = parseNode(id, obj, extra)
	}

	resolveLinks(g, diag)
	analyzeStructure(g)
	scheduleExecution(g, diag)

	return g, diag
}

func parseNode(id string, obj map[string]any, extra Classifier) *types.Node {
	classType, _ := obj["class_type"].(string)
	if classType == "" {
		classType = "Unknown"
	}

	node := &types.Node{
		ID:        id,
		ClassType: classType,
		Category:  Categorize(classType, extra),
		Inputs:    map[string]types.NodeInput{},
	}

	inputsRaw, _ := obj["inputs"].(map[string]any)
	for name, value := range inputsRaw {
		node.Inputs[name] = parseInput(value)
	}
	return node
}

// parseInput classifies a raw input value as a link or a literal. A link
// is a two-element array whose first element is a string or an integral
// number (the source node id) and whose second element is a non-negative
// integral number (the output slot); anything else, including other
// two-element arrays, is a literal.
func parseInput(value any) types.NodeInput {
	arr, ok := value.([]any)
	if !ok || len(arr) != 2 {
		return types.NodeInput{Value: value}
	}

	sourceNode, okSource := asNodeRef(arr[0])
	slot, okSlot := asIndex(arr[1])
	if !okSource || !okSlot {
		return types.NodeInput{Value: value}
	}

	return types.NodeInput{IsLink: true, SourceNode: sourceNode, SourceOutput: slot}
}

func asNodeRef(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		if t != float64(int64(t)) {
			return "", false
		}
		return formatNodeRef(t), true
	default:
		return "", false
	}
}

func asIndex(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f < 0 || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

func formatNodeRef(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// resolveLinks builds each source node's Outgoing connections from every
// other node's link inputs, and records and removes dangling links whose
// source node id is absent from the document.
func resolveLinks(g *types.WorkflowGraph, diag *Diagnostics) {
	for id, node := range g.Nodes {
		for inputName, in := range node.Inputs {
			if !in.IsLink {
				continue
			}
			source, ok := g.Nodes[in.SourceNode]
			if !ok {
				diag.DanglingLinks = append(diag.DanglingLinks, DanglingLink{
					NodeID: id, InputName: inputName, SourceNode: in.SourceNode,
				})
				delete(node.Inputs, inputName)
				continue
			}
			source.Outgoing = append(source.Outgoing, types.Connection{
				TargetNode:  id,
				TargetInput: inputName,
				SourceSlot:  in.SourceOutput,
			})
		}
	}
}

// analyzeStructure fills RootNodes (no linked input) and TerminalNodes
// (no outgoing connection, or a registered output class).
func analyzeStructure(g *types.WorkflowGraph) {
	for id, node := range g.Nodes {
		if !node.HasLinkedInput() {
			g.RootNodes = append(g.RootNodes, id)
		}
		if len(node.Outgoing) == 0 || IsOutputClass(node.ClassType) {
			g.TerminalNodes = append(g.TerminalNodes, id)
		}
	}
	insertionSort(g.RootNodes)
	insertionSort(g.TerminalNodes)
}
