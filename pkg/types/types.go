// Package types defines the shared data model for the workflow translator:
// the node graph lifted from a workflow document, pattern matches recognized
// over that graph, and the handful of small enums both packages share. It
// exists to avoid import cycles between pkg/graph, pkg/recognize and
// pkg/codegen.
package types

// NodeCategory classifies a node's class_type for structural analysis.
// Membership is table-driven (see pkg/graph's registries), not based on
// inheritance.
type NodeCategory string

const (
	CategoryLoader       NodeCategory = "loader"
	CategoryOutput       NodeCategory = "output"
	CategorySampler      NodeCategory = "sampler"
	CategoryConditioning NodeCategory = "conditioning"
	CategoryLatent       NodeCategory = "latent"
	CategoryImage        NodeCategory = "image"
	CategoryOther        NodeCategory = "other"
)

// NodeInput is either a literal JSON-style value or a link to another
// node's output slot. A two-element array [ref, idx] in the source document
// is a link when ref is a string or integer and idx is a non-negative
// integer; any other shape is a literal, including nested arrays/objects.
type NodeInput struct {
	IsLink       bool
	Value        any    // literal value; nil when IsLink is true
	SourceNode   string // populated when IsLink is true, normalized to string
	SourceOutput int    // populated when IsLink is true
}

// Connection is an outgoing edge from a node, derived from the other
// direction's link inputs during parsing.
type Connection struct {
	TargetNode  string
	TargetInput string
	SourceSlot  int
}

// Node is one entry in the workflow document together with its derived
// outgoing connections and assigned position in execution order.
type Node struct {
	ID             string
	ClassType      string
	Category       NodeCategory
	Inputs         map[string]NodeInput
	Outgoing       []Connection
	ExecutionOrder int // -1 if the node could not be scheduled (cycle member)
}

// HasLinkedInput reports whether any of the node's inputs is a link.
func (n *Node) HasLinkedInput() bool {
	for _, in := range n.Inputs {
		if in.IsLink {
			return true
		}
	}
	return false
}

// Literal returns the literal value of the named input, or def if the
// input is absent or is itself a link. This is the single guarded
// accessor pattern extractors use throughout pkg/recognize.
func (n *Node) Literal(name string, def any) any {
	in, ok := n.Inputs[name]
	if !ok || in.IsLink {
		return def
	}
	return in.Value
}

// WorkflowGraph is the parsed, analyzed form of a workflow document.
type WorkflowGraph struct {
	Nodes          map[string]*Node
	RootNodes      []string // nodes with no linked input
	TerminalNodes  []string // nodes with no outgoing connections, or an output-class node
	ExecutionOrder []string // Kahn order, ascending-identifier tie-break; cycle members omitted
}

// Node returns the node for id, or nil if it does not exist. It is the
// graph's single lookup path so every caller guards the same way against
// dangling references.
func (g *WorkflowGraph) Node(id string) *Node {
	if g == nil {
		return nil
	}
	return g.Nodes[id]
}

// PatternType is the closed set of semantic constructs the recognizer emits.
type PatternType string

const (
	PatternTxt2Img      PatternType = "txt2img"
	PatternImg2Img      PatternType = "img2img"
	PatternSDXLRefiner  PatternType = "sdxl_refiner"
	PatternControlNet   PatternType = "controlnet"
	PatternIPAdapter    PatternType = "ipadapter"
	PatternLoRA         PatternType = "lora"
	PatternUpscale      PatternType = "upscale"
	PatternInpaint      PatternType = "inpaint"
)

// BasePatterns are the mutually exclusive, at-most-one-per-workflow base
// generation patterns.
var BasePatterns = map[PatternType]bool{
	PatternTxt2Img:     true,
	PatternImg2Img:     true,
	PatternSDXLRefiner: true,
}

// PatternMatch is one recognized construct: the pattern it names, the node
// identifiers that participated, and pattern-specific extracted
// configuration. Config values come only from literal inputs or a single
// link hop; the recognizer never executes the graph.
type PatternMatch struct {
	Type        PatternType
	Nodes       []string
	Config      map[string]any
	SubPatterns []PatternMatch // unused by the current recognizer; always nil
}
