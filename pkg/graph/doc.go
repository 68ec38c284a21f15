// Package graph parses a ComfyUI-style workflow document into a
// WorkflowGraph and computes its deterministic execution order.
//
// # Overview
//
// A workflow document is a JSON object keyed by node identifier, each value
// an object with a "class_type" string and an "inputs" object. An input
// value is either a literal or a two-element link [source_id, output_index]
// pointing at another node's output. Parse builds the node set, classifies
// every input as literal or link, resolves links into both directions
// (Node.Inputs for the consumer, Node.Outgoing for the producer), and
// computes root nodes (no linked input), terminal nodes (no outgoing
// connection, or an output-class node), and a topological execution order.
//
// # Determinism
//
// scheduleExecution implements Kahn's algorithm with the zero-in-degree
// frontier kept in ascending lexicographic order at every step, so two
// graphs with the same nodes and edges always produce the same order
// regardless of map iteration or input document ordering. This mirrors the
// teacher engine's ring-buffer queue and insertion-sort-for-small-n
// approach, adapted here to tie-break deterministically rather than merely
// to avoid reallocation.
//
// # Cycle handling
//
// Unlike a general-purpose DAG library, this package never fails a parse
// because of a cycle. Nodes that cannot be scheduled (because every path
// to zero in-degree runs through the cycle) are assigned ExecutionOrder
// -1 and excluded from WorkflowGraph.ExecutionOrder; the rest of the graph
// is still scheduled and returned. Cycle membership is reported back to
// callers through diagnostics, not through a returned error.
//
// # Dangling links
//
// A link whose source node identifier does not appear in the document is
// dropped silently from the consuming node's resolved inputs (the raw
// link is not treated as a literal); the drop is reported through
// diagnostics so callers can distinguish "no such input" from "link to a
// node that does not exist".
package graph
