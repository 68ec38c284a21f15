package graph

import "github.com/rawdiffusion/comfytranslate/pkg/types"

// scheduleExecution computes WorkflowGraph.ExecutionOrder with Kahn's
// algorithm, tie-breaking the zero-in-degree frontier in ascending
// lexicographic node-id order at every step so the result depends only on
// node and edge identity, never on map iteration order.
//
// Nodes that cannot be reached because they sit inside (or depend only on)
// a cycle are left out of ExecutionOrder and get ExecutionOrder -1; they
// are also reported in diag.CycleNodes. A cycle never aborts scheduling
// of the rest of the graph.
func scheduleExecution(g *types.WorkflowGraph, diag *Diagnostics) {
	numNodes := len(g.Nodes)
	if numNodes == 0 {
		return
	}

	inDegree := make(map[string]int, numNodes)
	for id, node := range g.Nodes {
		inDegree[id] = 0
		_ = node
	}
	for _, node := range g.Nodes {
		for _, conn := range node.Outgoing {
			if _, ok := g.Nodes[conn.TargetNode]; ok {
				inDegree[conn.TargetNode]++
			}
		}
	}

	ready := make([]string, 0, numNodes)
	for id, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, id)
		}
	}
	insertionSort(ready)

	order := make([]string, 0, numNodes)

	for len(ready) > 0 {
		// ready stays sorted across the loop: it starts sorted and every
		// newly-unblocked node is inserted in place, so the node picked
		// here is always the lexicographically smallest currently
		// schedulable id, not just the smallest among this round's
		// arrivals.
		current := ready[0]
		ready = ready[1:]
		order = append(order, current)
		g.Nodes[current].ExecutionOrder = len(order) - 1

		for _, conn := range g.Nodes[current].Outgoing {
			target := conn.TargetNode
			inDegree[target]--
			if inDegree[target] == 0 {
				ready = insertSorted(ready, target)
			}
		}
	}

	if len(order) != numNodes {
		scheduled := make(map[string]bool, len(order))
		for _, id := range order {
			scheduled[id] = true
		}
		for id, node := range g.Nodes {
			if !scheduled[id] {
				node.ExecutionOrder = -1
				diag.CycleNodes = append(diag.CycleNodes, id)
			}
		}
		insertionSort(diag.CycleNodes)
	}

	g.ExecutionOrder = order
}

// insertionSort sorts a slice of strings in place. Faster than sort.Strings
// for the small slices (orphan sets, scheduling frontiers) this package
// works with.
func insertionSort(arr []string) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}

// insertSorted inserts id into an already-sorted slice, preserving order.
func insertSorted(sorted []string, id string) []string {
	i := 0
	for i < len(sorted) && sorted[i] < id {
		i++
	}
	sorted = append(sorted, "")
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = id
	return sorted
}
