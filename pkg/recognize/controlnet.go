package recognize

import (
	"strings"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

var controlNetApplyClassTypes = map[string]bool{
	"ControlNetApply": true, "ControlNetApplyAdvanced": true, "ControlNetApplySD3": true,
}

// detectControlNet emits one match per ControlNetApply(Advanced|SD3) node,
// inferring the preprocessor family from the class name of whatever feeds
// its "image" input (Canny/Depth/OpenPose.../DW.../Lineart substrings).
func detectControlNet(g *types.WorkflowGraph) []types.PatternMatch {
	var matches []types.PatternMatch

	for _, id := range sortedIDs(g) {
		node := g.Nodes[id]
		if !controlNetApplyClassTypes[node.ClassType] {
			continue
		}

		var model any
		if loader := linkSource(g, node, "control_net"); loader != nil && loader.ClassType == "ControlNetLoader" {
			model = loader.Literal("control_net_name", nil)
		}

		var preprocessor any
		if prep := linkSource(g, node, "image"); prep != nil {
			preprocessor = inferPreprocessor(prep.ClassType)
		}

		matches = append(matches, types.PatternMatch{
			Type:  types.PatternControlNet,
			Nodes: []string{id},
			Config: map[string]any{
				"model":         model,
				"preprocessor":  preprocessor,
				"strength":      node.Literal("strength", 1.0),
				"start_percent": node.Literal("start_percent", 0.0),
				"end_percent":   node.Literal("end_percent", 1.0),
			},
		})
	}

	return matches
}

func inferPreprocessor(classType string) any {
	switch {
	case strings.Contains(classType, "Canny"):
		return "canny"
	case strings.Contains(classType, "Depth"):
		return "depth"
	case strings.Contains(classType, "OpenPose"), strings.Contains(classType, "DW"):
		return "openpose"
	case strings.Contains(classType, "Lineart"):
		return "lineart"
	default:
		return nil
	}
}
