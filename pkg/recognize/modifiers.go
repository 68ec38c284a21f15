package recognize

import "github.com/rawdiffusion/comfytranslate/pkg/types"

var ipAdapterClassTypes = map[string]bool{
	"IPAdapterApply": true, "IPAdapterAdvanced": true, "IPAdapterFaceID": true,
	"IPAdapterStyleComposition": true, "IPAdapterBatch": true,
}

func detectIPAdapter(g *types.WorkflowGraph) []types.PatternMatch {
	var matches []types.PatternMatch
	for _, id := range sortedIDs(g) {
		node := g.Nodes[id]
		if !ipAdapterClassTypes[node.ClassType] {
			continue
		}
		matches = append(matches, types.PatternMatch{
			Type:  types.PatternIPAdapter,
			Nodes: []string{id},
			Config: map[string]any{
				"type":        node.ClassType,
				"weight":      node.Literal("weight", 1.0),
				"weight_type": node.Literal("weight_type", "standard"),
				"start_at":    node.Literal("start_at", 0.0),
				"end_at":      node.Literal("end_at", 1.0),
			},
		})
	}
	return matches
}

var loraClassTypes = map[string]bool{"LoraLoader": true, "LoraLoaderModelOnly": true}

func detectLoRA(g *types.WorkflowGraph) []types.PatternMatch {
	var matches []types.PatternMatch
	for _, id := range sortedIDs(g) {
		node := g.Nodes[id]
		if !loraClassTypes[node.ClassType] {
			continue
		}
		matches = append(matches, types.PatternMatch{
			Type:  types.PatternLoRA,
			Nodes: []string{id},
			Config: map[string]any{
				"name":           node.Literal("lora_name", nil),
				"strength_model": node.Literal("strength_model", 1.0),
				"strength_clip":  node.Literal("strength_clip", 1.0),
			},
		})
	}
	return matches
}

func detectUpscale(g *types.WorkflowGraph) []types.PatternMatch {
	var matches []types.PatternMatch
	for _, id := range sortedIDs(g) {
		node := g.Nodes[id]
		switch node.ClassType {
		case "LatentUpscale", "LatentUpscaleBy":
			matches = append(matches, types.PatternMatch{
				Type:  types.PatternUpscale,
				Nodes: []string{id},
				Config: map[string]any{
					"method":         "latent",
					"scale":          node.Literal("scale_by", 1.5),
					"upscale_method": node.Literal("upscale_method", "nearest-exact"),
				},
			})
		case "ImageUpscaleWithModel":
			var modelName any
			if loader := linkSource(g, node, "upscale_model"); loader != nil {
				modelName = loader.Literal("model_name", nil)
			}
			matches = append(matches, types.PatternMatch{
				Type:  types.PatternUpscale,
				Nodes: []string{id},
				Config: map[string]any{
					"method": "model",
					"model":  modelName,
				},
			})
		}
	}
	return matches
}

var inpaintClassTypes = map[string]bool{"VAEEncodeForInpaint": true, "InpaintModelConditioning": true}

func detectInpaint(g *types.WorkflowGraph) []types.PatternMatch {
	var matches []types.PatternMatch
	for _, id := range sortedIDs(g) {
		node := g.Nodes[id]
		if !inpaintClassTypes[node.ClassType] {
			continue
		}
		matches = append(matches, types.PatternMatch{
			Type:  types.PatternInpaint,
			Nodes: []string{id},
			Config: map[string]any{
				"type":      "inpaint",
				"grow_mask": node.Literal("grow_mask_by", 0.0),
			},
		})
	}
	return matches
}
