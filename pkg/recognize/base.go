package recognize

import "github.com/rawdiffusion/comfytranslate/pkg/types"

var checkpointClassTypes = map[string]bool{
	"CheckpointLoaderSimple": true, "CheckpointLoader": true, "unCLIPCheckpointLoader": true,
}

var samplerClassTypes = map[string]bool{
	"KSampler": true, "KSamplerAdvanced": true, "SamplerCustom": true,
}

// detectBase identifies the single base generation pattern of a workflow:
// txt2img, img2img, or sdxl_refiner. A workflow with no checkpoint loader
// or no sampler has no base pattern and detectBase returns nil; the first
// checkpoint loader and first sampler encountered (in ascending node-id
// order) are the ones used, a documented limitation for workflows that
// compose more than one base pipeline (see the module's Open Questions).
func detectBase(g *types.WorkflowGraph) *types.PatternMatch {
	checkpoint := firstByClassType(g, checkpointClassTypes)
	if checkpoint == nil {
		return nil
	}
	sampler := firstByClassType(g, samplerClassTypes)
	if sampler == nil {
		return nil
	}

	isImg2Img := false
	var latentSource *types.Node
	if in, ok := sampler.Inputs["latent_image"]; ok && in.IsLink {
		latentSource = g.Node(in.SourceNode)
	}
	if latentSource != nil && (latentSource.ClassType == "VAEEncode" || latentSource.ClassType == "VAEEncodeForInpaint") {
		isImg2Img = true
	}

	config := map[string]any{
		"checkpoint": checkpoint.Literal("ckpt_name", nil),
		"steps":      sampler.Literal("steps", 20.0),
		"cfg":        sampler.Literal("cfg", 7.5),
		"sampler":    sampler.Literal("sampler_name", "euler"),
		"scheduler":  sampler.Literal("scheduler", "normal"),
		"seed":       sampler.Literal("seed", 0.0),
		"denoise":    sampler.Literal("denoise", 1.0),
	}

	if pos := linkSource(g, sampler, "positive"); pos != nil && pos.ClassType == "CLIPTextEncode" {
		config["positive_prompt"] = pos.Literal("text", "")
	}
	if neg := linkSource(g, sampler, "negative"); neg != nil && neg.ClassType == "CLIPTextEncode" {
		config["negative_prompt"] = neg.Literal("text", "")
	}

	if !isImg2Img && latentSource != nil && latentSource.ClassType == "EmptyLatentImage" {
		config["width"] = latentSource.Literal("width", 512.0)
		config["height"] = latentSource.Literal("height", 512.0)
		config["batch_size"] = latentSource.Literal("batch_size", 1.0)
	}

	patternType := types.PatternTxt2Img
	if isImg2Img {
		patternType = types.PatternImg2Img
	}
	if hasRefiner(g) {
		patternType = types.PatternSDXLRefiner
		config["has_refiner"] = true
	}

	return &types.PatternMatch{
		Type:   patternType,
		Nodes:  []string{checkpoint.ID, sampler.ID},
		Config: config,
	}
}

// hasRefiner reports whether the graph looks like it chains a base model
// into an SDXL refiner: either two or more checkpoint loaders, or a
// KSamplerAdvanced that starts partway through the step schedule.
func hasRefiner(g *types.WorkflowGraph) bool {
	checkpointCount := 0
	for _, node := range g.Nodes {
		if node.ClassType == "CheckpointLoaderSimple" || node.ClassType == "CheckpointLoader" {
			checkpointCount++
		}
	}
	if checkpointCount >= 2 {
		return true
	}

	for _, node := range g.Nodes {
		if node.ClassType != "KSamplerAdvanced" {
			continue
		}
		if start, ok := node.Literal("start_at_step", 0.0).(float64); ok && start > 0 {
			return true
		}
	}
	return false
}
