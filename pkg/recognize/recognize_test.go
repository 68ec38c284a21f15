package recognize

import (
	"testing"

	"github.com/rawdiffusion/comfytranslate/pkg/graph"
	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

func parse(t *testing.T, doc map[string]any) *types.WorkflowGraph {
	t.Helper()
	g, _ := graph.Parse(doc, nil)
	return g
}

func TestDetectBase_Txt2Img(t *testing.T) {
	doc := map[string]any{
		"1": map[string]any{"class_type": "CheckpointLoaderSimple", "inputs": map[string]any{"ckpt_name": "sd15.safetensors"}},
		"2": map[string]any{"class_type": "CLIPTextEncode", "inputs": map[string]any{"text": "a fox", "clip": []any{"1", 1.0}}},
		"3": map[string]any{"class_type": "EmptyLatentImage", "inputs": map[string]any{"width": 768.0, "height": 512.0}},
		"4": map[string]any{"class_type": "KSampler", "inputs": map[string]any{
			"model": []any{"1", 0.0}, "positive": []any{"2", 0.0}, "latent_image": []any{"3", 0.0}, "steps": 30.0,
		}},
	}
	g := parse(t, doc)
	matches := Analyze(g)
	if len(matches) != 1 || matches[0].Type != types.PatternTxt2Img {
		t.Fatalf("matches = %+v, want single txt2img", matches)
	}
	if matches[0].Config["width"] != 768.0 {
		t.Fatalf("width = %v, want 768", matches[0].Config["width"])
	}
	if matches[0].Config["steps"] != 30.0 {
		t.Fatalf("steps = %v, want 30", matches[0].Config["steps"])
	}
}

func TestDetectBase_Img2Img(t *testing.T) {
	doc := map[string]any{
		"1": map[string]any{"class_type": "CheckpointLoaderSimple", "inputs": map[string]any{}},
		"2": map[string]any{"class_type": "LoadImage", "inputs": map[string]any{"image": "input.png"}},
		"3": map[string]any{"class_type": "VAEEncode", "inputs": map[string]any{"pixels": []any{"2", 0.0}}},
		"4": map[string]any{"class_type": "KSampler", "inputs": map[string]any{"latent_image": []any{"3", 0.0}}},
	}
	matches := Analyze(parse(t, doc))
	if len(matches) != 1 || matches[0].Type != types.PatternImg2Img {
		t.Fatalf("matches = %+v, want single img2img", matches)
	}
	if _, hasWidth := matches[0].Config["width"]; hasWidth {
		t.Fatalf("img2img config should not carry width")
	}
}

func TestDetectBase_NoCheckpointNoMatch(t *testing.T) {
	doc := map[string]any{"1": map[string]any{"class_type": "KSampler", "inputs": map[string]any{}}}
	if matches := Analyze(parse(t, doc)); len(matches) != 0 {
		t.Fatalf("matches = %+v, want none", matches)
	}
}

func TestDetectControlNet_InfersPreprocessor(t *testing.T) {
	doc := map[string]any{
		"1": map[string]any{"class_type": "ControlNetLoader", "inputs": map[string]any{"control_net_name": "canny.safetensors"}},
		"2": map[string]any{"class_type": "CannyEdgePreprocessor", "inputs": map[string]any{}},
		"3": map[string]any{"class_type": "ControlNetApply", "inputs": map[string]any{
			"control_net": []any{"1", 0.0}, "image": []any{"2", 0.0}, "strength": 0.8,
		}},
	}
	matches := Analyze(parse(t, doc))
	if len(matches) != 1 || matches[0].Type != types.PatternControlNet {
		t.Fatalf("matches = %+v, want single controlnet", matches)
	}
	if matches[0].Config["preprocessor"] != "canny" {
		t.Fatalf("preprocessor = %v, want canny", matches[0].Config["preprocessor"])
	}
	if matches[0].Config["model"] != "canny.safetensors" {
		t.Fatalf("model = %v, want canny.safetensors", matches[0].Config["model"])
	}
}

func TestDetectLoRA_MultipleInDeterministicOrder(t *testing.T) {
	doc := map[string]any{
		"b": map[string]any{"class_type": "LoraLoader", "inputs": map[string]any{"lora_name": "style.safetensors"}},
		"a": map[string]any{"class_type": "LoraLoader", "inputs": map[string]any{"lora_name": "detail.safetensors"}},
	}
	matches := Analyze(parse(t, doc))
	if len(matches) != 2 {
		t.Fatalf("matches = %+v, want 2", matches)
	}
	if matches[0].Nodes[0] != "a" || matches[1].Nodes[0] != "b" {
		t.Fatalf("matches not in ascending node-id order: %+v", matches)
	}
}

func TestHasRefiner_DualCheckpointPromotesSDXLRefiner(t *testing.T) {
	doc := map[string]any{
		"1": map[string]any{"class_type": "CheckpointLoaderSimple", "inputs": map[string]any{}},
		"2": map[string]any{"class_type": "CheckpointLoaderSimple", "inputs": map[string]any{}},
		"3": map[string]any{"class_type": "KSampler", "inputs": map[string]any{}},
	}
	matches := Analyze(parse(t, doc))
	if len(matches) != 1 || matches[0].Type != types.PatternSDXLRefiner {
		t.Fatalf("matches = %+v, want single sdxl_refiner", matches)
	}
}
