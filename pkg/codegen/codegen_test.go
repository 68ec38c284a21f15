package codegen

import (
	"strings"
	"testing"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

func TestGenerate_Txt2Img(t *testing.T) {
	patterns := []types.PatternMatch{
		{
			Type:  types.PatternTxt2Img,
			Nodes: []string{"1", "2"},
			Config: map[string]any{
				"checkpoint": "sd15.safetensors", "steps": 20.0, "cfg": 7.5,
				"positive_prompt": "a fox", "negative_prompt": "blurry", "width": 512.0, "height": 512.0,
				"seed": 0.0,
			},
		},
	}

	script := Generate(patterns)

	for _, want := range []string{
		`MODEL_PATH = "sd15.safetensors"`,
		"STEPS = 20",
		"CFG_SCALE = 7.5",
		"from diffusers import StableDiffusionPipeline",
		"pipe = StableDiffusionPipeline.from_single_file(",
		`image.save("output.png")`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("generated script missing %q\n---\n%s", want, script)
		}
	}
}

func TestGenerate_XLCheckpointDetectedByName(t *testing.T) {
	patterns := []types.PatternMatch{
		{Type: types.PatternTxt2Img, Config: map[string]any{"checkpoint": "sdXL_base.safetensors"}},
	}
	script := Generate(patterns)
	if !strings.Contains(script, "StableDiffusionXLPipeline") {
		t.Errorf("expected XL pipeline for xl-named checkpoint:\n%s", script)
	}
}

func TestGenerate_NonXLControlNetInlinesImport(t *testing.T) {
	patterns := []types.PatternMatch{
		{Type: types.PatternTxt2Img, Config: map[string]any{"checkpoint": "sd15.safetensors"}},
		{Type: types.PatternControlNet, Config: map[string]any{"model": "canny.safetensors", "preprocessor": "canny"}},
	}
	script := Generate(patterns)
	if !strings.Contains(script, "from diffusers import StableDiffusionControlNetPipeline") {
		t.Errorf("expected inlined ControlNet pipeline import:\n%s", script)
	}
	if strings.Count(script, "from diffusers import StableDiffusionControlNetPipeline") != 1 {
		t.Errorf("expected the inline import exactly once")
	}
}

func TestGenerate_NoBasePatternStillProducesCompleteScript(t *testing.T) {
	script := Generate(nil)
	if len(strings.Split(script, "\n\n")) != 5 {
		t.Fatalf("expected 5 sections even with no base pattern, got: %q", script)
	}
	if !strings.Contains(script, "no base generation pattern") {
		t.Errorf("expected explanatory comment in main section:\n%s", script)
	}
}

func TestGenerate_MultiControlNetUsesLists(t *testing.T) {
	patterns := []types.PatternMatch{
		{Type: types.PatternTxt2Img, Config: map[string]any{"checkpoint": "sd15.safetensors"}},
		{Type: types.PatternControlNet, Config: map[string]any{"model": "canny.safetensors", "preprocessor": "canny"}},
		{Type: types.PatternControlNet, Config: map[string]any{"model": "depth.safetensors", "preprocessor": "depth"}},
	}
	script := Generate(patterns)
	if !strings.Contains(script, "controlnet=[controlnet_0, controlnet_1]") {
		t.Errorf("expected multi-controlnet list:\n%s", script)
	}
}

func TestGenerate_ImportsDeduped(t *testing.T) {
	patterns := []types.PatternMatch{
		{Type: types.PatternTxt2Img, Config: map[string]any{"checkpoint": "sd15.safetensors"}},
		{Type: types.PatternControlNet, Config: map[string]any{"preprocessor": "canny"}},
		{Type: types.PatternControlNet, Config: map[string]any{"preprocessor": "canny"}},
	}
	script := Generate(patterns)
	if strings.Count(script, "import cv2") != 1 {
		t.Errorf("expected cv2 import exactly once:\n%s", script)
	}
}
