package codegen

import (
	"fmt"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

func generateConfig(patterns []types.PatternMatch) string {
	lines := []string{"# Configuration"}

	base := findBase(patterns)
	if base != nil {
		checkpoint := pyString(base.Config["checkpoint"], "model.safetensors")
		lines = append(lines, fmt.Sprintf(`MODEL_PATH = "%s"`, checkpoint))

		pos := pyString(base.Config["positive_prompt"], "a beautiful landscape")
		neg := pyString(base.Config["negative_prompt"], "blurry, low quality")
		lines = append(lines,
			fmt.Sprintf(`PROMPT = """%s"""`, pos),
			fmt.Sprintf(`NEGATIVE_PROMPT = """%s"""`, neg),
			fmt.Sprintf("STEPS = %s", pyNumber(configValue(base.Config, "steps", 20.0))),
			fmt.Sprintf("CFG_SCALE = %s", pyNumber(configValue(base.Config, "cfg", 7.5))),
			fmt.Sprintf("SEED = %s", pyNumber(configValue(base.Config, "seed", 0.0))),
			fmt.Sprintf("WIDTH = %s", pyNumber(configValue(base.Config, "width", 512.0))),
			fmt.Sprintf("HEIGHT = %s", pyNumber(configValue(base.Config, "height", 512.0))),
		)

		if base.Type == types.PatternImg2Img {
			lines = append(lines, fmt.Sprintf("DENOISE = %s", pyNumber(configValue(base.Config, "denoise", 0.75))))
		}
	}

	if loras := byType(patterns, types.PatternLoRA); len(loras) > 0 {
		lines = append(lines, "", "# LoRA Configuration", "LORAS = [")
		for _, lora := range loras {
			name := pyString(lora.Config["name"], "lora.safetensors")
			strength := pyNumber(configValue(lora.Config, "strength_model", 1.0))
			lines = append(lines, fmt.Sprintf(`    ("%s", %s),`, name, strength))
		}
		lines = append(lines, "]")
	}

	if controlnets := byType(patterns, types.PatternControlNet); len(controlnets) > 0 {
		lines = append(lines, "", "# ControlNet Configuration")
		for i, cn := range controlnets {
			model := pyString(cn.Config["model"], "controlnet")
			strength := pyNumber(configValue(cn.Config, "strength", 1.0))
			lines = append(lines,
				fmt.Sprintf(`CONTROLNET_%d_MODEL = "%s"`, i, model),
				fmt.Sprintf("CONTROLNET_%d_STRENGTH = %s", i, strength),
			)
		}
	}

	return join(lines)
}
