package codegen

import (
	"fmt"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

func generateHeader(patterns []types.PatternMatch) string {
	lines := []string{
		"# RawDiffusion Workflow",
		"# Converted from ComfyUI",
		"#",
	}

	base := findBase(patterns)
	if base != nil {
		lines = append(lines, fmt.Sprintf("# Type: %s", base.Type))
		if checkpoint, ok := base.Config["checkpoint"].(string); ok && checkpoint != "" {
			lines = append(lines, fmt.Sprintf("# Model: %s", checkpoint))
		}
	}

	var modifiers []types.PatternMatch
	for _, p := range patterns {
		switch p.Type {
		case types.PatternControlNet, types.PatternIPAdapter, types.PatternLoRA, types.PatternUpscale:
			modifiers = append(modifiers, p)
		}
	}

	if len(modifiers) > 0 {
		lines = append(lines, "#", "# Modifiers:")
		for _, m := range modifiers {
			switch m.Type {
			case types.PatternControlNet:
				lines = append(lines, fmt.Sprintf("#   - ControlNet (%s)", pyString(m.Config["preprocessor"], "unknown")))
			case types.PatternIPAdapter:
				lines = append(lines, "#   - IPAdapter")
			case types.PatternLoRA:
				lines = append(lines, fmt.Sprintf("#   - LoRA: %s", pyString(m.Config["name"], "unknown")))
			case types.PatternUpscale:
				lines = append(lines, fmt.Sprintf("#   - Upscale (%s)", pyString(m.Config["method"], "unknown")))
			}
		}
	}

	return join(lines)
}
