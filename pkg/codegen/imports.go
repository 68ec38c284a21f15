package codegen

import (
	"sort"
	"strings"

	"github.com/rawdiffusion/comfytranslate/pkg/types"

	"golang.org/x/text/cases"
)

var foldCase = cases.Fold()

func generateImports(patterns []types.PatternMatch) string {
	imports := map[string]bool{
		"import torch":          true,
		"from pathlib import Path": true,
	}

	base := findBase(patterns)
	if base != nil {
		switch {
		case base.Type == types.PatternSDXLRefiner:
			imports["from diffusers import StableDiffusionXLPipeline, StableDiffusionXLImg2ImgPipeline"] = true
		case isXLCheckpoint(base):
			imports["from diffusers import StableDiffusionXLPipeline"] = true
		default:
			imports["from diffusers import StableDiffusionPipeline"] = true
		}
	}

	controlnets := byType(patterns, types.PatternControlNet)
	if len(controlnets) > 0 {
		imports["from diffusers import ControlNetModel"] = true
		for _, cn := range controlnets {
			switch pyString(cn.Config["preprocessor"], "") {
			case "canny":
				imports["import cv2"] = true
				imports["import numpy as np"] = true
			case "depth":
				imports["from transformers import DPTForDepthEstimation, DPTImageProcessor"] = true
			case "openpose":
				imports["from controlnet_aux import OpenposeDetector"] = true
			}
		}
	}

	if len(byType(patterns, types.PatternIPAdapter)) > 0 {
		imports["from diffusers import IPAdapterMixin"] = true
	}

	needsImage := len(byType(patterns, types.PatternImg2Img)) > 0 ||
		len(controlnets) > 0 ||
		len(byType(patterns, types.PatternIPAdapter)) > 0 ||
		len(byType(patterns, types.PatternUpscale)) > 0
	if needsImage {
		imports["from PIL import Image"] = true
	}

	return join(sortImports(imports))
}

// isXLCheckpoint reports whether the base pattern's checkpoint filename
// contains "xl", matching case-insensitively via x/text's Unicode case
// folding rather than a plain strings.ToLower.
func isXLCheckpoint(base *types.PatternMatch) bool {
	checkpoint, _ := base.Config["checkpoint"].(string)
	return strings.Contains(foldCase.String(checkpoint), foldCase.String("xl"))
}

// sortImports orders import lines the way the original generator does:
// plain "import x" statements first, then "from x import y" statements,
// each group alphabetical — so torch/cv2/numpy imports always precede
// diffusers/transformers "from" imports regardless of detection order.
func sortImports(imports map[string]bool) []string {
	lines := make([]string, 0, len(imports))
	for line := range imports {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		iPlain := strings.HasPrefix(lines[i], "import ")
		jPlain := strings.HasPrefix(lines[j], "import ")
		if iPlain != jPlain {
			return iPlain
		}
		return lines[i] < lines[j]
	})
	return lines
}
