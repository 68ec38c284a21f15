package codegen

import (
	"fmt"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

func generateMain(patterns []types.PatternMatch) string {
	base := findBase(patterns)
	if base == nil {
		return fmt.Sprintf("# %s", ErrNoBasePattern)
	}

	lines := []string{
		"# Setup",
		`device = "cuda" if torch.cuda.is_available() else "cpu"`,
		"dtype = torch.float16 if device == \"cuda\" else torch.float32",
		"",
	}

	lines = append(lines, generateModelLoading(patterns, base)...)
	lines = append(lines, "")

	if loras := byType(patterns, types.PatternLoRA); len(loras) > 0 {
		lines = append(lines, generateLoRALoading()...)
		lines = append(lines, "")
	}

	controlnets := byType(patterns, types.PatternControlNet)
	if len(controlnets) > 0 {
		lines = append(lines, generateControlNetSetup(controlnets)...)
		lines = append(lines, "")
	}

	ipadapters := byType(patterns, types.PatternIPAdapter)
	if len(ipadapters) > 0 {
		lines = append(lines, generateIPAdapterSetup()...)
		lines = append(lines, "")
	}

	lines = append(lines, generateInference(base, patterns)...)

	return join(lines)
}

func generateSave(patterns []types.PatternMatch) string {
	if findBase(patterns) == nil {
		return "# No image to save"
	}

	lines := []string{"# Save output"}
	if upscales := byType(patterns, types.PatternUpscale); len(upscales) > 0 {
		lines = append(lines, generateUpscaling(upscales)...)
		lines = append(lines, "")
	}
	lines = append(lines,
		`image.save("output.png")`,
		`print("Saved to output.png")`,
	)
	return join(lines)
}

// generateModelLoading emits the pipeline construction. The non-XL
// ControlNet branch inlines its StableDiffusionControlNetPipeline import
// directly into the body instead of hoisting it to the imports section,
// reproducing the original generator's asymmetry rather than correcting
// it.
func generateModelLoading(patterns []types.PatternMatch, base *types.PatternMatch) []string {
	lines := []string{"# Load model"}

	isXL := isXLCheckpoint(base) || base.Type == types.PatternSDXLRefiner
	controlnets := byType(patterns, types.PatternControlNet)

	if len(controlnets) > 0 {
		lines = append(lines, "# Load ControlNet")
		for i, cn := range controlnets {
			model := pyString(cn.Config["model"], "lllyasviel/control_v11p_sd15_canny")
			lines = append(lines, fmt.Sprintf(`controlnet_%d = ControlNetModel.from_pretrained("%s", torch_dtype=dtype)`, i, model))
		}

		lines = append(lines, "")
		if isXL {
			lines = append(lines, "pipe = StableDiffusionXLControlNetPipeline.from_single_file(")
		} else {
			lines = append(lines,
				"from diffusers import StableDiffusionControlNetPipeline",
				"pipe = StableDiffusionControlNetPipeline.from_single_file(",
			)
		}

		lines = append(lines, "    MODEL_PATH,")
		if len(controlnets) == 1 {
			lines = append(lines, "    controlnet=controlnet_0,")
		} else {
			lines = append(lines, fmt.Sprintf("    controlnet=[%s],", controlNetList(len(controlnets))))
		}
		lines = append(lines, "    torch_dtype=dtype,", ")")
	} else {
		if isXL {
			lines = append(lines, "pipe = StableDiffusionXLPipeline.from_single_file(")
		} else {
			lines = append(lines, "pipe = StableDiffusionPipeline.from_single_file(")
		}
		lines = append(lines, "    MODEL_PATH,", "    torch_dtype=dtype,", ")")
	}

	lines = append(lines, "pipe.to(device)", "", "# Memory optimization", "pipe.enable_model_cpu_offload()")
	return lines
}

func controlNetList(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("controlnet_%d", i)
	}
	return out
}

func generateLoRALoading() []string {
	return []string{
		"# Load LoRAs",
		"for lora_name, lora_weight in LORAS:",
		indent + "pipe.load_lora_weights(lora_name)",
		indent + "pipe.fuse_lora(lora_scale=lora_weight)",
	}
}

func generateControlNetSetup(controlnets []types.PatternMatch) []string {
	lines := []string{
		"# Prepare ControlNet inputs",
		`control_image = Image.open("input_image.png")  # Your control image`,
	}

	for i, cn := range controlnets {
		prep := pyString(cn.Config["preprocessor"], "canny")
		switch prep {
		case "canny":
			lines = append(lines,
				"",
				fmt.Sprintf("# Canny edge detection for ControlNet %d", i),
				"control_array = np.array(control_image)",
				"control_array = cv2.Canny(control_array, 100, 200)",
				"control_array = np.stack([control_array] * 3, axis=-1)",
				fmt.Sprintf("control_image_%d = Image.fromarray(control_array)", i),
			)
		case "depth":
			lines = append(lines,
				"",
				fmt.Sprintf("# Depth estimation for ControlNet %d", i),
				`depth_estimator = DPTForDepthEstimation.from_pretrained("Intel/dpt-large")`,
				`processor = DPTImageProcessor.from_pretrained("Intel/dpt-large")`,
				"inputs = processor(control_image, return_tensors='pt')",
				"with torch.no_grad():",
				indent+"depth = depth_estimator(**inputs).predicted_depth",
				fmt.Sprintf("control_image_%d = depth  # Process as needed", i),
			)
		case "openpose":
			lines = append(lines,
				"",
				fmt.Sprintf("# OpenPose detection for ControlNet %d", i),
				"openpose = OpenposeDetector.from_pretrained('lllyasviel/Annotators')",
				fmt.Sprintf("control_image_%d = openpose(control_image)", i),
			)
		default:
			lines = append(lines, fmt.Sprintf("control_image_%d = control_image  # Preprocessor: %s", i, prep))
		}
	}

	return lines
}

func generateIPAdapterSetup() []string {
	return []string{
		"# Setup IPAdapter",
		`pipe.load_ip_adapter("h94/IP-Adapter", subfolder="models", weight_name="ip-adapter_sd15.bin")`,
		`ip_image = Image.open("reference_image.png")  # Your reference image`,
	}
}

func generateInference(base *types.PatternMatch, patterns []types.PatternMatch) []string {
	lines := []string{
		"# Generate image",
		"generator = torch.Generator(device).manual_seed(SEED)",
		"",
		"image = pipe(",
		"    prompt=PROMPT,",
		"    negative_prompt=NEGATIVE_PROMPT,",
	}

	if base.Type != types.PatternImg2Img {
		lines = append(lines, "    width=WIDTH,", "    height=HEIGHT,")
	} else {
		lines = append(lines, `    image=Image.open("input.png"),`, "    strength=DENOISE,")
	}

	lines = append(lines, "    num_inference_steps=STEPS,", "    guidance_scale=CFG_SCALE,", "    generator=generator,")

	controlnets := byType(patterns, types.PatternControlNet)
	if len(controlnets) == 1 {
		lines = append(lines, "    image=control_image_0,", "    controlnet_conditioning_scale=CONTROLNET_0_STRENGTH,")
	} else if len(controlnets) > 1 {
		images, scales := "", ""
		for i := range controlnets {
			if i > 0 {
				images += ", "
				scales += ", "
			}
			images += fmt.Sprintf("control_image_%d", i)
			scales += fmt.Sprintf("CONTROLNET_%d_STRENGTH", i)
		}
		lines = append(lines, fmt.Sprintf("    image=[%s],", images), fmt.Sprintf("    controlnet_conditioning_scale=[%s],", scales))
	}

	if len(byType(patterns, types.PatternIPAdapter)) > 0 {
		lines = append(lines, "    ip_adapter_image=ip_image,")
	}

	lines = append(lines, ").images[0]")
	return lines
}

func generateUpscaling(upscales []types.PatternMatch) []string {
	lines := []string{"# Upscale"}

	for _, up := range upscales {
		if pyString(up.Config["method"], "") == "model" {
			model := pyString(up.Config["model"], "RealESRGAN_x4plus")
			lines = append(lines,
				fmt.Sprintf("# Using upscale model: %s", model),
				"from basicsr.archs.rrdbnet_arch import RRDBNet",
				"from realesrgan import RealESRGANer",
				"",
				"upsampler = RealESRGANer(",
				fmt.Sprintf(`    model_path="%s",`, model),
				"    scale=4,",
				")",
				"image, _ = upsampler.enhance(np.array(image))",
				"image = Image.fromarray(image)",
			)
		} else {
			scale := pyNumber(configValue(up.Config, "scale", 2.0))
			lines = append(lines,
				fmt.Sprintf("# Simple upscale by %sx", scale),
				fmt.Sprintf("new_size = (int(image.width * %s), int(image.height * %s))", scale, scale),
				"image = image.resize(new_size, Image.LANCZOS)",
			)
		}
	}

	return lines
}
