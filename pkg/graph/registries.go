package graph

import "github.com/rawdiffusion/comfytranslate/pkg/types"

// loaderNodes, outputNodes and the rest are the built-in class-type
// registries used to categorize a node by its class_type. They mirror the
// original translator's fixed tables; unrecognized class types fall back
// to CategoryOther rather than blocking translation.
var loaderNodes = map[string]bool{
	"CheckpointLoaderSimple": true, "CheckpointLoader": true,
	"VAELoader": true, "LoraLoader": true, "LoraLoaderModelOnly": true,
	"ControlNetLoader": true, "CLIPLoader": true, "UNETLoader": true,
	"CLIPVisionLoader": true, "StyleModelLoader": true,
	"UpscaleModelLoader": true, "GLIGENLoader": true,
	"unCLIPCheckpointLoader": true, "DiffusersLoader": true,
	"IPAdapterModelLoader": true, "IPAdapterUnifiedLoader": true,
	"AnimateDiffLoaderWithContext": true,
}

var outputNodes = map[string]bool{
	"SaveImage": true, "PreviewImage": true,
	"SaveLatent": true, "PreviewLatent": true,
	"VHS_VideoCombine": true, "SaveAnimatedWEBP": true, "SaveAnimatedPNG": true,
}

var samplerNodes = map[string]bool{
	"KSampler": true, "KSamplerAdvanced": true,
	"SamplerCustom": true, "SamplerCustomAdvanced": true,
}

var conditioningNodes = map[string]bool{
	"CLIPTextEncode": true, "CLIPTextEncodeSDXL": true,
	"ConditioningCombine": true, "ConditioningConcat": true,
	"ConditioningAverage": true, "ConditioningSetArea": true,
	"ConditioningSetMask": true, "ConditioningZeroOut": true,
	"ControlNetApply": true, "ControlNetApplyAdvanced": true,
	"unCLIPConditioning": true, "GLIGENTextBoxApply": true,
	"IPAdapterApply": true, "IPAdapterAdvanced": true,
}

var latentNodes = map[string]bool{
	"EmptyLatentImage": true, "VAEEncode": true, "VAEEncodeForInpaint": true,
	"LatentUpscale": true, "LatentUpscaleBy": true,
	"LatentComposite": true, "LatentBlend": true,
	"SetLatentNoiseMask": true,
}

var imageNodes = map[string]bool{
	"LoadImage": true, "LoadImageMask": true,
	"VAEDecode": true, "VAEDecodeTiled": true,
	"ImageScale": true, "ImageScaleBy": true,
	"ImageUpscaleWithModel": true,
	"ImageInvert": true, "ImageBatch": true,
}

// Classifier extends class-type categorization beyond the built-in
// registries without recompiling them; pkg/classify implements it with
// expr-lang rules. Through this interface a rule sees only the node's
// class_type; its inputs are not passed.
type Classifier interface {
	Categorize(classType string) (types.NodeCategory, bool)
}

// Categorize returns the built-in category for classType, consulting extra
// in registration order before falling back to CategoryOther. extra is
// typically a single *classify.Registry, or nil.
func Categorize(classType string, extra Classifier) types.NodeCategory {
	switch {
	case loaderNodes[classType]:
		return types.CategoryLoader
	case outputNodes[classType]:
		return types.CategoryOutput
	case samplerNodes[classType]:
		return types.CategorySampler
	case conditioningNodes[classType]:
		return types.CategoryConditioning
	case latentNodes[classType]:
		return types.CategoryLatent
	case imageNodes[classType]:
		return types.CategoryImage
	}
	if extra != nil {
		if cat, ok := extra.Categorize(classType); ok {
			return cat
		}
	}
	return types.CategoryOther
}

// IsOutputClass reports whether classType is a registered output/save node,
// used by graph analysis to mark terminal nodes independent of connectivity.
func IsOutputClass(classType string) bool {
	return outputNodes[classType]
}
