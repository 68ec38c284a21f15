package classify

import (
	"testing"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

func TestRegistry_CategorizeFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Rule{Expression: `class_type == "CustomSampler"`, Category: types.CategorySampler}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(Rule{Expression: `class_type == "CustomSampler"`, Category: types.CategoryOther}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cat, ok := r.Categorize("CustomSampler")
	if !ok || cat != types.CategorySampler {
		t.Fatalf("Categorize = (%v, %v), want (sampler, true)", cat, ok)
	}
}

func TestRegistry_NoMatch(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Categorize("Anything"); ok {
		t.Fatalf("expected no match on empty registry")
	}
}

func TestRegistry_RejectsInvalidExpression(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Rule{Expression: "not ( valid", Category: types.CategoryOther}); err == nil {
		t.Fatalf("expected compile error for malformed expression")
	}
}

func TestRegistry_CategorizeNodeInspectsInputs(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Rule{
		Expression: `inputs.ckpt_name contains "xl"`,
		Category:   types.CategoryLoader,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	cat, ok := r.CategorizeNode("CustomCheckpointLoader", map[string]any{"ckpt_name": "model_xl.safetensors"})
	if !ok || cat != types.CategoryLoader {
		t.Fatalf("CategorizeNode = (%v, %v), want (loader, true)", cat, ok)
	}
}
