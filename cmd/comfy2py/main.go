// Command comfy2py translates a ComfyUI workflow document into a
// Python/diffusers script.
//
// Usage:
//
//	comfy2py [--analyze] <path>
//
// <path> may be a raw workflow .json file, or a .png image with the
// workflow embedded in a tEXt/zTXt "prompt" or "workflow" metadata key (the
// way ComfyUI round-trips a generation's graph through the image it
// produced). A .webp path is accepted but read with the same PNG chunk
// reader, so a WebP file is rejected as not a PNG. With --analyze, comfy2py prints the document's graph shape and
// recognized patterns as JSON instead of generating code.
//
// Example:
//
//	comfy2py workflow.json > pipeline.py
//	comfy2py --analyze generated_image.png
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rawdiffusion/comfytranslate/pkg/pngmeta"
	"github.com/rawdiffusion/comfytranslate/pkg/translate"
)

func main() {
	analyze := flag.Bool("analyze", false, "print graph shape and recognized patterns as JSON instead of generating code")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: comfy2py [--analyze] <path>")
		os.Exit(1)
	}

	data, err := loadDocument(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "comfy2py: %v\n", err)
		os.Exit(1)
	}

	if *analyze {
		report, err := translate.AnalyzeJSON(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "comfy2py: %v\n", err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "comfy2py: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(translate.TranslateJSON(data))
}

// loadDocument reads path and returns the raw workflow JSON it contains. A
// .json file is returned as-is; a .png/.webp is scanned as a PNG for an
// embedded "prompt" or "workflow" metadata key, prompt taking priority on a
// tie. WebP containers are not parsed and fail the PNG signature check.
func loadDocument(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return data, nil
	case ".png", ".webp":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		text, err := pngmeta.Lookup(f, "prompt", "workflow")
		if err != nil {
			return nil, fmt.Errorf("extracting workflow from %s: %w", path, err)
		}
		return []byte(text), nil
	default:
		return nil, fmt.Errorf("%s: unrecognized file extension (expected .json, .png, or .webp)", path)
	}
}
