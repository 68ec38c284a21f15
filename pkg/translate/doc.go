// Package translate is the public entry point for converting a ComfyUI
// workflow document into a Python/diffusers script: TranslateDocument and
// TranslateJSON for generation, AnalyzeJSON for structural inspection
// without generating code, and ValidateDocument as an optional pre-parse
// schema check.
//
// # Basic usage
//
//	code := translate.TranslateJSON(workflowBytes)
//	fmt.Println(code)
//
// # Observability
//
//	translate.Observers().Register(diagnostics.NewConsoleObserver())
//	provider, _ := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
//	translate.SetTelemetryProvider(provider)
package translate
