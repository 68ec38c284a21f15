// Package diagnostics implements the observer pattern for the translation
// pipeline: parse, pattern recognition, and code generation each emit
// Events that registered Observers can react to without coupling to
// pkg/translate.
//
// # Built-in observers
//
//	mgr := diagnostics.NewManager()
//	mgr.Register(diagnostics.NewConsoleObserver())
//	mgr.Notify(ctx, diagnostics.Event{
//	    Type:      diagnostics.EventDanglingLinkDropped,
//	    Status:    diagnostics.StatusCompleted,
//	    RequestID: requestID,
//	    NodeID:    "7",
//	})
//
// Notify fans an event out to every registered observer concurrently and
// recovers a panicking observer so it can't affect the others or the
// translation in progress.
package diagnostics
