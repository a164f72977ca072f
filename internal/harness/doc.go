// Package harness provides a conformance testing framework for the
// counter engine.
//
// Scenarios are YAML documents declaring a counter configuration, a flow
// of intents (incr, decr, set, reset), and assertions over the final
// state and the history trace. The harness runs each scenario against
// the REAL engine with deterministic capabilities substituted: a stub
// time source, a fixed ID sequence, and the engine's own logical clock
// starting at zero. The same scenario therefore produces a byte-identical
// trace on every run.
//
// Traces serialize through internal/canonical and compare against golden
// files in testdata/golden via goldie. Golden files are the source of
// truth for expected transition behavior; regenerate them with:
//
//	go test ./internal/harness -update
package harness
