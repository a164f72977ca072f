package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/tallyhq/tally/internal/canonical"
)

// Snapshot renders a result as the canonical map serialized into golden
// files.
func Snapshot(name string, result *Result) map[string]any {
	trace := make([]any, len(result.Trace))
	for i, ev := range result.Trace {
		trace[i] = map[string]any{
			"id":       ev.ID,
			"kind":     ev.Kind,
			"previous": ev.Previous,
			"new":      ev.New,
			"seq":      ev.Seq,
		}
	}
	return map[string]any{
		"scenario_name": name,
		"final_value":   result.Final.Value,
		"trace":         trace,
	}
}

// RunWithGolden executes a scenario, checks its assertions, and compares
// the trace against testdata/golden/{scenario.Name}.golden.
//
// Golden files serve as the source of truth for expected transition
// behavior. To regenerate after an intentional change:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return err
	}

	for _, f := range Evaluate(result, sc.Assertions) {
		t.Errorf("scenario %s assertion failed: %s", sc.Name, f)
	}

	traceJSON, err := canonical.Marshal(Snapshot(sc.Name, result))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, traceJSON)

	return nil
}
