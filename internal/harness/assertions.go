package harness

import "fmt"

// Failure describes one failed assertion.
type Failure struct {
	Type    string
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Type, f.Message)
}

// Evaluate checks all assertions against a result and returns the
// failures. An empty slice means the scenario passed.
func Evaluate(result *Result, assertions []Assertion) []Failure {
	var failures []Failure

	for _, a := range assertions {
		switch a.Type {
		case AssertFinalValue:
			if result.Final.Value != a.Value {
				failures = append(failures, Failure{
					Type:    a.Type,
					Message: fmt.Sprintf("expected final value %d, got %d", a.Value, result.Final.Value),
				})
			}

		case AssertAtMin:
			if result.AtMin != a.Expect {
				failures = append(failures, Failure{
					Type:    a.Type,
					Message: fmt.Sprintf("expected at_min=%v, got %v", a.Expect, result.AtMin),
				})
			}

		case AssertAtMax:
			if result.AtMax != a.Expect {
				failures = append(failures, Failure{
					Type:    a.Type,
					Message: fmt.Sprintf("expected at_max=%v, got %v", a.Expect, result.AtMax),
				})
			}

		case AssertHistoryCount:
			if len(result.Trace) != a.Count {
				failures = append(failures, Failure{
					Type:    a.Type,
					Message: fmt.Sprintf("expected %d history entries, got %d", a.Count, len(result.Trace)),
				})
			}

		case AssertHistoryOrder:
			if msg, ok := checkOrder(result.Trace, a.Kinds); !ok {
				failures = append(failures, Failure{Type: a.Type, Message: msg})
			}

		default:
			failures = append(failures, Failure{
				Type:    a.Type,
				Message: "unknown assertion type",
			})
		}
	}

	return failures
}

// checkOrder verifies the trace's kinds match expected exactly, in order.
func checkOrder(trace []TraceEvent, expected []string) (string, bool) {
	if len(trace) != len(expected) {
		return fmt.Sprintf("expected %d entries in order check, got %d", len(expected), len(trace)), false
	}
	for i, kind := range expected {
		if trace[i].Kind != kind {
			return fmt.Sprintf("entry %d: expected kind %q, got %q", i, kind, trace[i].Kind), false
		}
	}
	return "", true
}
