package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a counter configuration,
// a flow of intents, and assertions over the outcome.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Counter configures the engine under test.
	Counter CounterSpec `yaml:"counter"`

	// Steps is the intent flow, dispatched in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state and the trace.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// CounterSpec mirrors the engine's construction options.
type CounterSpec struct {
	Initial     int64 `yaml:"initial"`
	Min         int64 `yaml:"min"`
	Max         int64 `yaml:"max"`
	Step        int64 `yaml:"step,omitempty"`
	ResetToZero bool  `yaml:"reset_to_zero,omitempty"`
}

// Step ops.
const (
	OpIncr  = "incr"
	OpDecr  = "decr"
	OpReset = "reset"
	OpSet   = "set"
)

// Step is one dispatched intent. Value is only meaningful for OpSet.
type Step struct {
	Op    string `yaml:"op"`
	Value int64  `yaml:"value,omitempty"`
}

// Assertion types.
const (
	// AssertFinalValue checks the final counter value.
	AssertFinalValue = "final_value"
	// AssertAtMin checks the final lower-bound predicate.
	AssertAtMin = "at_min"
	// AssertAtMax checks the final upper-bound predicate.
	AssertAtMax = "at_max"
	// AssertHistoryCount checks the number of history entries.
	AssertHistoryCount = "history_count"
	// AssertHistoryOrder checks the exact sequence of entry kinds.
	AssertHistoryOrder = "history_order"
)

// Assertion validates the final state or the trace.
type Assertion struct {
	Type string `yaml:"type"`

	// Value is the expected counter value (final_value).
	Value int64 `yaml:"value,omitempty"`

	// Expect is the expected predicate result (at_min, at_max).
	Expect bool `yaml:"expect,omitempty"`

	// Count is the expected number of entries (history_count).
	Count int `yaml:"count,omitempty"`

	// Kinds is the expected ordered sequence of entry kinds
	// (history_order).
	Kinds []string `yaml:"kinds,omitempty"`
}

// ParseScenario decodes and validates a YAML scenario. Unknown fields
// are rejected so scenario typos fail loudly.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return ParseScenario(data)
}

// Validate checks structural invariants before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario: name is required")
	}
	if s.Counter.Min > s.Counter.Max {
		return fmt.Errorf("scenario %s: counter min %d exceeds max %d", s.Name, s.Counter.Min, s.Counter.Max)
	}
	for i, step := range s.Steps {
		switch step.Op {
		case OpIncr, OpDecr, OpReset, OpSet:
		default:
			return fmt.Errorf("scenario %s: step %d has unknown op %q", s.Name, i, step.Op)
		}
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case AssertFinalValue, AssertAtMin, AssertAtMax, AssertHistoryCount, AssertHistoryOrder:
		default:
			return fmt.Errorf("scenario %s: assertion %d has unknown type %q", s.Name, i, a.Type)
		}
	}
	return nil
}
