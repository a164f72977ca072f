package harness

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tallyhq/tally/internal/counter"
	"github.com/tallyhq/tally/internal/testutil"
)

// TraceEvent is one history entry in serializable form. Wall-clock
// timestamps are deliberately excluded: ordering uses seq only, so
// traces stay byte-stable.
type TraceEvent struct {
	ID       string
	Kind     string
	Previous int64
	New      int64
	Seq      int64
}

// Result captures a scenario execution.
type Result struct {
	Final *counter.State
	AtMin bool
	AtMax bool
	Trace []TraceEvent
}

// Run executes a scenario against a real engine with deterministic
// capabilities: entry IDs h-001, h-002, … and a fixed-epoch time source.
func Run(sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	step := sc.Counter.Step
	if step == 0 {
		step = 1
	}
	opts := []counter.Option{
		counter.WithBounds(sc.Counter.Min, sc.Counter.Max),
		counter.WithInitialValue(sc.Counter.Initial),
		counter.WithStep(step),
		counter.WithIDGenerator(testutil.NewIDSequence("h", 0)),
		counter.WithTimeSource(testutil.NewStubTime(time0())),
		counter.WithLogger(discardLogger()),
	}
	if sc.Counter.ResetToZero {
		opts = append(opts, counter.WithResetToZero())
	}
	eng := counter.New(opts...)

	for i, st := range sc.Steps {
		var action counter.Action
		switch st.Op {
		case OpIncr:
			action = counter.Increment()
		case OpDecr:
			action = counter.Decrement()
		case OpReset:
			action = counter.Reset()
		case OpSet:
			action = counter.SetValue(st.Value)
		default:
			return nil, fmt.Errorf("scenario %s: step %d has unknown op %q", sc.Name, i, st.Op)
		}
		eng.Dispatch(action)
	}

	final := eng.Current()
	trace := make([]TraceEvent, len(final.History))
	for i, entry := range final.History {
		trace[i] = TraceEvent{
			ID:       entry.ID,
			Kind:     entry.Kind.String(),
			Previous: entry.Previous,
			New:      entry.New,
			Seq:      entry.Seq,
		}
	}

	return &Result{
		Final: final,
		AtMin: eng.AtMin(),
		AtMax: eng.AtMax(),
		Trace: trace,
	}, nil
}

// time0 is the fixed epoch scenario timestamps start from.
func time0() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
