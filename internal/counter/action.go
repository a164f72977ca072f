package counter

import "fmt"

// ActionKind identifies a counter transition type.
type ActionKind int

const (
	// KindIncrement moves the value up by one step, clamped at the maximum.
	KindIncrement ActionKind = iota + 1
	// KindDecrement moves the value down by one step, clamped at the minimum.
	KindDecrement
	// KindReset returns the value to the reset anchor.
	KindReset
	// KindSetValue replaces the value with a caller-supplied target, clamped.
	KindSetValue
)

// String returns the canonical lower-case name used in history traces
// and CLI output.
func (k ActionKind) String() string {
	switch k {
	case KindIncrement:
		return "increment"
	case KindDecrement:
		return "decrement"
	case KindReset:
		return "reset"
	case KindSetValue:
		return "set_value"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Action is a counter intent. Value is only meaningful for KindSetValue.
type Action struct {
	Kind  ActionKind
	Value int64
}

// Increment returns the increment action.
func Increment() Action { return Action{Kind: KindIncrement} }

// Decrement returns the decrement action.
func Decrement() Action { return Action{Kind: KindDecrement} }

// Reset returns the reset action.
func Reset() Action { return Action{Kind: KindReset} }

// SetValue returns an action that replaces the value with v (clamped).
func SetValue(v int64) Action { return Action{Kind: KindSetValue, Value: v} }
