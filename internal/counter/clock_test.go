package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_Next_Increments(t *testing.T) {
	c := NewClock()

	assert.Equal(t, int64(0), c.Current())
	assert.Equal(t, int64(1), c.Next())
	assert.Equal(t, int64(2), c.Next())
	assert.Equal(t, int64(2), c.Current())
}

func TestClock_NewClockAt_Resumes(t *testing.T) {
	c := NewClockAt(100)

	assert.Equal(t, int64(100), c.Current())
	assert.Equal(t, int64(101), c.Next())
}

func TestUUIDv7Generator_Unique(t *testing.T) {
	g := UUIDv7Generator{}

	a := g.Generate()
	b := g.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "increment", KindIncrement.String())
	assert.Equal(t, "decrement", KindDecrement.String())
	assert.Equal(t, "reset", KindReset.String())
	assert.Equal(t, "set_value", KindSetValue.String())
	assert.Equal(t, "unknown(99)", ActionKind(99).String())
}
