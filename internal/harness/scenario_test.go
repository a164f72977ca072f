package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenarioYAML = `
name: bounded_walk
description: walk the value around inside the bounds
counter:
  initial: 5
  min: 0
  max: 10
steps:
  - op: incr
  - op: incr
  - op: decr
  - op: set
    value: 9
assertions:
  - type: final_value
    value: 9
  - type: history_count
    count: 4
`

func TestParseScenario_Valid(t *testing.T) {
	sc, err := ParseScenario([]byte(validScenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "bounded_walk", sc.Name)
	assert.Equal(t, int64(5), sc.Counter.Initial)
	require.Len(t, sc.Steps, 4)
	assert.Equal(t, OpSet, sc.Steps[3].Op)
	assert.Equal(t, int64(9), sc.Steps[3].Value)
	require.Len(t, sc.Assertions, 2)
}

func TestParseScenario_RequiresName(t *testing.T) {
	_, err := ParseScenario([]byte(`
counter: {initial: 0, min: 0, max: 1}
steps: [{op: incr}]
`))
	assert.ErrorContains(t, err, "name is required")
}

func TestParseScenario_UnknownOp(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: bad
counter: {initial: 0, min: 0, max: 1}
steps: [{op: explode}]
`))
	assert.ErrorContains(t, err, `unknown op "explode"`)
}

func TestParseScenario_UnknownAssertionType(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: bad
counter: {initial: 0, min: 0, max: 1}
steps: [{op: incr}]
assertions: [{type: telepathy}]
`))
	assert.ErrorContains(t, err, `unknown type "telepathy"`)
}

func TestParseScenario_RejectsUnknownFields(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: bad
counter: {initial: 0, min: 0, max: 1}
steps: [{op: incr}]
surprise: true
`))
	assert.Error(t, err, "scenario typos fail loudly")
}

func TestParseScenario_InvertedBounds(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: bad
counter: {initial: 0, min: 5, max: 1}
steps: []
`))
	assert.ErrorContains(t, err, "exceeds max")
}

func TestLoadScenario_FromTestdata(t *testing.T) {
	sc, err := LoadScenario("testdata/bounded_walk.yaml")
	require.NoError(t, err)
	assert.Equal(t, "bounded_walk", sc.Name)
}
