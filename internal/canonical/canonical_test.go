package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_SortsObjectKeys(t *testing.T) {
	data, err := Marshal(map[string]any{
		"zeta":  int64(1),
		"alpha": "x",
		"mid":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"x","mid":true,"zeta":1}`, string(data))
}

func TestMarshal_NestedTrace(t *testing.T) {
	data, err := Marshal(map[string]any{
		"scenario_name": "bounded",
		"trace": []any{
			map[string]any{"kind": "increment", "new": int64(1), "previous": int64(0), "seq": int64(1)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario_name":"bounded","trace":[{"kind":"increment","new":1,"previous":0,"seq":1}]}`,
		string(data))
}

func TestMarshal_Deterministic(t *testing.T) {
	m := map[string]any{"b": int64(2), "a": int64(1), "c": []any{"x", "y"}}

	first, err := Marshal(m)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	data, err := Marshal("a < b & c > d")
	require.NoError(t, err)
	assert.Equal(t, `"a < b & c > d"`, string(data))
}

func TestMarshal_NFCNormalization(t *testing.T) {
	// "e" + combining acute accent normalizes to the precomposed form.
	decomposed := "é"
	data, err := Marshal(decomposed)
	require.NoError(t, err)
	assert.Equal(t, "\"é\"", string(data))
}

func TestMarshal_RejectsFloats(t *testing.T) {
	_, err := Marshal(map[string]any{"v": 1.5})
	assert.ErrorContains(t, err, "floats are forbidden")
}

func TestMarshal_RejectsNull(t *testing.T) {
	_, err := Marshal(nil)
	assert.ErrorContains(t, err, "null is forbidden")
}
