package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"light", "dark", "system"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("auto")
	assert.ErrorContains(t, err, "unknown theme mode")
}

func TestSignal_Mode(t *testing.T) {
	assert.Equal(t, ModeDark, SignalDark.Mode())
	assert.Equal(t, ModeLight, SignalLight.Mode())
}

func TestState_Effective(t *testing.T) {
	tests := []struct {
		name   string
		stored Mode
		signal Signal
		want   Mode
	}{
		{"explicit light wins over dark signal", ModeLight, SignalDark, ModeLight},
		{"explicit dark wins over light signal", ModeDark, SignalLight, ModeDark},
		{"system follows dark signal", ModeSystem, SignalDark, ModeDark},
		{"system follows light signal", ModeSystem, SignalLight, ModeLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := State{Stored: tt.stored, Signal: tt.signal}
			assert.Equal(t, tt.want, st.Effective())
		})
	}
}
