package widget

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/counter"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/internal/theme"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.MinValue = 0
	cfg.MaxValue = 10
	cfg.InitialValue = 3
	return cfg
}

func newTestWidget(t *testing.T, cfg config.Config, kv store.KV) *Widget {
	t.Helper()
	w := New(cfg, kv, theme.NewStaticSource(theme.SignalLight),
		WithReporter(store.NopReporter{}))
	t.Cleanup(w.Close)
	return w
}

func TestNew_StartsAtConfiguredInitial(t *testing.T) {
	w := newTestWidget(t, testConfig(), store.NewMemory())

	assert.Equal(t, int64(3), w.Counter.Value())
	assert.Equal(t, theme.ModeLight, w.Theme.Effective())
}

func TestNew_PersistsCounterTransitions(t *testing.T) {
	m := store.NewMemory()
	w := newTestWidget(t, testConfig(), m)

	w.Counter.Dispatch(counter.Increment())
	w.Counter.Dispatch(counter.Increment())

	stored := store.GetJSON(context.Background(), m, store.KeyCounterValue, int64(-1))
	assert.Equal(t, int64(5), stored)
}

func TestNew_ResumesFromStoredValue(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, store.SetJSON(ctx, m, store.KeyCounterValue, int64(8)))

	w := newTestWidget(t, testConfig(), m)

	assert.Equal(t, int64(8), w.Counter.Value(), "session resumes at the persisted value")

	st := w.Counter.Dispatch(counter.Reset())
	assert.Equal(t, int64(3), st.Value, "reset targets the configured initial, not the restored value")
}

func TestNew_RestoredValueClampedIntoBounds(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, store.SetJSON(ctx, m, store.KeyCounterValue, int64(999)))

	w := newTestWidget(t, testConfig(), m)

	assert.Equal(t, int64(10), w.Counter.Value())
}

func TestNew_PersistenceDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Persist = false
	m := store.NewMemory()
	require.NoError(t, store.SetJSON(ctx, m, store.KeyCounterValue, int64(8)))

	w := newTestWidget(t, cfg, m)

	assert.Equal(t, int64(3), w.Counter.Value(), "stored value ignored when persistence is off")

	w.Counter.Dispatch(counter.Increment())
	stored := store.GetJSON(ctx, m, store.KeyCounterValue, int64(-1))
	assert.Equal(t, int64(8), stored, "no writes when persistence is off")
}

func TestNew_PersistFailureDegradesToSessionState(t *testing.T) {
	var reported error
	m := store.NewMemory()
	m.SetErr = errors.New("medium offline")

	cfg := testConfig()
	w := New(cfg, m, theme.NewStaticSource(theme.SignalLight),
		WithReporter(store.FuncReporter(func(err error) { reported = err })))
	defer w.Close()

	st := w.Counter.Dispatch(counter.Increment())

	assert.Equal(t, int64(4), st.Value, "value still updates on screen")
	assert.Contains(t, st.Err, "medium offline")
	require.Error(t, reported)
}

func TestNew_ResetToZeroPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.ResetToZero = true
	w := newTestWidget(t, cfg, store.NewMemory())

	st := w.Counter.Dispatch(counter.Reset())
	assert.Equal(t, int64(0), st.Value)
}

func TestNew_DefaultThemeModeFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultMode = "dark"
	w := newTestWidget(t, cfg, store.NewMemory())

	assert.Equal(t, theme.ModeDark, w.Theme.State().Stored)
}

func TestWidget_ThemePersistsAcrossSessions(t *testing.T) {
	m := store.NewMemory()

	w := newTestWidget(t, testConfig(), m)
	w.Theme.SetMode(theme.ModeDark)
	w.Close()

	again := newTestWidget(t, testConfig(), m)
	assert.Equal(t, theme.ModeDark, again.Theme.State().Stored)
}
