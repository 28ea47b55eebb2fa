package metrics

import "testing"

import "github.com/prometheus/client_golang/prometheus"
import "github.com/prometheus/client_golang/prometheus/testutil"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/tsetlin/tsetlin"

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe(tsetlin.Stats{}, tsetlin.Stats{Fits: 10, TypeI: 4, TypeII: 3, Resets: 1})
	m.Observe(tsetlin.Stats{Fits: 10, TypeI: 4, TypeII: 3, Resets: 1}, tsetlin.Stats{Fits: 15, TypeI: 9, TypeII: 3, Resets: 1})

	assert.Equal(t, 15.0, testutil.ToFloat64(m.Fits))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.Feedback.WithLabelValues("I")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Feedback.WithLabelValues("II")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resets))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestMachineStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	tm := tsetlin.New(10, 10, 4, 5, 2, tsetlin.WithSeed(1))
	before := tm.Stats()
	for i := 0; i < 20; i++ {
		tm.Fit([]bool{i%2 == 0, true}, i%2 == 0)
	}
	after := tm.Stats()
	m.Observe(before, after)
	assert.Equal(t, 20.0, testutil.ToFloat64(m.Fits))
	assert.Equal(t, float64(after.TypeI), testutil.ToFloat64(m.Feedback.WithLabelValues("I")))
}

func TestDoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
