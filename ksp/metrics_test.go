package ksp

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
)

// histogramCount returns the sample count of the named histogram in reg.
func histogramCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("histogram %s not registered", name)

	return 0
}

func TestMetrics_ShortRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	// A 4-cycle has exactly two 0→2 paths.
	_, paths, err := Yen(g, "0", "2", 5, WithMetrics(m))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeShort)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeComplete)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.pathsAccepted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.spurSearches.WithLabelValues("found")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.spurSearches.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.candidatesPushed))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.edgesExcluded))
	assert.Equal(t, uint64(1), histogramCount(t, reg, "kpaths_yen_duration_seconds"))
}

func TestMetrics_Outcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", nil)
	_ = g.AddVertex("Z")

	_, _, err := Yen(g, "A", "B", 1, WithMetrics(m))
	require.NoError(t, err)
	_, _, err = Yen(g, "A", "A", 3, WithMetrics(m))
	require.NoError(t, err)
	_, _, err = Yen(g, "A", "Z", 2, WithMetrics(m))
	require.ErrorIs(t, err, ErrNoPath)
	_, _, err = Yen(g, "A", "B", 0, WithMetrics(m))
	require.ErrorIs(t, err, ErrBadK)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeComplete)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeNoPath)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.pathsAccepted))
	assert.Equal(t, uint64(4), histogramCount(t, reg, "kpaths_yen_duration_seconds"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeRun(outcomeComplete, 0)
		m.spurSearch(true)
		m.candidatePushed()
		m.excluded(3)
		m.pathAccepted()
	})
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}
