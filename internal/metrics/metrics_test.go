package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.MarkPlaced()
	m.MarkPlaced()
	m.MarkRejected("occupied")
	m.GameFinished("won")
	m.Restarted()

	assert.InDelta(t, 2, testutil.ToFloat64(m.marksPlaced), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.marksRejected.WithLabelValues("occupied")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.marksRejected.WithLabelValues("invalid_coordinate")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.gamesFinished.WithLabelValues("won")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.restarts), 0)
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.MarkPlaced()
		m.MarkRejected("occupied")
		m.GameFinished("draw")
		m.Restarted()
	})
}
