package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.ObserveRun("bfs", 40, 9, time.Millisecond)
	p.ObserveRun("bfs", 12, 0, time.Millisecond)
	p.ObserveRun("dfs", 30, 15, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.runs.WithLabelValues("bfs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.runs.WithLabelValues("dfs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.unreached.WithLabelValues("bfs")))
	assert.Equal(t, 0.0, testutil.ToFloat64(p.unreached.WithLabelValues("dfs")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.visited))
	assert.Equal(t, 2, testutil.CollectAndCount(p.pathLength))
}
