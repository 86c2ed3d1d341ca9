package art

import (
	"testing"

	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserveOperationsAndTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	tree := NewTreeWithMetrics(8, uint64Store{}.loadKey, m)

	for i := uint64(0); i < 64; i++ {
		require.Nil(t, tree.Insert(keyOf(i), i))
	}
	for i := uint64(0); i < 64; i++ {
		_, ok := tree.Lookup(keyOf(i))
		require.True(t, ok)
	}
	for i := uint64(0); i < 32; i++ {
		tree.Erase(keyOf(i))
	}

	require.Equal(t, float64(64), counterValue(t, m.inserts))
	require.Equal(t, float64(64), counterValue(t, m.lookups))
	require.Equal(t, float64(32), counterValue(t, m.erases))

	gotGrow := gatherCounterVec(t, m.nodeGrows)
	require.NotEmpty(t, gotGrow, "inserting 64 sequential single-byte-varying keys must grow the root at least once")
	require.Greater(t, gotGrow["node16"], float64(0))

	gotShrink := gatherCounterVec(t, m.nodeShrink)
	require.NotEmpty(t, gotShrink, "erasing half the keys back out must shrink the root at least once")
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var pb dto.Metric
	require.Nil(t, c.Write(&pb))
	return pb.GetCounter().GetValue()
}

func gatherCounterVec(t *testing.T, cv *prometheus.CounterVec) map[string]float64 {
	t.Helper()
	ch := make(chan prometheus.Metric)
	result := make(map[string]float64)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for m := range ch {
			var pb dto.Metric
			require.Nil(t, m.Write(&pb))
			label := ""
			for _, lp := range pb.GetLabel() {
				if lp.GetName() == "to" {
					label = lp.GetValue()
				}
			}
			result[label] = pb.GetCounter().GetValue()
		}
	}()
	cv.Collect(ch)
	close(ch)
	<-done
	return result
}
