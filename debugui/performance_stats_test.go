package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/conefield/debugui"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)

	for i := 0; i < 4; i++ {
		ps.RecordFrame(0.016)
	}
	assert.InDelta(t, 16.0, float64(ps.AvgFrameTime()), 1e-3)
}

func TestPerformanceStatsHistoryWraps(t *testing.T) {
	ps := debugui.NewPerformanceStats(2)

	ps.RecordFrame(0.010)
	ps.RecordFrame(0.010)
	// A third sample overwrites the oldest slot.
	ps.RecordFrame(0.030)

	assert.InDelta(t, 20.0, float64(ps.AvgFrameTime()), 1e-3)
}

func TestFrameTimerDelta(t *testing.T) {
	timer := debugui.NewFrameTimer()
	time.Sleep(5 * time.Millisecond)

	delta := timer.DeltaTime()
	assert.Greater(t, delta, float32(0))
	assert.Less(t, delta, float32(1))
}
