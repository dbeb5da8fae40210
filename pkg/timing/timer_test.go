package timing

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeasureSleep(t *testing.T) {
	const d = 50 * time.Millisecond
	elapsed := Measure(func() { time.Sleep(d) })

	require.GreaterOrEqual(t, elapsed, d.Seconds())
	require.InDelta(t, d.Seconds(), elapsed, (10 * time.Millisecond).Seconds())
}

func TestMeasureNonNegative(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, Measure(func() {}), 0.0)
	}
}

func TestMeasureRunsBlockOnce(t *testing.T) {
	calls := 0
	MeasureDuration(func() { calls++ })
	require.Equal(t, 1, calls)
}

func TestMeasureLabeled(t *testing.T) {
	var buf bytes.Buffer
	elapsed := MeasureLabeled(&buf, "Explicit Declaration", func() { time.Sleep(time.Millisecond) })

	require.Greater(t, elapsed, 0.0)
	require.Regexp(t, regexp.MustCompile(`^Explicit Declaration: \S+ seconds\n$`), buf.String())
}

func TestMeasureLabeledPanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	require.PanicsWithValue(t, "boom", func() {
		MeasureLabeled(&buf, "failing", func() { panic("boom") })
	})
	require.Empty(t, buf.String(), "no duration is reported for a failed block")
}
