// Package timing measures the wall-clock time of a block of work.
package timing

import (
	"fmt"
	"io"
	"time"
)

// Measure runs block once on the calling goroutine and returns the elapsed
// time in seconds. A panic in block propagates unchanged.
func Measure(block func()) float64 {
	return MeasureDuration(block).Seconds()
}

// MeasureDuration is Measure returning a time.Duration.
func MeasureDuration(block func()) time.Duration {
	start := time.Now()
	block()
	return time.Since(start)
}

// MeasureLabeled is Measure that also writes "<label>: <elapsed> seconds" to w
// once the block returns.
func MeasureLabeled(w io.Writer, label string, block func()) float64 {
	elapsed := Measure(block)
	fmt.Fprintf(w, "%s: %v seconds\n", label, elapsed)
	return elapsed
}
