// Package bench drives the explicit-versus-inferred binding comparison.
//
// Go compiles `var x T = f()` and `x := f()` to the same code, so the expected
// difference is zero and any measured gap is noise, ordering or GC effects.
package bench

import (
	"fmt"
	"io"
	"math"

	"github.com/appnet-org/declbench/pkg/entropy"
	"github.com/appnet-org/declbench/pkg/logging"
	"github.com/appnet-org/declbench/pkg/timing"
	"go.uber.org/zap"
)

// Phase names a timed loop. The value doubles as the report label.
type Phase string

const (
	PhaseExplicit Phase = "Explicit Declaration"
	PhaseImplicit Phase = "Implicit Declaration"
)

// Verdict classifies the comparison.
type Verdict int

const (
	VerdictTie Verdict = iota
	VerdictExplicitFaster
	VerdictImplicitFaster
)

func (v Verdict) String() string {
	switch v {
	case VerdictExplicitFaster:
		return "explicit faster"
	case VerdictImplicitFaster:
		return "implicit faster"
	default:
		return "same time"
	}
}

// Classify compares the two phase durations. Only bit-identical durations tie.
func Classify(explicitTime, implicitTime float64) Verdict {
	switch {
	case explicitTime < implicitTime:
		return VerdictExplicitFaster
	case implicitTime < explicitTime:
		return VerdictImplicitFaster
	default:
		return VerdictTie
	}
}

// Result is the outcome of one Run.
type Result struct {
	Workload   string
	Iterations int
	Order      []Phase

	ExplicitTime float64
	ImplicitTime float64
	// Diff is ExplicitTime - ImplicitTime.
	Diff float64

	ExplicitRetained int
	ImplicitRetained int

	Verdict Verdict
}

// Summary is the human-readable verdict line.
func (r Result) Summary() string {
	switch r.Verdict {
	case VerdictExplicitFaster:
		return fmt.Sprintf("Explicit declaration was faster by %v seconds", math.Abs(r.Diff))
	case VerdictImplicitFaster:
		return fmt.Sprintf("Implicit declaration was faster by %v seconds", math.Abs(r.Diff))
	default:
		return "Both declarations took the same time"
	}
}

// Run times the explicit and implicit loops of w and writes the report to out.
// Phases run explicit first unless cfg.Shuffle is set.
func Run(cfg *Config, w Workload, out io.Writer) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	order := []Phase{PhaseExplicit, PhaseImplicit}
	if cfg.Shuffle {
		if entropy.New(cfg.Seed).Perm(2)[0] == 1 {
			order[0], order[1] = order[1], order[0]
		}
	}

	res := Result{
		Workload:   w.Name(),
		Iterations: cfg.Iterations,
		Order:      order,
	}

	fmt.Fprintf(out, "Running with %d iterations...\n", cfg.Iterations)
	if cfg.Shuffle {
		fmt.Fprintf(out, "Phase order: %s, %s\n", order[0], order[1])
	}
	fmt.Fprintln(out)

	for _, phase := range order {
		logging.Debug("Starting phase",
			zap.String("workload", w.Name()),
			zap.String("phase", string(phase)),
			zap.Int("iterations", cfg.Iterations))

		switch phase {
		case PhaseExplicit:
			res.ExplicitTime = timing.MeasureLabeled(out, string(phase), func() { w.Explicit(cfg.Iterations) })
			res.ExplicitRetained = w.Retained()
		case PhaseImplicit:
			res.ImplicitTime = timing.MeasureLabeled(out, string(phase), func() { w.Implicit(cfg.Iterations) })
			res.ImplicitRetained = w.Retained()
		}
		w.Release()

		logging.Debug("Finished phase",
			zap.String("workload", w.Name()),
			zap.String("phase", string(phase)))
	}

	res.Diff = res.ExplicitTime - res.ImplicitTime
	res.Verdict = Classify(res.ExplicitTime, res.ImplicitTime)

	fmt.Fprintf(out, "\nDifference (explicit - implicit): %v seconds\n", res.Diff)
	fmt.Fprintln(out, res.Summary())

	logging.Info("Benchmark finished",
		zap.String("workload", res.Workload),
		zap.Int("iterations", res.Iterations),
		zap.Float64("explicitSeconds", res.ExplicitTime),
		zap.Float64("implicitSeconds", res.ImplicitTime),
		zap.Float64("diffSeconds", res.Diff),
		zap.Stringer("verdict", res.Verdict))

	return res, nil
}
