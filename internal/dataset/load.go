package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// runLoad repeats the derived-column pass to soak CPU time. The results
// are written to E, F and G on the table but are not part of the summary;
// each round recomputes them in full from the base columns.
func (t *Table) runLoad(rounds int) {
	for r := 0; r < rounds; r++ {
		t.E = t.deriveE()
		t.F = t.deriveF()
		t.G = rollingMean(t.E, windowSize)
	}
}

// deriveE computes A·B/(D+1) elementwise. D is never negative, so the
// divisor is at least 1.
func (t *Table) deriveE() []float64 {
	e := make([]float64, t.rows)
	for i := 0; i < t.rows; i++ {
		e[i] = t.A[i] * t.B[i] / float64(t.D[i]+1)
	}
	return e
}

// deriveF computes sqrt(|A|) elementwise.
func (t *Table) deriveF() []float64 {
	f := make([]float64, t.rows)
	for i := 0; i < t.rows; i++ {
		f[i] = math.Sqrt(math.Abs(t.A[i]))
	}
	return f
}

// rollingMean computes a trailing moving average over x. Positions
// without a full window of preceding values are NaN.
func rollingMean(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Mean(x[i-window+1:i+1], nil)
	}
	return out
}
