package dataset

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ColumnMeans holds the per-category means of the numeric columns.
type ColumnMeans struct {
	A float64
	B float64
	D float64
}

// Summary is the read-only statistical view of a table. Standard
// deviations are sample deviations and the correlation is Pearson's.
type Summary struct {
	MeanA  float64
	MeanB  float64
	StdA   float64
	StdB   float64
	CorrAB float64

	// GroupMeans maps each category symbol to the means of A, B and D
	// over the rows carrying that symbol.
	GroupMeans map[string]ColumnMeans

	// Percentiles maps 25, 50 and 75 to column D's value at that
	// quantile, linearly interpolated.
	Percentiles map[int]float64
}

func (t *Table) summarize() Summary {
	s := Summary{
		MeanA:       stat.Mean(t.A, nil),
		MeanB:       stat.Mean(t.B, nil),
		StdA:        stat.StdDev(t.A, nil),
		StdB:        stat.StdDev(t.B, nil),
		CorrAB:      stat.Correlation(t.A, t.B, nil),
		GroupMeans:  t.groupMeans(),
		Percentiles: t.percentilesOfD(25, 50, 75),
	}
	return s
}

// groupMeans averages A, B and D per category symbol in C.
func (t *Table) groupMeans() map[string]ColumnMeans {
	sums := make(map[string]*ColumnMeans, len(Categories))
	counts := make(map[string]int, len(Categories))

	for i := 0; i < t.rows; i++ {
		c := t.C[i]
		if sums[c] == nil {
			sums[c] = &ColumnMeans{}
		}
		sums[c].A += t.A[i]
		sums[c].B += t.B[i]
		sums[c].D += float64(t.D[i])
		counts[c]++
	}

	means := make(map[string]ColumnMeans, len(sums))
	for c, sum := range sums {
		n := float64(counts[c])
		means[c] = ColumnMeans{
			A: sum.A / n,
			B: sum.B / n,
			D: sum.D / n,
		}
	}
	return means
}

// percentilesOfD computes the requested percentiles of column D with
// linear interpolation between sample points.
func (t *Table) percentilesOfD(ps ...int) map[int]float64 {
	d := make([]float64, t.rows)
	for i, v := range t.D {
		d[i] = float64(v)
	}
	sort.Float64s(d)

	out := make(map[int]float64, len(ps))
	for _, p := range ps {
		out[p] = stat.Quantile(float64(p)/100, stat.LinInterp, d, nil)
	}
	return out
}
