package dataset

import (
	"errors"
	"math"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := New(1000, 42)
	b := New(1000, 42)
	a.Generate()
	b.Generate()

	for i := 0; i < a.rows; i++ {
		if a.A[i] != b.A[i] || a.B[i] != b.B[i] || a.C[i] != b.C[i] || a.D[i] != b.D[i] {
			t.Fatalf("row %d differs between two tables with the same seed", i)
		}
	}
}

func TestProcess_SummaryReproducible(t *testing.T) {
	a := New(1000, 42)
	a.Generate()
	sa, err := a.Process()
	if err != nil {
		t.Fatalf("Process() returned unexpected error: %v", err)
	}

	b := New(1000, 42)
	b.Generate()
	sb, err := b.Process()
	if err != nil {
		t.Fatalf("Process() returned unexpected error: %v", err)
	}

	// Bit-for-bit, not approximately.
	if sa.MeanA != sb.MeanA || sa.MeanB != sb.MeanB {
		t.Error("means differ between runs with the same seed")
	}
	if sa.StdA != sb.StdA || sa.StdB != sb.StdB {
		t.Error("standard deviations differ between runs with the same seed")
	}
	if sa.CorrAB != sb.CorrAB {
		t.Error("correlation differs between runs with the same seed")
	}
}

func TestGenerate_ColumnDomains(t *testing.T) {
	table := New(1000, 42)
	table.Generate()

	valid := map[string]bool{"X": true, "Y": true, "Z": true}
	for i := 0; i < table.rows; i++ {
		if !valid[table.C[i]] {
			t.Fatalf("C[%d] = %q, want one of X, Y, Z", i, table.C[i])
		}
		if table.D[i] < 0 || table.D[i] >= 100 {
			t.Fatalf("D[%d] = %d, want value in [0,100)", i, table.D[i])
		}
	}
}

func TestProcess_SummaryKeys(t *testing.T) {
	table := New(1000, 42)
	table.Generate()
	summary, err := table.Process()
	if err != nil {
		t.Fatalf("Process() returned unexpected error: %v", err)
	}

	if len(summary.Percentiles) != 3 {
		t.Errorf("Percentiles has %d keys, want 3", len(summary.Percentiles))
	}
	for _, p := range []int{25, 50, 75} {
		if _, ok := summary.Percentiles[p]; !ok {
			t.Errorf("Percentiles missing key %d", p)
		}
	}

	if len(summary.GroupMeans) != 3 {
		t.Errorf("GroupMeans has %d keys, want 3", len(summary.GroupMeans))
	}
	for _, c := range []string{"X", "Y", "Z"} {
		if _, ok := summary.GroupMeans[c]; !ok {
			t.Errorf("GroupMeans missing category %q", c)
		}
	}
}

func TestProcess_PercentilesOrdered(t *testing.T) {
	table := New(1000, 42)
	table.Generate()
	summary, err := table.Process()
	if err != nil {
		t.Fatalf("Process() returned unexpected error: %v", err)
	}

	p := summary.Percentiles
	if !(p[25] <= p[50] && p[50] <= p[75]) {
		t.Errorf("percentiles out of order: 25%%=%v 50%%=%v 75%%=%v", p[25], p[50], p[75])
	}
	if p[25] < 0 || p[75] >= 100 {
		t.Errorf("percentiles outside D's domain: %v", p)
	}
}

func TestProcess_MovingAverageWindow(t *testing.T) {
	table := New(1000, 42)
	table.Generate()
	if _, err := table.Process(); err != nil {
		t.Fatalf("Process() returned unexpected error: %v", err)
	}

	// The first windowSize-1 entries have no full window behind them.
	for i := 0; i < windowSize-1; i++ {
		if !math.IsNaN(table.G[i]) {
			t.Fatalf("G[%d] = %v, want NaN", i, table.G[i])
		}
	}

	// From index 19 onward, G is the mean of the preceding 20 E values.
	for _, i := range []int{windowSize - 1, 100, 500, 999} {
		var sum float64
		for j := i - windowSize + 1; j <= i; j++ {
			sum += table.E[j]
		}
		want := sum / windowSize
		if diff := math.Abs(table.G[i] - want); diff > 1e-12 {
			t.Errorf("G[%d] = %v, want %v (diff %v)", i, table.G[i], want, diff)
		}
	}
}

func TestProcess_NotGenerated(t *testing.T) {
	table := New(1000, 42)

	_, err := table.Process()
	if !errors.Is(err, ErrNotGenerated) {
		t.Errorf("Process() error = %v, want ErrNotGenerated", err)
	}
}

func TestProcess_DoesNotRegenerate(t *testing.T) {
	table := New(1000, 42)
	table.Generate()

	before := make([]float64, len(table.A))
	copy(before, table.A)

	first, err := table.Process()
	if err != nil {
		t.Fatalf("Process() returned unexpected error: %v", err)
	}
	second, err := table.Process()
	if err != nil {
		t.Fatalf("second Process() returned unexpected error: %v", err)
	}

	// Base rows untouched, summary recomputed to the same values.
	for i := range before {
		if table.A[i] != before[i] {
			t.Fatalf("A[%d] changed across Process calls", i)
		}
	}
	if first.MeanA != second.MeanA || first.CorrAB != second.CorrAB {
		t.Error("summary differs across Process calls on the same rows")
	}

	// Derived columns are rewritten each call.
	if len(table.E) != table.rows || len(table.F) != table.rows || len(table.G) != table.rows {
		t.Error("derived columns not recomputed on second Process call")
	}
}

func TestDeriveE_NoDivisionByZero(t *testing.T) {
	table := New(1000, 42)
	table.Generate()
	if _, err := table.Process(); err != nil {
		t.Fatalf("Process() returned unexpected error: %v", err)
	}

	for i, v := range table.E {
		if math.IsInf(v, 0) {
			t.Fatalf("E[%d] is infinite; divisor D+1 should never be zero", i)
		}
	}
}

func TestRollingMean_SmallInputs(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	out := rollingMean(x, 3)

	if len(out) != len(x) {
		t.Fatalf("rollingMean returned %d values, want %d", len(out), len(x))
	}
	for i := 0; i < 2; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("out[%d] = %v, want NaN", i, out[i])
		}
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		if out[i+2] != w {
			t.Errorf("out[%d] = %v, want %v", i+2, out[i+2], w)
		}
	}
}
