// Package dataset generates a deterministic in-memory table and runs the
// statistics and simulated-load passes over it. Construction is explicitly
// two-phase: the caller runs Generate before Process, and Process never
// regenerates rows behind the caller's back.
package dataset

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNotGenerated is returned by Process when Generate has not run yet.
var ErrNotGenerated = errors.New("dataset: table not generated")

// Categories are the symbols column C draws from.
var Categories = []string{"X", "Y", "Z"}

const (
	// maxD is the exclusive upper bound of column D
	maxD = 100
	// loadRounds is how many times the derived-column pass repeats
	loadRounds = 3
	// windowSize is the moving-average window over column E
	windowSize = 20
)

// Table holds the generated columns plus the derived columns the load
// pass writes. A and B are standard-normal draws, C is a category symbol,
// D is a uniform integer in [0,100). E, F and G are recomputed in place
// by each load round.
type Table struct {
	rows int
	seed uint64

	A []float64
	B []float64
	C []string
	D []int

	E []float64
	F []float64
	G []float64

	generated bool
}

// New creates an empty table of the given row count, seeded for
// reproducible generation.
func New(rows int, seed uint64) *Table {
	return &Table{
		rows: rows,
		seed: seed,
	}
}

// Rows returns the configured row count.
func (t *Table) Rows() int {
	return t.rows
}

// Generate fills the base columns from the seeded source. Given the same
// row count and seed the columns are bit-for-bit identical across runs.
// Calling Generate again rebuilds the same columns from scratch.
func (t *Table) Generate() {
	slog.Info("generating dataset", "rows", t.rows, "seed", t.seed)
	start := time.Now()

	src := rand.NewSource(t.seed)
	rng := rand.New(src)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	t.A = make([]float64, t.rows)
	t.B = make([]float64, t.rows)
	t.C = make([]string, t.rows)
	t.D = make([]int, t.rows)

	for i := 0; i < t.rows; i++ {
		t.A[i] = normal.Rand()
	}
	for i := 0; i < t.rows; i++ {
		t.B[i] = normal.Rand()
	}
	for i := 0; i < t.rows; i++ {
		t.C[i] = Categories[rng.Intn(len(Categories))]
	}
	for i := 0; i < t.rows; i++ {
		t.D[i] = rng.Intn(maxD)
	}

	t.generated = true
	slog.Info("dataset generated", "elapsed", time.Since(start))
}

// Process computes the summary statistics and then runs the simulated
// CPU-load rounds over the derived columns. It requires a prior Generate
// call and never regenerates: calling Process twice recomputes the
// summary and the derived columns from the same base rows.
func (t *Table) Process() (Summary, error) {
	if !t.generated {
		return Summary{}, ErrNotGenerated
	}

	slog.Info("processing dataset", "rows", t.rows)
	start := time.Now()

	summary := t.summarize()
	t.runLoad(loadRounds)

	slog.Info("dataset processing completed", "elapsed", time.Since(start))
	return summary, nil
}
