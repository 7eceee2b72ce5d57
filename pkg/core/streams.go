package core

import "math/rand/v2"

// Stream identifiers used as the second PCG seed word. Distinct values give
// statistically independent sequences for the same seed.
const (
	rowStream uint64 = iota + 1
	colStream
	probStream
)

// Streams is the set of three independently seeded uniform generators used by
// the lattice updaters: a row index stream, a column index stream and a
// probability stream. Drawing the coordinate and the acceptance value from
// separate generators keeps them uncorrelated.
//
// Streams is not safe for concurrent use.
type Streams struct {
	rows, cols int
	seed       int64

	row  *rand.Rand
	col  *rand.Rand
	prob *rand.Rand
}

// NewStreams returns streams drawing rows in [0, rows) and columns in
// [0, cols). rows and cols must be positive.
func NewStreams(rows, cols int, seed int64) *Streams {
	s := &Streams{rows: rows, cols: cols}
	s.Reseed(seed)
	return s
}

// Reseed restarts all three streams from seed, reproducing the trajectory of
// a fresh Streams built with the same seed.
func (s *Streams) Reseed(seed int64) {
	s.seed = seed
	s.row = rand.New(rand.NewPCG(uint64(seed), rowStream))
	s.col = rand.New(rand.NewPCG(uint64(seed), colStream))
	s.prob = rand.New(rand.NewPCG(uint64(seed), probStream))
}

// Seed returns the seed the streams were last started from.
func (s *Streams) Seed() int64 { return s.seed }

// NextRow returns a uniform row index.
func (s *Streams) NextRow() int { return s.row.IntN(s.rows) }

// NextCol returns a uniform column index.
func (s *Streams) NextCol() int { return s.col.IntN(s.cols) }

// NextProbability returns a uniform value in [0, 1).
func (s *Streams) NextProbability() float64 { return s.prob.Float64() }

// Pick returns a uniform index in [0, n) drawn from the probability stream.
// The range is taken per call so callers with a changing set size get a
// fresh distribution each time.
func (s *Streams) Pick(n int) int { return s.prob.IntN(n) }
