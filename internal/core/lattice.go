package core

import (
	"errors"
	"fmt"

	rng "ising-ca/pkg/core"
)

// ErrEmptyLattice reports a lattice constructed with zero rows or columns.
var ErrEmptyLattice = errors.New("lattice must have at least one row and one column")

// Point addresses a single lattice site.
type Point struct {
	Row, Col int
}

// Lattice stores a 2D grid of spins (+1/-1) in row-major order with toroidal
// boundaries.
type Lattice struct {
	rows, cols int
	data       []int8
}

// NewLattice allocates a lattice with every spin up.
func NewLattice(rows, cols int) (*Lattice, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrEmptyLattice)
	}
	l := &Lattice{rows: rows, cols: cols, data: make([]int8, rows*cols)}
	l.Fill(1)
	return l, nil
}

// Rows returns the row count.
func (l *Lattice) Rows() int { return l.rows }

// Cols returns the column count.
func (l *Lattice) Cols() int { return l.cols }

// Size returns the lattice dimensions.
func (l *Lattice) Size() Size { return Size{Rows: l.rows, Cols: l.cols} }

// Spins exposes the backing slice. Callers must treat it as read-only.
func (l *Lattice) Spins() []int8 { return l.data }

// Index returns the linear slice index for (row, col).
func (l *Lattice) Index(row, col int) int { return row*l.cols + col }

// Get returns the spin at (row, col).
func (l *Lattice) Get(row, col int) int8 { return l.data[row*l.cols+col] }

// At is Get under the View contract.
func (l *Lattice) At(row, col int) int8 { return l.data[row*l.cols+col] }

// Set stores a spin at (row, col).
func (l *Lattice) Set(row, col int, v int8) { l.data[row*l.cols+col] = v }

// Flip negates the spin at (row, col).
func (l *Lattice) Flip(row, col int) {
	idx := row*l.cols + col
	l.data[idx] = -l.data[idx]
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (l *Lattice) Wrap(row, col int) (int, int) {
	row = (row%l.rows + l.rows) % l.rows
	col = (col%l.cols + l.cols) % l.cols
	return row, col
}

// Neighbors returns the four toroidal neighbours of (row, col): down, up,
// right, left.
func (l *Lattice) Neighbors(row, col int) [4]Point {
	R, C := l.rows, l.cols
	return [4]Point{
		{Row: (row + 1) % R, Col: col},
		{Row: (row - 1 + R) % R, Col: col},
		{Row: row, Col: (col + 1) % C},
		{Row: row, Col: (col - 1 + C) % C},
	}
}

// NeighborSum returns the sum of the four toroidal neighbours' spins.
func (l *Lattice) NeighborSum(row, col int) int {
	R, C := l.rows, l.cols
	return int(l.Get((row+1)%R, col)) +
		int(l.Get((row-1+R)%R, col)) +
		int(l.Get(row, (col+1)%C)) +
		int(l.Get(row, (col-1+C)%C))
}

// NetMagnetization returns the mean spin value in [-1, 1].
func (l *Lattice) NetMagnetization() float64 {
	sum := 0
	for _, s := range l.data {
		sum += int(s)
	}
	return float64(sum) / float64(len(l.data))
}

// Energy returns the energy per site of the nearest-neighbour ferromagnetic
// Hamiltonian with unit coupling. Each bond is counted once.
func (l *Lattice) Energy() float64 {
	R, C := l.rows, l.cols
	sum := 0
	for r := 0; r < R; r++ {
		for c := 0; c < C; c++ {
			s := int(l.Get(r, c))
			sum += s * (int(l.Get((r+1)%R, c)) + int(l.Get(r, (c+1)%C)))
		}
	}
	return -float64(sum) / float64(len(l.data))
}

// InitRandom sets each spin up with probability fraction, down otherwise.
// The draws come from a generator dedicated to seed, so the result does not
// depend on any other stream.
func (l *Lattice) InitRandom(fraction float64, seed int64) {
	r := rng.NewRNG(seed)
	for i := range l.data {
		if r.Bernoulli(fraction) {
			l.data[i] = 1
			continue
		}
		l.data[i] = -1
	}
}

// Fill sets every spin to v.
func (l *Lattice) Fill(v int8) {
	for i := range l.data {
		l.data[i] = v
	}
}

// CopyFrom replaces the spins with the provided row-major values.
func (l *Lattice) CopyFrom(spins []int8) error {
	if len(spins) != len(l.data) {
		return fmt.Errorf("copy %d spins into %dx%d lattice", len(spins), l.rows, l.cols)
	}
	for i, s := range spins {
		if s != 1 && s != -1 {
			return fmt.Errorf("spin %d at index %d is not +1 or -1", s, i)
		}
	}
	copy(l.data, spins)
	return nil
}
