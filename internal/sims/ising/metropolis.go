package ising

import "math"

// Metropolis performs exactly n single-spin trial flips and returns the
// number accepted. A trial at (row, col) with spin s costs
// dE = 2 s * neighbourSum and is accepted iff u < exp(-beta dE); moves with
// dE <= 0 always pass because u < 1 <= exp(-beta dE).
func (w *World) Metropolis(n int) int {
	lat := w.lattice
	accepted := 0
	for i := 0; i < n; i++ {
		row := w.streams.NextRow()
		col := w.streams.NextCol()
		s := lat.Get(row, col)
		dE := float64(2 * int(s) * lat.NeighborSum(row, col))
		if w.streams.NextProbability() < math.Exp(-w.beta*dE) {
			lat.Set(row, col, -s)
			accepted++
		}
	}
	return accepted
}
