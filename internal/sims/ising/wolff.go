package ising

import "ising-ca/internal/core"

// Wolff performs n cluster sweeps and returns n. Every sweep flips exactly one
// cluster of at least one site.
func (w *World) Wolff(n int) int {
	if n <= 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		w.lastCluster = w.wolffSweep(w.lastCluster[:0])
	}
	return n
}

// wolffSweep grows one cluster from a random seed site and flips it. Members
// are appended to dst, which is returned.
func (w *World) wolffSweep(dst []core.Point) []core.Point {
	lat := w.lattice
	p := w.bondProbability()

	seed := core.Point{Row: w.streams.NextRow(), Col: w.streams.NextCol()}
	frontier := []core.Point{seed}
	members := map[int]struct{}{lat.Index(seed.Row, seed.Col): {}}
	dst = append(dst, seed)

	for len(frontier) > 0 {
		k := w.streams.Pick(len(frontier))
		last := len(frontier) - 1
		frontier[k], frontier[last] = frontier[last], frontier[k]
		j := frontier[last]
		frontier = frontier[:last]

		spin := lat.Get(j.Row, j.Col)
		for _, nb := range lat.Neighbors(j.Row, j.Col) {
			if lat.Get(nb.Row, nb.Col) != spin {
				continue
			}
			idx := lat.Index(nb.Row, nb.Col)
			if _, ok := members[idx]; ok {
				continue
			}
			if w.streams.NextProbability() < p {
				members[idx] = struct{}{}
				frontier = append(frontier, nb)
				dst = append(dst, nb)
			}
		}
	}

	for _, m := range dst {
		lat.Flip(m.Row, m.Col)
	}
	return dst
}
