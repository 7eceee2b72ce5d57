// Package analysis computes equilibrium observables from sampled Ising
// configurations.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"ising-ca/internal/core"
)

// Series accumulates per-sample magnetization and energy per site.
type Series struct {
	mag    []float64
	energy []float64
}

// Add records one sample.
func (s *Series) Add(magnetization, energy float64) {
	s.mag = append(s.mag, magnetization)
	s.energy = append(s.energy, energy)
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.mag) }

// Summary holds the thermodynamic estimates at one temperature.
type Summary struct {
	Temperature float64
	Samples     int

	AbsMagnetization float64
	AbsMagStdDev     float64
	Energy           float64
	Susceptibility   float64
	HeatCapacity     float64
	Binder           float64
}

// Summarize reduces s into estimates for a lattice of sites spins at
// temperature t. An empty series yields a zero Summary with only
// Temperature set.
func Summarize(t float64, sites int, s *Series) Summary {
	out := Summary{Temperature: t, Samples: s.Len()}
	if s.Len() == 0 {
		return out
	}
	abs := make([]float64, len(s.mag))
	m2 := make([]float64, len(s.mag))
	m4 := make([]float64, len(s.mag))
	for i, m := range s.mag {
		abs[i] = math.Abs(m)
		m2[i] = m * m
		m4[i] = m2[i] * m2[i]
	}
	beta := 1 / t
	n := float64(sites)

	out.AbsMagnetization, out.AbsMagStdDev = stat.MeanStdDev(abs, nil)
	if math.IsNaN(out.AbsMagStdDev) {
		out.AbsMagStdDev = 0
	}
	meanM2 := stat.Mean(m2, nil)
	out.Susceptibility = n * beta * (meanM2 - out.AbsMagnetization*out.AbsMagnetization)

	e := stat.Mean(s.energy, nil)
	e2 := 0.0
	for _, v := range s.energy {
		e2 += v * v
	}
	e2 /= float64(len(s.energy))
	out.Energy = e
	out.HeatCapacity = n * beta * beta * (e2 - e*e)

	if meanM2 > 0 {
		out.Binder = 1 - stat.Mean(m4, nil)/(3*meanM2*meanM2)
	}
	return out
}

// StructureFactor returns S(k) = |FFT(s)(k)|^2 / N over the lattice
// wave-vectors, indexed [kRow][kCol].
func StructureFactor(lat *core.Lattice) [][]float64 {
	rows, cols := lat.Rows(), lat.Cols()
	field := make([][]float64, rows)
	for r := range field {
		field[r] = make([]float64, cols)
		for c := range field[r] {
			field[r][c] = float64(lat.Get(r, c))
		}
	}
	spec := fft.FFT2Real(field)
	n := float64(rows * cols)
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			a := cmplx.Abs(spec[r][c])
			out[r][c] = a * a / n
		}
	}
	return out
}

// LowestModeStructureFactor averages S(k) over the smallest non-zero
// wave-vectors along each axis that has one. A 1x1 lattice returns S(0).
func LowestModeStructureFactor(lat *core.Lattice) float64 {
	sf := StructureFactor(lat)
	sum, count := 0.0, 0
	if lat.Rows() > 1 {
		sum += sf[1][0]
		count++
	}
	if lat.Cols() > 1 {
		sum += sf[0][1]
		count++
	}
	if count == 0 {
		return sf[0][0]
	}
	return sum / float64(count)
}
