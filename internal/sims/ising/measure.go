package ising

import "ising-ca/internal/analysis"

// MeasureOptions controls an equilibrium measurement.
type MeasureOptions struct {
	Wolff   bool
	Equil   int
	Samples int
}

// Measurement is the outcome of Measure at one temperature.
type Measurement struct {
	Summary         analysis.Summary
	Acceptance      float64
	StructureFactor float64
}

// Measure equilibrates a world built from cfg for opts.Equil lattice sweeps,
// then records opts.Samples samples one lattice sweep apart. A lattice sweep
// is R*C Metropolis trials, or Wolff clusters until as many sites have been
// flipped. StructureFactor is averaged over the samples.
func Measure(cfg Config, opts MeasureOptions) (Measurement, error) {
	w, err := New(cfg)
	if err != nil {
		return Measurement{}, err
	}
	for i := 0; i < opts.Equil; i++ {
		w.sweep(opts.Wolff)
	}
	var (
		series   analysis.Series
		trials   int
		accepted int
		sf       float64
	)
	for i := 0; i < opts.Samples; i++ {
		n, a := w.sweep(opts.Wolff)
		trials += n
		accepted += a
		series.Add(w.Magnetization(), w.Energy())
		sf += analysis.LowestModeStructureFactor(w.lattice)
	}
	out := Measurement{
		Summary:    analysis.Summarize(w.Temperature(), cfg.Rows*cfg.Cols, &series),
		Acceptance: 1,
	}
	if trials > 0 {
		out.Acceptance = float64(accepted) / float64(trials)
	}
	if opts.Samples > 0 {
		out.StructureFactor = sf / float64(opts.Samples)
	}
	return out, nil
}

// sweep performs one lattice sweep and returns the trials and acceptances it
// took.
func (w *World) sweep(wolff bool) (trials, accepted int) {
	sites := w.lattice.Rows() * w.lattice.Cols()
	if !wolff {
		return sites, w.Metropolis(sites)
	}
	flipped := 0
	for flipped < sites {
		w.Wolff(1)
		flipped += len(w.lastCluster)
		trials++
	}
	return trials, trials
}
