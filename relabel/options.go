// SPDX-License-Identifier: MIT

package relabel

// DefaultModesPerOrbital is the number of spin-orbitals (modes/qubits) per
// spatial orbital. The frozen cutoff is DefaultModesPerOrbital·activeSpaceStart.
const DefaultModesPerOrbital = 2

const panicModesPerOrbitalInvalid = "relabel: WithModesPerOrbital: k must be ≥ 1"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds relabeling parameters. Build it via gatherOptions.
type Options struct {
	modesPerOrbital int
}

// ModesPerOrbital returns the configured modes per spatial orbital.
func (o Options) ModesPerOrbital() int { return o.modesPerOrbital }

// DefaultOptions returns Options with spin-orbital (k = 2) bookkeeping.
func DefaultOptions() Options {
	return Options{modesPerOrbital: DefaultModesPerOrbital}
}

// WithModesPerOrbital sets how many modes one spatial orbital contributes.
// Use 1 when the operator is already indexed by spatial orbital or when the
// boundary is given directly in modes. Panics if k < 1.
func WithModesPerOrbital(k int) Option {
	if k < 1 {
		panic(panicModesPerOrbitalInvalid)
	}

	return func(o *Options) { o.modesPerOrbital = k }
}

// gatherOptions applies opts left to right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
