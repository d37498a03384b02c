package rng

// Rand walks the generator backward from a seed.
type Rand struct {
	s uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{s: seed}
}

func (r *Rand) Seed(seed uint32) {
	r.s = seed
}

// Rewind undoes n steps and returns the state reached.
func (r *Rand) Rewind(n int) uint32 {
	for i := 0; i < n; i++ {
		r.s = InverseStep(r.s)
	}
	return r.s
}
