// Package lookup finds the seeds that produce a given ID pair.
package lookup

import (
	"github.com/daystram/illegalpairs/id"
	"github.com/daystram/illegalpairs/rng"
)

// Delay is the number of generator steps between the state a game starts
// stepping from and the seed that yields the IDs.
const Delay = 1100

type Match struct {
	// Seed is the state whose next step yields the secondary ID.
	Seed uint32
	// Origin is Seed rewound by Delay steps.
	Origin uint32
}

// Find returns every seed with high half primary whose next state has high
// half secondary, in ascending seed order. An illegal pair has none.
func Find(primary, secondary id.ID) []Match {
	var matches []Match
	r := rng.NewRand(0)
	for offset := 0; offset < id.Count; offset++ {
		seed := rng.Seed(primary, id.ID(offset))
		if rng.High(rng.Step(seed)) != secondary {
			continue
		}
		r.Seed(seed)
		matches = append(matches, Match{
			Seed:   seed,
			Origin: r.Rewind(Delay),
		})
	}
	return matches
}
