package finder

import (
	"github.com/daystram/illegalpairs/bitmap"
	"github.com/daystram/illegalpairs/id"
	"github.com/daystram/illegalpairs/rng"
)

// Populate marks in b every secondary ID produced by the id.Count seeds
// whose high half is primary. b is not cleared first.
func Populate(b *bitmap.Bitmap, primary id.ID) {
	for offset := 0; offset < id.Count; offset++ {
		b.Set(rng.High(rng.Step(rng.Seed(primary, id.ID(offset)))))
	}
}

// Report emits (primary, secondary) for every secondary ID left unset in b,
// in ascending order. It stops at the first sink error and returns the
// number of pairs emitted before it.
func Report(b *bitmap.Bitmap, primary id.ID, sink Sink) (int, error) {
	var (
		n   int
		err error
	)
	b.EachClear(func(secondary id.ID) bool {
		if err = sink.Gap(id.Pair{Primary: primary, Secondary: secondary}); err != nil {
			return false
		}
		n++
		return true
	})
	return n, err
}

// Gaps returns the unreachable secondary IDs of primary.
func Gaps(primary id.ID) []id.ID {
	b := bitmap.New()
	Populate(b, primary)
	gaps := make([]id.ID, 0, id.Count-b.Count())
	b.EachClear(func(secondary id.ID) bool {
		gaps = append(gaps, secondary)
		return true
	})
	return gaps
}
