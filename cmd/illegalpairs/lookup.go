package main

import (
	"github.com/daystram/illegalpairs/id"
	"github.com/daystram/illegalpairs/lookup"
)

func (a *app) runLookup() error {
	primary, err := a.prompt.ID("Trainer ID")
	if err != nil {
		return err
	}
	secondary, err := a.prompt.ID("Secret ID")
	if err != nil {
		return err
	}

	pair := id.Pair{Primary: primary, Secondary: secondary}
	matches := lookup.Find(primary, secondary)
	if len(matches) == 0 {
		a.prompt.Warnf("\nNo seed produces %s. This combination is impossible to get.\n", pair)
		return nil
	}
	a.prompt.Printf("\n")
	for _, m := range matches {
		a.prompt.Printf("Seed: 0x%08x (-%d: 0x%08x)\n", m.Seed, lookup.Delay, m.Origin)
	}
	a.prompt.Successf("\n%d seeds produce %s.\n", len(matches), pair)
	return nil
}
