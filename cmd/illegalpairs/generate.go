package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/illegalpairs/finder"
	"github.com/daystram/illegalpairs/output"
)

func (a *app) runCombined() error {
	c := output.NewCombined(a.stdout)

	sum, err := a.finder().Run(c)
	if err != nil {
		return err
	}
	a.summary(sum, c.Stats())
	return nil
}

func (a *app) runFiles() error {
	s := output.NewFiles(a.fs, a.dir)

	files := int(a.last) - int(a.first) + 1
	question := message.NewPrinter(language.English).
		Sprintf("This writes %d files into %s/, one per Trainer ID, several gigabytes in total.", files, a.dir)
	f := a.finder(finder.WithConfirm(func() (bool, error) {
		return a.prompt.Confirm(question)
	}))

	sum, err := f.Run(s)
	if err != nil {
		return err
	}
	a.summary(sum, s.Stats())
	a.prompt.Successf("Done! Wrote %d files into %s/.\n", s.Stats().Files, a.dir)
	return nil
}

func (a *app) summary(sum finder.Summary, st output.Stats) {
	fmt.Fprintln(a.stderr, message.NewPrinter(language.English).
		Sprintf("%d illegal pairs over %d Trainer IDs, %s written", sum.Gaps, sum.Primaries, humanize.Bytes(st.Bytes)))
}
