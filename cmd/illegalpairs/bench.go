package main

import (
	"fmt"

	"github.com/daystram/illegalpairs/bench"
)

func (a *app) runBench() error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Fprintln(a.stdout, s)
		}
	}()

	err := bench.Throughput(a.benchPrimaries, true, out)
	close(out)
	<-done
	return err
}
