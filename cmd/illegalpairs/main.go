package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/tebeka/atexit"
)

func main() {
	stdout := bufferedStdout(os.Stdout)
	a := newApp(os.Stdin, stdout, os.Stderr, afero.NewOsFs())
	atexit.Exit(realMain(a, os.Args[1:]))
}

// bufferedStdout buffers w and flushes it when the process exits through
// atexit.Exit. The prompter flushes it before every read.
func bufferedStdout(w io.Writer) *bufio.Writer {
	b := bufio.NewWriterSize(w, 1<<16)
	atexit.Register(func() {
		_ = b.Flush()
	})
	return b
}

func realMain(a *app, args []string) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.Execute()
	o := outcomeOf(err)
	if err != nil {
		a.reportError(o, err)
	}
	return o.exitCode()
}
