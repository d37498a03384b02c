package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/daystram/illegalpairs/bench"
	"github.com/daystram/illegalpairs/finder"
	"github.com/daystram/illegalpairs/id"
	"github.com/daystram/illegalpairs/logging"
	"github.com/daystram/illegalpairs/output"
	"github.com/daystram/illegalpairs/prompt"
)

var errColor = color.New(color.FgRed)

// app carries what every command shares. The fields past logger are fixed
// for the CLI and only narrowed by tests.
type app struct {
	stdout io.Writer
	stderr io.Writer
	prompt *prompt.Prompter
	fs     afero.Fs
	logger log.Logger

	dir            string
	first, last    id.ID
	benchPrimaries int
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, fs afero.Fs) *app {
	return &app{
		stdout:         stdout,
		stderr:         stderr,
		prompt:         prompt.New(stdin, stdout),
		fs:             fs,
		logger:         logging.New(stderr),
		dir:            output.DefaultDirectory,
		first:          0,
		last:           id.Max,
		benchPrimaries: bench.DefaultPrimaries,
	}
}

func (a *app) finder(opts ...finder.Option) *finder.Finder {
	return finder.New(append([]finder.Option{
		finder.WithLogger(a.logger),
		finder.WithRange(a.first, a.last),
	}, opts...)...)
}

func (a *app) reportError(o outcome, err error) {
	switch o {
	case outcomeDeclined:
		a.prompt.Warnf("Cancelled. Nothing was written.\n")
	case outcomeDirectoryFailed:
		errColor.Fprintf(a.stderr, "Could not create the output directory, nothing was written: %v\n", err)
	case outcomeFileFailed:
		errColor.Fprintf(a.stderr, "Could not create an output file, files written so far were kept: %v\n", err)
	default:
		errColor.Fprintf(a.stderr, "Error: %v\n", err)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "illegalpairs",
		Short: "Lists the Trainer ID/Secret ID pairs no RNG seed can produce.",
		Long: `Lists every Trainer ID/Secret ID pair that the GameCube RNG can ` +
			`never generate together. Run without a command to pick a task ` +
			`from a menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "combined",
			Short: "Print every illegal pair to standard output.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runCombined()
			},
		},
		&cobra.Command{
			Use:   "files",
			Short: "Write the illegal Secret IDs of each Trainer ID to its own file.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runFiles()
			},
		},
		&cobra.Command{
			Use:   "lookup",
			Short: "Find the seeds that produce a Trainer ID/Secret ID pair.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runLookup()
			},
		},
		&cobra.Command{
			Use:   "bench",
			Short: "Measure populate and report throughput.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runBench()
			},
		},
		newVerifyCmd(a),
	)
	return rootCmd
}

func (a *app) runMenu() error {
	choice, err := a.prompt.Choice("Select from the following functionality:", []string{
		"Print every illegal pair",
		"Write one file per Trainer ID",
		"Look up the seeds of a pair",
	})
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return a.runCombined()
	case 2:
		return a.runFiles()
	default:
		return a.runLookup()
	}
}
