package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/daystram/illegalpairs/verify"
)

func newVerifyCmd(a *app) *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check previously written output against the RNG.",
	}
	verifyCmd.AddCommand(
		&cobra.Command{
			Use:   "combined [file]",
			Short: "Check a file holding the combined output.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runVerifyCombined(args[0])
			},
		},
		&cobra.Command{
			Use:   "files [directory]",
			Short: "Check a directory holding one file per Trainer ID.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runVerifyFiles(args[0])
			},
		},
	)
	return verifyCmd
}

func (a *app) verifier() *verify.Verifier {
	return verify.New(
		verify.WithLogger(a.logger),
		verify.WithRange(a.first, a.last),
	)
}

func (a *app) runVerifyCombined(path string) error {
	f, err := a.fs.Open(path)
	if err != nil {
		return errors.Wrap(err, "open combined output")
	}
	defer f.Close()

	rep, err := a.verifier().Combined(f)
	if err != nil {
		return err
	}
	a.verified(rep)
	return nil
}

func (a *app) runVerifyFiles(dir string) error {
	rep, err := a.verifier().Files(a.fs, dir)
	if err != nil {
		return err
	}
	a.verified(rep)
	return nil
}

func (a *app) verified(rep verify.Report) {
	a.prompt.Successf("OK: %d illegal pairs over %d Trainer IDs match.\n", rep.Pairs, rep.Primaries)
}
