package main

import (
	"errors"

	"github.com/daystram/illegalpairs/finder"
	"github.com/daystram/illegalpairs/output"
)

const (
	exitOK      = 0
	exitPartial = 1
	exitErr     = 2
)

// outcome is how a run ended.
type outcome uint8

const (
	outcomeSuccess outcome = iota
	outcomeDeclined
	outcomeDirectoryFailed
	outcomeFileFailed
	outcomeFailed
)

func outcomeOf(err error) outcome {
	var (
		dirErr  *output.DirectoryError
		fileErr *output.FileError
	)
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, finder.ErrDeclined):
		return outcomeDeclined
	case errors.As(err, &dirErr):
		return outcomeDirectoryFailed
	case errors.As(err, &fileErr):
		return outcomeFileFailed
	default:
		return outcomeFailed
	}
}

func (o outcome) exitCode() int {
	switch o {
	case outcomeSuccess:
		return exitOK
	case outcomeDeclined, outcomeFileFailed:
		return exitPartial
	default:
		return exitErr
	}
}

func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeDeclined:
		return "declined"
	case outcomeDirectoryFailed:
		return "directory failed"
	case outcomeFileFailed:
		return "file failed"
	case outcomeFailed:
		return "failed"
	default:
		return ""
	}
}
