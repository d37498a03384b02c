// Package logging builds the go-kit loggers used for progress reporting.
package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New returns a logfmt logger on w that drops debug records.
func New(w io.Writer) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(l, level.AllowInfo())
}

// Sample forwards only every freq-th record to next. freq <= 1 forwards
// everything.
func Sample(next log.Logger, freq int) log.Logger {
	if freq <= 1 {
		return next
	}
	return &samplingFilter{next: next, freq: freq}
}

type samplingFilter struct {
	next  log.Logger
	freq  int
	count int
}

func (e *samplingFilter) Log(keyvals ...interface{}) error {
	e.count++
	if e.count%e.freq == 0 {
		return e.next.Log(keyvals...)
	}
	return nil
}
