// Package finder enumerates the (primary, secondary) ID pairs no seed can
// produce.
package finder

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/daystram/illegalpairs/bitmap"
	"github.com/daystram/illegalpairs/id"
	"github.com/daystram/illegalpairs/logging"
)

const progressEvery = 1 << 12

var (
	// ErrDeclined is returned when the operator does not approve the run.
	ErrDeclined = errors.New("run declined")

	// ErrFinished is returned when Run is called on a finder that already ran.
	ErrFinished = errors.New("finder already ran")
)

// Sink receives the illegal pairs of a run. Begin and End bracket the pairs
// of one primary ID; primary IDs arrive in ascending order.
type Sink interface {
	Open() error
	Begin(primary id.ID) error
	Gap(p id.Pair) error
	End(primary id.ID) error
	Close() error
}

type Summary struct {
	Primaries int
	Gaps      uint64
}

type Finder struct {
	bitmap *bitmap.Bitmap
	state  State

	first, last id.ID
	confirm     func() (bool, error)

	logger   log.Logger
	progress log.Logger
}

type Option func(*Finder)

func WithLogger(logger log.Logger) Option {
	return func(f *Finder) {
		f.logger = logger
	}
}

// WithConfirm asks fn before anything is written; a false answer ends the
// run with ErrDeclined.
func WithConfirm(fn func() (bool, error)) Option {
	return func(f *Finder) {
		f.confirm = fn
	}
}

// WithRange limits the run to primary IDs in [first, last].
func WithRange(first, last id.ID) Option {
	return func(f *Finder) {
		f.first, f.last = first, last
	}
}

func New(opts ...Option) *Finder {
	f := &Finder{
		bitmap: bitmap.New(),
		state:  StateInit,
		first:  0,
		last:   id.Max,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.progress = logging.Sample(f.logger, progressEvery)
	return f
}

func (f *Finder) State() State {
	return f.state
}

// Run reports every illegal pair in range to sink. A Finder runs once.
func (f *Finder) Run(sink Sink) (Summary, error) {
	if f.state != StateInit {
		return Summary{}, ErrFinished
	}

	sum, err := f.run(sink)
	if err != nil {
		f.state = StateFailed
		level.Error(f.logger).Log("msg", "run failed", "primaries", sum.Primaries, "gaps", sum.Gaps, "err", err)
		return sum, err
	}
	f.state = StateDone
	level.Info(f.logger).Log("msg", "run finished", "primaries", sum.Primaries, "gaps", sum.Gaps)
	return sum, nil
}

func (f *Finder) run(sink Sink) (Summary, error) {
	var sum Summary
	if f.confirm != nil {
		f.state = StateConfirm
		ok, err := f.confirm()
		if err != nil {
			return sum, errors.Wrap(err, "confirm")
		}
		if !ok {
			return sum, ErrDeclined
		}
	}

	if err := sink.Open(); err != nil {
		return sum, err
	}
	for p := int(f.first); p <= int(f.last); p++ {
		primary := id.ID(p)
		n, err := f.next(primary, sink)
		sum.Gaps += uint64(n)
		if err != nil {
			_ = sink.Close()
			return sum, errors.WithMessagef(err, "primary %d", primary)
		}
		sum.Primaries++
		level.Info(f.progress).Log("msg", "progress", "primary", primary, "gaps", sum.Gaps)
	}
	return sum, sink.Close()
}

func (f *Finder) next(primary id.ID, sink Sink) (int, error) {
	f.state = StateClear
	f.bitmap.Clear()

	f.state = StatePopulate
	Populate(f.bitmap, primary)

	f.state = StateReport
	if err := sink.Begin(primary); err != nil {
		return 0, err
	}
	n, err := Report(f.bitmap, primary, sink)
	if err != nil {
		return n, err
	}
	return n, sink.End(primary)
}
