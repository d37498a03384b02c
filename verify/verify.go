// Package verify checks written output against recomputed reachability.
package verify

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/daystram/illegalpairs/bitmap"
	"github.com/daystram/illegalpairs/finder"
	"github.com/daystram/illegalpairs/id"
	"github.com/daystram/illegalpairs/logging"
	"github.com/daystram/illegalpairs/output"
)

const progressEvery = 1 << 12

// ErrMismatch is returned when output disagrees with the generator.
var ErrMismatch = errors.New("output mismatch")

type Report struct {
	Primaries int
	Pairs     uint64
}

type Verifier struct {
	first, last id.ID
	bitmap      *bitmap.Bitmap
	reachable   *roaring.Bitmap

	logger   log.Logger
	progress log.Logger
}

type Option func(*Verifier)

func WithLogger(logger log.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// WithRange expects output for primary IDs in [first, last] only.
func WithRange(first, last id.ID) Option {
	return func(v *Verifier) {
		v.first, v.last = first, last
	}
}

func New(opts ...Option) *Verifier {
	v := &Verifier{
		first:     0,
		last:      id.Max,
		bitmap:    bitmap.New(),
		reachable: roaring.New(),
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.progress = logging.Sample(v.logger, progressEvery)
	return v
}

// Primary checks that listed holds exactly the secondary IDs primary cannot
// reach.
func (v *Verifier) Primary(primary id.ID, listed *roaring.Bitmap) error {
	v.bitmap.Clear()
	finder.Populate(v.bitmap, primary)
	v.reachable.Clear()
	v.bitmap.EachSet(func(s id.ID) bool {
		v.reachable.Add(uint32(s))
		return true
	})

	if n := listed.AndCardinality(v.reachable); n != 0 {
		return errors.Wrapf(ErrMismatch, "primary %d: %d listed pairs are reachable", primary, n)
	}
	if total := listed.GetCardinality() + v.reachable.GetCardinality(); total != id.Count {
		return errors.Wrapf(ErrMismatch, "primary %d: %d illegal pairs missing", primary, id.Count-total)
	}
	level.Info(v.progress).Log("msg", "progress", "primary", primary, "pairs", listed.GetCardinality())
	return nil
}

// Combined checks a combined stream: header, strict primary-major order,
// canonical "<primary>/<secondary>" lines ending in a line break and the exact
// gap set of every primary ID in range.
func (v *Verifier) Combined(r io.Reader) (Report, error) {
	var (
		rep  Report
		prev id.Pair
		line int
	)
	listed := roaring.New()
	next := int(v.first)
	flushUntil := func(primary int) error {
		for ; next < primary; next++ {
			if err := v.Primary(id.ID(next), listed); err != nil {
				return err
			}
			listed.Clear()
			rep.Primaries++
		}
		return nil
	}

	err := eachLine(r, func(text string) error {
		line++
		if line == 1 {
			if text != output.Header {
				return errors.Wrapf(ErrMismatch, "unexpected header %q", text)
			}
			return nil
		}

		p, err := id.ParsePair(text)
		if err != nil || text != p.String() {
			return errors.Wrapf(ErrMismatch, "line %d: malformed pair %q", line, text)
		}
		if line > 2 {
			if p == prev {
				return errors.Wrapf(ErrMismatch, "line %d: duplicate pair %s", line, p)
			}
			if !prev.Less(p) {
				return errors.Wrapf(ErrMismatch, "line %d: %s after %s", line, p, prev)
			}
		}
		if p.Primary < v.first || p.Primary > v.last {
			return errors.Wrapf(ErrMismatch, "line %d: primary %d out of range", line, p.Primary)
		}
		if err := flushUntil(int(p.Primary)); err != nil {
			return err
		}
		listed.Add(uint32(p.Secondary))
		rep.Pairs++
		prev = p
		return nil
	})
	if err != nil {
		return rep, err
	}
	if line == 0 {
		return rep, errors.Wrap(ErrMismatch, "empty output")
	}
	if err := flushUntil(int(v.last) + 1); err != nil {
		return rep, err
	}
	return rep, nil
}

// Files checks a per-primary directory: one file per primary ID in range,
// nothing else, each listing its gaps in ascending order.
func (v *Verifier) Files(fs afero.Fs, dir string) (Report, error) {
	var rep Report
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return rep, errors.Wrapf(err, "read directory %s", dir)
	}
	want := int(v.last) - int(v.first) + 1
	for _, info := range infos {
		primary, err := id.Parse(trimExtension(info.Name()))
		if err != nil || info.IsDir() || info.Name() != output.FileName(primary) || primary < v.first || primary > v.last {
			return rep, errors.Wrapf(ErrMismatch, "unexpected entry %s", info.Name())
		}
	}
	if len(infos) != want {
		return rep, errors.Wrapf(ErrMismatch, "found %d files, want %d", len(infos), want)
	}

	listed := roaring.New()
	for p := int(v.first); p <= int(v.last); p++ {
		primary := id.ID(p)
		listed.Clear()
		n, err := readFile(fs, filepath.Join(dir, output.FileName(primary)), listed)
		if err != nil {
			return rep, err
		}
		if err := v.Primary(primary, listed); err != nil {
			return rep, err
		}
		rep.Primaries++
		rep.Pairs += uint64(n)
	}
	return rep, nil
}

func readFile(fs afero.Fs, path string, listed *roaring.Bitmap) (int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var (
		n    int
		prev id.ID
	)
	err = eachLine(f, func(text string) error {
		s, err := id.Parse(text)
		if err != nil || text != s.String() {
			return errors.Wrapf(ErrMismatch, "malformed line %q", text)
		}
		if n > 0 && s <= prev {
			return errors.Wrapf(ErrMismatch, "%d after %d", s, prev)
		}
		listed.Add(uint32(s))
		prev = s
		n++
		return nil
	})
	return n, errors.WithMessage(err, path)
}

// eachLine calls fn with every line of r, line break removed. A last line
// without a line break is a mismatch.
func eachLine(r io.Reader, fn func(text string) error) error {
	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if text != "" {
				return errors.Wrapf(ErrMismatch, "unterminated last line %q", text)
			}
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read output")
		}
		if err := fn(strings.TrimSuffix(text, "\n")); err != nil {
			return err
		}
	}
}

func trimExtension(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
