// Package output renders illegal pairs as flat text.
package output

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/daystram/illegalpairs/id"
)

// Header is the first line of a combined stream.
const Header = "TID/SID"

// Stats counts what a sink has written.
type Stats struct {
	Pairs uint64
	Bytes uint64
	Files int
}

// Combined writes every pair to one stream as "<primary>/<secondary>" lines
// after a header line. Each line is one Write on w; buffering and flushing w
// is up to its owner.
type Combined struct {
	w     io.Writer
	buf   []byte
	stats Stats
}

func NewCombined(w io.Writer) *Combined {
	return &Combined{
		w:   w,
		buf: make([]byte, 0, 16),
	}
}

func (c *Combined) Open() error {
	return c.write(append(c.buf[:0], Header+"\n"...))
}

func (c *Combined) Begin(id.ID) error { return nil }

func (c *Combined) Gap(p id.Pair) error {
	b := strconv.AppendUint(c.buf[:0], uint64(p.Primary), 10)
	b = append(b, '/')
	b = strconv.AppendUint(b, uint64(p.Secondary), 10)
	if err := c.write(append(b, '\n')); err != nil {
		return err
	}
	c.stats.Pairs++
	return nil
}

func (c *Combined) End(id.ID) error { return nil }

func (c *Combined) Close() error { return nil }

func (c *Combined) Stats() Stats {
	return c.stats
}

func (c *Combined) write(b []byte) error {
	n, err := c.w.Write(b)
	c.stats.Bytes += uint64(n)
	return errors.Wrap(err, "write combined output")
}
