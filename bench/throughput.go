package bench

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/illegalpairs/finder"
	"github.com/daystram/illegalpairs/id"
)

// DefaultPrimaries is how many primary IDs the CLI bench covers.
const DefaultPrimaries = 256

// Throughput runs the finder over the first primaries IDs and sends a
// summary line, preceded by one line per primary ID when verbose, to out.
func Throughput(primaries int, verbose bool, out chan string) error {
	if primaries < 1 || primaries > id.Count {
		return errors.Errorf("primaries out of range: %d", primaries)
	}

	c := &counter{verbose: verbose, out: out}
	start := time.Now()
	sum, err := finder.New(finder.WithRange(0, id.ID(primaries-1))).Run(c)
	if err != nil {
		return err
	}
	end := time.Now()

	seeds := uint64(sum.Primaries) * id.Count
	out <- message.NewPrinter(language.English).
		Sprintf("primaries=%d seeds=%d gaps=%d rate=%dseeds/s (%.3fs elapsed)",
			sum.Primaries, seeds, sum.Gaps, int(float64(seeds)/end.Sub(start).Seconds()), end.Sub(start).Seconds())
	return nil
}

// counter is a Sink that only counts.
type counter struct {
	verbose bool
	out     chan string
	gaps    int
}

func (c *counter) Open() error { return nil }

func (c *counter) Begin(id.ID) error {
	c.gaps = 0
	return nil
}

func (c *counter) Gap(id.Pair) error {
	c.gaps++
	return nil
}

func (c *counter) End(primary id.ID) error {
	if c.verbose {
		c.out <- fmt.Sprintf("%d: %d", primary, c.gaps)
	}
	return nil
}

func (c *counter) Close() error { return nil }
