package id

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// Count is the number of distinct IDs.
	Count = 1 << 16

	// Max is the largest ID.
	Max ID = Count - 1
)

var (
	// ErrInvalidID represents an invalid ID error.
	ErrInvalidID = errors.New("invalid id")
)

// ID is a 16-bit identifier. A seed carries the primary ID in its high half
// and the generator yields the secondary ID from the high half of the next
// state.
type ID uint16

// Parse reads a decimal ID. Surrounding whitespace is ignored, anything else
// outside [0, Max] is rejected.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, ErrInvalidID
	}
	return ID(v), nil
}

func (i ID) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

// Pair is a (primary, secondary) combination.
type Pair struct {
	Primary   ID
	Secondary ID
}

func (p Pair) String() string {
	return p.Primary.String() + "/" + p.Secondary.String()
}

// ParsePair reads the "<primary>/<secondary>" form produced by Pair.String.
func ParsePair(s string) (Pair, error) {
	primary, secondary, ok := strings.Cut(s, "/")
	if !ok {
		return Pair{}, ErrInvalidID
	}
	p, err := Parse(primary)
	if err != nil {
		return Pair{}, err
	}
	q, err := Parse(secondary)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Primary: p, Secondary: q}, nil
}

// Less reports whether p sorts before q in primary-major order.
func (p Pair) Less(q Pair) bool {
	if p.Primary != q.Primary {
		return p.Primary < q.Primary
	}
	return p.Secondary < q.Secondary
}
