package rng

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/daystram/illegalpairs/id"
)

func TestInverseConstants(t *testing.T) {
	t.Parallel()
	a, c := Multiplier, Increment
	if got := a * InverseMultiplier; got != 1 {
		t.Errorf("unexpected multiplier product: got=%#x want=0x1", got)
	}
	if got := c*InverseMultiplier + InverseIncrement; got != 0 {
		t.Errorf("unexpected increment residue: got=%#x want=0x0", got)
	}
}

func TestStep(t *testing.T) {
	t.Parallel()
	tests := []struct {
		s    uint32
		want uint32
	}{
		{s: 0x00000000, want: 0x00269EC3},
		{s: 0x00000001, want: 0x0029E2C0},
		{s: 0x12345678, want: 0xB3E97B5B},
		{s: 0xFFFFFFFF, want: 0x00235AC6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%#08x", tt.s), func(t *testing.T) {
			t.Parallel()
			if got := Step(tt.s); got != tt.want {
				t.Errorf("unexpected state: got=%#08x want=%#08x", got, tt.want)
			}
			if got := InverseStep(tt.want); got != tt.s {
				t.Errorf("unexpected inverse: got=%#08x want=%#08x", got, tt.s)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	states := []uint32{0, 1, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFE, 0xFFFFFFFF}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1<<16; i++ {
		states = append(states, r.Uint32())
	}
	for _, s := range states {
		if got := InverseStep(Step(s)); got != s {
			t.Fatalf("unexpected round trip: got=%#08x want=%#08x", got, s)
		}
		if got := Step(InverseStep(s)); got != s {
			t.Fatalf("unexpected reverse round trip: got=%#08x want=%#08x", got, s)
		}
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()
	if got := Seed(id.Max, id.Max); got != 0xFFFFFFFF {
		t.Errorf("unexpected seed: got=%#08x want=0xffffffff", got)
	}
	if got := Seed(0x1234, 0x5678); got != 0x12345678 {
		t.Errorf("unexpected seed: got=%#08x want=0x12345678", got)
	}
	if got := High(Step(Seed(0, 0))); got != 0x26 {
		t.Errorf("unexpected secondary: got=%#04x want=0x26", got)
	}
}

func TestRand(t *testing.T) {
	t.Parallel()
	r := NewRand(0x12345678)
	if got := r.Rewind(1100); got != 0x4C9A58EC {
		t.Errorf("unexpected rewound state: got=%#08x want=0x4c9a58ec", got)
	}

	s := uint32(0x4C9A58EC)
	for i := 0; i < 1100; i++ {
		s = Step(s)
	}
	if s != 0x12345678 {
		t.Errorf("unexpected advanced state: got=%#08x want=0x12345678", s)
	}

	r.Seed(0x00269EC3)
	if got := r.Rewind(1); got != 0 {
		t.Errorf("unexpected state after reseed: got=%#08x want=0x0", got)
	}
	if got := r.Rewind(0); got != 0 {
		t.Errorf("unexpected state after no steps: got=%#08x want=0x0", got)
	}
}
