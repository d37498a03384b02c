package bench

import (
	"strings"
	"testing"
)

func TestThroughput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		primaries int
		verbose   bool
		wantLines []string
		wantSum   string
		wantErr   bool
	}{
		{
			primaries: 1,
			wantSum:   "primaries=1 seeds=65,536 gaps=6,585 ",
		},
		{
			primaries: 3,
			verbose:   true,
			wantLines: []string{"0: 6585", "1: 6585", "2: 6585"},
			wantSum:   "primaries=3 seeds=196,608 gaps=19,755 ",
		},
		{primaries: 0, wantErr: true},
		{primaries: 1<<16 + 1, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(strings.TrimSpace(tt.wantSum), func(t *testing.T) {
			t.Parallel()
			out := make(chan string, 8)
			err := Throughput(tt.primaries, tt.verbose, out)
			close(out)
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			var got []string
			for s := range out {
				got = append(got, s)
			}
			if len(got) != len(tt.wantLines)+1 {
				t.Fatalf("unexpected lines: got=%q", got)
			}
			for i, want := range tt.wantLines {
				if got[i] != want {
					t.Errorf("unexpected line %d: got=%q want=%q", i, got[i], want)
				}
			}
			if sum := got[len(got)-1]; !strings.HasPrefix(sum, tt.wantSum) {
				t.Errorf("unexpected summary: got=%q want prefix %q", sum, tt.wantSum)
			}
		})
	}
}
