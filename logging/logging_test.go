package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func TestNew(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf)
	_ = level.Debug(l).Log("msg", "hidden")
	_ = level.Info(l).Log("msg", "shown", "primary", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("unexpected debug record: %q", out)
	}
	if !strings.Contains(out, "msg=shown primary=7") || !strings.Contains(out, "ts=") {
		t.Errorf("unexpected record: %q", out)
	}
}

func TestSample(t *testing.T) {
	t.Parallel()
	tests := []struct {
		freq int
		logs int
		want int
	}{
		{freq: 0, logs: 5, want: 5},
		{freq: 1, logs: 5, want: 5},
		{freq: 4, logs: 3, want: 0},
		{freq: 4, logs: 9, want: 2},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := Sample(log.NewLogfmtLogger(&buf), tt.freq)
		for i := 0; i < tt.logs; i++ {
			_ = l.Log("i", i)
		}
		if got := strings.Count(buf.String(), "\n"); got != tt.want {
			t.Errorf("freq=%d logs=%d: unexpected records: got=%d want=%d", tt.freq, tt.logs, got, tt.want)
		}
	}
}
