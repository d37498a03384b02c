package main

import (
	"errors"
	"os"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/daystram/illegalpairs/finder"
	"github.com/daystram/illegalpairs/output"
)

func TestOutcome(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		want     outcome
		wantCode int
	}{
		{name: "success", err: nil, want: outcomeSuccess, wantCode: exitOK},
		{name: "declined", err: finder.ErrDeclined, want: outcomeDeclined, wantCode: exitPartial},
		{
			name:     "directory",
			err:      &output.DirectoryError{Path: "illegal", Err: os.ErrPermission},
			want:     outcomeDirectoryFailed,
			wantCode: exitErr,
		},
		{
			name:     "file",
			err:      pkgerrors.WithMessage(&output.FileError{Path: "illegal/7.txt", Err: os.ErrPermission}, "primary 7"),
			want:     outcomeFileFailed,
			wantCode: exitPartial,
		},
		{name: "other", err: errors.New("broken pipe"), want: outcomeFailed, wantCode: exitErr},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := outcomeOf(tt.err)
			if got != tt.want {
				t.Errorf("unexpected outcome: got=%s want=%s", got, tt.want)
			}
			if code := got.exitCode(); code != tt.wantCode {
				t.Errorf("unexpected exit code: got=%d want=%d", code, tt.wantCode)
			}
		})
	}
}
