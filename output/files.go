package output

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/daystram/illegalpairs/id"
)

const (
	// DefaultDirectory is where Files writes when run from the CLI.
	DefaultDirectory = "illegal"

	// Extension is appended to every per-primary file name.
	Extension = ".txt"
)

// FileName returns the name of the file holding primary's gaps.
func FileName(primary id.ID) string {
	return primary.String() + Extension
}

// Files writes one file per primary ID into a directory, one secondary ID
// per line.
type Files struct {
	fs  afero.Fs
	dir string

	f     afero.File
	w     *bufio.Writer
	buf   []byte
	stats Stats
}

func NewFiles(fs afero.Fs, dir string) *Files {
	return &Files{
		fs:  fs,
		dir: dir,
		w:   bufio.NewWriterSize(nil, 1<<15),
		buf: make([]byte, 0, 8),
	}
}

// Open creates the output directory. An existing directory is reused and
// its files are overwritten as primary IDs come in.
func (s *Files) Open() error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return &DirectoryError{Path: s.dir, Err: err}
	}
	return nil
}

func (s *Files) Begin(primary id.ID) error {
	path := filepath.Join(s.dir, FileName(primary))
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	s.f = f
	s.w.Reset(f)
	return nil
}

func (s *Files) Gap(p id.Pair) error {
	b := strconv.AppendUint(s.buf[:0], uint64(p.Secondary), 10)
	n, err := s.w.Write(append(b, '\n'))
	s.stats.Bytes += uint64(n)
	if err != nil {
		return errors.Wrapf(err, "write %s", s.f.Name())
	}
	s.stats.Pairs++
	return nil
}

func (s *Files) End(primary id.ID) error {
	if err := s.w.Flush(); err != nil {
		_ = s.f.Close()
		s.f = nil
		return errors.Wrapf(err, "flush primary %d", primary)
	}
	err := s.f.Close()
	s.f = nil
	if err != nil {
		return errors.Wrapf(err, "close primary %d", primary)
	}
	s.stats.Files++
	return nil
}

// Close releases a file left open by an aborted run.
func (s *Files) Close() error {
	if s.f == nil {
		return nil
	}
	_ = s.w.Flush()
	err := s.f.Close()
	s.f = nil
	return err
}

func (s *Files) Stats() Stats {
	return s.stats
}
