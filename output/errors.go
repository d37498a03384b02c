package output

import "fmt"

// DirectoryError is returned when the output directory cannot be created.
// Nothing has been written when it occurs.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("create output directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// FileError is returned when a per-primary file cannot be created. Files
// finished before it are left in place.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("create output file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
