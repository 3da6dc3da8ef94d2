// Package atomicfile writes files all-or-nothing: content goes to a
// temporary file in the destination's directory and is renamed over the
// destination on Close. A failed or cancelled write leaves no partial
// file behind, and the temp-in-same-directory placement keeps the final
// rename atomic on the same volume.
package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// ErrCancelled is returned by calls made after RemoveIfNotClosed.
var ErrCancelled = errors.New("cancelled")

var _ io.WriteCloser = &File{}

// File stages content for one destination path. The first error latches:
// once any Write fails, all later calls return that error and Close only
// cleans up.
type File struct {
	dst string
	dir string
	tmp *os.File
	err error
}

// New starts an atomic write of path.
func New(path string) (*File, error) {
	dir, name := filepath.Split(path)
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	tmp, err := os.CreateTemp(dir, name+".tmp-")
	if err != nil {
		return nil, err
	}
	return &File{dst: path, dir: dir, tmp: tmp}, nil
}

func (f *File) latch(err error) error {
	if err == nil {
		return nil
	}
	if f.err == nil {
		f.err = err
	}
	_ = f.Close()
	return err
}

func (f *File) Write(d []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmp.Write(d)
	return n, f.latch(err)
}

func (f *File) WriteString(s string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmp.WriteString(s)
	return n, f.latch(err)
}

// RemoveIfNotClosed cancels the write and deletes the staged file unless
// Close already ran. Meant for defer, so a panic or early return between
// New and Close never leaves a temp file around. After Close it's a no-op.
func (f *File) RemoveIfNotClosed() {
	if f == nil || f.tmp == nil {
		return
	}
	f.err = ErrCancelled
	_ = f.Close()
}

// Close flushes the staged content and renames it over the destination.
// On any earlier error it deletes the staged file instead. Calling Close
// more than once is safe and returns the first error.
func (f *File) Close() error {
	if f.tmp == nil {
		return f.err
	}
	tmp := f.tmp
	f.tmp = nil
	tmpPath := tmp.Name()

	errSync := tmp.Sync()
	errClose := tmp.Close()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	if f.err != nil {
		return f.err
	}
	err := errSync
	if err == nil {
		err = errClose
	}
	if err == nil {
		err = os.Rename(tmpPath, f.dst)
		renamed = err == nil
		// sync the directory so the rename survives a crash
		if dir, dirErr := os.Open(f.dir); dirErr == nil {
			_ = dir.Sync()
			_ = dir.Close()
		}
	}
	f.err = err
	return f.err
}
