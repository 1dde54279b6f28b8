package source

import (
	"bytes"
	"io"
	"os"

	"github.com/wippyai/datcodec/errors"
)

// Bytes wraps b. The slice must not be modified while in use.
func Bytes(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// File is a .dat file opened for random access.
type File struct {
	*io.SectionReader
	f *os.File
}

// Open opens path for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Load("open "+path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Load("stat "+path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, errors.InvalidInput(errors.PhaseLoad, path+" is a directory")
	}
	return &File{SectionReader: io.NewSectionReader(f, 0, info.Size()), f: f}, nil
}

func (f *File) Name() string { return f.f.Name() }

func (f *File) Close() error { return f.f.Close() }
