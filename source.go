package datcodec

import "io"

// Source is a read-only, randomly addressable view of a .dat blob.
// *bytes.Reader and *io.SectionReader satisfy it.
type Source interface {
	io.ReaderAt
	Size() int64
}
