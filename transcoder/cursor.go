package transcoder

import (
	"encoding/binary"

	datcodec "github.com/wippyai/datcodec"
	"github.com/wippyai/datcodec/errors"
)

type Source = datcodec.Source

// Cursor is a seekable read position over a Source. It is not safe for
// concurrent use; create one cursor per goroutine over a shared Source.
type Cursor struct {
	src  Source
	pos  int64
	size int64
	buf  [8]byte
}

func NewCursor(src Source) *Cursor {
	return &Cursor{src: src, size: src.Size()}
}

func (c *Cursor) Position() int64 { return c.pos }

func (c *Cursor) Size() int64 { return c.size }

func (c *Cursor) Remaining() int64 { return c.size - c.pos }

// SeekTo moves to an absolute position in [0, Size()].
func (c *Cursor) SeekTo(pos int64) error {
	if pos < 0 || pos > c.size {
		return errors.New(errors.PhaseDecode, errors.KindUnexpectedEOF).
			Detail("seek to position %d outside stream of size %d", pos, c.size).
			Value(pos).
			Build()
	}
	c.pos = pos
	return nil
}

func (c *Cursor) Skip(n int64) error {
	return c.SeekTo(c.pos + n)
}

// Read fills p from the current position and advances past it.
func (c *Cursor) Read(p []byte) error {
	if int64(len(p)) > c.size-c.pos {
		return errors.UnexpectedEOF(nil, c.pos, len(p), c.size)
	}
	n, err := c.src.ReadAt(p, c.pos)
	if n < len(p) {
		return errors.New(errors.PhaseDecode, errors.KindUnexpectedEOF).
			Detail("short read at position %d: got %d of %d bytes", c.pos, n, len(p)).
			Cause(err).
			Build()
	}
	c.pos += int64(n)
	return nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.Read(c.buf[:1]); err != nil {
		return 0, err
	}
	return c.buf[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.Read(c.buf[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(c.buf[:2]), nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.Read(c.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(c.buf[:4]), nil
}

func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.Read(c.buf[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(c.buf[:8]), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}
