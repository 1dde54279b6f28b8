package dat

import (
	"bytes"
	"encoding/binary"
	"strconv"

	"go.uber.org/zap"

	datcodec "github.com/wippyai/datcodec"
	"github.com/wippyai/datcodec/errors"
	"github.com/wippyai/datcodec/transcoder"
)

const (
	headerSize = 4
	scanChunk  = 64 << 10
)

// Magic marks the start of the data section. Heap offsets are relative to
// its first byte.
var Magic = [8]byte{0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB}

// Table is an opened .dat container.
type Table struct {
	src      datcodec.Source
	base     int64
	rowWidth int
	rowCount uint32
}

// Open reads the row count and locates the data section of src.
func Open(src datcodec.Source) (*Table, error) {
	size := src.Size()
	if size < headerSize {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnexpectedEOF).
			Detail("file of %d bytes has no row count", size).
			Build()
	}

	var hdr [headerSize]byte
	if _, err := src.ReadAt(hdr[:], 0); err != nil {
		return nil, errors.Load("read row count", err)
	}
	rowCount := binary.LittleEndian.Uint32(hdr[:])

	base, err := findMagic(src, headerSize)
	if err != nil {
		return nil, err
	}
	if base < 0 {
		return nil, errors.NotFound(errors.PhaseLoad, "data section marker", "0xBB x 8")
	}

	rowBytes := base - headerSize
	var rowWidth int
	switch {
	case rowCount == 0 && rowBytes != 0:
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Detail("%d bytes of rows in a table without rows", rowBytes).
			Build()
	case rowCount > 0:
		if rowBytes%int64(rowCount) != 0 {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Detail("%d bytes of rows do not divide into %d rows", rowBytes, rowCount).
				Build()
		}
		rowWidth = int(rowBytes / int64(rowCount))
	}

	Logger().Debug("opened table",
		zap.Uint32("rows", rowCount),
		zap.Int("row_width", rowWidth),
		zap.Int64("data_section", base))

	return &Table{src: src, base: base, rowWidth: rowWidth, rowCount: rowCount}, nil
}

// findMagic returns the position of the first Magic at or after from, or -1.
func findMagic(src datcodec.Source, from int64) (int64, error) {
	size := src.Size()
	buf := make([]byte, scanChunk+len(Magic)-1)
	for pos := from; pos < size; pos += scanChunk {
		n := min(int64(len(buf)), size-pos)
		chunk := buf[:n]
		if read, err := src.ReadAt(chunk, pos); int64(read) < n {
			return 0, errors.Load("scan for data section", err)
		}
		if i := bytes.Index(chunk, Magic[:]); i >= 0 {
			return pos + int64(i), nil
		}
	}
	return -1, nil
}

func (t *Table) Source() datcodec.Source { return t.src }

func (t *Table) RowCount() int { return int(t.rowCount) }

// RowWidth is the byte width of one row.
func (t *Table) RowWidth() int { return t.rowWidth }

// DataSectionBase is the absolute position of the magic, heap offset 0.
func (t *Table) DataSectionBase() int64 { return t.base }

// HeapSize is the number of bytes from the base to the end of the file.
func (t *Table) HeapSize() int64 { return t.src.Size() - t.base }

// RowStart returns the absolute position of row i.
func (t *Table) RowStart(i int) (int64, error) {
	if i < 0 || i >= int(t.rowCount) {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Detail("row %d out of range [0, %d)", i, t.rowCount).
			Value(i).
			Build()
	}
	return headerSize + int64(i)*int64(t.rowWidth), nil
}

// Session starts a decode session whose heap offsets resolve against this table.
func (t *Table) Session(reg *transcoder.Registry, opts ...transcoder.Option) *transcoder.Session {
	return transcoder.NewSession(reg, t.base, opts...)
}

// CheckLayout reports whether l matches the row width of the table.
func (t *Table) CheckLayout(l *transcoder.RecordLayout) error {
	if t.rowCount > 0 && l.Width() != t.rowWidth {
		Logger().Debug("row width mismatch",
			zap.Int("layout", l.Width()),
			zap.Int("table", t.rowWidth))
		return errors.New(errors.PhaseValidate, errors.KindInvalidData).
			Detail("layout is %d bytes wide, rows are %d", l.Width(), t.rowWidth).
			Build()
	}
	return nil
}

// Row decodes row i with layout l.
func (t *Table) Row(s *transcoder.Session, l *transcoder.RecordLayout, i int) (*transcoder.Record, error) {
	if err := t.CheckLayout(l); err != nil {
		return nil, err
	}
	start, err := t.RowStart(i)
	if err != nil {
		return nil, err
	}
	rec, err := s.DecodeRecord(l, transcoder.NewCursor(t.src), start)
	if err != nil {
		return nil, errors.WithPath(err, rowSegment(i))
	}
	return rec, nil
}

// Rows decodes every row in order and calls fn for each. Iteration stops at
// the first error, including one returned by fn.
func (t *Table) Rows(s *transcoder.Session, l *transcoder.RecordLayout, fn func(i int, rec *transcoder.Record) error) error {
	if err := t.CheckLayout(l); err != nil {
		return err
	}
	c := transcoder.NewCursor(t.src)
	for i := 0; i < int(t.rowCount); i++ {
		rec, err := s.DecodeRecord(l, c, headerSize+int64(i)*int64(t.rowWidth))
		if err != nil {
			return errors.WithPath(err, rowSegment(i))
		}
		if err := fn(i, rec); err != nil {
			return err
		}
	}
	return nil
}

// Build assembles a container from equally sized rows and the bytes that
// follow Magic. Heap offset 0 is the first byte of Magic, so the first byte
// of heap sits at offset 8.
func Build(rows [][]byte, heap []byte) []byte {
	size := headerSize + len(Magic) + len(heap)
	for _, r := range rows {
		size += len(r)
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(rows)))
	for _, r := range rows {
		out = append(out, r...)
	}
	out = append(out, Magic[:]...)
	return append(out, heap...)
}

func rowSegment(i int) string {
	return "row[" + strconv.Itoa(i) + "]"
}
