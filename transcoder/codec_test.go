package transcoder

import (
	"bytes"
	"math"
	"testing"

	"github.com/wippyai/datcodec/errors"
)

func TestPrimitive_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  Kind
		width int
	}{
		{"bool true", true, KindBool, 1},
		{"bool false", false, KindBool, 1},
		{"byte max", uint8(math.MaxUint8), KindByte, 1},
		{"short min", int16(math.MinInt16), KindShort, 2},
		{"short max", int16(math.MaxInt16), KindShort, 2},
		{"int min", int32(math.MinInt32), KindInt, 4},
		{"int max", int32(math.MaxInt32), KindInt, 4},
		{"uint max", uint32(math.MaxUint32), KindUint, 4},
		{"long min", int64(math.MinInt64), KindLong, 8},
		{"long max", int64(math.MaxInt64), KindLong, 8},
		{"ulong max", uint64(math.MaxUint64), KindUlong, 8},
		{"string", "Résumé ✓", KindString, 8*2 + 6},
		{"empty string", "", KindString, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePrimitive(&buf, tt.kind, tt.value); err != nil {
				t.Fatalf("WritePrimitive failed: %v", err)
			}
			if buf.Len() != tt.width {
				t.Errorf("encoded %d bytes, want %d", buf.Len(), tt.width)
			}

			c := newTestCursor(buf.Bytes())
			got, err := ReadPrimitive(tt.kind, c)
			if err != nil {
				t.Fatalf("ReadPrimitive failed: %v", err)
			}
			if got != tt.value {
				t.Errorf("got %#v, want %#v", got, tt.value)
			}
			if c.Position() != int64(tt.width) {
				t.Errorf("cursor at %d, want %d", c.Position(), tt.width)
			}
		})
	}
}

func TestPrimitive_BoolNonZero(t *testing.T) {
	got, err := ReadPrimitive(KindBool, newTestCursor([]byte{0x7F}))
	if err != nil {
		t.Fatalf("ReadPrimitive failed: %v", err)
	}
	if got != true {
		t.Errorf("got %v, want true", got)
	}
}

func TestEncodeString_Bytes(t *testing.T) {
	want := []byte{0x41, 0x00, 0x42, 0x00, 0x43, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	got := EncodeString("ABC")
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeString(ABC) = % x, want % x", got, want)
	}
}

func TestReadString_SurrogatePair(t *testing.T) {
	// U+1F600 as a surrogate pair
	data := []byte{0x3D, 0xD8, 0x00, 0xDE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	s, size, err := readString(newTestCursor(data))
	if err != nil {
		t.Fatalf("readString failed: %v", err)
	}
	if s != "\U0001F600" {
		t.Errorf("got %q", s)
	}
	if size != int64(len(data)) {
		t.Errorf("size = %d, want %d", size, len(data))
	}
}

func TestReadString_BrokenSentinel(t *testing.T) {
	data := []byte{0x41, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}
	_, _, err := readString(newTestCursor(data))
	if !errors.IsKind(err, errors.KindBrokenStringTerminator) {
		t.Fatalf("expected broken terminator error, got %v", err)
	}
}

func TestReadString_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"no terminator", []byte{0x41, 0x00, 0x42}},
		{"no sentinel", []byte{0x41, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readString(newTestCursor(tt.data))
			if !errors.IsKind(err, errors.KindUnexpectedEOF) {
				t.Errorf("expected EOF error, got %v", err)
			}
		})
	}
}

func TestPrimitive_Unsupported(t *testing.T) {
	_, err := ReadPrimitive(Kind(99), newTestCursor([]byte{0, 0, 0, 0}))
	if !errors.IsKind(err, errors.KindUnsupportedPrimitive) {
		t.Errorf("read: expected unsupported primitive, got %v", err)
	}

	err = WritePrimitive(&bytes.Buffer{}, Kind(99), 1)
	if !errors.IsKind(err, errors.KindUnsupportedPrimitive) {
		t.Errorf("write: expected unsupported primitive, got %v", err)
	}
}

func TestWritePrimitive_TypeMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WritePrimitive(&buf, KindInt, int64(5))
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on error", buf.Len())
	}
}
