package transcoder

import (
	"encoding/binary"
	"io"

	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/datcodec/errors"
	"github.com/wippyai/datcodec/transcoder/internal/wire"
)

// utf16le is the string encoding. Byte order marks are data, not markers.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

type primitiveCodec struct {
	read   func(c *Cursor) (any, error)
	encode func(v any) ([]byte, bool)
}

// codecs is the primitive codec registry. The Go representation of each kind
// is fixed: bool, uint8, int16, int32, uint32, int64, uint64, string.
var codecs = map[Kind]primitiveCodec{
	KindBool: {
		read: func(c *Cursor) (any, error) {
			v, err := c.ReadU8()
			return v != 0, err
		},
		encode: func(v any) ([]byte, bool) {
			b, ok := v.(bool)
			if !ok {
				return nil, false
			}
			if b {
				return []byte{1}, true
			}
			return []byte{0}, true
		},
	},
	KindByte: {
		read: func(c *Cursor) (any, error) {
			return c.ReadU8()
		},
		encode: func(v any) ([]byte, bool) {
			b, ok := v.(uint8)
			return []byte{b}, ok
		},
	},
	KindShort: {
		read: func(c *Cursor) (any, error) {
			v, err := c.ReadU16()
			return int16(v), err
		},
		encode: func(v any) ([]byte, bool) {
			s, ok := v.(int16)
			return binary.LittleEndian.AppendUint16(nil, uint16(s)), ok
		},
	},
	KindInt: {
		read: func(c *Cursor) (any, error) {
			return c.ReadI32()
		},
		encode: func(v any) ([]byte, bool) {
			i, ok := v.(int32)
			return binary.LittleEndian.AppendUint32(nil, uint32(i)), ok
		},
	},
	KindUint: {
		read: func(c *Cursor) (any, error) {
			return c.ReadU32()
		},
		encode: func(v any) ([]byte, bool) {
			u, ok := v.(uint32)
			return binary.LittleEndian.AppendUint32(nil, u), ok
		},
	},
	KindLong: {
		read: func(c *Cursor) (any, error) {
			v, err := c.ReadU64()
			return int64(v), err
		},
		encode: func(v any) ([]byte, bool) {
			l, ok := v.(int64)
			return binary.LittleEndian.AppendUint64(nil, uint64(l)), ok
		},
	},
	KindUlong: {
		read: func(c *Cursor) (any, error) {
			return c.ReadU64()
		},
		encode: func(v any) ([]byte, bool) {
			u, ok := v.(uint64)
			return binary.LittleEndian.AppendUint64(nil, u), ok
		},
	},
	KindString: {
		read: func(c *Cursor) (any, error) {
			s, _, err := readString(c)
			return s, err
		},
		encode: func(v any) ([]byte, bool) {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			return EncodeString(s), true
		},
	},
}

// ReadPrimitive decodes one value of kind k at the cursor.
func ReadPrimitive(k Kind, c *Cursor) (any, error) {
	codec, ok := codecs[k]
	if !ok {
		return nil, errors.UnsupportedPrimitive(errors.PhaseDecode, k.String())
	}
	return codec.read(c)
}

// WritePrimitive encodes v as kind k. v must have the kind's Go representation.
func WritePrimitive(w io.Writer, k Kind, v any) error {
	codec, ok := codecs[k]
	if !ok {
		return errors.UnsupportedPrimitive(errors.PhaseEncode, k.String())
	}
	data, ok := codec.encode(v)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, nil, wire.TypeName(v), k.String())
	}
	_, err := w.Write(data)
	return err
}

// EncodeString returns the wire form of s: UTF-16LE code units, a zero unit
// and the int(0) sentinel.
func EncodeString(s string) []byte {
	// invalid UTF-8 is encoded as U+FFFD rather than reported
	units, _ := utf16le.NewEncoder().Bytes([]byte(s))
	out := make([]byte, 0, len(units)+6)
	out = append(out, units...)
	return append(out, 0, 0, 0, 0, 0, 0)
}

// readString decodes a terminated string and returns it with its encoded size.
func readString(c *Cursor) (string, int64, error) {
	start := c.Position()
	bufp := getUnitBuf()
	defer putUnitBuf(bufp)
	buf := *bufp

	for {
		u, err := c.ReadU16()
		if err != nil {
			return "", 0, err
		}
		if u == 0 {
			break
		}
		if len(buf)/2 >= wire.MaxStringUnits {
			return "", 0, errors.Overflow(errors.PhaseDecode, nil, len(buf)/2, "max string length")
		}
		buf = append(buf, byte(u), byte(u>>8))
	}
	*bufp = buf

	sentinelAt := c.Position()
	sentinel, err := c.ReadU32()
	if err != nil {
		return "", 0, err
	}
	if sentinel != 0 {
		return "", 0, errors.BrokenStringTerminator(nil, sentinelAt, sentinel)
	}

	text, err := utf16le.NewDecoder().Bytes(buf)
	if err != nil {
		return "", 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Schema(KindString.String()).
			Detail("decode UTF-16 at position %d", start).
			Cause(err).
			Build()
	}
	return string(text), c.Position() - start, nil
}
