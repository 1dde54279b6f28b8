package transcoder

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/datcodec/errors"
	"github.com/wippyai/datcodec/transcoder/internal/types"
	"github.com/wippyai/datcodec/transcoder/internal/wire"
)

// Decoder turns bytes at a cursor into Values. Offsets read from the stream
// are relative to base. After Decode returns, the cursor sits just past the
// bytes the value occupies at the entry position; data reached through an
// offset does not move it.
type Decoder struct {
	heap   *Heap
	base   int64
	policy HeapPolicy
}

func NewDecoder(heap *Heap, base int64, policy HeapPolicy) *Decoder {
	if heap == nil {
		heap = NewHeap()
	}
	return &Decoder{heap: heap, base: base, policy: policy}
}

func (d *Decoder) Heap() *Heap { return d.heap }

func (d *Decoder) Base() int64 { return d.base }

func (d *Decoder) Policy() HeapPolicy { return d.policy }

// Decode reads one value of type t. atPointer reports whether the cursor is
// at an offset slot standing in for the data rather than at the data itself.
func (d *Decoder) Decode(t Type, c *Cursor, atPointer bool) (Value, error) {
	return d.decode(t, c, atPointer, nil)
}

func (d *Decoder) decode(t Type, c *Cursor, atPointer bool, path []string) (Value, error) {
	switch tt := t.(type) {
	case *ListType:
		return d.decodeList(tt, c, atPointer, path)
	case *PointerType:
		return d.decodePointer(tt, c, atPointer, path)
	case *PrimitiveType:
		return d.decodePrimitive(tt, c, atPointer, path)
	case nil:
		return nil, errors.InvalidInput(errors.PhaseDecode, "nil type")
	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindUnsupportedPrimitive).
			Path(path...).
			Schema(t.Name()).
			Detail("unsupported descriptor %T", t).
			Build()
	}
}

func (d *Decoder) decodeList(t *ListType, c *Cursor, atPointer bool, path []string) (Value, error) {
	if !atPointer {
		return nil, errors.ListNotPointed(path, t.Name())
	}

	count, err := c.ReadI32()
	if err != nil {
		return nil, errors.WithPath(err, path...)
	}
	offset, err := d.readOffset(c, path)
	if err != nil {
		return nil, err
	}
	resume := c.Position()

	if count < 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(path...).
			Schema(t.Name()).
			Detail("negative list count %d", count).
			Value(count).
			Build()
	}
	if count > wire.MaxListLength {
		return nil, errors.Overflow(errors.PhaseDecode, path, count, "max list length")
	}

	// Lists are keyed by payload offset; a list|string shares it with its
	// first element, hence the type check.
	if d.policy == HeapReuse {
		cached, _ := d.heap.Get(offset)
		if prev, ok := cached.(*List); ok && prev.Elem == t.Elem() && prev.Count == int(count) {
			Logger().Debug("reusing list",
				zap.Int64("offset", offset),
				zap.String("schema", t.Name()))
			return prev, nil
		}
	}

	elem := t.Elem()
	elements := make([]Value, count)
	if count > 0 {
		start, ok := wire.SafeAddInt64(d.base, offset)
		if !ok {
			return nil, errors.Overflow(errors.PhaseDecode, path, offset, "heap offset")
		}
		if stride := types.Stride(elem); stride > 0 {
			need, ok := wire.SafeMulInt64(int64(count), int64(stride))
			if !ok {
				return nil, errors.Overflow(errors.PhaseDecode, path, count, "list payload size")
			}
			if need > c.Size()-start {
				return nil, errors.UnexpectedEOF(path, start, int(need), c.Size())
			}
		}
		if err := c.SeekTo(start); err != nil {
			return nil, errors.WithPath(err, path...)
		}

		elemAtPointer := types.IsIndirect(elem)
		for i := range elements {
			v, err := d.decode(elem, c, elemAtPointer, childPath(path, "["+strconv.Itoa(i)+"]"))
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}

		if err := c.SeekTo(resume); err != nil {
			return nil, errors.WithPath(err, path...)
		}
	}

	list := &List{
		typ:        t,
		Elem:       elem,
		Elements:   elements,
		offset:     offset,
		HeapOffset: offset,
		Count:      int(count),
	}
	d.store(offset, list)
	return list, nil
}

func (d *Decoder) decodePointer(t *PointerType, c *Cursor, atPointer bool, path []string) (Value, error) {
	offset := c.Position() - d.base
	ref := t.Ref()
	refPath := childPath(path, "*")

	if !atPointer {
		v, err := d.decode(ref, c, types.IsIndirect(ref), refPath)
		if err != nil {
			return nil, err
		}
		return &Ptr{typ: t, Ref: v, offset: offset, Target: offset}, nil
	}

	target, err := d.readOffset(c, path)
	if err != nil {
		return nil, err
	}
	resume := c.Position()
	if err := c.SeekTo(d.base + target); err != nil {
		return nil, errors.WithPath(err, path...)
	}

	v, err := d.decode(ref, c, types.IsIndirect(ref), refPath)
	if err != nil {
		return nil, err
	}

	if err := c.SeekTo(resume); err != nil {
		return nil, errors.WithPath(err, path...)
	}
	return &Ptr{typ: t, Ref: v, offset: target, Target: target}, nil
}

func (d *Decoder) decodePrimitive(t *PrimitiveType, c *Cursor, atPointer bool, path []string) (Value, error) {
	var resume int64 = -1
	if atPointer {
		target, err := d.readOffset(c, path)
		if err != nil {
			return nil, err
		}
		resume = c.Position()
		if err := c.SeekTo(d.base + target); err != nil {
			return nil, errors.WithPath(err, path...)
		}
	}

	offset := c.Position() - d.base
	var v Value
	var err error
	if t.Kind() == KindString {
		v, err = d.decodeString(t, c, offset, path)
	} else {
		var raw any
		raw, err = ReadPrimitive(t.Kind(), c)
		v = &Scalar{typ: t, Raw: raw, offset: offset, Kind: t.Kind()}
	}
	if err != nil {
		return nil, errors.WithPath(err, path...)
	}

	if resume >= 0 {
		if err := c.SeekTo(resume); err != nil {
			return nil, errors.WithPath(err, path...)
		}
	}
	return v, nil
}

func (d *Decoder) decodeString(t *PrimitiveType, c *Cursor, offset int64, path []string) (Value, error) {
	if d.policy == HeapReuse {
		cached, _ := d.heap.Get(offset)
		if prev, ok := cached.(*Str); ok {
			if err := c.Skip(prev.Size); err != nil {
				return nil, err
			}
			Logger().Debug("reusing string",
				zap.Int64("offset", offset),
				zap.Strings("path", path))
			return prev, nil
		}
	}

	text, size, err := readString(c)
	if err != nil {
		return nil, err
	}
	s := &Str{typ: t, Text: text, offset: offset, Size: size}
	d.store(offset, s)
	return s, nil
}

// readOffset reads a heap offset slot.
func (d *Decoder) readOffset(c *Cursor, path []string) (int64, error) {
	at := c.Position()
	off, err := c.ReadI32()
	if err != nil {
		return 0, errors.WithPath(err, path...)
	}
	if off < 0 {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(path...).
			Detail("negative heap offset %d at position %d", off, at).
			Value(off).
			Build()
	}
	return int64(off), nil
}

func (d *Decoder) store(offset int64, v Value) {
	if _, ok := d.heap.Get(offset); ok {
		Logger().Debug("overwriting heap entry",
			zap.Int64("offset", offset),
			zap.String("schema", v.Type().Name()))
	}
	d.heap.Put(offset, v)
}

func childPath(path []string, seg string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = seg
	return out
}
