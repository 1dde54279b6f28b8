package transcoder

import (
	"slices"
)

// HeapPolicy decides what happens when a string or list is decoded at a heap
// offset that already holds a value.
type HeapPolicy uint8

const (
	// HeapReuse returns the stored value when it is compatible with the
	// requested type, so shared heap data decodes to one instance. This
	// departs from the legacy last-write-wins behaviour, which HeapOverwrite
	// keeps.
	HeapReuse HeapPolicy = iota
	// HeapOverwrite always decodes from the stream and replaces the entry
	// (last write wins).
	HeapOverwrite
)

func (p HeapPolicy) String() string {
	switch p {
	case HeapReuse:
		return "reuse"
	case HeapOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseHeapPolicy maps "reuse" or "overwrite" to a policy.
func ParseHeapPolicy(s string) (HeapPolicy, bool) {
	switch s {
	case "reuse":
		return HeapReuse, true
	case "overwrite":
		return HeapOverwrite, true
	default:
		return 0, false
	}
}

// Heap maps heap offsets to the strings and lists decoded there during one
// session. It is not safe for concurrent use.
type Heap struct {
	entries map[int64]Value
}

func NewHeap() *Heap {
	return &Heap{entries: make(map[int64]Value)}
}

func (h *Heap) Get(offset int64) (Value, bool) {
	v, ok := h.entries[offset]
	return v, ok
}

// Put stores v at offset, replacing any previous entry. Only *Str and *List
// values are kept; other values are ignored.
func (h *Heap) Put(offset int64, v Value) {
	switch v.(type) {
	case *Str, *List:
		h.entries[offset] = v
	}
}

func (h *Heap) Len() int {
	return len(h.entries)
}

func (h *Heap) Reset() {
	clear(h.entries)
}

// Offsets returns the occupied offsets in ascending order.
func (h *Heap) Offsets() []int64 {
	out := make([]int64, 0, len(h.entries))
	for off := range h.entries {
		out = append(out, off)
	}
	slices.Sort(out)
	return out
}
