// Package transcoder decodes schema-described values from a .dat byte stream.
//
// A row of a table lives in a fixed-width record region. Strings and list
// payloads live in a heap region addressed by offsets relative to the
// data-section base:
//
//	┌───────────┬──────────────────────────┬──────────┬─────────────────┐
//	│ row count │ rows (fixed width each)  │ 0xBB x 8 │ heap ...        │
//	└───────────┴──────────────────────────┴──────────┴─────────────────┘
//	                                        ^ base (heap offset 0)
//
// # Schema Grammar
//
//	schema   = modifier "|" schema | base
//	modifier = "ref" | "list"
//	base     = primitive | alias
//
// Primitives and their encodings (little-endian):
//
//	Type      Width   Go type
//	────────────────────────────
//	bool      1       bool
//	byte      1       uint8
//	short     2       int16
//	int       4       int32
//	uint      4       uint32
//	long      8       int64
//	ulong     8       uint64
//	string    var     string  (UTF-16LE, 00 00 terminator, int(0) sentinel)
//
// # Slots
//
//	ref|T     4-byte heap offset when stored by pointer
//	list|T    int32 count then int32 heap offset; only reachable by pointer
//
// Inside a pointer target or list payload, nested pointers and lists are
// again offset slots, so "ref|list|ref|string" reads an offset, a list
// header at that offset, and one offset per element.
//
// # Key Types
//
//	Registry      - Parses and interns schema strings
//	Decoder       - Reads values at a cursor
//	Heap          - Offset to value map shared by one session
//	Session       - Registry + heap + base, decodes fields and rows
//	RecordLayout  - Resolved field list with slot offsets
//
// # Heap Policy
//
// Strings and lists are recorded in the heap under their offset; a list's
// offset is that of its payload. With HeapReuse (the default) a later decode
// of the same offset returns the stored instance. HeapOverwrite keeps the
// legacy behaviour: it decodes again and replaces the entry.
//
// # Thread Safety
//
// Registry is safe for concurrent use. Cursor, Decoder, Heap and Session
// are not; use one session per goroutine over a shared Source.
package transcoder
