package transcoder

// Value is a decoded datum. The set of implementations is closed: *Scalar,
// *Str, *Ptr and *List.
type Value interface {
	// Offset is the value's position relative to the data-section base.
	Offset() int64
	// Type is the descriptor the value was decoded with.
	Type() Type

	value()
}

// Scalar holds a fixed-width primitive. Raw has the kind's Go representation.
type Scalar struct {
	typ    *PrimitiveType
	Raw    any
	offset int64
	Kind   Kind
}

func (s *Scalar) Offset() int64 { return s.offset }
func (s *Scalar) Type() Type    { return s.typ }
func (s *Scalar) value()        {}

// Str holds a decoded string. Size is the encoded length including the
// terminator and sentinel.
type Str struct {
	typ    *PrimitiveType
	Text   string
	offset int64
	Size   int64
}

func (s *Str) Offset() int64 { return s.offset }
func (s *Str) Type() Type    { return s.typ }
func (s *Str) value()        {}

// Ptr is a resolved indirection. Target is the heap offset it points at and
// Ref the value found there.
type Ptr struct {
	typ    *PointerType
	Ref    Value
	offset int64
	Target int64
}

func (p *Ptr) Offset() int64 { return p.offset }
func (p *Ptr) Type() Type    { return p.typ }
func (p *Ptr) value()        {}

// List is a decoded sequence. HeapOffset is where its payload starts; it is
// also the list's Offset and heap key.
type List struct {
	typ        *ListType
	Elem       Type
	Elements   []Value
	offset     int64
	HeapOffset int64
	Count      int
}

func (l *List) Offset() int64 { return l.offset }
func (l *List) Type() Type    { return l.typ }
func (l *List) value()        {}
