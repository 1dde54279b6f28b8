package types

const (
	// VariableWidth marks types without a fixed inline footprint.
	VariableWidth = -1

	// OffsetSlotWidth is the size of a heap offset stored in place of data.
	OffsetSlotWidth = 4

	// ListSlotWidth is the size of a list header: int32 count then int32 offset.
	ListSlotWidth = 8
)

// Type is a parsed schema descriptor. The set of implementations is closed:
// *Primitive, *Pointer and *List.
type Type interface {
	// Name is the primitive name or the full schema text for composite types.
	Name() string
	// FixedWidth is the inline width in the record region, or VariableWidth.
	FixedWidth() int
	// PointerAlignment is the slot width used when the type is a pointer target.
	PointerAlignment() int

	sealed()
}

type Primitive struct {
	kind  Kind
	width int
	align int
}

// NewPrimitive builds the descriptor for a primitive kind.
func NewPrimitive(k Kind) *Primitive {
	return &Primitive{kind: k, width: k.Width(), align: OffsetSlotWidth}
}

func (p *Primitive) Name() string          { return p.kind.String() }
func (p *Primitive) FixedWidth() int       { return p.width }
func (p *Primitive) PointerAlignment() int { return p.align }
func (p *Primitive) Kind() Kind            { return p.kind }
func (p *Primitive) sealed()               {}

type Pointer struct {
	ref   Type
	name  string
	width int
}

// NewPointer builds a pointer to ref. Its inline width is the referenced
// type's pointer alignment.
func NewPointer(name string, ref Type) *Pointer {
	return &Pointer{name: name, ref: ref, width: ref.PointerAlignment()}
}

func (p *Pointer) Name() string          { return p.name }
func (p *Pointer) FixedWidth() int       { return p.width }
func (p *Pointer) PointerAlignment() int { return OffsetSlotWidth }
func (p *Pointer) Ref() Type             { return p.ref }
func (p *Pointer) sealed()               {}

type List struct {
	elem Type
	name string
}

// NewList builds a list of elem. Lists are always variable width inline.
func NewList(name string, elem Type) *List {
	return &List{name: name, elem: elem}
}

func (l *List) Name() string          { return l.name }
func (l *List) FixedWidth() int       { return VariableWidth }
func (l *List) PointerAlignment() int { return ListSlotWidth }
func (l *List) Elem() Type            { return l.elem }
func (l *List) sealed()               {}

// IsIndirect reports whether t is stored as an offset slot rather than as data:
// pointers hold a heap offset, lists hold a count and a heap offset.
func IsIndirect(t Type) bool {
	switch t.(type) {
	case *Pointer, *List:
		return true
	default:
		return false
	}
}

// Stride is the distance between consecutive elements of type t packed in a
// list payload, or VariableWidth when elements must be read sequentially.
func Stride(t Type) int {
	if IsIndirect(t) {
		return t.PointerAlignment()
	}
	return t.FixedWidth()
}

// IsString reports whether t is the string primitive.
func IsString(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.kind == KindString
}
