package types

type Kind uint8

const (
	KindBool Kind = iota
	KindByte
	KindShort
	KindInt
	KindUint
	KindLong
	KindUlong
	KindString
)

var kindNames = [...]string{
	KindBool:   "bool",
	KindByte:   "byte",
	KindShort:  "short",
	KindInt:    "int",
	KindUint:   "uint",
	KindLong:   "long",
	KindUlong:  "ulong",
	KindString: "string",
}

var kindWidths = [...]int{
	KindBool:   1,
	KindByte:   1,
	KindShort:  2,
	KindInt:    4,
	KindUint:   4,
	KindLong:   8,
	KindUlong:  8,
	KindString: VariableWidth,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k names one of the registered primitives.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// Width is the encoded size in bytes, VariableWidth for strings and 0 for unknown kinds.
func (k Kind) Width() int {
	if int(k) < len(kindWidths) {
		return kindWidths[k]
	}
	return 0
}

// Kinds lists every primitive kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind maps a primitive name to its kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}
