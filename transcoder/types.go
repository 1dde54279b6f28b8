package transcoder

import (
	"github.com/wippyai/datcodec/transcoder/internal/types"
)

type Kind = types.Kind

const (
	KindBool   = types.KindBool
	KindByte   = types.KindByte
	KindShort  = types.KindShort
	KindInt    = types.KindInt
	KindUint   = types.KindUint
	KindLong   = types.KindLong
	KindUlong  = types.KindUlong
	KindString = types.KindString
)

// VariableWidth is the FixedWidth of strings and lists.
const VariableWidth = types.VariableWidth

type Type = types.Type
type PrimitiveType = types.Primitive
type PointerType = types.Pointer
type ListType = types.List
