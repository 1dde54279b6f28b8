package transcoder

import (
	"fmt"
	"strings"
	"unicode"

	"go.bytecodealliance.org/wit"
)

// WITType maps a descriptor to the WIT type a component would use to carry
// the decoded value. Pointers are transparent.
func WITType(t Type) wit.Type {
	switch tt := t.(type) {
	case *PrimitiveType:
		switch tt.Kind() {
		case KindBool:
			return wit.Bool{}
		case KindByte:
			return wit.U8{}
		case KindShort:
			return wit.S16{}
		case KindInt:
			return wit.S32{}
		case KindUint:
			return wit.U32{}
		case KindLong:
			return wit.S64{}
		case KindUlong:
			return wit.U64{}
		case KindString:
			return wit.String{}
		}
	case *PointerType:
		return WITType(tt.Ref())
	case *ListType:
		return &wit.TypeDef{Kind: &wit.List{Type: WITType(tt.Elem())}}
	}
	return nil
}

// WITRecord describes a row of l as a named WIT record. Field names are
// converted to kebab case.
func (l *RecordLayout) WITRecord(name string) *wit.TypeDef {
	fields := make([]wit.Field, len(l.fields))
	for i, f := range l.fields {
		fields[i] = wit.Field{Name: toKebabCase(f.Name), Type: WITType(f.Type)}
	}
	recName := toKebabCase(name)
	return &wit.TypeDef{
		Name: &recName,
		Kind: &wit.Record{Fields: fields},
	}
}

// WITString renders t in WIT syntax. Named records are rendered as their
// full definition.
func WITString(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S16:
		return "s16"
	case wit.S32:
		return "s32"
	case wit.U32:
		return "u32"
	case wit.S64:
		return "s64"
	case wit.U64:
		return "u64"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		switch k := v.Kind.(type) {
		case *wit.List:
			return "list<" + WITString(k.Type) + ">"
		case *wit.Record:
			name := "record"
			if v.Name != nil {
				name = *v.Name
			}
			var b strings.Builder
			b.WriteString("record ")
			b.WriteString(name)
			b.WriteString(" {\n")
			for _, f := range k.Fields {
				fmt.Fprintf(&b, "    %s: %s,\n", f.Name, WITString(f.Type))
			}
			b.WriteString("}")
			return b.String()
		}
		if v.Name != nil {
			return *v.Name
		}
		return "typedef"
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", t)
}

func toKebabCase(s string) string {
	var result strings.Builder
	var prev rune
	for i, r := range s {
		switch {
		case r == '_' || r == ' ':
			if i > 0 {
				result.WriteByte('-')
			}
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				result.WriteByte('-')
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(r)
		}
		prev = r
	}
	return result.String()
}
