package transcoder

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Plain converts v to plain Go data: scalars keep their Go representation,
// strings become string, lists become []any and pointers are transparent.
func Plain(v Value) any {
	switch vv := v.(type) {
	case *Scalar:
		return vv.Raw
	case *Str:
		return vv.Text
	case *Ptr:
		return Plain(vv.Ref)
	case *List:
		out := make([]any, len(vv.Elements))
		for i, e := range vv.Elements {
			out[i] = Plain(e)
		}
		return out
	default:
		return nil
	}
}

// PlainRecord converts every field of r with Plain.
func PlainRecord(r *Record) map[string]any {
	out := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		out[f.Name] = Plain(f.Value)
	}
	return out
}

// Format writes v as an indented tree annotated with heap offsets.
func Format(w io.Writer, v Value) error {
	var b strings.Builder
	formatValue(&b, v, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatRecord writes one line per field followed by nested values.
func FormatRecord(w io.Writer, r *Record) error {
	var b strings.Builder
	for _, f := range r.Fields {
		b.WriteString(f.Name)
		b.WriteString(": ")
		formatValue(&b, f.Value, 1)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatValue(b *strings.Builder, v Value, depth int) {
	switch vv := v.(type) {
	case *Scalar:
		fmt.Fprintf(b, "%v\n", vv.Raw)
	case *Str:
		fmt.Fprintf(b, "%s @%d\n", strconv.Quote(vv.Text), vv.Offset())
	case *Ptr:
		fmt.Fprintf(b, "-> @%d ", vv.Target)
		formatValue(b, vv.Ref, depth)
	case *List:
		fmt.Fprintf(b, "%s[%d] @%d\n", vv.Elem.Name(), vv.Count, vv.HeapOffset)
		indent := strings.Repeat("  ", depth+1)
		for i, e := range vv.Elements {
			fmt.Fprintf(b, "%s[%d] ", indent, i)
			formatValue(b, e, depth+1)
		}
	default:
		b.WriteString("<nil>\n")
	}
}
