package transcoder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/datcodec/errors"
)

func statsLayout(t *testing.T, r *Registry) *RecordLayout {
	t.Helper()
	l, err := NewRecordLayout(r,
		Field{Name: "Id", Schema: "ref|string", Pointer: true},
		Field{Name: "Value", Schema: "int"},
		Field{Name: "Flags", Schema: "list|int", Pointer: true},
		Field{Name: "Tag", Schema: "byte"},
	)
	if err != nil {
		t.Fatalf("NewRecordLayout failed: %v", err)
	}
	return l
}

func TestRecordLayout_Offsets(t *testing.T) {
	l := statsLayout(t, NewRegistry())

	if l.Width() != 17 {
		t.Errorf("Width = %d, want 17", l.Width())
	}
	var offsets, widths []int
	for _, f := range l.Fields() {
		offsets = append(offsets, f.Offset)
		widths = append(widths, f.Width)
	}
	if diff := cmp.Diff([]int{0, 4, 8, 16}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 4, 8, 1}, widths); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}

	f, ok := l.Field("Flags")
	if !ok || f.Type.Name() != "list|int" {
		t.Errorf("Field(Flags) = %+v, %v", f, ok)
	}
	if _, ok := l.Field("Missing"); ok {
		t.Error("Field(Missing) reported found")
	}
}

func TestRecordLayout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		kind   errors.Kind
	}{
		{"inline string", []Field{{Name: "Name", Schema: "string"}}, errors.KindInvalidInput},
		{"inline list", []Field{{Name: "Rows", Schema: "list|int"}}, errors.KindInvalidInput},
		{"unknown type", []Field{{Name: "X", Schema: "float"}}, errors.KindUnknownType},
		{"duplicate", []Field{{Name: "A", Schema: "int"}, {Name: "A", Schema: "int"}}, errors.KindInvalidInput},
		{"unnamed", []Field{{Schema: "int"}}, errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecordLayout(NewRegistry(), tt.fields...)
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("expected %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestSession_DecodeRecord(t *testing.T) {
	r := NewRegistry()
	l := statsLayout(t, r)

	row := cat(le32(0), le32(7), le32(2), le32(10), []byte{9})
	heap := cat(EncodeString("Hi"), le32(1), le32(2))
	data := cat(row, heap)

	s := NewSession(r, int64(len(row)))
	c := newTestCursor(data)
	rec, err := s.DecodeRecord(l, c, 0)
	if err != nil {
		t.Fatalf("DecodeRecord failed: %v", err)
	}

	want := map[string]any{
		"Id":    "Hi",
		"Value": int32(7),
		"Flags": []any{int32(1), int32(2)},
		"Tag":   uint8(9),
	}
	if diff := cmp.Diff(want, PlainRecord(rec)); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if c.Position() != 17 {
		t.Errorf("cursor at %d, want 17", c.Position())
	}
	if v, ok := rec.Get("Value"); !ok || v.Offset() != 4-17 {
		t.Errorf("Get(Value) = %v, %v", v, ok)
	}
	if _, ok := rec.Get("Nope"); ok {
		t.Error("Get(Nope) reported found")
	}
	if s.Heap().Len() != 2 {
		t.Errorf("heap Len = %d, want 2", s.Heap().Len())
	}

	s.Reset()
	if s.Heap().Len() != 0 {
		t.Error("Reset did not clear the heap")
	}
}

func TestSession_DecodeRecordErrorPath(t *testing.T) {
	r := NewRegistry()
	l := statsLayout(t, r)
	row := cat(le32(500), le32(7), le32(0), le32(0), []byte{0})

	_, err := NewSession(r, 17).DecodeRecord(l, newTestCursor(row), 0)
	if !errors.IsKind(err, errors.KindUnexpectedEOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if got := errors.KindOf(err); got != errors.KindUnexpectedEOF {
		t.Errorf("KindOf = %s", got)
	}
	var e *errors.Error
	if !asError(err, &e) || len(e.Path) == 0 || e.Path[0] != "Id" {
		t.Errorf("expected path to start with Id, got %v", err)
	}
}

func TestSession_DecodeField(t *testing.T) {
	s := NewSession(nil, 0)
	data := cat(le32(4), EncodeString("x"))

	v, err := s.DecodeField("ref|string", newTestCursor(data), true)
	if err != nil {
		t.Fatalf("DecodeField failed: %v", err)
	}
	if Plain(v) != "x" {
		t.Errorf("got %v", Plain(v))
	}

	if _, err := s.DecodeField("ptr|string", newTestCursor(data), true); !errors.IsKind(err, errors.KindMalformedSchema) {
		t.Errorf("expected malformed schema, got %v", err)
	}
}

func TestSession_Options(t *testing.T) {
	shared := NewHeap()
	a := NewSession(nil, 0, WithHeap(shared))
	b := NewSession(nil, 0, WithHeap(shared), WithHeapPolicy(HeapOverwrite))

	if a.Heap() != shared || b.Heap() != shared {
		t.Error("WithHeap not applied")
	}
	if a.Decoder().Policy() != HeapReuse {
		t.Errorf("default policy = %s, want reuse", a.Decoder().Policy())
	}
	if b.Decoder().Policy() != HeapOverwrite {
		t.Errorf("policy = %s, want overwrite", b.Decoder().Policy())
	}
	if a.Registry() == nil || a.Base() != 0 {
		t.Error("session accessors not initialised")
	}

	data := EncodeString("shared")
	first, err := a.DecodeField("string", newTestCursor(data), false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewSession(nil, 0, WithHeap(shared)).DecodeField("string", newTestCursor(data), false)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("sessions sharing a heap should share instances")
	}
}
