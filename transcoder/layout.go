package transcoder

import (
	"github.com/wippyai/datcodec/errors"
	"github.com/wippyai/datcodec/transcoder/internal/layout"
)

// Field describes one column of a row. Pointer marks fields whose record
// slot holds an offset into the heap instead of the data.
type Field struct {
	Name    string
	Schema  string
	Pointer bool
}

// LayoutField is a Field resolved against a registry and placed in the row.
type LayoutField struct {
	Type Type
	Field
	Offset int
	Width  int
}

// RecordLayout is the ordered, resolved field list of one table.
type RecordLayout struct {
	index  map[string]int
	fields []LayoutField
	width  int
}

// NewRecordLayout resolves every field schema and lays the fields out
// back to back.
func NewRecordLayout(reg *Registry, fields ...Field) (*RecordLayout, error) {
	slots := make([]layout.Slot, len(fields))
	resolved := make([]Type, len(fields))
	index := make(map[string]int, len(fields))

	for i, f := range fields {
		if f.Name == "" {
			return nil, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Detail("field %d has no name", i).
				Build()
		}
		if _, dup := index[f.Name]; dup {
			return nil, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(f.Name).
				Detail("duplicate field name").
				Build()
		}
		index[f.Name] = i

		t, err := reg.Resolve(f.Schema)
		if err != nil {
			return nil, errors.WithPath(err, f.Name)
		}
		resolved[i] = t
		slots[i] = layout.Slot{Type: t, Name: f.Name, Pointer: f.Pointer}
	}

	info, err := layout.NewCalculator().Record(slots)
	if err != nil {
		return nil, err
	}

	l := &RecordLayout{
		index:  index,
		fields: make([]LayoutField, len(fields)),
		width:  info.Size,
	}
	for i, f := range fields {
		l.fields[i] = LayoutField{
			Field:  f,
			Type:   resolved[i],
			Offset: info.Offsets[i],
			Width:  info.Widths[i],
		}
	}
	return l, nil
}

// Width is the row width in bytes.
func (l *RecordLayout) Width() int { return l.width }

func (l *RecordLayout) Len() int { return len(l.fields) }

// Fields returns the resolved fields in row order. The slice must not be modified.
func (l *RecordLayout) Fields() []LayoutField { return l.fields }

// Field returns the field named name.
func (l *RecordLayout) Field(name string) (LayoutField, bool) {
	i, ok := l.index[name]
	if !ok {
		return LayoutField{}, false
	}
	return l.fields[i], true
}
