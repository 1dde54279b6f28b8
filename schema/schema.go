package schema

import (
	"bytes"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/datcodec/errors"
	"github.com/wippyai/datcodec/transcoder"
)

// FieldSpec is one field entry of a table.
type FieldSpec struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Pointer bool   `yaml:"pointer"`
}

// TableSpec is the ordered field list of one table.
type TableSpec struct {
	Fields []FieldSpec `yaml:"fields"`
}

// File is a parsed layout file.
type File struct {
	Aliases map[string]string    `yaml:"aliases"`
	Tables  map[string]TableSpec `yaml:"tables"`
}

// Load parses a layout file from r.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidInput(errors.PhaseLoad, "empty layout file")
		}
		return nil, errors.Load("parse layout file", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile parses the layout file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}
	f, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, path)
	}
	return f, nil
}

func (f *File) validate() error {
	for name, t := range f.Tables {
		if len(t.Fields) == 0 {
			return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(name).
				Detail("table has no fields").
				Build()
		}
		for i, fs := range t.Fields {
			if fs.Name == "" || fs.Type == "" {
				return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
					Path(name).
					Detail("field %d needs both name and type", i).
					Build()
			}
		}
	}
	return nil
}

// Registry returns a new registry with the file's aliases defined.
func (f *File) Registry() (*transcoder.Registry, error) {
	reg := transcoder.NewRegistry()
	if err := f.DefineAliases(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// DefineAliases registers the file's aliases on reg.
func (f *File) DefineAliases(reg *transcoder.Registry) error {
	names := make([]string, 0, len(f.Aliases))
	for name := range f.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := reg.Define(name, f.Aliases[name]); err != nil {
			return errors.WithPath(err, "aliases", name)
		}
	}
	return nil
}

// TableNames returns the table names in sorted order.
func (f *File) TableNames() []string {
	names := make([]string, 0, len(f.Tables))
	for name := range f.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layout resolves the named table against reg.
func (f *File) Layout(table string, reg *transcoder.Registry) (*transcoder.RecordLayout, error) {
	t, ok := f.Tables[table]
	if !ok {
		return nil, errors.NotFound(errors.PhaseLoad, "table", table)
	}
	fields := make([]transcoder.Field, len(t.Fields))
	for i, fs := range t.Fields {
		fields[i] = transcoder.Field{Name: fs.Name, Schema: fs.Type, Pointer: fs.Pointer}
	}
	l, err := transcoder.NewRecordLayout(reg, fields...)
	if err != nil {
		return nil, errors.WithPath(err, table)
	}
	return l, nil
}
