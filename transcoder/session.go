package transcoder

import (
	"github.com/wippyai/datcodec/errors"
)

// Session is one archive-decode session: a registry, the heap shared by every
// decode call and the data-section base. It is not safe for concurrent use.
type Session struct {
	reg     *Registry
	decoder *Decoder
}

type sessionConfig struct {
	heap   *Heap
	policy HeapPolicy
}

// Option configures a Session.
type Option func(*sessionConfig)

// WithHeapPolicy selects how repeated decodes of one heap offset behave.
// The default is HeapReuse, which decodes shared heap data once instead of
// the legacy last-write-wins; pass HeapOverwrite to restore the latter.
func WithHeapPolicy(p HeapPolicy) Option {
	return func(c *sessionConfig) { c.policy = p }
}

// WithHeap makes the session share an existing heap.
func WithHeap(h *Heap) Option {
	return func(c *sessionConfig) { c.heap = h }
}

// NewSession starts a session over data whose heap begins at base.
func NewSession(reg *Registry, base int64, opts ...Option) *Session {
	cfg := sessionConfig{policy: HeapReuse}
	for _, opt := range opts {
		opt(&cfg)
	}
	if reg == nil {
		reg = NewRegistry()
	}
	return &Session{
		reg:     reg,
		decoder: NewDecoder(cfg.heap, base, cfg.policy),
	}
}

func (s *Session) Registry() *Registry { return s.reg }
func (s *Session) Heap() *Heap         { return s.decoder.heap }
func (s *Session) Base() int64         { return s.decoder.base }
func (s *Session) Decoder() *Decoder   { return s.decoder }

// Reset clears the heap so the session can decode another archive with the
// same base.
func (s *Session) Reset() {
	s.decoder.heap.Reset()
}

// DecodeField resolves schema and decodes one value at the cursor.
func (s *Session) DecodeField(schema string, c *Cursor, atPointer bool) (Value, error) {
	t, err := s.reg.Resolve(schema)
	if err != nil {
		return nil, err
	}
	return s.decoder.Decode(t, c, atPointer)
}

// FieldValue pairs a decoded value with the field it came from.
type FieldValue struct {
	Value Value
	Name  string
}

// Record is one decoded row.
type Record struct {
	Fields []FieldValue
	Start  int64
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// DecodeRecord decodes every field of l for the row starting at rowStart.
// On success the cursor is left at the end of the row.
func (s *Session) DecodeRecord(l *RecordLayout, c *Cursor, rowStart int64) (*Record, error) {
	if l == nil {
		return nil, errors.InvalidInput(errors.PhaseDecode, "nil record layout")
	}
	rec := &Record{
		Fields: make([]FieldValue, len(l.fields)),
		Start:  rowStart,
	}
	for i, f := range l.fields {
		if err := c.SeekTo(rowStart + int64(f.Offset)); err != nil {
			return nil, errors.WithPath(err, f.Name)
		}
		v, err := s.decoder.Decode(f.Type, c, f.Pointer)
		if err != nil {
			return nil, errors.WithPath(err, f.Name)
		}
		rec.Fields[i] = FieldValue{Name: f.Name, Value: v}
	}
	if err := c.SeekTo(rowStart + int64(l.width)); err != nil {
		return nil, err
	}
	return rec, nil
}
