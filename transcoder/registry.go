package transcoder

import (
	"regexp"
	"strings"
	"sync"

	"github.com/wippyai/datcodec/errors"
	"github.com/wippyai/datcodec/transcoder/internal/types"
)

const (
	modifierRef  = "ref"
	modifierList = "list"
)

var baseNamePattern = regexp.MustCompile(`^\w+$`)

// Registry parses schema strings into descriptors and interns them by exact
// schema text, so identical strings share one descriptor instance.
// Structurally identical but differently written schemas are not unified.
type Registry struct {
	types   map[string]Type   // schema text -> descriptor
	aliases map[string]string // alias name -> schema text
	mu      sync.RWMutex
}

// resolveState tracks names under resolution to detect cycles.
type resolveState struct {
	active map[string]bool
	chain  []string
}

// NewRegistry returns a registry with the eight primitives pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		types:   make(map[string]Type, 16),
		aliases: make(map[string]string),
	}
	for _, k := range types.Kinds() {
		r.types[k.String()] = types.NewPrimitive(k)
	}
	return r
}

// Resolve returns the descriptor for schema, parsing and interning it on first use.
func (r *Registry) Resolve(schema string) (Type, error) {
	r.mu.RLock()
	cached, ok := r.types[schema]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(schema, &resolveState{active: make(map[string]bool)})
}

// MustResolve is like Resolve but panics on error.
func (r *Registry) MustResolve(schema string) Type {
	t, err := r.Resolve(schema)
	if err != nil {
		panic(err)
	}
	return t
}

// Define registers name as an alias for schema. The target is resolved lazily
// on first use of the alias.
func (r *Registry) Define(name, schema string) error {
	if !baseNamePattern.MatchString(name) {
		return errors.MalformedSchema(name, "alias name must be a single word")
	}
	if _, ok := types.ParseKind(name); ok {
		return errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Detail("alias %q shadows a primitive", name).
			Build()
	}
	if schema == "" {
		return errors.MalformedSchema(schema, "empty alias target")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.aliases[name]; ok {
		if prev == schema {
			return nil
		}
		return errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Schema(schema).
			Detail("alias %q already defined as %q", name, prev).
			Build()
	}
	r.aliases[name] = schema
	return nil
}

// Primitive returns the pre-registered descriptor for k.
func (r *Registry) Primitive(k Kind) (*PrimitiveType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[k.String()].(*PrimitiveType)
	return t, ok
}

// Len reports the number of interned schema strings, primitives included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// resolve must be called with r.mu held for writing.
func (r *Registry) resolve(schema string, st *resolveState) (Type, error) {
	if t, ok := r.types[schema]; ok {
		return t, nil
	}

	if st.active[schema] {
		return nil, errors.CyclicSchema(append(append([]string{}, st.chain...), schema))
	}
	st.active[schema] = true
	st.chain = append(st.chain, schema)
	defer func() {
		delete(st.active, schema)
		st.chain = st.chain[:len(st.chain)-1]
	}()

	var t Type
	modifier, rest, composite := strings.Cut(schema, "|")
	if !composite {
		base, err := r.resolveBase(schema, st)
		if err != nil {
			return nil, err
		}
		t = base
	} else {
		if rest == "" {
			return nil, errors.MalformedSchema(schema, "missing type after modifier")
		}
		switch modifier {
		case modifierRef:
			ref, err := r.resolve(rest, st)
			if err != nil {
				return nil, err
			}
			t = types.NewPointer(schema, ref)
		case modifierList:
			elem, err := r.resolve(rest, st)
			if err != nil {
				return nil, err
			}
			t = types.NewList(schema, elem)
		default:
			return nil, errors.MalformedSchema(schema, "unknown modifier \""+modifier+"\"")
		}
	}

	r.types[schema] = t
	return t, nil
}

// resolveBase resolves a bare name. Primitives are always interned, so only
// aliases reach the lookup below.
func (r *Registry) resolveBase(name string, st *resolveState) (Type, error) {
	if !baseNamePattern.MatchString(name) {
		return nil, errors.MalformedSchema(name, "base type must be a single word")
	}
	target, ok := r.aliases[name]
	if !ok {
		return nil, errors.UnknownType(name, name)
	}
	return r.resolve(target, st)
}
