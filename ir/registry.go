package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// StructConflictError reports a named struct registered twice with
// different shapes.
type StructConflictError struct {
	Name     string
	Existing string
	Incoming string
}

func (e *StructConflictError) Error() string {
	return fmt.Sprintf("struct %q already registered as %s, got %s", e.Name, e.Existing, e.Incoming)
}

// TypeRegistry ensures type deduplication for SPIR-V emission.
// SPIR-V requires that each unique type is declared exactly once, so every
// structural key maps to a single result id.
type TypeRegistry struct {
	ids     map[string]uint32
	types   map[uint32]Type
	structs map[string]string // struct name -> key
}

// NewTypeRegistry creates a new type registry for deduplication.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		ids:     make(map[string]uint32, 16),
		types:   make(map[uint32]Type, 16),
		structs: make(map[string]string),
	}
}

// Lookup returns the result id registered for the type, if any.
func (r *TypeRegistry) Lookup(t Type) (uint32, bool) {
	id, ok := r.ids[Key(t)]
	return id, ok
}

// TypeOf returns the descriptor registered under a result id.
func (r *TypeRegistry) TypeOf(id uint32) (Type, bool) {
	t, ok := r.types[id]
	return t, ok
}

// Register records id as the declaration of t. Registering a named struct
// whose name is already bound to a different shape fails with a
// *StructConflictError.
func (r *TypeRegistry) Register(t Type, id uint32) error {
	key := Key(t)
	if st, ok := t.(StructType); ok && st.Name != "" {
		if existing, found := r.structs[st.Name]; found && existing != key {
			return &StructConflictError{Name: st.Name, Existing: existing, Incoming: key}
		}
		r.structs[st.Name] = key
	}
	r.Observe(t, id)
	return nil
}

// Observe records a declaration found in an existing module. The first
// declaration of a shape wins; later duplicates still resolve through TypeOf.
func (r *TypeRegistry) Observe(t Type, id uint32) {
	key := Key(t)
	if _, exists := r.ids[key]; !exists {
		r.ids[key] = id
	}
	r.types[id] = t
	if st, ok := t.(StructType); ok && st.Name != "" {
		if _, found := r.structs[st.Name]; !found {
			r.structs[st.Name] = key
		}
	}
}

// Forget drops a result id, e.g. after its declaration was removed.
func (r *TypeRegistry) Forget(id uint32) {
	t, ok := r.types[id]
	if !ok {
		return
	}
	delete(r.types, id)
	key := Key(t)
	if r.ids[key] == id {
		delete(r.ids, key)
	}
}

// Count returns the number of unique types registered.
func (r *TypeRegistry) Count() int {
	return len(r.ids)
}

// Clone returns an independent copy of the registry.
func (r *TypeRegistry) Clone() *TypeRegistry {
	c := &TypeRegistry{
		ids:     make(map[string]uint32, len(r.ids)),
		types:   make(map[uint32]Type, len(r.types)),
		structs: make(map[string]string, len(r.structs)),
	}
	for k, v := range r.ids {
		c.ids[k] = v
	}
	for k, v := range r.types {
		c.types[k] = v
	}
	for k, v := range r.structs {
		c.structs[k] = v
	}
	return c
}

// Key creates a unique key for a type based on its structure.
// Two structurally identical types will produce the same key.
func Key(t Type) string {
	var b strings.Builder
	writeKey(&b, t)
	return b.String()
}

func writeKey(b *strings.Builder, t Type) {
	switch t := t.(type) {
	case nil:
		b.WriteString("nil")

	case VoidType:
		b.WriteString("void")

	case ScalarType:
		b.WriteString("scalar:")
		b.WriteString(strconv.Itoa(int(t.Kind)))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(t.Width)))

	case VectorType:
		b.WriteString("vec")
		b.WriteString(strconv.Itoa(int(t.Size)))
		b.WriteByte('<')
		writeKey(b, t.Scalar)
		b.WriteByte('>')

	case MatrixType:
		b.WriteString("mat")
		b.WriteString(strconv.Itoa(int(t.Columns)))
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(int(t.Rows)))
		b.WriteByte('<')
		writeKey(b, t.Scalar)
		b.WriteByte('>')

	case ArrayType:
		b.WriteString("array<")
		writeKey(b, t.Base)
		b.WriteByte(',')
		if t.Size == 0 {
			b.WriteString("runtime")
		} else {
			b.WriteString(strconv.FormatUint(uint64(t.Size), 10))
		}
		b.WriteByte('>')

	case StructType:
		b.WriteString("struct ")
		b.WriteString(strconv.Quote(t.Name))
		b.WriteByte('{')
		for i, m := range t.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(m.Name)
			b.WriteByte(':')
			writeKey(b, m.Type)
		}
		b.WriteByte('}')

	case PointerType:
		b.WriteString("ptr<")
		b.WriteString(strconv.Itoa(int(t.Space)))
		b.WriteByte(',')
		writeKey(b, t.Base)
		b.WriteByte('>')

	case FunctionType:
		b.WriteString("fn(")
		for i, p := range t.Params {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, p)
		}
		b.WriteString(")->")
		writeKey(b, t.Return)

	case SamplerType:
		b.WriteString("sampler")

	case ImageType:
		fmt.Fprintf(b, "image:%d:%d:%d:%v:%v:%d<", t.Dim, t.Depth, t.Sampled, t.Arrayed, t.Multisampled, t.Format)
		writeKey(b, t.SampledType)
		b.WriteByte('>')

	case SampledImageType:
		b.WriteString("sampled<")
		writeKey(b, t.Image)
		b.WriteByte('>')

	case OpaqueType:
		b.WriteString("opaque:")
		b.WriteString(strconv.FormatUint(uint64(t.ID), 10))

	default:
		fmt.Fprintf(b, "unknown:%T", t)
	}
}

// TypeName returns a short human readable spelling of a type, used in
// diagnostics.
func TypeName(t Type) string {
	switch t := t.(type) {
	case VoidType:
		return "void"
	case ScalarType:
		return scalarName(t)
	case VectorType:
		return scalarName(t.Scalar) + strconv.Itoa(int(t.Size))
	case MatrixType:
		return scalarName(t.Scalar) + strconv.Itoa(int(t.Rows)) + "x" + strconv.Itoa(int(t.Columns))
	case ArrayType:
		return TypeName(t.Base) + "[" + strconv.FormatUint(uint64(t.Size), 10) + "]"
	case StructType:
		return t.Name
	case PointerType:
		return TypeName(t.Base) + "*"
	default:
		return Key(t)
	}
}

func scalarName(s ScalarType) string {
	switch s.Kind {
	case ScalarBool:
		return "bool"
	case ScalarSint:
		if s.Width == 8 {
			return "long"
		}
		return "int"
	case ScalarUint:
		if s.Width == 8 {
			return "ulong"
		}
		return "uint"
	default:
		switch s.Width {
		case 2:
			return "half"
		case 8:
			return "double"
		}
		return "float"
	}
}
