package spirv

import (
	"math"

	"fortio.org/safecast"

	"github.com/gogpu/stitch/ir"
)

// Extensions required by string decorations.
const (
	ExtHLSLFunctionality1 = "SPV_GOOGLE_hlsl_functionality1"
	ExtDecorateString     = "SPV_GOOGLE_decorate_string"
)

type constantKey struct {
	typeID uint32
	bits   uint64
	null   bool
}

type memberKey struct {
	id     uint32
	member uint32
}

// Context owns a Buffer plus the bookkeeping needed to extend it: the id
// bound, type and constant interning, debug names and declared
// capabilities.
type Context struct {
	buf *Buffer

	types       *ir.TypeRegistry
	constants   map[constantKey]uint32
	constantOf  map[uint32]constantKey
	names       map[uint32]string
	memberNames map[memberKey]string

	capabilities map[Capability]bool
	extensions   map[string]bool
}

// NewContext wraps buf, indexing the types, constants and names it already
// declares so that later registrations reuse them.
func NewContext(buf *Buffer) *Context {
	c := &Context{
		buf:          buf,
		types:        ir.NewTypeRegistry(),
		constants:    make(map[constantKey]uint32),
		constantOf:   make(map[uint32]constantKey),
		names:        make(map[uint32]string),
		memberNames:  make(map[memberKey]string),
		capabilities: make(map[Capability]bool),
		extensions:   make(map[string]bool),
	}
	c.scan()
	return c
}

// Buffer returns the underlying instruction buffer.
func (c *Context) Buffer() *Buffer {
	return c.buf
}

// Types returns the type registry.
func (c *Context) Types() *ir.TypeRegistry {
	return c.types
}

// AllocID allocates a new SPIR-V ID.
func (c *Context) AllocID() uint32 {
	id := c.buf.Bound
	c.buf.Bound++
	return id
}

// Append adds an instruction at the end of the buffer and returns its
// result id (0 when it has none).
func (c *Context) Append(inst Instruction) uint32 {
	c.buf.Append(inst)
	return inst.ResultID()
}

// Clone returns an independent copy of the context and its buffer.
func (c *Context) Clone() *Context {
	n := &Context{
		buf:          c.buf.Clone(),
		types:        c.types.Clone(),
		constants:    make(map[constantKey]uint32, len(c.constants)),
		constantOf:   make(map[uint32]constantKey, len(c.constantOf)),
		names:        make(map[uint32]string, len(c.names)),
		memberNames:  make(map[memberKey]string, len(c.memberNames)),
		capabilities: make(map[Capability]bool, len(c.capabilities)),
		extensions:   make(map[string]bool, len(c.extensions)),
	}
	for k, v := range c.constants {
		n.constants[k] = v
	}
	for k, v := range c.constantOf {
		n.constantOf[k] = v
	}
	for k, v := range c.names {
		n.names[k] = v
	}
	for k, v := range c.memberNames {
		n.memberNames[k] = v
	}
	for k, v := range c.capabilities {
		n.capabilities[k] = v
	}
	for k, v := range c.extensions {
		n.extensions[k] = v
	}
	return n
}

// Commit replaces the state of c with the state of work, a context obtained
// from c.Clone. The Buffer pointer held by c stays valid.
func (c *Context) Commit(work *Context) {
	hook := c.buf.OnInsert
	*c.buf = *work.buf
	c.buf.OnInsert = hook

	c.types = work.types
	c.constants = work.constants
	c.constantOf = work.constantOf
	c.names = work.names
	c.memberNames = work.memberNames
	c.capabilities = work.capabilities
	c.extensions = work.extensions
	work.buf = c.buf
}

// TypeOf returns the descriptor of a declared type id. Ids the structural
// model does not cover resolve to ir.OpaqueType.
func (c *Context) TypeOf(id uint32) (ir.Type, bool) {
	return c.types.TypeOf(id)
}

// GetOrRegister returns the id declaring t, emitting the declaration (and
// those of its dependencies) on first use. Registering a named struct whose
// name is bound to a different shape panics with *InternalError.
func (c *Context) GetOrRegister(t ir.Type) uint32 {
	if o, ok := t.(ir.OpaqueType); ok {
		return o.ID
	}
	if id, ok := c.types.Lookup(t); ok {
		return id
	}

	b := NewInstructionBuilder()
	var op OpCode
	var deps []uint32
	switch t := t.(type) {
	case ir.VoidType:
		op = OpTypeVoid
	case ir.ScalarType:
		switch t.Kind {
		case ir.ScalarBool:
			op = OpTypeBool
		case ir.ScalarFloat:
			op = OpTypeFloat
			deps = []uint32{uint32(t.Width) * 8}
		case ir.ScalarSint:
			op = OpTypeInt
			deps = []uint32{uint32(t.Width) * 8, 1}
		default:
			op = OpTypeInt
			deps = []uint32{uint32(t.Width) * 8, 0}
		}
	case ir.VectorType:
		op = OpTypeVector
		deps = []uint32{c.GetOrRegister(t.Scalar), uint32(t.Size)}
	case ir.MatrixType:
		op = OpTypeMatrix
		deps = []uint32{c.GetOrRegister(t.Column()), uint32(t.Columns)}
	case ir.ArrayType:
		elem := c.GetOrRegister(t.Base)
		if t.Size == 0 {
			op = OpTypeRuntimeArray
			deps = []uint32{elem}
		} else {
			op = OpTypeArray
			deps = []uint32{elem, c.ConstantUint(t.Size)}
		}
	case ir.StructType:
		op = OpTypeStruct
		for _, m := range t.Members {
			deps = append(deps, c.GetOrRegister(m.Type))
		}
	case ir.PointerType:
		op = OpTypePointer
		deps = []uint32{uint32(t.Space), c.GetOrRegister(t.Base)}
	case ir.FunctionType:
		op = OpTypeFunction
		ret := t.Return
		if ret == nil {
			ret = ir.VoidType{}
		}
		deps = append(deps, c.GetOrRegister(ret))
		for _, p := range t.Params {
			deps = append(deps, c.GetOrRegister(p))
		}
	case ir.SamplerType:
		op = OpTypeSampler
	case ir.ImageType:
		op = OpTypeImage
		multisampled, arrayed := uint32(0), uint32(0)
		if t.Multisampled {
			multisampled = 1
		}
		if t.Arrayed {
			arrayed = 1
		}
		deps = []uint32{c.GetOrRegister(t.SampledType), uint32(t.Dim), uint32(t.Depth), arrayed,
			multisampled, uint32(t.Sampled), t.Format}
	case ir.SampledImageType:
		op = OpTypeSampledImage
		deps = []uint32{c.GetOrRegister(t.Image)}
	default:
		internalf("cannot declare type %s", ir.Key(t))
	}

	id := c.AllocID()
	if err := c.types.Register(t, id); err != nil {
		internalf("%v", err)
	}
	b.AddWord(id)
	b.AddWords(deps...)
	c.buf.Append(b.Build(op))

	if st, ok := t.(ir.StructType); ok {
		if st.Name != "" {
			c.AddName(id, st.Name)
		}
		for i, m := range st.Members {
			if m.Name != "" {
				c.AddMemberName(id, memberIndex(i), m.Name)
			}
		}
	}
	return id
}

// PointerTo is shorthand for registering a pointer type.
func (c *Context) PointerTo(base ir.Type, space ir.AddressSpace) uint32 {
	return c.GetOrRegister(ir.PointerType{Base: base, Space: space})
}

func (c *Context) constant(t ir.ScalarType, bits uint64) uint32 {
	typeID := c.GetOrRegister(t)
	key := constantKey{typeID: typeID, bits: bits}
	if id, ok := c.constants[key]; ok {
		return id
	}

	id := c.AllocID()
	switch {
	case t.Kind == ir.ScalarBool && bits != 0:
		c.buf.Append(NewInstruction(OpConstantTrue, typeID, id))
	case t.Kind == ir.ScalarBool:
		c.buf.Append(NewInstruction(OpConstantFalse, typeID, id))
	case t.Width == 8:
		c.buf.Append(NewInstruction(OpConstant, typeID, id, uint32(bits&0xFFFFFFFF), uint32(bits>>32)))
	default:
		c.buf.Append(NewInstruction(OpConstant, typeID, id, uint32(bits)))
	}
	c.constants[key] = id
	c.constantOf[id] = key
	return id
}

// ConstantUint returns the id of a 32-bit unsigned integer constant.
func (c *Context) ConstantUint(v uint32) uint32 {
	return c.constant(ir.Uint32, uint64(v))
}

// ConstantInt returns the id of a 32-bit signed integer constant.
func (c *Context) ConstantInt(v int32) uint32 {
	return c.constant(ir.Int32, uint64(uint32(v)))
}

// ConstantFloat returns the id of a 32-bit float constant.
func (c *Context) ConstantFloat(v float32) uint32 {
	return c.constant(ir.Float32, uint64(math.Float32bits(v)))
}

// ConstantBool returns the id of a boolean constant.
func (c *Context) ConstantBool(v bool) uint32 {
	if v {
		return c.constant(ir.Bool, 1)
	}
	return c.constant(ir.Bool, 0)
}

// ConstantScalar returns the id of a scalar constant with raw bit pattern
// bits.
func (c *Context) ConstantScalar(t ir.ScalarType, bits uint64) uint32 {
	return c.constant(t, bits)
}

// ConstantNull returns the id of an OpConstantNull of type t.
func (c *Context) ConstantNull(t ir.Type) uint32 {
	typeID := c.GetOrRegister(t)
	key := constantKey{typeID: typeID, null: true}
	if id, ok := c.constants[key]; ok {
		return id
	}
	id := c.AllocID()
	c.buf.Append(NewInstruction(OpConstantNull, typeID, id))
	c.constants[key] = id
	c.constantOf[id] = key
	return id
}

// ConstantValue returns the bit pattern of a scalar constant id.
func (c *Context) ConstantValue(id uint32) (uint64, bool) {
	key, ok := c.constantOf[id]
	if !ok {
		return 0, false
	}
	return key.bits, true
}

// Forget drops bookkeeping for an id whose declaration was removed.
func (c *Context) Forget(id uint32) {
	c.types.Forget(id)
	if key, ok := c.constantOf[id]; ok {
		delete(c.constantOf, id)
		if c.constants[key] == id {
			delete(c.constants, key)
		}
	}
	delete(c.names, id)
}

// AddName adds a debug name.
func (c *Context) AddName(id uint32, name string) {
	b := NewInstructionBuilder()
	b.AddWord(id)
	b.AddString(name)
	c.buf.Append(b.Build(OpName))
	c.names[id] = name
}

// AddMemberName adds a debug member name.
func (c *Context) AddMemberName(structID, member uint32, name string) {
	b := NewInstructionBuilder()
	b.AddWord(structID)
	b.AddWord(member)
	b.AddString(name)
	c.buf.Append(b.Build(OpMemberName))
	c.memberNames[memberKey{structID, member}] = name
}

// Name returns the debug name of id, or "".
func (c *Context) Name(id uint32) string {
	return c.names[id]
}

// MemberName returns the debug name of a struct member, or "".
func (c *Context) MemberName(structID, member uint32) string {
	return c.memberNames[memberKey{structID, member}]
}

// AddDecoration adds a decoration.
func (c *Context) AddDecoration(id uint32, decoration Decoration, params ...uint32) {
	b := NewInstructionBuilder()
	b.AddWord(id)
	b.AddWord(uint32(decoration))
	b.AddWords(params...)
	c.buf.Append(b.Build(OpDecorate))
}

// AddMemberDecoration adds a member decoration.
func (c *Context) AddMemberDecoration(structID, member uint32, decoration Decoration, params ...uint32) {
	b := NewInstructionBuilder()
	b.AddWord(structID)
	b.AddWord(member)
	b.AddWord(uint32(decoration))
	b.AddWords(params...)
	c.buf.Append(b.Build(OpMemberDecorate))
}

// AddDecorationString adds a string decoration, declaring the extensions
// the HLSL semantic decorations depend on.
func (c *Context) AddDecorationString(id uint32, decoration Decoration, value string) {
	if decoration == DecorationUserSemantic || decoration == DecorationUserType {
		c.AddExtension(ExtHLSLFunctionality1)
		c.AddExtension(ExtDecorateString)
	}
	b := NewInstructionBuilder()
	b.AddWord(id)
	b.AddWord(uint32(decoration))
	b.AddString(value)
	c.buf.Append(b.Build(OpDecorateString))
}

// AddCapability declares a capability once.
func (c *Context) AddCapability(capability Capability) {
	if c.capabilities[capability] {
		return
	}
	c.capabilities[capability] = true
	c.buf.Append(NewInstruction(OpCapability, uint32(capability)))
}

// HasCapability reports whether the module declares capability.
func (c *Context) HasCapability(capability Capability) bool {
	return c.capabilities[capability]
}

// AddExtension declares an extension once.
func (c *Context) AddExtension(name string) {
	if c.extensions[name] {
		return
	}
	c.extensions[name] = true
	b := NewInstructionBuilder()
	b.AddString(name)
	c.buf.Append(b.Build(OpExtension))
}

// AddEntryPoint adds an entry point.
func (c *Context) AddEntryPoint(model ExecutionModel, funcID uint32, name string, interfaces []uint32) {
	b := NewInstructionBuilder()
	b.AddWord(uint32(model))
	b.AddWord(funcID)
	b.AddString(name)
	b.AddWords(interfaces...)
	c.buf.Append(b.Build(OpEntryPoint))
}

// AddExecutionMode adds an execution mode.
func (c *Context) AddExecutionMode(entryPoint uint32, mode ExecutionMode, params ...uint32) {
	b := NewInstructionBuilder()
	b.AddWord(entryPoint)
	b.AddWord(uint32(mode))
	b.AddWords(params...)
	c.buf.Append(b.Build(OpExecutionMode))
}

// scan indexes what the buffer already declares.
//
//nolint:gocyclo,cyclop // one case per declaration opcode
func (c *Context) scan() {
	for _, inst := range c.buf.insts {
		switch inst.Opcode {
		case OpName:
			c.names[inst.Operand(0)] = inst.StringAt(1)
		case OpMemberName:
			c.memberNames[memberKey{inst.Operand(0), inst.Operand(1)}] = inst.StringAt(2)
		case OpCapability:
			c.capabilities[Capability(inst.Operand(0))] = true
		case OpExtension:
			c.extensions[inst.StringAt(0)] = true
		}
	}

	typeOf := func(id uint32) ir.Type {
		if t, ok := c.types.TypeOf(id); ok {
			return t
		}
		return ir.OpaqueType{ID: id}
	}
	scalarOf := func(id uint32) ir.ScalarType {
		s, _ := typeOf(id).(ir.ScalarType)
		return s
	}

	for _, inst := range c.buf.insts {
		w := inst.Words
		var t ir.Type
		switch inst.Opcode {
		case OpTypeVoid:
			t = ir.VoidType{}
		case OpTypeBool:
			t = ir.Bool
		case OpTypeInt:
			kind := ir.ScalarUint
			if w[2] != 0 {
				kind = ir.ScalarSint
			}
			t = ir.ScalarType{Kind: kind, Width: uint8(w[1] / 8)}
		case OpTypeFloat:
			t = ir.ScalarType{Kind: ir.ScalarFloat, Width: uint8(w[1] / 8)}
		case OpTypeVector:
			t = ir.VectorType{Size: ir.VectorSize(w[2]), Scalar: scalarOf(w[1])}
		case OpTypeMatrix:
			col, _ := typeOf(w[1]).(ir.VectorType)
			t = ir.MatrixType{Columns: ir.VectorSize(w[2]), Rows: col.Size, Scalar: col.Scalar}
		case OpTypeArray:
			bits, ok := c.ConstantValue(w[2])
			if !ok {
				t = ir.OpaqueType{ID: w[0]}
				break
			}
			size, err := safecast.Conv[uint32](bits)
			if err != nil {
				t = ir.OpaqueType{ID: w[0]}
				break
			}
			t = ir.ArrayType{Base: typeOf(w[1]), Size: size}
		case OpTypeRuntimeArray:
			t = ir.ArrayType{Base: typeOf(w[1])}
		case OpTypeStruct:
			st := ir.StructType{Name: c.names[w[0]]}
			for i, m := range w[1:] {
				st.Members = append(st.Members, ir.StructMember{
					Name: c.memberNames[memberKey{w[0], memberIndex(i)}],
					Type: typeOf(m),
				})
			}
			t = st
		case OpTypePointer:
			t = ir.PointerType{Base: typeOf(w[2]), Space: ir.AddressSpace(w[1])}
		case OpTypeFunction:
			ft := ir.FunctionType{Return: typeOf(w[1])}
			for _, p := range w[2:] {
				ft.Params = append(ft.Params, typeOf(p))
			}
			t = ft
		case OpTypeSampler:
			t = ir.SamplerType{}
		case OpTypeImage:
			t = ir.ImageType{
				SampledType:  scalarOf(w[1]),
				Dim:          ir.ImageDimension(w[2]),
				Depth:        uint8(w[3]),
				Arrayed:      w[4] != 0,
				Multisampled: w[5] != 0,
				Sampled:      uint8(w[6]),
				Format:       w[7],
			}
		case OpTypeSampledImage:
			img, ok := typeOf(w[1]).(ir.ImageType)
			if !ok {
				t = ir.OpaqueType{ID: w[0]}
				break
			}
			t = ir.SampledImageType{Image: img}
		case OpTypeOpaque:
			t = ir.OpaqueType{ID: w[0]}

		case OpConstant:
			bits := uint64(w[2])
			if len(w) > 3 {
				bits |= uint64(w[3]) << 32
			}
			c.observeConstant(constantKey{typeID: w[0], bits: bits}, w[1])
		case OpConstantTrue:
			c.observeConstant(constantKey{typeID: w[0], bits: 1}, w[1])
		case OpConstantFalse:
			c.observeConstant(constantKey{typeID: w[0]}, w[1])
		case OpConstantNull:
			c.observeConstant(constantKey{typeID: w[0], null: true}, w[1])
		}
		if t != nil {
			c.types.Observe(t, w[0])
		}
	}
}

func (c *Context) observeConstant(key constantKey, id uint32) {
	if _, exists := c.constants[key]; !exists {
		c.constants[key] = id
	}
	c.constantOf[id] = key
}

func memberIndex(i int) uint32 {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		internalf("member index %d: %v", i, err)
	}
	return v
}
