package iface

import (
	"testing"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

var (
	float1 = ir.Float32
	float2 = ir.VectorType{Size: ir.Vec2, Scalar: ir.Float32}
)

// module builds unlinked test modules the way the front end lays them out:
// stream fields are Private variables tagged StreamField, entry points are
// plain functions found by name.
type module struct {
	t   *testing.T
	ctx *spirv.Context
}

func newModule(t *testing.T) *module {
	return newModuleVersion(t, spirv.Version1_3)
}

func newModuleVersion(t *testing.T, v spirv.Version) *module {
	t.Helper()
	ctx := spirv.NewContext(spirv.NewBuffer(v))
	ctx.AddCapability(spirv.CapabilityShader)
	ctx.Append(spirv.NewInstruction(spirv.OpMemoryModel,
		uint32(spirv.AddressingModelLogical), uint32(spirv.MemoryModelGLSL450)))
	return &module{t: t, ctx: ctx}
}

func (m *module) stream(name string, t ir.Type, semantic string) uint32 {
	id := declareVariable(m.ctx, t, spirv.StorageClassPrivate, name)
	m.ctx.AddDecoration(id, spirv.DecorationStreamField)
	if semantic != "" {
		m.ctx.AddDecorationString(id, spirv.DecorationUserSemantic, semantic)
	}
	return id
}

func (m *module) patchStream(name string, t ir.Type, semantic string) uint32 {
	id := m.stream(name, t, semantic)
	m.ctx.AddDecoration(id, spirv.DecorationPatch)
	return id
}

func (m *module) sampler(name string) uint32 {
	return declareVariable(m.ctx, ir.SamplerType{}, spirv.StorageClassUniformConstant, name)
}

// funcBuilder is a function under construction.
type funcBuilder struct {
	*spirv.Emitter
	m      *module
	id     uint32
	params []uint32
	ret    ir.Type
}

func (m *module) function(name string, ret ir.Type, params ...ir.Type) *funcBuilder {
	ft := ir.FunctionType{Return: ret, Params: params}
	retID := m.ctx.GetOrRegister(ret)
	ftID := m.ctx.GetOrRegister(ft)
	e := m.ctx.Emitter()
	f := &funcBuilder{Emitter: e, m: m, ret: ret}
	f.id = e.Function(retID, ftID, spirv.FunctionControlNone)
	for _, p := range params {
		f.params = append(f.params, e.FunctionParameter(m.ctx.GetOrRegister(p)))
	}
	e.Label()
	m.ctx.AddName(f.id, name)
	return f
}

func (m *module) entry(name string, params ...ir.Type) *funcBuilder {
	return m.function(name, ir.VoidType{}, params...)
}

func (f *funcBuilder) load(t ir.Type, ptr uint32) uint32 {
	return f.Load(f.m.ctx.GetOrRegister(t), ptr)
}

func (f *funcBuilder) write(ptr uint32, t ir.Type) {
	f.Store(ptr, f.m.ctx.ConstantNull(t))
}

func (f *funcBuilder) call(callee *funcBuilder, args ...uint32) uint32 {
	return f.FunctionCall(f.m.ctx.GetOrRegister(callee.ret), callee.id, args...)
}

// member returns a pointer to member of vertex of an input patch parameter.
func (f *funcBuilder) member(param uint32, vertex, member int32, t ir.Type) uint32 {
	ptr := f.m.ctx.PointerTo(t, ir.SpaceFunction)
	return f.AccessChain(ptr, param, f.m.ctx.ConstantInt(vertex), f.m.ctx.ConstantInt(member))
}

func (f *funcBuilder) end() {
	if _, void := f.ret.(ir.VoidType); void {
		f.Return()
	}
	f.FunctionEnd()
}

func (f *funcBuilder) endValue(v uint32) {
	f.ReturnValue(v)
	f.FunctionEnd()
}

func patchParam(name string, count uint32, members ...ir.StructMember) ir.Type {
	return ir.PointerType{
		Base:  ir.ArrayType{Base: ir.StructType{Name: name, Members: members}, Size: count},
		Space: ir.SpaceFunction,
	}
}

func (m *module) process(opts Options) (*Result, error) {
	m.t.Helper()
	return NewProcessor(opts).Process(spirv.ScanSymbols(m.ctx), m.ctx)
}

func (m *module) mustProcess() *Result {
	m.t.Helper()
	res, err := m.process(DefaultOptions())
	if err != nil {
		m.t.Fatalf("Process: %v", err)
	}
	if !spirv.IsOrdered(m.ctx.Buffer().Instructions()) {
		m.t.Fatal("processed module is not in section order")
	}
	return res
}

// named returns the id carrying an OpName, or 0.
func (m *module) named(name string) uint32 {
	for _, inst := range m.ctx.Buffer().Instructions() {
		if inst.Opcode == spirv.OpName && inst.StringAt(1) == name {
			return inst.Operand(0)
		}
	}
	return 0
}

func (m *module) declared(id uint32) bool {
	for _, inst := range m.ctx.Buffer().Instructions() {
		if inst.Opcode != spirv.OpNop && inst.ResultID() == id && !spirv.IsBody(inst) {
			return true
		}
	}
	return false
}

func (m *module) decoration(id uint32, d spirv.Decoration) (uint32, bool) {
	for _, inst := range m.ctx.Buffer().Instructions() {
		if inst.Opcode == spirv.OpDecorate && inst.Operand(0) == id && spirv.Decoration(inst.Operand(1)) == d {
			if len(inst.Words) > 2 {
				return inst.Operand(2), true
			}
			return 0, true
		}
	}
	return 0, false
}

func (m *module) count(op spirv.OpCode) int {
	n := 0
	for _, inst := range m.ctx.Buffer().Instructions() {
		if inst.Opcode == op {
			n++
		}
	}
	return n
}

// references reports whether the body of function fnID mentions id.
func (m *module) references(fnID, id uint32) bool {
	buf := m.ctx.Buffer()
	start, end, ok := buf.FindFunction(fnID)
	if !ok {
		m.t.Fatalf("function %d not found", fnID)
	}
	for i := start; i <= end; i++ {
		if buf.At(i).References(id) {
			return true
		}
	}
	return false
}

func memberNames(s ir.StructType) []string {
	names := make([]string, len(s.Members))
	for i, m := range s.Members {
		names[i] = m.Name
	}
	return names
}

func layoutOf(t *testing.T, res *Result, stage ir.ShaderStage) StageLayout {
	t.Helper()
	for _, l := range res.Layouts {
		if l.Stage == stage {
			return l
		}
	}
	t.Fatalf("no layout for %s", stage)
	return StageLayout{}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// duplicateResults lists result ids defined by more than one instruction.
func (m *module) duplicateResults() []uint32 {
	seen := make(map[uint32]bool)
	var dups []uint32
	for _, inst := range m.ctx.Buffer().Instructions() {
		id := inst.ResultID()
		if inst.Opcode == spirv.OpNop || id == 0 {
			continue
		}
		if seen[id] {
			dups = append(dups, id)
		}
		seen[id] = true
	}
	return dups
}
