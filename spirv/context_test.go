package spirv

import (
	"testing"

	"github.com/gogpu/stitch/ir"
)

func countOps(b *Buffer, op OpCode) int {
	n := 0
	for _, inst := range b.Instructions() {
		if inst.Opcode == op {
			n++
		}
	}
	return n
}

func TestContext_GetOrRegisterIsIdempotent(t *testing.T) {
	ctx := NewContext(NewBuffer(Version1_3))

	vec4 := ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}
	a := ctx.GetOrRegister(vec4)
	b := ctx.GetOrRegister(vec4)
	if a != b {
		t.Errorf("vec4 registered twice: %d and %d", a, b)
	}
	if countOps(ctx.Buffer(), OpTypeFloat) != 1 {
		t.Error("float should be declared exactly once")
	}

	// The scalar dependency is declared before the vector.
	buf := ctx.Buffer()
	if buf.At(0).Opcode != OpTypeFloat || buf.At(1).Opcode != OpTypeVector {
		t.Errorf("dependency order: %s, %s", buf.At(0).Opcode, buf.At(1).Opcode)
	}
	if got, ok := ctx.TypeOf(a); !ok || !ir.Equal(got, vec4) {
		t.Errorf("TypeOf(%d) = %v", a, got)
	}
}

func TestContext_StructNamesAndConflicts(t *testing.T) {
	ctx := NewContext(NewBuffer(Version1_3))

	st := ir.StructType{Name: "VS_INPUT", Members: []ir.StructMember{
		{Name: "Position", Type: ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}},
	}}
	id := ctx.GetOrRegister(st)
	if ctx.Name(id) != "VS_INPUT" {
		t.Errorf("struct name = %q", ctx.Name(id))
	}
	if ctx.MemberName(id, 0) != "Position" {
		t.Errorf("member name = %q", ctx.MemberName(id, 0))
	}

	defer func() {
		if _, ok := recover().(*InternalError); !ok {
			t.Error("registering a different shape under the same name should panic with *InternalError")
		}
	}()
	ctx.GetOrRegister(ir.StructType{Name: "VS_INPUT", Members: []ir.StructMember{
		{Name: "Position", Type: ir.Float32},
	}})
}

func TestContext_Constants(t *testing.T) {
	ctx := NewContext(NewBuffer(Version1_3))

	one := ctx.ConstantUint(1)
	if ctx.ConstantUint(1) != one {
		t.Error("uint constant not interned")
	}
	if ctx.ConstantInt(1) == one {
		t.Error("int and uint constants must be distinct")
	}
	if v, ok := ctx.ConstantValue(one); !ok || v != 1 {
		t.Errorf("ConstantValue = %d, %v", v, ok)
	}

	tr := ctx.ConstantBool(true)
	if ctx.Buffer().At(ctx.Buffer().Len()-1).Opcode != OpConstantTrue {
		t.Error("true should be declared with OpConstantTrue")
	}
	if ctx.ConstantBool(false) == tr {
		t.Error("true and false share an id")
	}

	null := ctx.ConstantNull(ir.VectorType{Size: ir.Vec2, Scalar: ir.Float32})
	if ctx.ConstantNull(ir.VectorType{Size: ir.Vec2, Scalar: ir.Float32}) != null {
		t.Error("null constant not interned")
	}

	ctx.Forget(one)
	if ctx.ConstantUint(1) == one {
		t.Error("forgotten constant should be declared anew")
	}
}

func TestContext_ScanReusesDeclarations(t *testing.T) {
	buf := NewBuffer(Version1_3)
	buf.Append(
		NewInstruction(OpCapability, uint32(CapabilityShader)),
		NewInstruction(OpTypeFloat, 1, 32),
		NewInstruction(OpTypeVector, 2, 1, 4),
		NewInstruction(OpTypeInt, 3, 32, 0),
		NewInstruction(OpConstant, 3, 4, 2),
		NewInstruction(OpTypeArray, 5, 2, 4),
	)
	before := buf.Len()

	ctx := NewContext(buf)
	vec4 := ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}
	if id := ctx.GetOrRegister(vec4); id != 2 {
		t.Errorf("vec4 id = %d, want existing 2", id)
	}
	if id := ctx.GetOrRegister(ir.ArrayType{Base: vec4, Size: 2}); id != 5 {
		t.Errorf("array id = %d, want existing 5", id)
	}
	if id := ctx.ConstantUint(2); id != 4 {
		t.Errorf("constant id = %d, want existing 4", id)
	}
	if buf.Len() != before {
		t.Errorf("scan should make re-registration free, buffer grew by %d", buf.Len()-before)
	}
	if !ctx.HasCapability(CapabilityShader) {
		t.Error("existing capability not indexed")
	}
	if ctx.AllocID() != 6 {
		t.Error("new ids should continue after the existing bound")
	}
}

func TestContext_CloneAndCommit(t *testing.T) {
	ctx := NewContext(NewBuffer(Version1_3))
	ctx.GetOrRegister(ir.Float32)
	buf := ctx.Buffer()
	hooked := false
	buf.OnInsert = func(int, int) { hooked = true }

	work := ctx.Clone()
	work.GetOrRegister(ir.Uint32)
	if buf.Len() != 1 {
		t.Fatal("work on a clone leaked into the original")
	}

	ctx.Commit(work)
	if ctx.Buffer() != buf {
		t.Error("Commit must keep the original buffer pointer")
	}
	if buf.Len() != 2 {
		t.Errorf("committed buffer has %d instructions, want 2", buf.Len())
	}
	if _, ok := ctx.Types().Lookup(ir.Uint32); !ok {
		t.Error("committed registry lost the new type")
	}
	buf.Insert(0, NewInstruction(OpCapability, uint32(CapabilityShader)))
	if !hooked {
		t.Error("Commit dropped the insertion hook")
	}
}

func TestContext_DecorationStringAddsExtensions(t *testing.T) {
	ctx := NewContext(NewBuffer(Version1_3))
	ctx.AddDecorationString(7, DecorationUserSemantic, "TEXCOORD0")
	ctx.AddDecorationString(8, DecorationUserSemantic, "TEXCOORD1")

	if n := countOps(ctx.Buffer(), OpExtension); n != 2 {
		t.Errorf("declared %d extensions, want 2", n)
	}
	ctx.AddCapability(CapabilityGeometry)
	ctx.AddCapability(CapabilityGeometry)
	if n := countOps(ctx.Buffer(), OpCapability); n != 1 {
		t.Errorf("declared %d capabilities, want 1", n)
	}
}

func TestScanSymbols(t *testing.T) {
	ctx := NewContext(NewBuffer(Version1_3))
	void := ctx.GetOrRegister(ir.VoidType{})
	fnType := ctx.GetOrRegister(ir.FunctionType{Return: ir.VoidType{}})
	e := ctx.Emitter()

	define := func(name string) uint32 {
		id := e.Function(void, fnType, FunctionControlNone)
		e.Label()
		e.Return()
		e.FunctionEnd()
		ctx.AddName(id, name)
		return id
	}
	define("Compute")
	second := define("Compute")
	vs := define("VSMain")

	color := ctx.AllocID()
	ctx.Append(NewInstruction(OpVariable, ctx.PointerTo(ir.Float32, ir.SpacePrivate), color, uint32(StorageClassPrivate)))
	ctx.AddName(color, "Color")

	table := ScanSymbols(ctx)
	sym, err := table.Resolve("Compute")
	if err != nil {
		t.Fatal(err)
	}
	if sym.ID != second {
		t.Errorf("Compute resolves to %d, want the last definition %d", sym.ID, second)
	}
	if table.Len() != 3 {
		t.Errorf("table has %d names, want 3", table.Len())
	}
	if sym, _ := table.Resolve("VSMain"); sym.ID != vs {
		t.Errorf("VSMain resolves to %d", sym.ID)
	}
	v, err := table.Resolve("Color")
	if err != nil || v.Kind != ir.SymbolVariable {
		t.Errorf("Color: %+v, %v", v, err)
	}
}
