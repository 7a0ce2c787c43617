package stitch

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/stitch/iface"
	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

var float4 = ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}

// unlinked encodes a module with a vertex and a pixel entry point writing
// one stream field each.
func unlinked(tb testing.TB, version spirv.Version, entries ...string) []byte {
	tb.Helper()
	ctx := spirv.NewContext(spirv.NewBuffer(version))
	ctx.AddCapability(spirv.CapabilityShader)
	ctx.Append(spirv.NewInstruction(spirv.OpMemoryModel,
		uint32(spirv.AddressingModelLogical), uint32(spirv.MemoryModelGLSL450)))

	stream := func(name, semantic string) uint32 {
		id := ctx.AllocID()
		ctx.Append(spirv.NewInstruction(spirv.OpVariable,
			ctx.PointerTo(float4, ir.SpacePrivate), id, uint32(spirv.StorageClassPrivate)))
		ctx.AddName(id, name)
		ctx.AddDecoration(id, spirv.DecorationStreamField)
		ctx.AddDecorationString(id, spirv.DecorationUserSemantic, semantic)
		return id
	}
	fields := map[string]uint32{
		"VSMain": stream("Position", "SV_Position"),
		"PSMain": stream("Color", "SV_Target0"),
	}

	void := ctx.GetOrRegister(ir.VoidType{})
	fnType := ctx.GetOrRegister(ir.FunctionType{Return: ir.VoidType{}})
	for _, name := range entries {
		e := ctx.Emitter()
		id := e.Function(void, fnType, spirv.FunctionControlNone)
		e.Label()
		e.Store(fields[name], ctx.ConstantNull(float4))
		e.Return()
		e.FunctionEnd()
		ctx.AddName(id, name)
	}

	data, err := ctx.Buffer().Encode()
	if err != nil {
		tb.Fatalf("Encode: %v", err)
	}
	return data
}

func TestLink(t *testing.T) {
	out, result, err := Link(unlinked(t, spirv.Version1_3, "VSMain", "PSMain"), DefaultOptions())
	if err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	if len(result.EntryPoints) != 2 {
		t.Fatalf("entry points = %+v", result.EntryPoints)
	}

	buf, err := spirv.Decode(out)
	if err != nil {
		t.Fatalf("linked module does not decode: %v", err)
	}
	if !spirv.IsOrdered(buf.Instructions()) {
		t.Error("linked module is not in section order")
	}
	entryPoints := 0
	for _, inst := range buf.Instructions() {
		switch inst.Opcode {
		case spirv.OpEntryPoint:
			entryPoints++
		case spirv.OpDecorate, spirv.OpDecorateString:
			if spirv.Decoration(inst.Operand(1)).IsVendor() {
				t.Errorf("vendor decoration survived: %s", inst)
			}
		}
	}
	if entryPoints != 2 {
		t.Errorf("OpEntryPoint count = %d, want 2", entryPoints)
	}
}

func TestLink_Options(t *testing.T) {
	opts := DefaultOptions()
	opts.StripNames = true
	opts.Version = spirv.Version1_5

	out, _, err := Link(unlinked(t, spirv.Version1_3, "PSMain"), opts)
	if err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	buf, err := spirv.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Version != spirv.Version1_5 {
		t.Errorf("version = %v, want 1.5", buf.Version)
	}
	for _, inst := range buf.Instructions() {
		if inst.Opcode == spirv.OpName || inst.Opcode == spirv.OpMemberName {
			t.Fatalf("debug name survived StripNames: %s", inst)
		}
	}
}

func TestLink_Errors(t *testing.T) {
	if _, _, err := Link([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		DefaultOptions()); !errors.Is(err, spirv.ErrBadMagic) {
		t.Errorf("bad magic: err = %v", err)
	}
	if _, _, err := Link([]byte{1, 2, 3}, DefaultOptions()); !errors.Is(err, spirv.ErrUnalignedData) {
		t.Errorf("unaligned: err = %v", err)
	}

	_, _, err := Link(unlinked(t, spirv.Version1_3, "VSMain"), DefaultOptions())
	if kind, ok := iface.KindOf(err); !ok || kind != iface.ErrNoTerminalStage {
		t.Errorf("err = %v, want NoTerminalStage", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "interface error:") {
		t.Errorf("error not wrapped: %v", err)
	}
}

func TestLink_MalformedInstruction(t *testing.T) {
	// OpTypeInt carrying only its result id.
	words := []uint32{spirv.MagicNumber, 0x00010300, 0, 10, 0, 2<<16 | uint32(spirv.OpTypeInt), 1}
	data := make([]byte, 0, len(words)*4)
	for _, w := range words {
		data = binary.LittleEndian.AppendUint32(data, w)
	}

	_, _, err := Link(data, DefaultOptions())
	if !errors.Is(err, spirv.ErrMissingOperand) {
		t.Fatalf("err = %v, want ErrMissingOperand", err)
	}
	if !strings.HasPrefix(err.Error(), "decode error:") {
		t.Errorf("error not wrapped: %v", err)
	}
}

func TestLinkContext_FailureKeepsModule(t *testing.T) {
	ctx, err := Load(unlinked(t, spirv.Version1_3, "VSMain"))
	if err != nil {
		t.Fatal(err)
	}
	before, _ := ctx.Buffer().Encode()

	opts := DefaultOptions()
	opts.Version = spirv.Version1_6
	if _, err := LinkContext(ctx, opts); err == nil {
		t.Fatal("expected an error")
	}
	after, _ := ctx.Buffer().Encode()
	if string(before) != string(after) {
		t.Error("a failed link must leave the module untouched")
	}
}

func TestDisassemble(t *testing.T) {
	out, _, err := Link(unlinked(t, spirv.Version1_3, "PSMain"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	text, err := Disassemble(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"; Version: 1.3", "OpEntryPoint Fragment", "OpExecutionMode"} {
		if !strings.Contains(text, want) {
			t.Errorf("disassembly lacks %q", want)
		}
	}
}
