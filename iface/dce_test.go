package iface

import (
	"testing"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

func TestProcess_ResourceGroupsStayTogether(t *testing.T) {
	m := newModule(t)
	color := m.stream("Color", float4, "SV_Target0")
	a := m.sampler("SamplerA")
	b := m.sampler("SamplerB")
	c := m.sampler("SamplerC")
	for i, id := range []uint32{a, b, c} {
		m.ctx.AddDecoration(id, spirv.DecorationDescriptorSet, 0)
		m.ctx.AddDecoration(id, spirv.DecorationBinding, uint32(i))
	}
	m.ctx.AddDecorationString(a, spirv.DecorationResourceGroup, "Material")
	m.ctx.AddDecorationString(b, spirv.DecorationResourceGroup, "Material")

	ps := m.entry("PSMain")
	ps.load(ir.SamplerType{}, a)
	ps.write(color, float4)
	ps.end()

	res := m.mustProcess()

	if !m.declared(a) || !m.declared(b) {
		t.Error("both members of the Material group should survive")
	}
	if m.declared(c) {
		t.Error("the unused ungrouped sampler should be removed")
	}
	if binding, ok := m.decoration(b, spirv.DecorationBinding); !ok || binding != 1 {
		t.Errorf("SamplerB binding = %d, %v", binding, ok)
	}
	if _, ok := m.decoration(c, spirv.DecorationBinding); ok {
		t.Error("decorations of removed variables should be removed")
	}
	if res.DCE.Variables < 2 {
		t.Errorf("removed variables = %d, want at least the stream and SamplerC", res.DCE.Variables)
	}

	for _, inst := range m.ctx.Buffer().Instructions() {
		switch inst.Opcode {
		case spirv.OpDecorate, spirv.OpDecorateString, spirv.OpDecorateID:
			if spirv.Decoration(inst.Operand(1)).IsVendor() {
				t.Errorf("vendor decoration left in module: %s", inst)
			}
		}
	}
}

func TestProcess_LogicalGroupSpansConstantBuffers(t *testing.T) {
	m := newModule(t)
	color := m.stream("Color", float4, "SV_Target0")
	globals := m.cbuffer("Globals", ir.StructMember{Name: "Tint", Type: float4})
	smp := m.sampler("PerDrawSampler")
	m.ctx.AddDecorationString(globals, spirv.DecorationLogicalGroup, "PerDraw")
	m.ctx.AddDecorationString(smp, spirv.DecorationLogicalGroup, "PerDraw")

	ps := m.entry("PSMain")
	tint := ps.AccessChain(m.ctx.PointerTo(float4, ir.SpaceUniform), globals, m.ctx.ConstantInt(0))
	ps.Store(color, ps.load(float4, tint))
	ps.end()

	m.mustProcess()
	if !m.declared(globals) {
		t.Fatal("Globals should survive")
	}
	if !m.declared(smp) {
		t.Error("a resource sharing a logical group with a live constant buffer should survive")
	}
}

func TestEliminateDeadCode_Reachability(t *testing.T) {
	m := newModule(t)
	leaf := m.entry("Leaf")
	leaf.end()
	mid := m.entry("Mid")
	mid.call(leaf)
	mid.end()
	root := m.entry("Root")
	root.call(mid)
	root.end()
	orphan := m.entry("Orphan")
	orphan.load(float4, declareVariable(m.ctx, float4, spirv.StorageClassPrivate, "OrphanOnly"))
	orphan.end()
	m.ctx.AddEntryPoint(spirv.ExecutionModelFragment, root.id, "Root", nil)
	m.ctx.AddEntryPoint(spirv.ExecutionModelFragment, orphan.id, "Orphan", nil)

	report := EliminateDeadCode(m.ctx, newAnalysisResult(), []uint32{root.id})
	m.ctx.Buffer().Sort()

	if report.Functions != 1 {
		t.Errorf("removed functions = %d, want 1", report.Functions)
	}
	if report.EntryPoints != 1 {
		t.Errorf("removed entry points = %d, want 1", report.EntryPoints)
	}
	if report.Variables != 1 {
		t.Errorf("removed variables = %d, want 1", report.Variables)
	}
	for _, name := range []string{"Leaf", "Mid", "Root"} {
		if m.named(name) == 0 {
			t.Errorf("%s should be kept", name)
		}
	}
	if m.named("Orphan") != 0 || m.named("OrphanOnly") != 0 {
		t.Error("unreachable function and its private variable should be removed")
	}
	if m.count(spirv.OpEntryPoint) != 1 {
		t.Errorf("OpEntryPoint count = %d", m.count(spirv.OpEntryPoint))
	}
	if !spirv.IsOrdered(m.ctx.Buffer().Instructions()) {
		t.Error("module out of order")
	}
}

func TestEliminateDeadCode_KeepsOperandsOfAllCoreOpcodes(t *testing.T) {
	m := newModule(t)
	c := m.ctx.ConstantFloat(0.5)
	f4 := m.ctx.GetOrRegister(float4)

	root := m.entry("Root")
	splat := root.CompositeConstruct(f4, c, c, c, c)
	root.UnaryOp(spirv.OpDPdxFine, f4, splat)
	root.UnaryOp(spirv.OpIsFinite, m.ctx.GetOrRegister(ir.Bool), c)
	root.end()
	m.ctx.AddEntryPoint(spirv.ExecutionModelFragment, root.id, "Root", nil)

	EliminateDeadCode(m.ctx, newAnalysisResult(), []uint32{root.id})
	m.ctx.Buffer().Sort()

	if !m.declared(c) {
		t.Error("a constant referenced only through core opcodes must be kept")
	}
	if m.count(spirv.OpDPdxFine) != 1 || m.count(spirv.OpIsFinite) != 1 {
		t.Error("reachable instructions must be kept")
	}
}

func TestEliminateDeadCode_UnknownOpcodePanics(t *testing.T) {
	m := newModule(t)
	root := m.entry("Root")
	root.Emit(spirv.NewInstruction(spirv.OpCode(4999), 1))
	root.end()

	defer func() {
		if _, ok := recover().(*spirv.InternalError); !ok {
			t.Error("expected an internal error panic")
		}
	}()
	EliminateDeadCode(m.ctx, newAnalysisResult(), []uint32{root.id})
}
