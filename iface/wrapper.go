package iface

import (
	"go.uber.org/zap"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

var executionModels = map[ir.ShaderStage]spirv.ExecutionModel{
	ir.StageVertex:   spirv.ExecutionModelVertex,
	ir.StageHull:     spirv.ExecutionModelTessellationControl,
	ir.StageDomain:   spirv.ExecutionModelTessellationEvaluation,
	ir.StageGeometry: spirv.ExecutionModelGeometry,
	ir.StagePixel:    spirv.ExecutionModelFragment,
	ir.StageCompute:  spirv.ExecutionModelGLCompute,
}

// wrapperGenerator emits the void entry function of one stage: it fills
// the working state from the Input variables, calls the entry function and
// copies the working state to the Output variables.
type wrapperGenerator struct {
	ctx       *spirv.Context
	streams   *AnalysisResult
	entry     *stageEntry
	layout    *stageLayout
	instances map[uint32]uint32
	bodies    map[uint32][]spirv.Instruction

	e          *spirv.Emitter
	inputs     uint32
	invocation uint32
}

type paramSlot struct {
	param entryParam
	local uint32
}

// GenerateStreamWrapper emits the wrapper and its OpEntryPoint and returns
// the wrapper id.
func (g *wrapperGenerator) GenerateStreamWrapper() uint32 {
	ctx := g.ctx
	l := g.layout
	stage := g.entry.stage
	g.e = ctx.Emitter()
	e := g.e

	void := ctx.GetOrRegister(ir.VoidType{})
	fn := e.Function(void, ctx.GetOrRegister(ir.FunctionType{Return: ir.VoidType{}}), spirv.FunctionControlNone)
	e.Label()

	if stage.HasArrayInputs() {
		array := ir.ArrayType{Base: l.Input, Size: l.vertexCount}
		g.inputs = e.Variable(ctx.PointerTo(array, ir.SpaceFunction), spirv.StorageClassFunction)
	}
	entrySlots := g.declareLocals(g.entry.params)
	patchSlots := g.declareLocals(g.entry.patchParams)

	if stage.HasArrayInputs() {
		g.loadArrayInputs()
	} else {
		for _, f := range l.inputs {
			g.loadInput(f)
		}
	}

	args := g.arguments(entrySlots)
	e.FunctionCall(g.returnType(g.entry.id), g.instance(g.entry.id), args...)

	switch stage {
	case ir.StageHull:
		g.storeHullOutputs(patchSlots)
	case ir.StageGeometry:
		// Geometry outputs are written before each emitted vertex.
	default:
		for _, f := range l.outputs {
			g.storeOutput(f, f.OutputID)
		}
	}
	e.Return()
	e.FunctionEnd()

	ctx.AddName(fn, g.entry.name+"_Wrapper")
	g.moveExecutionModes(fn)
	ctx.AddEntryPoint(executionModels[stage], fn, g.entry.name, g.interfaceList())

	Logger().Debug("generated stream wrapper",
		zap.String("stage", stage.String()),
		zap.String("entry", g.entry.name),
		zap.Uint32("wrapper", fn))
	return fn
}

func (g *wrapperGenerator) instance(fn uint32) uint32 {
	if n, ok := g.instances[fn]; ok {
		return n
	}
	return fn
}

func (g *wrapperGenerator) returnType(fn uint32) uint32 {
	return g.bodies[fn][0].ResultType()
}

func (g *wrapperGenerator) typeID(t ir.Type) uint32 {
	return g.ctx.GetOrRegister(t)
}

// declareLocals declares the Function variables passed for pointer
// parameters. Variables must open the first block, so this runs before any
// other instruction of the wrapper.
func (g *wrapperGenerator) declareLocals(params []entryParam) []paramSlot {
	slots := make([]paramSlot, len(params))
	for i, p := range params {
		slots[i].param = p
		if p.arrayed {
			continue
		}
		if ptr, ok := p.typ.(ir.PointerType); ok {
			slots[i].local = g.e.Variable(g.typeID(ptr), spirv.StorageClassFunction)
		}
	}
	return slots
}

// arguments loads the built-ins behind semantic parameters.
func (g *wrapperGenerator) arguments(slots []paramSlot) []uint32 {
	e := g.e
	args := make([]uint32, 0, len(slots))
	for _, slot := range slots {
		p := slot.param
		if p.arrayed {
			args = append(args, g.inputs)
			continue
		}
		valueType := p.typ
		if ptr, ok := p.typ.(ir.PointerType); ok {
			valueType = ptr.Base
		}
		rule, _ := lookupBuiltin(g.entry.stage, dirInput, p.semantic)
		v := g.layout.builtinInput(g.ctx, rule, valueType, p.semantic)
		value := convert(e, v.typ, valueType, e.Load(g.typeID(v.typ), v.id))
		if slot.local == 0 {
			args = append(args, value)
			continue
		}
		e.Store(slot.local, value)
		args = append(args, slot.local)
	}
	return args
}

func (g *wrapperGenerator) loadInput(f *StreamVariableInfo) {
	e := g.e
	v := e.Load(g.typeID(f.inputType), f.InputID)
	v = convert(e, f.inputType, f.Type, v)
	e.Store(g.layout.fieldPointer(e, f), v)
}

// loadArrayInputs fills the INPUT array from the per-vertex variables,
// then copies the fields the stage reads directly or forwards from the
// invocation's own vertex (the first vertex in geometry and domain
// stages) into STREAMS.
func (g *wrapperGenerator) loadArrayInputs() {
	ctx, e, l := g.ctx, g.e, g.layout
	var perVertex []*StreamVariableInfo
	for _, f := range l.inputs {
		if inConstants(l.Stage, f) {
			g.loadInput(f)
			continue
		}
		perVertex = append(perVertex, f)

		rule, builtin := lookupBuiltin(l.Stage, dirInput, f.Semantic)
		arrayed := !builtin || rule.perVertex
		var shared uint32
		if !arrayed {
			shared = convert(e, f.inputType, f.Type, e.Load(g.typeID(f.inputType), f.InputID))
		}
		for k := 0; k < int(l.vertexCount); k++ {
			value := shared
			if arrayed {
				src := e.AccessChain(ctx.PointerTo(f.inputType, ir.SpaceInput), f.InputID, ctx.ConstantInt(i32(k)))
				value = convert(e, f.inputType, f.Type, e.Load(g.typeID(f.inputType), src))
			}
			dst := e.AccessChain(ctx.PointerTo(f.Type, ir.SpaceFunction), g.inputs,
				ctx.ConstantInt(i32(k)), ctx.ConstantInt(i32(f.InputIndex)))
			e.Store(dst, value)
		}
	}

	vertex := ctx.ConstantInt(0)
	if l.Stage == ir.StageHull {
		vertex = g.invocationID()
	}
	for _, f := range perVertex {
		if !f.accessedDirectly && !f.State.IsOutput() {
			continue
		}
		src := e.AccessChain(ctx.PointerTo(f.Type, ir.SpaceFunction), g.inputs, vertex, ctx.ConstantInt(i32(f.InputIndex)))
		e.Store(l.fieldPointer(e, f), e.Load(g.typeID(f.Type), src))
	}
}

// invocationID loads the control point index of a hull invocation once.
func (g *wrapperGenerator) invocationID() uint32 {
	if g.invocation != 0 {
		return g.invocation
	}
	rule, _ := lookupBuiltin(ir.StageHull, dirInput, "SV_OutputControlPointID")
	v := g.layout.builtinInput(g.ctx, rule, ir.Uint32, "SV_OutputControlPointID")
	g.invocation = convert(g.e, v.typ, ir.Uint32, g.e.Load(g.typeID(v.typ), v.id))
	return g.invocation
}

func (g *wrapperGenerator) storeOutput(f *StreamVariableInfo, dst uint32) {
	e := g.e
	v := e.Load(g.typeID(f.Type), g.layout.fieldPointer(e, f))
	e.Store(dst, convert(e, f.Type, f.outputType, v))
}

// storeHullOutputs writes the control point of this invocation, then the
// patch outputs. With a patch-constant function, invocation 0 computes
// them after every control point is written.
func (g *wrapperGenerator) storeHullOutputs(patchSlots []paramSlot) {
	ctx, e, l := g.ctx, g.e, g.layout
	invocation := g.invocationID()
	var patch []*StreamVariableInfo
	for _, f := range l.outputs {
		if inConstants(l.Stage, f) {
			patch = append(patch, f)
			continue
		}
		dst := f.OutputID
		if rule, builtin := lookupBuiltin(l.Stage, dirOutput, f.Semantic); !builtin || rule.perVertex {
			dst = e.AccessChain(ctx.PointerTo(f.outputType, ir.SpaceOutput), f.OutputID, invocation)
		}
		g.storeOutput(f, dst)
	}

	if g.entry.patchFunc == 0 {
		for _, f := range patch {
			g.storeOutput(f, f.OutputID)
		}
		return
	}

	e.ControlBarrier(spirv.ScopeWorkgroup, spirv.ScopeInvocation, spirv.MemorySemanticsNone)
	first := e.BinaryOp(spirv.OpIEqual, g.typeID(ir.Bool), invocation, ctx.ConstantUint(0))
	then, merge := ctx.AllocID(), ctx.AllocID()
	e.SelectionMerge(merge, spirv.SelectionControlNone)
	e.BranchConditional(first, then, merge)
	e.LabelWithID(then)
	args := g.arguments(patchSlots)
	e.FunctionCall(g.returnType(g.entry.patchFunc), g.instance(g.entry.patchFunc), args...)
	for _, f := range patch {
		g.storeOutput(f, f.OutputID)
	}
	e.Branch(merge)
	e.LabelWithID(merge)
}

// moveExecutionModes retargets the entry's execution modes to the wrapper
// and adds the ones the stage requires.
func (g *wrapperGenerator) moveExecutionModes(wrapper uint32) {
	buf := g.ctx.Buffer()
	modes := make(map[spirv.ExecutionMode]bool)
	for i := 0; i < buf.Len(); i++ {
		inst := buf.At(i)
		if inst.Opcode != spirv.OpExecutionMode && inst.Opcode != spirv.OpExecutionModeID {
			continue
		}
		if inst.Operand(0) == g.entry.id {
			inst.Words[0] = wrapper
		}
		if inst.Operand(0) == wrapper {
			modes[spirv.ExecutionMode(inst.Operand(1))] = true
		}
	}
	if g.entry.stage != ir.StagePixel {
		return
	}
	if !modes[spirv.ExecutionModeOriginUpperLeft] && !modes[spirv.ExecutionModeOriginLowerLeft] {
		g.ctx.AddExecutionMode(wrapper, spirv.ExecutionModeOriginUpperLeft)
	}
	if g.layout.depthOutput && !modes[spirv.ExecutionModeDepthReplacing] {
		g.ctx.AddExecutionMode(wrapper, spirv.ExecutionModeDepthReplacing)
	}
}

// interfaceList returns the OpEntryPoint interface. From SPIR-V 1.4 on it
// covers every module-scope variable the stage references.
func (g *wrapperGenerator) interfaceList() []uint32 {
	l := g.layout
	ids := append([]uint32(nil), l.Interface...)
	if g.ctx.Buffer().Version.AtLeast(spirv.Version1_4) {
		ids = append(ids, l.private...)
		for _, res := range g.streams.Resources {
			if res.UsedThisStage {
				ids = append(ids, res.ID)
			}
		}
		for _, cb := range g.streams.CBuffers {
			if cb.UsedThisStage {
				ids = append(ids, cb.ID)
			}
		}
	}
	l.Interface = ids
	return ids
}
