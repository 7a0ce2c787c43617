package iface

import (
	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// fieldPointer emits a pointer to the working-state slot of f.
func (l *stageLayout) fieldPointer(e *spirv.Emitter, f *StreamVariableInfo) uint32 {
	ctx := e.Context()
	base := l.streamsVar
	if inConstants(l.Stage, f) {
		base = l.constantsVar
	}
	if base == 0 || f.StreamIndex < 0 {
		panic(&spirv.InternalError{Message: "stream field " + f.Name + " has no slot in the " + l.Stage.String() + " stage"})
	}
	return e.AccessChain(ctx.PointerTo(f.Type, ir.SpacePrivate), base, ctx.ConstantInt(i32(f.StreamIndex)))
}

// streamPatcher rewrites the function instances of one stage: accesses to
// stream field variables go through the stage's working state, the
// per-vertex parameter takes the INPUT array type, and geometry emits copy
// the outputs first.
type streamPatcher struct {
	ctx       *spirv.Context
	streams   *AnalysisResult
	layout    *stageLayout
	instances map[uint32]uint32
	inputs    map[uint32]*vertexInput
}

// PatchMethods patches every instance, in the order the stage reached
// them.
func (p *streamPatcher) PatchMethods(order []uint32) {
	for _, original := range order {
		instance, ok := p.instances[original]
		if !ok {
			continue
		}
		p.patchMethod(original, instance)
	}
}

//nolint:gocyclo,cyclop // single pass over the body
func (p *streamPatcher) patchMethod(original, instance uint32) {
	buf := p.ctx.Buffer()
	start, end, ok := buf.FindFunction(instance)
	if !ok {
		panic(&spirv.InternalError{Message: "cannot patch undefined function " + p.ctx.Name(instance)})
	}

	var remap *vertexRemap
	if vin := p.inputs[original]; vin != nil {
		remap = p.newVertexRemap(vin, firstParameter(buf, start, end))
	}

	for i := start; i <= end; i++ {
		inst := buf.At(i)
		if !spirv.IsBody(*inst) {
			continue
		}
		switch inst.Opcode {
		case spirv.OpFunctionCall:
			if n, ok := p.instances[inst.Operand(2)]; ok {
				inst.Words[2] = n
			}
		case spirv.OpEmitVertex:
			if p.layout.Stage == ir.StageGeometry {
				n := p.emitOutputs(i)
				i += n
				end += n
				continue
			}
		}
		if remap != nil {
			remap.visit(*inst)
		}

		switch inst.Opcode {
		case spirv.OpVariable, spirv.OpLabel, spirv.OpPhi:
			continue
		}
		var targets []*StreamVariableInfo
		seen := make(map[uint32]bool)
		inst.MustVisitRefs(func(word *uint32) {
			f, ok := p.streams.byVariable[*word]
			if ok && f.VariableID == *word && !seen[*word] {
				seen[*word] = true
				targets = append(targets, f)
			}
		})
		if len(targets) == 0 {
			continue
		}

		e := p.ctx.EmitterAt(i)
		chains := make(map[uint32]uint32, len(targets))
		for _, f := range targets {
			chains[f.VariableID] = p.layout.fieldPointer(e, f)
		}
		n := e.Position() - i
		i += n
		end += n
		buf.At(i).MustVisitRefs(func(word *uint32) {
			if c, ok := chains[*word]; ok {
				*word = c
			}
		})
	}
}

func firstParameter(buf *spirv.Buffer, start, end int) uint32 {
	for i := start + 1; i < end; i++ {
		switch buf.At(i).Opcode {
		case spirv.OpFunctionParameter:
			return buf.At(i).ResultID()
		case spirv.OpLabel:
			return 0
		}
	}
	return 0
}

// emitOutputs inserts the output copies before the OpEmitVertex at index
// and returns how many instructions were inserted.
func (p *streamPatcher) emitOutputs(index int) int {
	e := p.ctx.EmitterAt(index)
	for _, f := range p.layout.outputs {
		ptr := p.layout.fieldPointer(e, f)
		v := e.Load(p.ctx.GetOrRegister(f.Type), ptr)
		v = convert(e, f.Type, f.outputType, v)
		e.Store(f.OutputID, v)
	}
	return e.Position() - index
}

// vertexRemap retypes the per-vertex parameter of a function instance to
// array<INPUT, N> and renumbers placeholder member indices to INPUT member
// indices.
type vertexRemap struct {
	ctx    *spirv.Context
	input  *vertexInput
	param  uint32
	types  map[uint32]uint32
	vertex map[uint32]int
}

func (p *streamPatcher) newVertexRemap(vin *vertexInput, param uint32) *vertexRemap {
	ctx := p.ctx
	placeholder := ir.Type(vin.placeholder)
	input := ir.Type(p.layout.Input)
	pairs := []struct{ from, to ir.Type }{
		{placeholder, input},
		{ir.ArrayType{Base: placeholder, Size: vin.count}, ir.ArrayType{Base: input, Size: vin.count}},
		{ir.PointerType{Base: placeholder, Space: ir.SpaceFunction}, ir.PointerType{Base: input, Space: ir.SpaceFunction}},
		{
			ir.PointerType{Base: ir.ArrayType{Base: placeholder, Size: vin.count}, Space: ir.SpaceFunction},
			ir.PointerType{Base: ir.ArrayType{Base: input, Size: vin.count}, Space: ir.SpaceFunction},
		},
	}
	r := &vertexRemap{
		ctx:    ctx,
		input:  vin,
		param:  param,
		types:  make(map[uint32]uint32),
		vertex: make(map[uint32]int),
	}
	for _, pair := range pairs {
		if from, ok := ctx.Types().Lookup(pair.from); ok {
			r.types[from] = ctx.GetOrRegister(pair.to)
		}
	}
	return r
}

// retype maps a type id through the substitution, registering the
// substituted function type on demand.
func (r *vertexRemap) retype(id uint32) uint32 {
	if n, ok := r.types[id]; ok {
		return n
	}
	t, ok := r.ctx.TypeOf(id)
	if !ok {
		return id
	}
	ft, ok := t.(ir.FunctionType)
	if !ok || len(ft.Params) == 0 {
		return id
	}
	params := append([]ir.Type(nil), ft.Params...)
	changed := false
	for i, pt := range params {
		pid, ok := r.ctx.Types().Lookup(pt)
		if !ok {
			continue
		}
		if n, ok := r.types[pid]; ok {
			params[i], _ = r.ctx.TypeOf(n)
			changed = true
		}
	}
	if !changed {
		return id
	}
	n := r.ctx.GetOrRegister(ir.FunctionType{Return: ft.Return, Params: params})
	r.types[id] = n
	return n
}

func (r *vertexRemap) member(m uint32) int {
	if int(m) >= len(r.input.fields) {
		panic(&spirv.InternalError{Message: "per-vertex member index out of range"})
	}
	f := r.input.fields[m]
	if f.InputIndex < 0 {
		panic(&spirv.InternalError{Message: "per-vertex member " + f.Name + " is not a stage input"})
	}
	return f.InputIndex
}

func (r *vertexRemap) memberConstant(id uint32) uint32 {
	m, ok := r.ctx.ConstantValue(id)
	if !ok {
		panic(&spirv.InternalError{Message: "per-vertex member index is not a constant"})
	}
	return r.ctx.ConstantInt(i32(r.member(uint32(m))))
}

func (r *vertexRemap) path(id uint32) (int, bool) {
	if id == r.param {
		return wholeArray, true
	}
	p, ok := r.vertex[id]
	return p, ok
}

func (r *vertexRemap) visit(inst spirv.Instruction) {
	switch inst.Opcode {
	case spirv.OpFunction:
		inst.Words[3] = r.retype(inst.Words[3])
	default:
		if rt := inst.ResultType(); rt != 0 {
			inst.Words[0] = r.retype(rt)
		}
	}

	switch inst.Opcode {
	case spirv.OpAccessChain, spirv.OpInBoundsAccessChain:
		path, ok := r.path(inst.Operand(2))
		if !ok {
			return
		}
		indices := inst.Words[3:]
		switch {
		case path == wholeArray && len(indices) == 1:
			r.vertex[inst.ResultID()] = wholeVertex
		case path == wholeArray:
			indices[1] = r.memberConstant(indices[1])
		case path == wholeVertex:
			indices[0] = r.memberConstant(indices[0])
		}
	case spirv.OpLoad, spirv.OpCopyObject:
		if path, ok := r.path(inst.Operand(2)); ok && path < 0 {
			r.vertex[inst.ResultID()] = path
		}
	case spirv.OpCompositeExtract:
		path, ok := r.path(inst.Operand(2))
		if !ok {
			return
		}
		indices := inst.Words[3:]
		switch {
		case path == wholeArray && len(indices) == 1:
			r.vertex[inst.ResultID()] = wholeVertex
		case path == wholeArray:
			indices[1] = u32(r.member(indices[1]))
		case path == wholeVertex:
			indices[0] = u32(r.member(indices[0]))
		}
	}
}
