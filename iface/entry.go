package iface

import (
	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// stageEntry is a resolved entry point and everything its calling
// convention implies.
type stageEntry struct {
	stage ir.ShaderStage
	name  string
	id    uint32

	// input is the per-vertex parameter of array stages, nil otherwise.
	input  *vertexInput
	params []entryParam

	// Hull stages only.
	patchFunc      uint32
	patchInput     *vertexInput
	patchParams    []entryParam
	outputVertices uint32
}

// entryParam is a function parameter filled by the wrapper. The per-vertex
// array parameter has arrayed set; the others carry a system-value
// semantic.
type entryParam struct {
	typ      ir.Type
	semantic string
	arrayed  bool
}

// moduleIndex caches the declarations entry point resolution looks at.
type moduleIndex struct {
	paramSemantics map[uint32]map[uint32]string
	patchFuncs     map[uint32]string
	modes          map[uint32][]spirv.Instruction
}

func indexModule(buf *spirv.Buffer) *moduleIndex {
	idx := &moduleIndex{
		paramSemantics: make(map[uint32]map[uint32]string),
		patchFuncs:     make(map[uint32]string),
		modes:          make(map[uint32][]spirv.Instruction),
	}
	for _, inst := range buf.Instructions() {
		switch inst.Opcode {
		case spirv.OpMemberDecorateString:
			if spirv.Decoration(inst.Operand(2)) != spirv.DecorationUserSemantic {
				continue
			}
			fn := inst.Operand(0)
			if idx.paramSemantics[fn] == nil {
				idx.paramSemantics[fn] = make(map[uint32]string)
			}
			idx.paramSemantics[fn][inst.Operand(1)] = inst.StringAt(3)
		case spirv.OpDecorateString:
			if spirv.Decoration(inst.Operand(1)) == spirv.DecorationPatchConstantFunc {
				idx.patchFuncs[inst.Operand(0)] = inst.StringAt(2)
			}
		case spirv.OpExecutionMode, spirv.OpExecutionModeID:
			idx.modes[inst.Operand(0)] = append(idx.modes[inst.Operand(0)], inst)
		}
	}
	return idx
}

// executionMode returns the first literal of mode on fn.
func (idx *moduleIndex) executionMode(fn uint32, mode spirv.ExecutionMode) (uint32, bool) {
	for _, inst := range idx.modes[fn] {
		if spirv.ExecutionMode(inst.Operand(1)) == mode {
			return inst.Operand(2), true
		}
	}
	return 0, false
}

// resolveEntries looks up the configured entry point names.
func resolveEntries(table *ir.SymbolTable, opts Options) map[ir.ShaderStage]*stageEntry {
	entries := make(map[ir.ShaderStage]*stageEntry)
	for stage, name := range opts.entryPointNames() {
		if name == "" {
			continue
		}
		sym, ok := table.TryResolve(name)
		if !ok || sym.Kind != ir.SymbolFunction {
			continue
		}
		entries[stage] = &stageEntry{stage: stage, name: name, id: sym.ID}
	}
	return entries
}

// validateStages rejects stage combinations no pipeline can run.
func validateStages(entries map[ir.ShaderStage]*stageEntry) error {
	_, ps := entries[ir.StagePixel]
	_, cs := entries[ir.StageCompute]
	_, vs := entries[ir.StageVertex]
	switch {
	case !ps && !cs:
		return errorf(ErrNoTerminalStage, "no pixel or compute entry point found")
	case ps && cs:
		return errorf(ErrConflictingStages, "module declares both a pixel and a compute entry point")
	}
	for _, stage := range []ir.ShaderStage{ir.StageHull, ir.StageDomain, ir.StageGeometry} {
		if _, ok := entries[stage]; !ok {
			continue
		}
		if cs {
			return errorf(ErrConflictingStages, "%s entry point cannot be combined with a compute entry point", stage)
		}
		if !vs {
			return errorf(ErrMissingVertexStage, "%s entry point requires a vertex entry point", stage)
		}
	}
	if vs && cs {
		return errorf(ErrConflictingStages, "vertex entry point cannot be combined with a compute entry point")
	}
	return nil
}

// prepare inspects the entry signature, the hull patch-constant function
// and the per-vertex arities.
func (e *stageEntry) prepare(s *session) error {
	var err error
	e.input, e.params, err = s.signature(e.id, e.stage)
	if err != nil {
		return err
	}

	if e.stage == ir.StageHull {
		n, ok := s.index.executionMode(e.id, spirv.ExecutionModeOutputVertices)
		if !ok || n == 0 {
			return errorf(ErrMissingExecutionMode, "hull entry point %s has no OutputVertices execution mode", e.name)
		}
		e.outputVertices = n

		if name, ok := s.index.patchFuncs[e.id]; ok {
			sym, found := s.table.TryResolve(name)
			if !found || sym.Kind != ir.SymbolFunction {
				return errorf(ErrInternal, "patch constant function %q of %s is not defined", name, e.name)
			}
			if _, defined := s.bodies[sym.ID]; !defined {
				return errorf(ErrInternal, "patch constant function %q of %s has no body", name, e.name)
			}
			e.patchFunc = sym.ID
			e.patchInput, e.patchParams, err = s.signature(sym.ID, e.stage)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// signature classifies the parameters of fn under the calling convention
// of stage.
func (s *session) signature(fn uint32, stage ir.ShaderStage) (*vertexInput, []entryParam, error) {
	body, ok := s.bodies[fn]
	if !ok {
		return nil, nil, errorf(ErrInvalidEntrySignature, "entry function %s has no body", s.describe(fn))
	}
	ft, ok := s.ctx.TypeOf(body[0].Operand(3))
	fnType, isFunc := ft.(ir.FunctionType)
	if !ok || !isFunc {
		return nil, nil, errorf(ErrInternal, "function %s has no function type", s.describe(fn))
	}
	ids := functionParams(body)
	if len(ids) != len(fnType.Params) {
		return nil, nil, errorf(ErrInvalidEntrySignature, "function %s declares %d parameters for a %d-parameter type",
			s.describe(fn), len(ids), len(fnType.Params))
	}

	var input *vertexInput
	params := make([]entryParam, len(ids))
	for i, t := range fnType.Params {
		params[i].typ = t
		if i == 0 && stage.HasArrayInputs() {
			vin, err := s.vertexInputOf(fn, ids[0], t)
			if err != nil {
				return nil, nil, err
			}
			input = vin
			params[i].arrayed = true
			continue
		}
		semantic := s.index.paramSemantics[fn][u32(i)]
		if semantic == "" {
			return nil, nil, errorf(ErrInvalidEntrySignature, "parameter %d of %s has no semantic", i, s.describe(fn))
		}
		if _, ok := lookupBuiltin(stage, dirInput, semantic); !ok {
			return nil, nil, errorf(ErrInvalidEntrySignature, "parameter %d of %s: %s is not a %s system value",
				i, s.describe(fn), semantic, stage)
		}
		params[i].semantic = semantic
	}
	return input, params, nil
}

func (s *session) vertexInputOf(fn, param uint32, t ir.Type) (*vertexInput, error) {
	ptr, ok := t.(ir.PointerType)
	if !ok || ptr.Space != ir.SpaceFunction {
		return nil, errorf(ErrInvalidEntrySignature, "per-vertex parameter of %s must be a Function pointer, got %s",
			s.describe(fn), ir.TypeName(t))
	}
	arr, ok := ptr.Base.(ir.ArrayType)
	if !ok || arr.Size == 0 {
		return nil, errorf(ErrInvalidEntrySignature, "per-vertex parameter of %s must point to a sized array, got %s",
			s.describe(fn), ir.TypeName(ptr.Base))
	}
	st, ok := arr.Base.(ir.StructType)
	if !ok {
		return nil, errorf(ErrInvalidEntrySignature, "per-vertex parameter of %s must hold structs, got %s",
			s.describe(fn), ir.TypeName(arr.Base))
	}
	vin := &vertexInput{param: param, placeholder: st, count: arr.Size, fields: make([]*StreamVariableInfo, len(st.Members))}
	for i, m := range st.Members {
		field, ok := s.streams.StreamByName(m.Name)
		if !ok {
			return nil, errorf(ErrInvalidEntrySignature, "per-vertex member %q of %s is not a stream field", m.Name, s.describe(fn))
		}
		if field.Patch {
			return nil, errorf(ErrInvalidEntrySignature, "per-vertex member %q of %s is a patch field", m.Name, s.describe(fn))
		}
		vin.fields[i] = field
	}
	return vin, nil
}

// vertexCount returns the per-vertex input arity of an array stage.
func (s *session) vertexCount(e *stageEntry) uint32 {
	if e.input != nil {
		return e.input.count
	}
	if e.patchInput != nil {
		return e.patchInput.count
	}
	switch e.stage {
	case ir.StageGeometry:
		for mode, n := range map[spirv.ExecutionMode]uint32{
			spirv.ExecutionModeInputPoints:             1,
			spirv.ExecutionModeInputLines:              2,
			spirv.ExecutionModeTriangles:               3,
			spirv.ExecutionModeInputLinesAdjacency:     4,
			spirv.ExecutionModeInputTrianglesAdjacency: 6,
		} {
			if _, ok := s.index.executionMode(e.id, mode); ok {
				return n
			}
		}
		return 1
	case ir.StageDomain:
		if hs, ok := s.entries[ir.StageHull]; ok {
			return hs.outputVertices
		}
	case ir.StageHull:
		return e.outputVertices
	}
	return 1
}
