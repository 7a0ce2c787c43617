package iface

import (
	"strconv"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// vertexInput describes the per-vertex parameter of a geometry, hull or
// domain function: a Function pointer to an array of placeholder structs
// whose member names are stream field names.
type vertexInput struct {
	param       uint32
	placeholder ir.StructType
	count       uint32
	// fields maps placeholder member indices to stream fields; unknown
	// member names map to nil.
	fields []*StreamVariableInfo
}

const (
	wholeArray  = -2
	wholeVertex = -1
)

// streamAnalyzer computes per-stage read/write liveness by walking the
// pristine function bodies reachable from a stage's roots.
type streamAnalyzer struct {
	ctx     *spirv.Context
	streams *AnalysisResult
	live    *LiveAnalysis
	bodies  map[uint32][]spirv.Instruction
	inputs  map[uint32]*vertexInput
	onStack map[uint32]bool
	stack   []uint32
}

func newStreamAnalyzer(ctx *spirv.Context, streams *AnalysisResult, live *LiveAnalysis, bodies map[uint32][]spirv.Instruction) *streamAnalyzer {
	return &streamAnalyzer{
		ctx:     ctx,
		streams: streams,
		live:    live,
		bodies:  bodies,
		inputs:  make(map[uint32]*vertexInput),
		onStack: make(map[uint32]bool),
	}
}

// AnalyzeStreamReadWrites walks every function reachable from root and
// records stream field, resource and constant buffer usage.
func (a *streamAnalyzer) AnalyzeStreamReadWrites(root uint32) error {
	return a.analyzeMethod(root)
}

func (a *streamAnalyzer) analyzeMethod(id uint32) error {
	if a.onStack[id] {
		return errorf(ErrRecursiveCall, "function %s is called recursively from %s",
			a.describe(id), a.describe(a.stack[len(a.stack)-1]))
	}
	if !a.live.MarkMethodUsed(id) {
		return nil
	}
	body, ok := a.bodies[id]
	if !ok {
		return nil
	}

	a.onStack[id] = true
	a.stack = append(a.stack, id)
	defer func() {
		delete(a.onStack, id)
		a.stack = a.stack[:len(a.stack)-1]
	}()

	w := &methodWalk{
		analyzer: a,
		method:   a.live.Method(id),
		input:    a.inputs[id],
		roots:    make(map[uint32]uint32),
		vertex:   make(map[uint32]int),
	}
	for _, inst := range body {
		if err := w.visit(inst); err != nil {
			return err
		}
	}
	a.live.order = append(a.live.order, id)
	return nil
}

func (a *streamAnalyzer) describe(id uint32) string {
	if name := a.ctx.Name(id); name != "" {
		return name
	}
	return "%" + strconv.FormatUint(uint64(id), 10)
}

// methodWalk is the state of one pass over a function body. roots maps
// pointers derived from module variables back to the variable; vertex maps
// pointers and values derived from the per-vertex parameter to the
// placeholder member they address, or wholeVertex/wholeArray.
type methodWalk struct {
	analyzer *streamAnalyzer
	method   *MethodInfo
	input    *vertexInput
	roots    map[uint32]uint32
	vertex   map[uint32]int
}

func (w *methodWalk) root(id uint32) (uint32, bool) {
	r := w.analyzer.streams
	if _, ok := r.byVariable[id]; ok {
		return id, true
	}
	if _, ok := r.resources[id]; ok {
		return id, true
	}
	if _, ok := r.cbuffers[id]; ok {
		return id, true
	}
	v, ok := w.roots[id]
	return v, ok
}

// vertexPath returns what a pointer or value derived from the per-vertex
// parameter addresses.
func (w *methodWalk) vertexPath(id uint32) (int, bool) {
	if w.input == nil {
		return 0, false
	}
	if id == w.input.param {
		return wholeArray, true
	}
	path, ok := w.vertex[id]
	return path, ok
}

//nolint:gocyclo,cyclop // one case per pointer-consuming opcode
func (w *methodWalk) visit(inst spirv.Instruction) error {
	switch inst.Opcode {
	case spirv.OpAccessChain, spirv.OpInBoundsAccessChain, spirv.OpCopyObject:
		base := inst.Operand(2)
		if v, ok := w.root(base); ok {
			w.roots[inst.ResultID()] = v
			w.touchBinding(v)
			return nil
		}
		if path, ok := w.vertexPath(base); ok {
			w.chainVertex(inst.ResultID(), path, inst.Words[3:], true)
			return nil
		}

	case spirv.OpLoad:
		ptr := inst.Operand(2)
		if v, ok := w.root(ptr); ok {
			w.access(v, true, false)
			return nil
		}
		if path, ok := w.vertexPath(ptr); ok {
			if path >= 0 {
				w.readVertex(path)
			} else {
				w.vertex[inst.ResultID()] = path
			}
			return nil
		}

	case spirv.OpStore:
		if v, ok := w.root(inst.Operand(0)); ok {
			w.access(v, false, true)
			w.useValue(inst.Operand(1))
			return nil
		}

	case spirv.OpCopyMemory:
		target, source := inst.Operand(0), inst.Operand(1)
		if v, ok := w.root(source); ok {
			w.access(v, true, false)
		} else {
			w.useValue(source)
		}
		if v, ok := w.root(target); ok {
			w.access(v, false, true)
		}
		return nil

	case spirv.OpCompositeExtract:
		if path, ok := w.vertexPath(inst.Operand(2)); ok {
			w.chainVertex(inst.ResultID(), path, inst.Words[3:], false)
			return nil
		}

	case spirv.OpFunctionCall:
		callee := inst.Operand(2)
		if err := w.analyzer.analyzeMethod(callee); err != nil {
			return err
		}
		if w.analyzer.live.Method(callee).HasStreamAccess {
			w.method.HasStreamAccess = true
		}
		for _, arg := range inst.Words[3:] {
			if v, ok := w.root(arg); ok {
				w.access(v, true, true)
			} else {
				w.useValue(arg)
			}
		}
		return nil
	}

	inst.MustVisitRefs(func(word *uint32) {
		if v, ok := w.root(*word); ok {
			w.access(v, true, true)
			return
		}
		w.useValue(*word)
	})
	return nil
}

// chainVertex follows an access chain (literal indices when extracting)
// through the per-vertex parameter.
func (w *methodWalk) chainVertex(result uint32, path int, indices []uint32, constants bool) {
	w.method.HasStreamAccess = true
	member := func(word uint32) int {
		if !constants {
			return int(word)
		}
		v, ok := w.analyzer.ctx.ConstantValue(word)
		if !ok {
			return -1
		}
		return int(v)
	}
	switch {
	case path == wholeArray && len(indices) == 1:
		w.vertex[result] = wholeVertex
	case path == wholeArray && len(indices) >= 2:
		w.readMember(member(indices[1]), result, constants && len(indices) == 2)
	case path == wholeVertex && len(indices) >= 1:
		w.readMember(member(indices[0]), result, constants && len(indices) == 1)
	case path >= 0:
		w.readVertex(path)
	default:
		w.readAllVertex()
	}
}

// readMember records a member access. A pointer to exactly one member is
// remembered so that only its loads count as reads.
func (w *methodWalk) readMember(m int, result uint32, pointer bool) {
	if m < 0 {
		w.readAllVertex()
		return
	}
	if pointer {
		w.vertex[result] = m
		return
	}
	w.readVertex(m)
}

func (w *methodWalk) readVertex(member int) {
	w.method.HasStreamAccess = true
	if member >= len(w.input.fields) {
		return
	}
	if s := w.input.fields[member]; s != nil {
		s.vertexRead = true
		s.Read = true
	}
}

func (w *methodWalk) readAllVertex() {
	for i := range w.input.fields {
		w.readVertex(i)
	}
}

// useValue handles an operand that may carry a whole vertex or patch value.
func (w *methodWalk) useValue(id uint32) {
	if path, ok := w.vertexPath(id); ok {
		if path >= 0 {
			w.readVertex(path)
			return
		}
		w.readAllVertex()
	}
}

func (w *methodWalk) access(v uint32, read, write bool) {
	r := w.analyzer.streams
	s, ok := r.byVariable[v]
	if !ok {
		w.touchBinding(v)
		return
	}
	w.method.HasStreamAccess = true
	s.accessedDirectly = true
	if read && !s.Write {
		s.Read = true
	}
	if write {
		s.Write = true
	}
}

func (w *methodWalk) touchBinding(v uint32) {
	r := w.analyzer.streams
	if res, ok := r.resources[v]; ok {
		res.UsedThisStage = true
	}
	if cb, ok := r.cbuffers[v]; ok {
		cb.UsedThisStage = true
	}
}

// snapshotFunctions copies every function body, skipping declarations
// that were appended between OpFunction and OpFunctionEnd.
func snapshotFunctions(buf *spirv.Buffer) map[uint32][]spirv.Instruction {
	bodies := make(map[uint32][]spirv.Instruction)
	var current uint32
	var insts []spirv.Instruction
	for _, inst := range buf.Instructions() {
		switch {
		case inst.Opcode == spirv.OpFunction:
			current = inst.ResultID()
			insts = []spirv.Instruction{inst.Clone()}
		case current == 0 || !spirv.IsBody(inst):
			continue
		default:
			insts = append(insts, inst.Clone())
			if inst.Opcode == spirv.OpFunctionEnd {
				bodies[current] = insts
				current, insts = 0, nil
			}
		}
	}
	return bodies
}

// functionParams returns the parameter ids of a snapshot body.
func functionParams(body []spirv.Instruction) []uint32 {
	var params []uint32
	for _, inst := range body[1:] {
		if inst.Opcode != spirv.OpFunctionParameter {
			break
		}
		params = append(params, inst.ResultID())
	}
	return params
}
