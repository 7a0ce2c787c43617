package iface

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/gogpu/stitch/spirv"
)

// DCEReport counts what dead code elimination removed.
type DCEReport struct {
	Functions   int
	Variables   int
	Types       int
	Constants   int
	Decorations int
	Names       int
	EntryPoints int
}

type functionRange struct {
	start, end int
}

// deadCodeEliminator removes everything unreachable from a set of root
// functions. Resources and constant buffers sharing a group are kept or
// removed together.
type deadCodeEliminator struct {
	ctx     *spirv.Context
	streams *AnalysisResult
	roots   map[uint32]bool

	functions map[uint32]functionRange
	order     []uint32
	reachable map[uint32]bool
	live      map[uint32]bool
	pending   []uint32
	removed   map[uint32]bool
	report    DCEReport
}

// EliminateDeadCode removes functions, declarations, debug names and
// decorations not reachable from roots, drops entry points and execution
// modes of other functions and strips the front-end vendor decorations.
func EliminateDeadCode(ctx *spirv.Context, streams *AnalysisResult, roots []uint32) DCEReport {
	d := &deadCodeEliminator{
		ctx:       ctx,
		streams:   streams,
		roots:     make(map[uint32]bool, len(roots)),
		functions: make(map[uint32]functionRange),
		reachable: make(map[uint32]bool),
		live:      make(map[uint32]bool),
		removed:   make(map[uint32]bool),
	}
	for _, r := range roots {
		d.roots[r] = true
	}
	d.indexFunctions()
	d.markReachable(roots)
	d.removeFunctions()
	d.markLive()
	d.removeDeclarations()
	d.removeAnnotations()

	Logger().Debug("dead code eliminated",
		zap.Int("removed_functions", d.report.Functions),
		zap.Int("removed_variables", d.report.Variables),
		zap.Int("removed_types", d.report.Types),
		zap.Int("removed_constants", d.report.Constants),
		zap.Int("removed_decorations", d.report.Decorations))
	return d.report
}

func (d *deadCodeEliminator) indexFunctions() {
	var current uint32
	start := 0
	for i, inst := range d.ctx.Buffer().Instructions() {
		switch inst.Opcode {
		case spirv.OpFunction:
			current, start = inst.ResultID(), i
		case spirv.OpFunctionEnd:
			d.functions[current] = functionRange{start: start, end: i}
			d.order = append(d.order, current)
			current = 0
		}
	}
}

func (d *deadCodeEliminator) body(fn uint32, visit func(i int, inst spirv.Instruction)) {
	r, ok := d.functions[fn]
	if !ok {
		return
	}
	buf := d.ctx.Buffer()
	for i := r.start; i <= r.end; i++ {
		if inst := *buf.At(i); spirv.IsBody(inst) {
			visit(i, inst)
		}
	}
}

func (d *deadCodeEliminator) markReachable(roots []uint32) {
	work := append([]uint32(nil), roots...)
	for len(work) > 0 {
		fn := work[len(work)-1]
		work = work[:len(work)-1]
		if d.reachable[fn] {
			continue
		}
		d.reachable[fn] = true
		d.body(fn, func(_ int, inst spirv.Instruction) {
			if inst.Opcode == spirv.OpFunctionCall {
				work = append(work, inst.Operand(2))
			}
		})
	}
}

func (d *deadCodeEliminator) removeFunctions() {
	buf := d.ctx.Buffer()
	for _, fn := range d.order {
		if d.reachable[fn] {
			continue
		}
		d.body(fn, func(i int, inst spirv.Instruction) {
			if id := inst.ResultID(); id != 0 {
				d.removed[id] = true
			}
			buf.Remove(i)
		})
		d.report.Functions++
	}
}

func (d *deadCodeEliminator) mark(id uint32) {
	if id == 0 || d.live[id] {
		return
	}
	d.live[id] = true
	d.pending = append(d.pending, id)
}

func (d *deadCodeEliminator) markRefs(inst spirv.Instruction) {
	inst.MustVisitRefs(func(word *uint32) { d.mark(*word) })
}

// markLive computes the closure of ids referenced from reachable code,
// entry points and execution modes of the roots.
func (d *deadCodeEliminator) markLive() {
	buf := d.ctx.Buffer()
	declarations := make(map[uint32]spirv.Instruction)
	decoratedIDs := make(map[uint32][]spirv.Instruction)
	for _, inst := range buf.Instructions() {
		switch {
		case spirv.GetOrderGroup(inst) == spirv.GroupDeclaration:
			if id := inst.ResultID(); id != 0 {
				declarations[id] = inst
			}
		case inst.Opcode == spirv.OpDecorateID:
			decoratedIDs[inst.Operand(0)] = append(decoratedIDs[inst.Operand(0)], inst)
		case inst.Opcode == spirv.OpEntryPoint && d.roots[inst.Operand(1)],
			inst.Opcode == spirv.OpExecutionModeID && d.roots[inst.Operand(0)]:
			d.markRefs(inst)
		}
	}
	for _, fn := range d.order {
		if !d.reachable[fn] {
			continue
		}
		d.body(fn, func(_ int, inst spirv.Instruction) {
			d.mark(inst.ResultID())
			d.markRefs(inst)
		})
	}

	for {
		for len(d.pending) > 0 {
			id := d.pending[len(d.pending)-1]
			d.pending = d.pending[:len(d.pending)-1]
			if decl, ok := declarations[id]; ok {
				d.markRefs(decl)
			}
			for _, deco := range decoratedIDs[id] {
				d.markRefs(deco)
			}
		}
		if !d.markGroups() {
			return
		}
	}
}

// markGroups keeps every member of a resource group alive once one member
// is. It reports whether anything new was marked.
func (d *deadCodeEliminator) markGroups() bool {
	type member struct {
		id   uint32
		keys []string
	}
	var members []member
	for _, res := range d.streams.Resources {
		m := member{id: res.ID}
		if res.HasGroupID {
			m.keys = append(m.keys, "id:"+strconv.FormatUint(uint64(res.GroupID), 10))
		}
		if res.Group != "" {
			m.keys = append(m.keys, "group:"+res.Group)
		}
		if res.LogicalGroup != "" {
			m.keys = append(m.keys, "logical:"+res.LogicalGroup)
		}
		members = append(members, m)
	}
	for _, cb := range d.streams.CBuffers {
		if cb.LogicalGroup != "" {
			members = append(members, member{id: cb.ID, keys: []string{"logical:" + cb.LogicalGroup}})
		}
	}

	liveGroups := make(map[string]bool)
	for _, m := range members {
		if d.live[m.id] {
			for _, k := range m.keys {
				liveGroups[k] = true
			}
		}
	}
	changed := false
	for _, m := range members {
		if d.live[m.id] {
			continue
		}
		for _, k := range m.keys {
			if liveGroups[k] {
				d.mark(m.id)
				changed = true
				break
			}
		}
	}
	return changed
}

func (d *deadCodeEliminator) removeDeclarations() {
	buf := d.ctx.Buffer()
	for i := 0; i < buf.Len(); i++ {
		inst := *buf.At(i)
		if spirv.GetOrderGroup(inst) != spirv.GroupDeclaration {
			continue
		}
		id := inst.ResultID()
		if id == 0 || d.live[id] {
			continue
		}
		switch {
		case inst.Opcode == spirv.OpVariable:
			d.report.Variables++
		case isTypeDeclaration(inst.Opcode):
			d.report.Types++
		default:
			d.report.Constants++
		}
		buf.Remove(i)
		d.ctx.Forget(id)
		d.removed[id] = true
	}
}

func isTypeDeclaration(op spirv.OpCode) bool {
	switch op {
	case spirv.OpTypeEvent, spirv.OpTypeDeviceEvent, spirv.OpTypeReserveId, spirv.OpTypeQueue,
		spirv.OpTypePipe, spirv.OpTypePipeStorage, spirv.OpTypeNamedBarrier:
		return true
	}
	return op >= spirv.OpTypeVoid && op <= spirv.OpTypeFunction
}

//nolint:gocyclo,cyclop // one case per annotation opcode
func (d *deadCodeEliminator) removeAnnotations() {
	buf := d.ctx.Buffer()
	for i := 0; i < buf.Len(); i++ {
		inst := *buf.At(i)
		target := inst.Operand(0)
		drop := false
		switch inst.Opcode {
		case spirv.OpName, spirv.OpMemberName:
			if d.removed[target] {
				d.report.Names++
				drop = true
			}
		case spirv.OpDecorate, spirv.OpDecorateString, spirv.OpDecorateID:
			drop = d.removed[target] || spirv.Decoration(inst.Operand(1)).IsVendor()
		case spirv.OpMemberDecorate, spirv.OpMemberDecorateString:
			_, onFunction := d.functions[target]
			drop = d.removed[target] || onFunction
		case spirv.OpExecutionMode, spirv.OpExecutionModeID:
			drop = !d.roots[target]
		case spirv.OpEntryPoint:
			if !d.roots[inst.Operand(1)] {
				d.report.EntryPoints++
				drop = true
			}
		}
		if !drop {
			continue
		}
		if spirv.GetOrderGroup(inst) == spirv.GroupAnnotation {
			d.report.Decorations++
		}
		buf.Remove(i)
	}
}
