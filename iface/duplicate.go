package iface

import (
	"go.uber.org/zap"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// methodDuplicator gives every stage its own instance of the functions
// whose stream accesses it patches. The first stage reaching a function
// patches it in place; later stages patch clones of the pristine body.
type methodDuplicator struct {
	ctx    *spirv.Context
	bodies map[uint32][]spirv.Instruction
	owners map[uint32]ir.ShaderStage
	clones int
}

func newMethodDuplicator(ctx *spirv.Context, bodies map[uint32][]spirv.Instruction) *methodDuplicator {
	return &methodDuplicator{
		ctx:    ctx,
		bodies: bodies,
		owners: make(map[uint32]ir.ShaderStage),
	}
}

// DuplicateMethods returns the instance stage must patch for each function
// with stream access it reaches, keyed by the original function id.
func (d *methodDuplicator) DuplicateMethods(stage ir.ShaderStage, live *LiveAnalysis) map[uint32]uint32 {
	instances := make(map[uint32]uint32)
	for _, id := range live.UsedMethods() {
		if !live.Method(id).HasStreamAccess {
			continue
		}
		if _, owned := d.owners[id]; !owned {
			d.owners[id] = stage
			instances[id] = id
			continue
		}
		instances[id] = d.clone(id, stage)
	}
	return instances
}

// clone copies the pristine body of fn with fresh ids right after the
// current definition of fn.
func (d *methodDuplicator) clone(fn uint32, stage ir.ShaderStage) uint32 {
	body := d.bodies[fn]
	fresh := make(map[uint32]uint32)
	for _, inst := range body {
		if r := inst.ResultID(); r != 0 {
			fresh[r] = d.ctx.AllocID()
		}
	}
	remap := func(word *uint32) {
		if n, ok := fresh[*word]; ok {
			*word = n
		}
	}

	insts := make([]spirv.Instruction, len(body))
	for i, inst := range body {
		c := inst.Clone()
		c.MustVisitIDs(func(_ spirv.OperandKind, word *uint32) { remap(word) })
		insts[i] = c
	}

	buf := d.ctx.Buffer()
	var annotations []spirv.Instruction
	for _, inst := range buf.Instructions() {
		if spirv.GetOrderGroup(inst) != spirv.GroupAnnotation || len(inst.Words) == 0 {
			continue
		}
		if _, ok := fresh[inst.Operand(0)]; ok {
			c := inst.Clone()
			remap(&c.Words[0])
			annotations = append(annotations, c)
		}
	}

	_, end, ok := buf.FindFunction(fn)
	if !ok {
		panic(&spirv.InternalError{Message: "cannot clone undefined function " + d.ctx.Name(fn)})
	}
	buf.Insert(end+1, insts...)
	for _, a := range annotations {
		d.ctx.Append(a)
	}

	id := fresh[fn]
	name := d.ctx.Name(fn)
	if name == "" {
		name = "function"
	}
	d.ctx.AddName(id, name+"_"+stage.Prefix())
	d.clones++

	Logger().Debug("duplicated method",
		zap.String("stage", stage.String()),
		zap.String("name", name),
		zap.Uint32("original", fn),
		zap.Uint32("clone", id))
	return id
}
