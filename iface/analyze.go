package iface

import (
	"go.uber.org/zap"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

type variableTags struct {
	stream       bool
	patch        bool
	semantic     string
	groupID      uint32
	hasGroupID   bool
	group        string
	logicalGroup string
}

// Analyze discovers stream fields, resources and constant buffers declared
// at module scope.
func Analyze(ctx *spirv.Context) *AnalysisResult {
	buf := ctx.Buffer()
	tags := make(map[uint32]*variableTags)
	tag := func(id uint32) *variableTags {
		t, ok := tags[id]
		if !ok {
			t = &variableTags{}
			tags[id] = t
		}
		return t
	}
	blocks := make(map[uint32]bool)
	pointees := make(map[uint32]uint32)

	for _, inst := range buf.Instructions() {
		switch inst.Opcode {
		case spirv.OpDecorate:
			target := inst.Operand(0)
			switch spirv.Decoration(inst.Operand(1)) {
			case spirv.DecorationStreamField:
				tag(target).stream = true
			case spirv.DecorationPatch:
				tag(target).patch = true
			case spirv.DecorationResourceGroupID:
				t := tag(target)
				t.groupID, t.hasGroupID = inst.Operand(2), true
			case spirv.DecorationBlock:
				blocks[target] = true
			}
		case spirv.OpDecorateString:
			target := inst.Operand(0)
			switch spirv.Decoration(inst.Operand(1)) {
			case spirv.DecorationUserSemantic:
				tag(target).semantic = inst.StringAt(2)
			case spirv.DecorationResourceGroup:
				tag(target).group = inst.StringAt(2)
			case spirv.DecorationLogicalGroup:
				tag(target).logicalGroup = inst.StringAt(2)
			}
		case spirv.OpTypePointer:
			pointees[inst.Operand(0)] = inst.Operand(2)
		}
	}

	r := newAnalysisResult()
	for _, inst := range buf.Instructions() {
		if inst.Opcode != spirv.OpVariable || spirv.IsBody(inst) {
			continue
		}
		id := inst.ResultID()
		t := tags[id]
		if t == nil {
			t = &variableTags{}
		}
		switch spirv.StorageClass(inst.Operand(2)) {
		case spirv.StorageClassPrivate:
			if !t.stream {
				continue
			}
			var fieldType ir.Type = ir.OpaqueType{ID: pointees[inst.ResultType()]}
			if pt, ok := ctx.TypeOf(inst.ResultType()); ok {
				if p, ok := pt.(ir.PointerType); ok {
					fieldType = p.Base
				}
			}
			s := newStreamVariableInfo(id, ctx.Name(id), fieldType)
			s.Semantic = t.semantic
			s.Patch = t.patch
			r.addStream(s)
		case spirv.StorageClassUniform:
			if blocks[pointees[inst.ResultType()]] {
				cb := &CBufferInfo{ID: id, Name: ctx.Name(id), LogicalGroup: t.logicalGroup}
				r.CBuffers = append(r.CBuffers, cb)
				r.cbuffers[id] = cb
				continue
			}
			r.addResource(id, ctx.Name(id), t)
		case spirv.StorageClassUniformConstant, spirv.StorageClassStorageBuffer:
			r.addResource(id, ctx.Name(id), t)
		}
	}
	return r
}

func (r *AnalysisResult) addStream(s *StreamVariableInfo) {
	r.Streams = append(r.Streams, s)
	r.byVariable[s.VariableID] = s
	if _, exists := r.byName[s.Name]; !exists {
		r.byName[s.Name] = s
	}
}

func (r *AnalysisResult) addResource(id uint32, name string, t *variableTags) {
	res := &ResourceInfo{
		ID:           id,
		Name:         name,
		GroupID:      t.groupID,
		HasGroupID:   t.hasGroupID,
		Group:        t.group,
		LogicalGroup: t.logicalGroup,
	}
	r.Resources = append(r.Resources, res)
	r.resources[id] = res
}

// MergeSameSemanticVariables unifies stream fields declared independently
// with the same semantic. The first declaration becomes canonical and every
// reference to a duplicate is rewritten to it; the duplicate's declaration,
// names and decorations are removed.
func MergeSameSemanticVariables(ctx *spirv.Context, r *AnalysisResult) error {
	canonical := make(map[string]*StreamVariableInfo)
	replace := make(map[uint32]*StreamVariableInfo)
	kept := r.Streams[:0]
	for _, s := range r.Streams {
		if s.Semantic == "" {
			kept = append(kept, s)
			continue
		}
		key := semanticKey(s.Semantic)
		first, ok := canonical[key]
		if !ok {
			canonical[key] = s
			kept = append(kept, s)
			continue
		}
		if !ir.Equal(first.Type, s.Type) {
			return errorf(ErrSemanticTypeMismatch, "stream %q (%s) and %q (%s) share semantic %s",
				first.Name, ir.TypeName(first.Type), s.Name, ir.TypeName(s.Type), s.Semantic)
		}
		first.Patch = first.Patch || s.Patch
		replace[s.VariableID] = first
	}
	if len(replace) == 0 {
		return nil
	}
	r.Streams = kept

	buf := ctx.Buffer()
	for i := 0; i < buf.Len(); i++ {
		inst := buf.At(i)
		switch inst.Opcode {
		case spirv.OpVariable:
			if _, dup := replace[inst.ResultID()]; dup {
				buf.Remove(i)
				continue
			}
		case spirv.OpName, spirv.OpDecorate, spirv.OpDecorateString, spirv.OpDecorateID:
			if _, dup := replace[inst.Operand(0)]; dup {
				buf.Remove(i)
				continue
			}
		}
		inst.MustVisitRefs(func(word *uint32) {
			if s, dup := replace[*word]; dup {
				*word = s.VariableID
			}
		})
	}
	for id, s := range replace {
		ctx.Forget(id)
		r.byVariable[id] = s
		Logger().Debug("merged stream field",
			zap.String("semantic", s.Semantic),
			zap.Uint32("duplicate", id),
			zap.Uint32("canonical", s.VariableID))
	}
	return nil
}
