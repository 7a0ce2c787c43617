package iface

import (
	"go.uber.org/zap"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// StageLayout is the synthesized interface of one stage.
type StageLayout struct {
	Stage ir.ShaderStage

	// Input holds the fields received from the previous stage, Output the
	// fields handed to the next one. Streams is the working state of the
	// stage and Constants its per-patch state (hull and domain only).
	Input     ir.StructType
	Output    ir.StructType
	Streams   ir.StructType
	Constants ir.StructType

	// Interface lists the variables the stage's OpEntryPoint declares.
	Interface []uint32
}

type builtinVariable struct {
	id  uint32
	typ ir.Type
}

// stageLayout is the working form of a StageLayout while a stage is
// stitched.
type stageLayout struct {
	StageLayout

	vertexCount    uint32
	outputVertices uint32

	streamsVar   uint32
	constantsVar uint32

	inputs  []*StreamVariableInfo
	outputs []*StreamVariableInfo

	builtins    map[spirv.BuiltIn]builtinVariable
	private     []uint32
	depthOutput bool
}

// inConstants reports whether a field lives in the per-patch CONSTANTS
// struct of stage rather than in STREAMS.
func inConstants(stage ir.ShaderStage, f *StreamVariableInfo) bool {
	return stage.HasPatchConstants() && (f.Patch || isTessFactor(f.Semantic))
}

// forcedOutput reports whether a fixed-function unit consumes a field the
// stage writes.
func forcedOutput(stage ir.ShaderStage, semantic string) bool {
	switch stage {
	case ir.StagePixel:
		return isTarget(semantic) || isDepth(semantic)
	case ir.StageCompute:
		return false
	case ir.StageHull:
		return isPosition(semantic) || isTessFactor(semantic)
	default:
		return isPosition(semantic)
	}
}

// resolveStates turns the liveness of the stage into field states.
func (s *session) resolveStates(stage ir.ShaderStage) {
	for _, f := range s.streams.Streams {
		if f.Write && forcedOutput(stage, f.Semantic) {
			f.Required = true
		}
		u := f.Usage()
		if stage == ir.StageHull && inConstants(stage, f) && u.Read && !u.Write {
			// Hull stages have no per-patch inputs.
			u = Usage{Write: true}
		}
		f.State = ResolveState(f.Required, u)
	}
}

// buildLayout declares the structs and variables of a stage.
func (s *session) buildLayout(e *stageEntry) (*stageLayout, error) {
	l := &stageLayout{
		StageLayout: StageLayout{Stage: e.stage},
		builtins:    make(map[spirv.BuiltIn]builtinVariable),
	}
	if e.stage.HasArrayInputs() {
		l.vertexCount = s.vertexCount(e)
	}
	l.outputVertices = e.outputVertices

	var used []*StreamVariableInfo
	for _, f := range s.streams.Streams {
		if f.UsedThisStage() {
			used = append(used, f)
		}
		if f.Input() {
			if rule, ok := lookupBuiltin(e.stage, dirInput, f.Semantic); ok {
				f.inputBuiltin = true
				f.inputType = rule.typ(f.Type)
			} else {
				if e.stage == ir.StageVertex && f.Semantic == "" {
					return nil, errorf(ErrMissingSemantic, "vertex input %s has no semantic", f.Name)
				}
				f.inputType = f.Type
			}
			l.inputs = append(l.inputs, f)
		}
		if f.Output() {
			if rule, ok := lookupBuiltin(e.stage, dirOutput, f.Semantic); ok {
				f.outputBuiltin = true
				f.outputType = rule.typ(f.Type)
			} else {
				f.outputType = f.Type
			}
			l.outputs = append(l.outputs, f)
		}
	}

	l.assignInputLocations()
	l.assignOutputLocations()
	l.buildStructs(s.ctx, used)
	l.declareInterface(s)

	Logger().Debug("stage layout",
		zap.String("stage", e.stage.String()),
		zap.Int("inputs", len(l.inputs)),
		zap.Int("outputs", len(l.outputs)),
		zap.Int("streams", len(l.Streams.Members)),
		zap.Int("constants", len(l.Constants.Members)))
	return l, nil
}

func (l *stageLayout) assignInputLocations() {
	next := 0
	for _, f := range l.inputs {
		if f.inputBuiltin {
			continue
		}
		f.InputLocation = next
		next += locationCount(f.inputType)
	}
}

// assignOutputLocations keeps the locations the next stage chose, puts
// SV_TargetN at N and packs the remaining outputs after the highest used
// location.
func (l *stageLayout) assignOutputLocations() {
	end := 0
	reserve := func(f *StreamVariableInfo) {
		if n := f.OutputLocation + locationCount(f.outputType); n > end {
			end = n
		}
	}
	for _, f := range l.outputs {
		switch {
		case f.outputBuiltin:
			f.OutputLocation = -1
		case f.OutputLocation >= 0:
			reserve(f)
		case isTarget(f.Semantic):
			f.OutputLocation = ParseSemantic(f.Semantic).Index
			reserve(f)
		}
	}
	for _, f := range l.outputs {
		if f.outputBuiltin || f.OutputLocation >= 0 {
			continue
		}
		f.OutputLocation = end
		end += locationCount(f.outputType)
	}
}

// buildStructs synthesizes the stage structs. used lists every field the
// stage touches, in declaration order.
func (l *stageLayout) buildStructs(ctx *spirv.Context, used []*StreamVariableInfo) {
	prefix := l.Stage.Prefix()
	l.Streams = ir.StructType{Name: prefix + "_STREAMS"}
	l.Constants = ir.StructType{Name: prefix + "_CONSTANTS"}
	l.Input = ir.StructType{Name: prefix + "_INPUT"}
	l.Output = ir.StructType{Name: prefix + "_OUTPUT"}

	for _, f := range used {
		member := ir.StructMember{Name: f.Name, Type: f.Type}
		if inConstants(l.Stage, f) {
			f.StreamIndex = len(l.Constants.Members)
			l.Constants.Members = append(l.Constants.Members, member)
		} else {
			f.StreamIndex = len(l.Streams.Members)
			l.Streams.Members = append(l.Streams.Members, member)
		}
	}
	for _, f := range l.inputs {
		if l.Stage.HasArrayInputs() && inConstants(l.Stage, f) {
			continue
		}
		f.InputIndex = len(l.Input.Members)
		l.Input.Members = append(l.Input.Members, ir.StructMember{Name: f.Name, Type: f.Type})
	}
	for _, f := range l.outputs {
		f.OutputIndex = len(l.Output.Members)
		l.Output.Members = append(l.Output.Members, ir.StructMember{Name: f.Name, Type: f.Type})
	}

	// Every stage struct is interned, empty ones included; dead code
	// elimination drops those nothing refers to.
	structs := []ir.StructType{l.Input, l.Output, l.Streams}
	if l.Stage.HasPatchConstants() {
		structs = append(structs, l.Constants)
	}
	for _, st := range structs {
		ctx.GetOrRegister(st)
	}
	if len(l.Streams.Members) > 0 {
		l.streamsVar = declareVariable(ctx, l.Streams, spirv.StorageClassPrivate, "streams"+prefix)
		l.private = append(l.private, l.streamsVar)
	}
	if len(l.Constants.Members) > 0 {
		l.constantsVar = declareVariable(ctx, l.Constants, spirv.StorageClassPrivate, "constants"+prefix)
		l.private = append(l.private, l.constantsVar)
	}
}

func declareVariable(ctx *spirv.Context, t ir.Type, storage spirv.StorageClass, name string) uint32 {
	ptr := ctx.PointerTo(t, ir.AddressSpace(storage))
	id := ctx.AllocID()
	ctx.Append(spirv.NewInstruction(spirv.OpVariable, ptr, id, uint32(storage)))
	ctx.AddName(id, name)
	return id
}

// declareInterface creates the Input and Output variables of the stage.
func (l *stageLayout) declareInterface(s *session) {
	ctx := s.ctx
	prefix := l.Stage.Prefix()
	for _, f := range l.inputs {
		rule, builtin := lookupBuiltin(l.Stage, dirInput, f.Semantic)
		t := f.inputType
		patch := inConstants(l.Stage, f)
		if l.Stage.HasArrayInputs() && !patch && (!builtin || rule.perVertex) {
			t = ir.ArrayType{Base: f.inputType, Size: l.vertexCount}
		} else if builtin {
			if v, ok := l.builtins[rule.builtin]; ok {
				f.InputID = v.id
				continue
			}
		}
		f.InputID = declareVariable(ctx, t, spirv.StorageClassInput, "in_"+prefix+"_"+f.Name)
		l.decorate(ctx, f.InputID, f, dirInput, rule, builtin, patch)
		if builtin && !isArray(t) {
			l.builtins[rule.builtin] = builtinVariable{id: f.InputID, typ: t}
		}
	}
	for _, f := range l.outputs {
		rule, builtin := lookupBuiltin(l.Stage, dirOutput, f.Semantic)
		t := f.outputType
		patch := l.Stage == ir.StageHull && inConstants(l.Stage, f)
		if l.Stage == ir.StageHull && !patch && (!builtin || rule.perVertex) {
			t = ir.ArrayType{Base: f.outputType, Size: l.outputVertices}
		}
		f.OutputID = declareVariable(ctx, t, spirv.StorageClassOutput, "out_"+prefix+"_"+f.Name)
		l.decorate(ctx, f.OutputID, f, dirOutput, rule, builtin, patch)
		if builtin && rule.builtin == spirv.BuiltInFragDepth {
			l.depthOutput = true
		}
	}
}

func isArray(t ir.Type) bool {
	_, ok := t.(ir.ArrayType)
	return ok
}

func (l *stageLayout) decorate(ctx *spirv.Context, id uint32, f *StreamVariableInfo, dir direction,
	rule builtinRule, builtin, patch bool) {
	l.Interface = append(l.Interface, id)
	if patch {
		ctx.AddDecoration(id, spirv.DecorationPatch)
	}
	if builtin {
		ctx.AddDecoration(id, spirv.DecorationBuiltIn, uint32(rule.builtin))
		for _, c := range rule.capabilities {
			ctx.AddCapability(c)
		}
		return
	}

	location, t := f.InputLocation, f.inputType
	if dir == dirOutput {
		location, t = f.OutputLocation, f.outputType
	}
	ctx.AddDecoration(id, spirv.DecorationLocation, u32(location))
	if f.Semantic != "" {
		ctx.AddDecorationString(id, spirv.DecorationUserSemantic, f.Semantic)
	}
	if needsFlat(t) && flatAllowed(l.Stage, dir) {
		ctx.AddDecoration(id, spirv.DecorationFlat)
	}
}

// flatAllowed reports whether integer interface variables of stage take the
// Flat decoration in dir. Vertex inputs and pixel outputs never do.
func flatAllowed(stage ir.ShaderStage, dir direction) bool {
	switch stage {
	case ir.StageCompute:
		return false
	case ir.StageVertex:
		return dir == dirOutput
	case ir.StagePixel:
		return dir == dirInput
	default:
		return true
	}
}

// builtinInput returns the Input variable backing rule, declaring it on
// first use.
func (l *stageLayout) builtinInput(ctx *spirv.Context, rule builtinRule, field ir.Type, name string) builtinVariable {
	if v, ok := l.builtins[rule.builtin]; ok {
		return v
	}
	t := rule.typ(field)
	v := builtinVariable{
		id:  declareVariable(ctx, t, spirv.StorageClassInput, "in_"+l.Stage.Prefix()+"_"+name),
		typ: t,
	}
	ctx.AddDecoration(v.id, spirv.DecorationBuiltIn, uint32(rule.builtin))
	for _, c := range rule.capabilities {
		ctx.AddCapability(c)
	}
	l.builtins[rule.builtin] = v
	l.Interface = append(l.Interface, v.id)
	return v
}
