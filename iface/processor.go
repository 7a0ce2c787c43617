package iface

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// stageOrder is the order stages are stitched in: consumers before
// producers, so each stage knows what the next one requires.
var stageOrder = []ir.ShaderStage{
	ir.StagePixel,
	ir.StageCompute,
	ir.StageGeometry,
	ir.StageDomain,
	ir.StageHull,
	ir.StageVertex,
}

// Options configures interface processing.
type Options struct {
	// EntryPointNames overrides the entry point name of a stage. An empty
	// name disables the stage.
	EntryPointNames map[ir.ShaderStage]string
}

// DefaultOptions returns the conventional entry point names.
func DefaultOptions() Options {
	return Options{EntryPointNames: map[ir.ShaderStage]string{
		ir.StageVertex:   "VSMain",
		ir.StageHull:     "HSMain",
		ir.StageDomain:   "DSMain",
		ir.StageGeometry: "GSMain",
		ir.StagePixel:    "PSMain",
		ir.StageCompute:  "CSMain",
	}}
}

func (o Options) entryPointNames() map[ir.ShaderStage]string {
	names := DefaultOptions().EntryPointNames
	for stage, name := range o.EntryPointNames {
		names[stage] = name
	}
	return names
}

// EntryPoint is a stitched stage entry point.
type EntryPoint struct {
	Name  string
	ID    uint32
	Stage ir.ShaderStage
}

// InputAttribute describes a vertex input for the input assembler.
type InputAttribute struct {
	Location      int
	SemanticName  string
	SemanticIndex int
}

// Result is the outcome of processing a module.
type Result struct {
	// EntryPoints lists the stitched stages in processing order.
	EntryPoints     []EntryPoint
	InputAttributes []InputAttribute
	Layouts         []StageLayout
	Streams         *AnalysisResult
	DCE             DCEReport
}

// Processor stitches the stages of an unlinked module.
type Processor struct {
	Options Options

	// CodeInserted is called whenever instructions are inserted before the
	// end of the buffer, with the insertion index and count.
	CodeInserted func(index, count int)
}

// NewProcessor creates a processor.
func NewProcessor(opts Options) *Processor {
	return &Processor{Options: opts}
}

// Process stitches the entry points named by the options into the module
// held by ctx. The module is only modified when processing succeeds.
func (p *Processor) Process(table *ir.SymbolTable, ctx *spirv.Context) (result *Result, err error) {
	work := ctx.Clone()
	work.Buffer().OnInsert = p.CodeInserted

	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*spirv.InternalError)
			if !ok {
				panic(r)
			}
			result, err = nil, &Error{Kind: ErrInternal, Message: ie.Message}
		}
	}()

	s := &session{
		ctx:   work,
		table: table,
		opts:  p.Options,
		live:  NewLiveAnalysis(),
	}
	result, err = s.run()
	if err != nil {
		return nil, err
	}
	ctx.Commit(work)
	return result, nil
}

// session is the state of one Process call.
type session struct {
	ctx   *spirv.Context
	table *ir.SymbolTable
	opts  Options

	index   *moduleIndex
	bodies  map[uint32][]spirv.Instruction
	streams *AnalysisResult
	live    *LiveAnalysis
	entries map[ir.ShaderStage]*stageEntry

	analyzer   *streamAnalyzer
	duplicator *methodDuplicator
}

func (s *session) describe(id uint32) string {
	if name := s.ctx.Name(id); name != "" {
		return name
	}
	return fmt.Sprintf("%%%d", id)
}

func (s *session) run() (*Result, error) {
	s.entries = resolveEntries(s.table, s.opts)
	if err := validateStages(s.entries); err != nil {
		return nil, err
	}

	s.streams = Analyze(s.ctx)
	if err := MergeSameSemanticVariables(s.ctx, s.streams); err != nil {
		return nil, err
	}
	s.index = indexModule(s.ctx.Buffer())
	s.bodies = snapshotFunctions(s.ctx.Buffer())
	s.analyzer = newStreamAnalyzer(s.ctx, s.streams, s.live, s.bodies)
	s.duplicator = newMethodDuplicator(s.ctx, s.bodies)

	for _, stage := range stageOrder {
		if e, ok := s.entries[stage]; ok {
			if err := e.prepare(s); err != nil {
				return nil, err
			}
		}
	}

	result := &Result{Streams: s.streams}
	var roots []uint32
	for _, stage := range stageOrder {
		e, ok := s.entries[stage]
		if !ok {
			continue
		}
		wrapper, layout, err := s.processStage(e)
		if err != nil {
			return nil, err
		}
		if layout != nil {
			roots = append(roots, wrapper)
			result.EntryPoints = append(result.EntryPoints, EntryPoint{Name: e.name, ID: wrapper, Stage: stage})
			result.Layouts = append(result.Layouts, layout.StageLayout)
			if stage == ir.StageVertex {
				result.InputAttributes = inputAttributes(layout)
			}
		}
	}

	s.addStageCapabilities()
	result.DCE = EliminateDeadCode(s.ctx, s.streams, roots)
	s.ctx.Buffer().Sort()
	return result, nil
}

// processStage stitches one stage. It returns a nil layout for a pixel
// stage without outputs, which is dropped.
func (s *session) processStage(e *stageEntry) (uint32, *stageLayout, error) {
	log := Logger().With(zap.String("stage", e.stage.String()), zap.String("entry", e.name))

	s.streams.ResetUsedThisStage()
	s.live.ResetUsedThisStage()
	s.analyzer.inputs = make(map[uint32]*vertexInput)
	if e.input != nil {
		s.analyzer.inputs[e.id] = e.input
	}
	if e.patchInput != nil {
		s.analyzer.inputs[e.patchFunc] = e.patchInput
	}
	if err := s.analyzer.AnalyzeStreamReadWrites(e.id); err != nil {
		return 0, nil, err
	}
	if e.patchFunc != 0 {
		if err := s.analyzer.AnalyzeStreamReadWrites(e.patchFunc); err != nil {
			return 0, nil, err
		}
	}
	s.resolveStates(e.stage)

	if e.stage == ir.StagePixel && !hasOutputs(s.streams) {
		log.Debug("pixel stage has no outputs, skipping")
		s.streams.PropagateStreamsFromPreviousStage(func(*StreamVariableInfo) bool { return true })
		return 0, nil, nil
	}

	layout, err := s.buildLayout(e)
	if err != nil {
		return 0, nil, err
	}
	instances := s.duplicator.DuplicateMethods(e.stage, s.live)
	patcher := &streamPatcher{
		ctx:       s.ctx,
		streams:   s.streams,
		layout:    layout,
		instances: instances,
		inputs:    s.analyzer.inputs,
	}
	patcher.PatchMethods(s.live.UsedMethods())

	gen := &wrapperGenerator{
		ctx:       s.ctx,
		streams:   s.streams,
		entry:     e,
		layout:    layout,
		instances: instances,
		bodies:    s.bodies,
	}
	wrapper := gen.GenerateStreamWrapper()
	log.Debug("stage stitched", zap.Uint32("wrapper", wrapper), zap.Int("instances", len(instances)))

	s.streams.PropagateStreamsFromPreviousStage(func(f *StreamVariableInfo) bool {
		return !s.propagates(e.stage, f)
	})
	return wrapper, layout, nil
}

func hasOutputs(r *AnalysisResult) bool {
	for _, f := range r.Streams {
		if f.Output() {
			return true
		}
	}
	return false
}

// propagates reports whether the previous stage must produce an input of
// stage. System values generated by the pipeline are not produced by the
// previous stage; per-vertex built-ins such as positions and clip
// distances are, and so are the primitive, layer and viewport indices a
// geometry stage writes for the pixel stage.
func (s *session) propagates(stage ir.ShaderStage, f *StreamVariableInfo) bool {
	if stage == ir.StagePixel && isPixelImplicit(f.Semantic) {
		return false
	}
	rule, builtin := lookupBuiltin(stage, dirInput, f.Semantic)
	if !builtin || rule.perVertex {
		return true
	}
	switch rule.builtin {
	case spirv.BuiltInPrimitiveID, spirv.BuiltInLayer, spirv.BuiltInViewportIndex:
		_, gs := s.entries[ir.StageGeometry]
		return stage == ir.StagePixel && gs
	}
	return false
}

func (s *session) addStageCapabilities() {
	_, hs := s.entries[ir.StageHull]
	_, ds := s.entries[ir.StageDomain]
	_, gs := s.entries[ir.StageGeometry]
	switch {
	case hs || ds:
		s.ctx.AddCapability(spirv.CapabilityTessellation)
	case gs:
		s.ctx.AddCapability(spirv.CapabilityGeometry)
	}
}

// inputAttributes lists the non built-in vertex inputs.
func inputAttributes(l *stageLayout) []InputAttribute {
	var attrs []InputAttribute
	for _, f := range l.inputs {
		if f.inputBuiltin {
			continue
		}
		sem := ParseSemantic(f.Semantic)
		attrs = append(attrs, InputAttribute{
			Location:      f.InputLocation,
			SemanticName:  sem.Name,
			SemanticIndex: sem.Index,
		})
	}
	return attrs
}
