package iface

import (
	"fortio.org/safecast"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// StreamVariableInfo describes one stream field. Liveness fields describe
// the stage being processed and are reset between stages; locations
// assigned to a stage's inputs become the previous stage's output
// locations.
type StreamVariableInfo struct {
	Name     string
	Type     ir.Type
	Semantic string
	Patch    bool

	// VariableID is the canonical Private variable of the field.
	VariableID uint32

	// Required is set when the following stage consumes the field or a
	// fixed-function unit does.
	Required bool
	Read     bool
	Write    bool
	State    StreamState

	// accessedDirectly is set when code reads or writes the Private
	// variable; vertexRead when an array-input entry reads the field through
	// its per-vertex parameter.
	accessedDirectly bool
	vertexRead       bool

	InputID        uint32
	OutputID       uint32
	InputLocation  int
	OutputLocation int

	// Field indices in the stage structs, -1 when absent. Patch fields live
	// in CONSTANTS and use StreamIndex for their CONSTANTS slot.
	StreamIndex int
	InputIndex  int
	OutputIndex int

	// inputType and outputType are the declared types of the stage's
	// interface variables, which differ from Type when a built-in imposes
	// one.
	inputType     ir.Type
	outputType    ir.Type
	inputBuiltin  bool
	outputBuiltin bool
}

func newStreamVariableInfo(id uint32, name string, t ir.Type) *StreamVariableInfo {
	return &StreamVariableInfo{
		Name:           name,
		Type:           t,
		VariableID:     id,
		InputLocation:  -1,
		OutputLocation: -1,
		StreamIndex:    -1,
		InputIndex:     -1,
		OutputIndex:    -1,
	}
}

// Usage returns the recorded usage of the current stage.
func (s *StreamVariableInfo) Usage() Usage {
	return Usage{Read: s.Read, Write: s.Write}
}

// Input reports whether the current stage receives the field.
func (s *StreamVariableInfo) Input() bool { return s.State.IsInput() }

// Output reports whether the current stage produces the field.
func (s *StreamVariableInfo) Output() bool { return s.State.IsOutput() }

// UsedThisStage reports whether the current stage needs a slot for the
// field.
func (s *StreamVariableInfo) UsedThisStage() bool { return s.State.Used() }

// ResetUsage clears everything the current stage computed, keeping the
// field identity and Required.
func (s *StreamVariableInfo) ResetUsage() {
	s.Read, s.Write = false, false
	s.accessedDirectly, s.vertexRead = false, false
	s.State = StateUnused
	s.InputID, s.OutputID = 0, 0
	s.StreamIndex, s.InputIndex, s.OutputIndex = -1, -1, -1
	s.inputType, s.outputType = nil, nil
	s.inputBuiltin, s.outputBuiltin = false, false
}

// ResourceInfo describes a UniformConstant or storage buffer variable.
type ResourceInfo struct {
	ID   uint32
	Name string

	// Grouping: resources sharing a group id, a group name or a logical
	// group are kept or removed together.
	GroupID      uint32
	HasGroupID   bool
	Group        string
	LogicalGroup string

	UsedThisStage bool
}

// CBufferInfo describes a constant buffer: a Uniform variable whose struct
// type is decorated Block.
type CBufferInfo struct {
	ID           uint32
	Name         string
	LogicalGroup string

	UsedThisStage bool
}

// AnalysisResult is everything discovered in the module before stage
// processing. Fields are listed in declaration order.
type AnalysisResult struct {
	Streams   []*StreamVariableInfo
	Resources []*ResourceInfo
	CBuffers  []*CBufferInfo

	byVariable map[uint32]*StreamVariableInfo
	byName     map[string]*StreamVariableInfo
	resources  map[uint32]*ResourceInfo
	cbuffers   map[uint32]*CBufferInfo
}

func newAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		byVariable: make(map[uint32]*StreamVariableInfo),
		byName:     make(map[string]*StreamVariableInfo),
		resources:  make(map[uint32]*ResourceInfo),
		cbuffers:   make(map[uint32]*CBufferInfo),
	}
}

// Stream returns the field whose variable is id.
func (r *AnalysisResult) Stream(id uint32) (*StreamVariableInfo, bool) {
	s, ok := r.byVariable[id]
	return s, ok
}

// StreamByName returns the field called name.
func (r *AnalysisResult) StreamByName(name string) (*StreamVariableInfo, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Resource returns the resource whose variable is id.
func (r *AnalysisResult) Resource(id uint32) (*ResourceInfo, bool) {
	res, ok := r.resources[id]
	return res, ok
}

// CBuffer returns the constant buffer whose variable is id.
func (r *AnalysisResult) CBuffer(id uint32) (*CBufferInfo, bool) {
	cb, ok := r.cbuffers[id]
	return cb, ok
}

// ResetUsedThisStage clears per-stage liveness of fields and bindings.
func (r *AnalysisResult) ResetUsedThisStage() {
	for _, s := range r.Streams {
		s.ResetUsage()
	}
	for _, res := range r.Resources {
		res.UsedThisStage = false
	}
	for _, cb := range r.CBuffers {
		cb.UsedThisStage = false
	}
}

// PropagateStreamsFromPreviousStage moves to the previous stage: fields the
// finished stage takes as inputs become required outputs, at the same
// locations.
func (r *AnalysisResult) PropagateStreamsFromPreviousStage(excluded func(*StreamVariableInfo) bool) {
	for _, s := range r.Streams {
		s.Required = Propagate(s.State) && (excluded == nil || !excluded(s))
		if s.Required {
			s.OutputLocation = s.InputLocation
		} else {
			s.OutputLocation = -1
		}
		s.InputLocation = -1
		s.ResetUsage()
	}
}

// MethodInfo is the per-stage liveness of one function.
type MethodInfo struct {
	UsedThisStage   bool
	HasStreamAccess bool
}

// LiveAnalysis tracks which functions each stage reaches.
type LiveAnalysis struct {
	Methods map[uint32]*MethodInfo
	// order lists functions in the order the current stage reached them,
	// callees before callers.
	order []uint32
}

// NewLiveAnalysis creates an empty analysis.
func NewLiveAnalysis() *LiveAnalysis {
	return &LiveAnalysis{Methods: make(map[uint32]*MethodInfo)}
}

// MarkMethodUsed marks a function used this stage and reports whether it
// was newly marked.
func (l *LiveAnalysis) MarkMethodUsed(id uint32) bool {
	m, ok := l.Methods[id]
	if !ok {
		m = &MethodInfo{}
		l.Methods[id] = m
	}
	if m.UsedThisStage {
		return false
	}
	m.UsedThisStage = true
	return true
}

// Method returns the liveness record of a function.
func (l *LiveAnalysis) Method(id uint32) *MethodInfo {
	m, ok := l.Methods[id]
	if !ok {
		m = &MethodInfo{}
		l.Methods[id] = m
	}
	return m
}

// UsedMethods lists the functions reached this stage, callees first.
func (l *LiveAnalysis) UsedMethods() []uint32 {
	return l.order
}

// ResetUsedThisStage clears per-stage flags.
func (l *LiveAnalysis) ResetUsedThisStage() {
	for _, m := range l.Methods {
		m.UsedThisStage = false
		m.HasStreamAccess = false
	}
	l.order = l.order[:0]
}

// u32 converts a count, index or location to a SPIR-V literal. Overflow is
// an internal error.
func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(&spirv.InternalError{Message: err.Error()})
	}
	return v
}

func i32(n int) int32 {
	v, err := safecast.Conv[int32](n)
	if err != nil {
		panic(&spirv.InternalError{Message: err.Error()})
	}
	return v
}
