package spirv

// Emitter writes function-body instructions into a Context, either at the
// end of the buffer or at a fixed insertion point that advances with every
// emitted instruction. Declarations the emitted code needs (types,
// constants) are still appended through the Context and never disturb the
// insertion point.
type Emitter struct {
	ctx *Context
	at  int // -1 appends
}

// Emitter returns an emitter appending to the end of the buffer.
func (c *Context) Emitter() *Emitter {
	return &Emitter{ctx: c, at: -1}
}

// EmitterAt returns an emitter inserting before instruction index.
func (c *Context) EmitterAt(index int) *Emitter {
	return &Emitter{ctx: c, at: index}
}

// Context returns the owning context.
func (e *Emitter) Context() *Context {
	return e.ctx
}

// Position returns the index the next instruction will occupy.
func (e *Emitter) Position() int {
	if e.at < 0 {
		return e.ctx.buf.Len()
	}
	return e.at
}

// Emit writes a raw instruction.
func (e *Emitter) Emit(inst Instruction) {
	if e.at < 0 {
		e.ctx.buf.Append(inst)
		return
	}
	e.ctx.buf.Insert(e.at, inst)
	e.at++
}

func (e *Emitter) emit(op OpCode, words ...uint32) {
	e.Emit(NewInstruction(op, words...))
}

func (e *Emitter) value(op OpCode, resultType uint32, operands ...uint32) uint32 {
	id := e.ctx.AllocID()
	words := make([]uint32, 0, len(operands)+2)
	words = append(words, resultType, id)
	words = append(words, operands...)
	e.emit(op, words...)
	return id
}

// Function opens a function definition.
func (e *Emitter) Function(returnType, funcType uint32, control FunctionControl) uint32 {
	return e.value(OpFunction, returnType, uint32(control), funcType)
}

// FunctionParameter adds a function parameter.
func (e *Emitter) FunctionParameter(typeID uint32) uint32 {
	return e.value(OpFunctionParameter, typeID)
}

// FunctionEnd closes a function definition.
func (e *Emitter) FunctionEnd() {
	e.emit(OpFunctionEnd)
}

// Label opens a basic block.
func (e *Emitter) Label() uint32 {
	id := e.ctx.AllocID()
	e.emit(OpLabel, id)
	return id
}

// LabelWithID opens a basic block with a pre-allocated id.
func (e *Emitter) LabelWithID(id uint32) {
	e.emit(OpLabel, id)
}

// Variable declares a variable at the insertion point.
func (e *Emitter) Variable(pointerType uint32, storageClass StorageClass) uint32 {
	return e.value(OpVariable, pointerType, uint32(storageClass))
}

// Load adds OpLoad.
func (e *Emitter) Load(resultType, pointer uint32) uint32 {
	return e.value(OpLoad, resultType, pointer)
}

// Store adds OpStore.
func (e *Emitter) Store(pointer, value uint32) {
	e.emit(OpStore, pointer, value)
}

// AccessChain adds OpAccessChain.
func (e *Emitter) AccessChain(resultType, base uint32, indices ...uint32) uint32 {
	return e.value(OpAccessChain, resultType, append([]uint32{base}, indices...)...)
}

// FunctionCall adds OpFunctionCall.
func (e *Emitter) FunctionCall(resultType, function uint32, args ...uint32) uint32 {
	return e.value(OpFunctionCall, resultType, append([]uint32{function}, args...)...)
}

// CompositeExtract adds OpCompositeExtract.
func (e *Emitter) CompositeExtract(resultType, composite uint32, indices ...uint32) uint32 {
	return e.value(OpCompositeExtract, resultType, append([]uint32{composite}, indices...)...)
}

// CompositeConstruct adds OpCompositeConstruct.
func (e *Emitter) CompositeConstruct(resultType uint32, constituents ...uint32) uint32 {
	return e.value(OpCompositeConstruct, resultType, constituents...)
}

// VectorShuffle adds OpVectorShuffle.
func (e *Emitter) VectorShuffle(resultType, v1, v2 uint32, components ...uint32) uint32 {
	return e.value(OpVectorShuffle, resultType, append([]uint32{v1, v2}, components...)...)
}

// UnaryOp adds a unary operation instruction.
func (e *Emitter) UnaryOp(opcode OpCode, resultType, operand uint32) uint32 {
	return e.value(opcode, resultType, operand)
}

// BinaryOp adds a binary operation instruction.
func (e *Emitter) BinaryOp(opcode OpCode, resultType, left, right uint32) uint32 {
	return e.value(opcode, resultType, left, right)
}

// Select adds OpSelect.
func (e *Emitter) Select(resultType, condition, accept, reject uint32) uint32 {
	return e.value(OpSelect, resultType, condition, accept, reject)
}

// ControlBarrier adds OpControlBarrier.
func (e *Emitter) ControlBarrier(execution, memory Scope, semantics MemorySemantics) {
	e.emit(OpControlBarrier,
		e.ctx.ConstantUint(uint32(execution)),
		e.ctx.ConstantUint(uint32(memory)),
		e.ctx.ConstantUint(uint32(semantics)))
}

// SelectionMerge adds OpSelectionMerge.
func (e *Emitter) SelectionMerge(mergeLabel uint32, control SelectionControl) {
	e.emit(OpSelectionMerge, mergeLabel, uint32(control))
}

// BranchConditional adds OpBranchConditional.
func (e *Emitter) BranchConditional(condition, trueLabel, falseLabel uint32) {
	e.emit(OpBranchConditional, condition, trueLabel, falseLabel)
}

// Branch adds OpBranch.
func (e *Emitter) Branch(target uint32) {
	e.emit(OpBranch, target)
}

// Return adds OpReturn.
func (e *Emitter) Return() {
	e.emit(OpReturn)
}

// ReturnValue adds OpReturnValue.
func (e *Emitter) ReturnValue(value uint32) {
	e.emit(OpReturnValue, value)
}

// EmitVertex adds OpEmitVertex.
func (e *Emitter) EmitVertex() {
	e.emit(OpEmitVertex)
}
