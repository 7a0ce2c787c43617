package spirv

// OperandKind classifies an operand slot.
type OperandKind uint8

const (
	KindIDResultType OperandKind = iota
	KindIDResult
	KindIDRef
	KindLiteralInteger
	KindLiteralString
	KindLiteralNumber // context-dependent literal, e.g. OpConstant value words
	KindCapability
	KindStorageClass
	KindDecoration
	KindBuiltIn
	KindExecutionModel
	KindExecutionMode
	KindAddressingModel
	KindMemoryModel
	KindFunctionControl
	KindSelectionControl
	KindLoopControl
	KindMemoryAccess
	KindImageOperands
	KindDim
	KindSourceLanguage
	KindPairIDRefIDRef
	KindPairIDRefLiteral
	KindPairLiteralIDRef
	KindGroupOperation
)

// Quantifier describes how often an operand occurs.
type Quantifier uint8

const (
	One Quantifier = iota
	Optional
	Variadic
)

// Operand describes one operand slot of an instruction.
type Operand struct {
	Kind  OperandKind
	Quant Quantifier
	Name  string
}

// Layout is the ordered operand list of an instruction.
type Layout []Operand

// Walk calls fn for every operand occurrence present in words with its
// starting word index and width. Missing required operands are skipped;
// surplus words are ignored.
func (l Layout) Walk(words []uint32, fn func(op Operand, at, n int)) {
	pos := 0
	for _, op := range l {
		for pos < len(words) {
			n := op.width(words[pos:])
			fn(op, pos, n)
			pos += n
			if op.Quant != Variadic {
				break
			}
		}
	}
}

// MinWords is the smallest operand word count an instruction with this
// layout can have.
func (l Layout) MinWords() int {
	n := 0
	for _, op := range l {
		if op.Quant != One {
			continue
		}
		switch op.Kind {
		case KindPairIDRefIDRef, KindPairIDRefLiteral, KindPairLiteralIDRef:
			n += 2
		default:
			n++
		}
	}
	return n
}

func (op Operand) width(words []uint32) int {
	switch op.Kind {
	case KindLiteralString:
		_, n := DecodeString(words)
		return n
	case KindPairIDRefIDRef, KindPairIDRefLiteral, KindPairLiteralIDRef:
		if len(words) < 2 {
			return len(words)
		}
		return 2
	default:
		return 1
	}
}

type schemaKey struct {
	op     OpCode
	sub    uint32
	hasSub bool
}

type opShape struct {
	hasType   bool
	hasResult bool
}

var (
	operandLayouts = make(map[schemaKey]Layout, 256)
	opShapes       = make(map[OpCode]opShape, 256)
)

// GetOperandLayout returns the operand layout registered for an opcode, or
// for an (opcode, sub-key) pair when the layout depends on a discriminant
// operand such as the decoration kind.
func GetOperandLayout(op OpCode, sub ...uint32) (Layout, bool) {
	if len(sub) > 0 {
		if l, ok := operandLayouts[schemaKey{op: op, sub: sub[0], hasSub: true}]; ok {
			return l, true
		}
	}
	l, ok := operandLayouts[schemaKey{op: op}]
	return l, ok
}

// LayoutOf resolves the layout of a concrete instruction, reading its
// discriminant operand when the opcode is sub-keyed.
func LayoutOf(inst Instruction) (Layout, bool) {
	switch inst.Opcode {
	case OpDecorate, OpDecorateString, OpDecorateID:
		return GetOperandLayout(inst.Opcode, inst.Operand(1))
	case OpMemberDecorate, OpMemberDecorateString:
		return GetOperandLayout(inst.Opcode, inst.Operand(2))
	default:
		return GetOperandLayout(inst.Opcode)
	}
}

// MustLayoutOf is LayoutOf for instructions the stitcher emits or rewrites;
// a missing layout there is an internal error.
func MustLayoutOf(inst Instruction) Layout {
	l, ok := LayoutOf(inst)
	if !ok {
		internalf("no operand layout for %s", inst.Opcode)
	}
	return l
}

func register(op OpCode, layout ...Operand) {
	operandLayouts[schemaKey{op: op}] = layout
	shape := opShape{}
	for i, o := range layout {
		if i == 0 && o.Kind == KindIDResultType {
			shape.hasType = true
		}
		if o.Kind == KindIDResult {
			shape.hasResult = true
		}
	}
	opShapes[op] = shape
}

func registerSub(op OpCode, sub uint32, layout ...Operand) {
	operandLayouts[schemaKey{op: op, sub: sub, hasSub: true}] = layout
}

func one(k OperandKind, name string) Operand  { return Operand{Kind: k, Quant: One, Name: name} }
func opt(k OperandKind, name string) Operand  { return Operand{Kind: k, Quant: Optional, Name: name} }
func many(k OperandKind, name string) Operand { return Operand{Kind: k, Quant: Variadic, Name: name} }

var (
	resultType = one(KindIDResultType, "result type")
	result     = one(KindIDResult, "result")
)

func ref(name string) Operand { return one(KindIDRef, name) }
func lit(name string) Operand { return one(KindLiteralInteger, name) }
func str(name string) Operand { return one(KindLiteralString, name) }

// typed registers "%type %result = op <refs...>", the shape shared by all
// value-producing arithmetic, logic and conversion instructions.
func typed(ops ...OpCode) {
	for _, op := range ops {
		register(op, resultType, result, many(KindIDRef, "operands"))
	}
}

//nolint:funlen // one table
func init() {
	register(OpNop)
	register(OpUndef, resultType, result)
	register(OpSourceContinued, str("continued source"))
	register(OpSource, one(KindSourceLanguage, "language"), lit("version"), opt(KindIDRef, "file"), opt(KindLiteralString, "source"))
	register(OpSourceExtension, str("extension"))
	register(OpName, ref("target"), str("name"))
	register(OpMemberName, ref("type"), lit("member"), str("name"))
	register(OpString, result, str("string"))
	register(OpLine, ref("file"), lit("line"), lit("column"))
	register(OpNoLine)
	register(OpModuleProcessed, str("process"))
	register(OpExtension, str("name"))
	register(OpExtInstImport, result, str("name"))
	register(OpExtInst, resultType, result, ref("set"), lit("instruction"), many(KindIDRef, "operands"))
	register(OpMemoryModel, one(KindAddressingModel, "addressing"), one(KindMemoryModel, "memory"))
	register(OpEntryPoint, one(KindExecutionModel, "model"), ref("entry point"), str("name"), many(KindIDRef, "interface"))
	register(OpExecutionMode, ref("entry point"), one(KindExecutionMode, "mode"), many(KindLiteralInteger, "operands"))
	register(OpExecutionModeID, ref("entry point"), one(KindExecutionMode, "mode"), many(KindIDRef, "operands"))
	register(OpCapability, one(KindCapability, "capability"))

	register(OpTypeVoid, result)
	register(OpTypeBool, result)
	register(OpTypeInt, result, lit("width"), lit("signedness"))
	register(OpTypeFloat, result, lit("width"))
	register(OpTypeVector, result, ref("component type"), lit("component count"))
	register(OpTypeMatrix, result, ref("column type"), lit("column count"))
	register(OpTypeImage, result, ref("sampled type"), one(KindDim, "dim"), lit("depth"), lit("arrayed"),
		lit("ms"), lit("sampled"), lit("format"), opt(KindLiteralInteger, "access"))
	register(OpTypeSampler, result)
	register(OpTypeSampledImage, result, ref("image type"))
	register(OpTypeArray, result, ref("element type"), ref("length"))
	register(OpTypeRuntimeArray, result, ref("element type"))
	register(OpTypeStruct, result, many(KindIDRef, "member types"))
	register(OpTypeOpaque, result, str("name"))
	register(OpTypePointer, result, one(KindStorageClass, "storage class"), ref("type"))
	register(OpTypeFunction, result, ref("return type"), many(KindIDRef, "parameter types"))

	register(OpConstantTrue, resultType, result)
	register(OpConstantFalse, resultType, result)
	register(OpConstant, resultType, result, one(KindLiteralNumber, "value"), many(KindLiteralNumber, "high words"))
	register(OpConstantComposite, resultType, result, many(KindIDRef, "constituents"))
	register(OpConstantSampler, resultType, result, lit("addressing"), lit("normalized"), lit("filter"))
	register(OpConstantNull, resultType, result)
	register(OpSpecConstantTrue, resultType, result)
	register(OpSpecConstantFalse, resultType, result)
	register(OpSpecConstant, resultType, result, one(KindLiteralNumber, "value"), many(KindLiteralNumber, "high words"))
	register(OpSpecConstantComposite, resultType, result, many(KindIDRef, "constituents"))
	register(OpSpecConstantOp, resultType, result, lit("opcode"), many(KindIDRef, "operands"))

	register(OpFunction, resultType, result, one(KindFunctionControl, "control"), ref("function type"))
	register(OpFunctionParameter, resultType, result)
	register(OpFunctionEnd)
	register(OpFunctionCall, resultType, result, ref("function"), many(KindIDRef, "arguments"))
	register(OpVariable, resultType, result, one(KindStorageClass, "storage class"), opt(KindIDRef, "initializer"))
	register(OpImageTexelPointer, resultType, result, ref("image"), ref("coordinate"), ref("sample"))
	register(OpLoad, resultType, result, ref("pointer"), many(KindMemoryAccess, "memory access"))
	register(OpStore, ref("pointer"), ref("object"), many(KindMemoryAccess, "memory access"))
	register(OpCopyMemory, ref("target"), ref("source"), many(KindMemoryAccess, "memory access"))
	register(OpAccessChain, resultType, result, ref("base"), many(KindIDRef, "indexes"))
	register(OpInBoundsAccessChain, resultType, result, ref("base"), many(KindIDRef, "indexes"))
	register(OpPtrAccessChain, resultType, result, ref("base"), ref("element"), many(KindIDRef, "indexes"))
	register(OpArrayLength, resultType, result, ref("structure"), lit("member"))

	register(OpDecorate, ref("target"), one(KindDecoration, "decoration"), many(KindLiteralInteger, "operands"))
	register(OpMemberDecorate, ref("structure type"), lit("member"), one(KindDecoration, "decoration"), many(KindLiteralInteger, "operands"))
	register(OpDecorateString, ref("target"), one(KindDecoration, "decoration"), many(KindLiteralString, "strings"))
	register(OpMemberDecorateString, ref("struct type"), lit("member"), one(KindDecoration, "decoration"), many(KindLiteralString, "strings"))
	register(OpDecorateID, ref("target"), one(KindDecoration, "decoration"), many(KindIDRef, "operands"))
	register(OpDecorationGroup, result)
	register(OpGroupDecorate, ref("decoration group"), many(KindIDRef, "targets"))
	register(OpGroupMemberDecorate, ref("decoration group"), many(KindPairIDRefLiteral, "targets"))

	for _, d := range []Decoration{
		DecorationSpecID, DecorationArrayStride, DecorationMatrixStride, DecorationStream,
		DecorationLocation, DecorationComponent, DecorationIndex, DecorationBinding,
		DecorationDescriptorSet, DecorationOffset, DecorationResourceGroupID,
	} {
		registerSub(OpDecorate, uint32(d), ref("target"), one(KindDecoration, "decoration"), lit("value"))
		registerSub(OpMemberDecorate, uint32(d), ref("structure type"), lit("member"), one(KindDecoration, "decoration"), lit("value"))
	}
	registerSub(OpDecorate, uint32(DecorationBuiltIn), ref("target"), one(KindDecoration, "decoration"), one(KindBuiltIn, "builtin"))
	registerSub(OpMemberDecorate, uint32(DecorationBuiltIn), ref("structure type"), lit("member"), one(KindDecoration, "decoration"), one(KindBuiltIn, "builtin"))
	for _, d := range []Decoration{
		DecorationBlock, DecorationBufferBlock, DecorationRowMajor, DecorationColMajor,
		DecorationNoPerspective, DecorationFlat, DecorationPatch, DecorationCentroid,
		DecorationSample, DecorationInvariant, DecorationNonWritable, DecorationNonReadable,
		DecorationRelaxedPrecision, DecorationStreamField,
	} {
		registerSub(OpDecorate, uint32(d), ref("target"), one(KindDecoration, "decoration"))
		registerSub(OpMemberDecorate, uint32(d), ref("structure type"), lit("member"), one(KindDecoration, "decoration"))
	}
	for _, d := range []Decoration{
		DecorationUserSemantic, DecorationUserType, DecorationPatchConstantFunc,
		DecorationResourceGroup, DecorationLogicalGroup,
	} {
		registerSub(OpDecorateString, uint32(d), ref("target"), one(KindDecoration, "decoration"), str("value"))
		registerSub(OpMemberDecorateString, uint32(d), ref("struct type"), lit("member"), one(KindDecoration, "decoration"), str("value"))
	}

	register(OpVectorExtractDynamic, resultType, result, ref("vector"), ref("index"))
	register(OpVectorInsertDynamic, resultType, result, ref("vector"), ref("component"), ref("index"))
	register(OpVectorShuffle, resultType, result, ref("vector 1"), ref("vector 2"), many(KindLiteralInteger, "components"))
	register(OpCompositeConstruct, resultType, result, many(KindIDRef, "constituents"))
	register(OpCompositeExtract, resultType, result, ref("composite"), many(KindLiteralInteger, "indexes"))
	register(OpCompositeInsert, resultType, result, ref("object"), ref("composite"), many(KindLiteralInteger, "indexes"))
	register(OpSampledImage, resultType, result, ref("image"), ref("sampler"))

	for _, op := range []OpCode{OpImageSampleImplicitLod, OpImageSampleExplicitLod, OpImageFetch, OpImageRead} {
		register(op, resultType, result, ref("image"), ref("coordinate"), opt(KindImageOperands, "image operands"), many(KindIDRef, "operand ids"))
	}
	for _, op := range []OpCode{OpImageSampleDrefImplicitLod, OpImageSampleDrefExplicitLod, OpImageGather, OpImageDrefGather} {
		register(op, resultType, result, ref("image"), ref("coordinate"), ref("component or dref"), opt(KindImageOperands, "image operands"), many(KindIDRef, "operand ids"))
	}
	register(OpImageWrite, ref("image"), ref("coordinate"), ref("texel"), opt(KindImageOperands, "image operands"), many(KindIDRef, "operand ids"))

	typed(
		OpCopyObject, OpTranspose, OpImage, OpImageQuerySizeLod, OpImageQuerySize, OpImageQueryLod,
		OpImageQueryLevels, OpImageQuerySamples,
		OpConvertFToU, OpConvertFToS, OpConvertSToF, OpConvertUToF, OpUConvert, OpSConvert, OpFConvert, OpBitcast,
		OpSNegate, OpFNegate, OpIAdd, OpFAdd, OpISub, OpFSub, OpIMul, OpFMul, OpUDiv, OpSDiv, OpFDiv,
		OpUMod, OpSRem, OpSMod, OpFRem, OpFMod, OpVectorTimesScalar, OpMatrixTimesScalar,
		OpVectorTimesMatrix, OpMatrixTimesVector, OpMatrixTimesMatrix, OpOuterProduct, OpDot,
		OpAny, OpAll, OpIsNan, OpIsInf,
		OpLogicalEqual, OpLogicalNotEqual, OpLogicalOr, OpLogicalAnd, OpLogicalNot, OpSelect,
		OpIEqual, OpINotEqual, OpUGreaterThan, OpSGreaterThan, OpUGreaterThanEqual, OpSGreaterThanEqual,
		OpULessThan, OpSLessThan, OpULessThanEqual, OpSLessThanEqual,
		OpFOrdEqual, OpFUnordEqual, OpFOrdNotEqual, OpFUnordNotEqual, OpFOrdLessThan, OpFUnordLessThan,
		OpFOrdGreaterThan, OpFUnordGreaterThan, OpFOrdLessThanEqual, OpFUnordLessThanEqual,
		OpFOrdGreaterThanEqual, OpFUnordGreaterThanEqual,
		OpShiftRightLogical, OpShiftRightArithmetic, OpShiftLeftLogical, OpBitwiseOr, OpBitwiseXor,
		OpBitwiseAnd, OpNot, OpBitFieldInsert, OpBitFieldSExtract, OpBitFieldUExtract, OpBitReverse, OpBitCount,
		OpDPdx, OpDPdy, OpFwidth,
		OpAtomicLoad, OpAtomicExchange, OpAtomicCompareExchange, OpAtomicIIncrement, OpAtomicIDecrement,
		OpAtomicIAdd, OpAtomicISub, OpAtomicSMin, OpAtomicUMin, OpAtomicSMax, OpAtomicUMax,
		OpAtomicAnd, OpAtomicOr, OpAtomicXor,
	)
	register(OpAtomicStore, ref("pointer"), ref("memory"), ref("semantics"), ref("value"))

	register(OpEmitVertex)
	register(OpEndPrimitive)
	register(OpControlBarrier, ref("execution"), ref("memory"), ref("semantics"))
	register(OpMemoryBarrier, ref("memory"), ref("semantics"))

	register(OpPhi, resultType, result, many(KindPairIDRefIDRef, "variable, parent"))
	register(OpLoopMerge, ref("merge block"), ref("continue target"), many(KindLoopControl, "loop control"))
	register(OpSelectionMerge, ref("merge block"), one(KindSelectionControl, "selection control"))
	register(OpLabel, result)
	register(OpBranch, ref("target label"))
	register(OpBranchConditional, ref("condition"), ref("true label"), ref("false label"), many(KindLiteralInteger, "branch weights"))
	register(OpSwitch, ref("selector"), ref("default"), many(KindPairLiteralIDRef, "target"))
	register(OpKill)
	register(OpReturn)
	register(OpReturnValue, ref("value"))
	register(OpUnreachable)
}
