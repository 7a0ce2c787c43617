package spirv

// Core opcodes the stitcher never emits itself but must carry through
// untouched. Every one of them has a layout so that id walking, cloning and
// dead code elimination see all of its references.
const (
	OpTypeEvent                               OpCode = 34
	OpTypeDeviceEvent                         OpCode = 35
	OpTypeReserveId                           OpCode = 36
	OpTypeQueue                               OpCode = 37
	OpTypePipe                                OpCode = 38
	OpTypeForwardPointer                      OpCode = 39
	OpCopyMemorySized                         OpCode = 64
	OpGenericPtrMemSemantics                  OpCode = 69
	OpInBoundsPtrAccessChain                  OpCode = 70
	OpImageSampleProjImplicitLod              OpCode = 91
	OpImageSampleProjExplicitLod              OpCode = 92
	OpImageSampleProjDrefImplicitLod          OpCode = 93
	OpImageSampleProjDrefExplicitLod          OpCode = 94
	OpImageQueryFormat                        OpCode = 101
	OpImageQueryOrder                         OpCode = 102
	OpQuantizeToF16                           OpCode = 116
	OpConvertPtrToU                           OpCode = 117
	OpSatConvertSToU                          OpCode = 118
	OpSatConvertUToS                          OpCode = 119
	OpConvertUToPtr                           OpCode = 120
	OpPtrCastToGeneric                        OpCode = 121
	OpGenericCastToPtr                        OpCode = 122
	OpGenericCastToPtrExplicit                OpCode = 123
	OpIAddCarry                               OpCode = 149
	OpISubBorrow                              OpCode = 150
	OpUMulExtended                            OpCode = 151
	OpSMulExtended                            OpCode = 152
	OpIsFinite                                OpCode = 158
	OpIsNormal                                OpCode = 159
	OpSignBitSet                              OpCode = 160
	OpLessOrGreater                           OpCode = 161
	OpOrdered                                 OpCode = 162
	OpUnordered                               OpCode = 163
	OpDPdxFine                                OpCode = 210
	OpDPdyFine                                OpCode = 211
	OpFwidthFine                              OpCode = 212
	OpDPdxCoarse                              OpCode = 213
	OpDPdyCoarse                              OpCode = 214
	OpFwidthCoarse                            OpCode = 215
	OpEmitStreamVertex                        OpCode = 220
	OpEndStreamPrimitive                      OpCode = 221
	OpAtomicCompareExchangeWeak               OpCode = 231
	OpLifetimeStart                           OpCode = 256
	OpLifetimeStop                            OpCode = 257
	OpGroupAsyncCopy                          OpCode = 259
	OpGroupWaitEvents                         OpCode = 260
	OpGroupAll                                OpCode = 261
	OpGroupAny                                OpCode = 262
	OpGroupBroadcast                          OpCode = 263
	OpGroupIAdd                               OpCode = 264
	OpGroupFAdd                               OpCode = 265
	OpGroupFMin                               OpCode = 266
	OpGroupUMin                               OpCode = 267
	OpGroupSMin                               OpCode = 268
	OpGroupFMax                               OpCode = 269
	OpGroupUMax                               OpCode = 270
	OpGroupSMax                               OpCode = 271
	OpReadPipe                                OpCode = 274
	OpWritePipe                               OpCode = 275
	OpReservedReadPipe                        OpCode = 276
	OpReservedWritePipe                       OpCode = 277
	OpReserveReadPipePackets                  OpCode = 278
	OpReserveWritePipePackets                 OpCode = 279
	OpCommitReadPipe                          OpCode = 280
	OpCommitWritePipe                         OpCode = 281
	OpIsValidReserveId                        OpCode = 282
	OpGetNumPipePackets                       OpCode = 283
	OpGetMaxPipePackets                       OpCode = 284
	OpGroupReserveReadPipePackets             OpCode = 285
	OpGroupReserveWritePipePackets            OpCode = 286
	OpGroupCommitReadPipe                     OpCode = 287
	OpGroupCommitWritePipe                    OpCode = 288
	OpEnqueueMarker                           OpCode = 291
	OpEnqueueKernel                           OpCode = 292
	OpGetKernelNDrangeSubGroupCount           OpCode = 293
	OpGetKernelNDrangeMaxSubGroupSize         OpCode = 294
	OpGetKernelWorkGroupSize                  OpCode = 295
	OpGetKernelPreferredWorkGroupSizeMultiple OpCode = 296
	OpRetainEvent                             OpCode = 297
	OpReleaseEvent                            OpCode = 298
	OpCreateUserEvent                         OpCode = 299
	OpIsValidEvent                            OpCode = 300
	OpSetUserEventStatus                      OpCode = 301
	OpCaptureEventProfilingInfo               OpCode = 302
	OpGetDefaultQueue                         OpCode = 303
	OpBuildNDRange                            OpCode = 304
	OpImageSparseSampleImplicitLod            OpCode = 305
	OpImageSparseSampleExplicitLod            OpCode = 306
	OpImageSparseSampleDrefImplicitLod        OpCode = 307
	OpImageSparseSampleDrefExplicitLod        OpCode = 308
	OpImageSparseSampleProjImplicitLod        OpCode = 309
	OpImageSparseSampleProjExplicitLod        OpCode = 310
	OpImageSparseSampleProjDrefImplicitLod    OpCode = 311
	OpImageSparseSampleProjDrefExplicitLod    OpCode = 312
	OpImageSparseFetch                        OpCode = 313
	OpImageSparseGather                       OpCode = 314
	OpImageSparseDrefGather                   OpCode = 315
	OpImageSparseTexelsResident               OpCode = 316
	OpAtomicFlagTestAndSet                    OpCode = 318
	OpAtomicFlagClear                         OpCode = 319
	OpImageSparseRead                         OpCode = 320
	OpSizeOf                                  OpCode = 321
	OpTypePipeStorage                         OpCode = 322
	OpConstantPipeStorage                     OpCode = 323
	OpCreatePipeFromPipeStorage               OpCode = 324
	OpGetKernelLocalSizeForSubgroupCount      OpCode = 325
	OpGetKernelMaxNumSubgroups                OpCode = 326
	OpTypeNamedBarrier                        OpCode = 327
	OpNamedBarrierInitialize                  OpCode = 328
	OpMemoryNamedBarrier                      OpCode = 329
	OpGroupNonUniformElect                    OpCode = 333
	OpGroupNonUniformAll                      OpCode = 334
	OpGroupNonUniformAny                      OpCode = 335
	OpGroupNonUniformAllEqual                 OpCode = 336
	OpGroupNonUniformBroadcast                OpCode = 337
	OpGroupNonUniformBroadcastFirst           OpCode = 338
	OpGroupNonUniformBallot                   OpCode = 339
	OpGroupNonUniformInverseBallot            OpCode = 340
	OpGroupNonUniformBallotBitExtract         OpCode = 341
	OpGroupNonUniformBallotBitCount           OpCode = 342
	OpGroupNonUniformBallotFindLSB            OpCode = 343
	OpGroupNonUniformBallotFindMSB            OpCode = 344
	OpGroupNonUniformShuffle                  OpCode = 345
	OpGroupNonUniformShuffleXor               OpCode = 346
	OpGroupNonUniformShuffleUp                OpCode = 347
	OpGroupNonUniformShuffleDown              OpCode = 348
	OpGroupNonUniformIAdd                     OpCode = 349
	OpGroupNonUniformFAdd                     OpCode = 350
	OpGroupNonUniformIMul                     OpCode = 351
	OpGroupNonUniformFMul                     OpCode = 352
	OpGroupNonUniformSMin                     OpCode = 353
	OpGroupNonUniformUMin                     OpCode = 354
	OpGroupNonUniformFMin                     OpCode = 355
	OpGroupNonUniformSMax                     OpCode = 356
	OpGroupNonUniformUMax                     OpCode = 357
	OpGroupNonUniformFMax                     OpCode = 358
	OpGroupNonUniformBitwiseAnd               OpCode = 359
	OpGroupNonUniformBitwiseOr                OpCode = 360
	OpGroupNonUniformBitwiseXor               OpCode = 361
	OpGroupNonUniformLogicalAnd               OpCode = 362
	OpGroupNonUniformLogicalOr                OpCode = 363
	OpGroupNonUniformLogicalXor               OpCode = 364
	OpGroupNonUniformQuadBroadcast            OpCode = 365
	OpGroupNonUniformQuadSwap                 OpCode = 366
	OpCopyLogical                             OpCode = 400
	OpPtrEqual                                OpCode = 401
	OpPtrNotEqual                             OpCode = 402
	OpPtrDiff                                 OpCode = 403
	OpTerminateInvocation                     OpCode = 4416
	OpSubgroupBallotKHR                       OpCode = 4421
	OpSubgroupFirstInvocationKHR              OpCode = 4422
	OpSubgroupAllKHR                          OpCode = 4428
	OpSubgroupAnyKHR                          OpCode = 4429
	OpSubgroupAllEqualKHR                     OpCode = 4430
	OpGroupNonUniformRotateKHR                OpCode = 4431
	OpSubgroupReadInvocationKHR               OpCode = 4432
	OpSDot                                    OpCode = 4450
	OpUDot                                    OpCode = 4451
	OpSUDot                                   OpCode = 4452
	OpSDotAccSat                              OpCode = 4453
	OpUDotAccSat                              OpCode = 4454
	OpSUDotAccSat                             OpCode = 4455
	OpBeginInvocationInterlockEXT             OpCode = 5364
	OpEndInvocationInterlockEXT               OpCode = 5365
	OpDemoteToHelperInvocation                OpCode = 5380
	OpIsHelperInvocationEXT                   OpCode = 5381
)

func init() {
	for op, name := range grammarNames {
		opcodeNames[op] = name
	}
	for _, op := range []OpCode{
		OpTypeEvent, OpTypeDeviceEvent, OpTypeReserveId, OpTypeQueue, OpTypePipe,
		OpTypeForwardPointer, OpTypePipeStorage, OpTypeNamedBarrier, OpConstantPipeStorage,
	} {
		orderGroups[op] = GroupDeclaration
	}

	register(OpTypeEvent, result)
	register(OpTypeDeviceEvent, result)
	register(OpTypeReserveId, result)
	register(OpTypeQueue, result)
	register(OpTypePipe, result, lit("access qualifier"))
	register(OpTypeForwardPointer, ref("pointer type"), one(KindStorageClass, "storage class"))
	register(OpTypePipeStorage, result)
	register(OpTypeNamedBarrier, result)
	register(OpConstantPipeStorage, resultType, result, lit("packet size"), lit("packet alignment"), lit("capacity"))

	register(OpCopyMemorySized, ref("target"), ref("source"), ref("size"), many(KindMemoryAccess, "memory access"))
	register(OpGenericCastToPtrExplicit, resultType, result, ref("pointer"), one(KindStorageClass, "storage"))

	image := []Operand{resultType, result, ref("image"), ref("coordinate")}
	operands := []Operand{opt(KindImageOperands, "image operands"), many(KindIDRef, "operand ids")}
	for _, op := range []OpCode{
		OpImageSampleProjImplicitLod, OpImageSampleProjExplicitLod,
		OpImageSparseSampleImplicitLod, OpImageSparseSampleExplicitLod,
		OpImageSparseSampleProjImplicitLod, OpImageSparseSampleProjExplicitLod,
		OpImageSparseFetch, OpImageSparseRead,
	} {
		register(op, concat(image, operands)...)
	}
	for _, op := range []OpCode{
		OpImageSampleProjDrefImplicitLod, OpImageSampleProjDrefExplicitLod,
		OpImageSparseSampleDrefImplicitLod, OpImageSparseSampleDrefExplicitLod,
		OpImageSparseSampleProjDrefImplicitLod, OpImageSparseSampleProjDrefExplicitLod,
		OpImageSparseGather, OpImageSparseDrefGather,
	} {
		register(op, concat(image, []Operand{ref("component or dref")}, operands)...)
	}

	register(OpEmitStreamVertex, ref("stream"))
	register(OpEndStreamPrimitive, ref("stream"))
	register(OpLifetimeStart, ref("pointer"), lit("size"))
	register(OpLifetimeStop, ref("pointer"), lit("size"))
	register(OpAtomicFlagClear, ref("pointer"), ref("memory"), ref("semantics"))
	register(OpMemoryNamedBarrier, ref("named barrier"), ref("memory"), ref("semantics"))
	register(OpGroupWaitEvents, ref("execution"), ref("num events"), ref("events list"))
	register(OpRetainEvent, ref("event"))
	register(OpReleaseEvent, ref("event"))
	register(OpSetUserEventStatus, ref("event"), ref("status"))
	register(OpCaptureEventProfilingInfo, ref("event"), ref("profiling info"), ref("value"))
	for _, op := range []OpCode{OpCommitReadPipe, OpCommitWritePipe} {
		register(op, ref("pipe"), ref("reserve id"), ref("packet size"), ref("packet alignment"))
	}
	for _, op := range []OpCode{OpGroupCommitReadPipe, OpGroupCommitWritePipe} {
		register(op, ref("execution"), ref("pipe"), ref("reserve id"), ref("packet size"), ref("packet alignment"))
	}

	for _, op := range []OpCode{
		OpGroupIAdd, OpGroupFAdd, OpGroupFMin, OpGroupUMin, OpGroupSMin,
		OpGroupFMax, OpGroupUMax, OpGroupSMax, OpGroupNonUniformBallotBitCount,
	} {
		register(op, resultType, result, ref("execution"), one(KindGroupOperation, "operation"), ref("value"))
	}
	for _, op := range []OpCode{
		OpGroupNonUniformIAdd, OpGroupNonUniformFAdd, OpGroupNonUniformIMul, OpGroupNonUniformFMul,
		OpGroupNonUniformSMin, OpGroupNonUniformUMin, OpGroupNonUniformFMin,
		OpGroupNonUniformSMax, OpGroupNonUniformUMax, OpGroupNonUniformFMax,
		OpGroupNonUniformBitwiseAnd, OpGroupNonUniformBitwiseOr, OpGroupNonUniformBitwiseXor,
		OpGroupNonUniformLogicalAnd, OpGroupNonUniformLogicalOr, OpGroupNonUniformLogicalXor,
	} {
		register(op, resultType, result, ref("execution"), one(KindGroupOperation, "operation"), ref("value"), opt(KindIDRef, "cluster size"))
	}

	for _, op := range []OpCode{OpSDot, OpUDot, OpSUDot} {
		register(op, resultType, result, ref("vector 1"), ref("vector 2"), opt(KindLiteralInteger, "packed vector format"))
	}
	for _, op := range []OpCode{OpSDotAccSat, OpUDotAccSat, OpSUDotAccSat} {
		register(op, resultType, result, ref("vector 1"), ref("vector 2"), ref("accumulator"), opt(KindLiteralInteger, "packed vector format"))
	}

	register(OpTerminateInvocation)
	register(OpDemoteToHelperInvocation)
	register(OpBeginInvocationInterlockEXT)
	register(OpEndInvocationInterlockEXT)

	typed(
		OpGenericPtrMemSemantics, OpInBoundsPtrAccessChain, OpImageQueryFormat, OpImageQueryOrder,
		OpQuantizeToF16, OpConvertPtrToU, OpSatConvertSToU, OpSatConvertUToS, OpConvertUToPtr,
		OpPtrCastToGeneric, OpGenericCastToPtr,
		OpIAddCarry, OpISubBorrow, OpUMulExtended, OpSMulExtended,
		OpIsFinite, OpIsNormal, OpSignBitSet, OpLessOrGreater, OpOrdered, OpUnordered,
		OpDPdxFine, OpDPdyFine, OpFwidthFine, OpDPdxCoarse, OpDPdyCoarse, OpFwidthCoarse,
		OpAtomicCompareExchangeWeak, OpAtomicFlagTestAndSet,
		OpGroupAsyncCopy, OpGroupAll, OpGroupAny, OpGroupBroadcast,
		OpReadPipe, OpWritePipe, OpReservedReadPipe, OpReservedWritePipe,
		OpReserveReadPipePackets, OpReserveWritePipePackets, OpIsValidReserveId,
		OpGetNumPipePackets, OpGetMaxPipePackets,
		OpGroupReserveReadPipePackets, OpGroupReserveWritePipePackets,
		OpEnqueueMarker, OpEnqueueKernel, OpGetKernelNDrangeSubGroupCount, OpGetKernelNDrangeMaxSubGroupSize,
		OpGetKernelWorkGroupSize, OpGetKernelPreferredWorkGroupSizeMultiple,
		OpCreateUserEvent, OpIsValidEvent, OpGetDefaultQueue, OpBuildNDRange,
		OpImageSparseTexelsResident, OpSizeOf, OpCreatePipeFromPipeStorage,
		OpGetKernelLocalSizeForSubgroupCount, OpGetKernelMaxNumSubgroups, OpNamedBarrierInitialize,
		OpGroupNonUniformElect, OpGroupNonUniformAll, OpGroupNonUniformAny, OpGroupNonUniformAllEqual,
		OpGroupNonUniformBroadcast, OpGroupNonUniformBroadcastFirst, OpGroupNonUniformBallot,
		OpGroupNonUniformInverseBallot, OpGroupNonUniformBallotBitExtract,
		OpGroupNonUniformBallotFindLSB, OpGroupNonUniformBallotFindMSB,
		OpGroupNonUniformShuffle, OpGroupNonUniformShuffleXor, OpGroupNonUniformShuffleUp,
		OpGroupNonUniformShuffleDown, OpGroupNonUniformQuadBroadcast, OpGroupNonUniformQuadSwap,
		OpGroupNonUniformRotateKHR,
		OpSubgroupBallotKHR, OpSubgroupFirstInvocationKHR, OpSubgroupAllKHR, OpSubgroupAnyKHR,
		OpSubgroupAllEqualKHR, OpSubgroupReadInvocationKHR,
		OpCopyLogical, OpPtrEqual, OpPtrNotEqual, OpPtrDiff,
		OpIsHelperInvocationEXT,
	)
}

func concat(parts ...[]Operand) Layout {
	var l Layout
	for _, p := range parts {
		l = append(l, p...)
	}
	return l
}

var grammarNames = map[OpCode]string{
	OpTypeEvent: "OpTypeEvent",
	OpTypeDeviceEvent: "OpTypeDeviceEvent",
	OpTypeReserveId: "OpTypeReserveId",
	OpTypeQueue: "OpTypeQueue",
	OpTypePipe: "OpTypePipe",
	OpTypeForwardPointer: "OpTypeForwardPointer",
	OpCopyMemorySized: "OpCopyMemorySized",
	OpGenericPtrMemSemantics: "OpGenericPtrMemSemantics",
	OpInBoundsPtrAccessChain: "OpInBoundsPtrAccessChain",
	OpImageSampleProjImplicitLod: "OpImageSampleProjImplicitLod",
	OpImageSampleProjExplicitLod: "OpImageSampleProjExplicitLod",
	OpImageSampleProjDrefImplicitLod: "OpImageSampleProjDrefImplicitLod",
	OpImageSampleProjDrefExplicitLod: "OpImageSampleProjDrefExplicitLod",
	OpImageQueryFormat: "OpImageQueryFormat",
	OpImageQueryOrder: "OpImageQueryOrder",
	OpQuantizeToF16: "OpQuantizeToF16",
	OpConvertPtrToU: "OpConvertPtrToU",
	OpSatConvertSToU: "OpSatConvertSToU",
	OpSatConvertUToS: "OpSatConvertUToS",
	OpConvertUToPtr: "OpConvertUToPtr",
	OpPtrCastToGeneric: "OpPtrCastToGeneric",
	OpGenericCastToPtr: "OpGenericCastToPtr",
	OpGenericCastToPtrExplicit: "OpGenericCastToPtrExplicit",
	OpIAddCarry: "OpIAddCarry",
	OpISubBorrow: "OpISubBorrow",
	OpUMulExtended: "OpUMulExtended",
	OpSMulExtended: "OpSMulExtended",
	OpIsFinite: "OpIsFinite",
	OpIsNormal: "OpIsNormal",
	OpSignBitSet: "OpSignBitSet",
	OpLessOrGreater: "OpLessOrGreater",
	OpOrdered: "OpOrdered",
	OpUnordered: "OpUnordered",
	OpDPdxFine: "OpDPdxFine",
	OpDPdyFine: "OpDPdyFine",
	OpFwidthFine: "OpFwidthFine",
	OpDPdxCoarse: "OpDPdxCoarse",
	OpDPdyCoarse: "OpDPdyCoarse",
	OpFwidthCoarse: "OpFwidthCoarse",
	OpEmitStreamVertex: "OpEmitStreamVertex",
	OpEndStreamPrimitive: "OpEndStreamPrimitive",
	OpAtomicCompareExchangeWeak: "OpAtomicCompareExchangeWeak",
	OpLifetimeStart: "OpLifetimeStart",
	OpLifetimeStop: "OpLifetimeStop",
	OpGroupAsyncCopy: "OpGroupAsyncCopy",
	OpGroupWaitEvents: "OpGroupWaitEvents",
	OpGroupAll: "OpGroupAll",
	OpGroupAny: "OpGroupAny",
	OpGroupBroadcast: "OpGroupBroadcast",
	OpGroupIAdd: "OpGroupIAdd",
	OpGroupFAdd: "OpGroupFAdd",
	OpGroupFMin: "OpGroupFMin",
	OpGroupUMin: "OpGroupUMin",
	OpGroupSMin: "OpGroupSMin",
	OpGroupFMax: "OpGroupFMax",
	OpGroupUMax: "OpGroupUMax",
	OpGroupSMax: "OpGroupSMax",
	OpReadPipe: "OpReadPipe",
	OpWritePipe: "OpWritePipe",
	OpReservedReadPipe: "OpReservedReadPipe",
	OpReservedWritePipe: "OpReservedWritePipe",
	OpReserveReadPipePackets: "OpReserveReadPipePackets",
	OpReserveWritePipePackets: "OpReserveWritePipePackets",
	OpCommitReadPipe: "OpCommitReadPipe",
	OpCommitWritePipe: "OpCommitWritePipe",
	OpIsValidReserveId: "OpIsValidReserveId",
	OpGetNumPipePackets: "OpGetNumPipePackets",
	OpGetMaxPipePackets: "OpGetMaxPipePackets",
	OpGroupReserveReadPipePackets: "OpGroupReserveReadPipePackets",
	OpGroupReserveWritePipePackets: "OpGroupReserveWritePipePackets",
	OpGroupCommitReadPipe: "OpGroupCommitReadPipe",
	OpGroupCommitWritePipe: "OpGroupCommitWritePipe",
	OpEnqueueMarker: "OpEnqueueMarker",
	OpEnqueueKernel: "OpEnqueueKernel",
	OpGetKernelNDrangeSubGroupCount: "OpGetKernelNDrangeSubGroupCount",
	OpGetKernelNDrangeMaxSubGroupSize: "OpGetKernelNDrangeMaxSubGroupSize",
	OpGetKernelWorkGroupSize: "OpGetKernelWorkGroupSize",
	OpGetKernelPreferredWorkGroupSizeMultiple: "OpGetKernelPreferredWorkGroupSizeMultiple",
	OpRetainEvent: "OpRetainEvent",
	OpReleaseEvent: "OpReleaseEvent",
	OpCreateUserEvent: "OpCreateUserEvent",
	OpIsValidEvent: "OpIsValidEvent",
	OpSetUserEventStatus: "OpSetUserEventStatus",
	OpCaptureEventProfilingInfo: "OpCaptureEventProfilingInfo",
	OpGetDefaultQueue: "OpGetDefaultQueue",
	OpBuildNDRange: "OpBuildNDRange",
	OpImageSparseSampleImplicitLod: "OpImageSparseSampleImplicitLod",
	OpImageSparseSampleExplicitLod: "OpImageSparseSampleExplicitLod",
	OpImageSparseSampleDrefImplicitLod: "OpImageSparseSampleDrefImplicitLod",
	OpImageSparseSampleDrefExplicitLod: "OpImageSparseSampleDrefExplicitLod",
	OpImageSparseSampleProjImplicitLod: "OpImageSparseSampleProjImplicitLod",
	OpImageSparseSampleProjExplicitLod: "OpImageSparseSampleProjExplicitLod",
	OpImageSparseSampleProjDrefImplicitLod: "OpImageSparseSampleProjDrefImplicitLod",
	OpImageSparseSampleProjDrefExplicitLod: "OpImageSparseSampleProjDrefExplicitLod",
	OpImageSparseFetch: "OpImageSparseFetch",
	OpImageSparseGather: "OpImageSparseGather",
	OpImageSparseDrefGather: "OpImageSparseDrefGather",
	OpImageSparseTexelsResident: "OpImageSparseTexelsResident",
	OpAtomicFlagTestAndSet: "OpAtomicFlagTestAndSet",
	OpAtomicFlagClear: "OpAtomicFlagClear",
	OpImageSparseRead: "OpImageSparseRead",
	OpSizeOf: "OpSizeOf",
	OpTypePipeStorage: "OpTypePipeStorage",
	OpConstantPipeStorage: "OpConstantPipeStorage",
	OpCreatePipeFromPipeStorage: "OpCreatePipeFromPipeStorage",
	OpGetKernelLocalSizeForSubgroupCount: "OpGetKernelLocalSizeForSubgroupCount",
	OpGetKernelMaxNumSubgroups: "OpGetKernelMaxNumSubgroups",
	OpTypeNamedBarrier: "OpTypeNamedBarrier",
	OpNamedBarrierInitialize: "OpNamedBarrierInitialize",
	OpMemoryNamedBarrier: "OpMemoryNamedBarrier",
	OpGroupNonUniformElect: "OpGroupNonUniformElect",
	OpGroupNonUniformAll: "OpGroupNonUniformAll",
	OpGroupNonUniformAny: "OpGroupNonUniformAny",
	OpGroupNonUniformAllEqual: "OpGroupNonUniformAllEqual",
	OpGroupNonUniformBroadcast: "OpGroupNonUniformBroadcast",
	OpGroupNonUniformBroadcastFirst: "OpGroupNonUniformBroadcastFirst",
	OpGroupNonUniformBallot: "OpGroupNonUniformBallot",
	OpGroupNonUniformInverseBallot: "OpGroupNonUniformInverseBallot",
	OpGroupNonUniformBallotBitExtract: "OpGroupNonUniformBallotBitExtract",
	OpGroupNonUniformBallotBitCount: "OpGroupNonUniformBallotBitCount",
	OpGroupNonUniformBallotFindLSB: "OpGroupNonUniformBallotFindLSB",
	OpGroupNonUniformBallotFindMSB: "OpGroupNonUniformBallotFindMSB",
	OpGroupNonUniformShuffle: "OpGroupNonUniformShuffle",
	OpGroupNonUniformShuffleXor: "OpGroupNonUniformShuffleXor",
	OpGroupNonUniformShuffleUp: "OpGroupNonUniformShuffleUp",
	OpGroupNonUniformShuffleDown: "OpGroupNonUniformShuffleDown",
	OpGroupNonUniformIAdd: "OpGroupNonUniformIAdd",
	OpGroupNonUniformFAdd: "OpGroupNonUniformFAdd",
	OpGroupNonUniformIMul: "OpGroupNonUniformIMul",
	OpGroupNonUniformFMul: "OpGroupNonUniformFMul",
	OpGroupNonUniformSMin: "OpGroupNonUniformSMin",
	OpGroupNonUniformUMin: "OpGroupNonUniformUMin",
	OpGroupNonUniformFMin: "OpGroupNonUniformFMin",
	OpGroupNonUniformSMax: "OpGroupNonUniformSMax",
	OpGroupNonUniformUMax: "OpGroupNonUniformUMax",
	OpGroupNonUniformFMax: "OpGroupNonUniformFMax",
	OpGroupNonUniformBitwiseAnd: "OpGroupNonUniformBitwiseAnd",
	OpGroupNonUniformBitwiseOr: "OpGroupNonUniformBitwiseOr",
	OpGroupNonUniformBitwiseXor: "OpGroupNonUniformBitwiseXor",
	OpGroupNonUniformLogicalAnd: "OpGroupNonUniformLogicalAnd",
	OpGroupNonUniformLogicalOr: "OpGroupNonUniformLogicalOr",
	OpGroupNonUniformLogicalXor: "OpGroupNonUniformLogicalXor",
	OpGroupNonUniformQuadBroadcast: "OpGroupNonUniformQuadBroadcast",
	OpGroupNonUniformQuadSwap: "OpGroupNonUniformQuadSwap",
	OpCopyLogical: "OpCopyLogical",
	OpPtrEqual: "OpPtrEqual",
	OpPtrNotEqual: "OpPtrNotEqual",
	OpPtrDiff: "OpPtrDiff",
	OpTerminateInvocation: "OpTerminateInvocation",
	OpSubgroupBallotKHR: "OpSubgroupBallotKHR",
	OpSubgroupFirstInvocationKHR: "OpSubgroupFirstInvocationKHR",
	OpSubgroupAllKHR: "OpSubgroupAllKHR",
	OpSubgroupAnyKHR: "OpSubgroupAnyKHR",
	OpSubgroupAllEqualKHR: "OpSubgroupAllEqualKHR",
	OpGroupNonUniformRotateKHR: "OpGroupNonUniformRotateKHR",
	OpSubgroupReadInvocationKHR: "OpSubgroupReadInvocationKHR",
	OpSDot: "OpSDot",
	OpUDot: "OpUDot",
	OpSUDot: "OpSUDot",
	OpSDotAccSat: "OpSDotAccSat",
	OpUDotAccSat: "OpUDotAccSat",
	OpSUDotAccSat: "OpSUDotAccSat",
	OpBeginInvocationInterlockEXT: "OpBeginInvocationInterlockEXT",
	OpEndInvocationInterlockEXT: "OpEndInvocationInterlockEXT",
	OpDemoteToHelperInvocation: "OpDemoteToHelperInvocation",
	OpIsHelperInvocationEXT: "OpIsHelperInvocationEXT",
}
