package spirv

import (
	"cmp"
	"slices"
)

// OrderGroup is the logical layout section an instruction belongs to.
// Groups are listed in the order SPIR-V requires them to appear.
type OrderGroup uint8

const (
	GroupCapability OrderGroup = iota
	GroupExtension
	GroupExtInstImport
	GroupMemoryModel
	GroupEntryPoint
	GroupExecutionMode
	GroupDebugString // OpString, OpSource*
	GroupDebugName   // OpName, OpMemberName
	GroupModuleProcessed
	GroupAnnotation  // decorations
	GroupDeclaration // types, constants, global variables
	GroupBody        // functions and anything unregistered
	GroupTerminal    // removed instructions awaiting compaction
)

var orderGroups = map[OpCode]OrderGroup{
	OpCapability:      GroupCapability,
	OpExtension:       GroupExtension,
	OpExtInstImport:   GroupExtInstImport,
	OpMemoryModel:     GroupMemoryModel,
	OpEntryPoint:      GroupEntryPoint,
	OpExecutionMode:   GroupExecutionMode,
	OpExecutionModeID: GroupExecutionMode,
	OpString:          GroupDebugString,
	OpSource:          GroupDebugString,
	OpSourceExtension: GroupDebugString,
	OpSourceContinued: GroupDebugString,
	OpName:            GroupDebugName,
	OpMemberName:      GroupDebugName,
	OpModuleProcessed: GroupModuleProcessed,

	OpDecorate:             GroupAnnotation,
	OpMemberDecorate:       GroupAnnotation,
	OpDecorateString:       GroupAnnotation,
	OpMemberDecorateString: GroupAnnotation,
	OpDecorateID:           GroupAnnotation,
	OpDecorationGroup:      GroupAnnotation,
	OpGroupDecorate:        GroupAnnotation,
	OpGroupMemberDecorate:  GroupAnnotation,

	OpTypeVoid:              GroupDeclaration,
	OpTypeBool:              GroupDeclaration,
	OpTypeInt:               GroupDeclaration,
	OpTypeFloat:             GroupDeclaration,
	OpTypeVector:            GroupDeclaration,
	OpTypeMatrix:            GroupDeclaration,
	OpTypeImage:             GroupDeclaration,
	OpTypeSampler:           GroupDeclaration,
	OpTypeSampledImage:      GroupDeclaration,
	OpTypeArray:             GroupDeclaration,
	OpTypeRuntimeArray:      GroupDeclaration,
	OpTypeStruct:            GroupDeclaration,
	OpTypeOpaque:            GroupDeclaration,
	OpTypePointer:           GroupDeclaration,
	OpTypeFunction:          GroupDeclaration,
	OpConstantTrue:          GroupDeclaration,
	OpConstantFalse:         GroupDeclaration,
	OpConstant:              GroupDeclaration,
	OpConstantComposite:     GroupDeclaration,
	OpConstantSampler:       GroupDeclaration,
	OpConstantNull:          GroupDeclaration,
	OpSpecConstantTrue:      GroupDeclaration,
	OpSpecConstantFalse:     GroupDeclaration,
	OpSpecConstant:          GroupDeclaration,
	OpSpecConstantComposite: GroupDeclaration,
	OpSpecConstantOp:        GroupDeclaration,
	OpUndef:                 GroupDeclaration,

	OpNop: GroupTerminal,
}

// GetOrderGroup classifies an instruction. OpVariable is sub-keyed on its
// storage class: Function-local variables stay in the body.
func GetOrderGroup(inst Instruction) OrderGroup {
	if inst.Opcode == OpVariable {
		if StorageClass(inst.Operand(2)) == StorageClassFunction {
			return GroupBody
		}
		return GroupDeclaration
	}
	if g, ok := orderGroups[inst.Opcode]; ok {
		return g
	}
	return GroupBody
}

// SortInstructions stably reorders instructions by order group, keeping the
// relative order of instructions within each group.
func SortInstructions(insts []Instruction) {
	slices.SortStableFunc(insts, func(a, b Instruction) int {
		return cmp.Compare(GetOrderGroup(a), GetOrderGroup(b))
	})
}

// IsOrdered reports whether instructions already satisfy the section order.
func IsOrdered(insts []Instruction) bool {
	last := GroupCapability
	for _, inst := range insts {
		g := GetOrderGroup(inst)
		if g < last {
			return false
		}
		last = g
	}
	return true
}

// IsBody reports whether an instruction is part of a function body as
// opposed to a module-level declaration that happens to sit between
// OpFunction and OpFunctionEnd before the next Sort.
func IsBody(inst Instruction) bool {
	return GetOrderGroup(inst) == GroupBody
}
