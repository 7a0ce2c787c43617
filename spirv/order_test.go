package spirv

import "testing"

func TestGetOrderGroup(t *testing.T) {
	tests := []struct {
		name string
		inst Instruction
		want OrderGroup
	}{
		{"capability", NewInstruction(OpCapability, 1), GroupCapability},
		{"entry point", NewInstruction(OpEntryPoint, 0, 1), GroupEntryPoint},
		{"execution mode", NewInstruction(OpExecutionMode, 1, 7), GroupExecutionMode},
		{"name", NewInstruction(OpName, 1), GroupDebugName},
		{"decorate string", NewInstruction(OpDecorateString, 1, uint32(DecorationUserSemantic)), GroupAnnotation},
		{"type", NewInstruction(OpTypeFloat, 1, 32), GroupDeclaration},
		{"constant", NewInstruction(OpConstant, 1, 2, 0), GroupDeclaration},
		{"private variable", NewInstruction(OpVariable, 1, 2, uint32(StorageClassPrivate)), GroupDeclaration},
		{"function variable", NewInstruction(OpVariable, 1, 2, uint32(StorageClassFunction)), GroupBody},
		{"load", NewInstruction(OpLoad, 1, 2, 3), GroupBody},
		{"unregistered", NewInstruction(OpCode(4999)), GroupBody},
		{"tombstone", NewInstruction(OpNop), GroupTerminal},
	}
	for _, tt := range tests {
		if got := GetOrderGroup(tt.inst); got != tt.want {
			t.Errorf("%s: got group %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSortInstructions_StableWithinGroups(t *testing.T) {
	insts := []Instruction{
		NewInstruction(OpFunction, 1, 10, 0, 2),
		NewInstruction(OpTypeVoid, 1),
		NewInstruction(OpLabel, 11),
		NewInstruction(OpTypeFunction, 2, 1),
		NewInstruction(OpReturn),
		NewInstruction(OpCapability, uint32(CapabilityShader)),
		NewInstruction(OpFunctionEnd),
		NewInstruction(OpName, 10),
	}
	SortInstructions(insts)

	if !IsOrdered(insts) {
		t.Fatal("instructions not ordered after sort")
	}
	want := []OpCode{OpCapability, OpName, OpTypeVoid, OpTypeFunction, OpFunction, OpLabel, OpReturn, OpFunctionEnd}
	for i, op := range want {
		if insts[i].Opcode != op {
			t.Errorf("position %d: got %s, want %s", i, insts[i].Opcode, op)
		}
	}
}

func TestIsOrdered(t *testing.T) {
	good := []Instruction{NewInstruction(OpCapability, 1), NewInstruction(OpTypeVoid, 1)}
	bad := []Instruction{NewInstruction(OpTypeVoid, 1), NewInstruction(OpCapability, 1)}
	if !IsOrdered(good) {
		t.Error("capability before type should be ordered")
	}
	if IsOrdered(bad) {
		t.Error("type before capability should not be ordered")
	}
}
