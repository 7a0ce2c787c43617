package spirv

import "testing"

func TestGetOperandLayout_DecorationSubKeys(t *testing.T) {
	builtin, ok := GetOperandLayout(OpDecorate, uint32(DecorationBuiltIn))
	if !ok {
		t.Fatal("no layout for OpDecorate BuiltIn")
	}
	if len(builtin) != 3 || builtin[2].Kind != KindBuiltIn {
		t.Errorf("BuiltIn layout: %+v", builtin)
	}

	semantic, ok := GetOperandLayout(OpDecorateString, uint32(DecorationUserSemantic))
	if !ok {
		t.Fatal("no layout for OpDecorateString UserSemantic")
	}
	if semantic[len(semantic)-1].Kind != KindLiteralString {
		t.Errorf("UserSemantic should end in a string operand: %+v", semantic)
	}

	flat, _ := GetOperandLayout(OpDecorate, uint32(DecorationFlat))
	if len(flat) != 2 {
		t.Errorf("Flat takes no extra operand, layout %+v", flat)
	}
}

func TestGetOperandLayout_FallsBackToBase(t *testing.T) {
	// An unknown decoration still gets the generic literal layout.
	l, ok := GetOperandLayout(OpDecorate, 4242)
	if !ok {
		t.Fatal("expected the base OpDecorate layout")
	}
	if l[len(l)-1].Quant != Variadic {
		t.Errorf("base layout should end with variadic literals: %+v", l)
	}

	if _, ok := GetOperandLayout(OpCode(4999)); ok {
		t.Error("unregistered opcode should have no layout")
	}
}

func TestLayout_WalkOptionalAndVariadic(t *testing.T) {
	l, _ := GetOperandLayout(OpVariable)

	var kinds []OperandKind
	l.Walk([]uint32{1, 2, uint32(StorageClassPrivate)}, func(op Operand, _, _ int) {
		kinds = append(kinds, op.Kind)
	})
	if len(kinds) != 3 {
		t.Errorf("variable without initializer: got %d operands", len(kinds))
	}

	kinds = kinds[:0]
	l.Walk([]uint32{1, 2, uint32(StorageClassPrivate), 9}, func(op Operand, _, _ int) {
		kinds = append(kinds, op.Kind)
	})
	if len(kinds) != 4 || kinds[3] != KindIDRef {
		t.Errorf("variable with initializer: got %v", kinds)
	}
}

func TestMustLayoutOf_PanicsOnUnknown(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*InternalError); !ok {
			t.Errorf("expected *InternalError panic, got %v", r)
		}
	}()
	MustLayoutOf(NewInstruction(OpCode(4999)))
}

func TestCoreGrammar_Registered(t *testing.T) {
	tests := []struct {
		op      OpCode
		name    string
		refs    int
		hasType bool
	}{
		{OpDPdxFine, "OpDPdxFine", 1, true},
		{OpFwidthCoarse, "OpFwidthCoarse", 1, true},
		{OpIsFinite, "OpIsFinite", 1, true},
		{OpCopyLogical, "OpCopyLogical", 1, true},
		{OpImageSampleProjImplicitLod, "OpImageSampleProjImplicitLod", 2, true},
		{OpImageSampleProjDrefExplicitLod, "OpImageSampleProjDrefExplicitLod", 3, true},
		{OpGroupNonUniformBallot, "OpGroupNonUniformBallot", 2, true},
		{OpGroupNonUniformFAdd, "OpGroupNonUniformFAdd", 2, true},
		{OpEmitStreamVertex, "OpEmitStreamVertex", 1, false},
		{OpTerminateInvocation, "OpTerminateInvocation", 0, false},
		{OpDemoteToHelperInvocation, "OpDemoteToHelperInvocation", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.name {
				t.Errorf("String() = %q", got)
			}
			words := []uint32{}
			if tt.hasType {
				words = append(words, 1, 2)
			}
			for i := 0; i < tt.refs; i++ {
				words = append(words, uint32(10+i))
			}
			// Group operations carry a literal between the scope and the value.
			if tt.op == OpGroupNonUniformFAdd {
				words = []uint32{1, 2, 10, 0, 11}
			}
			inst := NewInstruction(tt.op, words...)

			var refs []uint32
			if !inst.VisitRefs(func(w *uint32) { refs = append(refs, *w) }) {
				t.Fatal("no operand layout")
			}
			if tt.hasType {
				if inst.ResultID() != 2 {
					t.Errorf("ResultID = %d, want 2", inst.ResultID())
				}
				refs = refs[1:] // result type
			}
			if len(refs) != tt.refs {
				t.Errorf("refs = %v, want %d", refs, tt.refs)
			}
		})
	}
}

func TestCoreGrammar_DeclarationOrder(t *testing.T) {
	for _, op := range []OpCode{OpTypePipe, OpTypeEvent, OpTypeForwardPointer, OpConstantPipeStorage} {
		if g := GetOrderGroup(NewInstruction(op)); g != GroupDeclaration {
			t.Errorf("%s group = %d, want declaration", op, g)
		}
	}
	if g := GetOrderGroup(NewInstruction(OpDPdxFine)); g != GroupBody {
		t.Errorf("OpDPdxFine group = %d, want body", g)
	}
}

func TestLayout_MinWords(t *testing.T) {
	tests := []struct {
		inst Instruction
		want int
	}{
		{NewInstruction(OpTypeInt), 3},
		{NewInstruction(OpConstant), 3},
		{NewInstruction(OpTypeStruct), 1},
		{NewInstruction(OpSwitch), 2},
		{NewInstruction(OpDecorate, 1, uint32(DecorationLocation)), 3},
		{NewInstruction(OpDecorate, 1, uint32(DecorationFlat)), 2},
		{NewInstruction(OpReturn), 0},
	}
	for _, tt := range tests {
		if got := MustLayoutOf(tt.inst).MinWords(); got != tt.want {
			t.Errorf("%s MinWords = %d, want %d", tt.inst.Opcode, got, tt.want)
		}
	}
}

func TestInstruction_MustVisitPanicsOnUnknown(t *testing.T) {
	inst := NewInstruction(OpCode(4999), 1, 2)
	for name, visit := range map[string]func(){
		"ids":  func() { inst.MustVisitIDs(func(OperandKind, *uint32) {}) },
		"refs": func() { inst.MustVisitRefs(func(*uint32) {}) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if _, ok := recover().(*InternalError); !ok {
					t.Error("expected an internal error panic")
				}
			}()
			visit()
		})
	}
}
