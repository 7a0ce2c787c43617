package spirv

import (
	"testing"
)

func TestEncodeString(t *testing.T) {
	words := EncodeString("main")
	// "main" + null terminator needs a second, all-zero word.
	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0] != 0x6E69616D {
		t.Errorf("Expected 0x6E69616D, got 0x%08X", words[0])
	}
	if words[1] != 0 {
		t.Errorf("Expected zero padding word, got 0x%08X", words[1])
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		in    string
		words int
	}{
		{"", 1},
		{"abc", 1},
		{"abcd", 2},
		{"SV_Position", 3},
	}
	for _, tt := range tests {
		encoded := EncodeString(tt.in)
		if len(encoded) != tt.words {
			t.Errorf("%q: encoded to %d words, want %d", tt.in, len(encoded), tt.words)
		}
		// Trailing operands after the string must not be consumed.
		s, n := DecodeString(append(encoded, 42))
		if s != tt.in || n != tt.words {
			t.Errorf("%q: decoded %q using %d words", tt.in, s, n)
		}
	}
}

func TestInstructionBuilder(t *testing.T) {
	b := NewInstructionBuilder()
	b.AddWord(7)
	b.AddString("PSMain")
	inst := b.Build(OpName)

	encoded := inst.Encode()
	wordCount := encoded[0] >> 16
	if int(wordCount) != len(encoded) {
		t.Errorf("word count %d does not match encoded length %d", wordCount, len(encoded))
	}
	if OpCode(encoded[0]&0xFFFF) != OpName {
		t.Errorf("opcode: got %d", encoded[0]&0xFFFF)
	}
	if got := inst.StringAt(1); got != "PSMain" {
		t.Errorf("StringAt(1) = %q", got)
	}
}

func TestInstruction_ResultIDs(t *testing.T) {
	tests := []struct {
		name       string
		inst       Instruction
		resultType uint32
		resultID   uint32
	}{
		{"load", NewInstruction(OpLoad, 3, 9, 4), 3, 9},
		{"type int", NewInstruction(OpTypeInt, 5, 32, 1), 0, 5},
		{"store", NewInstruction(OpStore, 4, 9), 0, 0},
		{"label", NewInstruction(OpLabel, 12), 0, 12},
		{"function", NewInstruction(OpFunction, 1, 20, 0, 2), 1, 20},
		{"unknown opcode", NewInstruction(OpCode(4999), 1, 2), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inst.ResultType(); got != tt.resultType {
				t.Errorf("ResultType = %d, want %d", got, tt.resultType)
			}
			if got := tt.inst.ResultID(); got != tt.resultID {
				t.Errorf("ResultID = %d, want %d", got, tt.resultID)
			}
		})
	}
}

func TestInstruction_VisitIDsRewritesInPlace(t *testing.T) {
	inst := NewInstruction(OpAccessChain, 1, 2, 3, 4, 5)
	ok := inst.VisitIDs(func(_ OperandKind, word *uint32) {
		*word += 100
	})
	if !ok {
		t.Fatal("VisitIDs found no layout for OpAccessChain")
	}
	want := []uint32{101, 102, 103, 104, 105}
	for i, w := range want {
		if inst.Words[i] != w {
			t.Errorf("word %d: got %d, want %d", i, inst.Words[i], w)
		}
	}
}

func TestInstruction_VisitIDsSkipsLiterals(t *testing.T) {
	tests := []struct {
		name string
		inst Instruction
		ids  []uint32
	}{
		{"builtin decoration", NewInstruction(OpDecorate, 8, uint32(DecorationBuiltIn), uint32(BuiltInPosition)), []uint32{8}},
		{"location decoration", NewInstruction(OpDecorate, 8, uint32(DecorationLocation), 8), []uint32{8}},
		{"semantic decoration", NewInstruction(OpDecorateString, append([]uint32{8, uint32(DecorationUserSemantic)}, EncodeString("TEXCOORD0")...)...), []uint32{8}},
		{"composite extract", NewInstruction(OpCompositeExtract, 1, 2, 3, 0, 1), []uint32{1, 2, 3}},
		{"entry point", NewInstruction(OpEntryPoint, append(append([]uint32{0, 4}, EncodeString("main")...), 5, 6)...), []uint32{4, 5, 6}},
		{"phi", NewInstruction(OpPhi, 1, 2, 3, 4, 5, 6), []uint32{1, 2, 3, 4, 5, 6}},
		{"switch", NewInstruction(OpSwitch, 1, 2, 0, 3, 1, 4), []uint32{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []uint32
			tt.inst.VisitIDs(func(_ OperandKind, word *uint32) {
				got = append(got, *word)
			})
			if len(got) != len(tt.ids) {
				t.Fatalf("visited %v, want %v", got, tt.ids)
			}
			for i := range got {
				if got[i] != tt.ids[i] {
					t.Errorf("visited %v, want %v", got, tt.ids)
					break
				}
			}
		})
	}
}

func TestInstruction_References(t *testing.T) {
	call := NewInstruction(OpFunctionCall, 1, 2, 30, 40)
	if !call.References(30) {
		t.Error("call should reference its callee")
	}
	if call.References(2) {
		t.Error("the result id is not a reference")
	}
}

func TestInstruction_Clone(t *testing.T) {
	inst := NewInstruction(OpStore, 1, 2)
	c := inst.Clone()
	c.Words[0] = 9
	if inst.Words[0] != 1 {
		t.Error("clone shares operand storage")
	}
}
