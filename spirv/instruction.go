package spirv

import (
	"fmt"
	"strings"
)

// Instruction represents a SPIR-V instruction.
type Instruction struct {
	Opcode OpCode
	Words  []uint32 // result type ID, result ID, operands
}

// NewInstruction creates an instruction from raw operand words.
func NewInstruction(opcode OpCode, words ...uint32) Instruction {
	return Instruction{Opcode: opcode, Words: words}
}

// InstructionBuilder builds SPIR-V instructions.
type InstructionBuilder struct {
	words []uint32
}

// NewInstructionBuilder creates a new instruction builder.
func NewInstructionBuilder() *InstructionBuilder {
	return &InstructionBuilder{
		words: make([]uint32, 0, 8),
	}
}

// AddWord adds a word to the instruction.
func (b *InstructionBuilder) AddWord(word uint32) {
	b.words = append(b.words, word)
}

// AddWords adds several words to the instruction.
func (b *InstructionBuilder) AddWords(words ...uint32) {
	b.words = append(b.words, words...)
}

// AddString adds a null-terminated UTF-8 string.
func (b *InstructionBuilder) AddString(s string) {
	b.words = append(b.words, EncodeString(s)...)
}

// Build builds the instruction with the given opcode.
func (b *InstructionBuilder) Build(opcode OpCode) Instruction {
	return Instruction{
		Opcode: opcode,
		Words:  b.words,
	}
}

// EncodeString packs a literal string into words: UTF-8 bytes, a null
// terminator, zero padding to the word boundary.
func EncodeString(s string) []uint32 {
	bytes := append([]byte(s), 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}

	words := make([]uint32, 0, len(bytes)/4)
	for i := 0; i < len(bytes); i += 4 {
		word := uint32(bytes[i]) |
			uint32(bytes[i+1])<<8 |
			uint32(bytes[i+2])<<16 |
			uint32(bytes[i+3])<<24
		words = append(words, word)
	}
	return words
}

// DecodeString reads a literal string starting at words[0] and returns it
// together with the number of words it occupies.
func DecodeString(words []uint32) (string, int) {
	var sb strings.Builder
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
		}
	}
	return sb.String(), len(words)
}

// Encode encodes the instruction to binary.
func (i Instruction) Encode() []uint32 {
	wordCount := uint32(len(i.Words) + 1) // +1 for opcode word
	result := make([]uint32, 0, wordCount)
	result = append(result, (wordCount<<16)|uint32(i.Opcode))
	result = append(result, i.Words...)
	return result
}

// Clone returns a copy that does not share operand storage.
func (i Instruction) Clone() Instruction {
	words := make([]uint32, len(i.Words))
	copy(words, i.Words)
	return Instruction{Opcode: i.Opcode, Words: words}
}

// ResultType returns the result type id, or 0 if the opcode has none.
func (i Instruction) ResultType() uint32 {
	info, ok := opShapes[i.Opcode]
	if !ok || !info.hasType || len(i.Words) == 0 {
		return 0
	}
	return i.Words[0]
}

// ResultID returns the result id, or 0 if the opcode has none.
func (i Instruction) ResultID() uint32 {
	info, ok := opShapes[i.Opcode]
	if !ok || !info.hasResult {
		return 0
	}
	at := 0
	if info.hasType {
		at = 1
	}
	if at >= len(i.Words) {
		return 0
	}
	return i.Words[at]
}

// SetResultID overwrites the result id of an instruction that has one.
func (i Instruction) SetResultID(id uint32) {
	info := opShapes[i.Opcode]
	if !info.hasResult {
		panic(&InternalError{Message: fmt.Sprintf("%s has no result id", i.Opcode)})
	}
	if info.hasType {
		i.Words[1] = id
		return
	}
	i.Words[0] = id
}

// Operand returns word n of the operand list, or 0 when out of range.
func (i Instruction) Operand(n int) uint32 {
	if n < 0 || n >= len(i.Words) {
		return 0
	}
	return i.Words[n]
}

// StringAt decodes the literal string starting at word n.
func (i Instruction) StringAt(n int) string {
	if n >= len(i.Words) {
		return ""
	}
	s, _ := DecodeString(i.Words[n:])
	return s
}

// VisitIDs calls fn for every id operand (result type, result, references)
// with a pointer into the instruction words, so callers can rewrite ids in
// place. It reports false when no operand layout is known for the opcode.
func (i Instruction) VisitIDs(fn func(kind OperandKind, word *uint32)) bool {
	layout, ok := LayoutOf(i)
	if !ok {
		return false
	}
	layout.Walk(i.Words, func(op Operand, at, n int) {
		switch op.Kind {
		case KindIDResultType, KindIDResult, KindIDRef:
			fn(op.Kind, &i.Words[at])
		case KindPairIDRefIDRef:
			fn(KindIDRef, &i.Words[at])
			fn(KindIDRef, &i.Words[at+1])
		case KindPairIDRefLiteral:
			fn(KindIDRef, &i.Words[at])
		case KindPairLiteralIDRef:
			fn(KindIDRef, &i.Words[at+n-1])
		}
	})
	return true
}

// VisitRefs calls fn for every referenced id, skipping the result id.
func (i Instruction) VisitRefs(fn func(word *uint32)) bool {
	return i.VisitIDs(func(kind OperandKind, word *uint32) {
		if kind != KindIDResult {
			fn(word)
		}
	})
}

// MustVisitIDs is VisitIDs for passes that rewrite or drop instructions
// based on the ids they see; an opcode without layout is an internal error.
func (i Instruction) MustVisitIDs(fn func(kind OperandKind, word *uint32)) {
	if !i.VisitIDs(fn) {
		internalf("no operand layout for %s", i.Opcode)
	}
}

// MustVisitRefs is the panicking counterpart of VisitRefs.
func (i Instruction) MustVisitRefs(fn func(word *uint32)) {
	if !i.VisitRefs(fn) {
		internalf("no operand layout for %s", i.Opcode)
	}
}

// References reports whether the instruction refers to id.
func (i Instruction) References(id uint32) bool {
	found := false
	i.VisitRefs(func(word *uint32) {
		if *word == id {
			found = true
		}
	})
	return found
}

// String renders the instruction in a compact assembly-like form.
func (i Instruction) String() string {
	var sb strings.Builder
	formatInstruction(&sb, i, nil)
	return sb.String()
}

// InternalError reports a broken invariant inside the module layer, such as
// a conflicting type registration or an instruction without operand layout.
// It is raised with panic and recovered at the processing boundary.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "spirv internal error: " + e.Message
}

func internalf(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}
