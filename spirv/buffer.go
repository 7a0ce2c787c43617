package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Decoding errors.
var (
	ErrTruncated      = errors.New("spirv: truncated module")
	ErrBadMagic       = errors.New("spirv: invalid magic number")
	ErrBadWordCount   = errors.New("spirv: invalid instruction word count")
	ErrUnalignedData  = errors.New("spirv: module size is not a multiple of 4")
	ErrMissingOperand = errors.New("spirv: instruction is missing required operands")
)

// Buffer is an ordered, editable list of instructions together with the
// module header. Removed instructions become OpNop tombstones until the
// next Compact or Sort.
type Buffer struct {
	Version   Version
	Generator uint32
	Bound     uint32 // max ID + 1
	Schema    uint32

	insts []Instruction

	// OnInsert is invoked whenever instructions are inserted before the end
	// of the buffer, so owners of positional indexes can shift them.
	OnInsert func(index, count int)
}

// NewBuffer creates an empty module buffer.
func NewBuffer(version Version) *Buffer {
	return &Buffer{
		Version:   version,
		Generator: GeneratorID,
		Bound:     1,
		insts:     make([]Instruction, 0, 64),
	}
}

// Len returns the number of instructions, tombstones included.
func (b *Buffer) Len() int {
	return len(b.insts)
}

// At returns a pointer to instruction i for in-place edits.
func (b *Buffer) At(i int) *Instruction {
	return &b.insts[i]
}

// Instructions returns the underlying instruction slice.
func (b *Buffer) Instructions() []Instruction {
	return b.insts
}

// Append adds instructions to the end of the buffer.
func (b *Buffer) Append(insts ...Instruction) {
	b.insts = append(b.insts, insts...)
	for _, inst := range insts {
		b.reserve(inst.ResultID())
	}
}

// Insert places instructions before index. Inserting before the end fires
// OnInsert.
func (b *Buffer) Insert(index int, insts ...Instruction) {
	if index >= len(b.insts) {
		b.Append(insts...)
		return
	}
	b.insts = append(b.insts[:index], append(append([]Instruction(nil), insts...), b.insts[index:]...)...)
	for _, inst := range insts {
		b.reserve(inst.ResultID())
	}
	if b.OnInsert != nil && len(insts) > 0 {
		b.OnInsert(index, len(insts))
	}
}

// Remove turns instruction i into a tombstone.
func (b *Buffer) Remove(i int) {
	b.insts[i] = Instruction{Opcode: OpNop}
}

// Compact drops tombstones.
func (b *Buffer) Compact() {
	out := b.insts[:0]
	for _, inst := range b.insts {
		if inst.Opcode != OpNop {
			out = append(out, inst)
		}
	}
	for i := len(out); i < len(b.insts); i++ {
		b.insts[i] = Instruction{}
	}
	b.insts = out
}

// Sort restores the mandatory section order and drops tombstones.
func (b *Buffer) Sort() {
	SortInstructions(b.insts)
	b.Compact()
}

// Clone returns a deep copy of the buffer. The insertion hook is not copied.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.OnInsert = nil
	c.insts = make([]Instruction, len(b.insts))
	for i, inst := range b.insts {
		c.insts[i] = inst.Clone()
	}
	return &c
}

func (b *Buffer) reserve(id uint32) {
	if id >= b.Bound {
		b.Bound = id + 1
	}
}

// FindFunction returns the index range [start, end] of the function whose
// OpFunction declares id, end pointing at its OpFunctionEnd.
func (b *Buffer) FindFunction(id uint32) (start, end int, ok bool) {
	for i := range b.insts {
		if b.insts[i].Opcode == OpFunction && b.insts[i].ResultID() == id {
			for j := i + 1; j < len(b.insts); j++ {
				if b.insts[j].Opcode == OpFunctionEnd {
					return i, j, true
				}
			}
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// FunctionIDs lists the result ids of all defined functions in buffer order.
func (b *Buffer) FunctionIDs() []uint32 {
	var ids []uint32
	for i := range b.insts {
		if b.insts[i].Opcode == OpFunction {
			ids = append(ids, b.insts[i].ResultID())
		}
	}
	return ids
}

// Encode encodes the module header and all instructions to binary.
func (b *Buffer) Encode() ([]byte, error) {
	words := []uint32{MagicNumber, b.Version.Word(), b.Generator, b.Bound, b.Schema}
	for _, inst := range b.insts {
		if inst.Opcode == OpNop {
			continue
		}
		count, err := safecast.Conv[uint16](len(inst.Words) + 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", inst.Opcode, ErrBadWordCount)
		}
		words = append(words, uint32(count)<<16|uint32(inst.Opcode))
		words = append(words, inst.Words...)
	}

	data := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}
	return data, nil
}

// Decode parses a binary module.
func Decode(data []byte) (*Buffer, error) {
	if len(data)%4 != 0 {
		return nil, ErrUnalignedData
	}
	if len(data) < HeaderWords*4 {
		return nil, ErrTruncated
	}
	word := func(i int) uint32 { return binary.LittleEndian.Uint32(data[i*4:]) }
	if word(0) != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08X", ErrBadMagic, word(0))
	}

	b := &Buffer{
		Version:   VersionFromWord(word(1)),
		Generator: word(2),
		Bound:     word(3),
		Schema:    word(4),
	}
	total := len(data) / 4
	for pos := HeaderWords; pos < total; {
		first := word(pos)
		count := int(first >> 16)
		if count == 0 || pos+count > total {
			return nil, fmt.Errorf("%w: %d at word %d", ErrBadWordCount, count, pos)
		}
		operands := make([]uint32, count-1)
		for i := range operands {
			operands[i] = word(pos + 1 + i)
		}
		inst := Instruction{Opcode: OpCode(first & 0xFFFF), Words: operands}
		if layout, ok := LayoutOf(inst); ok && len(operands) < layout.MinWords() {
			return nil, fmt.Errorf("%w: %s has %d of %d operand words at word %d",
				ErrMissingOperand, inst.Opcode, len(operands), layout.MinWords(), pos)
		}
		b.insts = append(b.insts, inst)
		pos += count
	}
	return b, nil
}
