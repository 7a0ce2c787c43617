package spirv

import (
	"fmt"
	"strconv"
	"strings"
)

func id(n uint32) string {
	return "%_" + strconv.FormatUint(uint64(n), 10)
}

// Disassemble renders a module as .spvasm-style text, one instruction per
// line, using the operand schema to format each operand.
func Disassemble(b *Buffer) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; SPIR-V\n")
	fmt.Fprintf(&sb, "; Version: %d.%d\n", b.Version.Major, b.Version.Minor)
	fmt.Fprintf(&sb, "; Generator: 0x%08X\n", b.Generator)
	fmt.Fprintf(&sb, "; Bound: %d\n", b.Bound)
	fmt.Fprintf(&sb, "; Schema: %d\n", b.Schema)
	sb.WriteByte('\n')

	names := make(map[uint32]string)
	for _, inst := range b.insts {
		if inst.Opcode == OpName {
			names[inst.Operand(0)] = inst.StringAt(1)
		}
	}
	for _, inst := range b.insts {
		if inst.Opcode == OpNop {
			continue
		}
		formatInstruction(&sb, inst, names)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatInstruction(sb *strings.Builder, inst Instruction, names map[uint32]string) {
	ref := func(n uint32) string {
		if name, ok := names[n]; ok && name != "" {
			return "%" + name + "_" + strconv.FormatUint(uint64(n), 10)
		}
		return id(n)
	}

	layout, ok := LayoutOf(inst)
	if !ok {
		// Generic fallback
		sb.WriteString("               ")
		sb.WriteString(inst.Opcode.String())
		for _, w := range inst.Words {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(uint64(w), 10))
		}
		return
	}

	var operands []string
	resultID := ""
	layout.Walk(inst.Words, func(op Operand, at, n int) {
		w := inst.Words[at]
		switch op.Kind {
		case KindIDResult:
			resultID = ref(w)
		case KindIDResultType, KindIDRef:
			operands = append(operands, ref(w))
		case KindLiteralString:
			s, _ := DecodeString(inst.Words[at : at+n])
			operands = append(operands, strconv.Quote(s))
		case KindCapability:
			operands = append(operands, Capability(w).String())
		case KindStorageClass:
			operands = append(operands, StorageClass(w).String())
		case KindDecoration:
			operands = append(operands, Decoration(w).String())
		case KindBuiltIn:
			operands = append(operands, BuiltIn(w).String())
		case KindExecutionModel:
			operands = append(operands, ExecutionModel(w).String())
		case KindExecutionMode:
			operands = append(operands, ExecutionMode(w).String())
		case KindAddressingModel:
			operands = append(operands, AddressingModel(w).String())
		case KindMemoryModel:
			operands = append(operands, MemoryModel(w).String())
		case KindDim:
			operands = append(operands, lookup(dimNames, w))
		case KindFunctionControl, KindSelectionControl:
			if w == 0 {
				operands = append(operands, "None")
			} else {
				operands = append(operands, fmt.Sprintf("0x%x", w))
			}
		case KindPairIDRefIDRef:
			operands = append(operands, ref(w), ref(inst.Words[at+1]))
		case KindPairIDRefLiteral:
			operands = append(operands, ref(w), strconv.FormatUint(uint64(inst.Words[at+1]), 10))
		case KindPairLiteralIDRef:
			operands = append(operands, strconv.FormatUint(uint64(w), 10), ref(inst.Words[at+n-1]))
		default:
			operands = append(operands, strconv.FormatUint(uint64(w), 10))
		}
	})

	if resultID != "" {
		pad := 14 - len(resultID)
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(resultID)
		sb.WriteString(" = ")
	} else {
		sb.WriteString("               ")
	}
	sb.WriteString(inst.Opcode.String())
	for _, o := range operands {
		sb.WriteByte(' ')
		sb.WriteString(o)
	}
}
