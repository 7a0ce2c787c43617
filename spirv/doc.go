// Package spirv provides an editable in-memory model of a SPIR-V module.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// used by Vulkan, OpenCL, and other APIs.
//
// # Buffer
//
// A Buffer is the ordered instruction list plus the module header. It can
// be decoded from and encoded to the binary word stream:
//
//	buf, err := spirv.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := buf.Encode()
//
// Instructions may be inserted anywhere; insertions before the end invoke
// Buffer.OnInsert so owners of positional indexes can shift them. Sort
// restores the mandatory section order (capabilities, extensions, imports,
// memory model, entry points, execution modes, debug, annotations,
// declarations, functions) with a stable sort over GetOrderGroup.
//
// # Operand schema
//
// GetOperandLayout describes the operands of each opcode. Decoration
// instructions are sub-keyed on the decoration kind, so BuiltIn carries an
// enum operand while UserSemantic carries a string. The schema drives id
// rewriting (Instruction.VisitIDs) and the disassembler.
//
// # Context
//
// A Context extends a Buffer: it allocates ids from the header bound,
// interns types and constants structurally and records names:
//
//	ctx := spirv.NewContext(buf)
//	vec4 := ctx.GetOrRegister(ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32})
//	one := ctx.ConstantFloat(1)
//	ctx.AddDecoration(varID, spirv.DecorationLocation, 0)
//
// Emitter writes function bodies at the end of the buffer or at an
// insertion point.
package spirv
