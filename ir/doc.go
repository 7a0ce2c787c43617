// Package ir defines the structural model used while stitching shader
// stages together.
//
// # Types
//
// Types are value descriptors (ScalarType, VectorType, StructType, ...).
// A TypeRegistry maps the structural Key of each descriptor to the SPIR-V
// result id that declares it:
//
//	reg := ir.NewTypeRegistry()
//	_ = reg.Register(ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}, 12)
//	id, ok := reg.Lookup(ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}) // 12, true
//
// Struct names take part in the key, so VS_STREAMS and PS_STREAMS never
// collapse into one declaration even when their members agree.
//
// # Symbols
//
// A SymbolTable resolves function and variable names to result ids. Method
// groups (the same function name declared by several mixins) resolve to
// their most derived member.
package ir
