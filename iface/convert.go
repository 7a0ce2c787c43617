package iface

import (
	"fmt"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

// elements views scalars, vectors and sized arrays of scalars as sequences.
func elements(t ir.Type) (ir.ScalarType, int, bool) {
	switch t := t.(type) {
	case ir.ScalarType:
		return t, 1, true
	case ir.VectorType:
		return t.Scalar, int(t.Size), true
	case ir.ArrayType:
		if s, ok := t.Base.(ir.ScalarType); ok && t.Size > 0 {
			return s, int(t.Size), true
		}
	}
	return ir.ScalarType{}, 0, false
}

// convert emits the instructions turning value of type from into type to.
// Interface variables are declared with the type their built-in demands
// while stream fields keep the declared type, so the wrapper converts in
// both directions.
func convert(e *spirv.Emitter, from, to ir.Type, value uint32) uint32 {
	if ir.Equal(from, to) {
		return value
	}

	fs, fromScalar := from.(ir.ScalarType)
	ts, toScalar := to.(ir.ScalarType)
	if fromScalar && toScalar {
		return convertComponents(e, fs, ts, to, value)
	}
	fv, fromVector := from.(ir.VectorType)
	tv, toVector := to.(ir.VectorType)
	if fromVector && toVector && fv.Size == tv.Size {
		return convertComponents(e, fv.Scalar, tv.Scalar, to, value)
	}

	fe, fn, ok1 := elements(from)
	te, tn, ok2 := elements(to)
	if !ok1 || !ok2 {
		panic(&spirv.InternalError{Message: fmt.Sprintf("cannot convert %s to %s", ir.TypeName(from), ir.TypeName(to))})
	}
	ctx := e.Context()
	parts := make([]uint32, tn)
	for i := range parts {
		if i >= fn {
			parts[i] = ctx.ConstantScalar(te, 0)
			continue
		}
		v := value
		if !fromScalar {
			v = e.CompositeExtract(ctx.GetOrRegister(fe), value, u32(i))
		}
		parts[i] = convert(e, fe, te, v)
	}
	if toScalar {
		return parts[0]
	}
	return e.CompositeConstruct(ctx.GetOrRegister(to), parts...)
}

// convertComponents converts a scalar or a vector component-wise. t is the
// full result type, to its component type.
func convertComponents(e *spirv.Emitter, from, to ir.ScalarType, t ir.Type, value uint32) uint32 {
	ctx := e.Context()
	result := ctx.GetOrRegister(t)

	splat := func(s ir.ScalarType, bits uint64) uint32 {
		c := ctx.ConstantScalar(s, bits)
		v, ok := t.(ir.VectorType)
		if !ok {
			return c
		}
		parts := make([]uint32, v.Size)
		for i := range parts {
			parts[i] = c
		}
		return e.CompositeConstruct(ctx.GetOrRegister(ir.VectorType{Size: v.Size, Scalar: s}), parts...)
	}

	switch {
	case from.Kind == ir.ScalarBool:
		one := uint64(1)
		if to.Kind == ir.ScalarFloat {
			one = floatOne(to)
		}
		return e.Select(result, value, splat(to, one), splat(to, 0))
	case to.Kind == ir.ScalarBool:
		if from.Kind == ir.ScalarFloat {
			return e.BinaryOp(spirv.OpFOrdNotEqual, result, value, splat(from, 0))
		}
		return e.BinaryOp(spirv.OpINotEqual, result, value, splat(from, 0))
	case from.Kind == ir.ScalarFloat && to.Kind == ir.ScalarFloat:
		return e.UnaryOp(spirv.OpFConvert, result, value)
	case from.Kind == ir.ScalarFloat && to.Kind == ir.ScalarSint:
		return e.UnaryOp(spirv.OpConvertFToS, result, value)
	case from.Kind == ir.ScalarFloat:
		return e.UnaryOp(spirv.OpConvertFToU, result, value)
	case to.Kind == ir.ScalarFloat && from.Kind == ir.ScalarSint:
		return e.UnaryOp(spirv.OpConvertSToF, result, value)
	case to.Kind == ir.ScalarFloat:
		return e.UnaryOp(spirv.OpConvertUToF, result, value)
	case from.Width == to.Width:
		return e.UnaryOp(spirv.OpBitcast, result, value)
	case from.Kind == ir.ScalarSint:
		return e.UnaryOp(spirv.OpSConvert, result, value)
	default:
		return e.UnaryOp(spirv.OpUConvert, result, value)
	}
}

func floatOne(s ir.ScalarType) uint64 {
	switch s.Width {
	case 2:
		return 0x3C00
	case 8:
		return 0x3FF0000000000000
	default:
		return 0x3F800000
	}
}
