package iface

import (
	"testing"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		from, to ir.Type
		want     []spirv.OpCode
	}{
		{"same type", float4, float4, nil},
		{"float to uint", float1, ir.Uint32, []spirv.OpCode{spirv.OpConvertFToU}},
		{"int to float vector",
			ir.VectorType{Size: ir.Vec2, Scalar: ir.Int32}, float2,
			[]spirv.OpCode{spirv.OpConvertSToF}},
		{"bool to uint", ir.Bool, ir.Uint32, []spirv.OpCode{spirv.OpSelect}},
		{"uint to bool", ir.Uint32, ir.Bool, []spirv.OpCode{spirv.OpINotEqual}},
		{"int to uint", ir.Int32, ir.Uint32, []spirv.OpCode{spirv.OpBitcast}},
		{"vector to array", float2, ir.ArrayType{Base: ir.Float32, Size: 2},
			[]spirv.OpCode{spirv.OpCompositeExtract, spirv.OpCompositeExtract, spirv.OpCompositeConstruct}},
		{"widen array", ir.ArrayType{Base: ir.Float32, Size: 3}, ir.ArrayType{Base: ir.Float32, Size: 4},
			[]spirv.OpCode{spirv.OpCompositeExtract, spirv.OpCompositeExtract, spirv.OpCompositeExtract,
				spirv.OpCompositeConstruct}},
		{"uint to uint vector", ir.Uint32, ir.VectorType{Size: ir.Vec3, Scalar: ir.Uint32},
			[]spirv.OpCode{spirv.OpCompositeConstruct}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModule(t)
			value := m.ctx.ConstantNull(tt.from)
			start := m.ctx.Buffer().Len()
			e := m.ctx.Emitter()

			got := convert(e, tt.from, tt.to, value)

			var ops []spirv.OpCode
			for _, inst := range m.ctx.Buffer().Instructions()[start:] {
				if spirv.IsBody(inst) {
					ops = append(ops, inst.Opcode)
				}
			}
			if len(ops) != len(tt.want) {
				t.Fatalf("emitted %v, want %v", ops, tt.want)
			}
			for i := range ops {
				if ops[i] != tt.want[i] {
					t.Errorf("op %d = %s, want %s", i, ops[i], tt.want[i])
				}
			}
			if tt.want == nil && got != value {
				t.Error("converting to the same type should return the value")
			}
		})
	}
}
