package spirv

import (
	"runtime"
	"testing"

	"github.com/gogpu/stitch/ir"
)

// benchModule builds a module with n functions, each loading and storing a
// private variable, and returns its binary.
func benchModule(b *testing.B, n int) []byte {
	b.Helper()
	ctx := NewContext(NewBuffer(Version1_3))
	ctx.AddCapability(CapabilityShader)
	ctx.Append(NewInstruction(OpMemoryModel, uint32(AddressingModelLogical), uint32(MemoryModelGLSL450)))

	float4 := ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}
	ptr := ctx.PointerTo(float4, ir.SpacePrivate)
	voidID := ctx.GetOrRegister(ir.VoidType{})
	fnType := ctx.GetOrRegister(ir.FunctionType{Return: ir.VoidType{}})
	for i := 0; i < n; i++ {
		v := ctx.AllocID()
		ctx.Append(NewInstruction(OpVariable, ptr, v, uint32(StorageClassPrivate)))
		e := ctx.Emitter()
		fn := e.Function(voidID, fnType, FunctionControlNone)
		e.Label()
		e.Store(v, e.Load(ctx.GetOrRegister(float4), v))
		e.Return()
		e.FunctionEnd()
		ctx.AddName(fn, "fn")
	}
	ctx.Buffer().Sort()

	data, err := ctx.Buffer().Encode()
	if err != nil {
		b.Fatalf("encode failed: %v", err)
	}
	return data
}

var benchSizes = []struct {
	name      string
	functions int
}{
	{"small", 4},
	{"medium", 64},
	{"large", 512},
}

// BenchmarkDecode benchmarks parsing a binary module into a buffer.
func BenchmarkDecode(b *testing.B) {
	for _, bc := range benchSizes {
		b.Run(bc.name, func(b *testing.B) {
			data := benchModule(b, bc.functions)

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			var buf *Buffer
			for i := 0; i < b.N; i++ {
				var err error
				buf, err = Decode(data)
				if err != nil {
					b.Fatalf("decode failed: %v", err)
				}
			}
			runtime.KeepAlive(buf)
		})
	}
}

// BenchmarkNewContext benchmarks indexing the types, constants and names
// of a decoded module.
func BenchmarkNewContext(b *testing.B) {
	for _, bc := range benchSizes {
		b.Run(bc.name, func(b *testing.B) {
			buf, err := Decode(benchModule(b, bc.functions))
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			var ctx *Context
			for i := 0; i < b.N; i++ {
				ctx = NewContext(buf)
			}
			runtime.KeepAlive(ctx)
		})
	}
}

// BenchmarkSort benchmarks restoring section order after appending
// declarations at the end of the buffer.
func BenchmarkSort(b *testing.B) {
	for _, bc := range benchSizes {
		b.Run(bc.name, func(b *testing.B) {
			buf, err := Decode(benchModule(b, bc.functions))
			if err != nil {
				b.Fatal(err)
			}
			ctx := NewContext(buf)
			ctx.GetOrRegister(ir.VectorType{Size: ir.Vec3, Scalar: ir.Float32})

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				work := buf.Clone()
				work.Sort()
			}
		})
	}
}

// BenchmarkEncode benchmarks serializing a buffer to binary.
func BenchmarkEncode(b *testing.B) {
	for _, bc := range benchSizes {
		b.Run(bc.name, func(b *testing.B) {
			buf, err := Decode(benchModule(b, bc.functions))
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			var data []byte
			for i := 0; i < b.N; i++ {
				data, err = buf.Encode()
				if err != nil {
					b.Fatal(err)
				}
			}
			runtime.KeepAlive(data)
		})
	}
}
