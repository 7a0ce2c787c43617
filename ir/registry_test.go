package ir

import (
	"errors"
	"testing"
)

func TestTypeRegistry_ScalarDeduplication(t *testing.T) {
	registry := NewTypeRegistry()

	if err := registry.Register(ScalarType{Kind: ScalarFloat, Width: 4}, 3); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := registry.Register(ScalarType{Kind: ScalarFloat, Width: 4}, 9); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	id, ok := registry.Lookup(Float32)
	if !ok || id != 3 {
		t.Errorf("Expected first declaration 3, got %d (found=%v)", id, ok)
	}

	if registry.Count() != 1 {
		t.Errorf("Expected 1 type, got %d", registry.Count())
	}

	// The duplicate declaration still resolves back to its descriptor.
	if typ, ok := registry.TypeOf(9); !ok || !Equal(typ, Float32) {
		t.Errorf("Expected id 9 to resolve to float, got %v", typ)
	}
}

func TestTypeRegistry_DifferentScalars(t *testing.T) {
	registry := NewTypeRegistry()

	scalars := []ScalarType{
		Float32,
		Int32,
		Uint32,
		{Kind: ScalarFloat, Width: 2},
		Bool,
	}
	for i, s := range scalars {
		if err := registry.Register(s, uint32(i+1)); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	if registry.Count() != len(scalars) {
		t.Errorf("Expected %d types, got %d", len(scalars), registry.Count())
	}
	for i, s := range scalars {
		if id, _ := registry.Lookup(s); id != uint32(i+1) {
			t.Errorf("%s: got id %d, want %d", TypeName(s), id, i+1)
		}
	}
}

func TestTypeRegistry_VectorKeys(t *testing.T) {
	vec4f32 := VectorType{Size: Vec4, Scalar: Float32}
	vec3f32 := VectorType{Size: Vec3, Scalar: Float32}
	vec4i32 := VectorType{Size: Vec4, Scalar: Int32}

	if Key(vec4f32) != Key(VectorType{Size: Vec4, Scalar: Float32}) {
		t.Error("identical vectors should share a key")
	}
	if Key(vec4f32) == Key(vec3f32) {
		t.Error("vec4<f32> should differ from vec3<f32>")
	}
	if Key(vec4f32) == Key(vec4i32) {
		t.Error("vec4<f32> should differ from vec4<i32>")
	}
}

func TestTypeRegistry_StructNameIsPartOfIdentity(t *testing.T) {
	members := []StructMember{
		{Name: "Position", Type: VectorType{Size: Vec4, Scalar: Float32}},
	}
	vs := StructType{Name: "VS_STREAMS", Members: members}
	ps := StructType{Name: "PS_STREAMS", Members: members}

	if Key(vs) == Key(ps) {
		t.Fatal("structs with different names must not share a key")
	}

	registry := NewTypeRegistry()
	if err := registry.Register(vs, 10); err != nil {
		t.Fatal(err)
	}
	if err := registry.Register(ps, 11); err != nil {
		t.Fatal(err)
	}
	if registry.Count() != 2 {
		t.Errorf("Expected 2 types, got %d", registry.Count())
	}
}

func TestTypeRegistry_StructConflict(t *testing.T) {
	registry := NewTypeRegistry()

	first := StructType{Name: "VS_INPUT", Members: []StructMember{{Name: "A", Type: Float32}}}
	second := StructType{Name: "VS_INPUT", Members: []StructMember{{Name: "A", Type: Int32}}}

	if err := registry.Register(first, 5); err != nil {
		t.Fatal(err)
	}
	// Same shape again is fine.
	if err := registry.Register(first, 5); err != nil {
		t.Errorf("re-registering identical struct failed: %v", err)
	}

	err := registry.Register(second, 6)
	var conflict *StructConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected StructConflictError, got %v", err)
	}
	if conflict.Name != "VS_INPUT" {
		t.Errorf("conflict name: got %q", conflict.Name)
	}
}

func TestTypeRegistry_PointerAndArrayKeys(t *testing.T) {
	base := VectorType{Size: Vec4, Scalar: Float32}

	private := PointerType{Base: base, Space: SpacePrivate}
	function := PointerType{Base: base, Space: SpaceFunction}
	if Key(private) == Key(function) {
		t.Error("pointers in different address spaces must differ")
	}

	a3 := ArrayType{Base: base, Size: 3}
	a4 := ArrayType{Base: base, Size: 4}
	runtime := ArrayType{Base: base}
	if Key(a3) == Key(a4) || Key(a3) == Key(runtime) {
		t.Error("array sizes must take part in the key")
	}
}

func TestTypeRegistry_ForgetAndClone(t *testing.T) {
	registry := NewTypeRegistry()
	_ = registry.Register(Float32, 2)

	clone := registry.Clone()
	registry.Forget(2)

	if _, ok := registry.Lookup(Float32); ok {
		t.Error("forgotten type still registered")
	}
	if id, ok := clone.Lookup(Float32); !ok || id != 2 {
		t.Error("clone should be unaffected by Forget")
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Float32, "float"},
		{VectorType{Size: Vec3, Scalar: Uint32}, "uint3"},
		{MatrixType{Columns: Vec4, Rows: Vec4, Scalar: Float32}, "float4x4"},
		{ArrayType{Base: Float32, Size: 2}, "float[2]"},
		{StructType{Name: "S"}, "S"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.typ); got != tt.want {
			t.Errorf("TypeName(%s) = %q, want %q", Key(tt.typ), got, tt.want)
		}
	}
}
