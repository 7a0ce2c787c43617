package iface

import (
	"strings"

	"github.com/gogpu/stitch/ir"
	"github.com/gogpu/stitch/spirv"
)

type direction uint8

const (
	dirInput direction = iota
	dirOutput
)

func (d direction) storage() spirv.StorageClass {
	if d == dirInput {
		return spirv.StorageClassInput
	}
	return spirv.StorageClassOutput
}

func (d direction) space() ir.AddressSpace {
	if d == dirInput {
		return ir.SpaceInput
	}
	return ir.SpaceOutput
}

// builtinRule maps a system-value semantic to a SPIR-V built-in variable.
type builtinRule struct {
	builtin spirv.BuiltIn
	// typ returns the type the built-in variable is declared with, given the
	// field type. The wrapper converts between the two.
	typ func(field ir.Type) ir.Type
	// perVertex built-ins are arrayed like user varyings in hull, domain and
	// geometry stages; the others hold one value per invocation.
	perVertex    bool
	capabilities []spirv.Capability
}

var (
	float3 = ir.VectorType{Size: ir.Vec3, Scalar: ir.Float32}
	float4 = ir.VectorType{Size: ir.Vec4, Scalar: ir.Float32}
	uint3  = ir.VectorType{Size: ir.Vec3, Scalar: ir.Uint32}
)

func fixed(t ir.Type) func(ir.Type) ir.Type {
	return func(ir.Type) ir.Type { return t }
}

// floatArray declares clip and cull distances as float[N], N being the
// number of components of the field.
func floatArray(field ir.Type) ir.Type {
	_, n, ok := elements(field)
	if !ok {
		n = 1
	}
	return ir.ArrayType{Base: ir.Float32, Size: u32(n)}
}

// lookupBuiltin returns the built-in backing semantic for a stage and
// direction. Semantics that are plain varyings in that position, such as
// SV_Position as a vertex input, report false and get a location instead.
//
//nolint:gocyclo,cyclop,funlen // one case per system value
func lookupBuiltin(stage ir.ShaderStage, dir direction, semantic string) (builtinRule, bool) {
	key := semanticKey(semantic)
	in := dir == dirInput
	out := !in
	ps, vs := stage == ir.StagePixel, stage == ir.StageVertex

	switch {
	case strings.HasPrefix(key, "SV_POSITION"):
		switch {
		case ps && in:
			return builtinRule{builtin: spirv.BuiltInFragCoord, typ: fixed(float4)}, true
		case vs && in, ps:
			return builtinRule{}, false
		}
		return builtinRule{builtin: spirv.BuiltInPosition, typ: fixed(float4), perVertex: true}, true

	case strings.HasPrefix(key, "SV_CLIPDISTANCE"):
		if (vs && in) || (ps && out) {
			return builtinRule{}, false
		}
		return builtinRule{builtin: spirv.BuiltInClipDistance, typ: floatArray, perVertex: true,
			capabilities: []spirv.Capability{spirv.CapabilityClipDistance}}, true

	case strings.HasPrefix(key, "SV_CULLDISTANCE"):
		if (vs && in) || (ps && out) {
			return builtinRule{}, false
		}
		return builtinRule{builtin: spirv.BuiltInCullDistance, typ: floatArray, perVertex: true,
			capabilities: []spirv.Capability{spirv.CapabilityCullDistance}}, true

	case key == "SV_VERTEXID" && vs && in:
		return builtinRule{builtin: spirv.BuiltInVertexIndex, typ: fixed(ir.Uint32)}, true

	case key == "SV_INSTANCEID" && vs && in:
		return builtinRule{builtin: spirv.BuiltInInstanceIndex, typ: fixed(ir.Uint32)}, true

	case (key == "SV_DEPTH" || key == "SV_DEPTHGREATEREQUAL" || key == "SV_DEPTHLESSEQUAL") && ps && out:
		return builtinRule{builtin: spirv.BuiltInFragDepth, typ: fixed(ir.Float32)}, true

	case (key == "SV_ISFRONTFACE" || key == "VFACE") && ps && in:
		return builtinRule{builtin: spirv.BuiltInFrontFacing, typ: fixed(ir.Bool)}, true

	case key == "SV_DISPATCHTHREADID" && stage == ir.StageCompute && in:
		return builtinRule{builtin: spirv.BuiltInGlobalInvocationID, typ: fixed(uint3)}, true

	case key == "SV_GROUPID" && stage == ir.StageCompute && in:
		return builtinRule{builtin: spirv.BuiltInWorkgroupID, typ: fixed(uint3)}, true

	case key == "SV_GROUPTHREADID" && stage == ir.StageCompute && in:
		return builtinRule{builtin: spirv.BuiltInLocalInvocationID, typ: fixed(uint3)}, true

	case key == "SV_GROUPINDEX" && stage == ir.StageCompute && in:
		return builtinRule{builtin: spirv.BuiltInLocalInvocationIndex, typ: fixed(ir.Uint32)}, true

	case key == "SV_OUTPUTCONTROLPOINTID" && stage == ir.StageHull && in,
		key == "SV_GSINSTANCEID" && stage == ir.StageGeometry && in:
		return builtinRule{builtin: spirv.BuiltInInvocationID, typ: fixed(ir.Uint32)}, true

	case key == "SV_DOMAINLOCATION" && stage == ir.StageDomain && in:
		return builtinRule{builtin: spirv.BuiltInTessCoord, typ: fixed(float3)}, true

	case key == "SV_PRIMITIVEID" && ((in && !vs && stage != ir.StageCompute) || (out && stage == ir.StageGeometry)):
		rule := builtinRule{builtin: spirv.BuiltInPrimitiveID, typ: fixed(ir.Uint32)}
		if ps {
			rule.capabilities = []spirv.Capability{spirv.CapabilityGeometry}
		}
		return rule, true

	case key == "SV_TESSFACTOR" && ((stage == ir.StageHull && out) || (stage == ir.StageDomain && in)):
		return builtinRule{builtin: spirv.BuiltInTessLevelOuter, typ: fixed(ir.ArrayType{Base: ir.Float32, Size: 4})}, true

	case key == "SV_INSIDETESSFACTOR" && ((stage == ir.StageHull && out) || (stage == ir.StageDomain && in)):
		return builtinRule{builtin: spirv.BuiltInTessLevelInner, typ: fixed(ir.ArrayType{Base: ir.Float32, Size: 2})}, true

	case key == "SV_SAMPLEINDEX" && ps && in:
		return builtinRule{builtin: spirv.BuiltInSampleID, typ: fixed(ir.Uint32),
			capabilities: []spirv.Capability{spirv.CapabilitySampleRateShading}}, true

	case key == "SV_RENDERTARGETARRAYINDEX" && ((stage == ir.StageGeometry && out) || (ps && in)):
		return builtinRule{builtin: spirv.BuiltInLayer, typ: fixed(ir.Uint32),
			capabilities: []spirv.Capability{spirv.CapabilityGeometry}}, true

	case key == "SV_VIEWPORTARRAYINDEX" && ((stage == ir.StageGeometry && out) || (ps && in)):
		return builtinRule{builtin: spirv.BuiltInViewportIndex, typ: fixed(ir.Uint32),
			capabilities: []spirv.Capability{spirv.CapabilityMultiViewport}}, true

	case key == "SV_COVERAGE" && ps:
		return builtinRule{builtin: spirv.BuiltInSampleMask, typ: fixed(ir.ArrayType{Base: ir.Uint32, Size: 1})}, true
	}
	return builtinRule{}, false
}

// needsFlat reports whether an interface variable of type t must not be
// interpolated.
func needsFlat(t ir.Type) bool {
	s, ok := ir.ScalarOf(t)
	if !ok {
		return false
	}
	return s.Kind != ir.ScalarFloat || s.Width == 8
}

// locationCount returns how many consecutive locations a varying of type t
// occupies.
func locationCount(t ir.Type) int {
	switch t := t.(type) {
	case ir.VectorType:
		if t.Scalar.Width == 8 && t.Size > ir.Vec2 {
			return 2
		}
		return 1
	case ir.MatrixType:
		return int(t.Columns) * locationCount(t.Column())
	case ir.ArrayType:
		return int(t.Size) * locationCount(t.Base)
	case ir.StructType:
		n := 0
		for _, m := range t.Members {
			n += locationCount(m.Type)
		}
		return n
	default:
		return 1
	}
}
