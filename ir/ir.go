package ir

// ShaderStage represents a pipeline stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageHull
	StageDomain
	StageGeometry
	StagePixel
	StageCompute
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageHull:
		return "Hull"
	case StageDomain:
		return "Domain"
	case StageGeometry:
		return "Geometry"
	case StagePixel:
		return "Pixel"
	case StageCompute:
		return "Compute"
	default:
		return "Unknown"
	}
}

// Prefix returns the two-letter stage tag used in generated names
// (VS, HS, DS, GS, PS, CS).
func (s ShaderStage) Prefix() string {
	switch s {
	case StageVertex:
		return "VS"
	case StageHull:
		return "HS"
	case StageDomain:
		return "DS"
	case StageGeometry:
		return "GS"
	case StagePixel:
		return "PS"
	case StageCompute:
		return "CS"
	default:
		return "XS"
	}
}

// HasArrayInputs reports whether the stage consumes a whole primitive or
// patch of per-vertex inputs at once.
func (s ShaderStage) HasArrayInputs() bool {
	return s == StageHull || s == StageDomain || s == StageGeometry
}

// HasPatchConstants reports whether the stage carries per-patch data.
func (s ShaderStage) HasPatchConstants() bool {
	return s == StageHull || s == StageDomain
}

// Type is a structural type descriptor.
type Type interface {
	typeInner()
}

// VoidType is the function return type for procedures.
type VoidType struct{}

func (VoidType) typeInner() {}

// ScalarType represents scalar types.
type ScalarType struct {
	Kind  ScalarKind
	Width uint8 // in bytes, zero for bool
}

func (ScalarType) typeInner() {}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarUint                    // Unsigned integer
	ScalarFloat                   // Floating point
	ScalarBool                    // Boolean
)

// Frequently used scalars.
var (
	Bool    = ScalarType{Kind: ScalarBool}
	Int32   = ScalarType{Kind: ScalarSint, Width: 4}
	Uint32  = ScalarType{Kind: ScalarUint, Width: 4}
	Float32 = ScalarType{Kind: ScalarFloat, Width: 4}
)

// VectorType represents vector types.
type VectorType struct {
	Size   VectorSize
	Scalar ScalarType
}

func (VectorType) typeInner() {}

// VectorSize represents vector sizes.
type VectorSize uint8

const (
	Vec2 VectorSize = 2
	Vec3 VectorSize = 3
	Vec4 VectorSize = 4
)

// MatrixType represents column-major matrix types.
type MatrixType struct {
	Columns VectorSize
	Rows    VectorSize
	Scalar  ScalarType
}

func (MatrixType) typeInner() {}

// Column returns the column vector type of the matrix.
func (m MatrixType) Column() VectorType {
	return VectorType{Size: m.Rows, Scalar: m.Scalar}
}

// ArrayType represents array types.
type ArrayType struct {
	Base Type
	Size uint32 // zero for runtime-sized arrays
}

func (ArrayType) typeInner() {}

// StructType represents a named struct. The name takes part in identity so
// that per-stage structs with identical layouts stay distinct.
type StructType struct {
	Name    string
	Members []StructMember
}

func (StructType) typeInner() {}

// StructMember represents a struct member.
type StructMember struct {
	Name string
	Type Type
}

// MemberIndex returns the index of the member called name, or -1.
func (s StructType) MemberIndex(name string) int {
	for i, m := range s.Members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// PointerType represents pointer types.
type PointerType struct {
	Base  Type
	Space AddressSpace
}

func (PointerType) typeInner() {}

// FunctionType represents a function signature.
type FunctionType struct {
	Return Type
	Params []Type
}

func (FunctionType) typeInner() {}

// SamplerType represents a sampler.
type SamplerType struct{}

func (SamplerType) typeInner() {}

// ImageType represents an image.
type ImageType struct {
	SampledType  ScalarType
	Dim          ImageDimension
	Depth        uint8
	Arrayed      bool
	Multisampled bool
	Sampled      uint8
	Format       uint32
}

func (ImageType) typeInner() {}

// ImageDimension represents image dimensions.
type ImageDimension uint8

const (
	Dim1D ImageDimension = iota
	Dim2D
	Dim3D
	DimCube
	DimRect
	DimBuffer
	DimSubpassData
)

// SampledImageType represents a combined image and sampler.
type SampledImageType struct {
	Image ImageType
}

func (SampledImageType) typeInner() {}

// OpaqueType stands in for a declared type the structural model does not
// describe. It is identified by its result id.
type OpaqueType struct {
	ID uint32
}

func (OpaqueType) typeInner() {}

// AddressSpace represents a pointer storage class. Values match the SPIR-V
// StorageClass encoding.
type AddressSpace uint8

const (
	SpaceUniformConstant AddressSpace = 0
	SpaceInput           AddressSpace = 1
	SpaceUniform         AddressSpace = 2
	SpaceOutput          AddressSpace = 3
	SpaceWorkGroup       AddressSpace = 4
	SpacePrivate         AddressSpace = 6
	SpaceFunction        AddressSpace = 7
	SpacePushConstant    AddressSpace = 9
	SpaceStorage         AddressSpace = 12
)

// ScalarOf returns the element scalar of a scalar, vector or matrix type.
func ScalarOf(t Type) (ScalarType, bool) {
	switch t := t.(type) {
	case ScalarType:
		return t, true
	case VectorType:
		return t.Scalar, true
	case MatrixType:
		return t.Scalar, true
	default:
		return ScalarType{}, false
	}
}

// Equal reports whether two descriptors describe the same type.
func Equal(a, b Type) bool {
	return Key(a) == Key(b)
}
