package buffers

import (
	"github.com/bloeys/glpractice/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element is one attribute of an interleaved vertex (e.g. a Vec3 normal at an offset of 12 bytes)
type Element struct {
	Offset int
	ElementType
}

// ElementType is the data type of a vertex attribute (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	// DataTypeRGBA8Norm is four unsigned bytes read as floats in [0, 1] (e.g. a packed vertex color)
	DataTypeRGBA8Norm
)

func (dt ElementType) GLType() uint32 {

	switch dt {
	case DataTypeUint32:
		return gl.UNSIGNED_INT
	case DataTypeInt32:
		return gl.INT
	case DataTypeFloat32, DataTypeVec2, DataTypeVec3, DataTypeVec4:
		return gl.FLOAT
	case DataTypeRGBA8Norm:
		return gl.UNSIGNED_BYTE
	}

	assert.T(false, "Unknown data type passed. DataType '%d'", dt)
	return 0
}

// Normalized is true for integer types that the shader reads as [0, 1] floats
func (dt ElementType) Normalized() bool {
	return dt == DataTypeRGBA8Norm
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeUint32, DataTypeInt32, DataTypeFloat32:
		return 1
	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4, DataTypeRGBA8Norm:
		return 4
	}

	assert.T(false, "Unknown data type passed. DataType '%d'", dt)
	return 0
}

// CompSize returns the size of one component in bytes
func (dt ElementType) CompSize() int32 {

	if dt == DataTypeRGBA8Norm {
		return 1
	}

	return 4
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompCount() * dt.CompSize()
}

func (dt ElementType) String() string {

	switch dt {
	case DataTypeUint32:
		return "uint32"
	case DataTypeInt32:
		return "int32"
	case DataTypeFloat32:
		return "float32"
	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"
	case DataTypeRGBA8Norm:
		return "RGBA8Norm"
	default:
		return "Unknown"
	}
}

// LayoutFloatCount returns how many float32s one vertex of the layout takes.
// A packed RGBA8 color takes the space of one float.
func LayoutFloatCount(layout []Element) int {

	size := 0
	for i := 0; i < len(layout); i++ {
		size += int(layout[i].Size())
	}

	return size / 4
}
