package primitives

import (
	"testing"

	"github.com/bloeys/glpractice/buffers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec3 [3]float32

func (a vec3) sub(b vec3) vec3 {
	return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a vec3) dot(b vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func cubeVertex(i int) (pos, normal vec3, uv [2]float32) {

	stride := buffers.LayoutFloatCount(CubeLayout)
	v := CubeVertices[i*stride : (i+1)*stride]

	return vec3{v[0], v[1], v[2]}, vec3{v[3], v[4], v[5]}, [2]float32{v[6], v[7]}
}

func TestCubeVertexCount(t *testing.T) {
	require.Len(t, CubeVertices, CubeVertexCount*buffers.LayoutFloatCount(CubeLayout))
}

func TestCubeFacesPointOutwards(t *testing.T) {

	for tri := 0; tri < CubeVertexCount/3; tri++ {

		a, n, _ := cubeVertex(tri*3 + 0)
		b, _, _ := cubeVertex(tri*3 + 1)
		c, _, _ := cubeVertex(tri*3 + 2)

		faceNormal := b.sub(a).cross(c.sub(a))
		assert.Greater(t, faceNormal.dot(n), float32(0), "triangle %d is not counter-clockwise from outside", tri)

		for _, p := range []vec3{a, b, c} {
			assert.InDelta(t, 0.5, p.dot(n), 1e-6, "triangle %d vertex is not on its face", tri)
		}
	}
}

func TestCubeNormalsAndUVs(t *testing.T) {

	for i := 0; i < CubeVertexCount; i++ {

		_, n, uv := cubeVertex(i)
		assert.InDelta(t, 1, n.dot(n), 1e-6)

		assert.True(t, uv[0] == 0 || uv[0] == 1, "vertex %d", i)
		assert.True(t, uv[1] == 0 || uv[1] == 1, "vertex %d", i)
	}
}

func TestHalfQuads(t *testing.T) {

	stride := buffers.LayoutFloatCount(QuadLayout)
	require.Len(t, LeftHalfQuad, QuadVertexCount*stride)
	require.Len(t, RightHalfQuad, QuadVertexCount*stride)

	for i := 0; i < QuadVertexCount; i++ {

		l := LeftHalfQuad[i*stride : (i+1)*stride]
		r := RightHalfQuad[i*stride : (i+1)*stride]

		assert.LessOrEqual(t, l[0], float32(0))
		assert.GreaterOrEqual(t, r[0], float32(0))

		// Both halves show the whole fbo texture
		assert.Equal(t, l[2:], r[2:])

		// Right half is the left half moved one unit along x
		assert.Equal(t, l[0]+1, r[0])
		assert.Equal(t, l[1], r[1])
	}
}

func TestLampVaoAttributeIsCubePosition(t *testing.T) {

	// The lamp vao enables only the first attribute of the cube vbo, which must be the position
	require.NotEmpty(t, CubeLayout)
	assert.Equal(t, buffers.DataTypeVec3, CubeLayout[0].ElementType)

	vb := buffers.VertexBuffer{}
	vb.SetLayout(CubeLayout...)
	assert.Equal(t, 0, vb.GetLayout()[0].Offset)
	assert.Equal(t, int32(8*4), vb.Stride)
}
