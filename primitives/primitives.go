// Package primitives has the static vertex data shared by the programs.
package primitives

import "github.com/bloeys/glpractice/buffers"

// CubeLayout is the layout of CubeVertices: position, normal then uv
var CubeLayout = []buffers.Element{
	{ElementType: buffers.DataTypeVec3},
	{ElementType: buffers.DataTypeVec3},
	{ElementType: buffers.DataTypeVec2},
}

// CubeVertices is a unit cube centered at the origin as 36 non-indexed vertices.
// Triangles are counter-clockwise when seen from outside.
var CubeVertices = []float32{
	// Back face (-z)
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 0, 1,

	// Front face (+z)
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,

	// Left face (-x)
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, -0.5, -1, 0, 0, 1, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, 0.5, -1, 0, 0, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,

	// Right face (+x)
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,

	// Bottom face (-y)
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,

	// Top face (+y)
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
}

// CubeVertexCount is the number of vertices in CubeVertices
const CubeVertexCount = 36

// QuadLayout is the layout of the screen quads: ndc position then uv
var QuadLayout = []buffers.Element{
	{ElementType: buffers.DataTypeVec2},
	{ElementType: buffers.DataTypeVec2},
}

// LeftHalfQuad covers the left half of the screen in normalized device coordinates
var LeftHalfQuad = []float32{
	-1, 1, 0, 1,
	-1, -1, 0, 0,
	0, -1, 1, 0,

	-1, 1, 0, 1,
	0, -1, 1, 0,
	0, 1, 1, 1,
}

// RightHalfQuad covers the right half of the screen in normalized device coordinates
var RightHalfQuad = []float32{
	0, 1, 0, 1,
	0, -1, 0, 0,
	1, -1, 1, 0,

	0, 1, 0, 1,
	1, -1, 1, 0,
	1, 1, 1, 1,
}

// QuadVertexCount is the number of vertices in each half quad
const QuadVertexCount = 6

// NewCubeVao uploads CubeVertices and enables every attribute of CubeLayout
func NewCubeVao() (buffers.VertexArray, buffers.VertexBuffer) {

	vbo := buffers.NewVertexBuffer(CubeLayout...)
	vbo.SetData(CubeVertices, buffers.BufUsage_Static_Draw)

	vao := buffers.NewVertexArray()
	vao.AddVertexBuffer(vbo)
	vao.UnBind()

	return vao, vbo
}

// NewLampVao reuses the vbo of NewCubeVao but only enables the position attribute,
// which is all the light cube shaders read
func NewLampVao(cubeVbo buffers.VertexBuffer) buffers.VertexArray {

	vao := buffers.NewVertexArray()
	vao.AddVertexBufferElements(cubeVbo, 1)
	vao.UnBind()

	return vao
}

func NewQuadVao(quad []float32) (buffers.VertexArray, buffers.VertexBuffer) {

	vbo := buffers.NewVertexBuffer(QuadLayout...)
	vbo.SetData(quad, buffers.BufUsage_Static_Draw)

	vao := buffers.NewVertexArray()
	vao.AddVertexBuffer(vbo)
	vao.UnBind()

	return vao, vbo
}
