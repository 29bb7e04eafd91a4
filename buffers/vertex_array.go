package buffers

import (
	"github.com/bloeys/glpractice/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray maps vertex buffers to shader attribute locations.
// Attributes get consecutive locations across all added buffers, in layout order.
type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer

	nextAttribLoc uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer) {
	va.AddVertexBufferElements(vbo, len(vbo.layout))
}

// AddVertexBufferElements only enables the first elementCount elements of the vbo layout.
// This lets a vao reuse a vbo while ignoring trailing attributes (e.g. a lamp cube ignoring normals).
func (va *VertexArray) AddVertexBufferElements(vbo VertexBuffer, elementCount int) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	for i := 0; i < elementCount && i < len(vbo.layout); i++ {

		l := &vbo.layout[i]

		gl.EnableVertexAttribArray(va.nextAttribLoc)
		gl.VertexAttribPointerWithOffset(va.nextAttribLoc, l.ElementType.CompCount(), l.ElementType.GLType(), l.ElementType.Normalized(), vbo.Stride, uintptr(l.Offset))
		va.nextAttribLoc++
	}

	va.Vbos = append(va.Vbos, vbo)
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete frees the vao only. Buffers may be shared between vaos so are deleted by their owner.
func (va *VertexArray) Delete() {

	if va.Id == 0 {
		return
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
