package buffers

import (
	"unsafe"

	"github.com/bloeys/glpractice/assert"
	"github.com/bloeys/glpractice/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexBuffer struct {
	Id     uint32
	Stride int32
	// VertexCount is updated in SetData
	VertexCount int32
	layout      []Element
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetData replaces (and reallocates) the buffer contents. values must be a whole number of vertices.
func (vb *VertexBuffer) SetData(values []float32, usage BufUsage) {

	floatsPerVertex := int(vb.Stride / 4)
	assert.T(floatsPerVertex > 0, "Vertex buffer layout must be set before setting data")
	assert.T(len(values)%floatsPerVertex == 0, "Vertex data of %d floats is not a multiple of the layout size of %d floats", len(values), floatsPerVertex)

	vb.Bind()
	vb.VertexCount = int32(len(values) / floatsPerVertex)

	sizeInBytes := len(values) * 4
	if sizeInBytes == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), usage.ToGL())
	}
}

// SetRawData replaces the buffer contents with sizeInBytes bytes at data, which is usually memory owned by C code
func (vb *VertexBuffer) SetRawData(data unsafe.Pointer, sizeInBytes int, usage BufUsage) {

	assert.T(vb.Stride > 0, "Vertex buffer layout must be set before setting data")
	assert.T(sizeInBytes%int(vb.Stride) == 0, "Vertex data of %d bytes is not a multiple of the stride of %d bytes", sizeInBytes, vb.Stride)

	vb.Bind()
	vb.VertexCount = int32(sizeInBytes / int(vb.Stride))
	gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, data, usage.ToGL())
}

// SetSubData overwrites part of the buffer starting at the float offset, without reallocating
func (vb *VertexBuffer) SetSubData(floatOffset int, values []float32) {

	if len(values) == 0 {
		return
	}

	vb.Bind()
	gl.BufferSubData(gl.ARRAY_BUFFER, floatOffset*4, len(values)*4, gl.Ptr(&values[0]))
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

// SetLayout sets the interleaved vertex layout, computing each element's offset and the stride.
// The passed elements are copied and left unchanged.
func (vb *VertexBuffer) SetLayout(layout ...Element) {

	vb.Stride = 0
	vb.layout = append([]Element(nil), layout...)

	for i := 0; i < len(vb.layout); i++ {
		vb.layout[i].Offset = int(vb.Stride)
		vb.Stride += vb.layout[i].Size()
	}
}

func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(layout ...Element) VertexBuffer {

	vb := VertexBuffer{}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	vb.SetLayout(layout...)
	return vb
}
