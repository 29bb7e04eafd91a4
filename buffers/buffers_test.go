package buffers

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLayoutComputesOffsetsAndStride(t *testing.T) {

	vb := VertexBuffer{}
	vb.SetLayout(
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec2},
	)

	require.Equal(t, int32(32), vb.Stride)

	layout := vb.GetLayout()
	require.Len(t, layout, 3)
	assert.Equal(t, 0, layout[0].Offset)
	assert.Equal(t, 12, layout[1].Offset)
	assert.Equal(t, 24, layout[2].Offset)
	assert.Equal(t, 8, LayoutFloatCount(layout))
}

func TestSetLayoutResetsPreviousStride(t *testing.T) {

	vb := VertexBuffer{}
	vb.SetLayout(Element{ElementType: DataTypeVec4})
	vb.SetLayout(Element{ElementType: DataTypeVec3})

	assert.Equal(t, int32(12), vb.Stride)
}

func TestSetLayoutLeavesCallerSliceUntouched(t *testing.T) {

	layout := []Element{
		{ElementType: DataTypeVec3},
		{ElementType: DataTypeVec3},
	}

	vb := VertexBuffer{}
	vb.SetLayout(layout...)

	assert.Equal(t, 0, layout[1].Offset)
	assert.Equal(t, 12, vb.GetLayout()[1].Offset)

	// Sharing a package level layout between buffers must not leak offsets between them
	other := VertexBuffer{}
	other.SetLayout(layout[1:]...)
	assert.Equal(t, 0, other.GetLayout()[0].Offset)
}

func TestSetLayoutWithPackedColor(t *testing.T) {

	vb := VertexBuffer{}
	vb.SetLayout(
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeRGBA8Norm},
	)

	assert.Equal(t, int32(20), vb.Stride)
	assert.Equal(t, 16, vb.GetLayout()[2].Offset)
	assert.Equal(t, 5, LayoutFloatCount(vb.GetLayout()))
}

func TestGetLayoutReturnsCopy(t *testing.T) {

	vb := VertexBuffer{}
	vb.SetLayout(Element{ElementType: DataTypeVec3})

	l := vb.GetLayout()
	l[0].Offset = 99

	assert.Equal(t, 0, vb.GetLayout()[0].Offset)
}

func TestElementTypes(t *testing.T) {

	tests := []struct {
		dt        ElementType
		compCount int32
		size      int32
		glType    uint32
		name      string
	}{
		{DataTypeUint32, 1, 4, gl.UNSIGNED_INT, "uint32"},
		{DataTypeInt32, 1, 4, gl.INT, "int32"},
		{DataTypeFloat32, 1, 4, gl.FLOAT, "float32"},
		{DataTypeVec2, 2, 8, gl.FLOAT, "Vec2"},
		{DataTypeVec3, 3, 12, gl.FLOAT, "Vec3"},
		{DataTypeVec4, 4, 16, gl.FLOAT, "Vec4"},
		{DataTypeRGBA8Norm, 4, 4, gl.UNSIGNED_BYTE, "RGBA8Norm"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.compCount, tt.dt.CompCount(), tt.name)
		assert.Equal(t, tt.size, tt.dt.Size(), tt.name)
		assert.Equal(t, tt.glType, tt.dt.GLType(), tt.name)
		assert.Equal(t, tt.name, tt.dt.String())
	}

	assert.Equal(t, "Unknown", DataTypeUnknown.String())
	assert.True(t, DataTypeRGBA8Norm.Normalized())
	assert.False(t, DataTypeVec4.Normalized())
	assert.False(t, DataTypeUint32.Normalized())
}

func TestBufUsageToGL(t *testing.T) {
	assert.Equal(t, uint32(gl.STATIC_DRAW), BufUsage_Static_Draw.ToGL())
	assert.Equal(t, uint32(gl.DYNAMIC_DRAW), BufUsage_Dynamic_Draw.ToGL())
	assert.Equal(t, uint32(gl.STREAM_DRAW), BufUsage_Stream_Draw.ToGL())
	assert.Panics(t, func() { BufUsage_Unknown.ToGL() })
}

func TestFramebufferFormats(t *testing.T) {

	assert.True(t, FramebufferAttachmentDataFormat_RGBA8.IsColorFormat())
	assert.True(t, FramebufferAttachmentDataFormat_RGB8.IsColorFormat())
	assert.False(t, FramebufferAttachmentDataFormat_RGBA8.IsDepthFormat())

	assert.True(t, FramebufferAttachmentDataFormat_Depth24Stencil8.IsDepthFormat())
	assert.False(t, FramebufferAttachmentDataFormat_Depth24Stencil8.IsColorFormat())
	assert.False(t, FramebufferAttachmentDataFormat_Unknown.IsColorFormat())

	assert.Equal(t, uint32(gl.UNSIGNED_INT_24_8), FramebufferAttachmentDataFormat_Depth24Stencil8.GlDataType())
	assert.Equal(t, uint32(gl.UNSIGNED_BYTE), FramebufferAttachmentDataFormat_RGBA8.GlDataType())

	assert.True(t, FramebufferAttachmentType_Texture.IsValid())
	assert.True(t, FramebufferAttachmentType_Renderbuffer.IsValid())
	assert.False(t, FramebufferAttachmentType_Unknown.IsValid())
}

func TestFramebufferAttachmentQueries(t *testing.T) {

	fbo := Framebuffer{
		Attachments: []FramebufferAttachment{
			{Id: 3, Type: FramebufferAttachmentType_Renderbuffer, Format: FramebufferAttachmentDataFormat_Depth24Stencil8},
			{Id: 7, Type: FramebufferAttachmentType_Texture, Format: FramebufferAttachmentDataFormat_RGBA8},
		},
		ColorAttachmentsCount: 1,
	}

	assert.True(t, fbo.HasColorAttachment())
	assert.True(t, fbo.HasDepthAttachment())
	assert.Equal(t, uint32(7), fbo.ColorTexId())

	empty := Framebuffer{}
	assert.False(t, empty.HasColorAttachment())
	assert.False(t, empty.HasDepthAttachment())
	assert.Equal(t, uint32(0), empty.ColorTexId())
}
