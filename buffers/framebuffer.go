package buffers

import (
	"github.com/bloeys/glpractice/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type FramebufferAttachmentType int32

const (
	FramebufferAttachmentType_Unknown FramebufferAttachmentType = iota
	FramebufferAttachmentType_Texture
	FramebufferAttachmentType_Renderbuffer
)

func (f FramebufferAttachmentType) IsValid() bool {
	return f == FramebufferAttachmentType_Texture || f == FramebufferAttachmentType_Renderbuffer
}

type FramebufferAttachmentDataFormat int32

const (
	FramebufferAttachmentDataFormat_Unknown FramebufferAttachmentDataFormat = iota
	FramebufferAttachmentDataFormat_RGB8
	FramebufferAttachmentDataFormat_RGBA8
	FramebufferAttachmentDataFormat_Depth24Stencil8
)

func (f FramebufferAttachmentDataFormat) IsColorFormat() bool {
	return f == FramebufferAttachmentDataFormat_RGB8 || f == FramebufferAttachmentDataFormat_RGBA8
}

func (f FramebufferAttachmentDataFormat) IsDepthFormat() bool {
	return f == FramebufferAttachmentDataFormat_Depth24Stencil8
}

func (f FramebufferAttachmentDataFormat) GlInternalFormat() int32 {

	switch f {
	case FramebufferAttachmentDataFormat_RGB8:
		return gl.RGB8
	case FramebufferAttachmentDataFormat_RGBA8:
		return gl.RGBA8
	case FramebufferAttachmentDataFormat_Depth24Stencil8:
		return gl.DEPTH24_STENCIL8
	default:
		logging.ErrLog.Fatalf("unknown framebuffer attachment data format. Format=%d\n", f)
		return 0
	}
}

func (f FramebufferAttachmentDataFormat) GlFormat() uint32 {

	switch f {
	case FramebufferAttachmentDataFormat_RGB8:
		return gl.RGB
	case FramebufferAttachmentDataFormat_RGBA8:
		return gl.RGBA
	case FramebufferAttachmentDataFormat_Depth24Stencil8:
		return gl.DEPTH_STENCIL
	default:
		logging.ErrLog.Fatalf("unknown framebuffer attachment data format. Format=%d\n", f)
		return 0
	}
}

// GlDataType is the pixel data type used when allocating a texture of this format
func (f FramebufferAttachmentDataFormat) GlDataType() uint32 {

	if f.IsDepthFormat() {
		return gl.UNSIGNED_INT_24_8
	}

	return gl.UNSIGNED_BYTE
}

type FramebufferAttachment struct {
	Id     uint32
	Type   FramebufferAttachmentType
	Format FramebufferAttachmentDataFormat
}

func (a *FramebufferAttachment) delete() {

	if a.Id == 0 {
		return
	}

	if a.Type == FramebufferAttachmentType_Texture {
		gl.DeleteTextures(1, &a.Id)
	} else {
		gl.DeleteRenderbuffers(1, &a.Id)
	}

	a.Id = 0
}

// Framebuffer is an offscreen render target. All attachments share the framebuffer size.
type Framebuffer struct {
	Id                    uint32
	Attachments           []FramebufferAttachment
	ColorAttachmentsCount uint32
	Width                 uint32
	Height                uint32
}

func (fbo *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
}

func (fbo *Framebuffer) BindWithViewport() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
	gl.Viewport(0, 0, int32(fbo.Width), int32(fbo.Height))
}

func (fbo *Framebuffer) UnBind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (fbo *Framebuffer) UnBindWithViewport(width, height uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// IsComplete returns true if OpenGL reports that the fbo is complete/usable.
// Note that this function binds and then unbinds the fbo
func (fbo *Framebuffer) IsComplete() bool {
	fbo.Bind()
	isComplete := gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
	fbo.UnBind()
	return isComplete
}

func (fbo *Framebuffer) HasColorAttachment() bool {
	return fbo.ColorAttachmentsCount > 0
}

func (fbo *Framebuffer) HasDepthAttachment() bool {

	for i := 0; i < len(fbo.Attachments); i++ {
		if fbo.Attachments[i].Format.IsDepthFormat() {
			return true
		}
	}

	return false
}

// ColorTexId returns the texture id of the first texture color attachment, or zero if there is none
func (fbo *Framebuffer) ColorTexId() uint32 {

	for i := 0; i < len(fbo.Attachments); i++ {

		a := &fbo.Attachments[i]
		if a.Type == FramebufferAttachmentType_Texture && a.Format.IsColorFormat() {
			return a.Id
		}
	}

	return 0
}

func (fbo *Framebuffer) NewColorAttachment(attachType FramebufferAttachmentType, attachFormat FramebufferAttachmentDataFormat) {

	if fbo.ColorAttachmentsCount == 8 {
		logging.ErrLog.Fatalf("failed creating color attachment for framebuffer due it already having %d attached\n", fbo.ColorAttachmentsCount)
	}

	if !attachType.IsValid() {
		logging.ErrLog.Fatalf("failed creating color attachment for framebuffer due to unknown attachment type. Type=%d\n", attachType)
	}

	if !attachFormat.IsColorFormat() {
		logging.ErrLog.Fatalf("failed creating color attachment for framebuffer due to attachment data format not being a valid color type. Data format=%d\n", attachFormat)
	}

	a := fbo.newAttachment(attachType, attachFormat, gl.COLOR_ATTACHMENT0+fbo.ColorAttachmentsCount)
	fbo.ColorAttachmentsCount++
	fbo.Attachments = append(fbo.Attachments, a)
}

func (fbo *Framebuffer) NewDepthStencilAttachment(attachType FramebufferAttachmentType, attachFormat FramebufferAttachmentDataFormat) {

	if fbo.HasDepthAttachment() {
		logging.ErrLog.Fatalf("failed creating depth-stencil attachment for framebuffer because a depth-stencil attachment already exists\n")
	}

	if !attachType.IsValid() {
		logging.ErrLog.Fatalf("failed creating depth-stencil attachment for framebuffer due to unknown attachment type. Type=%d\n", attachType)
	}

	if !attachFormat.IsDepthFormat() {
		logging.ErrLog.Fatalf("failed creating depth-stencil attachment for framebuffer due to attachment data format not being a valid depth-stencil type. Data format=%d\n", attachFormat)
	}

	a := fbo.newAttachment(attachType, attachFormat, gl.DEPTH_STENCIL_ATTACHMENT)
	fbo.Attachments = append(fbo.Attachments, a)
}

func (fbo *Framebuffer) newAttachment(attachType FramebufferAttachmentType, attachFormat FramebufferAttachmentDataFormat, attachPoint uint32) FramebufferAttachment {

	a := FramebufferAttachment{
		Type:   attachType,
		Format: attachFormat,
	}

	fbo.Bind()

	if attachType == FramebufferAttachmentType_Texture {

		gl.GenTextures(1, &a.Id)
		if a.Id == 0 {
			logging.ErrLog.Fatalf("failed to generate texture for framebuffer. GlError=%d\n", gl.GetError())
		}

		gl.BindTexture(gl.TEXTURE_2D, a.Id)
		gl.TexImage2D(gl.TEXTURE_2D, 0, attachFormat.GlInternalFormat(), int32(fbo.Width), int32(fbo.Height), 0, attachFormat.GlFormat(), attachFormat.GlDataType(), nil)

		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachPoint, gl.TEXTURE_2D, a.Id, 0)

	} else {

		gl.GenRenderbuffers(1, &a.Id)
		if a.Id == 0 {
			logging.ErrLog.Fatalf("failed to generate render buffer for framebuffer. GlError=%d\n", gl.GetError())
		}

		gl.BindRenderbuffer(gl.RENDERBUFFER, a.Id)
		gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(attachFormat.GlInternalFormat()), int32(fbo.Width), int32(fbo.Height))
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachPoint, gl.RENDERBUFFER, a.Id)
	}

	fbo.UnBind()
	return a
}

// Delete frees the fbo and all its attachments
func (fbo *Framebuffer) Delete() {

	for i := 0; i < len(fbo.Attachments); i++ {
		fbo.Attachments[i].delete()
	}
	fbo.Attachments = nil
	fbo.ColorAttachmentsCount = 0

	if fbo.Id == 0 {
		return
	}

	gl.DeleteFramebuffers(1, &fbo.Id)
	fbo.Id = 0
}

func NewFramebuffer(width, height uint32) Framebuffer {

	fbo := Framebuffer{
		Width:  width,
		Height: height,
	}

	gl.GenFramebuffers(1, &fbo.Id)
	if fbo.Id == 0 {
		logging.ErrLog.Fatalf("failed to generate framebuffer. GlError=%d\n", gl.GetError())
	}

	return fbo
}

// NewColorDepthFramebuffer creates an fbo with an RGBA8 texture color attachment and a
// depth24-stencil8 renderbuffer, which is what render-to-texture needs
func NewColorDepthFramebuffer(width, height uint32) (Framebuffer, bool) {

	fbo := NewFramebuffer(width, height)
	fbo.NewColorAttachment(FramebufferAttachmentType_Texture, FramebufferAttachmentDataFormat_RGBA8)
	fbo.NewDepthStencilAttachment(FramebufferAttachmentType_Renderbuffer, FramebufferAttachmentDataFormat_Depth24Stencil8)

	return fbo, fbo.IsComplete()
}
