// Package imguigl feeds SDL input to Dear ImGui and draws its output with the engine's
// buffers and materials on top of whatever is in the bound framebuffer.
package imguigl

import (
	"fmt"
	"math"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/buffers"
	"github.com/bloeys/glpractice/logging"
	"github.com/bloeys/glpractice/materials"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// defaultDeltaTime is sent to imgui when no frame was timed yet, since it rejects zero
const defaultDeltaTime float32 = 1.0 / 60

// vertexLayout matches ImDrawVert: position, uv and a packed RGBA8 color
var vertexLayout = []buffers.Element{
	{ElementType: buffers.DataTypeVec2},
	{ElementType: buffers.DataTypeVec2},
	{ElementType: buffers.DataTypeRGBA8Norm},
}

type ImguiInfo struct {
	Mat       materials.Material
	Vao       buffers.VertexArray
	Vbo       buffers.VertexBuffer
	Ibo       buffers.IndexBuffer
	FontTexId uint32

	indexSize int
	indexType uint32

	// Left, right, middle
	mouseBtnDown [3]bool
}

func (i *ImguiInfo) FrameStart(winWidth, winHeight, dt float32) {

	imIo := imgui.CurrentIO()
	imIo.SetDisplaySize(imgui.Vec2{X: winWidth, Y: winHeight})
	imIo.SetDeltaTime(frameDelta(dt))

	imgui.NewFrame()
}

// WantCapture reports whether imgui is using the mouse or keyboard, in which case
// the game should ignore them
func (i *ImguiInfo) WantCapture() (mouse, keyboard bool) {
	imIo := imgui.CurrentIO()
	return imIo.WantCaptureMouse(), imIo.WantCaptureKeyboard()
}

func (i *ImguiInfo) HandleEvent(event sdl.Event) {

	imIo := imgui.CurrentIO()

	switch e := event.(type) {

	case *sdl.MouseWheelEvent:
		imIo.AddMouseWheelDelta(float32(e.X), float32(e.Y))

	case *sdl.KeyboardEvent:

		isDown := e.Type == sdl.KEYDOWN
		imIo.AddKeyEvent(SdlScancodeToImGuiKey(e.Keysym.Scancode), isDown)

		switch e.Keysym.Sym {
		case sdl.K_LCTRL, sdl.K_RCTRL:
			imIo.SetKeyCtrl(isDown)
		case sdl.K_LSHIFT, sdl.K_RSHIFT:
			imIo.SetKeyShift(isDown)
		case sdl.K_LALT, sdl.K_RALT:
			imIo.SetKeyAlt(isDown)
		case sdl.K_LGUI, sdl.K_RGUI:
			imIo.SetKeySuper(isDown)
		}

	case *sdl.TextInputEvent:
		imIo.AddInputCharactersUTF8(e.GetText())

	case *sdl.MouseButtonEvent:

		isPressed := e.State == sdl.PRESSED
		switch e.Button {
		case sdl.BUTTON_LEFT:
			i.mouseBtnDown[0] = isPressed
		case sdl.BUTTON_RIGHT:
			i.mouseBtnDown[1] = isPressed
		case sdl.BUTTON_MIDDLE:
			i.mouseBtnDown[2] = isPressed
		}
	}
}

// UpdateMouse sends the cursor position and button state. Call after all events of the frame are handled.
func (i *ImguiInfo) UpdateMouse() {

	imIo := imgui.CurrentIO()

	// A captured cursor is hidden and only reports relative motion, so it can't point at widgets
	if sdl.GetRelativeMouseMode() {
		imIo.SetMousePos(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	} else {
		x, y, _ := sdl.GetMouseState()
		imIo.SetMousePos(imgui.Vec2{X: float32(x), Y: float32(y)})
	}

	imIo.SetMouseButtonDown(imgui.MouseButtonLeft, i.mouseBtnDown[0])
	imIo.SetMouseButtonDown(imgui.MouseButtonRight, i.mouseBtnDown[1])
	imIo.SetMouseButtonDown(imgui.MouseButtonMiddle, i.mouseBtnDown[2])
}

// Render ends the imgui frame and draws it. Window size is in screen coordinates
// while the framebuffer size is in pixels.
func (i *ImguiInfo) Render(winWidth, winHeight float32, fbWidth, fbHeight int32) {

	imgui.Render()

	if winWidth <= 0 || winHeight <= 0 || fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	drawData := imgui.CurrentDrawData()
	drawData.ScaleClipRects(imgui.Vec2{X: float32(fbWidth) / winWidth, Y: float32(fbHeight) / winHeight})

	state := saveGlState()
	defer state.restore()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, fbWidth, fbHeight)

	projMat := OrthoProjection(winWidth, winHeight)
	i.Mat.SetUnifMat4("projMat", &projMat)
	i.Mat.Bind()
	i.Vao.Bind()
	gl.ActiveTexture(gl.TEXTURE0)

	for _, list := range drawData.CommandLists() {

		vertexBuffer, vertexBufferSize := list.GetVertexBuffer()
		i.Vbo.SetRawData(vertexBuffer, vertexBufferSize, buffers.BufUsage_Stream_Draw)

		indexBuffer, indexBufferSize := list.GetIndexBuffer()
		i.Ibo.SetRawData(indexBuffer, int32(indexBufferSize/i.indexSize), i.indexSize, buffers.BufUsage_Stream_Draw)

		for _, cmd := range list.Commands() {

			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}

			x, y, w, h := ClipRectToScissor(cmd.ClipRect(), fbHeight)
			if w <= 0 || h <= 0 {
				continue
			}

			gl.Scissor(x, y, w, h)
			gl.BindTexture(gl.TEXTURE_2D, uint32(uintptr(cmd.TextureId())))
			gl.DrawElementsBaseVertexWithOffset(
				gl.TRIANGLES,
				int32(cmd.ElemCount()),
				i.indexType,
				uintptr(int(cmd.IdxOffset())*i.indexSize),
				int32(cmd.VtxOffset()),
			)
		}
	}

	i.Vao.UnBind()
	i.Mat.UnBind()
}

func (i *ImguiInfo) uploadFontTexture() {

	fonts := imgui.CurrentIO().Fonts()
	pixels, width, height, _ := fonts.GetTextureDataAsRGBA32()

	gl.GenTextures(1, &i.FontTexId)
	if i.FontTexId == 0 {
		logging.ErrLog.Fatalf("failed to generate imgui font texture. GlError=%d\n", gl.GetError())
	}

	gl.BindTexture(gl.TEXTURE_2D, i.FontTexId)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	fonts.SetTexID(imgui.TextureID(uintptr(i.FontTexId)))
}

func (i *ImguiInfo) Delete() {

	if i.FontTexId != 0 {
		gl.DeleteTextures(1, &i.FontTexId)
		i.FontTexId = 0
	}

	i.Vao.Delete()
	i.Vbo.Delete()
	i.Ibo.Delete()
	i.Mat.Delete()

	imgui.DestroyContext()
}

type glState struct {
	viewport    [4]int32
	polygonMode [2]int32
	blend       bool
	cullFace    bool
	depthTest   bool
	scissorTest bool
}

func saveGlState() glState {

	s := glState{
		blend:       gl.IsEnabled(gl.BLEND),
		cullFace:    gl.IsEnabled(gl.CULL_FACE),
		depthTest:   gl.IsEnabled(gl.DEPTH_TEST),
		scissorTest: gl.IsEnabled(gl.SCISSOR_TEST),
	}

	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	gl.GetIntegerv(gl.POLYGON_MODE, &s.polygonMode[0])

	return s
}

func (s *glState) restore() {

	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.CULL_FACE, s.cullFace)
	setEnabled(gl.DEPTH_TEST, s.depthTest)
	setEnabled(gl.SCISSOR_TEST, s.scissorTest)

	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(s.polygonMode[0]))
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
}

func setEnabled(capability uint32, isEnabled bool) {

	if isEnabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// OrthoProjection maps imgui's screen space, where (0, 0) is the top left corner and y grows
// downwards, to clip space
func OrthoProjection(displayWidth, displayHeight float32) gglm.Mat4 {
	return gglm.Mat4{
		Data: [4][4]float32{
			{2 / displayWidth, 0, 0, 0},
			{0, -2 / displayHeight, 0, 0},
			{0, 0, -1, 0},
			{-1, 1, 0, 1},
		},
	}
}

// ClipRectToScissor converts an imgui clip rect (min x, min y, max x, max y from the top left)
// to a gl scissor box, which starts at the bottom left
func ClipRectToScissor(clipRect imgui.Vec4, fbHeight int32) (x, y, width, height int32) {
	return int32(clipRect.X), fbHeight - int32(clipRect.W), int32(clipRect.Z - clipRect.X), int32(clipRect.W - clipRect.Y)
}

func glIndexType(indexSize int) (uint32, error) {

	switch indexSize {
	case 2:
		return gl.UNSIGNED_SHORT, nil
	case 4:
		return gl.UNSIGNED_INT, nil
	}

	return 0, fmt.Errorf("unsupported imgui index size of %d bytes", indexSize)
}

func frameDelta(dt float32) float32 {

	if dt <= 0 {
		return defaultDeltaTime
	}

	return dt
}

// checkVertexLayout makes sure imgui's vertex struct is laid out like vertexLayout
func checkVertexLayout(vertexSize, posOffset, uvOffset, colOffset int) error {

	vb := buffers.VertexBuffer{}
	vb.SetLayout(vertexLayout...)
	layout := vb.GetLayout()

	if vertexSize != int(vb.Stride) || posOffset != layout[0].Offset || uvOffset != layout[1].Offset || colOffset != layout[2].Offset {
		return fmt.Errorf(
			"imgui vertex layout (size=%d, pos=%d, uv=%d, col=%d) doesn't match the expected layout (size=%d, pos=%d, uv=%d, col=%d)",
			vertexSize, posOffset, uvOffset, colOffset,
			vb.Stride, layout[0].Offset, layout[1].Offset, layout[2].Offset,
		)
	}

	return nil
}

// NewImGui creates the imgui context and the gl objects used to draw it. Requires a current GL context.
func NewImGui(shaderPath string) (ImguiInfo, error) {

	if err := checkVertexLayout(imgui.VertexBufferLayout()); err != nil {
		return ImguiInfo{}, err
	}

	indexSize := imgui.IndexBufferLayout()
	indexType, err := glIndexType(indexSize)
	if err != nil {
		return ImguiInfo{}, err
	}

	mat, err := materials.NewMaterial("imgui", shaderPath)
	if err != nil {
		return ImguiInfo{}, fmt.Errorf("failed to create imgui material: %w", err)
	}
	mat.SetUnifInt32("uiTex", 0)

	imgui.CreateContext()

	imIo := imgui.CurrentIO()
	imIo.SetBackendFlags(imIo.BackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)

	info := ImguiInfo{
		Mat:       mat,
		Vbo:       buffers.NewVertexBuffer(vertexLayout...),
		Ibo:       buffers.NewIndexBuffer(),
		Vao:       buffers.NewVertexArray(),
		indexSize: indexSize,
		indexType: indexType,
	}

	info.Vao.AddVertexBuffer(info.Vbo)
	info.Vao.SetIndexBuffer(info.Ibo)
	info.Vao.UnBind()

	info.uploadFontTexture()

	return info, nil
}
