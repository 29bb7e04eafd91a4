package imguigl

import (
	"testing"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// toClip multiplies the column-major matrix with (x, y, 0, 1)
func toClip(m [4][4]float32, x, y float32) (float32, float32) {
	return m[0][0]*x + m[1][0]*y + m[3][0], m[0][1]*x + m[1][1]*y + m[3][1]
}

func TestOrthoProjectionCorners(t *testing.T) {

	proj := OrthoProjection(800, 600)

	x, y := toClip(proj.Data, 0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)

	x, y = toClip(proj.Data, 800, 600)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)

	x, y = toClip(proj.Data, 400, 300)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestClipRectToScissorFlipsY(t *testing.T) {

	x, y, w, h := ClipRectToScissor(imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70}, 600)

	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(530), y)
	assert.Equal(t, int32(100), w)
	assert.Equal(t, int32(50), h)
}

func TestGlIndexType(t *testing.T) {

	indexType, err := glIndexType(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.UNSIGNED_SHORT), indexType)

	indexType, err = glIndexType(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.UNSIGNED_INT), indexType)

	_, err = glIndexType(1)
	assert.Error(t, err)
}

func TestCheckVertexLayout(t *testing.T) {
	assert.NoError(t, checkVertexLayout(20, 0, 8, 16))
	assert.Error(t, checkVertexLayout(24, 0, 8, 16))
	assert.Error(t, checkVertexLayout(20, 0, 12, 16))
}

func TestFrameDelta(t *testing.T) {
	assert.Equal(t, defaultDeltaTime, frameDelta(0))
	assert.Equal(t, defaultDeltaTime, frameDelta(-1))
	assert.Equal(t, float32(0.5), frameDelta(0.5))
}

func TestSdlScancodeToImGuiKey(t *testing.T) {
	assert.Equal(t, imgui.KeyA, SdlScancodeToImGuiKey(sdl.SCANCODE_A))
	assert.Equal(t, imgui.KeyEnter, SdlScancodeToImGuiKey(sdl.SCANCODE_RETURN))
	assert.Equal(t, imgui.KeyLeftArrow, SdlScancodeToImGuiKey(sdl.SCANCODE_LEFT))
	assert.Equal(t, imgui.KeyNone, SdlScancodeToImGuiKey(sdl.SCANCODE_F5))
}
