package camera

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func newTestCam() Camera {
	pos := gglm.NewVec3(0, 0, 3)
	worldUp := gglm.NewVec3(0, 1, 0)
	return NewPerspective(&pos, &worldUp, 800.0/600.0)
}

func assertVec3(t *testing.T, expected [3]float32, v gglm.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], v.Data[i], tol, "component %d of %v", i, v.Data)
	}
}

// mulPoint multiplies a column-major matrix with the point (x, y, z, 1)
func mulPoint(m *gglm.Mat4, p [3]float32) [4]float32 {

	v := [4]float32{p[0], p[1], p[2], 1}

	var out [4]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row] += m.Data[col][row] * v[col]
		}
	}

	return out
}

func TestNewPerspectiveDefaults(t *testing.T) {

	c := newTestCam()

	assert.Equal(t, DefaultYaw, c.Yaw)
	assert.Equal(t, DefaultPitch, c.Pitch)
	assert.Equal(t, DefaultZoom, c.Zoom)

	assertVec3(t, [3]float32{0, 0, -1}, c.Forward)
	assertVec3(t, [3]float32{1, 0, 0}, c.Right)
	assertVec3(t, [3]float32{0, 1, 0}, c.Up)
}

func TestViewMatMovesCameraToOrigin(t *testing.T) {

	c := newTestCam()
	c.ProcessMouseMovement(123, 45, true)
	c.ProcessKeyboard(MoveDir_Forward, 0.5)

	origin := mulPoint(&c.ViewMat, c.Pos.Data)
	assert.InDelta(t, 0, origin[0], tol)
	assert.InDelta(t, 0, origin[1], tol)
	assert.InDelta(t, 0, origin[2], tol)

	// In a right handed view space the camera looks down -z
	ahead := c.Pos.Clone().Add(&c.Forward)
	viewAhead := mulPoint(&c.ViewMat, ahead.Data)
	assert.InDelta(t, 0, viewAhead[0], tol)
	assert.InDelta(t, 0, viewAhead[1], tol)
	assert.InDelta(t, -1, viewAhead[2], tol)
}

func TestProcessKeyboard(t *testing.T) {

	tests := []struct {
		dir      MoveDir
		expected [3]float32
	}{
		{MoveDir_Forward, [3]float32{0, 0, 3 - 2.5}},
		{MoveDir_Backward, [3]float32{0, 0, 3 + 2.5}},
		{MoveDir_Left, [3]float32{-2.5, 0, 3}},
		{MoveDir_Right, [3]float32{2.5, 0, 3}},
		{MoveDir_Up, [3]float32{0, 2.5, 3}},
		{MoveDir_Down, [3]float32{0, -2.5, 3}},
	}

	for _, tt := range tests {
		c := newTestCam()
		c.ProcessKeyboard(tt.dir, 1)
		assertVec3(t, tt.expected, c.Pos)
	}
}

func TestProcessKeyboardScalesWithDT(t *testing.T) {

	c := newTestCam()
	c.MoveSpeed = 4
	c.ProcessKeyboard(MoveDir_Forward, 0.25)
	assertVec3(t, [3]float32{0, 0, 2}, c.Pos)
}

func TestProcessMouseMovement(t *testing.T) {

	c := newTestCam()

	// 900 * 0.1 = 90 degrees of yaw, turning from -z to +x
	c.ProcessMouseMovement(900, 0, true)
	assert.InDelta(t, 0, c.Yaw, tol)
	assertVec3(t, [3]float32{1, 0, 0}, c.Forward)
	assertVec3(t, [3]float32{0, 0, 1}, c.Right)
}

func TestPitchConstraint(t *testing.T) {

	c := newTestCam()
	c.ProcessMouseMovement(0, 5000, true)
	assert.Equal(t, MaxPitch, c.Pitch)

	c.ProcessMouseMovement(0, -10000, true)
	assert.Equal(t, -MaxPitch, c.Pitch)

	c = newTestCam()
	c.ProcessMouseMovement(0, 1000, false)
	assert.InDelta(t, 100, c.Pitch, tol)
}

func TestProcessMouseScroll(t *testing.T) {

	c := newTestCam()

	c.ProcessMouseScroll(10)
	assert.Equal(t, float32(35), c.Zoom)

	c.ProcessMouseScroll(100)
	assert.Equal(t, MinZoom, c.Zoom)

	c.ProcessMouseScroll(-100)
	assert.Equal(t, MaxZoom, c.Zoom)
}

func TestSetViewportSize(t *testing.T) {

	cam := newTestCam()

	assert.True(t, cam.SetViewportSize(1200, 600))
	assert.InDelta(t, 2, cam.AspectRatio, tol)
	projBefore := cam.ProjMat

	assert.False(t, cam.SetViewportSize(1200, 0))
	assert.False(t, cam.SetViewportSize(0, 600))
	assert.InDelta(t, 2, cam.AspectRatio, tol)
	assert.Equal(t, projBefore, cam.ProjMat)

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.False(t, math.IsNaN(float64(cam.ProjMat.Data[col][row])))
			assert.False(t, math.IsInf(float64(cam.ProjMat.Data[col][row]), 0))
		}
	}
}
