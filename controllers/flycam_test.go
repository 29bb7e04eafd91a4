package controllers

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/camera"
	"github.com/bloeys/glpractice/input"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func newFlyCam() (*FlyCam, *camera.Camera) {

	pos := gglm.NewVec3(0, 0, 3)
	worldUp := gglm.NewVec3(0, 1, 0)
	cam := camera.NewPerspective(&pos, &worldUp, 1)

	return &FlyCam{Cam: &cam}, &cam
}

func TestFlyCamNoInputNoUpdate(t *testing.T) {

	input.ClearState()
	input.EventLoopStart()

	fc, cam := newFlyCam()
	assert.False(t, fc.Update(1))
	assert.Equal(t, float32(3), cam.Pos.Z())
}

func TestFlyCamMovesOnHeldKeys(t *testing.T) {

	input.ClearState()
	input.EventLoopStart()
	input.HandleKeyboardEvent(&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_w}})
	input.HandleKeyboardEvent(&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}})

	fc, cam := newFlyCam()
	assert.True(t, fc.Update(1))

	assert.InDelta(t, 3-camera.DefaultMoveSpeed, cam.Pos.Z(), 1e-5)
	assert.InDelta(t, camera.DefaultMoveSpeed, cam.Pos.Y(), 1e-5)
}

func TestFlyCamMouseLookInvertsY(t *testing.T) {

	input.ClearState()
	input.EventLoopStart()

	// Moving the mouse up (negative y) should pitch up
	input.HandleMouseMotionEvent(&sdl.MouseMotionEvent{XRel: 0, YRel: -100})

	fc, cam := newFlyCam()
	assert.True(t, fc.Update(0.016))
	assert.InDelta(t, 10, cam.Pitch, 1e-4)
	assert.Greater(t, cam.Forward.Y(), float32(0))
}

func TestFlyCamClampsMouseAndZooms(t *testing.T) {

	input.ClearState()
	input.EventLoopStart()
	input.HandleMouseMotionEvent(&sdl.MouseMotionEvent{XRel: 5000})
	input.HandleMouseWheelEvent(&sdl.MouseWheelEvent{Y: 5})

	fc, cam := newFlyCam()
	fc.MaxMouseMove = 300
	fc.Update(0.016)

	assert.InDelta(t, camera.DefaultYaw+30, cam.Yaw, 1e-4)
	assert.Equal(t, float32(40), cam.Zoom)
}

func TestFlyCamDisableMouseLook(t *testing.T) {

	input.ClearState()
	input.EventLoopStart()
	input.HandleMouseMotionEvent(&sdl.MouseMotionEvent{XRel: 50, YRel: -100})

	fc, cam := newFlyCam()
	fc.DisableMouseLook = true

	assert.False(t, fc.Update(0.016))
	assert.Equal(t, camera.DefaultPitch, cam.Pitch)
	assert.Equal(t, camera.DefaultYaw, cam.Yaw)

	fc.DisableMouseLook = false
	assert.True(t, fc.Update(0.016))
	assert.NotEqual(t, camera.DefaultPitch, cam.Pitch)
}
