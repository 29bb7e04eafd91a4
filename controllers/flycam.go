package controllers

import (
	"github.com/bloeys/glpractice/camera"
	"github.com/bloeys/glpractice/input"
	"github.com/veandco/go-sdl2/sdl"
)

// FlyCam drives a camera from the keyboard and mouse.
//
//   - W/S: forward and backward
//   - A/D: strafe left and right
//   - Space/X: up and down along the world up axis
//   - Mouse motion: look around
//   - Mouse wheel: zoom
type FlyCam struct {
	Cam *camera.Camera

	// MaxMouseMove limits per-frame mouse deltas so a stutter doesn't spin the camera.
	// Zero means no limit.
	MaxMouseMove int32

	// DisableMouseLook ignores mouse motion, e.g. while the cursor is released to use a debug window.
	// Keys and the wheel still work.
	DisableMouseLook bool
}

var flyCamKeys = [...]struct {
	Key sdl.Keycode
	Dir camera.MoveDir
}{
	{sdl.K_w, camera.MoveDir_Forward},
	{sdl.K_s, camera.MoveDir_Backward},
	{sdl.K_a, camera.MoveDir_Left},
	{sdl.K_d, camera.MoveDir_Right},
	{sdl.K_SPACE, camera.MoveDir_Up},
	{sdl.K_x, camera.MoveDir_Down},
}

// Update applies this frame's input and returns true if the camera changed
func (fc *FlyCam) Update(dt float32) bool {

	updated := false

	for i := 0; i < len(flyCamKeys); i++ {

		if !input.KeyDown(flyCamKeys[i].Key) {
			continue
		}

		fc.Cam.ProcessKeyboard(flyCamKeys[i].Dir, dt)
		updated = true
	}

	mouseX, mouseY := input.GetMouseMotion()
	if !fc.DisableMouseLook && (mouseX != 0 || mouseY != 0) {

		if fc.MaxMouseMove > 0 {
			mouseX = clampInt32(mouseX, -fc.MaxMouseMove, fc.MaxMouseMove)
			mouseY = clampInt32(mouseY, -fc.MaxMouseMove, fc.MaxMouseMove)
		}

		// Screen y grows downwards while pitch grows upwards
		fc.Cam.ProcessMouseMovement(float32(mouseX), float32(-mouseY), true)
		updated = true
	}

	_, wheelY := input.GetMouseWheelMotion()
	if wheelY != 0 {
		fc.Cam.ProcessMouseScroll(float32(wheelY))
		updated = true
	}

	return updated
}

func clampInt32(x, min, max int32) int32 {

	if x < min {
		return min
	}

	if x > max {
		return max
	}

	return x
}
