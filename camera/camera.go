package camera

import (
	"math"

	"github.com/bloeys/gglm/gglm"
)

type MoveDir int32

const (
	MoveDir_Forward MoveDir = iota
	MoveDir_Backward
	MoveDir_Left
	MoveDir_Right
	MoveDir_Up
	MoveDir_Down
)

const (
	DefaultYaw              float32 = -90
	DefaultPitch            float32 = 0
	DefaultMoveSpeed        float32 = 2.5
	DefaultMouseSensitivity float32 = 0.1
	DefaultZoom             float32 = 45

	MinZoom  float32 = 1
	MaxZoom  float32 = 45
	MaxPitch float32 = 89
)

// Camera is a perspective camera oriented by euler angles (in degrees).
// Yaw=-90 with Pitch=0 looks down the negative z axis.
//
// Fields can be changed directly, but Update must be called afterwards
// to refresh the basis vectors and matrices.
type Camera struct {
	Pos     gglm.Vec3
	Forward gglm.Vec3
	Up      gglm.Vec3
	Right   gglm.Vec3
	WorldUp gglm.Vec3

	Yaw   float32
	Pitch float32

	MoveSpeed        float32
	MouseSensitivity float32

	// Zoom is the vertical field of view in degrees
	Zoom        float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32

	ViewMat gglm.Mat4
	ProjMat gglm.Mat4
}

// Update recalculates Forward/Right/Up from Yaw and Pitch, then rebuilds ViewMat and ProjMat
func (c *Camera) Update() {
	c.updateVectors()
	c.updateMatrices()
}

// SetViewportSize sets the aspect ratio from a viewport size and updates the camera.
// Empty viewports (e.g. a minimized window) are ignored and false is returned.
func (c *Camera) SetViewportSize(width, height int32) bool {

	if width <= 0 || height <= 0 {
		return false
	}

	c.AspectRatio = float32(width) / float32(height)
	c.Update()
	return true
}

func (c *Camera) updateVectors() {

	yawRad := float64(c.Yaw * gglm.Deg2Rad)
	pitchRad := float64(c.Pitch * gglm.Deg2Rad)

	forward := gglm.NewVec3(
		float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	)
	c.Forward = *forward.Normalize()

	right := gglm.Cross(&c.Forward, &c.WorldUp)
	c.Right = *right.Normalize()

	up := gglm.Cross(&c.Right, &c.Forward)
	c.Up = *up.Normalize()
}

func (c *Camera) updateMatrices() {

	viewMat := gglm.LookAtRH(&c.Pos, c.Pos.Clone().Add(&c.Forward), &c.Up)
	c.ViewMat = viewMat.Mat4

	projMat := gglm.Perspective(c.Zoom*gglm.Deg2Rad, c.AspectRatio, c.NearClip, c.FarClip)
	c.ProjMat = *projMat.Clone()
}

// ProjViewMat returns ProjMat*ViewMat
func (c *Camera) ProjViewMat() gglm.Mat4 {
	return *c.ProjMat.Clone().Mul(&c.ViewMat)
}

func (c *Camera) ProcessKeyboard(dir MoveDir, dt float32) {

	velocity := c.MoveSpeed * dt

	switch dir {
	case MoveDir_Forward:
		c.Pos.Add(c.Forward.Clone().Scale(velocity))
	case MoveDir_Backward:
		c.Pos.Add(c.Forward.Clone().Scale(-velocity))
	case MoveDir_Left:
		c.Pos.Add(c.Right.Clone().Scale(-velocity))
	case MoveDir_Right:
		c.Pos.Add(c.Right.Clone().Scale(velocity))
	case MoveDir_Up:
		c.Pos.Add(c.WorldUp.Clone().Scale(velocity))
	case MoveDir_Down:
		c.Pos.Add(c.WorldUp.Clone().Scale(-velocity))
	default:
		return
	}

	c.updateMatrices()
}

// ProcessMouseMovement rotates the camera. Positive yOffset looks up.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {

	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	// Past +-90 the view flips, since forward becomes parallel to world up
	if constrainPitch {
		c.Pitch = gglm.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	}

	c.Update()
}

func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = gglm.Clamp(c.Zoom-yOffset, MinZoom, MaxZoom)
	c.updateMatrices()
}

// NewPerspective creates a camera at pos with the default orientation, speed and zoom
func NewPerspective(pos, worldUp *gglm.Vec3, aspectRatio float32) Camera {

	c := Camera{
		Pos:              *pos,
		WorldUp:          *worldUp,
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MoveSpeed:        DefaultMoveSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
		Zoom:             DefaultZoom,
		AspectRatio:      aspectRatio,
		NearClip:         0.1,
		FarClip:          100,
	}

	c.Update()
	return c
}
