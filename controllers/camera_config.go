package controllers

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/camera"
	"github.com/bloeys/glpractice/config"
)

// NewCameraFromConfig creates a y-up perspective camera using the position, speed,
// sensitivity and zoom from cfg
func NewCameraFromConfig(cfg *config.Camera, aspectRatio float32) camera.Camera {

	pos := gglm.NewVec3(cfg.Pos[0], cfg.Pos[1], cfg.Pos[2])
	worldUp := gglm.NewVec3(0, 1, 0)

	cam := camera.NewPerspective(&pos, &worldUp, aspectRatio)
	cam.MoveSpeed = cfg.MoveSpeed
	cam.MouseSensitivity = cfg.MouseSensitivity
	cam.Zoom = cfg.Zoom
	cam.Update()

	return cam
}
