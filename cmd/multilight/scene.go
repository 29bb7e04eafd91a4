package main

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/lights"
)

const (
	cubeRotationStepDeg float32 = 20
	lampScale           float32 = 0.2
	shininess           float32 = 64
)

var (
	cubePositions = [...]gglm.Vec3{
		gglm.NewVec3(0, 0, 0),
		gglm.NewVec3(2, 5, -15),
		gglm.NewVec3(-1.5, -2.2, -2.5),
		gglm.NewVec3(-3.8, -2, -12.3),
		gglm.NewVec3(2.4, -0.4, -3.5),
		gglm.NewVec3(-1.7, 3, -7.5),
		gglm.NewVec3(1.3, -2, -2.5),
		gglm.NewVec3(1.5, 2, -2.5),
		gglm.NewVec3(1.5, 0.2, -1.5),
		gglm.NewVec3(-1.3, 1, -1.5),
	}

	dirLight = lights.DirLight{
		Dir:      gglm.NewVec3(-0.2, -1, -0.3),
		Ambient:  gglm.NewVec3(0, 0, 0),
		Diffuse:  gglm.NewVec3(0.05, 0.05, 0.05),
		Specular: gglm.NewVec3(0.2, 0.2, 0.2),
	}

	pointLights = [...]lights.PointLight{
		newPointLight(gglm.NewVec3(0.7, 0.2, 2), gglm.NewVec3(0.1, 0.1, 0.1)),
		newPointLight(gglm.NewVec3(2.3, -3.3, -4), gglm.NewVec3(0.1, 0.1, 0.1)),
		newPointLight(gglm.NewVec3(-4, 2, -12), gglm.NewVec3(0.1, 0.1, 0.1)),
		newPointLight(gglm.NewVec3(0, 0, -3), gglm.NewVec3(0.3, 0.1, 0.1)),
	}
)

// newPointLight returns a light with ambient at 30% of its color, and diffuse and specular at full color
func newPointLight(pos, color gglm.Vec3) lights.PointLight {
	return lights.PointLight{
		Pos:      pos,
		Ambient:  *color.Clone().Scale(0.3),
		Diffuse:  color,
		Specular: color,
		Attenuation: lights.Attenuation{
			Constant:  1,
			Linear:    0.14,
			Quadratic: 0.07,
		},
	}
}

// cubeModelMat places cube i at its position, turned 20*i degrees around the y axis
func cubeModelMat(i int) gglm.TrMat {

	m := gglm.NewTrMatId()
	m.TranslateVec(&cubePositions[i])
	m.Rotate(cubeRotationStepDeg*float32(i)*gglm.Deg2Rad, 0, 1, 0)

	return m
}

// lampModelMat places a small cube at the point light position
func lampModelMat(pl *lights.PointLight) gglm.TrMat {

	m := gglm.NewTrMatId()
	m.TranslateVec(&pl.Pos).Scale(lampScale, lampScale, lampScale)

	return m
}
