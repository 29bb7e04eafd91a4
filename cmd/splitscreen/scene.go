package main

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/lights"
)

const (
	propRotationStepDeg float32 = 20
	chairScale          float32 = 0.5
	shininess           float32 = 64
)

// model describes an imported model and the textures drawn on it.
// Texture paths are relative to the model directory.
type model struct {
	Name        string
	Dir         string
	File        string
	DiffuseTex  string
	SpecularTex string
}

var (
	treeModel   = model{Name: "tree", Dir: "tree", File: "Tree.obj", DiffuseTex: "diffuse.png", SpecularTex: "specular.png"}
	groundModel = model{Name: "ground", Dir: "ground", File: "ground.obj", DiffuseTex: "diffuse.png", SpecularTex: "specular.png"}
	chairModel  = model{Name: "chair", Dir: "chair", File: "chair.obj", DiffuseTex: "diffuse.png", SpecularTex: "specular.png"}

	treePositions = [...]gglm.Vec3{
		gglm.NewVec3(3, 0, 3),
		gglm.NewVec3(-4, 0, -3),
		gglm.NewVec3(4, 0, -4),
	}

	chairPositions = [...]gglm.Vec3{
		gglm.NewVec3(3.5, 0, 0),
		gglm.NewVec3(-3.5, 0, 0),
		gglm.NewVec3(0, 0, -3.5),
	}

	sideCamPos = [3]float32{0, 2, 15}

	dirLight = lights.DirLight{
		Dir:      gglm.NewVec3(-0.2, -1, -0.3),
		Ambient:  gglm.NewVec3(0, 0, 0),
		Diffuse:  gglm.NewVec3(0.5, 0.5, 0.5),
		Specular: gglm.NewVec3(0.05, 0.05, 0.05),
	}
)

// propModelMat places prop i at pos, turned 20*i degrees around the y axis and uniformly scaled
func propModelMat(pos *gglm.Vec3, i int, scale float32) gglm.TrMat {

	m := gglm.NewTrMatId()
	m.TranslateVec(pos)
	m.Rotate(propRotationStepDeg*float32(i)*gglm.Deg2Rad, 0, 1, 0)
	m.Scale(scale, scale, scale)

	return m
}

// splitViewport returns the size of each half of the window and the aspect ratio the
// cameras of each half should use
func splitViewport(winWidth, winHeight int32) (fboWidth, fboHeight uint32, aspectRatio float32) {

	fboWidth = uint32(winWidth / 2)
	fboHeight = uint32(winHeight)

	if fboWidth == 0 {
		fboWidth = 1
	}

	if fboHeight == 0 {
		fboHeight = 1
	}

	return fboWidth, fboHeight, float32(fboWidth) / float32(fboHeight)
}
