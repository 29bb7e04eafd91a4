package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/buffers"
	"github.com/bloeys/glpractice/materials"
	"github.com/bloeys/glpractice/meshes"
)

type Render interface {
	DrawMesh(mesh *meshes.Mesh, trMat *gglm.TrMat, mat *materials.Material)
	DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, count int32)
	DrawVertexArrayIndexed(mat *materials.Material, vao *buffers.VertexArray, count int32)
	FrameEnd()
}
