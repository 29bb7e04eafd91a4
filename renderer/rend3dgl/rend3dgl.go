package rend3dgl

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/buffers"
	"github.com/bloeys/glpractice/materials"
	"github.com/bloeys/glpractice/meshes"
	"github.com/bloeys/glpractice/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

// boundMat identifies what a material bind changed in GL state.
// Two draws with the same material but different textures need a rebind.
type boundMat struct {
	Id          uint32
	DiffuseTex  uint32
	SpecularTex uint32
}

// Rend3DGL skips redundant vao and material binds within a frame.
// Anything that binds GL state outside of the renderer must call FrameEnd (or ResetBindings) after.
type Rend3DGL struct {
	BoundVaoId uint32
	BoundMat   boundMat
}

func (r *Rend3DGL) bindVao(vao *buffers.VertexArray) {

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}
}

func (r *Rend3DGL) bindMat(mat *materials.Material) {

	bm := boundMat{Id: mat.Id, DiffuseTex: mat.DiffuseTex, SpecularTex: mat.SpecularTex}
	if bm != r.BoundMat {
		mat.Bind()
		r.BoundMat = bm
	}
}

func (r *Rend3DGL) DrawMesh(mesh *meshes.Mesh, modelMat *gglm.TrMat, mat *materials.Material) {

	r.bindVao(&mesh.Vao)
	r.bindMat(mat)

	if mat.Settings.Has(materials.MaterialSettings_HasModelMtx) {
		mat.SetUnifMat4("modelMat", &modelMat.Mat4)
	}

	for i := 0; i < len(mesh.SubMeshes); i++ {
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, mesh.SubMeshes[i].IndexCount, gl.UNSIGNED_INT, uintptr(mesh.SubMeshes[i].BaseIndex*4), mesh.SubMeshes[i].BaseVertex)
	}
}

func (r *Rend3DGL) DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, elementCount int32) {

	r.bindVao(vao)
	r.bindMat(mat)

	gl.DrawArrays(gl.TRIANGLES, firstElement, elementCount)
}

func (r *Rend3DGL) DrawVertexArrayIndexed(mat *materials.Material, vao *buffers.VertexArray, indexCount int32) {

	r.bindVao(vao)
	r.bindMat(mat)

	gl.DrawElementsWithOffset(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, 0)
}

func (r *Rend3DGL) ResetBindings() {
	r.BoundVaoId = 0
	r.BoundMat = boundMat{}
}

func (r *Rend3DGL) FrameEnd() {
	r.ResetBindings()
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
