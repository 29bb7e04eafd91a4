package meshes

import (
	"fmt"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/assert"
	"github.com/bloeys/glpractice/buffers"
)

type SubMesh struct {
	// BaseVertex is added to every index of the submesh
	BaseVertex int32
	// BaseIndex is where the submesh starts in the index buffer
	BaseIndex  uint32
	IndexCount int32
}

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos
			- Loc1: Normal
			- Loc2: UV0
	*/
	Vao       buffers.VertexArray
	SubMeshes []SubMesh
}

var (
	// DefaultMeshLoadFlags are always applied when loading a mesh, on top of the flags passed to NewMesh
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate

	meshLayout = []buffers.Element{
		{ElementType: buffers.DataTypeVec3}, // Position
		{ElementType: buffers.DataTypeVec3}, // Normal
		{ElementType: buffers.DataTypeVec2}, // UV0
	}
)

// NewMesh imports all meshes in the model file into one vao, with one submesh per imported mesh
func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	scene, release, err := asig.ImportFile(modelPath, DefaultMeshLoadFlags|postProcessFlags)
	if err != nil {
		return Mesh{}, fmt.Errorf("failed to load model '%s': %w", modelPath, err)
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, fmt.Errorf("no meshes found in file '%s'", modelPath)
	}

	vertexBufData := make([]float32, 0, len(scene.Meshes[0].Vertices)*buffers.LayoutFloatCount(meshLayout))
	indexBufData := make([]uint32, 0, len(scene.Meshes[0].Faces)*3)

	subMeshes := make([]SubMesh, 0, len(scene.Meshes))
	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		normals := sceneMesh.Normals
		if len(normals) == 0 {
			normals = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		uvs := sceneMesh.TexCoords[0]
		if len(uvs) == 0 {
			uvs = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		vertices := interleave(
			arrToInterleave{V3s: sceneMesh.Vertices},
			arrToInterleave{V3s: normals},
			arrToInterleave{V2s: v3sToV2s(uvs)},
		)

		indices := flattenFaces(sceneMesh.Faces)
		subMeshes = append(subMeshes, SubMesh{
			BaseVertex: int32(len(vertexBufData) / buffers.LayoutFloatCount(meshLayout)),
			BaseIndex:  uint32(len(indexBufData)),
			IndexCount: int32(len(indices)),
		})

		vertexBufData = append(vertexBufData, vertices...)
		indexBufData = append(indexBufData, indices...)
	}

	return NewMeshFromData(name, vertexBufData, indexBufData, subMeshes), nil
}

// NewMeshFromData uploads already interleaved pos+normal+uv0 vertices
func NewMeshFromData(name string, vertices []float32, indices []uint32, subMeshes []SubMesh) Mesh {

	mesh := Mesh{
		Name:      name,
		Vao:       buffers.NewVertexArray(),
		SubMeshes: subMeshes,
	}

	vbo := buffers.NewVertexBuffer(meshLayout...)
	vbo.SetData(vertices, buffers.BufUsage_Static_Draw)

	ibo := buffers.NewIndexBuffer()
	ibo.SetData(indices)

	mesh.Vao.AddVertexBuffer(vbo)
	mesh.Vao.SetIndexBuffer(ibo)

	// So that the next mesh created doesn't attach its buffers to this vao
	mesh.Vao.UnBind()

	return mesh
}

func (m *Mesh) Delete() {

	for i := 0; i < len(m.Vao.Vbos); i++ {
		m.Vao.Vbos[i].Delete()
	}

	m.Vao.IndexBuffer.Delete()
	m.Vao.Delete()
}

func v3sToV2s(v3s []gglm.Vec3) []gglm.Vec2 {

	v2s := make([]gglm.Vec2, len(v3s))
	for i := 0; i < len(v3s); i++ {
		v2s[i] = gglm.Vec2{
			Data: [2]float32{v3s[i].X(), v3s[i].Y()},
		}
	}

	return v2s
}

type arrToInterleave struct {
	V2s []gglm.Vec2
	V3s []gglm.Vec3
}

func (a *arrToInterleave) len() int {

	if len(a.V2s) > 0 {
		return len(a.V2s)
	}

	return len(a.V3s)
}

func (a *arrToInterleave) get(i int) []float32 {

	assert.T(len(a.V2s) == 0 || len(a.V3s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")

	if len(a.V2s) > 0 {
		return a.V2s[i].Data[:]
	}

	return a.V3s[i].Data[:]
}

func interleave(arrs ...arrToInterleave) []float32 {

	assert.T(len(arrs) > 0, "No input sent to interleave")

	elementCount := arrs[0].len()
	floatsPerElement := 0
	for i := 0; i < len(arrs); i++ {

		assert.T(arrs[i].len() == elementCount, "Mesh vertex data given to interleave is not the same length. Expected %d but array %d has %d", elementCount, i, arrs[i].len())

		if len(arrs[i].V2s) > 0 {
			floatsPerElement += 2
		} else {
			floatsPerElement += 3
		}
	}

	out := make([]float32, 0, elementCount*floatsPerElement)
	for i := 0; i < elementCount; i++ {
		for arrToUse := 0; arrToUse < len(arrs); arrToUse++ {
			out = append(out, arrs[arrToUse].get(i)...)
		}
	}

	return out
}

func flattenFaces(faces []asig.Face) []uint32 {

	uints := make([]uint32, 0, len(faces)*3)
	for i := 0; i < len(faces); i++ {

		// Triangulation leaves point and line primitives as is, and we only draw triangles
		if len(faces[i].Indices) != 3 {
			continue
		}

		uints = append(uints,
			uint32(faces[i].Indices[0]),
			uint32(faces[i].Indices[1]),
			uint32(faces[i].Indices[2]),
		)
	}

	return uints
}
