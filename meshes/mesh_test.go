package meshes

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/buffers"
	"github.com/stretchr/testify/assert"
)

func TestInterleave(t *testing.T) {

	pos := []gglm.Vec3{gglm.NewVec3(1, 2, 3), gglm.NewVec3(4, 5, 6)}
	normals := []gglm.Vec3{gglm.NewVec3(0, 1, 0), gglm.NewVec3(0, 0, 1)}
	uvs := v3sToV2s([]gglm.Vec3{gglm.NewVec3(0.25, 0.5, 9), gglm.NewVec3(1, 0, 9)})

	out := interleave(
		arrToInterleave{V3s: pos},
		arrToInterleave{V3s: normals},
		arrToInterleave{V2s: uvs},
	)

	assert.Equal(t, []float32{
		1, 2, 3, 0, 1, 0, 0.25, 0.5,
		4, 5, 6, 0, 0, 1, 1, 0,
	}, out)
	assert.Len(t, out, 2*buffers.LayoutFloatCount(meshLayout))
}

func TestInterleaveMismatchedLengthsPanics(t *testing.T) {

	assert.Panics(t, func() {
		interleave(
			arrToInterleave{V3s: []gglm.Vec3{gglm.NewVec3(1, 2, 3)}},
			arrToInterleave{V3s: []gglm.Vec3{gglm.NewVec3(1, 2, 3), gglm.NewVec3(1, 2, 3)}},
		)
	})
}

func TestV3sToV2sDropsZ(t *testing.T) {

	v2s := v3sToV2s([]gglm.Vec3{gglm.NewVec3(0.1, 0.9, 0.5)})

	assert.Len(t, v2s, 1)
	assert.Equal(t, [2]float32{0.1, 0.9}, v2s[0].Data)
}
