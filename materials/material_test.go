package materials

import (
	"testing"

	"github.com/bloeys/glpractice/shaders"
	"github.com/stretchr/testify/assert"
)

func TestMaterialSettings(t *testing.T) {

	var ms MaterialSettings
	assert.False(t, ms.Has(MaterialSettings_HasModelMtx))

	ms.Set(MaterialSettings_HasModelMtx | MaterialSettings_HasTextures)
	assert.True(t, ms.Has(MaterialSettings_HasModelMtx))
	assert.True(t, ms.Has(MaterialSettings_HasTextures))
	assert.True(t, ms.Has(MaterialSettings_HasModelMtx|MaterialSettings_HasTextures))

	ms.Remove(MaterialSettings_HasModelMtx)
	assert.False(t, ms.Has(MaterialSettings_HasModelMtx))
	assert.True(t, ms.Has(MaterialSettings_HasTextures))
}

func TestNewMaterialIdsAreUnique(t *testing.T) {

	a := newMaterial("a", shaders.ShaderProgram{})
	b := newMaterial("b", shaders.ShaderProgram{})

	assert.NotEqual(t, a.Id, b.Id)
	assert.NotZero(t, a.Id)
	assert.NotNil(t, a.UnifLocs)
}

func TestGetUnifLocUsesCache(t *testing.T) {

	m := newMaterial("cached", shaders.ShaderProgram{})
	m.UnifLocs["projViewMat"] = 4

	// A cached location never reaches GL
	assert.Equal(t, int32(4), m.GetUnifLoc("projViewMat"))
}
