package lights

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSetter struct {
	vec3s   map[string]gglm.Vec3
	float32 map[string]float32
}

func newFakeSetter() *fakeSetter {
	return &fakeSetter{
		vec3s:   map[string]gglm.Vec3{},
		float32: map[string]float32{},
	}
}

func (f *fakeSetter) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	f.vec3s[uniformName] = *vec3
}

func (f *fakeSetter) SetUnifFloat32(uniformName string, val float32) {
	f.float32[uniformName] = val
}

func TestAttenuation(t *testing.T) {

	a := Attenuation{Constant: 1, Linear: 0.14, Quadratic: 0.07}

	assert.InDelta(t, 1, a.At(0), 1e-6)
	assert.InDelta(t, 1/(1+0.14*2+0.07*4), a.At(2), 1e-6)
	assert.Less(t, a.At(10), a.At(5))
}

func TestSpotLightIntensity(t *testing.T) {

	pos := gglm.NewVec3(0, 0, 0)
	dir := gglm.NewVec3(0, 0, -1)
	s := NewFlashlight(&pos, &dir)

	inner := gglm.Cos32(12.5 * gglm.Deg2Rad)
	outer := gglm.Cos32(20 * gglm.Deg2Rad)

	assert.InDelta(t, inner, s.InnerCutoffCos(), 1e-6)
	assert.InDelta(t, outer, s.OuterCutoffCos(), 1e-6)

	assert.Equal(t, float32(1), s.Intensity(1))
	assert.Equal(t, float32(1), s.Intensity(inner))
	assert.InDelta(t, 0, s.Intensity(outer), 1e-6)
	assert.Equal(t, float32(0), s.Intensity(gglm.Cos32(45*gglm.Deg2Rad)))

	mid := (inner + outer) / 2
	assert.InDelta(t, 0.5, s.Intensity(mid), 1e-4)
}

func TestSpotLightIntensityHardEdge(t *testing.T) {

	s := SpotLight{InnerCutoffRad: 10 * gglm.Deg2Rad, OuterCutoffRad: 10 * gglm.Deg2Rad}

	assert.Equal(t, float32(1), s.Intensity(1))
	assert.Equal(t, float32(0), s.Intensity(0))
}

func TestSetUniforms(t *testing.T) {

	f := newFakeSetter()

	d := DirLight{Dir: gglm.NewVec3(-0.2, -1, -0.3), Diffuse: gglm.NewVec3(0.05, 0.05, 0.05)}
	d.SetUniforms(f, "dirLight")
	assert.Equal(t, d.Dir, f.vec3s["dirLight.direction"])
	assert.Equal(t, d.Diffuse, f.vec3s["dirLight.diffuse"])
	require.Contains(t, f.vec3s, "dirLight.ambient")
	require.Contains(t, f.vec3s, "dirLight.specular")

	p := PointLight{Pos: gglm.NewVec3(0.7, 0.2, 2), Attenuation: Attenuation{1, 0.14, 0.07}}
	p.SetUniforms(f, ArrayElem("pointLights", 3))
	assert.Equal(t, p.Pos, f.vec3s["pointLights[3].position"])
	assert.Equal(t, float32(0.14), f.float32["pointLights[3].linear"])
	assert.Equal(t, float32(0.07), f.float32["pointLights[3].quadratic"])

	pos := gglm.NewVec3(1, 2, 3)
	dir := gglm.NewVec3(0, 0, -1)
	s := NewFlashlight(&pos, &dir)
	s.SetUniforms(f, "spotLight")
	assert.Equal(t, pos, f.vec3s["spotLight.position"])
	assert.Equal(t, dir, f.vec3s["spotLight.direction"])
	assert.Equal(t, s.InnerCutoffCos(), f.float32["spotLight.cutOff"])
	assert.Equal(t, s.OuterCutoffCos(), f.float32["spotLight.outerCutOff"])
	assert.Equal(t, float32(0.032), f.float32["spotLight.quadratic"])
}

func TestArrayElem(t *testing.T) {
	assert.Equal(t, "pointLights[0]", ArrayElem("pointLights", 0))
	assert.Equal(t, "lights[12]", ArrayElem("lights", 12))
}

func TestSpotLightCutoffsDeg(t *testing.T) {

	pos := gglm.NewVec3(0, 0, 0)
	dir := gglm.NewVec3(0, 0, -1)
	l := NewFlashlight(&pos, &dir)

	inner, outer := l.CutoffsDeg()
	assert.InDelta(t, 12.5, inner, 1e-4)
	assert.InDelta(t, 20, outer, 1e-4)

	l.SetCutoffsDeg(30, 10)
	inner, outer = l.CutoffsDeg()
	assert.InDelta(t, 30, inner, 1e-4)
	assert.InDelta(t, 30, outer, 1e-4, "outer cutoff can't be inside the inner one")

	l.SetCutoffsDeg(-5, 120)
	inner, outer = l.CutoffsDeg()
	assert.InDelta(t, 0, inner, 1e-4)
	assert.InDelta(t, 89, outer, 1e-4)
}
