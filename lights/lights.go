// Package lights holds the Phong light types used by the lit shaders and uploads them as uniform structs.
package lights

import (
	"strconv"

	"github.com/bloeys/gglm/gglm"
)

// UniformSetter is implemented by *materials.Material
type UniformSetter interface {
	SetUnifVec3(uniformName string, vec3 *gglm.Vec3)
	SetUnifFloat32(uniformName string, val float32)
}

// Attenuation is the constant/linear/quadratic distance falloff of point and spot lights
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// At returns the light multiplier at distance d, which is 1/(c + l*d + q*d^2)
func (a *Attenuation) At(d float32) float32 {
	return 1 / (a.Constant + a.Linear*d + a.Quadratic*d*d)
}

func (a *Attenuation) setUniforms(s UniformSetter, prefix string) {
	s.SetUnifFloat32(prefix+".constant", a.Constant)
	s.SetUnifFloat32(prefix+".linear", a.Linear)
	s.SetUnifFloat32(prefix+".quadratic", a.Quadratic)
}

type DirLight struct {
	Dir      gglm.Vec3
	Ambient  gglm.Vec3
	Diffuse  gglm.Vec3
	Specular gglm.Vec3
}

func (d *DirLight) SetUniforms(s UniformSetter, prefix string) {
	s.SetUnifVec3(prefix+".direction", &d.Dir)
	s.SetUnifVec3(prefix+".ambient", &d.Ambient)
	s.SetUnifVec3(prefix+".diffuse", &d.Diffuse)
	s.SetUnifVec3(prefix+".specular", &d.Specular)
}

type PointLight struct {
	Pos      gglm.Vec3
	Ambient  gglm.Vec3
	Diffuse  gglm.Vec3
	Specular gglm.Vec3
	Attenuation
}

func (p *PointLight) SetUniforms(s UniformSetter, prefix string) {
	s.SetUnifVec3(prefix+".position", &p.Pos)
	s.SetUnifVec3(prefix+".ambient", &p.Ambient)
	s.SetUnifVec3(prefix+".diffuse", &p.Diffuse)
	s.SetUnifVec3(prefix+".specular", &p.Specular)
	p.Attenuation.setUniforms(s, prefix)
}

const maxCutoffDeg float32 = 89

// SpotLight lights a cone around Dir. Inside the inner cutoff angle the light is at full
// intensity, and it fades linearly to zero at the outer cutoff angle.
type SpotLight struct {
	Pos      gglm.Vec3
	Dir      gglm.Vec3
	Ambient  gglm.Vec3
	Diffuse  gglm.Vec3
	Specular gglm.Vec3
	Attenuation

	InnerCutoffRad float32
	OuterCutoffRad float32
}

func (s *SpotLight) InnerCutoffCos() float32 {
	return gglm.Cos32(s.InnerCutoffRad)
}

func (s *SpotLight) OuterCutoffCos() float32 {
	return gglm.Cos32(s.OuterCutoffRad)
}

// CutoffsDeg returns the inner and outer cutoff angles in degrees
func (s *SpotLight) CutoffsDeg() (innerDeg, outerDeg float32) {
	return s.InnerCutoffRad / gglm.Deg2Rad, s.OuterCutoffRad / gglm.Deg2Rad
}

// SetCutoffsDeg sets the cutoff angles from degrees. Angles are clamped to [0, 89] and the
// outer angle is never smaller than the inner one.
func (s *SpotLight) SetCutoffsDeg(innerDeg, outerDeg float32) {

	innerDeg = gglm.Clamp(innerDeg, 0, maxCutoffDeg)
	outerDeg = gglm.Clamp(outerDeg, innerDeg, maxCutoffDeg)

	s.InnerCutoffRad = innerDeg * gglm.Deg2Rad
	s.OuterCutoffRad = outerDeg * gglm.Deg2Rad
}

// Intensity returns the cone falloff for a fragment whose direction from the light
// has a cosine of cosTheta with Dir
func (s *SpotLight) Intensity(cosTheta float32) float32 {

	inner := s.InnerCutoffCos()
	outer := s.OuterCutoffCos()

	epsilon := inner - outer
	if epsilon <= 0 {
		if cosTheta >= outer {
			return 1
		}
		return 0
	}

	return gglm.Clamp((cosTheta-outer)/epsilon, 0, 1)
}

func (s *SpotLight) SetUniforms(setter UniformSetter, prefix string) {
	setter.SetUnifVec3(prefix+".position", &s.Pos)
	setter.SetUnifVec3(prefix+".direction", &s.Dir)
	setter.SetUnifVec3(prefix+".ambient", &s.Ambient)
	setter.SetUnifVec3(prefix+".diffuse", &s.Diffuse)
	setter.SetUnifVec3(prefix+".specular", &s.Specular)
	s.Attenuation.setUniforms(setter, prefix)
	setter.SetUnifFloat32(prefix+".cutOff", s.InnerCutoffCos())
	setter.SetUnifFloat32(prefix+".outerCutOff", s.OuterCutoffCos())
}

// ArrayElem returns the uniform name of element i of a GLSL array (e.g. "pointLights[2]")
func ArrayElem(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// NewFlashlight returns a spot light at the viewer position pointing where they look
func NewFlashlight(pos, dir *gglm.Vec3) SpotLight {
	return SpotLight{
		Pos:      *pos,
		Dir:      *dir,
		Ambient:  gglm.NewVec3(0.1, 0.1, 0.1),
		Diffuse:  gglm.NewVec3(1, 1, 1),
		Specular: gglm.NewVec3(1, 1, 1),
		Attenuation: Attenuation{
			Constant:  1,
			Linear:    0.09,
			Quadratic: 0.032,
		},
		InnerCutoffRad: 12.5 * gglm.Deg2Rad,
		OuterCutoffRad: 20 * gglm.Deg2Rad,
	}
}
