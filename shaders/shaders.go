// Package shaders compiles and links GLSL programs written in the combined format,
// where one file holds every stage and each stage starts with a line like '//shader:vertex'.
package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bloeys/glpractice/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const shaderTypeMarker = "//shader:"

var (
	ErrNoVertexShader   = errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	ErrNoFragmentShader = errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Id)
	s.Id = 0
}

// ShaderSrc is one stage extracted from a combined shader file
type ShaderSrc struct {
	Type ShaderType
	Src  []byte
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id}, nil
}

func LoadAndCompileCombinedShader(shaderPath string) (ShaderProgram, error) {

	combinedSource, err := os.ReadFile(shaderPath)
	if err != nil {
		return ShaderProgram{}, fmt.Errorf("failed to read shader at '%s': %w", shaderPath, err)
	}

	prog, err := LoadAndCompileCombinedShaderSrc(combinedSource)
	if err != nil {
		return ShaderProgram{}, fmt.Errorf("shader '%s': %w", shaderPath, err)
	}

	return prog, nil
}

// SplitCombinedShaderSrc splits a combined source into its stages, in file order.
// A vertex and a fragment stage are required and each stage may appear only once.
func SplitCombinedShaderSrc(shaderSrc []byte) ([]ShaderSrc, error) {

	sections := bytes.Split(shaderSrc, []byte(shaderTypeMarker))

	// Anything before the first marker must be whitespace
	if len(bytes.TrimSpace(sections[0])) != 0 {
		return nil, errors.New("combined shader has source before the first '//shader:' marker")
	}

	out := make([]ShaderSrc, 0, len(sections)-1)
	seen := map[ShaderType]bool{}
	for i := 1; i < len(sections); i++ {

		src := sections[i]

		var shdrType ShaderType
		if bytes.HasPrefix(src, []byte("vertex")) {
			src = src[6:]
			shdrType = ShaderType_Vertex
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			src = src[8:]
			shdrType = ShaderType_Fragment
		} else if bytes.HasPrefix(src, []byte("geometry")) {
			src = src[8:]
			shdrType = ShaderType_Geometry
		} else {
			return nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'")
		}

		if seen[shdrType] {
			return nil, fmt.Errorf("combined shader has more than one %s shader", shdrType)
		}
		seen[shdrType] = true

		out = append(out, ShaderSrc{Type: shdrType, Src: src})
	}

	if !seen[ShaderType_Vertex] {
		return nil, ErrNoVertexShader
	}

	if !seen[ShaderType_Fragment] {
		return nil, ErrNoFragmentShader
	}

	return out, nil
}

func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	stages, err := SplitCombinedShaderSrc(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, err
	}

	for i := 0; i < len(stages); i++ {

		shdr, err := CompileShaderOfType(stages[i].Src, stages[i].Type)
		if err != nil {
			shdrProg.Delete()
			return ShaderProgram{}, fmt.Errorf("failed to compile %s shader: %w", stages[i].Type, err)
		}

		shdrProg.AttachShader(shdr)
	}

	if err := shdrProg.Link(); err != nil {
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

func CompileShaderOfType(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId); err != nil {
		gl.DeleteShader(shaderId)
		return Shader{}, err
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}

func getShaderCompileErrors(shaderId uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Compilation of shader with id ", shaderId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}
