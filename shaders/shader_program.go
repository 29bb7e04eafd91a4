package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloeys/glpractice/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links the attached shaders and then deletes them, since a linked program no longer needs them.
// On failure the program is deleted and the info log is returned.
func (sp *ShaderProgram) Link() error {

	gl.LinkProgram(sp.Id)
	sp.deleteShaders()

	var linkedSuccessfully int32
	gl.GetProgramiv(sp.Id, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(sp.Id, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetProgramInfoLog(sp.Id, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Linking of shader program with id ", sp.Id, " failed. Err: ", errMsg)

	gl.DeleteProgram(sp.Id)
	sp.Id = 0

	return fmt.Errorf("failed to link shader program: %w", errors.New(errMsg))
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

// takeShaderIds returns the ids of the attached shaders and forgets them
func (sp *ShaderProgram) takeShaderIds() []uint32 {

	ids := make([]uint32, 0, 3)
	for _, id := range [...]uint32{sp.VertShaderId, sp.FragShaderId, sp.GeomShaderId} {
		if id != 0 {
			ids = append(ids, id)
		}
	}

	sp.VertShaderId, sp.FragShaderId, sp.GeomShaderId = 0, 0, 0
	return ids
}

func (sp *ShaderProgram) deleteShaders() {
	for _, id := range sp.takeShaderIds() {
		gl.DeleteShader(id)
	}
}

// Delete frees the program and any shaders still attached to it (e.g. when a later stage failed to compile)
func (sp *ShaderProgram) Delete() {

	sp.deleteShaders()

	if sp.Id == 0 {
		return
	}

	gl.DeleteProgram(sp.Id)
	sp.Id = 0
}
