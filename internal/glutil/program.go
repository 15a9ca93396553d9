// Package glutil contains the shader, buffer, texture and query helpers
// that the example programs share. All functions must be called from the
// thread that owns the current GL context.
package glutil

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// computeShader is GL_COMPUTE_SHADER, which the 4.1 binding does not define.
const computeShader = 0x91B9

// Stage is a single shader stage of a program.
type Stage struct {
	Type   uint32
	Source string
}

func Vertex(source string) Stage         { return Stage{gl.VERTEX_SHADER, source} }
func Fragment(source string) Stage       { return Stage{gl.FRAGMENT_SHADER, source} }
func Geometry(source string) Stage       { return Stage{gl.GEOMETRY_SHADER, source} }
func TessControl(source string) Stage    { return Stage{gl.TESS_CONTROL_SHADER, source} }
func TessEvaluation(source string) Stage { return Stage{gl.TESS_EVALUATION_SHADER, source} }
func Compute(source string) Stage        { return Stage{computeShader, source} }

// StageName returns a readable name for a shader type.
func StageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	case gl.GEOMETRY_SHADER:
		return "geometry shader"
	case gl.TESS_CONTROL_SHADER:
		return "tessellation control shader"
	case gl.TESS_EVALUATION_SHADER:
		return "tessellation evaluation shader"
	case computeShader:
		return "compute shader"
	}
	return fmt.Sprintf("shader 0x%X", shaderType)
}

// Program is a linked shader program with a cache of uniform locations.
type Program struct {
	ID uint32

	locations map[string]int32
}

// NewProgram compiles and links the stages into a program.
func NewProgram(stages ...Stage) (*Program, error) {
	return link(stages, nil)
}

// NewFeedbackProgram is like NewProgram, but also captures varyings
// interleaved into the bound transform feedback buffer.
func NewFeedbackProgram(varyings []string, stages ...Stage) (*Program, error) {
	return link(stages, func(program uint32) {
		names := make([]string, len(varyings))
		for i, name := range varyings {
			names[i] = cstring(name)
		}
		cnames, free := gl.Strs(names...)
		defer free()
		gl.TransformFeedbackVaryings(program, int32(len(names)), cnames, gl.INTERLEAVED_ATTRIBS)
	})
}

func link(stages []Stage, beforeLink func(program uint32)) (*Program, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("program has no shader stages")
	}

	program := gl.CreateProgram()

	for _, stage := range stages {
		shader, err := compileShader(stage.Source, stage.Type)
		if err != nil {
			gl.DeleteProgram(program)
			return nil, err
		}
		gl.AttachShader(program, shader)
		// the shader is only flagged for deletion while it is attached
		defer gl.DeleteShader(shader)
	}

	if beforeLink != nil {
		beforeLink(program)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return nil, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return &Program{
		ID:        program,
		locations: map[string]int32{},
	}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(cstring(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %v: %v", StageName(shaderType), strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// cstring null terminates s for passing to GL.
func cstring(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func (program *Program) Use() { gl.UseProgram(program.ID) }

func (program *Program) Delete() {
	gl.DeleteProgram(program.ID)
	program.ID = 0
}

// Uniform returns the location of the named uniform, -1 when it is not active.
func (program *Program) Uniform(name string) int32 {
	location, ok := program.locations[name]
	if !ok {
		location = gl.GetUniformLocation(program.ID, gl.Str(cstring(name)))
		program.locations[name] = location
	}
	return location
}

// UniformBlock binds the named uniform block to a binding point.
func (program *Program) UniformBlock(name string, binding uint32) error {
	index := gl.GetUniformBlockIndex(program.ID, gl.Str(cstring(name)))
	if index == gl.INVALID_INDEX {
		return fmt.Errorf("uniform block %q not found", name)
	}
	gl.UniformBlockBinding(program.ID, index, binding)
	return nil
}

// The setters below expect the program to be in use.

func (program *Program) SetInt(name string, v int32) {
	gl.Uniform1i(program.Uniform(name), v)
}

func (program *Program) SetUint(name string, v uint32) {
	gl.Uniform1ui(program.Uniform(name), v)
}

func (program *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(program.Uniform(name), v)
}

func (program *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(program.Uniform(name), v[0], v[1], v[2])
}

func (program *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(program.Uniform(name), 1, false, &m[0])
}
