package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// OpenGL issues calls against the current context through go-gl.
type OpenGL struct{}

// InitOpenGL loads GL entry points. A context must be current (the raylib
// window must already be open).
func InitOpenGL() (OpenGL, error) {
	if err := gl.Init(); err != nil {
		return OpenGL{}, fmt.Errorf("loading OpenGL functions: %w", err)
	}
	return OpenGL{}, nil
}

// Version returns the driver's GL_VERSION string.
func (OpenGL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (OpenGL) CreateShader(stage Stage) uint32 { return gl.CreateShader(uint32(stage)) }

func (OpenGL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (OpenGL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (OpenGL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (OpenGL) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (OpenGL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (OpenGL) CreateProgram() uint32 { return gl.CreateProgram() }

func (OpenGL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (OpenGL) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

func (OpenGL) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (OpenGL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (OpenGL) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (OpenGL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (OpenGL) UseProgram(program uint32) { gl.UseProgram(program) }

func (OpenGL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (OpenGL) Uniform1f(location int32, value float32) { gl.Uniform1f(location, value) }

func (OpenGL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (OpenGL) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (OpenGL) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (OpenGL) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (OpenGL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (OpenGL) BufferFloat32(target uint32, data []float32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (OpenGL) BufferUint32(target uint32, data []uint32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (OpenGL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (OpenGL) VertexAttribPointer(index uint32, size int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, 0, 0)
}

func (OpenGL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (OpenGL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (OpenGL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (OpenGL) Clear(mask uint32) { gl.Clear(mask) }

func (OpenGL) Enable(capability uint32) { gl.Enable(capability) }

func (OpenGL) Disable(capability uint32) { gl.Disable(capability) }

func (OpenGL) BlendFunc(src, dst uint32) { gl.BlendFunc(src, dst) }

func (OpenGL) DepthMask(write bool) { gl.DepthMask(write) }

func (OpenGL) DrawElements(mode uint32, count int32) {
	gl.DrawElementsWithOffset(mode, count, gl.UNSIGNED_INT, 0)
}
