package renderer

import "github.com/go-gl/gl/v3.3-core/gl"

// Stage is a shader pipeline stage.
type Stage uint32

const (
	StageVertex   Stage = gl.VERTEX_SHADER
	StageFragment Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// PositionLocation is the attribute slot vPosition is bound to before linking.
const PositionLocation uint32 = 0

// GL is the subset of OpenGL the wave renderer issues. OpenGL implements it
// on top of go-gl; tests substitute a recorder.
type GL interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, value float32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferFloat32(target uint32, data []float32)
	BufferUint32(target uint32, data []uint32)
	DeleteBuffer(buffer uint32)
	VertexAttribPointer(index uint32, size int32)
	EnableVertexAttribArray(index uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
	Disable(capability uint32)
	BlendFunc(src, dst uint32)
	DepthMask(write bool)
	DrawElements(mode uint32, count int32)
}
