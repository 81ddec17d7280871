package renderer

import (
	"fmt"
	"strings"
)

// fakeGL records calls instead of talking to a driver. A shader "compiles"
// when its source contains a main function; linking fails when failLink is set.
// emptyLogs makes the driver report failures without an info log.
type fakeGL struct {
	nextID uint32

	noShaderObjects bool
	failLink        bool
	emptyLogs       bool

	sources  map[uint32]string
	attached map[uint32][]uint32
	attribs  map[uint32]map[string]uint32
	deleted  map[uint32]bool

	floatData []float32
	indexData []uint32

	uniforms map[int32]float32
	calls    []string
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		sources:  make(map[uint32]string),
		attached: make(map[uint32][]uint32),
		attribs:  make(map[uint32]map[string]uint32),
		deleted:  make(map[uint32]bool),
		uniforms: make(map[int32]float32),
	}
}

func (f *fakeGL) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) CreateShader(stage Stage) uint32 {
	if f.noShaderObjects {
		return 0
	}
	return f.id()
}

func (f *fakeGL) ShaderSource(shader uint32, source string) { f.sources[shader] = source }
func (f *fakeGL) CompileShader(shader uint32)               {}

func (f *fakeGL) ShaderCompiled(shader uint32) bool {
	return strings.Contains(f.sources[shader], "void main()")
}

func (f *fakeGL) ShaderInfoLog(shader uint32) string {
	if f.emptyLogs || f.ShaderCompiled(shader) {
		return ""
	}
	return "0:1(1): error: syntax error, unexpected end of file"
}

func (f *fakeGL) DeleteShader(shader uint32) { f.deleted[shader] = true }

func (f *fakeGL) CreateProgram() uint32 {
	p := f.id()
	f.attribs[p] = make(map[string]uint32)
	return p
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
}

func (f *fakeGL) BindAttribLocation(program, index uint32, name string) {
	f.attribs[program][name] = index
}

func (f *fakeGL) LinkProgram(program uint32)        {}
func (f *fakeGL) ProgramLinked(program uint32) bool { return !f.failLink }

func (f *fakeGL) ProgramInfoLog(program uint32) string {
	if f.failLink && !f.emptyLogs {
		return "error: vertex output 'v' not read by fragment shader"
	}
	return ""
}

func (f *fakeGL) DeleteProgram(program uint32) { f.deleted[program] = true }
func (f *fakeGL) UseProgram(program uint32)    { f.record("UseProgram(%d)", program) }

func (f *fakeGL) UniformLocation(program uint32, name string) int32 {
	if name == "time" {
		return 3
	}
	return -1
}

func (f *fakeGL) Uniform1f(location int32, value float32) {
	f.uniforms[location] = value
	f.record("Uniform1f(%d)", location)
}

func (f *fakeGL) GenVertexArray() uint32           { return f.id() }
func (f *fakeGL) BindVertexArray(vao uint32)       { f.record("BindVertexArray(%d)", vao) }
func (f *fakeGL) DeleteVertexArray(vao uint32)     { f.deleted[vao] = true }
func (f *fakeGL) GenBuffer() uint32                { return f.id() }
func (f *fakeGL) BindBuffer(target, buffer uint32) {}

func (f *fakeGL) BufferFloat32(target uint32, data []float32) {
	f.floatData = append([]float32(nil), data...)
}

func (f *fakeGL) BufferUint32(target uint32, data []uint32) {
	f.indexData = append([]uint32(nil), data...)
}

func (f *fakeGL) DeleteBuffer(buffer uint32) { f.deleted[buffer] = true }

func (f *fakeGL) VertexAttribPointer(index uint32, size int32) {
	f.record("VertexAttribPointer(%d,%d)", index, size)
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray(%d)", index)
}

func (f *fakeGL) Viewport(x, y, width, height int32) {
	f.record("Viewport(%d,%d,%d,%d)", x, y, width, height)
}

func (f *fakeGL) ClearColor(r, g, b, a float32) { f.record("ClearColor") }
func (f *fakeGL) Clear(mask uint32)             { f.record("Clear(%#x)", mask) }
func (f *fakeGL) Enable(capability uint32)      { f.record("Enable(%#x)", capability) }
func (f *fakeGL) Disable(capability uint32)     { f.record("Disable(%#x)", capability) }
func (f *fakeGL) BlendFunc(src, dst uint32)     { f.record("BlendFunc(%#x,%#x)", src, dst) }
func (f *fakeGL) DepthMask(write bool)          { f.record("DepthMask(%t)", write) }

func (f *fakeGL) DrawElements(mode uint32, count int32) {
	f.record("DrawElements(%#x,%d)", mode, count)
}

func (f *fakeGL) reset() {
	f.calls = nil
}

func (f *fakeGL) called(call string) bool {
	return f.indexOf(call) >= 0
}

// indexOf returns the position of the first recorded call, or -1.
func (f *fakeGL) indexOf(call string) int {
	for i, c := range f.calls {
		if c == call {
			return i
		}
	}
	return -1
}
