// Package renderer compiles the wave shaders and draws the grid mesh with
// raw OpenGL calls on the context opened by the window.
package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/pthm-cable/wave/mesh"
	"github.com/pthm-cable/wave/shading"
)

// WaveRenderer draws the grid as a single translucent triangle strip whose
// heights are computed in the vertex shader from the time uniform.
type WaveRenderer struct {
	api     GL
	logger  *slog.Logger
	variant shading.Variant
	grid    *mesh.Grid

	program    uint32
	timeLoc    int32
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	initialized bool
}

// NewWaveRenderer creates a renderer for grid. Nothing touches the GPU
// until Init.
func NewWaveRenderer(api GL, logger *slog.Logger, variant shading.Variant, grid *mesh.Grid) *WaveRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &WaveRenderer{
		api:     api,
		logger:  logger,
		variant: variant,
		grid:    grid,
		timeLoc: -1,
	}
}

// Init compiles and links the program and uploads the static mesh.
func (w *WaveRenderer) Init() error {
	if w.initialized {
		return nil
	}

	vs, err := CompileShader(w.api, w.logger, StageVertex, w.variant.VertexSource())
	if err != nil {
		return fmt.Errorf("loading %s vertex shader: %w", w.variant, err)
	}
	fs, err := CompileShader(w.api, w.logger, StageFragment, shading.FragmentSource())
	if err != nil {
		w.api.DeleteShader(vs)
		return fmt.Errorf("loading fragment shader: %w", err)
	}

	program, err := LinkProgram(w.api, w.logger, vs, fs)
	// Stages are flagged for deletion; a linked program keeps them alive.
	w.api.DeleteShader(vs)
	w.api.DeleteShader(fs)
	if err != nil {
		return fmt.Errorf("building %s program: %w", w.variant, err)
	}

	w.program = program
	w.timeLoc = w.api.UniformLocation(program, shading.UniformTime)
	if w.timeLoc < 0 {
		w.logger.Warn("uniform not active in program", "uniform", shading.UniformTime)
	}

	w.vao = w.api.GenVertexArray()
	w.api.BindVertexArray(w.vao)

	w.vbo = w.api.GenBuffer()
	w.api.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	w.api.BufferFloat32(gl.ARRAY_BUFFER, w.grid.Positions())
	w.api.VertexAttribPointer(PositionLocation, 3)
	w.api.EnableVertexAttribArray(PositionLocation)

	w.ebo = w.api.GenBuffer()
	w.api.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, w.ebo)
	w.api.BufferUint32(gl.ELEMENT_ARRAY_BUFFER, w.grid.Indices)

	w.api.BindVertexArray(0)

	w.indexCount = int32(len(w.grid.Indices))
	w.initialized = true

	w.logger.Info("wave renderer ready",
		"variant", w.variant.String(),
		"rows", w.grid.Rows,
		"columns", w.grid.Columns,
		"vertices", len(w.grid.Vertices),
		"indices", w.indexCount,
	)
	return nil
}

// Draw renders one frame at time t into a width × height framebuffer.
// Only the color buffer is cleared; depth testing and depth writes are off
// so the strip's overlapping folds blend over each other.
func (w *WaveRenderer) Draw(t float32, width, height int32) {
	if !w.initialized {
		return
	}

	w.api.Viewport(0, 0, width, height)
	w.api.ClearColor(0, 0, 0, 0)
	w.api.Clear(gl.COLOR_BUFFER_BIT)

	w.api.UseProgram(w.program)

	w.api.Disable(gl.DEPTH_TEST)
	w.api.Enable(gl.BLEND)
	w.api.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	w.api.DepthMask(false)

	w.api.Uniform1f(w.timeLoc, t)

	w.api.BindVertexArray(w.vao)
	w.api.DrawElements(gl.TRIANGLE_STRIP, w.indexCount)

	// Leave no bindings behind for raylib's batch renderer.
	w.api.BindVertexArray(0)
	w.api.UseProgram(0)
}

// IndexCount returns the number of indices submitted per draw.
func (w *WaveRenderer) IndexCount() int32 {
	return w.indexCount
}

// Program returns the linked program handle, 0 before Init.
func (w *WaveRenderer) Program() uint32 {
	return w.program
}

// Unload frees GPU resources.
func (w *WaveRenderer) Unload() {
	if !w.initialized {
		return
	}
	w.api.DeleteBuffer(w.ebo)
	w.api.DeleteBuffer(w.vbo)
	w.api.DeleteVertexArray(w.vao)
	w.api.DeleteProgram(w.program)
	w.program = 0
	w.initialized = false
}
