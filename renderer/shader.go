package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/wave/shading"
)

var (
	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink is returned when a program fails to link.
	ErrLink = errors.New("program link failed")
)

// CompileShader creates and compiles a single stage. On failure a non-empty
// driver info log is logged at error level, the shader object is deleted and
// a zero handle is returned with an error carrying the log.
func CompileShader(api GL, logger *slog.Logger, stage Stage, source string) (uint32, error) {
	shader := api.CreateShader(stage)
	if shader == 0 {
		return 0, fmt.Errorf("%w: could not create %s shader object", ErrCompile, stage)
	}

	api.ShaderSource(shader, source)
	api.CompileShader(shader)

	if !api.ShaderCompiled(shader) {
		log := api.ShaderInfoLog(shader)
		if log != "" {
			logger.Error("error compiling shader", "stage", stage.String(), "log", log)
		}
		api.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s stage: %s", ErrCompile, stage, log)
	}

	return shader, nil
}

// LinkProgram attaches both stages, binds vPosition to PositionLocation and
// links. On failure a non-empty info log is logged, the program deleted and a
// zero handle returned.
func LinkProgram(api GL, logger *slog.Logger, vertex, fragment uint32) (uint32, error) {
	if vertex == 0 || fragment == 0 {
		return 0, fmt.Errorf("%w: missing compiled stage (vertex=%d fragment=%d)", ErrLink, vertex, fragment)
	}

	program := api.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("%w: could not create program object", ErrLink)
	}

	api.AttachShader(program, vertex)
	api.AttachShader(program, fragment)
	api.BindAttribLocation(program, PositionLocation, shading.AttribPosition)
	api.LinkProgram(program)

	if !api.ProgramLinked(program) {
		log := api.ProgramInfoLog(program)
		if log != "" {
			logger.Error("error linking program", "log", log)
		}
		api.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, log)
	}

	return program, nil
}
