package game

import (
	"context"
	"log/slog"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// traceLevel maps raylib trace levels onto slog levels.
func traceLevel(level int) slog.Level {
	switch rl.TraceLogLevel(level) {
	case rl.LogTrace, rl.LogDebug:
		return slog.LevelDebug
	case rl.LogInfo:
		return slog.LevelInfo
	case rl.LogWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// RouteRaylibLogs sends raylib's internal trace output through logger.
// Call before OpenWindow to capture context creation messages.
func RouteRaylibLogs(logger *slog.Logger) {
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.SetTraceLogCallback(func(level int, text string) {
		logger.Log(context.Background(), traceLevel(level), strings.TrimSpace(text), "source", "raylib")
	})
}
