package log

import (
	"log/slog"
	"os"
	"strings"
)

// BuildLogger arma el logger JSON que usan todos los módulos. El nivel se toma del
// archivo de configuración; un valor desconocido cae en INFO.
func BuildLogger(level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, ops))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

func IntAttr(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func StringAttr(key, value string) slog.Attr {
	return slog.String(key, value)
}

func AnyAttr(key string, value any) slog.Attr {
	return slog.Any(key, value)
}
