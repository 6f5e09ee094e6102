package logger

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	zp "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
)

// Log is a no-op until the command configures it.
var Log = zp.NewNop().Sugar()

func DefaultLoggerConfig(level zapcore.Level) zp.Config {
	encoder := zapcore.CapitalColorLevelEncoder
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		encoder = zapcore.CapitalLevelEncoder
	}

	return zp.Config{
		Level:            zp.NewAtomicLevelAt(level),
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "ts",
			CallerKey:      "caller",
			EncodeLevel:    encoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   AdditionalComponentCallerEncoder,
		},
	}
}

// MinimalEncoderConfig keeps only the level and the message.
func MinimalEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}
}

// NewConfig builds a config for one of the "console", "json" or "minimal" layouts.
func NewConfig(layout string, level zapcore.Level) (zp.Config, error) {
	cfg := DefaultLoggerConfig(level)
	switch layout {
	case "console":
	case "json":
		cfg = zp.NewProductionConfig()
		cfg.Level = zp.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stderr"}
	case "minimal":
		cfg.EncoderConfig = MinimalEncoderConfig()
	default:
		return zp.Config{}, xerrors.Errorf("unsupported log config %q", layout)
	}
	return cfg, nil
}

// ParseLevel accepts zap level names plus "warning".
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.EqualFold(level, "warning") {
		return zapcore.WarnLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, xerrors.Errorf("unsupported log level %q: %w", level, err)
	}
	return l, nil
}

func AdditionalComponentCallerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	path := caller.String()
	lastIndex := len(path) - 1
	for i := 0; i < 3; i++ {
		lastIndex = strings.LastIndex(path[0:lastIndex], "/")
		if lastIndex == -1 {
			break
		}
	}
	if lastIndex > 0 {
		path = path[lastIndex+1:]
	}
	enc.AppendString(path)
}
