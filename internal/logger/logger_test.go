package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	var data = []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"panic", zapcore.PanicLevel},
	}

	for _, test := range data {
		t.Run(test.input, func(t *testing.T) {
			level, err := ParseLevel(test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, level)
		})
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestNewConfig(t *testing.T) {
	for _, layout := range []string{"console", "json", "minimal"} {
		t.Run(fmt.Sprintf("layout=%s", layout), func(t *testing.T) {
			cfg, err := NewConfig(layout, zapcore.InfoLevel)
			require.NoError(t, err)
			require.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
			_, err = cfg.Build()
			require.NoError(t, err)
		})
	}

	_, err := NewConfig("xml", zapcore.InfoLevel)
	require.Error(t, err)
}

func TestAdditionalComponentCallerEncoder(t *testing.T) {
	var data = []struct {
		file, expected string
	}{
		{"/home/dev/go/src/github.com/rhaeguard/re2post/cmd/re2post/main.go", "cmd/re2post/main.go:42"},
		{"re2post/cmd/main.go", "re2post/cmd/main.go:42"},
		{"main.go", "main.go:42"},
	}

	for _, test := range data {
		t.Run(test.file, func(t *testing.T) {
			encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
				CallerKey:    "caller",
				EncodeCaller: AdditionalComponentCallerEncoder,
			})
			entry := zapcore.Entry{Caller: zapcore.NewEntryCaller(0, test.file, 42, true)}

			buf, err := encoder.EncodeEntry(entry, nil)
			require.NoError(t, err)
			defer buf.Free()
			require.Equal(t, fmt.Sprintf("{\"caller\":\"%s\"}\n", test.expected), buf.String())
		})
	}
}
