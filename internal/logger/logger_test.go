package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel,
	}
	for name, want := range cases {
		for _, format := range []string{"json", "console"} {
			l, err := New(name, format)
			if err != nil {
				t.Fatalf("New(%q, %q): %v", name, format, err)
			}
			if !l.Core().Enabled(want) {
				t.Fatalf("level %s should be enabled for %q", want, name)
			}
			if want > zapcore.DebugLevel && l.Core().Enabled(want-1) {
				t.Fatalf("level %s should be disabled for %q", want-1, name)
			}
		}
	}
}
