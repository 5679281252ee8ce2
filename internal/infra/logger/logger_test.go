package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewParsesLevelAndEncoding(t *testing.T) {
	cases := []struct {
		name     string
		level    string
		encoding string
		wantErr  bool
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{name: "json debug", level: "debug", encoding: "json", enabled: zapcore.DebugLevel},
		{name: "default encoding", level: "INFO", encoding: "", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{name: "console warn", level: "warn", encoding: "console", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
		{name: "bad level", level: "loud", encoding: "json", wantErr: true},
		{name: "bad encoding", level: "info", encoding: "xml", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.level, tc.encoding)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			if !log.Core().Enabled(tc.enabled) {
				t.Fatalf("level %s should be enabled", tc.enabled)
			}
			if tc.disabled != tc.enabled && tc.disabled < tc.enabled && log.Core().Enabled(tc.disabled) {
				t.Fatalf("level %s should be disabled", tc.disabled)
			}
		})
	}
}
