package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", &buf, false)
	l.Info("hidden")
	l.Warn("shown", zap.Int("features", 3))
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "features") {
		t.Errorf("expected warn entry with field, got %q", out)
	}
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	l := New("debug", nil, false)
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a no-op logger")
	}
}

func TestInitWritesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "globemap.log")
	if err := Init("debug", logFile, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() { Log = zap.NewNop() }()

	Log.Debug("composed map", zap.Int("width", 80))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "composed map") {
		t.Errorf("expected entry in log file, got %q", data)
	}
	if !strings.Contains(string(data), "DEBUG") {
		t.Errorf("expected capital level in file output, got %q", data)
	}
}
