package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"Trace", LevelTrace},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLoggerTraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", false, &buf)
	logger.Log(context.Background(), LevelTrace, "tick", "n", 3)
	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Fatalf("trace records should be labelled TRACE, got %q", buf.String())
	}

	buf.Reset()
	logger = NewLogger("info", true, &buf)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record leaked at info level: %q", buf.String())
	}
	logger.Info("shown", "stuck", 12)
	if !strings.Contains(buf.String(), `"stuck":12`) {
		t.Fatalf("expected JSON output, got %q", buf.String())
	}
}
