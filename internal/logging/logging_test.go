package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"workshop/internal/config"
)

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got != zapcore.DebugLevel {
		t.Errorf("debug -> %v", got)
	}
	if got := ParseLevel("WARN"); got != zapcore.WarnLevel {
		t.Errorf("WARN -> %v", got)
	}
	if got := ParseLevel("loud"); got != zapcore.InfoLevel {
		t.Errorf("unknown level -> %v, want info", got)
	}
}

func TestNew(t *testing.T) {
	for _, cfg := range []config.LogSettings{
		{Level: "debug", Format: "console", Development: true},
		{Level: "error", Format: "json"},
	} {
		logger, err := New(cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", cfg, err)
		}
		if !logger.Core().Enabled(ParseLevel(cfg.Level)) {
			t.Errorf("level %s not enabled", cfg.Level)
		}
		if cfg.Level == "error" && logger.Core().Enabled(zapcore.InfoLevel) {
			t.Error("info should be disabled at error level")
		}
	}
}
