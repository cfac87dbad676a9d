package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Controls.GrabDistance != 3.0 {
		t.Errorf("grab distance = %v, want 3", s.Controls.GrabDistance)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workshop.yaml")
	data := []byte("carve:\n  radius: 0.3\n  strength: 0.05\nrender:\n  fps_limit: 60\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORKSHOP_RENDER_FPS_LIMIT", "144")
	t.Setenv("WORKSHOP_LOG_LEVEL", "debug")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Carve.Radius != 0.3 || s.Carve.Strength != 0.05 {
		t.Errorf("carve = %+v, want radius 0.3 strength 0.05", s.Carve)
	}
	if s.Render.FPSLimit != 144 {
		t.Errorf("fps limit = %d, env override should win", s.Render.FPSLimit)
	}
	if s.Log.Level != "debug" {
		t.Errorf("log level = %q", s.Log.Level)
	}
	// untouched keys keep defaults
	if s.Window.Width != 900 {
		t.Errorf("window width = %d", s.Window.Width)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workshop.yaml")
	if err := os.WriteFile(path, []byte("carve:\n  radius: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workshop.yaml")
	if err := os.WriteFile(path, []byte("carve: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRuntimeClamping(t *testing.T) {
	defer Apply(Default())

	SetMouseSensitivity(5)
	if got := GetMouseSensitivity(); got != 1 {
		t.Errorf("sensitivity = %v, want clamp to 1", got)
	}
	SetMouseSensitivity(0)
	if got := GetMouseSensitivity(); got != 0.01 {
		t.Errorf("sensitivity = %v, want clamp to 0.01", got)
	}
	SetFPSLimit(-10)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("fps limit = %d, want 0", got)
	}

	before := GetWireframeMode()
	if ToggleWireframeMode() == before {
		t.Error("toggle did not flip wireframe")
	}
}

func TestApply(t *testing.T) {
	defer Apply(Default())

	s := Default()
	s.Carve.Radius = 0.5
	s.Controls.ViewBobbing = false
	Apply(s)

	if GetCarveParams().Radius != 0.5 {
		t.Errorf("radius = %v", GetCarveParams().Radius)
	}
	if GetViewBobbing() {
		t.Error("view bobbing should be off")
	}
}
