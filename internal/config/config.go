package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Settings is the full startup configuration.
// Values come from Default, then workshop.yaml, then WORKSHOP_* environment variables.
type Settings struct {
	Window   WindowSettings  `yaml:"window" envPrefix:"WINDOW_"`
	Render   RenderSettings  `yaml:"render" envPrefix:"RENDER_"`
	Controls ControlSettings `yaml:"controls" envPrefix:"CONTROLS_"`
	Carve    CarveSettings   `yaml:"carve" envPrefix:"CARVE_"`
	Log      LogSettings     `yaml:"log" envPrefix:"LOG_"`
	Meshing  MeshingSettings `yaml:"meshing" envPrefix:"MESHING_"`
}

type WindowSettings struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title" env:"TITLE"`
}

type RenderSettings struct {
	FPSLimit  int     `yaml:"fps_limit" env:"FPS_LIMIT"` // 0 = uncapped
	FOV       float32 `yaml:"fov" env:"FOV"`
	Wireframe bool    `yaml:"wireframe" env:"WIREFRAME"`
}

type ControlSettings struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity" env:"MOUSE_SENSITIVITY"`
	TouchSensitivity float64 `yaml:"touch_sensitivity" env:"TOUCH_SENSITIVITY"`
	ViewBobbing      bool    `yaml:"view_bobbing" env:"VIEW_BOBBING"`
	GrabDistance     float32 `yaml:"grab_distance" env:"GRAB_DISTANCE"`
}

type CarveSettings struct {
	Radius     float32 `yaml:"radius" env:"RADIUS"`
	Strength   float32 `yaml:"strength" env:"STRENGTH"`
	Interval   float64 `yaml:"interval" env:"INTERVAL"` // seconds between carve events while held
	MinOpacity float32 `yaml:"min_opacity" env:"MIN_OPACITY"`
}

type LogSettings struct {
	Level       string `yaml:"level" env:"LEVEL"`
	Format      string `yaml:"format" env:"FORMAT"` // console or json
	Development bool   `yaml:"development" env:"DEVELOPMENT"`
}

type MeshingSettings struct {
	Workers   int `yaml:"workers" env:"WORKERS"` // 0 = build on the main thread
	QueueSize int `yaml:"queue_size" env:"QUEUE_SIZE"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window: WindowSettings{Width: 900, Height: 600, Title: "workshop"},
		Render: RenderSettings{FPSLimit: 120, FOV: 75},
		Controls: ControlSettings{
			MouseSensitivity: 0.1,
			TouchSensitivity: 0.25,
			ViewBobbing:      true,
			GrabDistance:     3.0,
		},
		Carve: CarveSettings{
			Radius:     0.15,
			Strength:   0.02,
			Interval:   1.0 / 30.0,
			MinOpacity: 0.35,
		},
		Log:     LogSettings{Level: "info", Format: "console"},
		Meshing: MeshingSettings{Workers: 2, QueueSize: 16},
	}
}

// Load builds Settings from defaults, the optional YAML file at path and the environment.
// A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return s, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: "WORKSHOP_"}); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate reports the first setting outside its allowed range.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, s.Window.Width, s.Window.Height)
	case s.Render.FPSLimit < 0:
		return fmt.Errorf("%w: fps_limit %d", ErrInvalidConfig, s.Render.FPSLimit)
	case s.Render.FOV < 30 || s.Render.FOV > 120:
		return fmt.Errorf("%w: fov %.1f", ErrInvalidConfig, s.Render.FOV)
	case s.Carve.Radius <= 0:
		return fmt.Errorf("%w: carve radius %.3f", ErrInvalidConfig, s.Carve.Radius)
	case s.Carve.Strength < 0:
		return fmt.Errorf("%w: carve strength %.3f", ErrInvalidConfig, s.Carve.Strength)
	case s.Carve.MinOpacity < 0 || s.Carve.MinOpacity > 1:
		return fmt.Errorf("%w: min_opacity %.2f", ErrInvalidConfig, s.Carve.MinOpacity)
	case s.Controls.GrabDistance <= 0:
		return fmt.Errorf("%w: grab_distance %.2f", ErrInvalidConfig, s.Controls.GrabDistance)
	case s.Meshing.Workers < 0 || s.Meshing.QueueSize < 0:
		return fmt.Errorf("%w: meshing workers=%d queue=%d", ErrInvalidConfig, s.Meshing.Workers, s.Meshing.QueueSize)
	}
	return nil
}
