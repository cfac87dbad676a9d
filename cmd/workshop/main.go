package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"workshop/internal/config"
	"workshop/internal/game"
	"workshop/internal/input"
	"workshop/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "workshop.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Apply(cfg)

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("workshop exited", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Settings, log *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := game.NewApp(window, input.NewInputManager(), cfg, log)
	if err != nil {
		return err
	}
	game.SetupInputHandlers(app)

	log.Info("window ready",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("fps_limit", config.GetFPSLimit()),
	)
	app.Run()
	return nil
}
