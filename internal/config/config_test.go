package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/gltypes/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Viewport defaults
	if cfg.Viewport.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewport.Height)
	}
	if cfg.Viewport.FOV != 1.0 {
		t.Errorf("expected fov 1.0, got %f", cfg.Viewport.FOV)
	}
	if cfg.Viewport.Near != 0.1 || cfg.Viewport.Far != 1024 {
		t.Errorf("expected planes 0.1/1024, got %f/%f", cfg.Viewport.Near, cfg.Viewport.Far)
	}
	if cfg.Viewport.Projection != ProjectionPerspective {
		t.Errorf("expected perspective projection, got %s", cfg.Viewport.Projection)
	}

	// Scene defaults
	if cfg.Scene.Path != "" {
		t.Errorf("expected built-in scene, got %s", cfg.Scene.Path)
	}
	if cfg.Scene.Frames != 60 {
		t.Errorf("expected 60 frames, got %d", cfg.Scene.Frames)
	}
	if cfg.Scene.FrameStep != 16*time.Millisecond {
		t.Errorf("expected frame step 16ms, got %v", cfg.Scene.FrameStep)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewport:
  width: 1920
  height: 1080
  fov: 0.8
  near: 0.5
  far: 500
  projection: gl-perspective

scene:
  path: "scenes/teapot.toml"
  frames: 10
  frame_step: 33ms

logging:
  level: "debug"
  log_file: "frames.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewport.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Viewport.Height)
	}
	if cfg.Viewport.FOV != 0.8 {
		t.Errorf("expected fov 0.8, got %f", cfg.Viewport.FOV)
	}
	if cfg.Viewport.Far != 500 {
		t.Errorf("expected far 500, got %f", cfg.Viewport.Far)
	}
	if cfg.Viewport.Projection != ProjectionGLPerspective {
		t.Errorf("expected gl-perspective, got %s", cfg.Viewport.Projection)
	}

	if cfg.Scene.Path != "scenes/teapot.toml" {
		t.Errorf("expected scene path, got %s", cfg.Scene.Path)
	}
	if cfg.Scene.Frames != 10 {
		t.Errorf("expected 10 frames, got %d", cfg.Scene.Frames)
	}
	if cfg.Scene.FrameStep != 33*time.Millisecond {
		t.Errorf("expected frame step 33ms, got %v", cfg.Scene.FrameStep)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "frames.log" {
		t.Errorf("expected log file 'frames.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("viewport:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Viewport.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Viewport.Width)
	}
	// Unset keys keep their defaults.
	if cfg.Viewport.Height != 720 || cfg.Scene.Frames != 60 {
		t.Errorf("defaults lost: height %d, frames %d", cfg.Viewport.Height, cfg.Scene.Frames)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should load: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
viewport:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("viewport:\n  widht: 800\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for misspelled key, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Viewport.Width = 0 }, "viewport size"},
		{"negative height", func(c *Config) { c.Viewport.Height = -1 }, "viewport size"},
		{"near beyond far", func(c *Config) { c.Viewport.Near = 2000 }, "near plane"},
		{"near equals far", func(c *Config) { c.Viewport.Near = c.Viewport.Far }, "near plane"},
		{"zero fov", func(c *Config) { c.Viewport.FOV = 0 }, "fov"},
		{"unknown projection", func(c *Config) { c.Viewport.Projection = "fisheye" }, "unknown projection"},
		{"negative frames", func(c *Config) { c.Scene.Frames = -1 }, "frame count"},
		{"negative step", func(c *Config) { c.Scene.FrameStep = -time.Second }, "frame step"},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}

	// Orthographic projections ignore the field of view.
	cfg := Default()
	cfg.Viewport.Projection = ProjectionOrthographic
	cfg.Viewport.FOV = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("orthographic with zero fov should be valid: %v", err)
	}
}

func TestProjection(t *testing.T) {
	cfg := Default()

	tests := []struct {
		kind string
		want math.Mat4
	}{
		{ProjectionPerspective, math.ViewMatrix3D[float32](1280, 720, 1, 1024, 0.1)},
		{ProjectionGLPerspective, math.Perspective[float32](1, 1280.0/720.0, 0.1, 1024)},
		{ProjectionOrthographic, math.Ortho[float32](-1280.0/720.0, 1280.0/720.0, -1, 1, 0.1, 1024)},
		{Projection2D, math.ViewMatrix2D[float32](1280, 720)},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			cfg.Viewport.Projection = tt.kind
			got := cfg.Projection()
			for c := 0; c < 4; c++ {
				for r := 0; r < 4; r++ {
					if d := got[c][r] - tt.want[c][r]; d > 1e-6 || d < -1e-6 {
						t.Errorf("[%d][%d] = %v, want %v", c, r, got[c][r], tt.want[c][r])
					}
				}
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("viewport:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Viewport.Projection = Projection2D
	cfg.Scene.FrameStep = 40 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("saved config did not round trip:\ngot  %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config) error
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				return nil
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "scene flag",
			setup: func() {
				*flagScene = "orbit.yaml"
			},
			verify: func(cfg *Config) error {
				if cfg.Scene.Path != "orbit.yaml" {
					t.Errorf("expected scene orbit.yaml, got %s", cfg.Scene.Path)
				}
				return nil
			},
			teardown: func() {
				*flagScene = ""
			},
		},
		{
			name: "frames flag",
			setup: func() {
				*flagFrames = 0
			},
			verify: func(cfg *Config) error {
				if cfg.Scene.Frames != 0 {
					t.Errorf("expected 0 frames, got %d", cfg.Scene.Frames)
				}
				return nil
			},
			teardown: func() {
				*flagFrames = -1
			},
		},
		{
			name: "projection flag",
			setup: func() {
				*flagProjection = ProjectionOrthographic
			},
			verify: func(cfg *Config) error {
				if cfg.Viewport.Projection != ProjectionOrthographic {
					t.Errorf("expected orthographic, got %s", cfg.Viewport.Projection)
				}
				return nil
			},
			teardown: func() {
				*flagProjection = ""
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) error {
				if cfg.Viewport.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Viewport.Width)
				}
				if cfg.Viewport.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Viewport.Height)
				}
				return nil
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewport:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Viewport.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewport.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Viewport.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewport.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("viewport:\n  projection: fisheye\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an unknown projection")
	}
}
