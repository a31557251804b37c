// Package config handles frame driver configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/gltypes/internal/logger"
	"github.com/Faultbox/gltypes/pkg/math"
)

// Projection kinds accepted by ViewportConfig.Projection.
const (
	ProjectionPerspective   = "perspective"    // ViewMatrix3D, clip w = +z
	ProjectionGLPerspective = "gl-perspective" // OpenGL right-handed, clip w = -z
	ProjectionOrthographic  = "orthographic"
	Projection2D            = "2d"
)

// Config holds all frame driver settings.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewportConfig holds the output size and projection settings.
type ViewportConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FOV        float32 `yaml:"fov"` // radians
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Projection string  `yaml:"projection"`
}

// SceneConfig selects the scene and how many frames to evaluate.
type SceneConfig struct {
	Path      string        `yaml:"path"` // empty means the built-in teapot
	Frames    int           `yaml:"frames"`
	FrameStep time.Duration `yaml:"frame_step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:      1280,
			Height:     720,
			FOV:        1.0,
			Near:       0.1,
			Far:        1024,
			Projection: ProjectionPerspective,
		},
		Scene: SceneConfig{
			Path:      "",
			Frames:    60,
			FrameStep: 16 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot produce a usable projection
// or frame loop.
func (c *Config) Validate() error {
	var errs []error

	v := c.Viewport
	if v.Width <= 0 || v.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport size %dx%d must be positive", v.Width, v.Height))
	}
	if v.Near >= v.Far {
		errs = append(errs, fmt.Errorf("near plane %v must be closer than far plane %v", v.Near, v.Far))
	}
	switch v.Projection {
	case ProjectionPerspective, ProjectionGLPerspective:
		if v.FOV <= 0 {
			errs = append(errs, fmt.Errorf("fov %v must be positive", v.FOV))
		}
	case ProjectionOrthographic, Projection2D:
	default:
		errs = append(errs, fmt.Errorf("unknown projection %q", v.Projection))
	}

	if c.Scene.Frames < 0 {
		errs = append(errs, fmt.Errorf("frame count %d must not be negative", c.Scene.Frames))
	}
	if c.Scene.FrameStep < 0 {
		errs = append(errs, fmt.Errorf("frame step %v must not be negative", c.Scene.FrameStep))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Projection builds the configured projection matrix. Call Validate first;
// an unknown projection kind falls back to the perspective one.
func (c *Config) Projection() math.Mat4 {
	v := c.Viewport
	w, h := uint32(v.Width), uint32(v.Height)
	aspect := float32(v.Width) / float32(v.Height)

	switch v.Projection {
	case ProjectionGLPerspective:
		return math.Perspective(v.FOV, aspect, v.Near, v.Far)
	case ProjectionOrthographic:
		return math.Ortho(-aspect, aspect, -1, 1, v.Near, v.Far)
	case Projection2D:
		return math.ViewMatrix2D[float32](w, h)
	default:
		return math.ViewMatrix3D(w, h, v.FOV, v.Far, v.Near)
	}
}
