// Package main is the entry point for the headless frame driver.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gltypes/internal/config"
	"github.com/Faultbox/gltypes/internal/engine/model"
	"github.com/Faultbox/gltypes/internal/engine/scene"
	"github.com/Faultbox/gltypes/internal/logger"
	"github.com/Faultbox/gltypes/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== gltypes frame driver ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	s, err := loadScene(cfg.Scene.Path)
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	run(s, cfg)
	logger.Info("frame driver finished normally")
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		logger.Info("using built-in teapot scene")
		return scene.Teapot(), nil
	}
	return scene.Load(path)
}

// run evaluates the configured number of frames on a simulated clock.
func run(s *scene.Scene, cfg *config.Config) {
	proj := cfg.Projection()
	log := logger.Named("frame")

	logger.Info("projection",
		zap.String("kind", cfg.Viewport.Projection),
		logger.Vector2("viewport", math.Vec2{X: float32(cfg.Viewport.Width), Y: float32(cfg.Viewport.Height)}),
		logger.Matrix4("matrix", proj),
	)

	bounds := model.EmptyBounds()
	start := time.Now()
	for frame := 0; frame < cfg.Scene.Frames; frame++ {
		t := float32((time.Duration(frame) * cfg.Scene.FrameStep).Seconds())

		for i, u := range s.Evaluate(t, proj) {
			bounds = bounds.Add(u.Origin)
			world := math.Mat4(u.Model)
			clip := math.Vec4{X: u.Origin.X, Y: u.Origin.Y, Z: u.Origin.Z, W: 1}.Transform(proj.Mul(math.Mat4(u.Camera)))
			log.Debug("node",
				zap.Int("frame", frame),
				zap.Float32("t", t),
				zap.String("name", u.Name),
				logger.Vector3("origin", u.Origin),
				logger.Vector4("clip", clip),
				logger.Quaternion("rotation", model.LocalRotation(&s.Nodes[i], t)),
				logger.Matrix3("basis", math.Mat3FromMat4(world)),
				logger.Matrix4("model", world),
			)
		}
	}

	if bounds.Empty() {
		logger.Warn("no frames evaluated", zap.Int("frames", cfg.Scene.Frames), zap.Int("nodes", len(s.Nodes)))
		return
	}
	logger.Info("frames evaluated",
		zap.Int("frames", cfg.Scene.Frames),
		zap.Int("nodes", len(s.Nodes)),
		logger.Vector3("origin_min", bounds.Min),
		logger.Vector3("origin_max", bounds.Max),
		zap.Duration("elapsed", time.Since(start)),
	)
}
