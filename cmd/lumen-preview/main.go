// Package main is the entry point for the lumen preview renderer. It
// shades a sphere grid sweeping roughness and metallic, runs the post
// stack, and writes a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/ibl"
	"github.com/Faultbox/lumen/internal/light"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/internal/pbr"
	"github.com/Faultbox/lumen/internal/post"
	"github.com/Faultbox/lumen/internal/render"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: lumen-preview [options] <output.png> [baked.env]")
		os.Exit(1)
	}
	output := args[0]

	scene := buildScene()
	if len(args) == 2 {
		env, err := loadBaked(args[1])
		if err != nil {
			logger.Error("failed to load baked environment", zap.Error(err))
			os.Exit(1)
		}
		scene.Environment = env
	}

	r := render.NewRenderer(cfg.Render.Width, cfg.Render.Height)
	r.Workers = cfg.Render.Workers
	r.ShadowMapSize = cfg.Render.ShadowMapSize

	logger.Info("rendering preview",
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height),
		zap.Int("spheres", len(scene.Spheres)),
	)

	start := time.Now()
	frame := r.Render(&scene)
	logger.Info("shading finished", zap.Duration("elapsed", time.Since(start)))

	frame = runPost(frame, cfg)

	if err := writePNG(frame, output); err != nil {
		logger.Error("failed to write image", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("preview written", zap.String("path", output))
}

// buildScene lays out a 5x5 sphere grid sweeping roughness across
// columns and metallic down rows, under an overhead sun.
func buildScene() render.Scene {
	scene := render.NewScene()
	scene.Camera.Position = math.Vec3{Z: 16}
	scene.Directional = []light.DirectionalLight{light.NewDirectionalLight()}

	const grid = 5
	for row := 0; row < grid; row++ {
		for col := 0; col < grid; col++ {
			mat := pbr.NewStandardMaterial()
			mat.Roughness = float32(col) / (grid - 1)
			mat.Metallic = float32(row) / (grid - 1)
			scene.Spheres = append(scene.Spheres, render.Sphere{
				Center: math.Vec3{
					X: (float32(col) - (grid-1)/2.0) * 2.5,
					Y: (float32(row) - (grid-1)/2.0) * 2.5,
				},
				Radius:   1,
				Material: mat,
			})
		}
	}
	return scene
}

func runPost(frame *texture.Texture2D, cfg *config.Config) *texture.Texture2D {
	workers := cfg.Render.Workers
	if cfg.Post.Bloom {
		frame = post.Bloom(frame, post.BloomSettings{
			Threshold: cfg.Post.BloomThreshold,
			Knee:      cfg.Post.BloomKnee,
			Scale:     cfg.Post.BloomScale,
		}, workers)
	}
	frame = post.Tonemap(frame, workers)
	if cfg.Post.FXAA {
		frame = post.FXAA(frame, post.DefaultFXAASettings(), workers)
	}
	return frame
}

func loadBaked(path string) (*ibl.BakedEnvironment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ibl.Load(f)
}

// writePNG encodes an LDR frame with sRGB-ish gamma.
func writePNG(frame *texture.Texture2D, path string) error {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			c := frame.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: encodeChannel(c.X),
				G: encodeChannel(c.Y),
				B: encodeChannel(c.Z),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func encodeChannel(v float32) uint8 {
	v = math.Pow(math.Saturate(v), 1/2.2)
	return uint8(v*255 + 0.5)
}
