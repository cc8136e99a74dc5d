// Package main is the entry point for the lumen environment baker.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/ibl"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/internal/texture"
)

// envRadianceScale decodes 16-bit environment maps to linear radiance.
const envRadianceScale = 4.0

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
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: lumen-bake [options] <input image> <output.env>")
		os.Exit(1)
	}
	input, output := args[0], args[1]

	logger.Info("baking environment",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("indirect_size", cfg.Bake.IndirectSize),
		zap.Int("samples", cfg.Bake.Samples),
	)

	env, err := loadEquirect(input)
	if err != nil {
		logger.Error("failed to load environment map", zap.Error(err))
		os.Exit(1)
	}

	opts := ibl.BakeOptions{
		IndirectSize:   cfg.Bake.IndirectSize,
		IrradianceSize: cfg.Bake.IrradianceSize,
		Samples:        uint32(cfg.Bake.Samples),
		IrradianceStep: cfg.Bake.IrradianceStep,
		Workers:        cfg.Bake.Workers,
	}

	start := time.Now()
	baked := ibl.Bake(env, opts)
	logger.Info("bake finished", zap.Duration("elapsed", time.Since(start)))

	if err := saveBaked(baked, output); err != nil {
		logger.Error("failed to write baked environment", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("baked environment written", zap.String("path", output))
}

func loadEquirect(path string) (*texture.Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return texture.NewFromImage(img, envRadianceScale), nil
}

func saveBaked(baked *ibl.BakedEnvironment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return baked.Save(f)
}
