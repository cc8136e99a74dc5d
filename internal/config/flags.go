package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Output width")
	flagHeight  = flag.Int("height", 0, "Output height")
	flagSamples = flag.Int("samples", 0, "Prefilter sample count")
	flagWorkers = flag.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	flagNoBloom = flag.Bool("no-bloom", false, "Disable bloom")
	flagNoFXAA  = flag.Bool("no-fxaa", false, "Disable antialiasing")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagSamples > 0 {
		cfg.Bake.Samples = *flagSamples
	}
	if *flagWorkers > 0 {
		cfg.Bake.Workers = *flagWorkers
		cfg.Render.Workers = *flagWorkers
	}
	if *flagNoBloom {
		cfg.Post.Bloom = false
	}
	if *flagNoFXAA {
		cfg.Post.FXAA = false
	}
}
