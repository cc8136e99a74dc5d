// Package config handles tool configuration loading and management.
package config

// Config holds all bake and preview settings.
type Config struct {
	Bake    BakeConfig    `yaml:"bake"`
	Render  RenderConfig  `yaml:"render"`
	Post    PostConfig    `yaml:"post"`
	Logging LoggingConfig `yaml:"logging"`
}

// BakeConfig holds environment baking settings.
type BakeConfig struct {
	IndirectSize   int     `yaml:"indirect_size"`
	IrradianceSize int     `yaml:"irradiance_size"`
	Samples        int     `yaml:"samples"`
	IrradianceStep float32 `yaml:"irradiance_step"`
	Workers        int     `yaml:"workers"` // 0 uses all CPUs
}

// RenderConfig holds preview rendering settings.
type RenderConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	ShadowMapSize int `yaml:"shadow_map_size"`
	Workers       int `yaml:"workers"`
}

// PostConfig holds the post-processing stack settings.
type PostConfig struct {
	Bloom          bool    `yaml:"bloom"`
	BloomThreshold float32 `yaml:"bloom_threshold"`
	BloomKnee      float32 `yaml:"bloom_knee"`
	BloomScale     float32 `yaml:"bloom_scale"`
	FXAA           bool    `yaml:"fxaa"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Bake: BakeConfig{
			IndirectSize:   384,
			IrradianceSize: 128,
			Samples:        1024,
			IrradianceStep: 0.05,
			Workers:        0,
		},
		Render: RenderConfig{
			Width:         1280,
			Height:        720,
			ShadowMapSize: 1024,
			Workers:       0,
		},
		Post: PostConfig{
			Bloom:          true,
			BloomThreshold: 3.5,
			BloomKnee:      1,
			BloomScale:     1,
			FXAA:           true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
