// Package config handles application configuration loading and management.
package config

// Config holds all clipterra settings. Clipmap dimensions (level count,
// grid size, block size) are compile-time constants in the clipmap
// package and deliberately not configurable here.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds fly-camera settings.
type CameraConfig struct {
	Speed       float32 `yaml:"speed"`        // world units per second
	StartHeight float32 `yaml:"start_height"` // initial altitude over the terrain
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1200,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Speed:       300.0,
			StartHeight: 500.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
