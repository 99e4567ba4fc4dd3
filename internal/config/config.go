package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultSoundsDir        = "sounds"
	DefaultDataRoot         = "."
	DefaultSectionsRef      = "data/sections.json"
	DefaultFade             = 300 * time.Millisecond
	DefaultProgressInterval = 100 * time.Millisecond
	DefaultFrameRate        = 60
	DefaultSampleRate       = 44100
	DefaultSpeakerBuffer    = 100 * time.Millisecond
	DefaultCancelKey        = "esc"
	DefaultLogLevel         = "info"
)

type Config struct {
	SoundsDir      string `koanf:"sounds_dir"`      // directory clip files are resolved against
	Data           string `koanf:"data"`            // directory or http(s) base URL holding the catalog
	Sections       string `koanf:"sections"`        // sections index reference, relative to data
	DefaultSection string `koanf:"default_section"` // section ref used when nothing is persisted

	FadeMs             int `koanf:"fade_ms"`
	ProgressIntervalMs int `koanf:"progress_interval_ms"`
	FrameRate          int `koanf:"frame_rate"` // fade ticks per second

	SampleRate      int      `koanf:"sample_rate"`
	SpeakerBufferMs int      `koanf:"speaker_buffer_ms"`
	Volume          *float64 `koanf:"volume"` // initial clip volume, 0..1 (default: 1)

	Log  LogConfig  `koanf:"log"`
	Keys KeysConfig `koanf:"keys"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name (default: "info")
	File  string `koanf:"file"`  // empty means the XDG state dir
}

// KeysConfig holds keybinding overrides.
type KeysConfig struct {
	Cancel string `koanf:"cancel"` // global stop key (default: "esc")
}

// Load reads the config files in priority order. A non-empty override path is
// loaded last and must exist.
func Load(override string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if override != "" {
		override = expandPath(override)
		if _, err := os.Stat(override); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(override), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in local paths; URLs pass through untouched
	cfg.SoundsDir = expandPath(cfg.SoundsDir)
	cfg.Data = expandPath(cfg.Data)
	cfg.Log.File = expandPath(cfg.Log.File)

	// Normalize base URLs (remove trailing slash)
	cfg.Data = strings.TrimSuffix(cfg.Data, "/")
	cfg.SoundsDir = strings.TrimSuffix(cfg.SoundsDir, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/botonera/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "botonera", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func (c *Config) GetSoundsDir() string {
	if c.SoundsDir == "" {
		return DefaultSoundsDir
	}
	return c.SoundsDir
}

func (c *Config) GetDataRoot() string {
	if c.Data == "" {
		return DefaultDataRoot
	}
	return c.Data
}

func (c *Config) GetSectionsRef() string {
	if c.Sections == "" {
		return DefaultSectionsRef
	}
	return c.Sections
}

func (c *Config) GetFadeDuration() time.Duration {
	if c.FadeMs <= 0 {
		return DefaultFade
	}
	return time.Duration(c.FadeMs) * time.Millisecond
}

func (c *Config) GetProgressInterval() time.Duration {
	if c.ProgressIntervalMs <= 0 {
		return DefaultProgressInterval
	}
	return time.Duration(c.ProgressIntervalMs) * time.Millisecond
}

// GetFrameInterval converts frame_rate into the fade tick interval.
func (c *Config) GetFrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 || rate > 1000 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

func (c *Config) GetSampleRate() int {
	if c.SampleRate < 8000 || c.SampleRate > 192000 {
		return DefaultSampleRate
	}
	return c.SampleRate
}

func (c *Config) GetSpeakerBuffer() time.Duration {
	if c.SpeakerBufferMs <= 0 {
		return DefaultSpeakerBuffer
	}
	return time.Duration(c.SpeakerBufferMs) * time.Millisecond
}

// GetVolume returns the initial clip volume clamped to 0..1.
func (c *Config) GetVolume() float64 {
	if c.Volume == nil {
		return 1
	}
	return max(0, min(1, *c.Volume))
}

func (c *Config) GetCancelKey() string {
	if c.Keys.Cancel == "" {
		return DefaultCancelKey
	}
	return c.Keys.Cancel
}

func (c *Config) GetLogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.Log.Level)
}
