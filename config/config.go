// Package config loads runtime settings from defaults, an optional TOML file,
// VIPONG_ environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

// ErrInvalidConfig is returned when a loaded value is out of range
var ErrInvalidConfig = errors.New("invalid config")

const (
	// DefaultConfigFile is read from the working directory if present
	DefaultConfigFile = "vi-pong.toml"
	// EnvPrefix prefixes environment overrides, e.g. VIPONG_AUDIO_ENABLED
	EnvPrefix = "VIPONG"
)

type Config struct {
	Audio   AudioConfig   `mapstructure:"audio"`
	Input   InputConfig   `mapstructure:"input"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AudioConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	MasterVolume int           `mapstructure:"master_volume"` // 0-100
	SampleRate   int           `mapstructure:"sample_rate"`
	Effects      EffectVolumes `mapstructure:"effects"`
}

type EffectVolumes struct {
	Wall   float64 `mapstructure:"wall"`
	Paddle float64 `mapstructure:"paddle"`
	Score  float64 `mapstructure:"score"`
}

type InputConfig struct {
	HoldMS int    `mapstructure:"hold_ms"`
	Keymap string `mapstructure:"keymap"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// NewFlagSet returns the command-line flags understood by Load
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP("config", "c", DefaultConfigFile, "path to TOML config file")
	flags.BoolP("debug", "d", false, "write debug log to the log directory")
	flags.Bool("mute", false, "start with sound disabled")
	flags.String("keymap", "", "path to TOML keymap overriding default keys")
	flags.String("log-dir", "logs", "directory for the debug log")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	return flags
}

// Load parses args and resolves the configuration
// A missing default config file is ignored, a missing explicit one is an error
func Load(args []string) (*Config, error) {
	flags := NewFlagSet("vi-pong")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return LoadFlags(flags)
}

// LoadFlags resolves the configuration from an already parsed flag set
func LoadFlags(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"log.debug":    "debug",
		"log.dir":      "log-dir",
		"input.keymap": "keymap",
		"metrics.addr": "metrics-addr",
	}
	for key, flag := range bindings {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	path := DefaultConfigFile
	explicit := false
	if f := flags.Lookup("config"); f != nil {
		path, explicit = f.Value.String(), f.Changed
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	// --mute wins over file and environment
	if f := flags.Lookup("mute"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("audio.enabled", false)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	a := audio.DefaultAudioConfig()
	return &Config{
		Audio: AudioConfig{
			Enabled:      a.Enabled,
			MasterVolume: int(a.MasterVolume * 100),
			SampleRate:   a.SampleRate,
			Effects: EffectVolumes{
				Wall:   a.EffectVolumes[core.SoundWallBounce],
				Paddle: a.EffectVolumes[core.SoundPaddleHit],
				Score:  a.EffectVolumes[core.SoundScore],
			},
		},
		Input: InputConfig{
			HoldMS: int(constant.KeyHoldDuration / time.Millisecond),
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.master_volume", d.Audio.MasterVolume)
	v.SetDefault("audio.sample_rate", d.Audio.SampleRate)
	v.SetDefault("audio.effects.wall", d.Audio.Effects.Wall)
	v.SetDefault("audio.effects.paddle", d.Audio.Effects.Paddle)
	v.SetDefault("audio.effects.score", d.Audio.Effects.Score)
	v.SetDefault("input.hold_ms", d.Input.HoldMS)
	v.SetDefault("input.keymap", d.Input.Keymap)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("metrics.addr", d.Metrics.Addr)
}

// Validate checks value ranges, wrapping ErrInvalidConfig
func (c *Config) Validate() error {
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return fmt.Errorf("%w: audio.master_volume %d out of range [0,100]", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d must be positive", ErrInvalidConfig, c.Audio.SampleRate)
	}
	effects := []struct {
		name string
		v    float64
	}{
		{"wall", c.Audio.Effects.Wall},
		{"paddle", c.Audio.Effects.Paddle},
		{"score", c.Audio.Effects.Score},
	}
	for _, e := range effects {
		if e.v < 0 || e.v > 1 {
			return fmt.Errorf("%w: audio.effects.%s %v out of range [0,1]", ErrInvalidConfig, e.name, e.v)
		}
	}
	hold := c.HoldDuration()
	if hold <= 0 || hold > constant.MaxKeyHoldDuration {
		return fmt.Errorf("%w: input.hold_ms %d out of range (0,%d]", ErrInvalidConfig,
			c.Input.HoldMS, constant.MaxKeyHoldDuration.Milliseconds())
	}
	if c.Log.Debug && c.Log.Dir == "" {
		return fmt.Errorf("%w: log.dir required when log.debug is set", ErrInvalidConfig)
	}
	return nil
}

// HoldDuration returns the movement key hold window
func (c *Config) HoldDuration() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// AudioSettings converts the audio section for the sound player
func (c *Config) AudioSettings() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		MasterVolume: float64(c.Audio.MasterVolume) / 100,
		SampleRate:   c.Audio.SampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundWallBounce: c.Audio.Effects.Wall,
			core.SoundPaddleHit:  c.Audio.Effects.Paddle,
			core.SoundScore:      c.Audio.Effects.Score,
		},
	}
}
