// Package config loads runtime settings from defaults, a TOML file, PATHRUNNER_ environment
// variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/easing"
)

// ErrInvalid reports an out-of-range configuration value
var ErrInvalid = errors.New("invalid configuration")

const (
	configName = "pathrunner"
	configType = "toml"
	envPrefix  = "PATHRUNNER"
)

// CurveConfig holds traversal settings
type CurveConfig struct {
	Resolution int           `mapstructure:"resolution"`
	Duration   time.Duration `mapstructure:"duration"`
	Easing     string        `mapstructure:"easing"`
}

// GizmoConfig holds runner marker and sample styling
type GizmoConfig struct {
	SphereRadius float64 `mapstructure:"sphereRadius"`
	Color        string  `mapstructure:"color"`
	SampleColor  string  `mapstructure:"sampleColor"`
}

// ViewConfig holds camera settings
type ViewConfig struct {
	Scale float64 `mapstructure:"scale"`
}

// FrameConfig holds the main loop cadence
type FrameConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// AudioConfig holds cue playback settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the validated runtime configuration
type Config struct {
	Curve CurveConfig `mapstructure:"curve"`
	Gizmo GizmoConfig `mapstructure:"gizmo"`
	View  ViewConfig  `mapstructure:"view"`
	Frame FrameConfig `mapstructure:"frame"`
	Audio AudioConfig `mapstructure:"audio"`
	Log   LogConfig   `mapstructure:"log"`
}

// SetDefaults registers default values for every key
func SetDefaults() {
	viper.SetDefault("curve.resolution", constants.DefaultCurveResolution)
	viper.SetDefault("curve.duration", constants.DefaultSegmentDuration)
	viper.SetDefault("curve.easing", "linear")

	viper.SetDefault("gizmo.sphereRadius", constants.DefaultSphereRadius)
	viper.SetDefault("gizmo.color", "red")
	viper.SetDefault("gizmo.sampleColor", "fuchsia")

	viper.SetDefault("view.scale", constants.DefaultViewScale)
	viper.SetDefault("frame.interval", constants.FrameUpdateInterval)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "pathrunner.log")
}

// RegisterFlags adds the command-line overrides to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", ".", "directory containing pathrunner.toml")
	fs.Int("resolution", constants.DefaultCurveResolution, "arc-length samples per segment")
	fs.Duration("duration", constants.DefaultSegmentDuration, "traversal time per segment")
	fs.String("easing", "linear", "easing preset: linear, ease-in, ease-out or 0-2")
	fs.Float64("scale", constants.DefaultViewScale, "terminal columns per world unit")
	fs.Bool("mute", false, "start with audio cues muted")
	fs.String("log-level", "info", "log level")
	fs.String("log-file", "pathrunner.log", "log file path")
}

// flag name -> config key
var flagKeys = map[string]string{
	"resolution": "curve.resolution",
	"duration":   "curve.duration",
	"easing":     "curve.easing",
	"scale":      "view.scale",
	"log-level":  "log.level",
	"log-file":   "log.file",
}

// BindFlags makes changed flags in fs override file and environment values
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads configuration from configDir and returns the validated result.
// A missing config file is not an error; defaults and environment still apply.
func Load(configDir string) (Config, error) {
	SetDefaults()

	viper.SetConfigName(configName)
	viper.SetConfigType(configType)
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.Curve.Resolution < 1:
		return fmt.Errorf("%w: curve.resolution must be at least 1, got %d", ErrInvalid, c.Curve.Resolution)
	case c.Curve.Duration <= 0:
		return fmt.Errorf("%w: curve.duration must be positive, got %s", ErrInvalid, c.Curve.Duration)
	case c.Gizmo.SphereRadius <= 0:
		return fmt.Errorf("%w: gizmo.sphereRadius must be positive, got %g", ErrInvalid, c.Gizmo.SphereRadius)
	case c.View.Scale <= 0:
		return fmt.Errorf("%w: view.scale must be positive, got %g", ErrInvalid, c.View.Scale)
	case c.Frame.Interval <= 0:
		return fmt.Errorf("%w: frame.interval must be positive, got %s", ErrInvalid, c.Frame.Interval)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	}
	if _, err := easing.ParsePreset(c.Curve.Easing); err != nil {
		return fmt.Errorf("%w: curve.easing: %v", ErrInvalid, err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// EasingPreset returns the parsed initial easing preset
func (c Config) EasingPreset() easing.Preset {
	p, err := easing.ParsePreset(c.Curve.Easing)
	if err != nil {
		return easing.Linear
	}
	return p
}
