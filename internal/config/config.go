package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/yulelog/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultUsername = "SaumilP"
	DefaultPastDays = 365
	DefaultSpeed    = 1
	DefaultSmoke    = 5
	DefaultAPIURL   = "https://api.github.com"
	DefaultTimeout  = 10 * time.Second

	MinSpeed = 1
	MaxSpeed = 10
	MinSmoke = 0
	MaxSmoke = 20

	RendererTcell = "tcell"
	RendererTea   = "tea"
)

// ErrParameterBounds indicates a setting outside its valid range.
var ErrParameterBounds = errors.New("config: parameter out of valid bounds")

type Config struct {
	Username string        `yaml:"username"`
	PastDays int           `yaml:"past_days"`
	Contribs bool          `yaml:"contribs"`
	Speed    int           `yaml:"speed"`
	Smoke    int           `yaml:"smoke"`
	NoTicker bool          `yaml:"no_ticker"`
	Offline  bool          `yaml:"offline"`
	Renderer string        `yaml:"renderer"`
	Seed     int64         `yaml:"seed"`
	APIURL   string        `yaml:"api_url"`
	Timeout  time.Duration `yaml:"timeout"`
	Log      LogConfig     `yaml:"log"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Username: DefaultUsername,
		PastDays: DefaultPastDays,
		Speed:    DefaultSpeed,
		Smoke:    DefaultSmoke,
		Renderer: RendererTcell,
		APIURL:   DefaultAPIURL,
		Timeout:  DefaultTimeout,
		Log: LogConfig{
			Level: "info",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed must be in %d..%d, got %d", ErrParameterBounds, MinSpeed, MaxSpeed, c.Speed)
	}
	if c.Smoke < MinSmoke || c.Smoke > MaxSmoke {
		return fmt.Errorf("%w: smoke must be in %d..%d, got %d", ErrParameterBounds, MinSmoke, MaxSmoke, c.Smoke)
	}
	if c.PastDays < 0 {
		return fmt.Errorf("%w: past_days must not be negative, got %d", ErrParameterBounds, c.PastDays)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %v", ErrParameterBounds, c.Timeout)
	}
	switch c.Renderer {
	case RendererTcell, RendererTea:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrParameterBounds, c.Renderer)
	}
	return nil
}

// Animation builds the immutable bundle the frame loop consumes.
func (c *Config) Animation(numEvents int, message, meta string, haveTicker bool) sim.Config {
	return sim.Config{
		Contribs:   c.Contribs,
		Message:    message,
		Meta:       meta,
		HaveTicker: haveTicker && !c.NoTicker,
		Speed:      c.Speed,
		NumEvents:  numEvents,
		Smoke:      c.Smoke,
	}
}
