// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultShowDeadline — момент (YYYYMMDDhhmm), после которого запускаются фигурные залпы.
const DefaultShowDeadline = 202501010000

// RingSettings описывает кольцевой залп.
type RingSettings struct {
	Enabled  bool    `mapstructure:"enabled"`
	Deadline int64   `mapstructure:"deadline"`
	Count    int     `mapstructure:"count"`
	Radius   float64 `mapstructure:"radius"`
}

// HeartSettings описывает залп в форме сердца.
type HeartSettings struct {
	Enabled  bool          `mapstructure:"enabled"`
	Deadline int64         `mapstructure:"deadline"`
	Count    int           `mapstructure:"count"`
	Size     float64       `mapstructure:"size"`
	Duration time.Duration `mapstructure:"duration"`
}

// Settings — параметры запуска, собранные из файла, окружения и флагов.
type Settings struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	TPS          int     `mapstructure:"tps"`
	Seed         int64   `mapstructure:"seed"`
	FadeAlpha    float64 `mapstructure:"fadeAlpha"`
	AmbientEvery int     `mapstructure:"ambientEvery"`
	PointerEvery int     `mapstructure:"pointerEvery"`
	HUD          bool    `mapstructure:"hud"`
	Sound        bool    `mapstructure:"sound"`
	LogLevel     string  `mapstructure:"logLevel"`
	LogFile      string  `mapstructure:"logFile"`
	GraylogAddr  string  `mapstructure:"graylogAddr"`

	Ring  RingSettings  `mapstructure:"ring"`
	Heart HeartSettings `mapstructure:"heart"`
}

// SetDefaults регистрирует значения по умолчанию.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", ScreenWidth)
	v.SetDefault("height", ScreenHeight)
	v.SetDefault("tps", TPS)
	v.SetDefault("seed", 0)
	v.SetDefault("fadeAlpha", 0.5)
	v.SetDefault("ambientEvery", 3)
	v.SetDefault("pointerEvery", 5)
	v.SetDefault("hud", false)
	v.SetDefault("sound", true)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("graylogAddr", "")

	v.SetDefault("ring.enabled", true)
	v.SetDefault("ring.deadline", DefaultShowDeadline)
	v.SetDefault("ring.count", 20)
	v.SetDefault("ring.radius", 200.0)

	v.SetDefault("heart.enabled", true)
	v.SetDefault("heart.deadline", DefaultShowDeadline)
	v.SetDefault("heart.count", 80)
	v.SetDefault("heart.size", 25.0)
	v.SetDefault("heart.duration", "3s")
}

// Flags описывает флаги командной строки. Имена совпадают с ключами конфигурации.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (json, yaml or toml)")
	fs.Int("width", ScreenWidth, "canvas width in pixels")
	fs.Int("height", ScreenHeight, "canvas height in pixels")
	fs.Int("tps", TPS, "simulation ticks per second")
	fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fs.Bool("hud", false, "show the HUD on start")
	fs.Bool("sound", true, "play a sound for every burst")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-file", "", "write logs to this file instead of stderr")
	fs.String("graylog-addr", "", "also send logs to this GELF UDP endpoint (host:port)")
	fs.Int64("ring-deadline", DefaultShowDeadline, "YYYYMMDDhhmm after which the ring show fires")
	fs.Int64("heart-deadline", DefaultShowDeadline, "YYYYMMDDhhmm after which the heart show fires")
	return fs
}

// flagKeys сопоставляет имена флагов ключам viper.
var flagKeys = map[string]string{
	"width":          "width",
	"height":         "height",
	"tps":            "tps",
	"seed":           "seed",
	"hud":            "hud",
	"sound":          "sound",
	"log-level":      "logLevel",
	"log-file":       "logFile",
	"graylog-addr":   "graylogAddr",
	"ring-deadline":  "ring.deadline",
	"heart-deadline": "heart.deadline",
}

// Load собирает Settings. Приоритет: флаги, переменные окружения FIREWORKS_*,
// файл конфигурации, значения по умолчанию. fs может быть nil.
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("FIREWORKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flagName, key := range flagKeys {
			if f := fs.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}
		}
		if path, err := fs.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate проверяет значения и округляет число снарядов сердца до чётного.
func (s *Settings) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %dx%d", s.Width, s.Height))
	}
	if s.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", s.TPS))
	}
	if s.FadeAlpha < 0 || s.FadeAlpha > 1 {
		errs = append(errs, fmt.Errorf("fadeAlpha must be within [0, 1], got %g", s.FadeAlpha))
	}
	if s.AmbientEvery < 0 || s.PointerEvery < 0 {
		errs = append(errs, errors.New("launch intervals must not be negative"))
	}
	if s.Ring.Count <= 0 {
		errs = append(errs, fmt.Errorf("ring.count must be positive, got %d", s.Ring.Count))
	}
	if s.Heart.Count < 2 {
		errs = append(errs, fmt.Errorf("heart.count must be at least 2, got %d", s.Heart.Count))
	}
	if s.Heart.Duration <= 0 {
		errs = append(errs, fmt.Errorf("heart.duration must be positive, got %s", s.Heart.Duration))
	}
	s.Heart.Count -= s.Heart.Count % 2
	return errors.Join(errs...)
}
