package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "20:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon","Tue",...]
	Holidays []string `mapstructure:"holidays"` // ["2026-12-25"]
}

type PrivacyConfig struct {
	EncryptConfide bool   `mapstructure:"encrypt_confide"`
	Passphrase     string `mapstructure:"passphrase"` // usually MINDCLEAN_PRIVACY_PASSPHRASE
}

type Config struct {
	DataDir     string         `mapstructure:"data_dir"`
	Timezone    string         `mapstructure:"timezone"` // e.g. "Europe/Paris" (optional)
	DefaultMode string         `mapstructure:"default_mode"`
	LogLevel    string         `mapstructure:"log_level"`
	Reminder    ReminderConfig `mapstructure:"reminder"`
	Privacy     PrivacyConfig  `mapstructure:"privacy"`
}

func Default() Config {
	dataDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".local", "share", "mindclean")
	}
	return Config{
		DataDir:     dataDir,
		DefaultMode: "dump",
		LogLevel:    "warn",
		Reminder: ReminderConfig{
			Enabled:  true,
			Time:     "20:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Holidays: []string{},
		},
	}
}

// DefaultPath is ~/.config/mindclean/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mindclean", "config.yaml"), nil
}

// Load reads the default config file, if any, plus MINDCLEAN_* environment overrides.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("MINDCLEAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("default_mode", cfg.DefaultMode)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("privacy.encrypt_confide", cfg.Privacy.EncryptConfide)
	v.SetDefault("privacy.passphrase", cfg.Privacy.Passphrase)

	if err := v.ReadInConfig(); err != nil {
		// ok if missing
		if _, statErr := os.Stat(path); statErr == nil {
			return cfg, fmt.Errorf("config read %s: %w", path, err)
		}
	}
	// viper already holds every default; start from zero so slices are not merged
	cfg = Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	// normalize workdays
	days := cfg.Reminder.Workdays[:0]
	for _, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) < 3 {
			continue
		}
		days = append(days, strings.ToUpper(d[:1])+strings.ToLower(d[1:3]))
	}
	cfg.Reminder.Workdays = days
	cfg.DataDir = expandHome(cfg.DataDir)
	return cfg, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// SlogLevel maps log_level to a slog level; unknown values mean warn.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
