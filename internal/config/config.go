package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "WORKOUT"

// Config holds process options read from config.yaml and WORKOUT_* variables.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Clock    ClockConfig    `mapstructure:"clock"`
	Settings SettingsConfig `mapstructure:"settings"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ClockConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// SettingsConfig locates the user settings file.
type SettingsConfig struct {
	AppName string `mapstructure:"app_name"`
}

// Load reads configuration from paths (first match wins) and the environment.
// A missing config file is not an error.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	for _, path := range paths {
		if path != "" {
			v.AddConfigPath(path)
		}
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("clock.interval", "1s")
	v.SetDefault("settings.app_name", "WorkoutTimer")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Clock.Interval <= 0 {
		cfg.Clock.Interval = time.Second
	}
	return cfg, nil
}
