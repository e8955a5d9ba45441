package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"workouttimer/internal/core/model"
	"workouttimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlBreakOption struct {
	Label   string `yaml:"label"`
	Seconds int    `yaml:"seconds"`
}

type yamlSettings struct {
	TimerDurationMinutes int               `yaml:"timer_duration_minutes"`
	TargetSets           int               `yaml:"target_sets"`
	StartMode            string            `yaml:"start_mode,omitempty"`
	BreakOptions         []yamlBreakOption `yaml:"break_options,omitempty"`
	SoundEnabled         *bool             `yaml:"sound_enabled,omitempty"`
	SoundVolume          *float64          `yaml:"sound_volume,omitempty"`
	NotificationsEnabled *bool             `yaml:"notifications_enabled,omitempty"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences for appName.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from a YAML file.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalize(), nil
}

// SaveSettings writes user preferences for appName.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to a YAML file.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Normalize()
	startMode := "timer"
	if settings.StartInSetsMode {
		startMode = "sets"
	}
	fileData := yamlSettings{
		TimerDurationMinutes: settings.TimerDurationMinutes,
		TargetSets:           settings.TargetSets,
		StartMode:            startMode,
		SoundEnabled:         &settings.SoundEnabled,
		SoundVolume:          &settings.SoundVolume,
		NotificationsEnabled: &settings.NotificationsEnabled,
	}
	for _, option := range settings.BreakOptions {
		fileData.BreakOptions = append(fileData.BreakOptions, yamlBreakOption{
			Label:   option.Label,
			Seconds: option.Seconds,
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.TimerDurationMinutes > 0 {
		settings.TimerDurationMinutes = fileData.TimerDurationMinutes
	}
	if fileData.TargetSets > 0 {
		settings.TargetSets = fileData.TargetSets
	}
	settings.StartInSetsMode = fileData.StartMode == "sets"

	if len(fileData.BreakOptions) > 0 {
		settings.BreakOptions = settings.BreakOptions[:0:0]
		for _, option := range fileData.BreakOptions {
			settings.BreakOptions = append(settings.BreakOptions, model.BreakOption{
				Label:   option.Label,
				Seconds: option.Seconds,
			})
		}
	}

	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.SoundVolume != nil {
		settings.SoundVolume = *fileData.SoundVolume
	}
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
}
