package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"airportmind/internal/core/anxiety"
	"airportmind/internal/core/model"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	envPrefix      = "AIRPORTMIND"
)

// ErrConfigExists is returned by SaveConfig when it must not overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// ConfigDirProvider resolves the OS-standard configuration directory.
type ConfigDirProvider interface {
	GetConfigDir() (string, error)
}

// ResolveConfigPath returns <config dir>/<appName>/config.yaml.
func ResolveConfigPath(provider ConfigDirProvider, appName string) (string, error) {
	configDir, err := provider.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

// LoadConfig reads configuration from YAML and AIRPORTMIND_* environment variables.
// If the config file does not exist, defaults plus environment are returned.
func LoadConfig(configPath string) (model.Config, error) {
	defaults := model.DefaultConfig()

	reader := viper.New()
	reader.SetConfigType("yaml")
	reader.SetEnvPrefix(envPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	reader.AutomaticEnv()
	setDefaults(reader, defaults)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			reader.SetConfigFile(configPath)
			if err := reader.ReadInConfig(); err != nil {
				return defaults, fmt.Errorf("parse config yaml: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return defaults, fmt.Errorf("read config file: %w", err)
		}
	}

	var config model.Config
	if err := reader.Unmarshal(&config); err != nil {
		return defaults, fmt.Errorf("decode config: %w", err)
	}

	applyDefaults(&config, defaults)
	return config, nil
}

// SaveConfig writes config to configPath as YAML.
func SaveConfig(configPath string, config model.Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("save config %s: %w", configPath, ErrConfigExists)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func setDefaults(reader *viper.Viper, defaults model.Config) {
	reader.SetDefault("breathing.tick_interval", defaults.Breathing.TickInterval)
	reader.SetDefault("sounds", defaults.Sounds)
	reader.SetDefault("chat.greeting", defaults.Chat.Greeting)
	reader.SetDefault("chat.reply", defaults.Chat.Reply)
	reader.SetDefault("anxiety.default_level", defaults.Anxiety.DefaultLevel)
	reader.SetDefault("window.width", defaults.Window.Width)
	reader.SetDefault("window.height", defaults.Window.Height)
	reader.SetDefault("logging.level", defaults.Logging.Level)
}

func applyDefaults(config *model.Config, defaults model.Config) {
	if config.Breathing.TickInterval < 10*time.Millisecond {
		config.Breathing.TickInterval = defaults.Breathing.TickInterval
	}

	sounds := config.Sounds[:0]
	for _, sound := range config.Sounds {
		if strings.TrimSpace(sound.Name) == "" || strings.TrimSpace(sound.Source) == "" {
			continue
		}
		sounds = append(sounds, sound)
	}
	config.Sounds = sounds
	if len(config.Sounds) == 0 {
		config.Sounds = defaults.Sounds
	}

	if strings.TrimSpace(config.Chat.Greeting) == "" {
		config.Chat.Greeting = defaults.Chat.Greeting
	}
	if strings.TrimSpace(config.Chat.Reply) == "" {
		config.Chat.Reply = defaults.Chat.Reply
	}

	if config.Anxiety.DefaultLevel < anxiety.MinLevel || config.Anxiety.DefaultLevel > anxiety.MaxLevel {
		config.Anxiety.DefaultLevel = defaults.Anxiety.DefaultLevel
	}

	if config.Window.Width < 320 {
		config.Window.Width = defaults.Window.Width
	}
	if config.Window.Height < 240 {
		config.Window.Height = defaults.Window.Height
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaults.Logging.Level
	}
}
