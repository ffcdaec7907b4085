package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var ErrConfigNotFound = errors.New("config not found")

func isNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	appDir := filepath.Join(configDir, "colorcontrast")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(appDir, "config.toml"), nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom decodes the file at configPath on top of DefaultConfig, so keys
// the user leaves out keep their default values.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	log.Printf("Config: loading configuration from %s", configPath)
	config := DefaultConfig()
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	for _, key := range meta.Undecoded() {
		log.Printf("Config: ignoring unknown key %s", key)
	}

	log.Printf("Config: configuration loaded successfully")
	return config, nil
}

// LoadOrDefault is Load, falling back to DefaultConfig when no file exists.
func LoadOrDefault() (*Config, error) {
	config, err := Load()
	if errors.Is(err, ErrConfigNotFound) {
		log.Printf("Config: no configuration file, using defaults")
		return DefaultConfig(), nil
	}
	return config, err
}

// Save writes config to the user config path.
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(configPath, config)
}

func SaveTo(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(configHeader); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to write config content: %w", err)
	}
	return nil
}

const configHeader = `# ColorContrast configuration
#
# [defaults]       starting foreground/background colors ("#RRGGBB" or "#RRGGBBAA")
# [check]          min_opacity: alpha under which no contrast ratio is computed (0..1)
# [display]        theme: "auto", "light" or "dark"; show_advice: print a recommendation
# [history]        size: recently used colors remembered by "colorcontrast pick" (1..64)
# [notifications]  type: "desktop", "log" or "none"; used by "colorcontrast watch"

`
