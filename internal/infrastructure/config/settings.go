package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds tool settings read from settings.yaml
type Settings struct {
	Data    DataSettings    `yaml:"data"`
	Logging LoggingSettings `yaml:"logging"`
	Workers int             `yaml:"workers"` // concurrent stage extractions, 0 means unlimited
}

type DataSettings struct {
	Dir string `yaml:"dir"`
}

type LoggingSettings struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultSettings returns settings with default values
func DefaultSettings() *Settings {
	return &Settings{
		Data:    DataSettings{Dir: "data"},
		Logging: LoggingSettings{Level: "info"},
		Workers: 4,
	}
}

// LoadSettings reads path over the defaults. An empty path yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}

// Override applies command line values; zero values leave the setting untouched
func (s *Settings) Override(dataDir string, debug bool) {
	if dataDir != "" {
		s.Data.Dir = dataDir
	}
	if debug {
		s.Logging.Level = "debug"
	}
}

// SaveTo writes the settings to path, creating parent directories
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
