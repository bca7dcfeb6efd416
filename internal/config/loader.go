package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the configuration for a maze id.
// Search order: customPath -> ~/.mazeblast/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func LoadMaze(mazeID, customPath string) (MazeConfig, error) {
	if customPath != "" {
		return LoadMazeFile(customPath)
	}

	filename := mazeID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := LoadMazeFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadMazeFile(filepath.Join("configs", filename)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	data := GetDefaultYAML(mazeID)
	if data == nil {
		return MazeConfig{}, fmt.Errorf("config: no configuration for maze %q", mazeID)
	}
	cfg, err := decodeMaze(data)
	if err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadMazeFile loads a maze configuration from a YAML file.
func LoadMazeFile(path string) (MazeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decodeMaze(data)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// decodeMaze decodes YAML on top of the hardcoded defaults.
func decodeMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazeblast", "configs", filename)
}
