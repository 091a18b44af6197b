package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension. Anything that
// is not .toml is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default.
//
// Files only need to contain the keys they override; everything else keeps
// its default value. A custom path that cannot be read or parsed is an
// error. Broken files found by the search are skipped.
func Load(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Decode(data, FormatFromPath(customPath))
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Decode(data, FormatFromPath(path)); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Decode(defaultFlappyYAML, FormatYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Decode parses data over the built-in defaults.
func Decode(data []byte, format Format) (FlappyConfig, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return FlappyConfig{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FlappyConfig{}, err
		}
	}
	return cfg, nil
}

// Encode serializes cfg in the given format.
func Encode(cfg FlappyConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
	return buf.Bytes(), nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".flappy", "configs")
		paths = append(paths, filepath.Join(dir, "flappy.yaml"), filepath.Join(dir, "flappy.toml"))
	}
	return append(paths, filepath.Join("configs", "flappy.yaml"), filepath.Join("configs", "flappy.toml"))
}
