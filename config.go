package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	configFileName        = ".netcanvasrc.toml"
	defaultSelectionGrace = 200 // milliseconds
)

type Config struct {
	SaveDirectory    string `toml:"save_directory"`
	SelectionGraceMs int    `toml:"selection_grace_ms"`
	AllowSelfLoops   bool   `toml:"allow_self_loops"`
	CopyOnConnect    bool   `toml:"copy_on_connect"`
	NotifyFile       string `toml:"notify_file"`
	LogFile          string `toml:"log_file"`
	Theme            Theme  `toml:"theme"`
}

// Theme holds lipgloss colour strings for the overlay.
type Theme struct {
	Annotation string `toml:"annotation"`
	Outline    string `toml:"outline"`
	Control    string `toml:"control"`
	Arrow      string `toml:"arrow"`
	Snapped    string `toml:"snapped"`
	Edge       string `toml:"edge"`
	Selection  string `toml:"selection"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory:    "",
		SelectionGraceMs: defaultSelectionGrace,
		AllowSelfLoops:   false,
		CopyOnConnect:    false,
		Theme: Theme{
			Annotation: "#5f87af",
			Outline:    "#303f5f",
			Control:    "#ffaf00",
			Arrow:      "#ff5f87",
			Snapped:    "#5fff87",
			Edge:       "#af87ff",
			Selection:  "#585858",
		},
	}
}

// loadConfig reads path, or ~/.netcanvasrc.toml when path is empty. A missing
// or unreadable file yields the defaults.
func loadConfig(path string) *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if path == "" {
		if err != nil {
			return config
		}
		path = filepath.Join(homeDir, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}
	if _, err := toml.Decode(string(data), config); err != nil {
		return defaultConfig()
	}

	if config.SelectionGraceMs < 0 {
		config.SelectionGraceMs = defaultSelectionGrace
	}
	config.SaveDirectory = expandPath(config.SaveDirectory, homeDir)
	config.NotifyFile = expandPath(config.NotifyFile, homeDir)
	config.LogFile = expandPath(config.LogFile, homeDir)
	return config
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) SelectionGrace() time.Duration {
	return time.Duration(c.SelectionGraceMs) * time.Millisecond
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
