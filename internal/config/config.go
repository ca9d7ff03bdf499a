// Package config loads the volnita configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/volnita/volnita/internal/models"
	"github.com/volnita/volnita/internal/theme"
	"github.com/volnita/volnita/internal/utils"
)

// AppConfig defines the global volnita configuration options.
type AppConfig struct {
	Theme          string            // Theme name: see AvailableThemes in internal/theme
	DebugLog       string            // Debug log file, empty disables logging
	RecentFile     string            // Overrides the recent repositories file location
	Remote         string            // Remote used for the URL column (default: origin)
	RelativeDates  bool              // Show "3 days ago" instead of absolute dates (default: true)
	CommandAliases map[string]string // Extra command names for the commit browser, alias -> command
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Remote:         "origin",
		RelativeDates:  true,
		CommandAliases: map[string]string{},
	}
}

// Dir returns the volnita configuration directory.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, models.AppName)
	}
	return filepath.Join(xdg.ConfigHome, models.AppName)
}

// RecentPath returns where the recent repositories are stored.
func (c *AppConfig) RecentPath() string {
	if c.RecentFile != "" {
		return c.RecentFile
	}
	return filepath.Join(Dir(), models.RecentFilename)
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func trimmedString(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func parseAliases(value any) map[string]string {
	aliases := map[string]string{}
	raw, ok := value.(map[string]any)
	if !ok {
		return aliases
	}
	for alias, target := range raw {
		alias = strings.TrimSpace(alias)
		name, ok := target.(string)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if alias == "" || name == "" || strings.ContainsAny(alias, " \t") {
			continue
		}
		aliases[alias] = name
	}
	return aliases
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()

	if themeName := trimmedString(data, "theme"); themeName != "" {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}
	if debugLog := trimmedString(data, "debug_log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}
	if recent := trimmedString(data, "recent_file"); recent != "" {
		if expanded, err := utils.ExpandPath(recent); err == nil {
			recent = expanded
		}
		cfg.RecentFile = recent
	}
	if remote := trimmedString(data, "remote"); remote != "" {
		cfg.Remote = remote
	}
	cfg.RelativeDates = coerceBool(data["relative_dates"], cfg.RelativeDates)
	cfg.CommandAliases = parseAliases(data["command_aliases"])

	return cfg
}

// LoadConfig reads the application configuration from a YAML file. An empty
// configPath searches the default locations. A missing or unparsable file
// yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := filepath.Clean(Dir())

	var paths []string
	if configPath != "" {
		expanded, err := utils.ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !utils.IsPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, models.ConfigFilename),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		// #nosec G304 -- path is constrained to the config directory
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
		}
		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
