package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		PageBackground string `toml:"page_background"`
		PageEdge       string `toml:"page_edge"`
		PageNumber     string `toml:"page_number"`
		Text           string `toml:"text"`
		SpanText       string `toml:"span_text"`
		Selection      string `toml:"selection"`
		Caret          string `toml:"caret"`
		SearchMatch    string `toml:"search_match"`
		StatusMode     string `toml:"status_mode"`
		StatusMessage  string `toml:"status_message"`
		StatusModified string `toml:"status_modified"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	// User config directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "foliate", "themes"))
	}

	// User local share directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "foliate", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	// Start with Tokyo Night as base
	base := TokyoNight()

	if config.Colors.PageBackground != "" {
		base.Colors.PageBackground = ParseColorString(config.Colors.PageBackground)
	}
	if config.Colors.PageEdge != "" {
		base.Colors.PageEdge = ParseColorString(config.Colors.PageEdge)
	}
	if config.Colors.PageNumber != "" {
		base.Colors.PageNumber = ParseColorString(config.Colors.PageNumber)
	}
	if config.Colors.Text != "" {
		base.Colors.Text = ParseColorString(config.Colors.Text)
	}
	if config.Colors.SpanText != "" {
		base.Colors.SpanText = ParseColorString(config.Colors.SpanText)
	}
	if config.Colors.Selection != "" {
		base.Colors.Selection = ParseColorString(config.Colors.Selection)
	}
	if config.Colors.Caret != "" {
		base.Colors.Caret = ParseColorString(config.Colors.Caret)
	}
	if config.Colors.SearchMatch != "" {
		base.Colors.SearchMatch = ParseColorString(config.Colors.SearchMatch)
	}
	if config.Colors.StatusMode != "" {
		base.Colors.StatusMode = ParseColorString(config.Colors.StatusMode)
	}
	if config.Colors.StatusMessage != "" {
		base.Colors.StatusMessage = ParseColorString(config.Colors.StatusMessage)
	}
	if config.Colors.StatusModified != "" {
		base.Colors.StatusModified = ParseColorString(config.Colors.StatusModified)
	}

	if config.Name != "" {
		base.Name = config.Name
	}

	return base
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		// Fall back to Tokyo Night
		return TokyoNight()
	}

	return theme
}
