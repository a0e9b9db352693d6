package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHexToColor(t *testing.T) {
	c := HexToColor("#c0caf5")
	r, g, b := c.RGB()
	if r != 0xc0 || g != 0xca || b != 0xf5 {
		t.Errorf("Expected rgb(192,202,245), got rgb(%d,%d,%d)", r, g, b)
	}
}

func TestHexToColorShortForm(t *testing.T) {
	c := HexToColor("#fff")
	r, g, b := c.RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("Expected white, got rgb(%d,%d,%d)", r, g, b)
	}
}

func TestHexToColorInvalid(t *testing.T) {
	if HexToColor("not-a-color") != tcell.ColorDefault {
		t.Errorf("Expected default color for invalid input")
	}
}

func TestParseColorStringRGB(t *testing.T) {
	c := ParseColorString("rgb(26, 27, 38)")
	r, g, b := c.RGB()
	if r != 26 || g != 27 || b != 38 {
		t.Errorf("Expected rgb(26,27,38), got rgb(%d,%d,%d)", r, g, b)
	}
}

func TestParseColorStringBadInput(t *testing.T) {
	for _, s := range []string{"rgb(1, 2)", "rgb(1, 2, x)", "rgb(300, 0, 0)", "teal"} {
		if ParseColorString(s) != tcell.ColorDefault {
			t.Errorf("Expected default color for %q", s)
		}
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	content := `name = "custom"

[colors]
text = "#ffffff"
caret = "rgb(255, 0, 0)"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile failed: %v", err)
	}

	if theme.Name != "custom" {
		t.Errorf("Expected theme name 'custom', got '%s'", theme.Name)
	}

	r, g, b := theme.Colors.Text.RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("Expected white text, got rgb(%d,%d,%d)", r, g, b)
	}

	// Unspecified colors fall back to Tokyo Night
	if theme.Colors.Selection != TokyoNight().Colors.Selection {
		t.Errorf("Expected Tokyo Night fallback for selection color")
	}
}

func TestLoadThemeOrDefaultFallsBack(t *testing.T) {
	theme := LoadThemeOrDefault("no-such-theme")
	if theme.Name != "tokyo-night" {
		t.Errorf("Expected tokyo-night fallback, got '%s'", theme.Name)
	}
}
