package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	// Page colors
	PageBackground tcell.Color
	PageEdge       tcell.Color
	PageNumber     tcell.Color

	// Text colors
	Text     tcell.Color
	SpanText tcell.Color

	// Selection and caret colors
	Selection tcell.Color
	Caret     tcell.Color

	// Search highlight
	SearchMatch tcell.Color

	// Status line colors
	StatusMode     tcell.Color
	StatusMessage  tcell.Color
	StatusModified tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			PageBackground: tcell.ColorDefault,
			PageEdge:       tcell.ColorDefault,
			PageNumber:     tcell.ColorDefault,
			Text:           tcell.ColorDefault,
			SpanText:       tcell.ColorDefault,
			Selection:      tcell.ColorDefault,
			Caret:          tcell.ColorDefault,
			SearchMatch:    tcell.ColorDefault,
			StatusMode:     tcell.ColorDefault,
			StatusMessage:  tcell.ColorDefault,
			StatusModified: tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			PageBackground: HexToColor("#1a1b26"), // Dark background
			PageEdge:       HexToColor("#565f89"), // Comment gray
			PageNumber:     HexToColor("#565f89"), // Comment gray
			Text:           HexToColor("#c0caf5"), // Light gray-blue
			SpanText:       HexToColor("#7dcfff"), // Cyan
			Selection:      HexToColor("#33467c"), // Selection blue
			Caret:          HexToColor("#7aa2f7"), // Blue
			SearchMatch:    HexToColor("#e0af68"), // Yellow
			StatusMode:     HexToColor("#bb9af7"), // Magenta
			StatusMessage:  HexToColor("#9ece6a"), // Green
			StatusModified: HexToColor("#f7768e"), // Red
		},
	}
}
