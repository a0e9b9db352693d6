package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/foliate/internal/config"
	"github.com/pstuifzand/foliate/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with the configured theme
func NewScreen() (*Screen, error) {
	// Load config to get the theme name
	cfg, err := config.Load()
	if err != nil {
		// If config fails to load, use Default as fallback
		return NewScreenWithTheme(theme.Default())
	}

	// Load the theme based on config
	// Try to load from TOML files first, fall back to built-in Default
	t := theme.LoadThemeOrDefault(cfg.Theme)
	return NewScreenWithTheme(t)
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style.
// Wide runes advance by their display width.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, r, style)
		col += RuneWidth(r)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// Fill paints a rectangle with spaces in the given style.
func (s *Screen) Fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetCell(col, row, ' ', style)
		}
	}
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Sync forces a full redraw, used after terminal resizes
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// HasMouse returns true if mouse is supported
func (s *Screen) HasMouse() bool {
	return s.tcellScreen.HasMouse()
}

// EnableMouse enables mouse support on the screen
func (s *Screen) EnableMouse() {
	s.tcellScreen.EnableMouse()
}

// Theme-aware style methods

// PageStyle returns the style for page interior cells
func (s *Screen) PageStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Text, s.Theme.Colors.PageBackground)
}

// PageEdgeStyle returns the style for the page border
func (s *Screen) PageEdgeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.PageEdge, s.Theme.Colors.PageBackground)
}

// PageNumberStyle returns the style for the page number footer
func (s *Screen) PageNumberStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PageNumber)
}

// TextStyle returns the style for plain document text
func (s *Screen) TextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Text, s.Theme.Colors.PageBackground)
}

// SpanTextStyle returns the style for styled inline runs
func (s *Screen) SpanTextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.SpanText, s.Theme.Colors.PageBackground).Italic(true)
}

// SelectionStyle returns the style for selected text
func (s *Screen) SelectionStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Text, s.Theme.Colors.Selection)
}

// CaretStyle returns the style for the caret cell
func (s *Screen) CaretStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.PageBackground, s.Theme.Colors.Caret)
}

// SearchMatchStyle returns the style for highlighted search matches
func (s *Screen) SearchMatchStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.PageBackground, s.Theme.Colors.SearchMatch)
}

// StatusModeStyle returns the style for the mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMode).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMessage)
}

// StatusModifiedStyle returns the style for the modified indicator
func (s *Screen) StatusModifiedStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusModified)
}
