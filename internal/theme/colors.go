package theme

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HexToColor parses #RRGGBB or #RGB into a tcell.Color. Anything
// unparseable maps to tcell.ColorDefault so a bad theme file degrades
// to the terminal colors instead of failing the load.
func HexToColor(hexColor string) tcell.Color {
	hex := strings.TrimPrefix(hexColor, "#")

	if len(hex) == 3 {
		hex = expandShortHex(hex)
	}
	if len(hex) != 6 {
		return tcell.ColorDefault
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return tcell.ColorDefault
	}

	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// expandShortHex doubles each digit of an #RGB form.
func expandShortHex(hex string) string {
	var sb strings.Builder
	for _, r := range hex {
		sb.WriteRune(r)
		sb.WriteRune(r)
	}
	return sb.String()
}

// RGBToColor builds a tcell.Color from 0-255 channel values.
func RGBToColor(r, g, b int) tcell.Color {
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ParseColorString accepts the color notations theme files may use:
// #RRGGBB, #RGB, or rgb(r, g, b).
func ParseColorString(colorStr string) tcell.Color {
	colorStr = strings.TrimSpace(colorStr)

	if strings.HasPrefix(colorStr, "#") {
		return HexToColor(colorStr)
	}

	if strings.HasPrefix(colorStr, "rgb(") && strings.HasSuffix(colorStr, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(colorStr, "rgb("), ")")
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return tcell.ColorDefault
		}

		channels := make([]int, 3)
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return tcell.ColorDefault
			}
			channels[i] = n
		}
		return RGBToColor(channels[0], channels[1], channels[2])
	}

	return tcell.ColorDefault
}

// ColorToStyle builds a style with the given foreground over the
// terminal default background.
func ColorToStyle(fgColor tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fgColor)
}

// ColorPairToStyle builds a style from a foreground and background pair.
func ColorPairToStyle(fgColor, bgColor tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fgColor).Background(bgColor)
}
