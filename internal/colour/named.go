package colour

import (
	"strings"

	"golang.org/x/image/colornames"
)

// ParseNamed resolves a CSS/SVG colour name ("steelblue", "Teal").
// Matching is case-insensitive.
func ParseNamed(name string) (Colour, bool) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Colour{}, false
	}
	return FromRGB8(rgba.R, rgba.G, rgba.B), true
}
