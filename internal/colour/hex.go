package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern      = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hexLoosePattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ParseHex parses a strict "#rrggbb" hex colour. Case-insensitive.
func ParseHex(text string) (Colour, error) {
	s := strings.TrimSpace(text)
	if !hexPattern.MatchString(s) {
		return Colour{}, &ParseError{Input: text, Format: "hex", Reason: `expected "#" followed by six hex digits`}
	}
	return hexChannels(s[1:]), nil
}

// parseHexLoose accepts the relaxed hex forms used during
// auto-detection: the "#" is optional and three-digit shorthand
// expands ("abc" becomes "aabbcc").
func parseHexLoose(text string) (Colour, error) {
	m := hexLoosePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Colour{}, &ParseError{Input: text, Format: "hex", Reason: "expected three or six hex digits"}
	}
	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return hexChannels(digits), nil
}

// hexChannels converts exactly six hex digits to a Colour.
func hexChannels(digits string) Colour {
	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)
	return FromRGB8(uint8(r), uint8(g), uint8(b))
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (c Colour) Hex() string {
	rgb := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}
