package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RGB represents a colour as 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Colour converts the 8-bit channels to a Colour.
func (rgb RGB) Colour() Colour {
	return FromRGB8(rgb.R, rgb.G, rgb.B)
}

// RGB returns the colour quantised to 8-bit channels, rounding to the
// nearest value.
func (c Colour) RGB() RGB {
	return RGB{R: channel8(c.r), G: channel8(c.g), B: channel8(c.b)}
}

var rgbPattern = regexp.MustCompile(`^rgb\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\)$`)

// ParseRGB parses an "rgb(r, g, b)" colour with integer channels
// 0-255.
func ParseRGB(text string) (Colour, error) {
	m := rgbPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Colour{}, &ParseError{Input: text, Format: "rgb", Reason: `expected "rgb(r, g, b)" with integer channels`}
	}
	r, err := parseChannel8(text, "rgb", "red", m[1])
	if err != nil {
		return Colour{}, err
	}
	g, err := parseChannel8(text, "rgb", "green", m[2])
	if err != nil {
		return Colour{}, err
	}
	b, err := parseChannel8(text, "rgb", "blue", m[3])
	if err != nil {
		return Colour{}, err
	}
	return FromRGB8(r, g, b), nil
}

// parseChannel8 parses one decimal 8-bit channel value.
func parseChannel8(input, format, name, token string) (uint8, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: input, Format: format, Reason: fmt.Sprintf("invalid %s channel %q", name, token)}
	}
	if v < 0 || v > 255 {
		return 0, &RangeError{Component: name, Value: float64(v), Min: 0, Max: 255}
	}
	return uint8(v), nil
}
