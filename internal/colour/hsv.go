package colour

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// HSV represents a colour as hue, saturation and value. Hue is in
// degrees [0, 360); saturation and value are fractions in [0, 1].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns the colour as a string in the format "hsv(h, s%, v%)".
func (hsv HSV) String() string {
	return fmt.Sprintf("hsv(%s, %s%%, %s%%)",
		formatComponent(hsv.H), formatComponent(hsv.S*100), formatComponent(hsv.V*100))
}

// HSV converts the colour to hue, saturation and value.
// Achromatic colours report hue 0.
func (c Colour) HSV() HSV {
	maxVal := math.Max(c.r, math.Max(c.g, c.b))
	minVal := math.Min(c.r, math.Min(c.g, c.b))
	delta := maxVal - minVal

	if delta == 0 {
		return HSV{H: 0, S: 0, V: maxVal}
	}
	return HSV{H: hueOf(c.r, c.g, c.b, maxVal, delta), S: delta / maxVal, V: maxVal}
}

// Colour converts hue, saturation and value back to sRGB using the
// sector transform. Saturation and value clamp to [0, 1] and the hue
// wraps, so the result always holds valid channels.
func (hsv HSV) Colour() Colour {
	s, v := clamp01(hsv.S), clamp01(hsv.V)
	if s == 0 {
		// Achromatic (grey).
		return Colour{r: v, g: v, b: v}
	}

	h := normaliseHue(hsv.H) / 60.0
	sector := math.Floor(h)
	f := h - sector

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) % 6 {
	case 0:
		return Colour{r: v, g: t, b: p}
	case 1:
		return Colour{r: q, g: v, b: p}
	case 2:
		return Colour{r: p, g: v, b: t}
	case 3:
		return Colour{r: p, g: q, b: v}
	case 4:
		return Colour{r: t, g: p, b: v}
	}
	return Colour{r: v, g: p, b: q}
}

var hsvPattern = regexp.MustCompile(`^hsv\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*%?\s*,\s*(\d+(?:\.\d+)?)\s*%?\s*\)$`)

// ParseHSV parses an "hsv(h, s%, v%)" colour. Hue is normalised
// modulo 360; saturation and value are percentages 0-100.
func ParseHSV(text string) (Colour, error) {
	m := hsvPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Colour{}, &ParseError{Input: text, Format: "hsv", Reason: `expected "hsv(h, s%, v%)"`}
	}
	h, ok := parseHueComponent(m[1])
	if !ok {
		return Colour{}, &ParseError{Input: text, Format: "hsv", Reason: fmt.Sprintf("invalid hue %q", m[1])}
	}
	s, err := percentFraction(m[2], "saturation")
	if err != nil {
		return Colour{}, err
	}
	v, err := percentFraction(m[3], "value")
	if err != nil {
		return Colour{}, err
	}
	return HSV{H: h, S: s, V: v}.Colour(), nil
}
