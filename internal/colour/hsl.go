package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// HSL represents a colour as hue, saturation and lightness. Hue is in
// degrees [0, 360); saturation and lightness are fractions in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)",
		formatComponent(hsl.H), formatComponent(hsl.S*100), formatComponent(hsl.L*100))
}

// HSL converts the colour to hue, saturation and lightness.
// Achromatic colours report hue 0.
func (c Colour) HSL() HSL {
	maxVal := math.Max(c.r, math.Max(c.g, c.b))
	minVal := math.Min(c.r, math.Min(c.g, c.b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}
	return HSL{H: hueOf(c.r, c.g, c.b, maxVal, delta), S: s, L: l}
}

// Colour converts hue, saturation and lightness back to sRGB.
// Saturation and lightness clamp to [0, 1] and the hue wraps, so the
// result always holds valid channels.
func (hsl HSL) Colour() Colour {
	s, l := clamp01(hsl.S), clamp01(hsl.L)
	if s == 0 {
		// Achromatic (grey).
		return Colour{r: l, g: l, b: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	h := normaliseHue(hsl.H)
	return Colour{
		r: hueToChannel(p, q, h+120),
		g: hueToChannel(p, q, h),
		b: hueToChannel(p, q, h-120),
	}
}

// hueOf computes the hue angle shared by the cylindrical conversions.
// Returns degrees in [0, 360).
func hueOf(r, g, b, maxVal, delta float64) float64 {
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	return h * 60
}

// hueToChannel is the p/q helper for the HSL conversion, on a hue
// wheel measured in degrees.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	}
	return p
}

var hslPattern = regexp.MustCompile(`^hsl\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*%?\s*,\s*(\d+(?:\.\d+)?)\s*%?\s*\)$`)

// ParseHSL parses an "hsl(h, s%, l%)" colour. Hue is normalised
// modulo 360, so 0 and 360 are the same colour; saturation and
// lightness are percentages 0-100.
func ParseHSL(text string) (Colour, error) {
	m := hslPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Colour{}, &ParseError{Input: text, Format: "hsl", Reason: `expected "hsl(h, s%, l%)"`}
	}
	h, ok := parseHueComponent(m[1])
	if !ok {
		return Colour{}, &ParseError{Input: text, Format: "hsl", Reason: fmt.Sprintf("invalid hue %q", m[1])}
	}
	s, err := percentFraction(m[2], "saturation")
	if err != nil {
		return Colour{}, err
	}
	l, err := percentFraction(m[3], "lightness")
	if err != nil {
		return Colour{}, err
	}
	return HSL{H: h, S: s, L: l}.Colour(), nil
}

// parseHueComponent parses a hue angle and wraps it into [0, 360).
func parseHueComponent(text string) (float64, bool) {
	h, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(h, 0) {
		return 0, false
	}
	return normaliseHue(h), true
}

// percentFraction parses a percentage component and returns it as a
// fraction in [0, 1].
func percentFraction(text, name string) (float64, error) {
	v, _ := strconv.ParseFloat(text, 64)
	if v < 0 || v > 100 {
		return 0, &RangeError{Component: name, Value: v, Min: 0, Max: 100}
	}
	return v / 100.0, nil
}

// normaliseHue wraps a hue angle into [0, 360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h == 0 {
		// Normalise negative zero.
		return 0
	}
	return h
}

// formatComponent renders a cylindrical component with one decimal,
// trimming a trailing ".0" so exact values print as integers.
func formatComponent(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}
