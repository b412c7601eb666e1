package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AlphaColour is a colour with an opacity in [0, 1].
type AlphaColour struct {
	Colour
	Alpha float64
}

// WithAlpha attaches an opacity to the colour.
func (c Colour) WithAlpha(alpha float64) (AlphaColour, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return AlphaColour{}, &RangeError{Component: "alpha", Value: alpha, Min: 0, Max: 1}
	}
	return AlphaColour{Colour: c, Alpha: alpha}, nil
}

// Over composites the colour onto an opaque background. Blending is
// done on linear-light channels.
func (ac AlphaColour) Over(bg Colour) Colour {
	blend := func(top, under float64) float64 {
		return delinearise(ac.Alpha*linearise(top) + (1-ac.Alpha)*linearise(under))
	}
	return Colour{
		r: blend(ac.r, bg.r),
		g: blend(ac.g, bg.g),
		b: blend(ac.b, bg.b),
	}
}

// String returns the colour as a string in the format
// "rgba(r, g, b, a)".
func (ac AlphaColour) String() string {
	rgb := ac.RGB()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, formatAlpha(ac.Alpha))
}

// formatAlpha renders an opacity with up to three decimals and no
// trailing zeros.
func formatAlpha(a float64) string {
	s := strings.TrimRight(strconv.FormatFloat(a, 'f', 3, 64), "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

// ParseAlpha interprets a colour from any form Parse accepts, plus
// "rgba(r, g, b, a)". Forms without an alpha channel are fully
// opaque.
func ParseAlpha(text string) (AlphaColour, error) {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), "rgba(") {
		return ParseRGBA(text)
	}
	c, err := Parse(text)
	if err != nil {
		return AlphaColour{}, err
	}
	return AlphaColour{Colour: c, Alpha: 1}, nil
}

var rgbaPattern = regexp.MustCompile(`^rgba\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?(?:\d+(?:\.\d+)?|\.\d+))\s*\)$`)

// ParseRGBA parses an "rgba(r, g, b, a)" colour with 8-bit channels
// and a decimal alpha in [0, 1].
func ParseRGBA(text string) (AlphaColour, error) {
	m := rgbaPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return AlphaColour{}, &ParseError{Input: text, Format: "rgba", Reason: `expected "rgba(r, g, b, a)"`}
	}
	r, err := parseChannel8(text, "rgba", "red", m[1])
	if err != nil {
		return AlphaColour{}, err
	}
	g, err := parseChannel8(text, "rgba", "green", m[2])
	if err != nil {
		return AlphaColour{}, err
	}
	b, err := parseChannel8(text, "rgba", "blue", m[3])
	if err != nil {
		return AlphaColour{}, err
	}
	alpha, _ := strconv.ParseFloat(m[4], 64)
	return FromRGB8(r, g, b).WithAlpha(alpha)
}
