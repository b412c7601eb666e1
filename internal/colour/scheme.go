package colour

import (
	"math"
	"strings"
)

// Scheme names a colour harmony.
type Scheme string

// Supported harmonies.
const (
	SchemeComplementary      Scheme = "complementary"
	SchemeAnalogous          Scheme = "analogous"
	SchemeTriadic            Scheme = "triadic"
	SchemeTetradic           Scheme = "tetradic"
	SchemeSplitComplementary Scheme = "split-complementary"
	SchemeMonochrome         Scheme = "monochrome"
)

// Schemes returns the supported harmonies.
func Schemes() []Scheme {
	return []Scheme{
		SchemeComplementary,
		SchemeAnalogous,
		SchemeTriadic,
		SchemeTetradic,
		SchemeSplitComplementary,
		SchemeMonochrome,
	}
}

// ParseScheme matches a harmony name.
func ParseScheme(s string) (Scheme, error) {
	for _, scheme := range Schemes() {
		if strings.EqualFold(strings.TrimSpace(s), string(scheme)) {
			return scheme, nil
		}
	}
	return "", &ParseError{Input: s, Format: "scheme", Reason: "expected complementary, analogous, triadic, tetradic, split-complementary or monochrome"}
}

// Harmonies generates a colour harmony from a base colour. Hue-based
// schemes rotate around the wheel at the base's saturation and
// lightness; monochrome keeps the hue and walks the lightness
// instead. The base colour is always the first element.
func Harmonies(c Colour, scheme Scheme) ([]Colour, error) {
	base := c.HSL()
	switch scheme {
	case SchemeComplementary:
		return rotations(base, 0, 180), nil
	case SchemeAnalogous:
		return rotations(base, 0, -30, 30), nil
	case SchemeTriadic:
		return rotations(base, 0, 120, 240), nil
	case SchemeTetradic:
		return rotations(base, 0, 90, 180, 270), nil
	case SchemeSplitComplementary:
		return rotations(base, 0, 150, 210), nil
	case SchemeMonochrome:
		return lightnessLadder(base), nil
	}
	return nil, &ParseError{Input: string(scheme), Format: "scheme", Reason: "unknown scheme"}
}

// rotations returns the base colour rotated by each hue offset in
// degrees.
func rotations(base HSL, offsets ...float64) []Colour {
	out := make([]Colour, len(offsets))
	for i, offset := range offsets {
		out[i] = HSL{H: normaliseHue(base.H + offset), S: base.S, L: base.L}.Colour()
	}
	return out
}

// lightnessLadder returns the base colour with lightness stepped
// through fixed stops, keeping hue and saturation. A stop that
// coincides with the base's own lightness is skipped so the base
// appears only once.
func lightnessLadder(base HSL) []Colour {
	out := []Colour{base.Colour()}
	for _, l := range []float64{0.2, 0.4, 0.6, 0.8} {
		if math.Abs(l-base.L) < 1e-9 {
			continue
		}
		out = append(out, HSL{H: base.H, S: base.S, L: l}.Colour())
	}
	return out
}
