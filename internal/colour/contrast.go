package colour

import (
	"strconv"
	"strings"
)

// Bounds of the WCAG contrast ratio scale.
const (
	MinContrast = 1.0
	MaxContrast = 21.0
)

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.x. Returns a value between 1 and 21, where 21
// is maximum contrast (black against white). Symmetric in its
// arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b Colour) float64 {
	return contrastFromLuminance(Luminance(a), Luminance(b))
}

// contrastFromLuminance computes the ratio from two relative
// luminances.
func contrastFromLuminance(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Level is a WCAG conformance level for text contrast.
type Level string

// Conformance levels. The large variants apply to text of at least
// 18pt, or 14pt bold.
const (
	LevelA        Level = "A"
	LevelAA       Level = "AA"
	LevelAAA      Level = "AAA"
	LevelAALarge  Level = "AA-large"
	LevelAAALarge Level = "AAA-large"
)

// MinRatio returns the minimum contrast ratio the level requires.
func (l Level) MinRatio() float64 {
	switch l {
	case LevelA:
		return 1.0
	case LevelAA:
		return 4.5
	case LevelAAA:
		return 7.0
	case LevelAALarge:
		return 3.0
	case LevelAAALarge:
		return 4.5
	}
	return 0
}

// Levels returns the reportable conformance levels in ascending order
// of strictness.
func Levels() []Level {
	return []Level{LevelAALarge, LevelAA, LevelAAALarge, LevelAAA}
}

// ParseLevel matches a conformance level name, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	for _, l := range []Level{LevelA, LevelAA, LevelAAA, LevelAALarge, LevelAAALarge} {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, true
		}
	}
	return "", false
}

// ParseTarget interprets a contrast target: either a numeric ratio
// ("4.5") or a conformance level name ("AA", "AAA-large").
func ParseTarget(s string) (float64, error) {
	if l, ok := ParseLevel(s); ok {
		return l.MinRatio(), nil
	}
	ratio, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Input: s, Format: "contrast target", Reason: "expected a ratio or a WCAG level name"}
	}
	if ratio < MinContrast || ratio > MaxContrast {
		return 0, &RangeError{Component: "contrast target", Value: ratio, Min: MinContrast, Max: MaxContrast}
	}
	return ratio, nil
}

// Compliance summarises which WCAG text contrast levels a ratio
// meets.
type Compliance struct {
	AA       bool `json:"aa"`
	AAA      bool `json:"aaa"`
	AALarge  bool `json:"aa_large"`
	AAALarge bool `json:"aaa_large"`
}

// ComplianceFor reports the conformance levels met by a contrast
// ratio.
func ComplianceFor(ratio float64) Compliance {
	return Compliance{
		AA:       ratio >= LevelAA.MinRatio(),
		AAA:      ratio >= LevelAAA.MinRatio(),
		AALarge:  ratio >= LevelAALarge.MinRatio(),
		AAALarge: ratio >= LevelAAALarge.MinRatio(),
	}
}
