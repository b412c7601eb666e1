package colour

import (
	"math"
	"strings"
)

// AdjustMode selects which side of a foreground/background pair an
// adjustment may move.
type AdjustMode int

const (
	AdjustForeground AdjustMode = iota
	AdjustBackground
	AdjustAuto
)

// String returns the mode's name.
func (m AdjustMode) String() string {
	switch m {
	case AdjustBackground:
		return "bg"
	case AdjustAuto:
		return "auto"
	}
	return "fg"
}

// ParseAdjustMode matches an adjustment mode name.
func ParseAdjustMode(s string) (AdjustMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fg", "foreground":
		return AdjustForeground, nil
	case "bg", "background":
		return AdjustBackground, nil
	case "auto":
		return AdjustAuto, nil
	}
	return 0, &ParseError{Input: s, Format: "adjust mode", Reason: "expected fg, bg or auto"}
}

// Luminance nudges tried when a candidate's measured ratio falls a
// rounding error short of the target.
var adjustNudges = [...]float64{0, 1e-12, 1e-9, 1e-6}

// Two candidates closer than this count as a tie, which the darker
// one wins.
const distanceTie = 1e-9

// AdjustContrast returns the colour nearest fg, keeping fg's hue and
// as much of its chroma as the gamut allows, whose contrast ratio
// against bg is at least target. The achieved ratio is verified with
// ContrastRatio itself, so a returned colour never falls short of the
// target. fg is returned unchanged when it already satisfies it.
//
// The target luminance is solved in closed form on both sides of the
// background; when both sides can reach the target, the candidate
// nearer to fg wins, with ties going to the darker one. A target no
// luminance can reach yields an UnachievableError.
func AdjustContrast(fg, bg Colour, target float64) (Colour, error) {
	if target < MinContrast {
		return Colour{}, &RangeError{Component: "contrast target", Value: target, Min: MinContrast, Max: MaxContrast}
	}
	if ContrastRatio(fg, bg) >= target {
		return fg, nil
	}

	bgLum := Luminance(bg)
	base := fg.HCL()

	lighter, lighterOK := candidateAt(base, bgLum, target, target*(bgLum+0.05)-0.05, +1)
	darker, darkerOK := candidateAt(base, bgLum, target, (bgLum+0.05)/target-0.05, -1)

	switch {
	case lighterOK && darkerOK:
		if hclDistance(base, lighter.HCL()) < hclDistance(base, darker.HCL())-distanceTie {
			return lighter, nil
		}
		return darker, nil
	case lighterOK:
		return lighter, nil
	case darkerOK:
		return darker, nil
	}

	best := math.Max(
		contrastFromLuminance(Luminance(White), bgLum),
		contrastFromLuminance(Luminance(Black), bgLum),
	)
	return Colour{}, &UnachievableError{Target: target, Best: best}
}

// candidateAt projects the foreground's hue and chroma to luminance l
// and verifies the measured ratio against the background. A marginal
// float shortfall is repaired by stepping l away from the background
// through the fixed nudge ladder; direction is +1 for the lighter
// solution and -1 for the darker one.
func candidateAt(base HCL, bgLum, target, l, direction float64) (Colour, bool) {
	if l < 0 || l > 1 {
		return Colour{}, false
	}
	for _, nudge := range adjustNudges {
		adjusted := l + direction*nudge
		if adjusted < 0 || adjusted > 1 {
			break
		}
		c := HCL{H: base.H, C: base.C, L: adjusted}.Colour()
		if contrastFromLuminance(Luminance(c), bgLum) >= target {
			return c, true
		}
	}
	return Colour{}, false
}

// AdjustPair applies the contrast search to a foreground/background
// pair. AdjustForeground and AdjustBackground move one side only;
// AdjustAuto tries both and keeps the smaller perceptual move.
func AdjustPair(fg, bg Colour, target float64, mode AdjustMode) (Colour, Colour, error) {
	switch mode {
	case AdjustBackground:
		adjusted, err := AdjustContrast(bg, fg, target)
		if err != nil {
			return fg, bg, err
		}
		return fg, adjusted, nil

	case AdjustAuto:
		fgAdjusted, fgErr := AdjustContrast(fg, bg, target)
		bgAdjusted, bgErr := AdjustContrast(bg, fg, target)
		switch {
		case fgErr != nil && bgErr != nil:
			return fg, bg, fgErr
		case fgErr != nil:
			return fg, bgAdjusted, nil
		case bgErr != nil:
			return fgAdjusted, bg, nil
		}
		if hclDistance(bg.HCL(), bgAdjusted.HCL()) < hclDistance(fg.HCL(), fgAdjusted.HCL()) {
			return fg, bgAdjusted, nil
		}
		return fgAdjusted, bg, nil
	}

	adjusted, err := AdjustContrast(fg, bg, target)
	if err != nil {
		return fg, bg, err
	}
	return adjusted, bg, nil
}
