package colour

import "math"

// WCAG 2.x relative luminance weights for linear-light sRGB channels.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Linearisation constants from the WCAG relative luminance definition.
const (
	linearThreshold = 0.03928
	linearScale     = 12.92
	gammaOffset     = 0.055
	gammaExponent   = 2.4
)

// Luminance calculates the relative luminance of a colour according
// to WCAG 2.x. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c Colour) float64 {
	return lumR*linearise(c.r) + lumG*linearise(c.g) + lumB*linearise(c.b)
}

// linearise converts a gamma-encoded sRGB channel to linear light.
// Every luminance-derived quantity in this package goes through here.
func linearise(v float64) float64 {
	if v <= linearThreshold {
		return v / linearScale
	}
	return math.Pow((v+gammaOffset)/(1+gammaOffset), gammaExponent)
}

// delinearise is the inverse of linearise. The knee sits at
// linearThreshold/linearScale so the pair round-trips, and both
// endpoints map exactly.
func delinearise(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	if v <= linearThreshold/linearScale {
		return v * linearScale
	}
	return (1+gammaOffset)*math.Pow(v, 1/gammaExponent) - gammaOffset
}
