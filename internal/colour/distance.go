package colour

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DistanceMethod names a perceptual colour difference formula.
type DistanceMethod string

// Supported formulas. The CIE methods compare in Lab space with
// increasing perceptual accuracy; hcl is the Euclidean distance in
// the luminance-aligned space the contrast adjustment uses.
const (
	DistanceCIEDE2000 DistanceMethod = "ciede2000"
	DistanceCIE94     DistanceMethod = "cie94"
	DistanceCIE76     DistanceMethod = "cie76"
	DistanceHCL       DistanceMethod = "hcl"
)

// DistanceMethods returns the supported formulas.
func DistanceMethods() []DistanceMethod {
	return []DistanceMethod{DistanceCIEDE2000, DistanceCIE94, DistanceCIE76, DistanceHCL}
}

// ParseDistanceMethod matches a distance method name.
func ParseDistanceMethod(s string) (DistanceMethod, error) {
	for _, m := range DistanceMethods() {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", &ParseError{Input: s, Format: "distance method", Reason: "expected ciede2000, cie94, cie76 or hcl"}
}

// Distance returns the perceptual difference between two colours
// under the given method. Zero means identical; scales differ
// between methods.
func Distance(a, b Colour, method DistanceMethod) (float64, error) {
	switch method {
	case DistanceCIEDE2000:
		return a.colorful().DistanceCIEDE2000(b.colorful()), nil
	case DistanceCIE94:
		return a.colorful().DistanceCIE94(b.colorful()), nil
	case DistanceCIE76:
		return a.colorful().DistanceCIE76(b.colorful()), nil
	case DistanceHCL:
		return hclDistance(a.HCL(), b.HCL()), nil
	}
	return 0, &ParseError{Input: string(method), Format: "distance method", Reason: "unknown method"}
}

// colorful bridges to the go-colorful representation, which shares
// the gamma-encoded [0, 1] channel convention.
func (c Colour) colorful() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}
}
