package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// HCL represents a colour in a cylindrical space built directly on
// the WCAG luminance definition: H is the hue angle in degrees
// [0, 360), C the chroma magnitude in linear-light units, and L the
// relative luminance. Moving within the chroma plane never changes L,
// which is what makes the space useful for contrast work.
type HCL struct {
	H float64 `json:"h"`
	C float64 `json:"c"`
	L float64 `json:"l"`
}

// Chroma below this magnitude is treated as achromatic.
const achromaticChroma = 1e-12

// chromaU1 and chromaU2 span the plane of constant luminance. They
// are derived from the luminance weights: chromaU1 is the unit vector
// with no blue component orthogonal to (lumR, lumG, lumB), and
// chromaU2 completes the right-handed frame.
var chromaU1, chromaU2 = chromaBasis()

func chromaBasis() (u1, u2 [3]float64) {
	n := math.Hypot(lumG, lumR)
	u1 = [3]float64{lumG / n, -lumR / n, 0}

	// Cross product of the normalised weight vector with u1.
	w := math.Sqrt(lumR*lumR + lumG*lumG + lumB*lumB)
	u2 = [3]float64{
		(lumG*u1[2] - lumB*u1[1]) / w,
		(lumB*u1[0] - lumR*u1[2]) / w,
		(lumR*u1[1] - lumG*u1[0]) / w,
	}
	return u1, u2
}

// HCL converts the colour to the luminance-aligned cylindrical space.
// Achromatic colours report hue 0 and chroma 0, and L always equals
// Luminance exactly.
func (c Colour) HCL() HCL {
	l := Luminance(c)
	lin := [3]float64{linearise(c.r), linearise(c.g), linearise(c.b)}

	x := (lin[0]-l)*chromaU1[0] + (lin[1]-l)*chromaU1[1] + (lin[2]-l)*chromaU1[2]
	y := (lin[0]-l)*chromaU2[0] + (lin[1]-l)*chromaU2[1] + (lin[2]-l)*chromaU2[2]

	chroma := math.Hypot(x, y)
	if chroma < achromaticChroma {
		return HCL{H: 0, C: 0, L: l}
	}

	h := normaliseHue(math.Atan2(y, x) * 180 / math.Pi)
	return HCL{H: h, C: chroma, L: l}
}

// Colour converts the cylindrical coordinates back to sRGB. Chroma
// beyond the gamut boundary at (H, L) clamps to the boundary, and L
// clamps to [0, 1].
func (p HCL) Colour() Colour {
	l := clamp01(p.L)
	if p.C <= achromaticChroma {
		v := delinearise(l)
		return Colour{r: v, g: v, b: v}
	}

	dir := chromaDirection(p.H)
	scale := math.Min(p.C, maxChromaAlong(dir, l))
	return Colour{
		r: delinearise(clamp01(l + scale*dir[0])),
		g: delinearise(clamp01(l + scale*dir[1])),
		b: delinearise(clamp01(l + scale*dir[2])),
	}
}

// MaxChroma returns the largest chroma representable in sRGB at the
// hue and luminance of p.
func (p HCL) MaxChroma() float64 {
	return maxChromaAlong(chromaDirection(p.H), clamp01(p.L))
}

// String renders the diagnostic "wcag-hcl(h, c%, l)" form. Chroma is
// shown as a percentage of the gamut limit at this hue and luminance.
func (p HCL) String() string {
	pct := 0.0
	if limit := p.MaxChroma(); limit > 0 {
		pct = 100 * p.C / limit
	}
	return fmt.Sprintf("wcag-hcl(%.0f, %.0f%%, %.3f)", p.H, pct, p.L)
}

// cartesian returns the chroma-plane coordinates of the point.
func (p HCL) cartesian() (x, y float64) {
	rad := p.H * math.Pi / 180
	return p.C * math.Cos(rad), p.C * math.Sin(rad)
}

// chromaDirection returns the unit vector in linear RGB along which
// chroma grows at hue h.
func chromaDirection(h float64) [3]float64 {
	rad := h * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return [3]float64{
		cos*chromaU1[0] + sin*chromaU2[0],
		cos*chromaU1[1] + sin*chromaU2[1],
		cos*chromaU1[2] + sin*chromaU2[2],
	}
}

// maxChromaAlong finds how far the linear channels can move from grey
// level l along dir before one of them leaves [0, 1].
func maxChromaAlong(dir [3]float64, l float64) float64 {
	limit := math.Inf(1)
	for _, d := range dir {
		if d > 0 {
			limit = math.Min(limit, (1-l)/d)
		} else if d < 0 {
			limit = math.Min(limit, l/-d)
		}
	}
	return limit
}

// hclDistance is the Euclidean distance between two points of the
// space, taken in Cartesian form.
func hclDistance(a, b HCL) float64 {
	ax, ay := a.cartesian()
	bx, by := b.cartesian()
	dl := a.L - b.L
	return math.Sqrt((ax-bx)*(ax-bx) + (ay-by)*(ay-by) + dl*dl)
}

var hclTextPattern = regexp.MustCompile(`^wcag-hcl\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*%?\s*,\s*(\d+(?:\.\d+)?|\.\d+)\s*\)$`)

// parseHCLText parses the diagnostic wcag-hcl form accepted during
// auto-detection. Chroma is a percentage of the gamut limit at the
// given hue and luminance.
func parseHCLText(text string) (Colour, error) {
	m := hclTextPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Colour{}, &ParseError{Input: text, Format: "wcag-hcl", Reason: `expected "wcag-hcl(h, c%, l)"`}
	}
	h, ok := parseHueComponent(m[1])
	if !ok {
		return Colour{}, &ParseError{Input: text, Format: "wcag-hcl", Reason: fmt.Sprintf("invalid hue %q", m[1])}
	}
	pct, err := percentFraction(m[2], "chroma")
	if err != nil {
		return Colour{}, err
	}
	l, _ := strconv.ParseFloat(m[3], 64)
	if l < 0 || l > 1 {
		return Colour{}, &RangeError{Component: "luminance", Value: l, Min: 0, Max: 1}
	}

	p := HCL{H: h, L: l}
	p.C = pct * p.MaxChroma()
	return p.Colour(), nil
}
