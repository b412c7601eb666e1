// Package colour implements colour parsing, conversion between
// encodings, and WCAG contrast analysis on sRGB colour values.
package colour

import (
	"math"
)

// Epsilon is the tolerance used for colour equality: one 8-bit
// quantisation step, so values survive a round-trip through any of
// the text encodings.
const Epsilon = 1.0 / 255.0

// Colour is an immutable sRGB colour. Channels are gamma-encoded and
// kept in the range [0, 1].
type Colour struct {
	r, g, b float64
}

// Common colours.
var (
	Black = Colour{r: 0, g: 0, b: 0}
	White = Colour{r: 1, g: 1, b: 1}
)

// New creates a Colour from gamma-encoded sRGB channels in [0, 1].
// Channels outside that range are rejected, not clamped.
func New(r, g, b float64) (Colour, error) {
	if err := checkChannel("red", r); err != nil {
		return Colour{}, err
	}
	if err := checkChannel("green", g); err != nil {
		return Colour{}, err
	}
	if err := checkChannel("blue", b); err != nil {
		return Colour{}, err
	}
	return Colour{r: r, g: g, b: b}, nil
}

// checkChannel validates a single [0, 1] channel value.
func checkChannel(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &RangeError{Component: name, Value: v, Min: 0, Max: 1}
	}
	return nil
}

// FromRGB8 creates a Colour from 8-bit sRGB channels.
func FromRGB8(r, g, b uint8) Colour {
	return Colour{
		r: float64(r) / 255.0,
		g: float64(g) / 255.0,
		b: float64(b) / 255.0,
	}
}

// Channels returns the gamma-encoded sRGB channels in [0, 1].
func (c Colour) Channels() (r, g, b float64) {
	return c.r, c.g, c.b
}

// Equal reports whether two colours match within Epsilon on every
// channel.
func (c Colour) Equal(other Colour) bool {
	return math.Abs(c.r-other.r) <= Epsilon &&
		math.Abs(c.g-other.g) <= Epsilon &&
		math.Abs(c.b-other.b) <= Epsilon
}

// String returns the colour as a lowercase hex string.
func (c Colour) String() string {
	return c.Hex()
}

// channel8 quantises a [0, 1] channel to its nearest 8-bit value.
func channel8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255.0))
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
