package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ANSIColor is one of the 16 base terminal colours with its typical
// RGB value (xterm defaults - actual terminals may vary slightly).
type ANSIColor struct {
	Index  int
	Name   string
	Colour Colour
}

// The basic 16-colour terminal palette, indices 0-15.
var ansi16 = []ANSIColor{
	{Index: 0, Name: "black", Colour: FromRGB8(0, 0, 0)},
	{Index: 1, Name: "red", Colour: FromRGB8(205, 49, 49)},
	{Index: 2, Name: "green", Colour: FromRGB8(13, 188, 121)},
	{Index: 3, Name: "yellow", Colour: FromRGB8(229, 229, 16)},
	{Index: 4, Name: "blue", Colour: FromRGB8(36, 114, 200)},
	{Index: 5, Name: "magenta", Colour: FromRGB8(188, 63, 188)},
	{Index: 6, Name: "cyan", Colour: FromRGB8(17, 168, 205)},
	{Index: 7, Name: "white", Colour: FromRGB8(229, 229, 229)},
	{Index: 8, Name: "brightblack", Colour: FromRGB8(102, 102, 102)},
	{Index: 9, Name: "brightred", Colour: FromRGB8(241, 76, 76)},
	{Index: 10, Name: "brightgreen", Colour: FromRGB8(35, 209, 139)},
	{Index: 11, Name: "brightyellow", Colour: FromRGB8(245, 245, 67)},
	{Index: 12, Name: "brightblue", Colour: FromRGB8(59, 142, 234)},
	{Index: 13, Name: "brightmagenta", Colour: FromRGB8(214, 112, 214)},
	{Index: 14, Name: "brightcyan", Colour: FromRGB8(41, 184, 219)},
	{Index: 15, Name: "brightwhite", Colour: FromRGB8(255, 255, 255)},
}

// ClosestANSI16 returns the base terminal colour perceptually nearest
// to c, matched by CIEDE2000 distance.
func ClosestANSI16(c Colour) ANSIColor {
	best := ansi16[0]
	bestDist := c.colorful().DistanceCIEDE2000(best.Colour.colorful())
	for _, ac := range ansi16[1:] {
		if d := c.colorful().DistanceCIEDE2000(ac.Colour.colorful()); d < bestDist {
			best, bestDist = ac, d
		}
	}
	return best
}

// ANSI256Index quantises the colour to the xterm 256-colour palette:
// greys map onto the 24-step grey ramp (232-255), everything else
// onto the 6x6x6 colour cube (16-231).
func ANSI256Index(c Colour) int {
	rgb := c.RGB()
	if rgb.R == rgb.G && rgb.G == rgb.B {
		if rgb.R < 8 {
			return 16
		}
		if rgb.R > 248 {
			return 231
		}
		return 232 + (int(rgb.R)-8)*24/247
	}
	return 16 + 36*(int(rgb.R)*5/255) + 6*(int(rgb.G)*5/255) + int(rgb.B)*5/255
}

// ANSI256Colour returns the palette colour at an xterm 256-colour
// index.
func ANSI256Colour(index int) (Colour, error) {
	switch {
	case index < 0 || index > 255:
		return Colour{}, &RangeError{Component: "ansi256 index", Value: float64(index), Min: 0, Max: 255}
	case index < 16:
		return ansi16[index].Colour, nil
	case index < 232:
		cube := index - 16
		steps := []uint8{0, 95, 135, 175, 215, 255}
		return FromRGB8(steps[cube/36], steps[cube/6%6], steps[cube%6]), nil
	}
	v := uint8(8 + (index-232)*10)
	return FromRGB8(v, v, v), nil
}

// ColourPreview returns a solid truecolor block for a colour. Width
// is the block's character count.
func ColourPreview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	rgb := c.RGB()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a truecolor block with text overlaid.
// The text is black or white, whichever contrasts better with the
// block.
func ColourPreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	fg := White
	if ContrastRatio(c, Black) > ContrastRatio(c, White) {
		fg = Black
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	bgRGB, fgRGB := c.RGB(), fg.RGB()
	return fmt.Sprintf("%s%d;%d;%d%s%s%d;%d;%d%s%s%s",
		ansiBgPrefix, bgRGB.R, bgRGB.G, bgRGB.B, ansiSuffix,
		ansiFgPrefix, fgRGB.R, fgRGB.G, fgRGB.B, ansiSuffix,
		display, ansiReset)
}
