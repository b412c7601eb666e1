package colour

import (
	"fmt"
	"strings"
)

// Format identifies a textual colour encoding.
type Format int

// Supported encodings.
const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
	FormatHSV
)

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	case FormatHSV:
		return "hsv"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Formats returns all supported encodings.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSL, FormatHSV}
}

// ParseFormat matches a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(strings.TrimSpace(name), f.String()) {
			return f, nil
		}
	}
	return 0, &ParseError{Input: name, Format: "format name", Reason: "expected hex, rgb, hsl or hsv"}
}

// Parse parses text in this encoding.
func (f Format) Parse(text string) (Colour, error) {
	switch f {
	case FormatRGB:
		return ParseRGB(text)
	case FormatHSL:
		return ParseHSL(text)
	case FormatHSV:
		return ParseHSV(text)
	}
	return ParseHex(text)
}

// Render renders a colour in this encoding.
func (f Format) Render(c Colour) string {
	switch f {
	case FormatRGB:
		return c.RGB().String()
	case FormatHSL:
		return c.HSL().String()
	case FormatHSV:
		return c.HSV().String()
	}
	return c.Hex()
}

// Parse interprets a colour from any supported form: hex (with or
// without "#", three or six digits), "rgb(...)", "hsl(...)",
// "hsv(...)", the diagnostic "wcag-hcl(...)" form, or a CSS colour
// name.
func Parse(text string) (Colour, error) {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "rgb("):
		return ParseRGB(s)
	case strings.HasPrefix(lower, "rgba("):
		return Colour{}, &ParseError{Input: text, Format: "colour", Reason: "rgba needs a background to composite over; use ParseAlpha"}
	case strings.HasPrefix(lower, "hsl("):
		return ParseHSL(s)
	case strings.HasPrefix(lower, "hsv("):
		return ParseHSV(s)
	case strings.HasPrefix(lower, "wcag-hcl("):
		return parseHCLText(s)
	case strings.HasPrefix(s, "#"):
		return parseHexLoose(s)
	}

	if c, err := parseHexLoose(s); err == nil {
		return c, nil
	}
	if c, ok := ParseNamed(s); ok {
		return c, nil
	}
	return Colour{}, &ParseError{Input: text, Format: "colour", Reason: "not a recognised colour form or name"}
}
