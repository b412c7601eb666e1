package colour

import (
	"strings"
	"testing"
)

func TestClosestANSI16ExactMatches(t *testing.T) {
	for _, ac := range ansi16 {
		got := ClosestANSI16(ac.Colour)
		if got.Index != ac.Index {
			t.Errorf("ClosestANSI16(%s) = %d, want %d", ac.Name, got.Index, ac.Index)
		}
	}
}

func TestANSI256Index(t *testing.T) {
	tests := []struct {
		name  string
		input Colour
		want  int
	}{
		{name: "black uses cube origin", input: Black, want: 16},
		{name: "white uses cube top", input: White, want: 231},
		{name: "pure red", input: FromRGB8(255, 0, 0), want: 196},
		{name: "pure green", input: FromRGB8(0, 255, 0), want: 46},
		{name: "pure blue", input: FromRGB8(0, 0, 255), want: 21},
		{name: "mid grey on the ramp", input: FromRGB8(128, 128, 128), want: 243},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ANSI256Index(tt.input); got != tt.want {
				t.Errorf("ANSI256Index() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestANSI256Colour(t *testing.T) {
	for index := 0; index <= 255; index++ {
		c, err := ANSI256Colour(index)
		if err != nil {
			t.Fatalf("ANSI256Colour(%d) error = %v", index, err)
		}
		r, g, b := c.Channels()
		for _, v := range []float64{r, g, b} {
			if v < 0 || v > 1 {
				t.Fatalf("ANSI256Colour(%d) channel out of range: %v", index, v)
			}
		}
	}
	if _, err := ANSI256Colour(256); err == nil {
		t.Error("ANSI256Colour(256) expected an error")
	}
}

func TestANSI256GreysStayOnRamp(t *testing.T) {
	// Greys between the ramp's endpoints land on the ramp, never in
	// the colour cube.
	for v := 8; v <= 248; v++ {
		got := ANSI256Index(FromRGB8(uint8(v), uint8(v), uint8(v)))
		if got < 232 || got > 255 {
			t.Errorf("ANSI256Index(grey %d) = %d, want a grey ramp index", v, got)
		}
	}
}

func TestColourPreview(t *testing.T) {
	got := ColourPreview(FromRGB8(255, 0, 0), 4)
	if !strings.HasPrefix(got, "\033[48;2;255;0;0m") {
		t.Errorf("ColourPreview() = %q, want a truecolor background prefix", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("ColourPreview() = %q, want a trailing reset", got)
	}
	if !strings.Contains(got, strings.Repeat(" ", 4)) {
		t.Errorf("ColourPreview() = %q, want a 4-wide block", got)
	}
}

func TestColourPreviewWithTextPicksReadableText(t *testing.T) {
	onWhite := ColourPreviewWithText(White, "x", 3)
	if !strings.Contains(onWhite, "\033[38;2;0;0;0m") {
		t.Errorf("text on white = %q, want black foreground", onWhite)
	}
	onBlack := ColourPreviewWithText(Black, "x", 3)
	if !strings.Contains(onBlack, "\033[38;2;255;255;255m") {
		t.Errorf("text on black = %q, want white foreground", onBlack)
	}
}
