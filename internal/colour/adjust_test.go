package colour

import (
	"errors"
	"testing"
)

func TestAdjustContrastDarkensGreyOnWhite(t *testing.T) {
	fg := FromRGB8(119, 119, 119)
	got, err := AdjustContrast(fg, White, 4.5)
	if err != nil {
		t.Fatalf("AdjustContrast() error = %v", err)
	}
	if ratio := ContrastRatio(got, White); ratio < 4.5 {
		t.Errorf("ContrastRatio(adjusted, white) = %v, want >= 4.5 with no shortfall", ratio)
	}
	if Luminance(got) >= Luminance(fg) {
		t.Errorf("adjusted colour is not darker: luminance %v >= %v", Luminance(got), Luminance(fg))
	}
}

func TestAdjustContrastAlreadySatisfied(t *testing.T) {
	got, err := AdjustContrast(Black, White, 4.5)
	if err != nil {
		t.Fatalf("AdjustContrast() error = %v", err)
	}
	if got != Black {
		t.Errorf("AdjustContrast() = %v, want the unchanged foreground", got)
	}
}

func TestAdjustContrastPreservesHue(t *testing.T) {
	fg := FromRGB8(200, 80, 80)
	got, err := AdjustContrast(fg, White, 7)
	if err != nil {
		t.Fatalf("AdjustContrast() error = %v", err)
	}
	if ratio := ContrastRatio(got, White); ratio < 7 {
		t.Errorf("ContrastRatio() = %v, want >= 7", ratio)
	}
	if gotH, wantH := got.HCL().H, fg.HCL().H; !almostEqual(gotH, wantH, 0.5) {
		t.Errorf("adjusted hue = %v, want %v", gotH, wantH)
	}
}

// A white background leaves only the darkening direction; the single
// viable candidate is returned, not an error.
func TestAdjustContrastOneDirection(t *testing.T) {
	got, err := AdjustContrast(FromRGB8(250, 250, 250), White, 7)
	if err != nil {
		t.Fatalf("AdjustContrast() error = %v", err)
	}
	if Luminance(got) >= Luminance(White) {
		t.Errorf("expected a darker candidate, got luminance %v", Luminance(got))
	}
	if ratio := ContrastRatio(got, White); ratio < 7 {
		t.Errorf("ContrastRatio() = %v, want >= 7", ratio)
	}
}

func TestAdjustContrastUnachievable(t *testing.T) {
	bg := FromRGB8(119, 119, 119)
	_, err := AdjustContrast(FromRGB8(200, 30, 30), bg, 21)
	var unachievable *UnachievableError
	if !errors.As(err, &unachievable) {
		t.Fatalf("AdjustContrast() error = %T, want *UnachievableError", err)
	}
	if unachievable.Best <= 1 || unachievable.Best >= 21 {
		t.Errorf("UnachievableError.Best = %v, want the reachable maximum", unachievable.Best)
	}
}

func TestAdjustContrastTargetBelowScale(t *testing.T) {
	_, err := AdjustContrast(Black, White, 0.5)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("AdjustContrast() error = %T, want *RangeError", err)
	}
}

// Every returned colour must measure at or above the target with the
// package's own ContrastRatio, across a spread of pairings.
func TestAdjustContrastNeverFallsShort(t *testing.T) {
	foregrounds := []Colour{
		FromRGB8(119, 119, 119), FromRGB8(200, 80, 80), FromRGB8(30, 144, 255),
		FromRGB8(240, 240, 100), FromRGB8(10, 10, 10),
	}
	backgrounds := []Colour{White, Black, FromRGB8(40, 44, 52), FromRGB8(238, 238, 238)}
	targets := []float64{3, 4.5, 7}

	for _, fg := range foregrounds {
		for _, bg := range backgrounds {
			for _, target := range targets {
				got, err := AdjustContrast(fg, bg, target)
				if err != nil {
					var unachievable *UnachievableError
					if !errors.As(err, &unachievable) {
						t.Fatalf("AdjustContrast(%v, %v, %v) error = %v", fg, bg, target, err)
					}
					continue
				}
				if ratio := ContrastRatio(got, bg); ratio < target {
					t.Errorf("AdjustContrast(%v, %v, %v) ratio = %v, below target", fg, bg, target, ratio)
				}
			}
		}
	}
}

func TestAdjustContrastDeterministic(t *testing.T) {
	fg, bg := FromRGB8(130, 130, 130), FromRGB8(100, 100, 100)
	first, err := AdjustContrast(fg, bg, 4.5)
	if err != nil {
		t.Fatalf("AdjustContrast() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := AdjustContrast(fg, bg, 4.5)
		if err != nil {
			t.Fatalf("AdjustContrast() error = %v", err)
		}
		if again != first {
			t.Fatalf("AdjustContrast() is not deterministic: %v vs %v", again, first)
		}
	}
}

func TestParseAdjustMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AdjustMode
		wantErr bool
	}{
		{name: "fg", input: "fg", want: AdjustForeground},
		{name: "foreground", input: "foreground", want: AdjustForeground},
		{name: "bg", input: "BG", want: AdjustBackground},
		{name: "auto", input: "auto", want: AdjustAuto},
		{name: "unknown", input: "both", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAdjustMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAdjustMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAdjustMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAdjustPair(t *testing.T) {
	fg, bg := FromRGB8(119, 119, 119), White

	t.Run("foreground mode moves the foreground", func(t *testing.T) {
		gotFg, gotBg, err := AdjustPair(fg, bg, 4.5, AdjustForeground)
		if err != nil {
			t.Fatalf("AdjustPair() error = %v", err)
		}
		if gotBg != bg {
			t.Errorf("background moved to %v", gotBg)
		}
		if ratio := ContrastRatio(gotFg, gotBg); ratio < 4.5 {
			t.Errorf("ratio = %v, want >= 4.5", ratio)
		}
	})

	t.Run("background mode moves the background", func(t *testing.T) {
		gotFg, gotBg, err := AdjustPair(fg, bg, 4.5, AdjustBackground)
		if err != nil {
			t.Fatalf("AdjustPair() error = %v", err)
		}
		if gotFg != fg {
			t.Errorf("foreground moved to %v", gotFg)
		}
		if ratio := ContrastRatio(gotFg, gotBg); ratio < 4.5 {
			t.Errorf("ratio = %v, want >= 4.5", ratio)
		}
	})

	t.Run("auto mode keeps the smaller move", func(t *testing.T) {
		gotFg, gotBg, err := AdjustPair(fg, bg, 4.5, AdjustAuto)
		if err != nil {
			t.Fatalf("AdjustPair() error = %v", err)
		}
		if gotFg != fg && gotBg != bg {
			t.Errorf("auto mode moved both sides: %v / %v", gotFg, gotBg)
		}
		if ratio := ContrastRatio(gotFg, gotBg); ratio < 4.5 {
			t.Errorf("ratio = %v, want >= 4.5", ratio)
		}
	})
}
