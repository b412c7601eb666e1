package colour

import (
	"errors"
	"testing"
)

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name    string
		alpha   float64
		wantErr bool
	}{
		{name: "opaque", alpha: 1},
		{name: "transparent", alpha: 0},
		{name: "half", alpha: 0.5},
		{name: "negative", alpha: -0.1, wantErr: true},
		{name: "above one", alpha: 1.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRGB8(10, 20, 30).WithAlpha(tt.alpha)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WithAlpha(%v) error = %v, wantErr %v", tt.alpha, err, tt.wantErr)
			}
			if tt.wantErr {
				var rangeErr *RangeError
				if !errors.As(err, &rangeErr) {
					t.Errorf("WithAlpha() error = %T, want *RangeError", err)
				}
			}
		})
	}
}

func TestOver(t *testing.T) {
	red := FromRGB8(255, 0, 0)

	t.Run("opaque ignores background", func(t *testing.T) {
		ac, _ := red.WithAlpha(1)
		if got := ac.Over(White); !got.Equal(red) {
			t.Errorf("Over() = %v, want %v", got, red)
		}
	})

	t.Run("transparent is the background", func(t *testing.T) {
		ac, _ := red.WithAlpha(0)
		if got := ac.Over(White); !got.Equal(White) {
			t.Errorf("Over() = %v, want %v", got, White)
		}
	})

	t.Run("blends in linear light", func(t *testing.T) {
		ac, _ := red.WithAlpha(0.5)
		got := ac.Over(White)
		// Half red over white: red channel stays saturated, the
		// others sit at the midpoint of linear light.
		want := Colour{r: 1, g: delinearise(0.5), b: delinearise(0.5)}
		if !got.Equal(want) {
			t.Errorf("Over() = %v, want %v", got, want)
		}
	})
}

func TestParseRGBA(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAlpha float64
		wantErr   bool
	}{
		{name: "half alpha", input: "rgba(255, 0, 0, 0.5)", wantAlpha: 0.5},
		{name: "integer alpha", input: "rgba(0, 0, 0, 1)", wantAlpha: 1},
		{name: "leading dot", input: "rgba(1, 2, 3, .25)", wantAlpha: 0.25},
		{name: "alpha above one", input: "rgba(0, 0, 0, 1.5)", wantErr: true},
		{name: "channel above 255", input: "rgba(300, 0, 0, 0.5)", wantErr: true},
		{name: "missing alpha", input: "rgba(1, 2, 3)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGBA(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRGBA(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.Alpha != tt.wantAlpha {
				t.Errorf("ParseRGBA(%q).Alpha = %v, want %v", tt.input, got.Alpha, tt.wantAlpha)
			}
		})
	}
}

func TestAlphaColourString(t *testing.T) {
	ac, _ := FromRGB8(255, 0, 0).WithAlpha(0.5)
	if got := ac.String(); got != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("String() = %q, want %q", got, "rgba(255, 0, 0, 0.5)")
	}
}

func TestParseAlpha(t *testing.T) {
	t.Run("rgba form carries its alpha", func(t *testing.T) {
		got, err := ParseAlpha("rgba(10, 20, 30, 0.75)")
		if err != nil {
			t.Fatalf("ParseAlpha() error = %v", err)
		}
		if got.Alpha != 0.75 {
			t.Errorf("Alpha = %v, want 0.75", got.Alpha)
		}
	})

	t.Run("other forms are opaque", func(t *testing.T) {
		got, err := ParseAlpha("#ff0000")
		if err != nil {
			t.Fatalf("ParseAlpha() error = %v", err)
		}
		if got.Alpha != 1 {
			t.Errorf("Alpha = %v, want 1", got.Alpha)
		}
	})
}
