package menulayout

import (
	"errors"
	"testing"
)

func TestParseAlignment(t *testing.T) {
	tests := map[string]Alignment{
		"CENTER":                AlignCenter,
		"top_left":              AlignTopLeft,
		"top-center":            AlignTopCenter,
		" Top Right ":           AlignTopRight,
		"CENTER_LEFT":           AlignCenterLeft,
		"center-right":          AlignCenterRight,
		"BOTTOM_LEFT":           AlignBottomLeft,
		"BOTTOM_CENTER":         AlignBottomCenter,
		"BOTTOM_RIGHT":          AlignBottomRight,
		"ALIGN_ABOVE_PARENT":    AlignAboveParent,
		"align-below-parent":    AlignBelowParent,
		"ALIGN_LEFT_TO_PARENT":  AlignLeftOfParent,
		"ALIGN_RIGHT_TO_PARENT": AlignRightOfParent,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := ParseAlignment(input)
			if err != nil {
				t.Fatalf("ParseAlignment(%q): %v", input, err)
			}
			if got != want {
				t.Errorf("Expected %s, got %s", want, got)
			}
		})
	}

	if _, err := ParseAlignment("MIDDLE"); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("Expected ErrUnknownAlignment, got %v", err)
	}
}

func TestAlignmentText(t *testing.T) {
	for a := AlignCenter; a <= AlignRightOfParent; a++ {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", a, err)
		}
		var back Alignment
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != a {
			t.Errorf("Expected %s, got %s", a, back)
		}
	}

	if _, err := Alignment(200).MarshalText(); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("Expected ErrUnknownAlignment, got %v", err)
	}
	if got := Alignment(200).String(); got != "Alignment(200)" {
		t.Errorf("Expected Alignment(200), got %s", got)
	}

	a := AlignTopLeft
	if err := a.UnmarshalText([]byte("sideways")); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("Expected ErrUnknownAlignment, got %v", err)
	}
	if a != AlignTopLeft {
		t.Errorf("failed UnmarshalText must not modify the value, got %s", a)
	}
}

func TestParseLayoutType(t *testing.T) {
	for input, want := range map[string]LayoutType{
		"HORIZONTAL": LayoutHorizontal,
		"vertical":   LayoutVertical,
	} {
		got, err := ParseLayoutType(input)
		if err != nil || got != want {
			t.Errorf("ParseLayoutType(%q) = %s, %v; want %s", input, got, err, want)
		}
	}

	var lt LayoutType
	if err := lt.UnmarshalText([]byte("GRID")); !errors.Is(err, ErrUnknownLayoutType) {
		t.Errorf("Expected ErrUnknownLayoutType, got %v", err)
	}
}

func TestAlignmentInner(t *testing.T) {
	tests := map[Alignment]Alignment{
		AlignAboveParent:   AlignTopCenter,
		AlignBelowParent:   AlignBottomCenter,
		AlignLeftOfParent:  AlignCenterLeft,
		AlignRightOfParent: AlignCenterRight,
		AlignTopRight:      AlignTopRight,
		AlignCenter:        AlignCenter,
	}

	for outer, want := range tests {
		if got := outer.inner(); got != want {
			t.Errorf("%s.inner(): expected %s, got %s", outer, want, got)
		}
		if got := want.IsOuter(); got {
			t.Errorf("%s should be an inner alignment", want)
		}
	}
}

func TestAlignmentOffsetAxis(t *testing.T) {
	vertical := map[Alignment]bool{
		AlignCenterLeft:    true,
		AlignCenterRight:   true,
		AlignLeftOfParent:  true,
		AlignRightOfParent: true,
	}
	for a := AlignCenter; a <= AlignRightOfParent; a++ {
		if got := a.offsetsVertically(); got != vertical[a] {
			t.Errorf("%s.offsetsVertically() = %v, want %v", a, got, vertical[a])
		}
	}
}
