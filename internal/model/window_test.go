package model

import "testing"

func TestComputeWindowSizeClass(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		wantW, wantH  int
	}{
		{"tiny", 320, 240, 0, 0},
		{"phone portrait", 412, 915, 0, 900},
		{"phone landscape", 915, 412, 840, 0},
		{"medium boundary", 600, 480, 600, 480},
		{"just below medium", 599.9, 479.9, 0, 0},
		{"tablet", 1280, 800, 1200, 480},
		{"desktop", 1920, 1080, 1600, 900},
		{"negative", -10, -10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWindowSizeClass(tt.width, tt.height)
			if got.MinWidthDp != tt.wantW || got.MinHeightDp != tt.wantH {
				t.Errorf("ComputeWindowSizeClass(%v, %v) = %+v, want %dx%d", tt.width, tt.height, got, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestExactWindowSizeClassTruncates(t *testing.T) {
	got := ExactWindowSizeClass(700.4, 399.6)
	if got.MinWidthDp != 700 || got.MinHeightDp != 399 {
		t.Errorf("expected 700x399, got %+v", got)
	}
	if got := ExactWindowSizeClass(599.6, 400); got.MinWidthDp != 599 {
		t.Errorf("expected 599.6 to stay below the medium bound, got %+v", got)
	}
	if got := ExactWindowSizeClass(-3, 0); got.MinWidthDp != 0 || got.MinHeightDp != 0 {
		t.Errorf("expected negative sizes to clamp to 0, got %+v", got)
	}
}

func TestIsAtLeastBreakpoint(t *testing.T) {
	sc := WindowSizeClass{MinWidthDp: 840, MinHeightDp: 480}
	if !sc.IsAtLeastBreakpoint(WidthDpMediumLowerBound, HeightDpMediumLowerBound) {
		t.Error("840x480 should reach the medium breakpoints")
	}
	if sc.IsAtLeastBreakpoint(WidthDpExpandedLowerBound, HeightDpExpandedLowerBound) {
		t.Error("840x480 should not reach the expanded height breakpoint")
	}
}

func TestNewHingeOrientation(t *testing.T) {
	v := NewHinge(800, 600, true)
	if !v.Vertical || v.Bounds.Left != 400 || v.Bounds.Height() != 600 {
		t.Errorf("unexpected vertical hinge: %+v", v)
	}
	h := NewHinge(800, 600, false)
	if h.Vertical || h.Bounds.Top != 300 || h.Bounds.Width() != 800 {
		t.Errorf("unexpected horizontal hinge: %+v", h)
	}
}

func TestMeasureWindow(t *testing.T) {
	posture := WindowPosture{Tabletop: true, Hinges: []HingeInfo{NewHinge(700, 400, false)}}

	bucketed := MeasureWindow(700, 400, posture, false)
	if bucketed.SizeClass.MinWidthDp != 600 || bucketed.SizeClass.MinHeightDp != 0 {
		t.Errorf("expected bucketed 600x0, got %+v", bucketed.SizeClass)
	}
	exact := MeasureWindow(700, 400, posture, true)
	if exact.SizeClass.MinWidthDp != 700 || exact.SizeClass.MinHeightDp != 400 {
		t.Errorf("expected exact 700x400, got %+v", exact.SizeClass)
	}
	if !exact.Posture.IsFoldable() || !exact.Posture.Tabletop {
		t.Error("posture should be forwarded unchanged")
	}
}
