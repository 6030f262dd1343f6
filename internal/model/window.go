package model

// Width breakpoints (dp) of the standard window size classes.
const (
	WidthDpMediumLowerBound     = 600
	WidthDpExpandedLowerBound   = 840
	WidthDpLargeLowerBound      = 1200
	WidthDpExtraLargeLowerBound = 1600
)

// Height breakpoints (dp) of the standard window size classes.
const (
	HeightDpMediumLowerBound   = 480
	HeightDpExpandedLowerBound = 900
)

var (
	widthBreakpoints = []int{
		WidthDpExtraLargeLowerBound,
		WidthDpLargeLowerBound,
		WidthDpExpandedLowerBound,
		WidthDpMediumLowerBound,
	}
	heightBreakpoints = []int{
		HeightDpExpandedLowerBound,
		HeightDpMediumLowerBound,
	}
)

// Bounds is a rectangle in dp, relative to the window.
type Bounds struct {
	Left   float32 `json:"left"`
	Top    float32 `json:"top"`
	Right  float32 `json:"right"`
	Bottom float32 `json:"bottom"`
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float32 { return b.Right - b.Left }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float32 { return b.Bottom - b.Top }

// HingeInfo describes a physical or logical fold seam of the display.
type HingeInfo struct {
	Bounds     Bounds `json:"bounds"`
	Flat       bool   `json:"flat"`       // fully opened (180 degrees)
	Vertical   bool   `json:"vertical"`   // seam runs top to bottom
	Separating bool   `json:"separating"` // splits the window into two logical areas
	Occluding  bool   `json:"occluding"`  // hides part of the content
}

// NewHinge creates a seam across a window of the given size, centred on the
// split axis. A vertical hinge splits left/right, a horizontal one top/bottom.
func NewHinge(widthDp, heightDp int, vertical bool) HingeInfo {
	w, h := float32(widthDp), float32(heightDp)
	var b Bounds
	if vertical {
		b = Bounds{Left: w / 2, Top: 0, Right: w / 2, Bottom: h}
	} else {
		b = Bounds{Left: 0, Top: h / 2, Right: w, Bottom: h / 2}
	}
	return HingeInfo{
		Bounds:     b,
		Flat:       true,
		Vertical:   vertical,
		Separating: false,
		Occluding:  false,
	}
}

// WindowPosture is the fold state of the device hosting the window.
type WindowPosture struct {
	Tabletop bool        `json:"tabletop"`
	Hinges   []HingeInfo `json:"hinges"`
}

// IsFoldable reports whether any fold seam was detected.
func (p WindowPosture) IsFoldable() bool {
	return len(p.Hinges) > 0
}

// WindowSizeClass holds the lower bounds (dp) of the window's current
// width and height size classes.
type WindowSizeClass struct {
	MinWidthDp  int `json:"min_width_dp"`
	MinHeightDp int `json:"min_height_dp"`
}

// ComputeWindowSizeClass buckets a measured window size into its size class.
// Each minimum is the largest breakpoint not above the measured value, so a
// 700x400 dp window yields MinWidthDp=600, MinHeightDp=0.
func ComputeWindowSizeClass(widthDp, heightDp float32) WindowSizeClass {
	return WindowSizeClass{
		MinWidthDp:  lowerBound(widthDp, widthBreakpoints),
		MinHeightDp: lowerBound(heightDp, heightBreakpoints),
	}
}

// ExactWindowSizeClass uses the measured size itself, truncated to whole dp,
// instead of bucketing it. The result is a minimum, so it never rounds up.
func ExactWindowSizeClass(widthDp, heightDp float32) WindowSizeClass {
	return WindowSizeClass{
		MinWidthDp:  floorDp(widthDp),
		MinHeightDp: floorDp(heightDp),
	}
}

// IsAtLeastBreakpoint reports whether both minima reach the given breakpoints.
func (c WindowSizeClass) IsAtLeastBreakpoint(widthDp, heightDp int) bool {
	return c.MinWidthDp >= widthDp && c.MinHeightDp >= heightDp
}

func lowerBound(v float32, descending []int) int {
	for _, bp := range descending {
		if v >= float32(bp) {
			return bp
		}
	}
	return 0
}

func floorDp(v float32) int {
	if v <= 0 {
		return 0
	}
	return int(v)
}

// WindowInfo is one measurement of the window, taken on a layout pass.
type WindowInfo struct {
	SizeClass WindowSizeClass `json:"size_class"`
	Posture   WindowPosture   `json:"posture"`
}

// MeasureWindow builds a WindowInfo for a window of the given size.
// When exact is false the size is bucketed into its size class.
func MeasureWindow(widthDp, heightDp float32, posture WindowPosture, exact bool) WindowInfo {
	sc := ComputeWindowSizeClass(widthDp, heightDp)
	if exact {
		sc = ExactWindowSizeClass(widthDp, heightDp)
	}
	return WindowInfo{SizeClass: sc, Posture: posture}
}
