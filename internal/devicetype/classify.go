package devicetype

import "github.com/piwi3910/adaptive-layout/internal/model"

// Width thresholds (dp). They track the standard window size class
// breakpoints and are kept as names so they can be recalibrated in one place.
const (
	MediumLowerBound     = model.WidthDpMediumLowerBound
	ExpandedLowerBound   = model.WidthDpExpandedLowerBound
	LargeLowerBound      = model.WidthDpLargeLowerBound
	ExtraLargeLowerBound = model.WidthDpExtraLargeLowerBound
)

// MediumMaxAspectRatio is the width/height ratio at and above which a
// medium-width window is treated as a landscape phone and demoted to Compact.
const MediumMaxAspectRatio = 1.6

// Landscape phone limits used by IsLandscapePhone.
const (
	LandscapePhoneMaxHeight      = 500
	LandscapePhoneMinAspectRatio = 1.8
)

// Classify maps a window measurement to a DeviceType.
//
// A non-empty hinge list always yields Foldable. Otherwise the width is
// checked against the thresholds from the top down; a medium-width window
// with aspect ratio >= 1.6 falls back to Compact. A height of 0 gives an
// infinite aspect ratio, so a medium-width window of height 0 is Compact.
func Classify(width, height int, hinges []model.HingeInfo, tabletop bool) DeviceType {
	if len(hinges) > 0 {
		return Foldable(width, height, tabletop, hinges)
	}

	ratio := aspectRatio(width, height)

	switch {
	case width >= ExtraLargeLowerBound:
		return ExtraLarge(width, height)
	case width >= LargeLowerBound:
		return Large(width, height)
	case width >= ExpandedLowerBound:
		return Expanded(width, height)
	case width >= MediumLowerBound:
		if ratio < MediumMaxAspectRatio {
			return Medium(width, height)
		}
		return Compact(width, height)
	default:
		return Compact(width, height)
	}
}

// ClassifyWindow classifies a measurement taken from the window metrics.
func ClassifyWindow(info model.WindowInfo) DeviceType {
	return Classify(
		info.SizeClass.MinWidthDp,
		info.SizeClass.MinHeightDp,
		info.Posture.Hinges,
		info.Posture.Tabletop,
	)
}

// IsLandscapePhone reports a wide but short window: wider than tall, under
// 500 dp high and at least 1.8 times as wide as high. It applies to every
// variant and is used to veto the three-panel layout.
func (d DeviceType) IsLandscapePhone() bool {
	return d.minWidth > d.minHeight &&
		d.minHeight < LandscapePhoneMaxHeight &&
		d.AspectRatio() >= LandscapePhoneMinAspectRatio
}
