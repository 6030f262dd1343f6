package ui

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	"github.com/piwi3910/adaptive-layout/internal/model"
)

// Object positions expected by ScaffoldLayout. The panels sit at the index of
// their adaptive.Panel value; the bottom bar follows them.
const (
	scaffoldBarIndex    = 3
	scaffoldObjectCount = 4
)

// MeasureFunc turns the container size into a window measurement.
type MeasureFunc func(size fyne.Size) model.WindowInfo

// ScaffoldLayout classifies the container on every layout pass and arranges
// its objects according to the resulting plan. Objects are
// [list, detail, analytics, bottomBar]; hidden panels are not positioned.
type ScaffoldLayout struct {
	measure      MeasureFunc
	logger       zerolog.Logger
	onClassified func(devicetype.DeviceType, adaptive.Plan)

	plan    adaptive.Plan
	planned bool
}

// NewScaffoldLayout creates a layout that measures with fn.
func NewScaffoldLayout(fn MeasureFunc, logger zerolog.Logger) *ScaffoldLayout {
	return &ScaffoldLayout{measure: fn, logger: logger}
}

// OnClassified registers a callback fired whenever the classification differs
// from the previous layout pass.
func (l *ScaffoldLayout) OnClassified(fn func(devicetype.DeviceType, adaptive.Plan)) {
	l.onClassified = fn
}

// Plan returns the plan used by the last layout pass.
func (l *ScaffoldLayout) Plan() adaptive.Plan {
	return l.plan
}

// Layout is called to pack all child objects into a specified size.
func (l *ScaffoldLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	device := devicetype.ClassifyWindow(l.measure(size))
	plan := adaptive.PlanFor(device)
	l.update(plan)

	contentH := size.Height
	if len(objects) > scaffoldBarIndex {
		bar := objects[scaffoldBarIndex]
		if plan.ShowBottomBar {
			barH := bar.MinSize().Height
			contentH -= barH
			bar.Move(fyne.NewPos(0, contentH))
			bar.Resize(fyne.NewSize(size.Width, barH))
			setVisible(bar, true)
		} else {
			setVisible(bar, false)
		}
	}

	for i := 0; i < scaffoldBarIndex && i < len(objects); i++ {
		if !plan.Has(adaptive.Panel(i)) {
			setVisible(objects[i], false)
		}
	}

	x := float32(0)
	widths := plan.Widths(size.Width)
	for i, slot := range plan.Slots {
		if int(slot.Panel) >= len(objects) {
			continue
		}
		obj := objects[slot.Panel]
		obj.Move(fyne.NewPos(x, 0))
		obj.Resize(fyne.NewSize(widths[i], contentH))
		setVisible(obj, true)
		x += widths[i]
	}
}

// MinSize is the list panel's minimum plus room for the bottom bar.
func (l *ScaffoldLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	if len(objects) > 0 {
		size = objects[0].MinSize()
	}
	if len(objects) > scaffoldBarIndex && l.plan.ShowBottomBar {
		size.Height += objects[scaffoldBarIndex].MinSize().Height
	}
	return size
}

func (l *ScaffoldLayout) update(plan adaptive.Plan) {
	prev, first := l.plan, !l.planned
	l.plan, l.planned = plan, true

	if first || !prev.SameLayout(plan) {
		l.logger.Debug().
			Str("from", prev.Device.String()).
			Str("to", plan.Device.String()).
			Str("layout", plan.Describe()).
			Msg("layout changed")
	}
	if (first || !prev.Device.Equal(plan.Device)) && l.onClassified != nil {
		l.onClassified(plan.Device, plan)
	}
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if obj.Visible() == visible {
		return
	}
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
