package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	"github.com/piwi3910/adaptive-layout/internal/export"
	"github.com/piwi3910/adaptive-layout/internal/ui/widgets"
)

const maxTransitions = 8

// newPanel wraps a panel body in its colored background and title. Panels
// always render with the light variant so text stays readable on the pastel
// backgrounds.
func newPanel(p adaptive.Panel, body fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(widgets.PanelColor(p))
	title := widget.NewLabelWithStyle(p.Title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	content := container.NewBorder(title, nil, nil, nil, body)
	return container.NewThemeOverride(
		container.NewStack(bg, container.NewPadded(content)),
		NewAdaptiveThemeWithVariant(theme.VariantLight),
	)
}

// ─── List Panel ────────────────────────────────────────────

func (a *App) buildListPanel() fyne.CanvasObject {
	a.presetList = widget.NewList(
		func() int { return len(a.catalog.Presets) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil,
				widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
				widget.NewLabel("template"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(a.catalog.Presets) {
				return
			}
			p := a.catalog.Presets[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(fmt.Sprintf("%s (%d x %d)", p.Name, p.WidthDp, p.HeightDp))
			row.Objects[1].(*widget.Button).OnTapped = func() {
				a.confirmRemovePreset(id)
			}
		},
	)
	a.presetList.OnSelected = func(id widget.ListItemID) {
		if id < len(a.catalog.Presets) {
			a.selected = id
			a.applyPreset(a.catalog.Presets[id])
		}
	}
	a.presetList.OnUnselected = func(id widget.ListItemID) {
		if a.selected == id {
			a.selected = -1
		}
	}

	liveBtn := widget.NewButtonWithIcon("Live Window", theme.ViewRefreshIcon(), func() {
		a.resetSimulation()
	})

	return newPanel(adaptive.PanelList, container.NewBorder(nil, liveBtn, nil, nil, a.presetList))
}

func (a *App) confirmRemovePreset(idx int) {
	if idx < 0 || idx >= len(a.catalog.Presets) {
		return
	}
	name := a.catalog.Presets[idx].Name
	dialog.ShowConfirm("Remove Preset",
		fmt.Sprintf("Remove the preset %q?", name),
		func(ok bool) {
			if !ok {
				return
			}
			a.catalog.Presets = append(a.catalog.Presets[:idx], a.catalog.Presets[idx+1:]...)
			a.presetsChanged()
		},
		a.window,
	)
}

// ─── Detail Panel ──────────────────────────────────────────

func (a *App) buildDetailPanel() fyne.CanvasObject {
	a.detailLabel = widget.NewLabel("")
	a.detailLabel.Wrapping = fyne.TextWrapWord
	a.preview = widgets.NewDevicePreview(220, 160)

	body := container.NewVBox(a.detailLabel, widget.NewSeparator(), container.NewCenter(a.preview))
	return newPanel(adaptive.PanelDetail, container.NewVScroll(body))
}

// describeDevice renders the live classification for the Detail panel.
func describeDevice(d devicetype.DeviceType, plan adaptive.Plan, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Device type: %s (rank %d)\n", d.Kind(), d.Rank())
	fmt.Fprintf(&b, "Minimum size: %d x %d dp\n", d.MinWidth(), d.MinHeight())
	fmt.Fprintf(&b, "Aspect ratio: %s\n", adaptive.FormatRatio(d.AspectRatio()))
	fmt.Fprintf(&b, "Landscape phone: %s\n", adaptive.YesNo(d.IsLandscapePhone()))
	if fold, ok := d.Fold(); ok {
		fmt.Fprintf(&b, "Fold: %d hinge(s), tabletop %s\n", len(fold.Hinges), adaptive.YesNo(fold.Tabletop))
	}
	fmt.Fprintf(&b, "Layout: %s\n", plan.Describe())
	fmt.Fprintf(&b, "Source: %s", source)
	return b.String()
}

// ─── Analytics Panel ───────────────────────────────────────

func (a *App) buildAnalyticsPanel() fyne.CanvasObject {
	a.analyticsLabel = widget.NewLabel("")
	a.refreshAnalytics()
	return newPanel(adaptive.PanelAnalytics, container.NewVScroll(a.analyticsLabel))
}

func (a *App) refreshAnalytics() {
	if a.analyticsLabel == nil {
		return
	}
	rows := export.ClassifyCatalog(a.catalog, a.config.ExactDimensions)
	a.analyticsLabel.SetText(analyticsText(export.CountByKind(rows), len(rows), a.transitions))
}

// recordTransition keeps the most recent layout changes, newest first.
func (a *App) recordTransition(from, to adaptive.Plan) {
	entry := fmt.Sprintf("%s -> %s: %s", from.Device.Kind(), to.Device.Kind(), to.Describe())
	a.transitions = append([]string{entry}, a.transitions...)
	if len(a.transitions) > maxTransitions {
		a.transitions = a.transitions[:maxTransitions]
	}
}

// analyticsText summarises the preset catalog per device type and lists the
// recent layout transitions.
func analyticsText(counts map[devicetype.Kind]int, total int, transitions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Preset catalog (%d presets)\n", total)
	for _, k := range devicetype.Kinds() {
		fmt.Fprintf(&b, "  %s: %d\n", k, counts[k])
	}
	b.WriteString("\nRecent layout changes\n")
	if len(transitions) == 0 {
		b.WriteString("  none yet")
		return b.String()
	}
	for i, t := range transitions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + t)
	}
	return b.String()
}

// spacerRow centres its objects horizontally.
func spacerRow(objects ...fyne.CanvasObject) *fyne.Container {
	row := []fyne.CanvasObject{layout.NewSpacer()}
	row = append(row, objects...)
	row = append(row, layout.NewSpacer())
	return container.NewHBox(row...)
}
