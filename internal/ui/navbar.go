package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/adaptive-layout/internal/model"
	"github.com/piwi3910/adaptive-layout/internal/ui/widgets"
)

// buildBottomBar creates the Home / Search navigation bar shown on compact
// windows.
func (a *App) buildBottomBar() fyne.CanvasObject {
	a.homeBtn = newIconButtonWithTooltip(theme.HomeIcon(), "Home", func() {
		setSelected(a.homeBtn, a.homeBtn, a.searchBtn)
		a.resetSimulation()
	})
	a.searchBtn = newIconButtonWithTooltip(theme.SearchIcon(), "Search", func() {
		setSelected(a.searchBtn, a.homeBtn, a.searchBtn)
		a.showSearchDialog()
	})
	setSelected(a.homeBtn, a.homeBtn, a.searchBtn)

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameHeaderBackground))
	bg.SetMinSize(fyne.NewSize(0, widgets.BottomBarHeightDp))

	return container.NewStack(bg, container.NewGridWithColumns(2,
		container.NewCenter(a.homeBtn),
		container.NewCenter(a.searchBtn),
	))
}

// filterPresets returns the presets whose name or notes contain the query,
// ignoring case. An empty query matches everything.
func filterPresets(presets []model.DevicePreset, query string) []model.DevicePreset {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.DevicePreset
	for _, p := range presets {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Notes), q) {
			out = append(out, p)
		}
	}
	return out
}

func (a *App) showSearchDialog() {
	matches := filterPresets(a.catalog.Presets, "")
	var d dialog.Dialog

	results := widget.NewList(
		func() int { return len(matches) },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			p := matches[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s (%d x %d)", p.Name, p.WidthDp, p.HeightDp))
		},
	)
	results.OnSelected = func(id widget.ListItemID) {
		if id < len(matches) {
			a.applyPreset(matches[id])
		}
		d.Hide()
	}

	query := widget.NewEntry()
	query.SetPlaceHolder("Search presets")
	query.OnChanged = func(text string) {
		matches = filterPresets(a.catalog.Presets, text)
		results.UnselectAll()
		results.Refresh()
	}

	d = dialog.NewCustom("Search Presets", "Close", container.NewBorder(query, nil, nil, nil, results), a.window)
	d.SetOnClosed(func() {
		setSelected(a.homeBtn, a.homeBtn, a.searchBtn)
	})
	d.Resize(fyne.NewSize(360, 420))
	d.Show()
	a.window.Canvas().Focus(query)
}
