package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	"github.com/piwi3910/adaptive-layout/internal/importer"
	"github.com/piwi3910/adaptive-layout/internal/model"
	"github.com/piwi3910/adaptive-layout/internal/ui/widgets"
)

var hingeOptions = []string{"None", "Vertical", "Horizontal"}

// simulationFromForm validates the simulator form. Tabletop is dropped when
// there is no hinge to fold around.
func simulationFromForm(width, height, hinge string, tabletop bool) (Simulation, error) {
	w, err := strconv.Atoi(strings.TrimSpace(width))
	if err != nil || w <= 0 {
		return Simulation{}, errors.New("width must be a positive whole number of dp")
	}
	h, err := strconv.Atoi(strings.TrimSpace(height))
	if err != nil || h < 0 {
		return Simulation{}, errors.New("height must be a whole number of dp, 0 or more")
	}
	orientation, ok := importer.ParseHinge(hinge)
	if !ok {
		return Simulation{}, fmt.Errorf("unknown hinge orientation %q", hinge)
	}

	sim := Simulation{Active: true, WidthDp: w, HeightDp: h}
	if orientation != importer.HingeNone {
		sim.Hinges = []model.HingeInfo{model.NewHinge(w, h, orientation == importer.HingeVertical)}
		sim.Tabletop = tabletop
	}
	return sim, nil
}

// hingeOption returns the select option describing a hinge list.
func hingeOption(hinges []model.HingeInfo) string {
	switch {
	case len(hinges) == 0:
		return hingeOptions[0]
	case hinges[0].Vertical:
		return hingeOptions[1]
	default:
		return hingeOptions[2]
	}
}

// matchesPreset reports whether the simulation still describes the preset.
func matchesPreset(sim Simulation, p model.DevicePreset) bool {
	return sim.WidthDp == p.WidthDp &&
		sim.HeightDp == p.HeightDp &&
		hingeOption(sim.Hinges) == hingeOption(p.Hinges) &&
		sim.Tabletop == (p.Tabletop && len(p.Hinges) > 0)
}

// showSimulatorDialog lets the user pick a preset or type a size and posture
// that replaces the measured window until reset.
func (a *App) showSimulatorDialog() {
	start := a.sim
	if !start.Active {
		size := a.scaffold.Size()
		start = Simulation{WidthDp: int(size.Width), HeightDp: int(size.Height)}
	}

	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.Itoa(start.WidthDp))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(strconv.Itoa(start.HeightDp))
	hingeSelect := widget.NewSelect(hingeOptions, nil)
	hingeSelect.SetSelected(hingeOption(start.Hinges))
	tabletopCheck := widget.NewCheck("Tabletop posture", nil)
	tabletopCheck.SetChecked(start.Tabletop)

	preview := widgets.NewDevicePreview(220, 220)
	kindLabel := widget.NewLabel("")

	var selected *model.DevicePreset
	if start.PresetID != "" {
		selected = a.catalog.FindByID(start.PresetID)
	}

	readForm := func() (Simulation, error) {
		sim, err := simulationFromForm(widthEntry.Text, heightEntry.Text, hingeSelect.Selected, tabletopCheck.Checked)
		if err != nil {
			return sim, err
		}
		if selected != nil && matchesPreset(sim, *selected) {
			sim.PresetID = selected.ID
		}
		return sim, nil
	}

	updatePreview := func() {
		sim, err := readForm()
		if err != nil {
			preview.SetDevice(0, 0, nil, adaptive.Plan{})
			kindLabel.SetText(err.Error())
			return
		}
		d := devicetype.ClassifyWindow(sim.Measure(0, 0, a.config.ExactDimensions))
		preview.SetDevice(sim.WidthDp, sim.HeightDp, sim.Hinges, adaptive.PlanFor(d))
		kindLabel.SetText(fmt.Sprintf("%s, %s", d, adaptive.PlanFor(d).Describe()))
	}

	presetSelect := widget.NewSelect(a.catalog.Names(), func(name string) {
		selected = a.catalog.FindByName(name)
		if selected == nil {
			return
		}
		widthEntry.SetText(strconv.Itoa(selected.WidthDp))
		heightEntry.SetText(strconv.Itoa(selected.HeightDp))
		hingeSelect.SetSelected(hingeOption(selected.Hinges))
		tabletopCheck.SetChecked(selected.Tabletop)
		updatePreview()
	})
	presetSelect.PlaceHolder = "(custom)"
	if selected != nil {
		presetSelect.Selected = selected.Name
	}

	widthEntry.OnChanged = func(string) { updatePreview() }
	heightEntry.OnChanged = func(string) { updatePreview() }
	hingeSelect.OnChanged = func(string) { updatePreview() }
	tabletopCheck.OnChanged = func(bool) { updatePreview() }
	updatePreview()

	saveBtn := widget.NewButtonWithIcon("Save as Preset", theme.DocumentSaveIcon(), func() {
		sim, err := readForm()
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.showSavePresetDialog(sim)
	})

	form := widget.NewForm(
		widget.NewFormItem("Preset", presetSelect),
		widget.NewFormItem("Width (dp)", widthEntry),
		widget.NewFormItem("Height (dp)", heightEntry),
		widget.NewFormItem("Hinge", hingeSelect),
		widget.NewFormItem("", tabletopCheck),
	)
	content := container.NewVBox(form, widget.NewSeparator(), kindLabel, spacerRow(preview), saveBtn)

	d := dialog.NewCustomConfirm("Posture Simulator", "Apply", "Close", content, func(ok bool) {
		if !ok {
			return
		}
		sim, err := readForm()
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setSimulation(sim, fmt.Sprintf("Simulate %d x %d", sim.WidthDp, sim.HeightDp))
	}, a.window)
	d.Resize(fyne.NewSize(420, 560))
	d.Show()
}

func (a *App) showSavePresetDialog(sim Simulation) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(fmt.Sprintf("Custom %d x %d", sim.WidthDp, sim.HeightDp))

	d := dialog.NewForm("Save Preset", "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", nameEntry)},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(errors.New("preset name must not be empty"), a.window)
				return
			}
			a.catalog.Presets = append(a.catalog.Presets, sim.Preset(name))
			a.presetsChanged()
		},
		a.window,
	)
	d.Resize(fyne.NewSize(360, 160))
	d.Show()
}
