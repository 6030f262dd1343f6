package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	presetimporter "github.com/piwi3910/adaptive-layout/internal/importer"
	"github.com/piwi3910/adaptive-layout/internal/model"
	"github.com/piwi3910/adaptive-layout/internal/project"
)

func newTestApp(t *testing.T) (*App, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)

	dir := t.TempDir()
	cfg := model.DefaultAppConfig()
	cfg.ExactDimensions = true

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	a := NewApp(w, cfg, model.DefaultPresetCatalog(), filepath.Join(dir, "presets.json"), zerolog.Nop())
	a.configPath = filepath.Join(dir, "config.json")
	w.SetContent(a.Build())
	w.Resize(fyne.NewSize(1280, 800))
	return a, w
}

func TestApp_LiveWindowClassification(t *testing.T) {
	a, _ := newTestApp(t)

	plan := a.layout.Plan()
	assert.Equal(t, devicetype.KindLarge, plan.Device.Kind())
	assert.Equal(t, 3, plan.Columns())
	assert.Contains(t, a.detailLabel.Text, "Device type: Large")
	assert.Equal(t, "Live window", a.statusLabel.Text)
}

func TestApp_SimulateUndoRedo(t *testing.T) {
	a, _ := newTestApp(t)
	phone := *a.catalog.FindByName("Phone (portrait)")

	a.applyPreset(phone)
	require.Equal(t, devicetype.KindCompact, a.layout.Plan().Device.Kind())
	assert.True(t, a.layout.Plan().ShowBottomBar)
	assert.Equal(t, "Simulated 412 x 915 dp", a.statusLabel.Text)
	assert.False(t, a.undoBtn.Disabled())
	assert.True(t, a.redoBtn.Disabled())
	assert.NotEmpty(t, a.transitions)

	saved, err := project.LoadAppConfig(a.configPath)
	require.NoError(t, err)
	assert.Equal(t, phone.ID, saved.LastPresetID)

	a.undo()
	assert.Equal(t, devicetype.KindLarge, a.layout.Plan().Device.Kind())
	assert.False(t, a.sim.Active)
	assert.False(t, a.redoBtn.Disabled())

	a.redo()
	assert.Equal(t, devicetype.KindCompact, a.layout.Plan().Device.Kind())
	assert.Equal(t, phone.ID, a.sim.PresetID)
}

func TestApp_SimulateFoldable(t *testing.T) {
	a, _ := newTestApp(t)

	a.applyPreset(*a.catalog.FindByName("Foldable (tabletop)"))

	d := a.layout.Plan().Device
	assert.Equal(t, devicetype.KindFoldable, d.Kind())
	assert.True(t, d.IsTabletop())
	assert.Contains(t, a.detailLabel.Text, "tabletop yes")

	a.resetSimulation()
	assert.False(t, a.sim.Active)
	assert.Equal(t, devicetype.KindLarge, a.layout.Plan().Device.Kind())
}

func TestApp_ReselectPresetAfterReset(t *testing.T) {
	a, _ := newTestApp(t)

	a.presetList.Select(0)
	require.True(t, a.sim.Active)
	assert.Equal(t, a.catalog.Presets[0].ID, a.sim.PresetID)

	a.resetSimulation()
	require.False(t, a.sim.Active)
	assert.Equal(t, -1, a.selected)

	a.presetList.Select(0)
	assert.True(t, a.sim.Active, "the same preset applies again after a reset")

	a.undo()
	require.False(t, a.sim.Active)
	a.presetList.Select(0)
	assert.True(t, a.sim.Active, "the same preset applies again after an undo")
}

func TestApp_SelectionKeptWhileSimulating(t *testing.T) {
	a, _ := newTestApp(t)

	a.presetList.Select(1)
	assert.Equal(t, 1, a.selected)
	a.presetList.Select(2)
	assert.Equal(t, 2, a.selected)
	assert.Equal(t, a.catalog.Presets[2].ID, a.sim.PresetID)

	a.undo()
	assert.Equal(t, a.catalog.Presets[1].ID, a.sim.PresetID)
	assert.Equal(t, -1, a.selected, "undo away from the selected preset clears the selection")
}

func TestApp_RestoresLastPreset(t *testing.T) {
	test.NewTempApp(t)
	catalog := model.DefaultPresetCatalog()
	cfg := model.DefaultAppConfig()
	cfg.LastPresetID = catalog.Presets[4].ID

	a := NewApp(test.NewWindow(nil), cfg, catalog, "", zerolog.Nop())
	assert.True(t, a.sim.Active)
	assert.Equal(t, catalog.Presets[4].WidthDp, a.sim.WidthDp)

	cfg.LastPresetID = "missing"
	a = NewApp(test.NewWindow(nil), cfg, catalog, "", zerolog.Nop())
	assert.False(t, a.sim.Active)
}

func TestApp_HandleImportResult(t *testing.T) {
	a, _ := newTestApp(t)
	before := len(a.catalog.Presets)

	a.handleImportResult(presetimporter.ImportResult{
		Presets:  []model.DevicePreset{model.NewDevicePreset("Watch", 200, 200)},
		Warnings: []string{"row 2: tabletop ignored without a hinge"},
	})

	assert.Len(t, a.catalog.Presets, before+1)
	assert.True(t, strings.Contains(a.analyticsLabel.Text, "presets)"))

	stored, err := project.LoadPresets(a.presetsPath)
	require.NoError(t, err)
	assert.NotNil(t, stored.FindByName("Watch"))
}
