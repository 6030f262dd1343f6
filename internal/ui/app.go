// Package ui provides the adaptive layout application UI components.
package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	"github.com/piwi3910/adaptive-layout/internal/export"
	presetimporter "github.com/piwi3910/adaptive-layout/internal/importer"
	"github.com/piwi3910/adaptive-layout/internal/model"
	"github.com/piwi3910/adaptive-layout/internal/project"
	"github.com/piwi3910/adaptive-layout/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window      fyne.Window
	config      model.AppConfig
	catalog     model.PresetCatalog
	presetsPath string
	configPath  string
	logger      zerolog.Logger
	theme       *AdaptiveTheme
	history     *History

	sim         Simulation
	layout      *ScaffoldLayout
	plan        adaptive.Plan
	planned     bool
	transitions []string

	// UI references for dynamic updates
	scaffold       *fyne.Container
	presetList     *widget.List
	selected       widget.ListItemID
	detailLabel    *widget.Label
	analyticsLabel *widget.Label
	statusLabel    *widget.Label
	preview        *widgets.DevicePreview
	homeBtn        *ttwidget.Button
	searchBtn      *ttwidget.Button
	undoBtn        *ttwidget.Button
	redoBtn        *ttwidget.Button
}

// NewApp creates the application. presetsPath is where catalog edits are
// saved; an empty path keeps them in memory.
func NewApp(window fyne.Window, config model.AppConfig, catalog model.PresetCatalog, presetsPath string, logger zerolog.Logger) *App {
	a := &App{
		window:      window,
		config:      config,
		catalog:     catalog,
		presetsPath: presetsPath,
		configPath:  project.DefaultConfigPath(),
		logger:      logger,
		theme:       NewAdaptiveTheme(config.Theme),
		history:     NewHistory(),
		selected:    -1,
	}
	if config.LastPresetID != "" {
		if p := catalog.FindByID(config.LastPresetID); p != nil {
			a.sim = SimulationFromPreset(*p)
		}
	}
	return a
}

// Theme returns the application theme, driven by the config.
func (a *App) Theme() fyne.Theme {
	return a.theme
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import Presets from CSV/Excel...", func() {
			a.importPresetTable()
		}),
		fyne.NewMenuItem("Import Presets (JSON)...", func() {
			a.importPresetsJSON()
		}),
		fyne.NewMenuItem("Export Presets (JSON)...", func() {
			a.exportPresetsJSON()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportClassifications("adaptive-layout-report.pdf", export.ExportReport)
		}),
		fyne.NewMenuItem("Export Preset Cards...", func() {
			a.exportClassifications("preset-cards.pdf", export.ExportPresetCards)
		}),
		fyne.NewMenuItem("Export XLSX Matrix...", func() {
			a.exportClassifications("classification-matrix.xlsx", export.ExportWorkbook)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup / Restore...", func() {
			a.showImportExportDialog()
		}),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
	)

	// View Menu
	themeItem := fyne.NewMenuItem("Theme", nil)
	themeItem.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("System", func() { a.setTheme("system") }),
		fyne.NewMenuItem("Light", func() { a.setTheme("light") }),
		fyne.NewMenuItem("Dark", func() { a.setTheme("dark") }),
	)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Posture Simulator...", func() {
			a.showSimulatorDialog()
		}),
		fyne.NewMenuItem("Reset Simulation", func() {
			a.resetSimulation()
		}),
		fyne.NewMenuItemSeparator(),
		themeItem,
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Greeting", func() {
			a.showGreetingDialog()
		}),
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	// Set the main menu
	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		viewMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Adaptive Layout",
		"Adaptive Layout: device type classifier\n\n"+
			"Classifies the window into Compact, Medium, Foldable,\n"+
			"Expanded, Large or ExtraLarge and adapts the panels shown.\n\n"+
			greeting()+"\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.layout = NewScaffoldLayout(a.measure, a.logger)
	a.layout.OnClassified(a.onClassified)

	objects := make([]fyne.CanvasObject, scaffoldObjectCount)
	objects[adaptive.PanelList] = a.buildListPanel()
	objects[adaptive.PanelDetail] = a.buildDetailPanel()
	objects[adaptive.PanelAnalytics] = a.buildAnalyticsPanel()
	objects[scaffoldBarIndex] = a.buildBottomBar()
	a.scaffold = container.New(a.layout, objects...)

	return container.NewBorder(a.buildToolbar(), nil, nil, nil, a.scaffold)
}

func (a *App) buildToolbar() fyne.CanvasObject {
	a.statusLabel = widget.NewLabel(a.sim.String())
	a.undoBtn = newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo)
	a.redoBtn = newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo)
	a.updateHistoryButtons()

	return container.NewHBox(
		newIconButtonWithTooltip(theme.SettingsIcon(), "Posture simulator", a.showSimulatorDialog),
		newIconButtonWithTooltip(theme.ViewRefreshIcon(), "Reset simulation", a.resetSimulation),
		a.undoBtn,
		a.redoBtn,
		layout.NewSpacer(),
		a.statusLabel,
	)
}

// measure feeds the scaffold. The simulator overrides the container size.
func (a *App) measure(size fyne.Size) model.WindowInfo {
	return a.sim.Measure(size.Width, size.Height, a.config.ExactDimensions)
}

func (a *App) onClassified(d devicetype.DeviceType, plan adaptive.Plan) {
	if a.planned && !a.plan.SameLayout(plan) {
		a.recordTransition(a.plan, plan)
		a.refreshAnalytics()
	}
	a.plan, a.planned = plan, true

	a.detailLabel.SetText(describeDevice(d, plan, a.sim.String()))

	// The first pass runs inside container.New, before a.scaffold is set.
	w, h := a.sim.WidthDp, a.sim.HeightDp
	if !a.sim.Active && a.scaffold != nil {
		size := a.scaffold.Size()
		w, h = int(size.Width), int(size.Height)
	}
	fold, _ := d.Fold()
	a.preview.SetDevice(w, h, fold.Hinges, plan)
}

// ─── Simulation ────────────────────────────────────────────

func (a *App) applyPreset(p model.DevicePreset) {
	a.setSimulation(SimulationFromPreset(p), "Simulate "+p.Name)
}

func (a *App) resetSimulation() {
	if !a.sim.Active {
		return
	}
	a.setSimulation(Simulation{}, "Reset Simulation")
}

// setSimulation records the current state for undo and switches to sim.
func (a *App) setSimulation(sim Simulation, label string) {
	a.history.Push(MakeSnapshot(a.sim, label))
	a.sim = sim
	a.logger.Info().Str("action", label).Str("state", sim.String()).Msg("simulation changed")
	a.simulationChanged()
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.sim, ""))
	if !ok {
		return
	}
	a.sim = snap.Simulation
	a.simulationChanged()
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.sim, ""))
	if !ok {
		return
	}
	a.sim = snap.Simulation
	a.simulationChanged()
}

func (a *App) simulationChanged() {
	a.statusLabel.SetText(a.sim.String())
	a.updateHistoryButtons()
	a.syncPresetSelection()

	if a.config.LastPresetID != a.sim.PresetID {
		a.config.LastPresetID = a.sim.PresetID
		if err := a.saveConfig(); err != nil {
			a.logger.Warn().Err(err).Msg("failed to remember the last preset")
		}
	}
	a.relayout()
}

// syncPresetSelection clears the list selection once the simulation no
// longer shows the selected preset, so tapping that preset applies it again.
func (a *App) syncPresetSelection() {
	if a.presetList == nil || a.selected < 0 {
		return
	}
	if a.sim.Active && a.selected < len(a.catalog.Presets) && a.catalog.Presets[a.selected].ID == a.sim.PresetID {
		return
	}
	a.selected = -1
	a.presetList.UnselectAll()
}

func (a *App) updateHistoryButtons() {
	if a.undoBtn == nil {
		return
	}
	if a.history.CanUndo() {
		a.undoBtn.Enable()
	} else {
		a.undoBtn.Disable()
	}
	if a.history.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

// relayout re-runs the scaffold layout, which reclassifies the window.
func (a *App) relayout() {
	if a.scaffold != nil {
		a.scaffold.Refresh()
	}
}

// ─── Presets ───────────────────────────────────────────────

// presetsChanged persists the catalog and refreshes everything showing it.
func (a *App) presetsChanged() {
	if a.presetsPath != "" {
		if err := project.SavePresets(a.presetsPath, a.catalog); err != nil {
			a.logger.Error().Err(err).Str("path", a.presetsPath).Msg("failed to save presets")
			dialog.ShowError(fmt.Errorf("failed to save presets: %w", err), a.window)
		}
	}
	if a.presetList != nil {
		a.selected = -1
		a.presetList.UnselectAll()
		a.presetList.Refresh()
	}
	a.refreshAnalytics()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importPresetTable() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := presetimporter.ImportFile(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".txt", ".xlsx", ".xlsm"}))
	d.Show()
}

func (a *App) handleImportResult(result presetimporter.ImportResult) {
	// Show errors if any
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	// Warnings are logged, not shown
	if len(result.Warnings) > 0 {
		a.logger.Warn().Strs("warnings", result.Warnings).Msg("preset import warnings")
	}

	if len(result.Presets) > 0 {
		a.catalog = project.MergePresets(a.catalog, result.Presets)
		a.presetsChanged()

		msg := fmt.Sprintf("Successfully imported %d presets.", len(result.Presets))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

func (a *App) importPresetsJSON() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := project.ImportPresets(reader.URI().Path(), a.catalog)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		added := len(merged.Presets) - len(a.catalog.Presets)
		a.catalog = merged
		a.presetsChanged()
		dialog.ShowInformation("Import Complete", fmt.Sprintf("Added %d presets.", added), a.window)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

// ─── Export Functions ───────────────────────────────────────

func (a *App) exportPresetsJSON() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.ExportPresets(path, a.catalog); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Presets saved to %s", path), a.window)
	}, a.window)
	d.SetFileName("presets.json")
	d.Show()
}

// exportClassifications classifies the catalog and writes it with fn.
func (a *App) exportClassifications(defaultName string, fn func(string, []export.Classification) error) {
	if len(a.catalog.Presets) == 0 {
		dialog.ShowInformation("No presets", "Add or import at least one preset first.", a.window)
		return
	}
	rows := export.ClassifyCatalog(a.catalog, a.config.ExactDimensions)

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		// Exporters write the file themselves.
		path := writer.URI().Path()
		writer.Close()

		if err := fn(path, rows); err != nil {
			a.logger.Error().Err(err).Str("path", path).Msg("export failed")
			dialog.ShowError(err, a.window)
			return
		}
		a.logger.Info().Str("path", path).Int("presets", len(rows)).Msg("exported classifications")
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}
