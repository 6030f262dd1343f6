// Adaptive Layout: device type classifier with an adaptive scaffold
//
// A cross-platform desktop application that classifies its own window into
// Compact, Medium, Foldable, Expanded, Large or ExtraLarge and shows one,
// two or three panels accordingly. A posture simulator previews phones,
// tablets and foldables without owning the hardware.
//
// Build:
//   go build -o adaptive-layout ./cmd/adaptive-layout
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o adaptive-layout.exe ./cmd/adaptive-layout
//   GOOS=darwin  GOARCH=amd64 go build -o adaptive-layout-darwin ./cmd/adaptive-layout
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/adaptive-layout/internal/model"
	"github.com/piwi3910/adaptive-layout/internal/project"
	"github.com/piwi3910/adaptive-layout/internal/ui"
)

func main() {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	logger := newLogger(config.LogLevel)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load settings, using defaults")
		config = model.DefaultAppConfig()
	}

	catalog, presetsPath, err := project.LoadOrCreatePresets()
	if err != nil {
		logger.Warn().Err(err).Str("path", presetsPath).Msg("failed to load device presets, using defaults")
		catalog = model.DefaultPresetCatalog()
	}

	application := app.NewWithID("com.piwi3910.adaptive-layout")
	window := application.NewWindow("Adaptive Layout")

	appUI := ui.NewApp(window, config, catalog, presetsPath, logger)
	application.Settings().SetTheme(appUI.Theme())
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(float32(config.WindowWidth), float32(config.WindowHeight)))
	window.CenterOnScreen()

	logger.Info().Int("presets", len(catalog.Presets)).Msg("starting")
	window.ShowAndRun()
}

// newLogger writes human-readable logs to stderr. The level also becomes the
// global level so the settings dialog can change it later.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
