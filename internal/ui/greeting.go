package ui

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// platformName describes the platform the app runs on, e.g. "linux/amd64".
func platformName() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// greeting returns the platform greeting shown by the greeting screen.
func greeting() string {
	return fmt.Sprintf("Hello, %s!", platformName())
}

// newGreetingScreen returns a "Click me!" button that toggles the greeting.
func newGreetingScreen() fyne.CanvasObject {
	text := widget.NewLabelWithStyle("Fyne: "+greeting(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	text.Hide()

	btn := widget.NewButton("Click me!", func() {
		if text.Visible() {
			text.Hide()
		} else {
			text.Show()
		}
	})

	return container.NewVBox(btn, text)
}

func (a *App) showGreetingDialog() {
	d := dialog.NewCustom("Greeting", "Close", container.NewPadded(newGreetingScreen()), a.window)
	d.Resize(fyne.NewSize(320, 160))
	d.Show()
}
