package ui

import (
	"runtime"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestGreeting(t *testing.T) {
	g := greeting()
	if !strings.HasPrefix(g, "Hello, ") || !strings.HasSuffix(g, "!") {
		t.Errorf("unexpected greeting %q", g)
	}
	if !strings.Contains(g, runtime.GOOS) {
		t.Errorf("greeting %q should name the platform", g)
	}
}

func TestGreetingScreenToggles(t *testing.T) {
	test.NewTempApp(t)

	screen := newGreetingScreen().(*fyne.Container)
	btn := screen.Objects[0].(*widget.Button)
	text := screen.Objects[1].(*widget.Label)

	if text.Visible() {
		t.Fatal("greeting should start hidden")
	}
	test.Tap(btn)
	if !text.Visible() {
		t.Fatal("greeting should show after the first click")
	}
	if text.Text != "Fyne: "+greeting() {
		t.Errorf("unexpected text %q", text.Text)
	}
	test.Tap(btn)
	if text.Visible() {
		t.Error("greeting should hide after the second click")
	}
}
