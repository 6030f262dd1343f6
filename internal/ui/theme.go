// Package ui provides the adaptive layout application UI components.
//
// This file defines a compact Fyne theme whose light/dark variant follows
// the user's settings.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AdaptiveTheme wraps the default Fyne theme with compact sizing overrides
// and an optional forced light/dark variant.
type AdaptiveTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	forced  bool
}

// NewAdaptiveTheme creates a theme for a config theme name: "light", "dark"
// or "system". Unknown names follow the system.
func NewAdaptiveTheme(name string) *AdaptiveTheme {
	t := &AdaptiveTheme{base: theme.DefaultTheme()}
	t.SetName(name)
	return t
}

// NewAdaptiveThemeWithVariant creates an AdaptiveTheme with a specific light/dark variant.
func NewAdaptiveThemeWithVariant(variant fyne.ThemeVariant) *AdaptiveTheme {
	return &AdaptiveTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		forced:  true,
	}
}

// SetName updates the variant from a config theme name.
func (t *AdaptiveTheme) SetName(name string) {
	switch name {
	case "light":
		t.variant, t.forced = theme.VariantLight, true
	case "dark":
		t.variant, t.forced = theme.VariantDark, true
	default:
		t.forced = false
	}
}

// Variant returns the forced variant and whether one is set.
func (t *AdaptiveTheme) Variant() (fyne.ThemeVariant, bool) {
	return t.variant, t.forced
}

// Color delegates to the base theme, using the forced variant when set.
func (t *AdaptiveTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *AdaptiveTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *AdaptiveTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *AdaptiveTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
