package model

import "github.com/google/uuid"

// DevicePreset is a named window size and posture used to preview layouts
// without resizing the real window or owning the hardware.
type DevicePreset struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	WidthDp  int         `json:"width_dp"`
	HeightDp int         `json:"height_dp"`
	Hinges   []HingeInfo `json:"hinges,omitempty"`
	Tabletop bool        `json:"tabletop"`
	Notes    string      `json:"notes,omitempty"`
}

// NewDevicePreset creates a flat (non-folding) preset with a generated ID.
func NewDevicePreset(name string, widthDp, heightDp int) DevicePreset {
	return DevicePreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		WidthDp:  widthDp,
		HeightDp: heightDp,
	}
}

// NewFoldablePreset creates a preset with a single hinge across the screen.
func NewFoldablePreset(name string, widthDp, heightDp int, vertical, tabletop bool) DevicePreset {
	p := NewDevicePreset(name, widthDp, heightDp)
	p.Hinges = []HingeInfo{NewHinge(widthDp, heightDp, vertical)}
	p.Tabletop = tabletop
	return p
}

// Posture returns the fold state described by the preset.
func (p DevicePreset) Posture() WindowPosture {
	var hinges []HingeInfo
	if len(p.Hinges) > 0 {
		hinges = make([]HingeInfo, len(p.Hinges))
		copy(hinges, p.Hinges)
	}
	return WindowPosture{Tabletop: p.Tabletop, Hinges: hinges}
}

// WindowInfo returns the measurement a window of this preset would report.
func (p DevicePreset) WindowInfo(exact bool) WindowInfo {
	return MeasureWindow(float32(p.WidthDp), float32(p.HeightDp), p.Posture(), exact)
}

// PresetCatalog holds the user's saved device presets.
type PresetCatalog struct {
	Presets []DevicePreset `json:"presets"`
}

// DefaultPresetCatalog returns a catalog covering each window size class.
func DefaultPresetCatalog() PresetCatalog {
	return PresetCatalog{
		Presets: []DevicePreset{
			NewDevicePreset("Phone (portrait)", 412, 915),
			NewDevicePreset("Phone (landscape)", 915, 412),
			NewFoldablePreset("Foldable (open)", 673, 841, true, false),
			NewFoldablePreset("Foldable (tabletop)", 841, 673, false, true),
			NewDevicePreset("Tablet (portrait)", 800, 1280),
			NewDevicePreset("Tablet (landscape)", 1280, 800),
			NewDevicePreset("Small laptop", 1024, 640),
			NewDevicePreset("Desktop", 1920, 1080),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (c *PresetCatalog) FindByID(id string) *DevicePreset {
	for i := range c.Presets {
		if c.Presets[i].ID == id {
			return &c.Presets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (c *PresetCatalog) FindByName(name string) *DevicePreset {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i]
		}
	}
	return nil
}

// Names returns the preset names for UI dropdowns.
func (c *PresetCatalog) Names() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}
