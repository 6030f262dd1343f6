package ui

import (
	"fmt"
	"slices"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

// Simulation is the posture simulator state. While Active, its size replaces
// the measured window size and its hinges feed the classifier.
type Simulation struct {
	Active   bool
	PresetID string
	WidthDp  int
	HeightDp int
	Hinges   []model.HingeInfo
	Tabletop bool
}

// SimulationFromPreset returns an active simulation of the given preset.
func SimulationFromPreset(p model.DevicePreset) Simulation {
	return Simulation{
		Active:   true,
		PresetID: p.ID,
		WidthDp:  p.WidthDp,
		HeightDp: p.HeightDp,
		Hinges:   slices.Clone(p.Hinges),
		Tabletop: p.Tabletop,
	}
}

// Posture returns the fold state the simulator reports. An inactive
// simulation reports a flat device.
func (s Simulation) Posture() model.WindowPosture {
	if !s.Active {
		return model.WindowPosture{}
	}
	return model.WindowPosture{Tabletop: s.Tabletop, Hinges: slices.Clone(s.Hinges)}
}

// Measure returns the window measurement for a layout pass. The simulated
// size wins over the real one while the simulation is active.
func (s Simulation) Measure(widthDp, heightDp float32, exact bool) model.WindowInfo {
	if s.Active {
		widthDp, heightDp = float32(s.WidthDp), float32(s.HeightDp)
	}
	return model.MeasureWindow(widthDp, heightDp, s.Posture(), exact)
}

// Preset converts the simulation into a savable preset with a new ID.
func (s Simulation) Preset(name string) model.DevicePreset {
	p := model.NewDevicePreset(name, s.WidthDp, s.HeightDp)
	p.Hinges = slices.Clone(s.Hinges)
	p.Tabletop = s.Tabletop && len(s.Hinges) > 0
	return p
}

func (s Simulation) String() string {
	if !s.Active {
		return "Live window"
	}
	desc := fmt.Sprintf("Simulated %d x %d dp", s.WidthDp, s.HeightDp)
	if len(s.Hinges) > 0 {
		desc += fmt.Sprintf(", %d hinge(s)", len(s.Hinges))
		if s.Tabletop {
			desc += ", tabletop"
		}
	}
	return desc
}
