// Package adaptive decides which panels and navigation affordances to show
// for a given device classification.
package adaptive

import (
	"fmt"
	"strings"

	"github.com/piwi3910/adaptive-layout/internal/devicetype"
)

// Panel identifies one of the content panes of the adaptive scaffold.
type Panel int

const (
	PanelList Panel = iota
	PanelDetail
	PanelAnalytics
)

func (p Panel) String() string {
	switch p {
	case PanelList:
		return "List"
	case PanelDetail:
		return "Detail"
	case PanelAnalytics:
		return "Analytics"
	default:
		return fmt.Sprintf("Panel(%d)", int(p))
	}
}

// Title is the heading shown at the top of the panel.
func (p Panel) Title() string {
	switch p {
	case PanelList:
		return "List Screen"
	case PanelDetail:
		return "Detail Screen"
	case PanelAnalytics:
		return "Analytics Panel"
	default:
		return p.String()
	}
}

// Slot is a panel placed in the row together with its share of the width.
type Slot struct {
	Panel  Panel
	Weight float32
}

// Plan is the layout chosen for one classification.
type Plan struct {
	Device        devicetype.DeviceType
	Slots         []Slot
	ShowBottomBar bool
}

// PlanFor picks the layout for a device:
//   - Expanded or above, unless a landscape phone: List, Detail, Analytics (1:2:1)
//   - Medium or above: List, Detail (1:2)
//   - otherwise: List alone
//
// The bottom navigation bar is only shown for Compact.
func PlanFor(d devicetype.DeviceType) Plan {
	var slots []Slot
	switch {
	case d.GreaterOrEqual(devicetype.Default(devicetype.KindExpanded)) && !d.IsLandscapePhone():
		slots = []Slot{{PanelList, 1}, {PanelDetail, 2}, {PanelAnalytics, 1}}
	case d.GreaterOrEqual(devicetype.Default(devicetype.KindMedium)):
		slots = []Slot{{PanelList, 1}, {PanelDetail, 2}}
	default:
		slots = []Slot{{PanelList, 1}}
	}
	return Plan{
		Device:        d,
		Slots:         slots,
		ShowBottomBar: d.Kind() == devicetype.KindCompact,
	}
}

// Columns returns the number of visible panels.
func (p Plan) Columns() int { return len(p.Slots) }

// Has reports whether the panel is part of the plan.
func (p Plan) Has(panel Panel) bool {
	for _, s := range p.Slots {
		if s.Panel == panel {
			return true
		}
	}
	return false
}

// TotalWeight sums the weights of all slots.
func (p Plan) TotalWeight() float32 {
	var total float32
	for _, s := range p.Slots {
		total += s.Weight
	}
	return total
}

// Widths splits the available width between the slots by weight.
func (p Plan) Widths(available float32) []float32 {
	widths := make([]float32, len(p.Slots))
	total := p.TotalWeight()
	if total <= 0 || available <= 0 {
		return widths
	}
	for i, s := range p.Slots {
		widths[i] = available * s.Weight / total
	}
	return widths
}

// SameLayout reports whether two plans show the same panels and bar.
func (p Plan) SameLayout(other Plan) bool {
	if p.ShowBottomBar != other.ShowBottomBar || len(p.Slots) != len(other.Slots) {
		return false
	}
	for i := range p.Slots {
		if p.Slots[i] != other.Slots[i] {
			return false
		}
	}
	return true
}

// Describe returns a one-line summary such as "List | Detail + bottom bar".
func (p Plan) Describe() string {
	names := make([]string, len(p.Slots))
	for i, s := range p.Slots {
		names[i] = s.Panel.String()
	}
	desc := strings.Join(names, " | ")
	if p.ShowBottomBar {
		desc += " + bottom bar"
	}
	return desc
}
