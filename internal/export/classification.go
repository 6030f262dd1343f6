// Package export writes classified device presets to PDF reports, printable
// QR preset cards and Excel workbooks.
package export

import (
	"github.com/piwi3910/adaptive-layout/internal/adaptive"
	"github.com/piwi3910/adaptive-layout/internal/devicetype"
	"github.com/piwi3910/adaptive-layout/internal/model"
)

// Classification is one preset together with the measurement it produces,
// the resulting device type and the chosen layout.
type Classification struct {
	Preset model.DevicePreset
	Info   model.WindowInfo
	Device devicetype.DeviceType
	Plan   adaptive.Plan
}

// Classify runs a single preset through measurement, classification and
// layout planning. When exact is false the preset size is bucketed into its
// window size class first, the same way a live window is.
func Classify(p model.DevicePreset, exact bool) Classification {
	info := p.WindowInfo(exact)
	d := devicetype.ClassifyWindow(info)
	return Classification{
		Preset: p,
		Info:   info,
		Device: d,
		Plan:   adaptive.PlanFor(d),
	}
}

// ClassifyCatalog classifies every preset of the catalog in order.
func ClassifyCatalog(catalog model.PresetCatalog, exact bool) []Classification {
	rows := make([]Classification, len(catalog.Presets))
	for i, p := range catalog.Presets {
		rows[i] = Classify(p, exact)
	}
	return rows
}

// CountByKind returns how many rows fall into each device type.
func CountByKind(rows []Classification) map[devicetype.Kind]int {
	counts := make(map[devicetype.Kind]int, len(devicetype.Kinds()))
	for _, r := range rows {
		counts[r.Device.Kind()]++
	}
	return counts
}

// postureText summarises the fold state of a preset for tables and cards.
func postureText(p model.DevicePreset) string {
	if len(p.Hinges) == 0 {
		return "Flat"
	}
	orientation := "horizontal"
	if p.Hinges[0].Vertical {
		orientation = "vertical"
	}
	if p.Tabletop {
		return "Tabletop, " + orientation + " hinge"
	}
	return "Open, " + orientation + " hinge"
}
