// Package devicetype classifies a window measurement into a ranked device
// type that drives the adaptive layout.
//
// A DeviceType is a snapshot: it is built fresh on every layout pass,
// consumed by the presentation layer, then dropped. Values are immutable.
package devicetype

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

// Kind identifies a DeviceType variant. Its integer value is the variant's rank.
type Kind int

const (
	KindCompact Kind = iota
	KindMedium
	KindFoldable
	KindExpanded
	KindLarge
	KindExtraLarge
)

var kindNames = [...]string{
	KindCompact:    "Compact",
	KindMedium:     "Medium",
	KindFoldable:   "Foldable",
	KindExpanded:   "Expanded",
	KindLarge:      "Large",
	KindExtraLarge: "ExtraLarge",
}

// Kinds returns every variant in ascending rank order.
func Kinds() []Kind {
	return []Kind{KindCompact, KindMedium, KindFoldable, KindExpanded, KindLarge, KindExtraLarge}
}

func (k Kind) String() string {
	if k < KindCompact || k > KindExtraLarge {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Rank returns the variant's position in the total order.
func (k Kind) Rank() int { return int(k) }

// ParseKind converts a variant name (case-insensitive) back into a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	if strings.EqualFold(name, "extra-large") || strings.EqualFold(name, "extra_large") {
		return KindExtraLarge, nil
	}
	return KindCompact, fmt.Errorf("unknown device type %q", s)
}

// Fold is the posture payload carried only by the Foldable variant.
type Fold struct {
	Tabletop bool
	Hinges   []model.HingeInfo
}

// DeviceType is a window size classification. The zero value is a
// Compact device of 0x0 dp.
type DeviceType struct {
	kind      Kind
	minWidth  int
	minHeight int
	fold      *Fold
}

// Compact creates a Compact device type.
func Compact(minWidth, minHeight int) DeviceType {
	return DeviceType{kind: KindCompact, minWidth: minWidth, minHeight: minHeight}
}

// Medium creates a Medium device type.
func Medium(minWidth, minHeight int) DeviceType {
	return DeviceType{kind: KindMedium, minWidth: minWidth, minHeight: minHeight}
}

// Foldable creates a Foldable device type. The hinge list is copied.
func Foldable(minWidth, minHeight int, tabletop bool, hinges []model.HingeInfo) DeviceType {
	h := slices.Clone(hinges)
	if h == nil {
		h = []model.HingeInfo{}
	}
	return DeviceType{
		kind:      KindFoldable,
		minWidth:  minWidth,
		minHeight: minHeight,
		fold:      &Fold{Tabletop: tabletop, Hinges: h},
	}
}

// Expanded creates an Expanded device type.
func Expanded(minWidth, minHeight int) DeviceType {
	return DeviceType{kind: KindExpanded, minWidth: minWidth, minHeight: minHeight}
}

// Large creates a Large device type.
func Large(minWidth, minHeight int) DeviceType {
	return DeviceType{kind: KindLarge, minWidth: minWidth, minHeight: minHeight}
}

// ExtraLarge creates an ExtraLarge device type.
func ExtraLarge(minWidth, minHeight int) DeviceType {
	return DeviceType{kind: KindExtraLarge, minWidth: minWidth, minHeight: minHeight}
}

// Default returns a new 0x0 placeholder of the given kind, meant as the
// right-hand side of rank comparisons. Each call returns an independent value.
// A Foldable placeholder is not tabletop and has no hinges.
func Default(k Kind) DeviceType {
	switch k {
	case KindMedium:
		return Medium(0, 0)
	case KindFoldable:
		return Foldable(0, 0, false, nil)
	case KindExpanded:
		return Expanded(0, 0)
	case KindLarge:
		return Large(0, 0)
	case KindExtraLarge:
		return ExtraLarge(0, 0)
	default:
		return Compact(0, 0)
	}
}

// Kind returns the variant.
func (d DeviceType) Kind() Kind { return d.kind }

// Rank returns the variant's position in the total order.
func (d DeviceType) Rank() int { return d.kind.Rank() }

// MinWidth returns the window's minimum width in dp at classification time.
func (d DeviceType) MinWidth() int { return d.minWidth }

// MinHeight returns the window's minimum height in dp at classification time.
func (d DeviceType) MinHeight() int { return d.minHeight }

// Fold returns a copy of the posture payload. ok is false for every
// variant other than Foldable.
func (d DeviceType) Fold() (fold Fold, ok bool) {
	if d.kind != KindFoldable || d.fold == nil {
		return Fold{}, false
	}
	return Fold{Tabletop: d.fold.Tabletop, Hinges: slices.Clone(d.fold.Hinges)}, true
}

// IsTabletop reports the tabletop posture of a Foldable; false otherwise.
func (d DeviceType) IsTabletop() bool {
	return d.kind == KindFoldable && d.fold != nil && d.fold.Tabletop
}

// HingeCount returns the number of hinges of a Foldable; 0 otherwise.
func (d DeviceType) HingeCount() int {
	if d.kind != KindFoldable || d.fold == nil {
		return 0
	}
	return len(d.fold.Hinges)
}

// AspectRatio returns minWidth / minHeight. A non-positive height counts as
// an infinitely wide window, so the result is +Inf rather than NaN.
func (d DeviceType) AspectRatio() float64 {
	return aspectRatio(d.minWidth, d.minHeight)
}

func aspectRatio(width, height int) float64 {
	if height <= 0 {
		return math.Inf(1)
	}
	return float64(width) / float64(height)
}

// Equal reports structural equality: same variant, same dimensions and,
// for Foldable, the same posture. Use SameRank for the ordering relation.
func (d DeviceType) Equal(other DeviceType) bool {
	if d.kind != other.kind || d.minWidth != other.minWidth || d.minHeight != other.minHeight {
		return false
	}
	if d.kind != KindFoldable {
		return true
	}
	a, _ := d.Fold()
	b, _ := other.Fold()
	return a.Tabletop == b.Tabletop && slices.Equal(a.Hinges, b.Hinges)
}

func (d DeviceType) String() string {
	if d.kind == KindFoldable {
		return fmt.Sprintf("%s(%dx%d, tabletop=%t, hinges=%d)", d.kind, d.minWidth, d.minHeight, d.IsTabletop(), d.HingeCount())
	}
	return fmt.Sprintf("%s(%dx%d)", d.kind, d.minWidth, d.minHeight)
}
