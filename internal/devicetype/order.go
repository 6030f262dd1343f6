package devicetype

// The ordering relation compares variants by rank only. Width, height and
// fold data are ignored, so two values of the same variant compare as equal
// even when their fields differ. Equal is the structural comparison.

// Compare returns rank(a) - rank(b). It can be passed to slices.SortFunc.
func Compare(a, b DeviceType) int {
	return a.Rank() - b.Rank()
}

// Less reports rank(d) < rank(other).
func (d DeviceType) Less(other DeviceType) bool { return Compare(d, other) < 0 }

// LessOrEqual reports rank(d) <= rank(other).
func (d DeviceType) LessOrEqual(other DeviceType) bool { return Compare(d, other) <= 0 }

// Greater reports rank(d) > rank(other).
func (d DeviceType) Greater(other DeviceType) bool { return Compare(d, other) > 0 }

// GreaterOrEqual reports rank(d) >= rank(other).
func (d DeviceType) GreaterOrEqual(other DeviceType) bool { return Compare(d, other) >= 0 }

// SameRank reports rank(d) == rank(other). It does not imply Equal.
func (d DeviceType) SameRank(other DeviceType) bool { return Compare(d, other) == 0 }

// AtLeast reports whether d ranks at or above the given variant.
func (d DeviceType) AtLeast(k Kind) bool { return d.Rank() >= k.Rank() }
