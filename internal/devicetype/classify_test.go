package devicetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

func hinge() model.HingeInfo {
	return model.NewHinge(1600, 900, true)
}

func TestClassify_BelowMediumIsCompact(t *testing.T) {
	for _, w := range []int{0, 1, 320, 412, 599} {
		for _, h := range []int{0, 1, 100, 480, 900, 5000} {
			d := Classify(w, h, nil, false)
			assert.Equal(t, KindCompact, d.Kind(), "width=%d height=%d", w, h)
		}
	}
}

func TestClassify_HingesWinOverSize(t *testing.T) {
	d := Classify(1600, 900, []model.HingeInfo{hinge()}, true)

	require.Equal(t, KindFoldable, d.Kind())
	assert.Equal(t, 1600, d.MinWidth())
	assert.Equal(t, 900, d.MinHeight())
	assert.True(t, d.IsTabletop())

	fold, ok := d.Fold()
	require.True(t, ok)
	assert.Equal(t, []model.HingeInfo{hinge()}, fold.Hinges)
	assert.True(t, d.Equal(Foldable(1600, 900, true, []model.HingeInfo{hinge()})))
}

func TestClassify_HingesOnTinyWindow(t *testing.T) {
	d := Classify(300, 200, []model.HingeInfo{hinge()}, false)
	assert.Equal(t, KindFoldable, d.Kind())
	assert.False(t, d.IsTabletop())
}

func TestClassify_EmptyHingeListIsNotFoldable(t *testing.T) {
	d := Classify(1600, 900, []model.HingeInfo{}, true)
	assert.Equal(t, KindExtraLarge, d.Kind())
	assert.False(t, d.IsTabletop(), "tabletop is only carried by Foldable")
}

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          Kind
	}{
		{"medium portrait", 600, 1000, KindMedium},
		{"medium too wide", 600, 300, KindCompact},
		{"medium ratio just under", 800, 501, KindMedium},
		{"medium ratio exactly 1.6", 800, 500, KindCompact},
		{"expanded lower bound", ExpandedLowerBound, 300, KindExpanded},
		{"below expanded", ExpandedLowerBound - 1, 900, KindMedium},
		{"large lower bound", LargeLowerBound, 800, KindLarge},
		{"below large", LargeLowerBound - 1, 800, KindExpanded},
		{"extra large lower bound", ExtraLargeLowerBound, 1, KindExtraLarge},
		{"below extra large", ExtraLargeLowerBound - 1, 1, KindLarge},
		{"huge", 4000, 2000, KindExtraLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Classify(tt.width, tt.height, nil, false)
			assert.Equal(t, tt.want, d.Kind())
			assert.Equal(t, tt.width, d.MinWidth())
			assert.Equal(t, tt.height, d.MinHeight())
		})
	}
}

func TestClassify_ZeroHeight(t *testing.T) {
	assert.Equal(t, KindCompact, Classify(700, 0, nil, false).Kind(), "medium width with zero height is a landscape phone")
	assert.Equal(t, KindCompact, Classify(0, 0, nil, false).Kind())
	assert.Equal(t, KindExpanded, Classify(900, 0, nil, false).Kind(), "wider thresholds ignore the aspect ratio")
}

func TestClassify_Idempotent(t *testing.T) {
	hinges := []model.HingeInfo{hinge()}
	inputs := []struct {
		w, h     int
		hinges   []model.HingeInfo
		tabletop bool
	}{
		{412, 915, nil, false},
		{600, 1000, nil, false},
		{1280, 800, nil, false},
		{841, 673, hinges, true},
	}
	for _, in := range inputs {
		a := Classify(in.w, in.h, in.hinges, in.tabletop)
		b := Classify(in.w, in.h, in.hinges, in.tabletop)
		assert.True(t, a.Equal(b), "%v != %v", a, b)
	}
}

func TestClassify_DoesNotAliasHinges(t *testing.T) {
	hinges := []model.HingeInfo{hinge()}
	d := Classify(800, 600, hinges, false)
	hinges[0].Vertical = false

	fold, ok := d.Fold()
	require.True(t, ok)
	assert.True(t, fold.Hinges[0].Vertical, "classification must not see later changes to the input slice")

	fold.Hinges[0].Flat = false
	again, _ := d.Fold()
	assert.True(t, again.Hinges[0].Flat, "Fold must return a copy")
}

func TestClassify_Concurrent(t *testing.T) {
	var g errgroup.Group
	for w := 0; w <= 2000; w += 50 {
		g.Go(func() error {
			first := Classify(w, 700, nil, false)
			for i := 0; i < 100; i++ {
				if !Classify(w, 700, nil, false).Equal(first) {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestClassifyWindow(t *testing.T) {
	flat := model.MeasureWindow(700, 1000, model.WindowPosture{}, false)
	assert.Equal(t, KindMedium, ClassifyWindow(flat).Kind())

	// Bucketing a short window zeroes its height.
	short := model.MeasureWindow(700, 400, model.WindowPosture{}, false)
	d := ClassifyWindow(short)
	assert.Equal(t, KindCompact, d.Kind())
	assert.Equal(t, 600, d.MinWidth())
	assert.Equal(t, 0, d.MinHeight())

	folded := model.MeasureWindow(841, 673, model.WindowPosture{Tabletop: true, Hinges: []model.HingeInfo{hinge()}}, true)
	fd := ClassifyWindow(folded)
	assert.Equal(t, KindFoldable, fd.Kind())
	assert.Equal(t, 841, fd.MinWidth())
	assert.True(t, fd.IsTabletop())

	// Exact sizes are minimums, so a fraction below a breakpoint stays below it.
	almost := ClassifyWindow(model.MeasureWindow(599.6, 400, model.WindowPosture{}, true))
	assert.Equal(t, KindCompact, almost.Kind())
	assert.Equal(t, 599, almost.MinWidth())
}

func TestIsLandscapePhone(t *testing.T) {
	tests := []struct {
		name string
		d    DeviceType
		want bool
	}{
		{"wide and short", Compact(900, 400), true},
		{"wide but tall", Expanded(900, 700), false},
		{"exact ratio", Medium(900, 500), false},
		{"ratio 1.8", Compact(720, 400), true},
		{"ratio below 1.8", Compact(700, 400), false},
		{"portrait", Compact(400, 900), false},
		{"square", Compact(400, 400), false},
		{"zero height", Compact(900, 0), true},
		{"all zero", Compact(0, 0), false},
		{"any variant", ExtraLarge(1800, 450), true},
		{"foldable", Foldable(915, 412, false, []model.HingeInfo{hinge()}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.IsLandscapePhone())
		})
	}
}
