package model

import "testing"

func TestNewDevicePreset(t *testing.T) {
	p := NewDevicePreset("Phone", 412, 915)
	if len(p.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", p.ID)
	}
	if p.Posture().IsFoldable() {
		t.Error("flat preset should have no hinges")
	}
}

func TestNewFoldablePreset(t *testing.T) {
	p := NewFoldablePreset("Fold", 673, 841, true, true)
	if len(p.Hinges) != 1 || !p.Hinges[0].Vertical {
		t.Fatalf("expected one vertical hinge, got %+v", p.Hinges)
	}
	if !p.Tabletop {
		t.Error("expected tabletop posture")
	}
}

func TestPresetPostureIsACopy(t *testing.T) {
	p := NewFoldablePreset("Fold", 673, 841, true, false)
	posture := p.Posture()
	posture.Hinges[0].Vertical = false
	if !p.Hinges[0].Vertical {
		t.Error("mutating the returned posture must not change the preset")
	}
}

func TestDefaultPresetCatalogUniqueIDs(t *testing.T) {
	cat := DefaultPresetCatalog()
	if len(cat.Presets) == 0 {
		t.Fatal("default catalog should not be empty")
	}
	seen := map[string]bool{}
	foldables := 0
	for _, p := range cat.Presets {
		if seen[p.ID] {
			t.Errorf("duplicate preset ID %s", p.ID)
		}
		seen[p.ID] = true
		if len(p.Hinges) > 0 {
			foldables++
		}
	}
	if foldables == 0 {
		t.Error("default catalog should contain a foldable preset")
	}
}

func TestCatalogLookups(t *testing.T) {
	cat := DefaultPresetCatalog()
	first := cat.Presets[0]

	if got := cat.FindByID(first.ID); got == nil || got.Name != first.Name {
		t.Errorf("FindByID(%s) = %v", first.ID, got)
	}
	if got := cat.FindByName("Desktop"); got == nil || got.WidthDp != 1920 {
		t.Errorf("FindByName(Desktop) = %v", got)
	}
	if cat.FindByID("missing") != nil || cat.FindByName("missing") != nil {
		t.Error("lookups of unknown presets should return nil")
	}
	names := cat.Names()
	if len(names) != len(cat.Presets) || names[0] != first.Name {
		t.Errorf("unexpected names %v", names)
	}
}
