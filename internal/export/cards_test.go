package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

func TestExportPresetCards_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.pdf")

	err := ExportPresetCards(path, buildTestRows())
	if err != nil {
		t.Fatalf("ExportPresetCards returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPresetCards_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportPresetCards(path, nil)
	if err == nil {
		t.Fatal("expected error for empty preset list, got nil")
	}
}

func TestCollectCardInfos(t *testing.T) {
	cards := CollectCardInfos(buildTestRows())

	if len(cards) != len(model.DefaultPresetCatalog().Presets) {
		t.Fatalf("expected one card per preset, got %d", len(cards))
	}

	first := cards[0]
	if first.Preset.Name != "Phone (portrait)" {
		t.Errorf("expected first card to be 'Phone (portrait)', got %q", first.Preset.Name)
	}
	if first.Kind != "Compact" || first.Rank != 0 {
		t.Errorf("expected Compact rank 0, got %s rank %d", first.Kind, first.Rank)
	}
	if first.Layout != "List + bottom bar" {
		t.Errorf("unexpected layout %q", first.Layout)
	}

	fold := cards[2]
	if fold.Kind != "Foldable" {
		t.Errorf("expected Foldable, got %s", fold.Kind)
	}
	if len(fold.Preset.Hinges) != 1 {
		t.Errorf("expected the card to carry the hinge, got %d", len(fold.Preset.Hinges))
	}
}

func TestCardInfo_DecodesBackToPreset(t *testing.T) {
	p := model.NewFoldablePreset("Fold", 841, 673, false, true)
	card := CollectCardInfos([]Classification{Classify(p, true)})[0]

	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded CardInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.Preset.ID != p.ID || decoded.Preset.Name != p.Name {
		t.Errorf("preset identity mismatch: got %+v", decoded.Preset)
	}
	if !decoded.Preset.Tabletop || len(decoded.Preset.Hinges) != 1 {
		t.Errorf("posture lost: got %+v", decoded.Preset)
	}
	if decoded.Kind != "Foldable" {
		t.Errorf("expected Foldable, got %s", decoded.Kind)
	}
}

func TestExportPresetCards_ManyPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_cards.pdf")

	// 35 presets spill onto a second page
	var catalog model.PresetCatalog
	for i := 0; i < 35; i++ {
		catalog.Presets = append(catalog.Presets, model.NewDevicePreset(fmt.Sprintf("A rather long preset name %d", i), 320+i*40, 480+i*10))
	}

	err := ExportPresetCards(path, ClassifyCatalog(catalog, false))
	if err != nil {
		t.Fatalf("ExportPresetCards returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
