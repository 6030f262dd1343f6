package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

func TestDefaultPresetsPath(t *testing.T) {
	path, err := DefaultPresetsPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "presets.json" {
		t.Errorf("expected filename presets.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".adaptivelayout" {
		t.Errorf("expected parent dir .adaptivelayout, got %s", dir)
	}
}

func TestSaveAndLoadPresets(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_presets.json")

	catalog := model.PresetCatalog{
		Presets: []model.DevicePreset{
			model.NewDevicePreset("Test Phone", 360, 800),
			model.NewFoldablePreset("Test Fold", 700, 850, true, true),
		},
	}

	if err := SavePresets(path, catalog); err != nil {
		t.Fatalf("SavePresets failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("presets file was not created")
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}

	if len(loaded.Presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(loaded.Presets))
	}
	if loaded.Presets[0].Name != "Test Phone" {
		t.Errorf("expected preset name 'Test Phone', got %q", loaded.Presets[0].Name)
	}
	if loaded.Presets[0].WidthDp != 360 || loaded.Presets[0].HeightDp != 800 {
		t.Errorf("expected 360x800, got %dx%d", loaded.Presets[0].WidthDp, loaded.Presets[0].HeightDp)
	}

	fold := loaded.Presets[1]
	if !fold.Tabletop {
		t.Error("expected tabletop to survive the round trip")
	}
	if len(fold.Hinges) != 1 || !fold.Hinges[0].Vertical {
		t.Errorf("expected one vertical hinge, got %+v", fold.Hinges)
	}
	if fold.Hinges[0].Bounds != catalog.Presets[1].Hinges[0].Bounds {
		t.Errorf("hinge bounds changed: %+v", fold.Hinges[0].Bounds)
	}
}

func TestLoadPresetsCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "presets.json")

	catalog, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}

	if len(catalog.Presets) != len(model.DefaultPresetCatalog().Presets) {
		t.Errorf("expected the default presets, got %d", len(catalog.Presets))
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default presets file to be created")
	}
}

func TestLoadPresetsNullList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte(`{"presets":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if catalog.Presets == nil {
		t.Error("Presets should not be nil after loading")
	}
}

func TestImportPresets(t *testing.T) {
	tmpDir := t.TempDir()

	existing := model.PresetCatalog{
		Presets: []model.DevicePreset{
			{ID: "preset-1", Name: "Existing Phone", WidthDp: 412, HeightDp: 915},
		},
	}

	imported := model.PresetCatalog{
		Presets: []model.DevicePreset{
			{ID: "preset-1", Name: "Duplicate Phone", WidthDp: 400, HeightDp: 900}, // same ID, should be skipped
			{ID: "preset-2", Name: "New Tablet", WidthDp: 800, HeightDp: 1280},     // new, should be added
		},
	}

	importPath := filepath.Join(tmpDir, "import.json")
	data, _ := json.MarshalIndent(imported, "", "  ")
	if err := os.WriteFile(importPath, data, 0644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	merged, err := ImportPresets(importPath, existing)
	if err != nil {
		t.Fatalf("ImportPresets failed: %v", err)
	}

	if len(merged.Presets) != 2 {
		t.Fatalf("expected 2 presets after merge, got %d", len(merged.Presets))
	}
	if merged.Presets[0].Name != "Existing Phone" {
		t.Errorf("expected first preset to be 'Existing Phone', got %q", merged.Presets[0].Name)
	}
	if merged.Presets[1].Name != "New Tablet" {
		t.Errorf("expected second preset to be 'New Tablet', got %q", merged.Presets[1].Name)
	}
	if len(existing.Presets) != 1 {
		t.Errorf("existing catalog must not be modified, got %d presets", len(existing.Presets))
	}
}

func TestImportPresetsMissingFile(t *testing.T) {
	existing := model.DefaultPresetCatalog()
	got, err := ImportPresets(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(got.Presets) != len(existing.Presets) {
		t.Error("expected existing catalog to be returned on error")
	}
}

func TestExportPresets(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "export.json")

	catalog := model.DefaultPresetCatalog()
	if err := ExportPresets(path, catalog); err != nil {
		t.Fatalf("ExportPresets failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}

	var loaded model.PresetCatalog
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed to unmarshal exported presets: %v", err)
	}

	if len(loaded.Presets) != len(catalog.Presets) {
		t.Errorf("expected %d presets, got %d", len(catalog.Presets), len(loaded.Presets))
	}
}

func TestPresetCatalogFindByName(t *testing.T) {
	catalog := model.DefaultPresetCatalog()

	p := catalog.FindByName("Desktop")
	if p == nil {
		t.Fatal("expected to find 'Desktop'")
	}
	if p.WidthDp != 1920 {
		t.Errorf("expected width 1920, got %d", p.WidthDp)
	}

	if catalog.FindByName("Nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if catalog.FindByID(p.ID) != p {
		t.Error("expected FindByID to return the same preset")
	}
}
