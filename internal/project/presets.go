package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/adaptive-layout/internal/model"
)

// DefaultPresetsPath returns the default file path for the preset catalog.
// This is located at ~/.adaptivelayout/presets.json.
func DefaultPresetsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".adaptivelayout", "presets.json"), nil
}

// SavePresets writes the preset catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SavePresets(path string, catalog model.PresetCatalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads the preset catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadPresets(path string) (model.PresetCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultPresetCatalog()
			if saveErr := SavePresets(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.PresetCatalog{}, err
	}
	var catalog model.PresetCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.PresetCatalog{}, err
	}
	// Ensure Presets is never nil
	if catalog.Presets == nil {
		catalog.Presets = []model.DevicePreset{}
	}
	return catalog, nil
}

// LoadOrCreatePresets loads the preset catalog from the default path.
// If the file does not exist, it creates one with the default presets.
func LoadOrCreatePresets() (model.PresetCatalog, string, error) {
	path, err := DefaultPresetsPath()
	if err != nil {
		return model.DefaultPresetCatalog(), "", err
	}
	catalog, err := LoadPresets(path)
	return catalog, path, err
}

// ExportPresets exports the preset catalog to a user-specified JSON file.
func ExportPresets(path string, catalog model.PresetCatalog) error {
	return SavePresets(path, catalog)
}

// ImportPresets imports presets from a user-specified JSON file, merging them
// into the existing catalog. Presets whose ID is already present are skipped.
func ImportPresets(path string, existing model.PresetCatalog) (model.PresetCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.PresetCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}
	return MergePresets(existing, imported.Presets), nil
}

// MergePresets appends presets to the catalog, skipping duplicate IDs.
// The input catalog is not modified.
func MergePresets(existing model.PresetCatalog, presets []model.DevicePreset) model.PresetCatalog {
	merged := model.PresetCatalog{
		Presets: make([]model.DevicePreset, 0, len(existing.Presets)+len(presets)),
	}
	ids := make(map[string]bool, len(existing.Presets)+len(presets))
	for _, p := range existing.Presets {
		merged.Presets = append(merged.Presets, p)
		ids[p.ID] = true
	}
	for _, p := range presets {
		if !ids[p.ID] {
			merged.Presets = append(merged.Presets, p)
			ids[p.ID] = true
		}
	}
	return merged
}
