package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	Theme           string `json:"theme"` // "light", "dark", "system"
	WindowWidth     int    `json:"window_width"`
	WindowHeight    int    `json:"window_height"`
	ExactDimensions bool   `json:"exact_dimensions"` // skip size class bucketing
	LastPresetID    string `json:"last_preset_id"`
	LogLevel        string `json:"log_level"` // "debug", "info", "warn", "error"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:           "system",
		WindowWidth:     1000,
		WindowHeight:    700,
		ExactDimensions: false,
		LastPresetID:    "",
		LogLevel:        "info",
	}
}

// Normalize replaces unset or out-of-range fields with their defaults.
func (c *AppConfig) Normalize() {
	defaults := DefaultAppConfig()
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = defaults.Theme
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = defaults.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = defaults.WindowHeight
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = defaults.LogLevel
	}
}
