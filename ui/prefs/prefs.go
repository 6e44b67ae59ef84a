// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"openpen/internal/engine"
	"openpen/pkg/colorutil"
)

const prefsFile = "preferences.json"

// Settings holds the user preferences persisted between sessions.
type Settings struct {
	PenColor     string  `json:"pen_color"`
	PenThickness float64 `json:"pen_thickness"`
	EraserRadius float64 `json:"eraser_radius"`
	TextDraft    string  `json:"text_draft,omitempty"`
	LastDocument string  `json:"last_document,omitempty"`
	ShowHints    bool    `json:"show_hints"`

	path string
}

// defaults returns the out-of-the-box settings.
func defaults() *Settings {
	return &Settings{
		PenColor:     colorutil.ToHex(colorutil.Red),
		PenThickness: engine.DefaultThickness,
		EraserRadius: engine.DefaultEraserRadius,
		ShowHints:    true,
	}
}

// Load reads preferences from ~/.config/openpen/preferences.json.
// Returns defaults if the file doesn't exist or cannot be parsed.
func Load() *Settings {
	s := defaults()

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	s.path = filepath.Join(configDir, "openpen", prefsFile)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	_ = json.Unmarshal(data, s)
	if s.PenThickness <= 0 {
		s.PenThickness = engine.DefaultThickness
	}
	if s.EraserRadius <= 0 {
		s.EraserRadius = engine.DefaultEraserRadius
	}
	return s
}

// Save writes preferences to disk.
func (s *Settings) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Apply pushes the persisted settings into the engine.
func (s *Settings) Apply(e *engine.Engine) {
	style := e.Style()
	if col, err := colorutil.ParseHex(s.PenColor); err == nil {
		style.Color = col
	}
	style.Thickness = s.PenThickness
	_ = e.SetStyle(style)
	e.SetEraserRadius(s.EraserRadius)
}

// Capture pulls the engine's current state back into the settings
// before saving.
func (s *Settings) Capture(e *engine.Engine) {
	s.PenColor = colorutil.ToHex(e.Style().Color)
	s.PenThickness = e.Style().Thickness
	s.EraserRadius = e.EraserRadius()
}
