package config

import (
	"fyne.io/fyne/v2"
)

// PickerMode selects which folder dialog the Browse button opens
type PickerMode string

const (
	PickerNative PickerMode = "native"
	PickerFyne   PickerMode = "fyne"
)

// Settings keys for Fyne preferences
const (
	KeyLastFolder = "last_folder"
	KeyLanguage   = "app_language"
	KeyPickerMode = "picker_mode"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultPickerMode = PickerNative
)

// Settings manages UI state persisted between runs
type Settings struct {
	app fyne.App

	// fallbackLanguage is used while the user has not picked a language.
	// It is never written to preferences.
	fallbackLanguage string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastFolder returns the folder loaded in the previous run, or ""
func (s *Settings) GetLastFolder() string {
	return s.app.Preferences().String(KeyLastFolder)
}

// SetLastFolder remembers the loaded folder. An empty value forgets it.
func (s *Settings) SetLastFolder(folder string) {
	if folder == "" {
		s.app.Preferences().RemoveValue(KeyLastFolder)
		return
	}
	s.app.Preferences().SetString(KeyLastFolder, folder)
}

// GetLanguage returns the language picked by the user, else the fallback
// language, else DefaultLanguage
func (s *Settings) GetLanguage() string {
	if lang := s.app.Preferences().String(KeyLanguage); lang != "" {
		return lang
	}
	if s.fallbackLanguage != "" {
		return s.fallbackLanguage
	}
	return DefaultLanguage
}

// HasLanguage reports whether the user has picked a language
func (s *Settings) HasLanguage() bool {
	return s.app.Preferences().String(KeyLanguage) != ""
}

// SetFallbackLanguage sets the language used until the user picks one
func (s *Settings) SetFallbackLanguage(lang string) {
	s.fallbackLanguage = lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPickerMode returns the configured folder dialog
func (s *Settings) GetPickerMode() PickerMode {
	mode := PickerMode(s.app.Preferences().String(KeyPickerMode))
	switch mode {
	case PickerNative, PickerFyne:
		return mode
	default:
		s.SetPickerMode(DefaultPickerMode)
		return DefaultPickerMode
	}
}

// SetPickerMode sets the folder dialog. Unknown modes fall back to the default.
func (s *Settings) SetPickerMode(mode PickerMode) {
	if mode != PickerNative && mode != PickerFyne {
		mode = DefaultPickerMode
	}
	s.app.Preferences().SetString(KeyPickerMode, string(mode))
}

// GetPickerModeOptions returns available folder dialog options
func (s *Settings) GetPickerModeOptions() []PickerMode {
	return []PickerMode{PickerNative, PickerFyne}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
