package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetLastFolder(); dir != "" {
		t.Errorf("Expected no last folder, got %s", dir)
	}

	settings.SetLastFolder("/home/me/Desktop/shots")
	if dir := settings.GetLastFolder(); dir != "/home/me/Desktop/shots" {
		t.Errorf("Expected last folder /home/me/Desktop/shots, got %s", dir)
	}

	// Clearing forgets the folder
	settings.SetLastFolder("")
	if dir := settings.GetLastFolder(); dir != "" {
		t.Errorf("Expected last folder to be forgotten, got %s", dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")

	if got := settings.GetLanguage(); got != "en" {
		t.Errorf("Expected language 'en', got %s", got)
	}
}

func TestLanguageDefaultNotPersisted(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.GetLanguage()
	if settings.HasLanguage() {
		t.Error("Reading the default language must not store it")
	}

	settings.SetFallbackLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected fallback language 'ru', got %s", got)
	}
	if settings.HasLanguage() {
		t.Error("The fallback language must not be stored")
	}

	// A picked language wins over the fallback
	settings.SetLanguage("pt")
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected picked language 'pt', got %s", got)
	}

	// Fresh settings on the same app see the pick but not the fallback
	other := NewSettings(app)
	if got := other.GetLanguage(); got != "pt" {
		t.Errorf("Expected stored language 'pt', got %s", got)
	}
}

func TestPickerMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.GetPickerMode(); mode != DefaultPickerMode {
		t.Errorf("Expected default picker mode %s, got %s", DefaultPickerMode, mode)
	}

	settings.SetPickerMode(PickerFyne)
	if mode := settings.GetPickerMode(); mode != PickerFyne {
		t.Errorf("Expected picker mode %s, got %s", PickerFyne, mode)
	}

	// Unknown values fall back to the default
	settings.SetPickerMode("zenity")
	if mode := settings.GetPickerMode(); mode != DefaultPickerMode {
		t.Errorf("Unknown picker mode should fall back to %s, got %s", DefaultPickerMode, mode)
	}

	app.Preferences().SetString(KeyPickerMode, "garbage")
	if mode := settings.GetPickerMode(); mode != DefaultPickerMode {
		t.Errorf("Stored garbage should read as %s, got %s", DefaultPickerMode, mode)
	}
}

func TestGetPickerModeOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())

	options := settings.GetPickerModeOptions()
	if len(options) != 2 || options[0] != PickerNative || options[1] != PickerFyne {
		t.Errorf("Unexpected picker options: %v", options)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
