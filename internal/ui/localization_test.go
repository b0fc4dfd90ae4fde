package ui

import "testing"

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeySaveCaption); got != "Save Caption" {
		t.Errorf("Expected English text, got %q", got)
	}

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("Expected language ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeySaveCaption); got != "Сохранить подпись" {
		t.Errorf("Expected Russian text, got %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should not change current language, got %s", l.GetCurrentLanguage())
	}

	// System maps to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Missing key should fall back to itself, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Language %s has no texts", lang)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
