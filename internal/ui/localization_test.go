package ui

import (
	"testing"

	"github.com/widgetsidebar/widget-sidebar/internal/listcreator"
)

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyNewList) != "New List" {
		t.Errorf("Expected English text, got %s", l.GetText(KeyNewList))
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("es")
	if l.GetText(KeyNewList) != "Nueva Lista" {
		t.Errorf("Expected Spanish text, got %s", l.GetText(KeyNewList))
	}

	// Unknown language keeps the current one
	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "es" {
		t.Errorf("Unknown language should not change current, got %s", l.GetCurrentLanguage())
	}

	// "system" falls back to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'system' to resolve to 'en', got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_FallbackToKey(t *testing.T) {
	l := NewLocalization()

	if l.GetText("nonexistent_key") != "nonexistent_key" {
		t.Error("Unknown key should fall back to the key itself")
	}
}

func TestLocalizedWarning_TranslatesBuilderMessages(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("es")

	tests := []struct {
		message  string
		expected string
	}{
		{listcreator.MsgNameTaken, "Ya existe una lista con este nombre en la categoría"},
		{listcreator.MsgNameEmpty, "El nombre de la lista no puede estar vacío"},
		{listcreator.MsgNameTooLong, "El nombre de la lista es demasiado largo (máximo 100 caracteres)"},
		{"some other message", "some other message"},
	}

	for _, test := range tests {
		if got := localizedWarning(l, test.message); got != test.expected {
			t.Errorf("localizedWarning(%q) = %q, expected %q", test.message, got, test.expected)
		}
	}
}

func TestLocalization_AllKeysPresentInBothLanguages(t *testing.T) {
	l := NewLocalization()

	for key := range l.texts["en"] {
		if _, ok := l.texts["es"][key]; !ok {
			t.Errorf("Key %s missing from Spanish translation", key)
		}
	}
	for key := range l.texts["es"] {
		if _, ok := l.texts["en"][key]; !ok {
			t.Errorf("Key %s missing from English translation", key)
		}
	}
}
