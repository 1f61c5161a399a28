package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDataDirectory()
	if dir == "" {
		t.Error("Data directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/sidebar"
	settings.SetDataDirectory(customDir)

	retrievedDir := settings.GetDataDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, retrievedDir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("es")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "es" {
		t.Errorf("Expected language 'es', got %s", retrievedLang)
	}
}

func TestDefaultDialColor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	color := settings.GetDefaultDialColor()
	if color != model.DefaultDialColor {
		t.Errorf("Expected default color %s, got %s", model.DefaultDialColor, color)
	}

	// Test setting custom value
	settings.SetDefaultDialColor("#ff0000")
	if settings.GetDefaultDialColor() != "#ff0000" {
		t.Errorf("Expected color #ff0000, got %s", settings.GetDefaultDialColor())
	}

	// Empty value defaults back
	settings.SetDefaultDialColor("")
	if settings.GetDefaultDialColor() != model.DefaultDialColor {
		t.Errorf("Empty color should default to %s, got %s", model.DefaultDialColor, settings.GetDefaultDialColor())
	}
}

func TestInitialStepCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	count := settings.GetInitialStepCount()
	if count != DefaultInitialSteps {
		t.Errorf("Expected default initial steps %d, got %d", DefaultInitialSteps, count)
	}

	// Test setting custom value
	settings.SetInitialStepCount(5)
	if settings.GetInitialStepCount() != 5 {
		t.Errorf("Expected initial steps 5, got %d", settings.GetInitialStepCount())
	}

	// Test boundary values
	settings.SetInitialStepCount(0) // Should be clamped to 1
	if settings.GetInitialStepCount() != MinInitialSteps {
		t.Errorf("Initial steps should be clamped to minimum %d", MinInitialSteps)
	}

	settings.SetInitialStepCount(50) // Should be clamped to 10
	if settings.GetInitialStepCount() != MaxInitialSteps {
		t.Errorf("Initial steps should be clamped to maximum %d", MaxInitialSteps)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "es"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
