package config

import (
	"fyne.io/fyne/v2"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
	"github.com/widgetsidebar/widget-sidebar/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir          = "data_directory"
	KeyLanguage         = "app_language"
	KeyDefaultDialColor = "default_dial_color"
	KeyInitialSteps     = "initial_step_count"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultInitialSteps = 2

	MinInitialSteps = 1
	MaxInitialSteps = 10
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the directory holding the sidebar database
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir, err := platform.GetAppDataDir()
		if err != nil {
			defaultDir = "/tmp/widget-sidebar"
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultDialColor returns the background color used for new speed dials
func (s *Settings) GetDefaultDialColor() string {
	color := s.app.Preferences().String(KeyDefaultDialColor)
	if color == "" {
		s.SetDefaultDialColor(model.DefaultDialColor)
		return model.DefaultDialColor
	}
	return color
}

// SetDefaultDialColor sets the background color used for new speed dials
func (s *Settings) SetDefaultDialColor(color string) {
	if color == "" {
		color = model.DefaultDialColor
	}
	s.app.Preferences().SetString(KeyDefaultDialColor, color)
}

// GetInitialStepCount returns how many empty steps a new list creator opens with
func (s *Settings) GetInitialStepCount() int {
	count := s.app.Preferences().Int(KeyInitialSteps)
	if count <= 0 {
		s.SetInitialStepCount(DefaultInitialSteps)
		return DefaultInitialSteps
	}
	if count > MaxInitialSteps {
		return MaxInitialSteps
	}
	return count
}

// SetInitialStepCount sets how many empty steps a new list creator opens with
func (s *Settings) SetInitialStepCount(count int) {
	if count < MinInitialSteps {
		count = MinInitialSteps
	}
	if count > MaxInitialSteps {
		count = MaxInitialSteps
	}
	s.app.Preferences().SetInt(KeyInitialSteps, count)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}
