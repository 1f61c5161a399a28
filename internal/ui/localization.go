package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyNewList            = "new_list"
	KeyNewSpeedDial       = "new_speed_dial"
	KeyEditSpeedDial      = "edit_speed_dial"
	KeyListName           = "list_name"
	KeyCategory           = "category"
	KeyDescription        = "description"
	KeyCommonTags         = "common_tags"
	KeySteps              = "steps"
	KeyAddStep            = "add_step"
	KeyStepPlaceholder    = "step_placeholder"
	KeyCreateWithCount    = "create_with_count"
	KeyCancel             = "cancel"
	KeySave               = "save"
	KeyTitle              = "title"
	KeyURL                = "url"
	KeyIcon               = "icon"
	KeyBackgroundColor    = "background_color"
	KeyPickColor          = "pick_color"
	KeyNameTakenWarning   = "name_taken_warning"
	KeyNameEmptyWarning   = "name_empty_warning"
	KeyNameTooLongWarning = "name_too_long_warning"
	KeyValidationTitle    = "validation_title"
	KeyErrorTitle         = "error_title"
	KeyListCreated        = "list_created"
	KeyMinimumStepsToast  = "minimum_steps_toast"
	KeySelectCategory     = "select_category"
	KeyErrorOpeningURL    = "error_opening_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Widget Sidebar",
		KeyNewList:            "New List",
		KeyNewSpeedDial:       "New Speed Dial",
		KeyEditSpeedDial:      "Edit Speed Dial",
		KeyListName:           "List name",
		KeyCategory:           "Category",
		KeyDescription:        "Description (optional)",
		KeyCommonTags:         "Common tags (comma separated)",
		KeySteps:              "Steps",
		KeyAddStep:            "Add step",
		KeyStepPlaceholder:    "Step %d",
		KeyCreateWithCount:    "Create (%d steps)",
		KeyCancel:             "Cancel",
		KeySave:               "Save",
		KeyTitle:              "Title",
		KeyURL:                "URL",
		KeyIcon:               "Icon (emoji)",
		KeyBackgroundColor:    "Background color",
		KeyPickColor:          "Pick color",
		KeyNameTakenWarning:   "A list with this name already exists in the category",
		KeyNameEmptyWarning:   "The list name cannot be empty",
		KeyNameTooLongWarning: "The list name is too long (maximum 100 characters)",
		KeyValidationTitle:    "Check the form",
		KeyErrorTitle:         "Error",
		KeyListCreated:        "List created",
		KeyMinimumStepsToast:  "A list needs at least one step",
		KeySelectCategory:     "Select a category",
		KeyErrorOpeningURL:    "Could not open URL",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:           "Widget Sidebar",
		KeyNewList:            "Nueva Lista",
		KeyNewSpeedDial:       "Nuevo Acceso Rápido",
		KeyEditSpeedDial:      "Editar Acceso Rápido",
		KeyListName:           "Nombre de la lista",
		KeyCategory:           "Categoría",
		KeyDescription:        "Descripción (opcional)",
		KeyCommonTags:         "Etiquetas comunes (separadas por comas)",
		KeySteps:              "Pasos",
		KeyAddStep:            "Agregar paso",
		KeyStepPlaceholder:    "Paso %d",
		KeyCreateWithCount:    "Crear (%d pasos)",
		KeyCancel:             "Cancelar",
		KeySave:               "Guardar",
		KeyTitle:              "Título",
		KeyURL:                "URL",
		KeyIcon:               "Icono (emoji)",
		KeyBackgroundColor:    "Color de fondo",
		KeyPickColor:          "Elegir color",
		KeyNameTakenWarning:   "Ya existe una lista con este nombre en la categoría",
		KeyNameEmptyWarning:   "El nombre de la lista no puede estar vacío",
		KeyNameTooLongWarning: "El nombre de la lista es demasiado largo (máximo 100 caracteres)",
		KeyValidationTitle:    "Revisa el formulario",
		KeyErrorTitle:         "Error",
		KeyListCreated:        "Lista creada",
		KeyMinimumStepsToast:  "Una lista necesita al menos un paso",
		KeySelectCategory:     "Selecciona una categoría",
		KeyErrorOpeningURL:    "No se pudo abrir la URL",
	}
}
