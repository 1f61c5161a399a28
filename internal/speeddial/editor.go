package speeddial

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

// Mode selects between creating a new record and editing an existing one.
// It is fixed at construction and never reassigned.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// String returns the mode name for logs.
func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Field identifies the form field a validation failure points at, so the
// dialog can return focus there.
type Field int

const (
	FieldTitle Field = iota
	FieldURL
)

// Validation messages surfaced to the user.
const (
	MsgTitleEmpty = "The title cannot be empty"
	MsgURLEmpty   = "The URL cannot be empty"
)

// FieldError is a validation failure tied to a specific field. The dialog
// shows the message and moves focus back to the field for a retry.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Store persists speed dial records. AddSpeedDial returns the ID assigned to
// the new record; UpdateSpeedDial fails for unknown IDs.
type Store interface {
	AddSpeedDial(ctx context.Context, d model.SpeedDial) (string, error)
	UpdateSpeedDial(ctx context.Context, d model.SpeedDial) error
}

// Editor manages the state of the speed dial dialog. All methods run on the
// UI dispatch goroutine.
type Editor struct {
	store    Store
	mode     Mode
	existing model.SpeedDial

	title string
	url   string
	icon  string
	color string

	onAdded func(model.SpeedDial)
}

// NewEditor creates an editor. A nil existing record selects create mode;
// otherwise the editor starts in edit mode with the record's fields loaded
// verbatim and a defaulted color when the record carries none.
func NewEditor(store Store, existing *model.SpeedDial) *Editor {
	e := &Editor{
		store: store,
		mode:  ModeCreate,
		color: model.DefaultDialColor,
	}
	if existing != nil {
		e.mode = ModeEdit
		e.existing = *existing
		e.title = existing.Title
		e.url = existing.URL
		e.icon = existing.Icon
		e.color = model.NormalizeColor(existing.BackgroundColor)
	}
	return e
}

// Mode returns the editor mode chosen at construction.
func (e *Editor) Mode() Mode { return e.mode }

// SetAddedCallback registers the listener notified after a successful create
// with the full new record, including the assigned ID. It does not fire for
// edits.
func (e *Editor) SetAddedCallback(callback func(model.SpeedDial)) {
	e.onAdded = callback
}

// SetTitle sets the title field.
func (e *Editor) SetTitle(title string) { e.title = title }

// Title returns the raw title field.
func (e *Editor) Title() string { return e.title }

// SetURL sets the URL field.
func (e *Editor) SetURL(url string) { e.url = url }

// URL returns the raw URL field.
func (e *Editor) URL() string { return e.url }

// SetIcon sets the icon field.
func (e *Editor) SetIcon(icon string) { e.icon = icon }

// Icon returns the raw icon field.
func (e *Editor) Icon() string { return e.icon }

// SetColor sets the background color field.
func (e *Editor) SetColor(color string) { e.color = color }

// Color returns the selected background color.
func (e *Editor) Color() string { return e.color }

// NormalizeURL trims the input and prefixes https:// when a non-empty value
// lacks a scheme. A blank URL stays blank; that is a validation failure, not
// something to auto-correct.
func NormalizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}

// Submit validates the fields and saves the record. Validation failures come
// back as *FieldError so the dialog can refocus the offending field. Store
// failures (including recovered panics) come back as plain errors and the
// dialog stays open; on success nil is returned and, in create mode, the
// added callback fires with the stored record.
func (e *Editor) Submit(ctx context.Context) (err error) {
	title := strings.TrimSpace(e.title)
	if title == "" {
		return &FieldError{Field: FieldTitle, Message: MsgTitleEmpty}
	}

	url := NormalizeURL(e.url)
	if url == "" {
		return &FieldError{Field: FieldURL, Message: MsgURLEmpty}
	}

	record := model.SpeedDial{
		ID:              e.existing.ID,
		Title:           title,
		URL:             url,
		Icon:            model.NormalizeIcon(e.icon),
		BackgroundColor: model.NormalizeColor(e.color),
	}

	// A failed save must never crash the dialog.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Speed dial save panicked: %v", r)
			err = fmt.Errorf("could not save speed dial: %v", r)
		}
	}()

	if e.mode == ModeEdit {
		if err := e.store.UpdateSpeedDial(ctx, record); err != nil {
			log.Printf("Speed dial update failed: id=%s: %v", record.ID, err)
			return fmt.Errorf("could not update speed dial: %w", err)
		}
		log.Printf("Speed dial updated: %s", record.Title)
		return nil
	}

	id, err := e.store.AddSpeedDial(ctx, record)
	if err != nil {
		log.Printf("Speed dial creation failed: %v", err)
		return fmt.Errorf("could not create speed dial: %w", err)
	}
	record.ID = id

	log.Printf("Speed dial created: %s", record.Title)

	if e.onAdded != nil {
		e.onAdded(record)
	}
	return nil
}
