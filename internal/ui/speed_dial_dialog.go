package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
	"github.com/widgetsidebar/widget-sidebar/internal/speeddial"
)

// SpeedDialDialog is the create/edit dialog for a speed dial shortcut. Form
// state and validation live in the speeddial.Editor.
type SpeedDialDialog struct {
	editor       *speeddial.Editor
	window       fyne.Window
	localization *Localization
	dialog       dialog.Dialog

	// UI components
	titleEntry   *widget.Entry
	urlEntry     *widget.Entry
	iconEntry    *widget.Entry
	colorPreview *canvas.Rectangle
	pickColorBtn *widget.Button
	saveBtn      *widget.Button
	cancelBtn    *widget.Button
}

// NewSpeedDialDialog creates the dialog around an editor. Edit mode prefills
// the fields from the editor's loaded record.
func NewSpeedDialDialog(editor *speeddial.Editor, window fyne.Window, localization *Localization) *SpeedDialDialog {
	sdd := &SpeedDialDialog{
		editor:       editor,
		window:       window,
		localization: localization,
	}

	sdd.createUI()
	sdd.loadFromEditor()
	return sdd
}

// SetAddedCallback forwards the create-success listener to the editor.
func (sdd *SpeedDialDialog) SetAddedCallback(callback func(model.SpeedDial)) {
	sdd.editor.SetAddedCallback(callback)
}

// SetOnClosed registers a callback for when the dialog is dismissed.
func (sdd *SpeedDialDialog) SetOnClosed(callback func()) {
	sdd.dialog.SetOnClosed(callback)
}

// Show displays the dialog
func (sdd *SpeedDialDialog) Show() {
	sdd.dialog.Show()
}

// createUI creates the dialog UI
func (sdd *SpeedDialDialog) createUI() {
	sdd.titleEntry = widget.NewEntry()
	sdd.titleEntry.SetPlaceHolder(sdd.localization.GetText(KeyTitle))
	sdd.titleEntry.OnChanged = sdd.editor.SetTitle

	sdd.urlEntry = widget.NewEntry()
	sdd.urlEntry.SetPlaceHolder("example.com")
	sdd.urlEntry.OnChanged = sdd.editor.SetURL

	sdd.iconEntry = widget.NewEntry()
	sdd.iconEntry.SetPlaceHolder(model.DefaultDialIcon)
	sdd.iconEntry.OnChanged = sdd.editor.SetIcon

	sdd.colorPreview = canvas.NewRectangle(parseHexColor(sdd.editor.Color()))
	sdd.colorPreview.SetMinSize(fyne.NewSize(ColorPreviewSize, ColorPreviewSize))

	sdd.pickColorBtn = widget.NewButton(sdd.localization.GetText(KeyPickColor), sdd.onPickColor)
	colorRow := container.NewHBox(sdd.colorPreview, sdd.pickColorBtn)

	sdd.saveBtn = widget.NewButton(sdd.localization.GetText(KeySave), sdd.onSave)
	sdd.saveBtn.Importance = widget.HighImportance
	sdd.cancelBtn = widget.NewButton(sdd.localization.GetText(KeyCancel), func() {
		sdd.dialog.Hide()
	})

	form := container.NewVBox(
		widget.NewLabel(sdd.localization.GetText(KeyTitle)),
		sdd.titleEntry,

		widget.NewLabel(sdd.localization.GetText(KeyURL)),
		sdd.urlEntry,

		widget.NewLabel(sdd.localization.GetText(KeyIcon)),
		sdd.iconEntry,

		widget.NewLabel(sdd.localization.GetText(KeyBackgroundColor)),
		colorRow,

		widget.NewSeparator(),
		container.NewHBox(sdd.cancelBtn, sdd.saveBtn),
	)

	titleKey := KeyNewSpeedDial
	if sdd.editor.Mode() == speeddial.ModeEdit {
		titleKey = KeyEditSpeedDial
	}

	sdd.dialog = dialog.NewCustomWithoutButtons(
		sdd.localization.GetText(titleKey),
		form,
		sdd.window,
	)
	sdd.dialog.Resize(fyne.NewSize(SpeedDialDialogWidth, SpeedDialDialogHeight))
}

// loadFromEditor mirrors the editor's current field values into the widgets.
func (sdd *SpeedDialDialog) loadFromEditor() {
	sdd.titleEntry.SetText(sdd.editor.Title())
	sdd.urlEntry.SetText(sdd.editor.URL())
	sdd.iconEntry.SetText(sdd.editor.Icon())
	sdd.colorPreview.FillColor = parseHexColor(sdd.editor.Color())
	sdd.colorPreview.Refresh()
}

// onPickColor opens the color picker and writes the choice back to the
// editor and the preview swatch.
func (sdd *SpeedDialDialog) onPickColor() {
	picker := dialog.NewColorPicker(
		sdd.localization.GetText(KeyBackgroundColor),
		"",
		func(c color.Color) {
			hex := formatHexColor(c)
			sdd.editor.SetColor(hex)
			sdd.colorPreview.FillColor = parseHexColor(hex)
			sdd.colorPreview.Refresh()
		},
		sdd.window,
	)
	picker.Advanced = true
	picker.Show()
}

// onSave handles the save button. Field errors refocus the offending entry
// and keep the dialog open; store failures keep it open with an error;
// success closes it.
func (sdd *SpeedDialDialog) onSave() {
	err := sdd.editor.Submit(context.Background())
	if err == nil {
		sdd.dialog.Hide()
		return
	}

	var ferr *speeddial.FieldError
	if errors.As(err, &ferr) {
		dialog.ShowInformation(sdd.localization.GetText(KeyValidationTitle), ferr.Message, sdd.window)
		switch ferr.Field {
		case speeddial.FieldTitle:
			sdd.window.Canvas().Focus(sdd.titleEntry)
		case speeddial.FieldURL:
			sdd.window.Canvas().Focus(sdd.urlEntry)
		}
		return
	}

	dialog.ShowError(err, sdd.window)
}

// parseHexColor converts a #rrggbb string to a color. Malformed input falls
// back to the default dial color rather than failing.
func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{R: 22, G: 33, B: 62, A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// formatHexColor renders a color as #rrggbb.
func formatHexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
