package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/widgetsidebar/widget-sidebar/internal/listcreator"
	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

// ListCreatorDialog is the multi-step list creation dialog. It owns a
// listcreator.Builder for all form state and validation; the widgets here
// only mirror that state.
type ListCreatorDialog struct {
	builder      *listcreator.Builder
	categories   []model.Category
	window       fyne.Window
	localization *Localization
	dialog       dialog.Dialog

	// UI components
	nameEntry        *widget.Entry
	nameWarningLabel *widget.Label
	categorySelect   *widget.Select
	descriptionEntry *widget.Entry
	tagsEntry        *widget.Entry
	stepsContainer   *fyne.Container
	stepRows         []*StepRow
	addStepBtn       *widget.Button
	createBtn        *widget.Button
	cancelBtn        *widget.Button
}

// NewListCreatorDialog creates the dialog. initialSteps empty rows are added
// beyond the builder's starting one; preselected picks a category up front
// (zero for none).
func NewListCreatorDialog(
	builder *listcreator.Builder,
	categories []model.Category,
	initialSteps int,
	preselected int64,
	window fyne.Window,
	localization *Localization,
) *ListCreatorDialog {
	lcd := &ListCreatorDialog{
		builder:      builder,
		categories:   categories,
		window:       window,
		localization: localization,
	}

	for builder.StepCount() < initialSteps {
		builder.AddStep()
	}

	lcd.createUI()

	if preselected != 0 {
		for _, c := range categories {
			if c.ID == preselected {
				lcd.categorySelect.SetSelected(c.DisplayName())
				break
			}
		}
	}

	return lcd
}

// SetListCreatedCallback forwards the success listener to the builder.
func (lcd *ListCreatorDialog) SetListCreatedCallback(callback func(listName string, categoryID int64, itemIDs []int64)) {
	lcd.builder.SetListCreatedCallback(callback)
}

// Show displays the dialog
func (lcd *ListCreatorDialog) Show() {
	lcd.dialog.Show()
}

// createUI creates the dialog UI
func (lcd *ListCreatorDialog) createUI() {
	lcd.nameEntry = widget.NewEntry()
	lcd.nameEntry.SetPlaceHolder(lcd.localization.GetText(KeyListName))
	lcd.nameEntry.OnChanged = func(text string) {
		lcd.builder.SetName(text)
		lcd.refreshNameWarning()
	}

	lcd.nameWarningLabel = widget.NewLabel("")
	lcd.nameWarningLabel.Importance = widget.WarningImportance
	lcd.nameWarningLabel.Hide()

	options := make([]string, 0, len(lcd.categories))
	for _, c := range lcd.categories {
		options = append(options, c.DisplayName())
	}
	lcd.categorySelect = widget.NewSelect(options, func(selected string) {
		for _, c := range lcd.categories {
			if c.DisplayName() == selected {
				lcd.builder.SetCategoryID(c.ID)
				break
			}
		}
		lcd.refreshNameWarning()
	})
	lcd.categorySelect.PlaceHolder = lcd.localization.GetText(KeySelectCategory)

	lcd.descriptionEntry = widget.NewMultiLineEntry()
	lcd.descriptionEntry.SetPlaceHolder(lcd.localization.GetText(KeyDescription))
	lcd.descriptionEntry.OnChanged = lcd.builder.SetDescription

	lcd.tagsEntry = widget.NewEntry()
	lcd.tagsEntry.SetPlaceHolder(lcd.localization.GetText(KeyCommonTags))
	lcd.tagsEntry.OnChanged = lcd.builder.SetCommonTags

	lcd.stepsContainer = container.NewVBox()
	lcd.addStepBtn = widget.NewButton(IconAdd+" "+lcd.localization.GetText(KeyAddStep), lcd.onAddStep)

	lcd.createBtn = widget.NewButton("", lcd.onCreate)
	lcd.createBtn.Importance = widget.HighImportance
	lcd.cancelBtn = widget.NewButton(lcd.localization.GetText(KeyCancel), func() {
		lcd.dialog.Hide()
	})

	lcd.rebuildStepRows()

	form := container.NewVBox(
		widget.NewLabel(lcd.localization.GetText(KeyListName)),
		lcd.nameEntry,
		lcd.nameWarningLabel,

		widget.NewLabel(lcd.localization.GetText(KeyCategory)),
		lcd.categorySelect,

		widget.NewLabel(lcd.localization.GetText(KeyDescription)),
		lcd.descriptionEntry,

		widget.NewLabel(lcd.localization.GetText(KeyCommonTags)),
		lcd.tagsEntry,

		widget.NewSeparator(),
		widget.NewLabel(lcd.localization.GetText(KeySteps)),
	)

	stepsScroll := container.NewVScroll(lcd.stepsContainer)
	stepsScroll.SetMinSize(fyne.NewSize(StepRowMinWidth, StepListHeight))

	buttonRow := container.NewHBox(lcd.cancelBtn, lcd.createBtn)
	content := container.NewBorder(
		form,
		container.NewVBox(lcd.addStepBtn, buttonRow),
		nil, nil,
		stepsScroll,
	)

	lcd.dialog = dialog.NewCustomWithoutButtons(
		lcd.localization.GetText(KeyNewList),
		content,
		lcd.window,
	)
	lcd.dialog.Resize(fyne.NewSize(ListCreatorDialogWidth, ListCreatorDialogHeight))
}

// rebuildStepRows recreates one row widget per builder step and syncs the
// create button counter. Called after every structural change.
func (lcd *ListCreatorDialog) rebuildStepRows() {
	steps := lcd.builder.Steps()

	for len(lcd.stepRows) < len(steps) {
		row := NewStepRow(lcd.localization)
		row.SetCallbacks(
			func(index int, label string) {
				lcd.builder.SetStepLabel(index, label)
			},
			func(index int) {
				lcd.builder.MoveUp(index)
				lcd.rebuildStepRows()
			},
			func(index int) {
				lcd.builder.MoveDown(index)
				lcd.rebuildStepRows()
			},
			lcd.onDeleteStep,
		)
		lcd.stepRows = append(lcd.stepRows, row)
		lcd.stepsContainer.Add(row)
	}
	for len(lcd.stepRows) > len(steps) {
		last := lcd.stepRows[len(lcd.stepRows)-1]
		lcd.stepsContainer.Remove(last)
		lcd.stepRows = lcd.stepRows[:len(lcd.stepRows)-1]
	}

	for i, entry := range steps {
		lcd.stepRows[i].Update(i, entry.Position, entry.Label,
			lcd.builder.CanMoveUp(i), lcd.builder.CanMoveDown(i))
	}

	lcd.createBtn.SetText(fmt.Sprintf(lcd.localization.GetText(KeyCreateWithCount), lcd.builder.StepCount()))
	lcd.stepsContainer.Refresh()
}

// refreshNameWarning runs the advisory uniqueness check and mirrors the
// result next to the name field.
func (lcd *ListCreatorDialog) refreshNameWarning() {
	warning := lcd.builder.CheckNameUnique(context.Background())
	if warning == "" {
		lcd.nameWarningLabel.Hide()
		return
	}
	lcd.nameWarningLabel.SetText(IconWarning + " " + localizedWarning(lcd.localization, warning))
	lcd.nameWarningLabel.Show()
}

// localizedWarning maps a builder warning message to its translation.
// Unmapped messages pass through untranslated.
func localizedWarning(l *Localization, msg string) string {
	switch msg {
	case listcreator.MsgNameEmpty:
		return l.GetText(KeyNameEmptyWarning)
	case listcreator.MsgNameTooLong:
		return l.GetText(KeyNameTooLongWarning)
	case listcreator.MsgNameTaken:
		return l.GetText(KeyNameTakenWarning)
	}
	return msg
}

// onAddStep handles the add-step button
func (lcd *ListCreatorDialog) onAddStep() {
	lcd.builder.AddStep()
	lcd.rebuildStepRows()
}

// onDeleteStep handles a row's delete button
func (lcd *ListCreatorDialog) onDeleteStep(index int) {
	if err := lcd.builder.DeleteStep(index); err != nil {
		if errors.Is(err, listcreator.ErrMinimumSteps) {
			dialog.ShowInformation(
				lcd.localization.GetText(KeyValidationTitle),
				lcd.localization.GetText(KeyMinimumStepsToast),
				lcd.window,
			)
			return
		}
		log.Printf("Delete step failed: index=%d: %v", index, err)
		return
	}
	lcd.rebuildStepRows()
}

// onCreate handles the create button. Validation failures keep the dialog
// open with a warning; store failures keep it open with an error; success
// closes it.
func (lcd *ListCreatorDialog) onCreate() {
	err := lcd.builder.Submit(context.Background())
	if err == nil {
		lcd.dialog.Hide()
		return
	}

	var verr *listcreator.ValidationError
	if errors.As(err, &verr) {
		dialog.ShowInformation(lcd.localization.GetText(KeyValidationTitle), verr.Message, lcd.window)
		return
	}

	dialog.ShowError(err, lcd.window)
}
