package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StepRow represents a single step row in the list creator dialog: a
// position-numbered label entry with move up / move down / delete buttons.
type StepRow struct {
	widget.BaseWidget

	index        int
	localization *Localization

	// UI components
	positionLabel *widget.Label
	labelEntry    *widget.Entry
	moveUpBtn     *widget.Button
	moveDownBtn   *widget.Button
	deleteBtn     *widget.Button

	// Callbacks
	onLabelChanged func(index int, label string)
	onMoveUp       func(index int)
	onMoveDown     func(index int)
	onDelete       func(index int)
}

// NewStepRow creates a new step row widget
func NewStepRow(localization *Localization) *StepRow {
	sr := &StepRow{
		index:        0,
		localization: localization,
	}
	sr.ExtendBaseWidget(sr)
	sr.createUI()
	return sr
}

// SetCallbacks sets the action callbacks
func (sr *StepRow) SetCallbacks(
	onLabelChanged func(index int, label string),
	onMoveUp func(index int),
	onMoveDown func(index int),
	onDelete func(index int),
) {
	if onLabelChanged == nil {
		log.Printf("Warning: onLabelChanged callback is nil for step row %d", sr.index)
	}
	if onDelete == nil {
		log.Printf("Warning: onDelete callback is nil for step row %d", sr.index)
	}

	sr.onLabelChanged = onLabelChanged
	sr.onMoveUp = onMoveUp
	sr.onMoveDown = onMoveDown
	sr.onDelete = onDelete
}

// Update binds the row to a step: index into the collection, 1-based
// position, current label and move availability.
func (sr *StepRow) Update(index, position int, label string, canMoveUp, canMoveDown bool) {
	sr.index = index
	sr.positionLabel.SetText(fmt.Sprintf("%d.", position))
	sr.labelEntry.SetPlaceHolder(fmt.Sprintf(sr.localization.GetText(KeyStepPlaceholder), position))

	// Avoid firing OnChanged while syncing from the builder
	onChanged := sr.labelEntry.OnChanged
	sr.labelEntry.OnChanged = nil
	sr.labelEntry.SetText(label)
	sr.labelEntry.OnChanged = onChanged

	if canMoveUp {
		sr.moveUpBtn.Enable()
	} else {
		sr.moveUpBtn.Disable()
	}
	if canMoveDown {
		sr.moveDownBtn.Enable()
	} else {
		sr.moveDownBtn.Disable()
	}

	sr.Refresh()
}

// createUI creates the UI components
func (sr *StepRow) createUI() {
	sr.positionLabel = widget.NewLabel("1.")
	sr.positionLabel.TextStyle = fyne.TextStyle{Bold: true}

	sr.labelEntry = widget.NewEntry()
	sr.labelEntry.OnChanged = func(text string) {
		if sr.onLabelChanged != nil {
			sr.onLabelChanged(sr.index, text)
		}
	}

	sr.moveUpBtn = widget.NewButton(IconMoveUp, func() {
		if sr.onMoveUp != nil {
			sr.onMoveUp(sr.index)
		}
	})
	sr.moveUpBtn.Importance = widget.LowImportance

	sr.moveDownBtn = widget.NewButton(IconMoveDown, func() {
		if sr.onMoveDown != nil {
			sr.onMoveDown(sr.index)
		}
	})
	sr.moveDownBtn.Importance = widget.LowImportance

	sr.deleteBtn = widget.NewButton(IconDelete, func() {
		if sr.onDelete != nil {
			sr.onDelete(sr.index)
		}
	})
	sr.deleteBtn.Importance = widget.DangerImportance
}

// CreateRenderer creates the widget renderer
func (sr *StepRow) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewHBox(sr.moveUpBtn, sr.moveDownBtn, sr.deleteBtn)
	layout := container.NewBorder(nil, nil, sr.positionLabel, buttons, sr.labelEntry)
	return widget.NewSimpleRenderer(layout)
}
