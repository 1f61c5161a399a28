package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

// DialGrid renders the speed dial shortcuts as a wrapping grid of buttons.
// Tapping a dial opens its URL; the grid itself holds no state beyond the
// last slice it was given.
type DialGrid struct {
	grid *fyne.Container

	// Callbacks
	onOpen func(dial model.SpeedDial)
	onEdit func(dial model.SpeedDial)
}

// NewDialGrid creates an empty grid
func NewDialGrid() *DialGrid {
	return &DialGrid{
		grid: container.NewGridWrap(fyne.NewSize(DialCellWidth, DialCellHeight)),
	}
}

// SetCallbacks sets the tap and edit callbacks
func (dg *DialGrid) SetCallbacks(onOpen, onEdit func(dial model.SpeedDial)) {
	if onOpen == nil {
		log.Printf("Warning: onOpen callback is nil for dial grid")
	}
	dg.onOpen = onOpen
	dg.onEdit = onEdit
}

// Container returns the grid's canvas object for embedding in a layout
func (dg *DialGrid) Container() fyne.CanvasObject {
	return dg.grid
}

// SetDials replaces the grid contents with the given dials in order.
func (dg *DialGrid) SetDials(dials []model.SpeedDial) {
	dg.grid.RemoveAll()

	for _, dial := range dials {
		d := dial
		openBtn := widget.NewButton(d.Icon+"\n"+d.Title, func() {
			if dg.onOpen != nil {
				dg.onOpen(d)
			}
		})
		openBtn.Importance = widget.MediumImportance

		editBtn := widget.NewButton(IconEdit, func() {
			if dg.onEdit != nil {
				dg.onEdit(d)
			}
		})
		editBtn.Importance = widget.LowImportance

		dg.grid.Add(container.NewBorder(nil, nil, nil, editBtn, openBtn))
	}

	dg.grid.Refresh()
}
