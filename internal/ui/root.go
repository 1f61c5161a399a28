package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/widgetsidebar/widget-sidebar/internal/config"
	"github.com/widgetsidebar/widget-sidebar/internal/listcreator"
	"github.com/widgetsidebar/widget-sidebar/internal/model"
	"github.com/widgetsidebar/widget-sidebar/internal/platform"
	"github.com/widgetsidebar/widget-sidebar/internal/speeddial"
	"github.com/widgetsidebar/widget-sidebar/internal/store"
)

// RootUI represents the main sidebar window: the speed dial grid and the
// entry points to the list creator and speed dial dialogs.
type RootUI struct {
	window       fyne.Window
	store        *store.Store
	settings     *config.Settings
	localization *Localization

	// UI components
	dialGrid   *DialGrid
	newListBtn *widget.Button
	newDialBtn *widget.Button
}

// NewRootUI creates and initializes the sidebar UI
func NewRootUI(window fyne.Window, app fyne.App, st *store.Store) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        st,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with store: %v", ui.store != nil)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.refreshDials()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.newListBtn = widget.NewButton(IconList+" "+ui.localization.GetText(KeyNewList), ui.onShowListCreator)
	ui.newDialBtn = widget.NewButton(IconDial+" "+ui.localization.GetText(KeyNewSpeedDial), ui.onShowSpeedDialEditor)

	ui.dialGrid = NewDialGrid()
	ui.dialGrid.SetCallbacks(ui.onOpenDial, ui.onEditDial)

	gridScroll := container.NewVScroll(ui.dialGrid.Container())
	gridScroll.SetMinSize(fyne.NewSize(SidebarWidth, DialGridHeight))

	topPanel := container.NewVBox(
		ui.newListBtn,
		ui.newDialBtn,
		widget.NewSeparator(),
	)

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, gridScroll))
	ui.window.Resize(fyne.NewSize(SidebarWidth, SidebarHeight))
}

// refreshDials reloads the speed dial grid from the store
func (ui *RootUI) refreshDials() {
	dials, err := ui.store.GetAllSpeedDials(context.Background())
	if err != nil {
		log.Printf("Failed to load speed dials: %v", err)
		return
	}
	ui.dialGrid.SetDials(dials)
}

// onShowListCreator opens the list creator dialog
func (ui *RootUI) onShowListCreator() {
	categories, err := ui.store.Categories(context.Background())
	if err != nil {
		log.Printf("Failed to load categories: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	builder := listcreator.NewBuilder(ui.store, ui.store)
	lcd := NewListCreatorDialog(
		builder,
		categories,
		ui.settings.GetInitialStepCount(),
		0,
		ui.window,
		ui.localization,
	)
	lcd.SetListCreatedCallback(func(listName string, categoryID int64, itemIDs []int64) {
		dialog.ShowInformation(
			ui.localization.GetText(KeyListCreated),
			fmt.Sprintf("%s (%d)", listName, len(itemIDs)),
			ui.window,
		)
	})
	lcd.Show()
}

// onShowSpeedDialEditor opens the speed dial dialog in create mode
func (ui *RootUI) onShowSpeedDialEditor() {
	editor := speeddial.NewEditor(ui.store, nil)
	editor.SetColor(ui.settings.GetDefaultDialColor())

	sdd := NewSpeedDialDialog(editor, ui.window, ui.localization)
	sdd.SetAddedCallback(func(dial model.SpeedDial) {
		log.Printf("Speed dial added: id=%s title=%q", dial.ID, dial.Title)
		ui.refreshDials()
	})
	sdd.Show()
}

// onEditDial opens the speed dial dialog in edit mode for an existing dial
func (ui *RootUI) onEditDial(dial model.SpeedDial) {
	editor := speeddial.NewEditor(ui.store, &dial)

	sdd := NewSpeedDialDialog(editor, ui.window, ui.localization)
	// Edits don't fire the added callback; reload once the dialog is gone.
	sdd.SetOnClosed(ui.refreshDials)
	sdd.Show()
}

// onOpenDial opens a dial's URL in the system browser
func (ui *RootUI) onOpenDial(dial model.SpeedDial) {
	log.Printf("Opening speed dial: %s -> %s", dial.Title, dial.URL)
	if err := platform.OpenInBrowser(dial.URL); err != nil {
		log.Printf("Failed to open URL %s: %v", dial.URL, err)
		dialog.ShowInformation(
			ui.localization.GetText(KeyErrorTitle),
			ui.localization.GetText(KeyErrorOpeningURL),
			ui.window,
		)
	}
}
