package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/widgetsidebar/widget-sidebar/internal/config"
	"github.com/widgetsidebar/widget-sidebar/internal/platform"
	"github.com/widgetsidebar/widget-sidebar/internal/store"
	"github.com/widgetsidebar/widget-sidebar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.widgetsidebar.widget-sidebar"
	AppName = "Widget Sidebar"
)

func main() {
	// Log version information
	fmt.Printf("Widget Sidebar v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply sidebar theme
	myApp.Settings().SetTheme(ui.NewSidebarTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.SidebarWidth, ui.SidebarHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	dataDir := settings.GetDataDirectory()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		log.Fatalf("failed to ensure data dir: %v", err)
	}

	db, err := store.InitDB(context.Background(), dataDir)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	st := store.New(db)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, st)

	// Show and run
	myWindow.ShowAndRun()
}
