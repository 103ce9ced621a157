package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/tv-tiles/internal/assets"
	"github.com/ytget/tv-tiles/internal/config"
	"github.com/ytget/tv-tiles/internal/pinned"
	"github.com/ytget/tv-tiles/internal/screenshot"
	"github.com/ytget/tv-tiles/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.tv-tiles"
	AppName = "TV Tiles"

	WindowWidth  = 1280
	WindowHeight = 720
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTVTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	// Tiles still load without a screenshot directory; custom tiles then have no image
	var screenshots pinned.ScreenshotStore
	store, err := screenshot.NewStore(storage.NewFileURI(settings.GetScreenshotDirectory()))
	if err != nil {
		log.Printf("screenshots disabled: %v", err)
	} else {
		screenshots = store
	}

	repo, err := pinned.NewRepository(settings, assets.BundledTiles(), screenshots)
	if err != nil {
		log.Fatalf("failed to load pinned tiles: %v", err)
	}
	repo.SetBundledImages(assets.FS())

	home := ui.NewHomeUI(myWindow, settings, repo, ui.NewLocalization())
	defer home.Close()

	myWindow.ShowAndRun()
}
