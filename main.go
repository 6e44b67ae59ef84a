// Package main provides the entry point for the OpenPen overlay.
package main

import (
	"log"
	"os"

	appx "openpen/internal/app"
	"openpen/internal/engine"
	"openpen/internal/version"
	"openpen/ui/mainwindow"
	"openpen/ui/prefs"

	"fyne.io/fyne/v2/app"
)

const appTitle = "OpenPen"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(&appx.OverlayTheme{})

	eng := engine.New()
	settings := prefs.Load()
	settings.Apply(eng)

	win := mainwindow.New(fyneApp, eng, settings)
	win.SetTitle(appTitle)

	if len(os.Args) > 1 {
		docPath := os.Args[1]
		if err := win.OpenDocument(docPath); err != nil {
			log.Printf("Failed to load document %s: %v", docPath, err)
		}
	}

	win.Show()
	fyneApp.Run()
}
