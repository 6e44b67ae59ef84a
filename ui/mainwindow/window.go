// Package mainwindow provides the overlay application window.
package mainwindow

import (
	"log"
	"path/filepath"

	"openpen/internal/document"
	"openpen/internal/engine"
	"openpen/internal/export"
	"openpen/ui/overlay"
	"openpen/ui/prefs"
	"openpen/ui/toolbar"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
)

const (
	windowTitle = "OpenPen"
	documentExt = ".openpen"
	exportExt   = ".pdf"
)

// MainWindow hosts the drawing surface and toolbar. It is created as a
// borderless splash window when the desktop driver supports it, which is
// the closest Fyne gets to a frameless screen overlay.
type MainWindow struct {
	fyne.Window
	app      fyne.App
	engine   *engine.Engine
	settings *prefs.Settings
	surface  *overlay.Widget

	// Path of the currently open document, empty for an unsaved scene.
	docPath string
}

// New creates the overlay window.
func New(fyneApp fyne.App, eng *engine.Engine, settings *prefs.Settings) *MainWindow {
	var win fyne.Window
	if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
		win = drv.CreateSplashWindow()
	} else {
		win = fyneApp.NewWindow(windowTitle)
	}

	mw := &MainWindow{
		Window:   win,
		app:      fyneApp,
		engine:   eng,
		settings: settings,
	}

	mw.setupUI()
	mw.setupKeys()

	win.SetCloseIntercept(mw.quit)
	win.Resize(fyne.NewSize(1280, 800))
	win.CenterOnScreen()

	return mw
}

// setupUI creates the window layout: the drawing surface filling the
// window with the toolbar docked at the bottom.
func (mw *MainWindow) setupUI() {
	mw.surface = overlay.New(mw.engine)

	bar := toolbar.New(mw.engine, mw.settings, toolbar.Actions{
		OnOpen:   mw.onOpenDocument,
		OnSave:   mw.onSaveDocument,
		OnExport: mw.onExportPDF,
		OnQuit:   mw.quit,
	})

	mw.SetPadded(false)
	mw.SetContent(container.NewBorder(nil, bar, nil, nil, mw.surface))
}

// setupKeys routes canvas key events to the engine. Escape first cancels
// a pending gesture and only closes the window when nothing is pending.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			if !mw.engine.CancelPending() {
				mw.quit()
			}
			return
		}
		if k, ok := keyFor(ev.Name); ok {
			if err := mw.engine.HandleKey(k); err != nil {
				log.Printf("key %v: %v", ev.Name, err)
			}
		}
	})
}

// keyFor translates Fyne key names into engine keys.
func keyFor(name fyne.KeyName) (engine.Key, bool) {
	switch name {
	case fyne.Key1:
		return engine.Key1, true
	case fyne.Key2:
		return engine.Key2, true
	case fyne.Key3:
		return engine.Key3, true
	case fyne.Key4:
		return engine.Key4, true
	case fyne.Key5:
		return engine.Key5, true
	case fyne.KeyF1:
		return engine.KeyF1, true
	case fyne.KeyF2:
		return engine.KeyF2, true
	case fyne.KeyF3:
		return engine.KeyF3, true
	case fyne.KeyF4:
		return engine.KeyF4, true
	case fyne.KeyF5:
		return engine.KeyF5, true
	case fyne.KeyReturn, fyne.KeyEnter:
		return engine.KeyEnter, true
	}
	return engine.KeyUnknown, false
}

// OpenDocument loads a saved document and replaces the scene.
func (mw *MainWindow) OpenDocument(path string) error {
	objects, err := document.Load(path)
	if err != nil {
		return err
	}
	mw.engine.ReplaceAll(objects)
	mw.docPath = path
	mw.settings.LastDocument = path
	return nil
}

func (mw *MainWindow) onOpenDocument() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		if err := mw.OpenDocument(reader.URI().Path()); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{documentExt, ".json"}))
	fd.Show()
}

func (mw *MainWindow) onSaveDocument() {
	if mw.docPath == "" {
		mw.onSaveDocumentAs()
		return
	}
	if err := document.Save(mw.docPath, mw.engine.Snapshot().Objects); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveDocumentAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != documentExt {
			path += documentExt
		}
		if err := document.Save(path, mw.engine.Snapshot().Objects); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.docPath = path
		mw.settings.LastDocument = path
	}, mw.Window)
	fd.SetFileName("annotations" + documentExt)
	fd.Show()
}

func (mw *MainWindow) onExportPDF() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != exportExt {
			path += exportExt
		}
		if err := export.ToPDF(path, mw.engine.Snapshot().Objects); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("annotations" + exportExt)
	fd.Show()
}

// quit persists preferences and closes the window.
func (mw *MainWindow) quit() {
	mw.settings.Capture(mw.engine)
	if err := mw.settings.Save(); err != nil {
		log.Printf("saving preferences: %v", err)
	}
	mw.Close()
}
