// Package toolbar builds the control strip shown at the bottom of the
// overlay window: tool selection, pen style, eraser size, history and
// file actions, plus the inline text capture entry.
package toolbar

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"openpen/internal/annotation"
	"openpen/internal/engine"
	"openpen/pkg/colorutil"
	"openpen/ui/prefs"
)

const (
	minThickness = 1.0
	maxThickness = 24.0
	minEraser    = 8.0
	maxEraser    = 80.0
)

// Actions holds the file-level callbacks wired in by the window.
type Actions struct {
	OnOpen   func()
	OnSave   func()
	OnExport func()
	OnQuit   func()
}

var toolNames = []string{"Mouse", "Pen", "Polygon", "Text", "Eraser"}

var toolByName = map[string]engine.Tool{
	"Mouse":   engine.ToolMouse,
	"Pen":     engine.ToolPen,
	"Polygon": engine.ToolPolygon,
	"Text":    engine.ToolText,
	"Eraser":  engine.ToolEraser,
}

func nameForTool(t engine.Tool) string {
	for name, tool := range toolByName {
		if tool == t {
			return name
		}
	}
	return "Pen"
}

// colorSwatch is a tappable palette square.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.RGBA
	OnTapped func(color.RGBA)
}

func newColorSwatch(c color.RGBA, tapped func(color.RGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(26, 26))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// New assembles the toolbar bound to the engine.
func New(eng *engine.Engine, settings *prefs.Settings, actions Actions) fyne.CanvasObject {
	// Tool selection, kept in sync with hotkey switches.
	tools := widget.NewRadioGroup(toolNames, func(name string) {
		if tool, ok := toolByName[name]; ok && tool != eng.ActiveTool() {
			eng.SetTool(tool)
		}
	})
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(nameForTool(eng.ActiveTool()))
	eng.On(engine.EventToolChanged, func(data interface{}) {
		if tool, ok := data.(engine.Tool); ok {
			tools.SetSelected(nameForTool(tool))
		}
	})

	// Pen color palette.
	onColorTapped := func(c color.RGBA) {
		style := eng.Style()
		style.Color = c
		if err := eng.SetStyle(style); err == nil {
			eng.SetTool(engine.ToolPen)
		}
	}
	swatches := make([]fyne.CanvasObject, 0, len(colorutil.Palette))
	for _, c := range colorutil.Palette {
		swatches = append(swatches, newColorSwatch(c, onColorTapped))
	}
	colorBox := container.NewHBox(swatches...)

	// Pen thickness.
	thickness := widget.NewSlider(minThickness, maxThickness)
	thickness.Step = 1
	thickness.SetValue(eng.Style().Thickness)
	thickness.OnChanged = func(val float64) {
		style := eng.Style()
		style.Thickness = val
		_ = eng.SetStyle(style)
	}

	// Eraser radius.
	eraser := widget.NewSlider(minEraser, maxEraser)
	eraser.Step = 1
	eraser.SetValue(eng.EraserRadius())
	eraser.OnChanged = eng.SetEraserRadius

	status := widget.NewLabel("")
	eng.On(engine.EventStatus, func(data interface{}) {
		if msg, ok := data.(string); ok {
			status.SetText(msg)
		}
	})

	eng.On(engine.EventStyleChanged, func(data interface{}) {
		if style, ok := data.(annotation.Style); ok {
			thickness.SetValue(style.Thickness)
			status.SetText(FormatStyle(style))
		}
	})

	// History and file actions.
	history := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { _ = eng.Undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { _ = eng.Redo() }),
		widget.NewToolbarAction(theme.DeleteIcon(), eng.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), actions.OnOpen),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), actions.OnSave),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), actions.OnExport),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.CancelIcon(), actions.OnQuit),
	)

	hints := widget.NewLabel("1-5 / F1-F5 switch tools · Enter closes polygon · Esc cancels")
	hints.TextStyle = fyne.TextStyle{Italic: true}
	if !settings.ShowHints {
		hints.Hide()
	}

	textRow := newTextEntryRow(eng, settings)

	controls := container.NewHBox(
		tools,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Pen"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 36)), thickness),
		widget.NewLabel("Eraser"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 36)), eraser),
		widget.NewSeparator(),
		history,
		layout.NewSpacer(),
		status,
		hints,
	)

	return container.NewVBox(textRow, controls)
}

// newTextEntryRow returns the inline entry used by the text tool. It is
// hidden until the engine requests a text edit.
func newTextEntryRow(eng *engine.Engine, settings *prefs.Settings) fyne.CanvasObject {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Label text")
	entry.SetText(settings.TextDraft)

	row := container.NewBorder(nil, nil, widget.NewLabel("Text"), nil, entry)
	row.Hide()

	// The draft persists across placements so repeated labels need no retyping.
	confirm := func(text string) {
		if !eng.TextEditing() {
			return
		}
		if err := eng.ConfirmText(text); err != nil {
			return
		}
		settings.TextDraft = text
		row.Hide()
	}
	entry.OnSubmitted = confirm

	eng.On(engine.EventTextEditRequested, func(interface{}) {
		row.Show()
		if c := fyne.CurrentApp().Driver().CanvasForObject(entry); c != nil {
			c.Focus(entry)
		}
	})
	eng.On(engine.EventToolChanged, func(interface{}) {
		if !eng.TextEditing() {
			row.Hide()
		}
	})

	return row
}

// FormatStyle renders a short style description for status display.
func FormatStyle(s annotation.Style) string {
	return fmt.Sprintf("%s %.0fpx", colorutil.ToHex(s.Color), s.Thickness)
}
