package engine

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Key is a host-neutral key identifier. The window layer translates
// toolkit key events into these before routing them to the engine.
type Key int

const (
	KeyUnknown Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyEnter
	KeyEscape
)

// toolForKey maps tool-switch hotkeys to tools. Returns false for keys
// that do not switch tools.
func toolForKey(k Key) (Tool, bool) {
	switch k {
	case Key1, KeyF1:
		return ToolPen, true
	case Key2, KeyF2:
		return ToolPolygon, true
	case Key3, KeyF3:
		return ToolText, true
	case Key4, KeyF4:
		return ToolMouse, true
	case Key5, KeyF5:
		return ToolEraser, true
	}
	return ToolMouse, false
}
