package engine

import "fmt"

// Tool represents the active annotation tool.
type Tool int

const (
	ToolMouse Tool = iota
	ToolPen
	ToolPolygon
	ToolText
	ToolEraser
)

// String returns a human-readable tool name.
func (t Tool) String() string {
	switch t {
	case ToolMouse:
		return "mouse"
	case ToolPen:
		return "pen"
	case ToolPolygon:
		return "polygon"
	case ToolText:
		return "text"
	case ToolEraser:
		return "eraser"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}
