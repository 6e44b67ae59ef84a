// Package app provides application-level Fyne customization.
package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"openpen/pkg/colorutil"
)

// OverlayTheme darkens the default theme so toolbar chrome stays
// readable over arbitrary screen content.
type OverlayTheme struct{}

var _ fyne.Theme = (*OverlayTheme)(nil)

func (t *OverlayTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorutil.Red
	case theme.ColorNameSelection:
		return colorutil.WithAlpha(colorutil.White, 0x60)
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xF0}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *OverlayTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *OverlayTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *OverlayTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Tighter chrome keeps more of the screen drawable
	default:
		return theme.DefaultTheme().Size(name)
	}
}
