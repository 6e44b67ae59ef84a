// Package colorutil provides shared color utilities for the overlay application.
package colorutil

import (
	"fmt"
	"image/color"
)

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Red     = color.RGBA{R: 255, G: 77, B: 77, A: 255}
	Green   = color.RGBA{R: 80, G: 220, B: 100, A: 255}
	Blue    = color.RGBA{R: 85, G: 170, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	Purple  = color.RGBA{R: 204, G: 128, B: 255, A: 255}
)

// Palette is the default pen color palette, in toolbar order.
var Palette = []color.RGBA{Red, Green, Blue, Yellow, White, Purple}

// ToHex formats a color as #rrggbbaa.
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses a #rrggbb or #rrggbbaa string.
func ParseHex(s string) (color.RGBA, error) {
	var r, g, b, a uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		a = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// WithAlpha returns the color with its alpha channel replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
