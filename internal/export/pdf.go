// Package export renders the finalized scene to PDF.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"openpen/internal/annotation"
	"openpen/pkg/geometry"
)

// Page layout in millimetres (A4 landscape).
const (
	pageWidth  = 297.0
	pageHeight = 210.0
	pageMargin = 10.0
)

// WritePDF renders the objects, in z-order, to w as a single-page PDF.
func WritePDF(w io.Writer, objects []annotation.Object) error {
	pdf, err := render(objects)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// ToPDF renders the objects to a PDF file at path.
func ToPDF(path string, objects []annotation.Object) error {
	pdf, err := render(objects)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// render draws the objects onto a single A4 landscape page. Overlay
// coordinates are scaled uniformly so the scene bounds fit the margins.
func render(objects []annotation.Object) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	project := projector(objects)

	for _, obj := range objects {
		style := obj.ObjectStyle()
		pdf.SetDrawColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))
		pdf.SetLineWidth(mmLineWidth(style.Thickness))

		switch o := obj.(type) {
		case *annotation.Stroke:
			drawPolyline(pdf, project, o.Points(), false)
		case *annotation.Polygon:
			drawPolyline(pdf, project, o.Points(), o.Closed())
		case *annotation.TextBox:
			pdf.SetTextColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))
			p := project(o.Anchor())
			// The overlay anchors text at the top-left; PDF text sits on
			// the baseline, so step down by roughly one line height.
			pdf.Text(p.X, p.Y+4, o.Text())
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("render pdf: %s", pdf.Error())
	}
	return pdf, nil
}

// projector returns a function mapping overlay coordinates onto the page.
func projector(objects []annotation.Object) func(geometry.Point2D) geometry.Point2D {
	if len(objects) == 0 {
		return func(p geometry.Point2D) geometry.Point2D { return p }
	}

	bounds := objects[0].Bounds()
	for _, obj := range objects[1:] {
		bounds = bounds.Union(obj.Bounds())
	}

	usableW := pageWidth - 2*pageMargin
	usableH := pageHeight - 2*pageMargin
	scale := 1.0
	if bounds.Width > 0 && usableW/bounds.Width < scale {
		scale = usableW / bounds.Width
	}
	if bounds.Height > 0 && usableH/bounds.Height < scale {
		scale = usableH / bounds.Height
	}

	return func(p geometry.Point2D) geometry.Point2D {
		return geometry.Point2D{
			X: pageMargin + (p.X-bounds.X)*scale,
			Y: pageMargin + (p.Y-bounds.Y)*scale,
		}
	}
}

func drawPolyline(pdf *gofpdf.Fpdf, project func(geometry.Point2D) geometry.Point2D,
	points []geometry.Point2D, closed bool) {
	if len(points) < 2 {
		return
	}
	for i := 0; i < len(points)-1; i++ {
		a, b := project(points[i]), project(points[i+1])
		pdf.Line(a.X, a.Y, b.X, b.Y)
	}
	if closed {
		a, b := project(points[len(points)-1]), project(points[0])
		pdf.Line(a.X, a.Y, b.X, b.Y)
	}
}

// mmLineWidth converts an overlay pixel thickness to a page line width.
func mmLineWidth(thickness float64) float64 {
	w := thickness * 0.25
	if w < 0.2 {
		w = 0.2
	}
	return w
}
