package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var errNothingToExport = errors.New("nothing to export")

// exportVisualTXT writes the visible document and overlay as plain text.
func exportVisualTXT(filename string, v *Viewer, scene *Scene) error {
	if v.width == 0 || v.height == 0 {
		return errNothingToExport
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	frame := renderFrame(v, scene, v.width, v.originY+v.height, Point{X: -1, Y: -1})
	for _, line := range frame.PlainLines()[v.originY:] {
		fmt.Fprintln(file, line)
	}
	return nil
}

// ExportPNG draws the visible document with its overlay to filename.
func ExportPNG(filename string, v *Viewer, scene *Scene, theme Theme) error {
	dc, err := renderPNG(v, scene, theme)
	if err != nil {
		return err
	}
	return dc.SavePNG(filename)
}

func renderPNG(v *Viewer, scene *Scene, theme Theme) (*gg.Context, error) {
	if v.width == 0 || v.height == 0 {
		return nil, errNothingToExport
	}

	imageWidth := int(float64(v.width) * charWidth)
	imageHeight := int(float64(v.height) * charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	originY := float64(v.originY)
	shapes := scene.Shapes()

	// Outlines go under the text.
	for _, shape := range shapes {
		if shape.Kind == ShapeOutline {
			b := shape.Bounds
			dc.SetHexColor(theme.Outline)
			dc.DrawRectangle(b.X*charWidth, (b.Y-originY)*charHeight, b.Width*charWidth, b.Height*charHeight)
			dc.Fill()
		}
	}

	for _, a := range v.doc.Annotations {
		b := v.Ref(a).Bounds()
		dc.SetHexColor(theme.Annotation)
		dc.SetLineWidth(1)
		dc.DrawRectangle(b.X*charWidth, (b.Y-originY)*charHeight, b.Width*charWidth, b.Height*charHeight)
		dc.Stroke()
	}

	dc.SetHexColor("#000000")
	lines := v.doc.Lines()
	for row := 0; row < v.height; row++ {
		docY := row + v.scrollY
		if docY >= len(lines) {
			break
		}
		text := []rune(lines[docY])
		if v.scrollX >= len(text) {
			continue
		}
		text = text[v.scrollX:]
		if len(text) > v.width {
			text = text[:v.width]
		}
		dc.DrawString(string(text), 0, float64(row+1)*charHeight-4)
	}

	for _, shape := range shapes {
		from := cellCenter(shape.From, originY)
		to := cellCenter(shape.To, originY)
		switch shape.Kind {
		case ShapeCurve:
			ctrl := cellCenter(shape.Ctrl, originY)
			dc.SetHexColor(theme.Edge)
			dc.SetLineWidth(2)
			dc.MoveTo(from.X, from.Y)
			dc.QuadraticTo(ctrl.X, ctrl.Y, to.X, to.Y)
			dc.Stroke()
			drawArrowHeadPNG(dc, ctrl, to)
		case ShapeArrow:
			if shape.Snapped {
				dc.SetHexColor(theme.Snapped)
			} else {
				dc.SetHexColor(theme.Arrow)
			}
			dc.SetLineWidth(1.5)
			dc.SetDash(4, 3)
			dc.DrawLine(from.X, from.Y, to.X, to.Y)
			dc.Stroke()
			dc.SetDash()
			drawArrowHeadPNG(dc, from, to)
		case ShapeControl:
			c := cellCenter(Point{X: shape.Bounds.X, Y: shape.Bounds.Y}, originY)
			dc.SetHexColor(theme.Control)
			dc.DrawCircle(c.X, c.Y, charWidth/2)
			dc.Fill()
		}
	}
	return dc, nil
}

func cellCenter(p Point, originY float64) Point {
	return Point{X: (p.X + 0.5) * charWidth, Y: (p.Y - originY + 0.5) * charHeight}
}

func drawArrowHeadPNG(dc *gg.Context, from, to Point) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}

	dx /= length
	dy /= length

	arrowSize := 6.0
	arrowAngle := 0.5 // radians

	baseX1 := to.X - arrowSize*dx + arrowSize*dy*arrowAngle
	baseY1 := to.Y - arrowSize*dy - arrowSize*dx*arrowAngle
	baseX2 := to.X - arrowSize*dx - arrowSize*dy*arrowAngle
	baseY2 := to.Y - arrowSize*dy + arrowSize*dx*arrowAngle

	dc.MoveTo(to.X, to.Y)
	dc.LineTo(baseX1, baseY1)
	dc.LineTo(baseX2, baseY2)
	dc.ClosePath()
	dc.Fill()
}
