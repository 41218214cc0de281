package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellStyle int

const (
	styleNone cellStyle = iota
	styleAnnotation
	styleSelection
	styleOutline
	styleEdge
	styleArrow
	styleSnapped
	styleControl
	stylePointer
)

// Canvas is a cell grid the frame is rasterised into before styling.
type Canvas struct {
	width  int
	height int
	runes  [][]rune
	styles [][]cellStyle
	clip   Rect
}

func NewCanvas(width, height int) *Canvas {
	// Ensure minimum dimensions
	width = max(width, 1)
	height = max(height, 1)

	c := &Canvas{
		width:  width,
		height: height,
		runes:  make([][]rune, height),
		styles: make([][]cellStyle, height),
		clip:   Rect{Width: float64(width), Height: float64(height)},
	}
	for i := range c.runes {
		c.runes[i] = make([]rune, width)
		c.styles[i] = make([]cellStyle, width)
		for j := range c.runes[i] {
			c.runes[i][j] = ' '
		}
	}
	return c
}

// renderFrame draws the viewer's document and every scene shape. Shapes are
// clipped to the document body.
func renderFrame(v *Viewer, scene *Scene, width, height int, pointer Point) *Canvas {
	c := NewCanvas(width, height)
	c.drawDocument(v)
	c.clip = v.Body()
	for _, shape := range scene.Shapes() {
		c.drawShape(shape)
	}
	if scene.CursorVisible() {
		c.tint(round(pointer.X), round(pointer.Y), stylePointer)
	}
	return c
}

func (c *Canvas) isValidPos(x, y int) bool {
	return c.clip.Contains(Point{X: float64(x), Y: float64(y)}) &&
		y >= 0 && y < c.height && x >= 0 && x < c.width
}

func (c *Canvas) set(x, y int, r rune, style cellStyle) {
	if !c.isValidPos(x, y) {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = style
}

func (c *Canvas) tint(x, y int, style cellStyle) {
	if !c.isValidPos(x, y) {
		return
	}
	c.styles[y][x] = style
}

func (c *Canvas) drawDocument(v *Viewer) {
	lines := v.doc.Lines()
	for row := 0; row < v.height; row++ {
		docY := row + v.scrollY
		screenY := row + v.originY
		var text []rune
		if docY < len(lines) {
			text = []rune(lines[docY])
		}
		for col := 0; col < v.width; col++ {
			docX := col + v.scrollX
			if docX < len(text) {
				c.set(col, screenY, text[docX], styleNone)
			}
			if v.selected(point{X: docX, Y: docY}) {
				c.tint(col, screenY, styleSelection)
			}
		}
	}
	for _, a := range v.doc.Annotations {
		b := v.Ref(a).Bounds()
		for y := int(b.Y); y < int(b.Y+b.Height); y++ {
			// Only the top and bottom rows are underlined so nested regions
			// stay readable.
			if y != int(b.Y) && y != int(b.Y+b.Height)-1 {
				continue
			}
			for x := int(b.X); x < int(b.X+b.Width); x++ {
				if c.isValidPos(x, y) && c.styles[y][x] == styleNone {
					c.styles[y][x] = styleAnnotation
				}
			}
		}
	}
}

func (c *Canvas) drawShape(shape Shape) {
	switch shape.Kind {
	case ShapeOutline:
		c.drawOutline(shape.Bounds)
	case ShapeControl:
		c.set(int(shape.Bounds.X), int(shape.Bounds.Y), '+', styleControl)
	case ShapeArrow:
		style := styleArrow
		if shape.Snapped {
			style = styleSnapped
		}
		mid := Point{X: (shape.From.X + shape.To.X) / 2, Y: (shape.From.Y + shape.To.Y) / 2}
		c.drawPath(Curve{From: shape.From, Ctrl: mid, To: shape.To}, style)
	case ShapeCurve:
		c.drawPath(Curve{From: shape.From, Ctrl: shape.Ctrl, To: shape.To}, styleEdge)
	}
}

func (c *Canvas) drawOutline(b Rect) {
	for y := int(b.Y); y < int(b.Y+b.Height); y++ {
		for x := int(b.X); x < int(b.X+b.Width); x++ {
			c.tint(x, y, styleOutline)
		}
	}
}

// drawPath plots the curve cell by cell and ends it with an arrowhead.
func (c *Canvas) drawPath(curve Curve, style cellStyle) {
	n := curve.steps()
	lastX, lastY := round(curve.From.X), round(curve.From.Y)
	prev := curve.From
	for i := 1; i <= n; i++ {
		p := curve.At(float64(i) / float64(n))
		x, y := round(p.X), round(p.Y)
		if x == lastX && y == lastY {
			continue
		}
		c.set(lastX, lastY, lineRune(p.X-prev.X, p.Y-prev.Y), style)
		lastX, lastY = x, y
		prev = p
	}
	head := curve.At(1)
	tail := curve.At(math.Max(0, 1-2/float64(n)))
	c.set(lastX, lastY, headRune(head.X-tail.X, head.Y-tail.Y), style)
}

func lineRune(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady*2 < adx:
		return '─'
	case adx*2 < ady:
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

func headRune(dx, dy float64) rune {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return '◀'
		}
		return '▶'
	}
	if dy < 0 {
		return '▲'
	}
	return '▼'
}

// PlainLines returns the grid without styling.
func (c *Canvas) PlainLines() []string {
	lines := make([]string, c.height)
	for i, row := range c.runes {
		lines[i] = string(row)
	}
	return lines
}

// StyledLines renders each row, styling runs of equal cell style together.
func (c *Canvas) StyledLines(styles map[cellStyle]lipgloss.Style) []string {
	lines := make([]string, c.height)
	for y := range c.runes {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			run := string(c.runes[y][start:x])
			if style, ok := styles[c.styles[y][start]]; ok {
				b.WriteString(style.Render(run))
			} else {
				b.WriteString(run)
			}
			start = x
		}
		lines[y] = b.String()
	}
	return lines
}

func newCellStyles(t Theme) map[cellStyle]lipgloss.Style {
	return map[cellStyle]lipgloss.Style{
		styleAnnotation: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(t.Annotation)),
		styleSelection:  lipgloss.NewStyle().Background(lipgloss.Color(t.Selection)),
		styleOutline:    lipgloss.NewStyle().Background(lipgloss.Color(t.Outline)),
		styleEdge:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Edge)).Bold(true),
		styleArrow:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Arrow)),
		styleSnapped:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Snapped)).Bold(true),
		styleControl:    lipgloss.NewStyle().Background(lipgloss.Color(t.Control)).Foreground(lipgloss.Color("#000000")).Bold(true),
		stylePointer:    lipgloss.NewStyle().Reverse(true),
	}
}
