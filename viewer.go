package main

import (
	"sort"
	"strings"
)

// Viewer shows a Document in a scrollable viewport and is the host annotation
// instance: it owns text selection and reports which annotations lie under
// the pointer.
type Viewer struct {
	doc     *Document
	originY int
	width   int
	height  int
	scrollX int
	scrollY int

	selectionEnabled bool
	pressed          bool
	dragged          bool
	hasSelection     bool
	selStart         point
	selEnd           point

	hovered []*DocAnnotation
}

// NewViewer places document row 0 at screen row originY.
func NewViewer(doc *Document, originY int) *Viewer {
	return &Viewer{
		doc:              doc,
		originY:          originY,
		selectionEnabled: true,
		hovered:          make([]*DocAnnotation, 0),
	}
}

// annotationElement is the live on-screen box of an annotation.
type annotationElement struct {
	viewer     *Viewer
	annotation *DocAnnotation
}

func (e annotationElement) Bounds() Rect {
	r := e.annotation.Region()
	r.X -= float64(e.viewer.scrollX)
	r.Y += float64(e.viewer.originY - e.viewer.scrollY)
	return r
}

func (v *Viewer) Document() *Document {
	return v.doc
}

func (v *Viewer) Ref(a *DocAnnotation) AnnotationRef {
	return AnnotationRef{Annotation: a, Element: annotationElement{viewer: v, annotation: a}}
}

func (v *Viewer) Resize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
	v.clampScroll()
}

func (v *Viewer) Scroll() (int, int) {
	return v.scrollX, v.scrollY
}

// ScrollBy moves the viewport and reports whether it moved.
func (v *Viewer) ScrollBy(dx, dy int) bool {
	oldX, oldY := v.scrollX, v.scrollY
	v.scrollX += dx
	v.scrollY += dy
	v.clampScroll()
	return v.scrollX != oldX || v.scrollY != oldY
}

func (v *Viewer) clampScroll() {
	docWidth, docHeight := v.doc.Size()
	maxX := max(docWidth-v.width, 0)
	maxY := max(docHeight-v.height, 0)
	v.scrollX = min(max(v.scrollX, 0), maxX)
	v.scrollY = min(max(v.scrollY, 0), maxY)
}

// Body is the screen rectangle the document occupies.
func (v *Viewer) Body() Rect {
	return Rect{X: 0, Y: float64(v.originY), Width: float64(v.width), Height: float64(v.height)}
}

func (v *Viewer) toDocument(x, y int) point {
	return point{X: x + v.scrollX, Y: y - v.originY + v.scrollY}
}

// HitTest returns the annotations under screen cell x, y, outermost first.
func (v *Viewer) HitTest(x, y int) []*DocAnnotation {
	p := Point{X: float64(x), Y: float64(y)}
	if !v.Body().Contains(p) {
		return nil
	}
	hits := make([]*DocAnnotation, 0)
	for _, a := range v.doc.Annotations {
		if v.Ref(a).Bounds().Contains(p) {
			hits = append(hits, a)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Region().Area() > hits[j].Region().Area()
	})
	return hits
}

// Hovered returns the annotations the pointer was last inside, outermost
// first.
func (v *Viewer) Hovered() []*DocAnnotation {
	return v.hovered
}

// Track updates the hovered set for the pointer at x, y and returns the
// resulting leave events (innermost first) followed by enter events
// (outermost first). A cell covered by an annotation's connection-start
// control counts as inside that annotation.
func (v *Viewer) Track(x, y int, controlAt func(x, y int) (AnnotationRef, bool)) []Event {
	hits := v.HitTest(x, y)
	if controlAt != nil {
		if ref, ok := controlAt(x, y); ok {
			if a, ok := ref.Annotation.(*DocAnnotation); ok && !containsAnnotation(hits, a) {
				hits = append(hits, a)
			}
		}
	}

	events := make([]Event, 0)
	for i := len(v.hovered) - 1; i >= 0; i-- {
		if a := v.hovered[i]; !containsAnnotation(hits, a) {
			events = append(events, HoverLeave{Ref: v.Ref(a)})
		}
	}
	for _, a := range hits {
		if !containsAnnotation(v.hovered, a) {
			events = append(events, HoverEnter{Ref: v.Ref(a)})
		}
	}
	v.hovered = hits
	return events
}

func containsAnnotation(list []*DocAnnotation, a *DocAnnotation) bool {
	for _, item := range list {
		if item.IsEqual(a) {
			return true
		}
	}
	return false
}

// SetSelectionEnabled toggles native text selection. Disabling it drops any
// press in progress but keeps an existing selection.
func (v *Viewer) SetSelectionEnabled(enabled bool) {
	v.selectionEnabled = enabled
	if !enabled {
		v.pressed = false
		v.dragged = false
	}
}

func (v *Viewer) SelectionEnabled() bool {
	return v.selectionEnabled
}

// Press starts a text selection at screen cell x, y.
func (v *Viewer) Press(x, y int) {
	if !v.selectionEnabled || !v.Body().Contains(Point{X: float64(x), Y: float64(y)}) {
		return
	}
	v.pressed = true
	v.dragged = false
	v.selStart = v.toDocument(x, y)
	v.selEnd = v.selStart
}

// Drag extends the selection while the button is held.
func (v *Viewer) Drag(x, y int) {
	if !v.selectionEnabled || !v.pressed {
		return
	}
	end := v.toDocument(x, y)
	if end != v.selStart {
		v.dragged = true
		v.hasSelection = true
	}
	v.selEnd = end
}

// Release ends the gesture. A click without a drag clears the selection.
func (v *Viewer) Release(x, y int) {
	if !v.selectionEnabled || !v.pressed {
		v.pressed = false
		return
	}
	v.Drag(x, y)
	v.pressed = false
	if !v.dragged {
		v.hasSelection = false
	}
}

func (v *Viewer) HasSelection() bool {
	return v.hasSelection
}

func (v *Viewer) ClearSelection() {
	v.hasSelection = false
}

func (v *Viewer) selectionBounds() (point, point) {
	start, end := v.selStart, v.selEnd
	if end.Y < start.Y || (end.Y == start.Y && end.X < start.X) {
		start, end = end, start
	}
	return start, end
}

// selected reports whether document cell p is inside the stream selection.
func (v *Viewer) selected(p point) bool {
	if !v.hasSelection {
		return false
	}
	start, end := v.selectionBounds()
	if p.Y < start.Y || p.Y > end.Y {
		return false
	}
	if p.Y == start.Y && p.X < start.X {
		return false
	}
	if p.Y == end.Y && p.X > end.X {
		return false
	}
	return true
}

// SelectedText returns the selected document text, lines joined by newlines.
func (v *Viewer) SelectedText() string {
	if !v.hasSelection {
		return ""
	}
	start, end := v.selectionBounds()
	lines := v.doc.Lines()
	var b strings.Builder
	for y := start.Y; y <= end.Y && y < len(lines); y++ {
		if y < 0 {
			continue
		}
		line := []rune(lines[y])
		from, to := 0, len(line)
		if y == start.Y {
			from = min(start.X, len(line))
		}
		if y == end.Y {
			to = min(end.X+1, len(line))
		}
		if y > start.Y {
			b.WriteByte('\n')
		}
		if from < to {
			b.WriteString(string(line[from:to]))
		}
	}
	return b.String()
}
