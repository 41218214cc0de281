package main

import "github.com/google/uuid"

// Handle identifies one shape on a Surface.
type Handle string

type ShapeKind int

const (
	ShapeCurve ShapeKind = iota
	ShapeOutline
	ShapeArrow
	ShapeControl
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCurve:
		return "curve"
	case ShapeOutline:
		return "outline"
	case ShapeArrow:
		return "arrow"
	case ShapeControl:
		return "control"
	default:
		return "unknown"
	}
}

// Shape is the attribute set of one overlay graphic. Outlines and controls
// use Bounds; arrows use From/To; curves use From/Ctrl/To.
type Shape struct {
	Kind    ShapeKind
	Bounds  Rect
	From    Point
	Ctrl    Point
	To      Point
	Snapped bool
}

// Surface is the vector overlay drawn above the document.
type Surface interface {
	Add(shape Shape) Handle
	Set(h Handle, shape Shape) bool
	Remove(h Handle) bool
	SetCursorVisible(visible bool)
}

// Scene is the retained Surface rasterised by the terminal view and the PNG
// exporter.
type Scene struct {
	shapes        map[Handle]Shape
	order         []Handle
	cursorVisible bool
}

func NewScene() *Scene {
	return &Scene{
		shapes:        make(map[Handle]Shape),
		order:         make([]Handle, 0),
		cursorVisible: true,
	}
}

func (s *Scene) Add(shape Shape) Handle {
	h := Handle(uuid.New().String())
	s.shapes[h] = shape
	s.order = append(s.order, h)
	return h
}

func (s *Scene) Set(h Handle, shape Shape) bool {
	if _, ok := s.shapes[h]; !ok {
		return false
	}
	s.shapes[h] = shape
	return true
}

func (s *Scene) Remove(h Handle) bool {
	if _, ok := s.shapes[h]; !ok {
		return false
	}
	delete(s.shapes, h)
	for i, id := range s.order {
		if id == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Scene) SetCursorVisible(visible bool) {
	s.cursorVisible = visible
}

func (s *Scene) CursorVisible() bool {
	return s.cursorVisible
}

func (s *Scene) Get(h Handle) (Shape, bool) {
	shape, ok := s.shapes[h]
	return shape, ok
}

func (s *Scene) Len() int {
	return len(s.order)
}

// Shapes returns every shape ordered by layer (curves at the bottom,
// controls on top), insertion order within a layer.
func (s *Scene) Shapes() []Shape {
	shapes := make([]Shape, 0, len(s.order))
	for kind := ShapeCurve; kind <= ShapeControl; kind++ {
		for _, h := range s.order {
			if shape := s.shapes[h]; shape.Kind == kind {
				shapes = append(shapes, shape)
			}
		}
	}
	return shapes
}
