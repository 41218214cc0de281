package main

// testAnnotation is a bare Annotation keyed by id.
type testAnnotation struct {
	id string
}

func (a testAnnotation) ID() string {
	return a.id
}

func (a testAnnotation) IsEqual(other Annotation) bool {
	return other != nil && other.ID() == a.id
}

// testElement has bounds a test can move to simulate scrolling.
type testElement struct {
	rect Rect
}

func (e *testElement) Bounds() Rect {
	return e.rect
}

func newRef(id string, x, y, w, h float64) (AnnotationRef, *testElement) {
	el := &testElement{rect: Rect{X: x, Y: y, Width: w, Height: h}}
	return AnnotationRef{Annotation: testAnnotation{id: id}, Element: el}, el
}

type testToggler struct {
	enabled bool
	calls   []bool
}

func (t *testToggler) SetSelectionEnabled(enabled bool) {
	t.enabled = enabled
	t.calls = append(t.calls, enabled)
}

func countKind(s *Scene, kind ShapeKind) int {
	n := 0
	for _, shape := range s.Shapes() {
		if shape.Kind == kind {
			n++
		}
	}
	return n
}

func testConfig() *Config {
	return defaultConfig()
}
