package main

// Annotation is a host annotation value. ID must be stable and agree with
// IsEqual: two annotations are equal exactly when their IDs match.
type Annotation interface {
	ID() string
	IsEqual(other Annotation) bool
}

// Element is the on-screen region currently displaying an annotation.
// Bounds reflects the current scroll position on every call.
type Element interface {
	Bounds() Rect
}

// AnnotationRef pairs an annotation with the element showing it. Two refs are
// equal when their annotations are, whatever element they were captured from.
type AnnotationRef struct {
	Annotation Annotation
	Element    Element
}

func (r AnnotationRef) Valid() bool {
	return r.Annotation != nil
}

func (r AnnotationRef) Equal(other AnnotationRef) bool {
	if r.Annotation == nil || other.Annotation == nil {
		return false
	}
	return r.Annotation.IsEqual(other.Annotation)
}

func (r AnnotationRef) Bounds() Rect {
	if r.Element == nil {
		return Rect{}
	}
	return r.Element.Bounds()
}

func (r AnnotationRef) key() string {
	return r.Annotation.ID()
}
