package main

import "errors"

var (
	ErrAlreadyActive  = errors.New("a connection is already being drawn")
	ErrNotSnapped     = errors.New("connection has no target")
	ErrSelfConnection = errors.New("connection cannot end on its own source")
	ErrArrowDestroyed = errors.New("connection arrow was destroyed")
)

// ConnectionArrow is the in-flight connection. While dragging its tip follows
// the pointer; once snapped the tip is pinned to the target's geometry.
type ConnectionArrow struct {
	surface        Surface
	anchor         AnnotationRef
	pointer        Point
	target         *AnnotationRef
	handle         Handle
	allowSelfLoops bool
	destroyed      bool
}

// StartArrow draws a new arrow from anchor to pointer and hides the surface
// cursor until the arrow is destroyed.
func StartArrow(surface Surface, anchor AnnotationRef, pointer Point, allowSelfLoops bool) *ConnectionArrow {
	a := &ConnectionArrow{
		surface:        surface,
		anchor:         anchor,
		pointer:        pointer,
		allowSelfLoops: allowSelfLoops,
	}
	surface.SetCursorVisible(false)
	a.handle = surface.Add(a.shape())
	return a
}

func (a *ConnectionArrow) Anchor() AnnotationRef {
	return a.anchor
}

func (a *ConnectionArrow) Pointer() Point {
	return a.pointer
}

func (a *ConnectionArrow) Target() (AnnotationRef, bool) {
	if a.target == nil {
		return AnnotationRef{}, false
	}
	return *a.target, true
}

// DragTo moves the free tip. It does nothing once snapped.
func (a *ConnectionArrow) DragTo(p Point) {
	if a.destroyed || a.target != nil {
		return
	}
	a.pointer = p
	a.render()
}

// SnapTo pins the tip to target. Snapping again retargets the arrow.
func (a *ConnectionArrow) SnapTo(target AnnotationRef) error {
	if a.destroyed {
		return ErrArrowDestroyed
	}
	if !a.allowSelfLoops && target.Equal(a.anchor) {
		return ErrSelfConnection
	}
	a.target = &target
	a.render()
	return nil
}

// Unsnap returns the arrow to following the pointer.
func (a *ConnectionArrow) Unsnap() {
	if a.destroyed || a.target == nil {
		return
	}
	a.target = nil
	a.render()
}

func (a *ConnectionArrow) IsSnapped() bool {
	return !a.destroyed && a.target != nil
}

func (a *ConnectionArrow) ToEdge() (NetworkEdge, error) {
	if a.destroyed {
		return NetworkEdge{}, ErrArrowDestroyed
	}
	if a.target == nil {
		return NetworkEdge{}, ErrNotSnapped
	}
	return NetworkEdge{From: a.anchor, To: *a.target}, nil
}

// Redraw recomputes both ends from current element geometry.
func (a *ConnectionArrow) Redraw() {
	if a.destroyed {
		return
	}
	a.render()
}

// Destroy removes the arrow and restores the cursor. The arrow is unusable
// afterwards.
func (a *ConnectionArrow) Destroy() {
	if a.destroyed {
		return
	}
	a.surface.Remove(a.handle)
	a.surface.SetCursorVisible(true)
	a.destroyed = true
}

func (a *ConnectionArrow) Destroyed() bool {
	return a.destroyed
}

// Tip is the arrowhead position.
func (a *ConnectionArrow) Tip() Point {
	if a.target != nil {
		return nearestEdgePoint(a.target.Bounds(), a.anchor.Bounds().Center())
	}
	return a.pointer
}

// Tail is the anchor border point facing the tip.
func (a *ConnectionArrow) Tail() Point {
	return nearestEdgePoint(a.anchor.Bounds(), a.Tip())
}

func (a *ConnectionArrow) shape() Shape {
	return Shape{
		Kind:    ShapeArrow,
		From:    a.Tail(),
		To:      a.Tip(),
		Snapped: a.target != nil,
	}
}

func (a *ConnectionArrow) render() {
	a.surface.Set(a.handle, a.shape())
}
