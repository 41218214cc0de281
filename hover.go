package main

// HoverEntry is one hovered annotation and the overlay shapes it owns.
type HoverEntry struct {
	Ref     AnnotationRef
	outline Handle
	control Handle
}

func (e *HoverEntry) HasControl() bool {
	return e.control != ""
}

// controlBounds places the connection-start control just right of the
// annotation's top-right cell.
func controlBounds(b Rect) Rect {
	return Rect{X: b.X + b.Width, Y: b.Y, Width: 1, Height: 1}
}

// HoverRegistry is the stack of hovered annotations, most recent on top.
// Entries are keyed by annotation identity so a nested element can leave in
// any order relative to its ancestors.
type HoverRegistry struct {
	surface Surface
	entries map[string]*HoverEntry
	order   []string
}

func NewHoverRegistry(surface Surface) *HoverRegistry {
	return &HoverRegistry{
		surface: surface,
		entries: make(map[string]*HoverEntry),
		order:   make([]string, 0),
	}
}

// Enter pushes ref onto the stack and draws its outline, plus the
// connection-start control when withControl is set. It reports false when an
// equal annotation is already hovered.
func (r *HoverRegistry) Enter(ref AnnotationRef, withControl bool) bool {
	if !ref.Valid() {
		return false
	}
	k := ref.key()
	if _, ok := r.entries[k]; ok {
		return false
	}

	if top := r.Top(); top != nil {
		r.dropControl(top)
	}

	entry := &HoverEntry{Ref: ref}
	entry.outline = r.surface.Add(outlineShape(ref))
	if withControl {
		entry.control = r.surface.Add(controlShape(ref))
	}
	r.entries[k] = entry
	r.order = append(r.order, k)
	return true
}

// Leave removes the entry equal to ref wherever it sits in the stack. The
// revealed top, if any, re-renders its outline and, when withControl is set,
// its control. Unknown refs are ignored.
func (r *HoverRegistry) Leave(ref AnnotationRef, withControl bool) bool {
	if !ref.Valid() {
		return false
	}
	k := ref.key()
	entry, ok := r.entries[k]
	if !ok {
		return false
	}

	r.destroy(entry)
	delete(r.entries, k)
	for i, id := range r.order {
		if id == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	if top := r.Top(); top != nil {
		r.render(top, withControl)
	}
	return true
}

// Top returns the most recently entered live entry, or nil.
func (r *HoverRegistry) Top() *HoverEntry {
	if len(r.order) == 0 {
		return nil
	}
	return r.entries[r.order[len(r.order)-1]]
}

func (r *HoverRegistry) Len() int {
	return len(r.order)
}

func (r *HoverRegistry) Contains(ref AnnotationRef) bool {
	if !ref.Valid() {
		return false
	}
	_, ok := r.entries[ref.key()]
	return ok
}

// Refs returns the hovered annotations bottom to top.
func (r *HoverRegistry) Refs() []AnnotationRef {
	refs := make([]AnnotationRef, 0, len(r.order))
	for _, k := range r.order {
		refs = append(refs, r.entries[k].Ref)
	}
	return refs
}

// ControlAt returns the top entry if p lies on its connection-start control.
func (r *HoverRegistry) ControlAt(p Point) (*HoverEntry, bool) {
	top := r.Top()
	if top == nil || !top.HasControl() {
		return nil, false
	}
	if !controlBounds(top.Ref.Bounds()).Contains(p) {
		return nil, false
	}
	return top, true
}

// DropControl removes the top entry's control, keeping its outline.
func (r *HoverRegistry) DropControl() {
	if top := r.Top(); top != nil {
		r.dropControl(top)
	}
}

// ShowControl gives the top entry a control if it lacks one.
func (r *HoverRegistry) ShowControl() {
	if top := r.Top(); top != nil {
		r.render(top, true)
	}
}

// Redraw moves every outline and control to its element's current bounds.
func (r *HoverRegistry) Redraw() {
	for _, k := range r.order {
		entry := r.entries[k]
		r.surface.Set(entry.outline, outlineShape(entry.Ref))
		if entry.HasControl() {
			r.surface.Set(entry.control, controlShape(entry.Ref))
		}
	}
}

// Clear destroys every entry.
func (r *HoverRegistry) Clear() {
	for _, k := range r.order {
		r.destroy(r.entries[k])
	}
	r.entries = make(map[string]*HoverEntry)
	r.order = r.order[:0]
}

func (r *HoverRegistry) render(entry *HoverEntry, withControl bool) {
	if !r.surface.Set(entry.outline, outlineShape(entry.Ref)) {
		entry.outline = r.surface.Add(outlineShape(entry.Ref))
	}
	switch {
	case entry.HasControl():
		r.surface.Set(entry.control, controlShape(entry.Ref))
	case withControl:
		entry.control = r.surface.Add(controlShape(entry.Ref))
	}
}

func (r *HoverRegistry) dropControl(entry *HoverEntry) {
	if entry.HasControl() {
		r.surface.Remove(entry.control)
		entry.control = ""
	}
}

func (r *HoverRegistry) destroy(entry *HoverEntry) {
	r.surface.Remove(entry.outline)
	r.dropControl(entry)
	entry.outline = ""
}

func outlineShape(ref AnnotationRef) Shape {
	return Shape{Kind: ShapeOutline, Bounds: ref.Bounds()}
}

func controlShape(ref AnnotationRef) Shape {
	return Shape{Kind: ShapeControl, Bounds: controlBounds(ref.Bounds())}
}
