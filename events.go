package main

// Event is an input the InteractionController reacts to.
type Event interface {
	event()
}

// HoverEnter reports the pointer entering an annotation element.
type HoverEnter struct {
	Ref AnnotationRef
}

// HoverLeave reports the pointer leaving an annotation element.
type HoverLeave struct {
	Ref AnnotationRef
}

// PointerDown is a primary-button press at screen cell X, Y.
type PointerDown struct {
	X, Y int
}

// PointerMove is pointer motion to screen cell X, Y.
type PointerMove struct {
	X, Y int
}

// Cancel is the cancel key.
type Cancel struct{}

// GeometryChanged reports a scroll or resize of the host document.
type GeometryChanged struct{}

// selectionRestoreMsg is delivered once the trailing-click grace delay ends.
type selectionRestoreMsg struct{}

func (HoverEnter) event()          {}
func (HoverLeave) event()          {}
func (PointerDown) event()         {}
func (PointerMove) event()         {}
func (Cancel) event()              {}
func (GeometryChanged) event()     {}
func (selectionRestoreMsg) event() {}

// ConnectionCreated is emitted once per completed connection.
type ConnectionCreated struct {
	From Annotation
	To   Annotation
}

type connectionHandler struct {
	id uint32
	fn func(ConnectionCreated)
}

type handlerRegistry struct {
	created []connectionHandler
	nextID  uint32
}

// Subscription detaches a callback registered on the controller.
type Subscription struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters the callback. Removing twice is harmless.
func (s Subscription) Remove() {
	if s.reg == nil {
		return
	}
	s.reg.created = removeConnectionHandler(s.reg.created, s.id)
}

func (r *handlerRegistry) add(fn func(ConnectionCreated)) Subscription {
	r.nextID++
	r.created = append(r.created, connectionHandler{id: r.nextID, fn: fn})
	return Subscription{id: r.nextID, reg: r}
}

func (r *handlerRegistry) emit(ev ConnectionCreated) {
	// Copy so a handler may remove itself.
	handlers := append([]connectionHandler(nil), r.created...)
	for _, h := range handlers {
		h.fn(ev)
	}
}

func (r *handlerRegistry) clear() {
	r.created = nil
}

func removeConnectionHandler(s []connectionHandler, id uint32) []connectionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = connectionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
