package main

import (
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type State int

const (
	StateIdle State = iota
	StateHovering
	StateDrawing
	StateSnapReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateHovering:
		return "HOVER"
	case StateDrawing:
		return "DRAWING"
	case StateSnapReady:
		return "SNAP"
	default:
		return "UNKNOWN"
	}
}

// SelectionToggler is a host annotation instance whose native selection is
// suspended while a connection is drawn.
type SelectionToggler interface {
	SetSelectionEnabled(enabled bool)
}

// Controller drives hover, arrow and network state from input events. It
// runs entirely on the bubbletea update goroutine.
type Controller struct {
	surface        Surface
	hover          *HoverRegistry
	arrow          *ConnectionArrow
	network        *NetworkGraph
	instances      []SelectionToggler
	handlers       handlerRegistry
	grace          time.Duration
	allowSelfLoops bool
	disposed       bool
}

func NewController(surface Surface, config *Config, instances ...SelectionToggler) *Controller {
	return &Controller{
		surface:        surface,
		hover:          NewHoverRegistry(surface),
		network:        NewNetworkGraph(surface),
		instances:      instances,
		grace:          config.SelectionGrace(),
		allowSelfLoops: config.AllowSelfLoops,
	}
}

func (c *Controller) Hover() *HoverRegistry {
	return c.hover
}

func (c *Controller) Network() *NetworkGraph {
	return c.network
}

// Arrow returns the active arrow, or nil.
func (c *Controller) Arrow() *ConnectionArrow {
	return c.arrow
}

func (c *Controller) State() State {
	switch {
	case c.arrow != nil && c.arrow.IsSnapped():
		return StateSnapReady
	case c.arrow != nil:
		return StateDrawing
	case c.hover.Len() > 0:
		return StateHovering
	default:
		return StateIdle
	}
}

// OnConnectionCreated registers fn to run after every completed connection.
func (c *Controller) OnConnectionCreated(fn func(ConnectionCreated)) Subscription {
	return c.handlers.add(fn)
}

// ControlAt reports the annotation whose connection-start control covers the
// cell at x, y.
func (c *Controller) ControlAt(x, y int) (AnnotationRef, bool) {
	entry, ok := c.hover.ControlAt(Point{X: float64(x), Y: float64(y)})
	if !ok {
		return AnnotationRef{}, false
	}
	return entry.Ref, true
}

// Handle applies one event. The returned command, if any, schedules the
// selection re-enable after the grace delay.
func (c *Controller) Handle(ev Event) tea.Cmd {
	if c.disposed {
		return nil
	}
	switch ev := ev.(type) {
	case HoverEnter:
		c.onEnter(ev.Ref)
	case HoverLeave:
		c.onLeave(ev.Ref)
	case PointerDown:
		return c.onPointerDown(Point{X: float64(ev.X), Y: float64(ev.Y)})
	case PointerMove:
		c.onPointerMove(Point{X: float64(ev.X), Y: float64(ev.Y)})
	case Cancel:
		return c.onCancel()
	case GeometryChanged:
		c.redraw()
	case selectionRestoreMsg:
		c.onSelectionRestore()
	}
	return nil
}

// StartConnection anchors a new arrow at anchor. Only one arrow may exist.
func (c *Controller) StartConnection(anchor AnnotationRef, pointer Point) error {
	if c.arrow != nil {
		return ErrAlreadyActive
	}
	c.hover.DropControl()
	c.arrow = StartArrow(c.surface, anchor, pointer, c.allowSelfLoops)
	c.setSelectionEnabled(false)
	log.Printf("connection started at %s", anchor.Annotation.ID())
	return nil
}

// Dispose tears down every overlay shape and subscription and restores
// selection. The controller ignores all input afterwards.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	if c.arrow != nil {
		c.arrow.Destroy()
		c.arrow = nil
	}
	c.hover.Clear()
	c.setSelectionEnabled(true)
	c.handlers.clear()
	c.disposed = true
}

func (c *Controller) onEnter(ref AnnotationRef) {
	if c.arrow == nil {
		c.hover.Enter(ref, true)
		return
	}
	if !c.hover.Enter(ref, false) {
		return
	}
	if err := c.arrow.SnapTo(ref); err != nil {
		log.Printf("snap to %s rejected: %v", ref.Annotation.ID(), err)
	}
}

// onLeave drops ref from the hover stack. While drawing, an unsnapped arrow
// snaps to the revealed top, which the pointer is still inside.
func (c *Controller) onLeave(ref AnnotationRef) {
	c.hover.Leave(ref, c.arrow == nil)
	if c.arrow == nil {
		return
	}
	if target, ok := c.arrow.Target(); ok && target.Equal(ref) {
		c.arrow.Unsnap()
	}
	top := c.hover.Top()
	if top == nil || c.arrow.IsSnapped() {
		return
	}
	err := c.arrow.SnapTo(top.Ref)
	if err != nil && !errors.Is(err, ErrSelfConnection) {
		log.Printf("snap to %s rejected: %v", top.Ref.Annotation.ID(), err)
	}
}

func (c *Controller) onPointerDown(p Point) tea.Cmd {
	if c.arrow == nil {
		top := c.hover.Top()
		if top == nil {
			return nil
		}
		if err := c.StartConnection(top.Ref, p); err != nil {
			log.Printf("start connection: %v", err)
		}
		return nil
	}
	if !c.arrow.IsSnapped() {
		return nil
	}
	return c.complete()
}

func (c *Controller) onPointerMove(p Point) {
	if c.arrow != nil && !c.arrow.IsSnapped() {
		c.arrow.DragTo(p)
	}
}

func (c *Controller) complete() tea.Cmd {
	edge, err := c.arrow.ToEdge()
	if err != nil {
		log.Printf("complete connection: %v", err)
		return nil
	}
	c.network.AddEdge(edge)
	c.finishArrow()
	log.Printf("connection created %s -> %s", edge.From.Annotation.ID(), edge.To.Annotation.ID())
	c.handlers.emit(ConnectionCreated{From: edge.From.Annotation, To: edge.To.Annotation})
	return c.scheduleSelectionRestore()
}

func (c *Controller) onCancel() tea.Cmd {
	if c.arrow == nil {
		return nil
	}
	c.finishArrow()
	log.Printf("connection cancelled")
	return c.scheduleSelectionRestore()
}

func (c *Controller) finishArrow() {
	c.arrow.Destroy()
	c.arrow = nil
	c.hover.ShowControl()
}

func (c *Controller) redraw() {
	c.network.RedrawAll()
	c.hover.Redraw()
	if c.arrow != nil {
		c.arrow.Redraw()
	}
}

// scheduleSelectionRestore arms the grace timer. Once armed it always fires.
func (c *Controller) scheduleSelectionRestore() tea.Cmd {
	return tea.Tick(c.grace, func(time.Time) tea.Msg {
		return selectionRestoreMsg{}
	})
}

// onSelectionRestore re-enables selection unless a newer arrow is active;
// that arrow arms its own timer when it ends.
func (c *Controller) onSelectionRestore() {
	if c.arrow != nil {
		return
	}
	c.setSelectionEnabled(true)
}

func (c *Controller) setSelectionEnabled(enabled bool) {
	for _, inst := range c.instances {
		inst.SetSelectionEnabled(enabled)
	}
}
