package main

// NetworkEdge is one completed connection.
type NetworkEdge struct {
	From AnnotationRef
	To   AnnotationRef
}

type edgeRecord struct {
	edge   NetworkEdge
	handle Handle
	curve  Curve
}

// NetworkGraph holds the completed connections and their curves. It is
// append-only.
type NetworkGraph struct {
	surface Surface
	edges   []*edgeRecord
}

func NewNetworkGraph(surface Surface) *NetworkGraph {
	return &NetworkGraph{
		surface: surface,
		edges:   make([]*edgeRecord, 0),
	}
}

// AddEdge stores edge and draws its curve.
func (g *NetworkGraph) AddEdge(edge NetworkEdge) {
	rec := &edgeRecord{edge: edge}
	rec.curve = curveBetween(edge.From.Bounds(), edge.To.Bounds())
	rec.handle = g.surface.Add(curveShape(rec.curve))
	g.edges = append(g.edges, rec)
}

// RedrawAll recomputes every curve from current element geometry.
func (g *NetworkGraph) RedrawAll() {
	for _, rec := range g.edges {
		rec.curve = curveBetween(rec.edge.From.Bounds(), rec.edge.To.Bounds())
		g.surface.Set(rec.handle, curveShape(rec.curve))
	}
}

func (g *NetworkGraph) Len() int {
	return len(g.edges)
}

func (g *NetworkGraph) Edges() []NetworkEdge {
	edges := make([]NetworkEdge, len(g.edges))
	for i, rec := range g.edges {
		edges[i] = rec.edge
	}
	return edges
}

// Curve returns the rendered curve of the i-th edge.
func (g *NetworkGraph) Curve(i int) (Curve, bool) {
	if i < 0 || i >= len(g.edges) {
		return Curve{}, false
	}
	return g.edges[i].curve, true
}

func (g *NetworkGraph) Curves() []Curve {
	curves := make([]Curve, len(g.edges))
	for i, rec := range g.edges {
		curves[i] = rec.curve
	}
	return curves
}

// Nodes returns every annotation touched by an edge, in first-seen order.
func (g *NetworkGraph) Nodes() []AnnotationRef {
	seen := make(map[string]bool)
	nodes := make([]AnnotationRef, 0)
	for _, rec := range g.edges {
		for _, ref := range []AnnotationRef{rec.edge.From, rec.edge.To} {
			if seen[ref.key()] {
				continue
			}
			seen[ref.key()] = true
			nodes = append(nodes, ref)
		}
	}
	return nodes
}

func curveShape(c Curve) Shape {
	return Shape{Kind: ShapeCurve, From: c.From, Ctrl: c.Ctrl, To: c.To}
}
