package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkAddEdge(t *testing.T) {
	scene := NewScene()
	g := NewNetworkGraph(scene)
	a, _ := newRef("a", 0, 0, 4, 1)
	b, _ := newRef("b", 20, 0, 4, 1)

	g.AddEdge(NetworkEdge{From: a, To: b})

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 1, countKind(scene, ShapeCurve))
	curves := g.Curves()
	require.Len(t, curves, 1)
	assert.Equal(t, Point{X: 3, Y: 0}, curves[0].From)
	assert.Equal(t, Point{X: 20, Y: 0}, curves[0].To)

	c, ok := g.Curve(0)
	require.True(t, ok)
	assert.Equal(t, curves[0], c)
	_, ok = g.Curve(1)
	assert.False(t, ok)
}

func TestNetworkAllowsDuplicateEdges(t *testing.T) {
	g := NewNetworkGraph(NewScene())
	a, _ := newRef("a", 0, 0, 4, 1)
	b, _ := newRef("b", 20, 0, 4, 1)

	g.AddEdge(NetworkEdge{From: a, To: b})
	g.AddEdge(NetworkEdge{From: a, To: b})
	g.AddEdge(NetworkEdge{From: b, To: a})

	assert.Equal(t, 3, g.Len())
	nodes := g.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "a", nodes[0].Annotation.ID())
	assert.Equal(t, "b", nodes[1].Annotation.ID())
}

func TestNetworkRedrawAll(t *testing.T) {
	scene := NewScene()
	g := NewNetworkGraph(scene)
	a, aEl := newRef("a", 0, 0, 4, 1)
	b, bEl := newRef("b", 20, 0, 4, 1)
	g.AddEdge(NetworkEdge{From: a, To: b})

	aEl.rect.Y = 3
	bEl.rect.Y = 3
	g.RedrawAll()
	first := g.Curves()[0]
	assert.Equal(t, 3.0, first.From.Y)
	assert.Equal(t, 3.0, first.To.Y)

	g.RedrawAll()
	assert.Equal(t, first, g.Curves()[0])
	assert.Equal(t, 1, scene.Len())

	shape := scene.Shapes()[0]
	assert.Equal(t, first.Ctrl, shape.Ctrl)
}

func TestNetworkEdgesCopy(t *testing.T) {
	g := NewNetworkGraph(NewScene())
	a, _ := newRef("a", 0, 0, 4, 1)
	b, _ := newRef("b", 20, 0, 4, 1)
	g.AddEdge(NetworkEdge{From: a, To: b})

	edges := g.Edges()
	edges[0] = NetworkEdge{}
	assert.True(t, g.Edges()[0].From.Equal(a))
}
