package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartArrowHidesCursor(t *testing.T) {
	scene := NewScene()
	anchor, _ := newRef("a", 0, 0, 4, 2)

	arrow := StartArrow(scene, anchor, Point{X: 10, Y: 1}, false)

	assert.False(t, scene.CursorVisible())
	assert.Equal(t, 1, countKind(scene, ShapeArrow))
	assert.False(t, arrow.IsSnapped())
	assert.True(t, arrow.Anchor().Equal(anchor))
	assert.Equal(t, Point{X: 10, Y: 1}, arrow.Tip())
	assert.Equal(t, Point{X: 3, Y: 1}, arrow.Tail())
}

func TestArrowDragAndSnap(t *testing.T) {
	scene := NewScene()
	anchor, _ := newRef("a", 0, 0, 4, 2)
	target, _ := newRef("b", 20, 0, 4, 2)
	arrow := StartArrow(scene, anchor, Point{X: 5, Y: 0}, false)

	arrow.DragTo(Point{X: 8, Y: 1})
	assert.Equal(t, Point{X: 8, Y: 1}, arrow.Pointer())

	require.NoError(t, arrow.SnapTo(target))
	assert.True(t, arrow.IsSnapped())
	assert.Equal(t, Point{X: 20, Y: 1}, arrow.Tip())

	// Dragging a snapped arrow leaves the tip pinned.
	arrow.DragTo(Point{X: 50, Y: 50})
	assert.Equal(t, Point{X: 20, Y: 1}, arrow.Tip())

	shapes := scene.Shapes()
	require.Len(t, shapes, 1)
	assert.True(t, shapes[0].Snapped)

	arrow.Unsnap()
	assert.False(t, arrow.IsSnapped())
	assert.Equal(t, Point{X: 8, Y: 1}, arrow.Tip())
}

func TestArrowRejectsSelfConnection(t *testing.T) {
	scene := NewScene()
	anchor, _ := newRef("a", 0, 0, 4, 2)
	arrow := StartArrow(scene, anchor, Point{}, false)

	assert.ErrorIs(t, arrow.SnapTo(anchor), ErrSelfConnection)
	assert.False(t, arrow.IsSnapped())

	loops := StartArrow(scene, anchor, Point{}, true)
	assert.NoError(t, loops.SnapTo(anchor))
	assert.True(t, loops.IsSnapped())
}

func TestArrowToEdge(t *testing.T) {
	scene := NewScene()
	anchor, _ := newRef("a", 0, 0, 4, 2)
	target, _ := newRef("b", 20, 0, 4, 2)
	arrow := StartArrow(scene, anchor, Point{}, false)

	_, err := arrow.ToEdge()
	assert.ErrorIs(t, err, ErrNotSnapped)

	require.NoError(t, arrow.SnapTo(target))
	edge, err := arrow.ToEdge()
	require.NoError(t, err)
	assert.True(t, edge.From.Equal(anchor))
	assert.True(t, edge.To.Equal(target))
}

func TestArrowDestroy(t *testing.T) {
	scene := NewScene()
	anchor, _ := newRef("a", 0, 0, 4, 2)
	target, _ := newRef("b", 20, 0, 4, 2)
	arrow := StartArrow(scene, anchor, Point{}, false)
	require.NoError(t, arrow.SnapTo(target))

	arrow.Destroy()
	arrow.Destroy()

	assert.True(t, arrow.Destroyed())
	assert.True(t, scene.CursorVisible())
	assert.Equal(t, 0, scene.Len())
	assert.False(t, arrow.IsSnapped())
	assert.ErrorIs(t, arrow.SnapTo(target), ErrArrowDestroyed)
	_, err := arrow.ToEdge()
	assert.ErrorIs(t, err, ErrArrowDestroyed)
}

func TestArrowRedrawFollowsGeometry(t *testing.T) {
	scene := NewScene()
	anchor, anchorEl := newRef("a", 0, 0, 4, 2)
	target, targetEl := newRef("b", 20, 0, 4, 2)
	arrow := StartArrow(scene, anchor, Point{}, false)
	require.NoError(t, arrow.SnapTo(target))

	anchorEl.rect.Y += 5
	targetEl.rect.Y += 5
	arrow.Redraw()

	shape := scene.Shapes()[0]
	assert.Equal(t, Point{X: 20, Y: 6}, shape.To)
	assert.Equal(t, Point{X: 3, Y: 6}, shape.From)
}
