package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleViewer(t *testing.T) *Viewer {
	t.Helper()
	v := NewViewer(sampleDocument(), 1)
	v.Resize(60, 10)
	return v
}

func ids(list []*DocAnnotation) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Key
	}
	return out
}

func eventIDs(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		switch ev := ev.(type) {
		case HoverEnter:
			out = append(out, "+"+ev.Ref.Annotation.ID())
		case HoverLeave:
			out = append(out, "-"+ev.Ref.Annotation.ID())
		}
	}
	return out
}

func TestViewerHitTest(t *testing.T) {
	v := newSampleViewer(t)

	assert.Equal(t, []string{"outer", "nested-one"}, ids(v.HitTest(8, 11)))
	assert.Equal(t, []string{"intro"}, ids(v.HitTest(0, 1)))
	assert.Empty(t, v.HitTest(0, 0), "title row is outside the body")
	assert.Empty(t, v.HitTest(55, 3))
}

func TestViewerTrack(t *testing.T) {
	v := newSampleViewer(t)

	assert.Equal(t, []string{"+outer", "+nested-one"}, eventIDs(v.Track(8, 11, nil)))
	assert.Empty(t, v.Track(9, 11, nil))
	assert.Equal(t, []string{"-nested-one"}, eventIDs(v.Track(2, 9, nil)))
	assert.Equal(t, []string{"-outer", "+intro"}, eventIDs(v.Track(3, 1, nil)))
	assert.Equal(t, []string{"intro"}, ids(v.Hovered()))
}

func TestViewerTrackLeavesInnermostFirst(t *testing.T) {
	v := newSampleViewer(t)
	v.Track(8, 11, nil)

	assert.Equal(t, []string{"-nested-one", "-outer"}, eventIDs(v.Track(55, 3, nil)))
}

func TestViewerTrackControlCountsAsInside(t *testing.T) {
	v := newSampleViewer(t)
	v.Track(8, 11, nil)
	nested := v.Document().Annotation("nested-one")

	// The control sits one cell right of the region's top-right corner.
	controlAt := func(x, y int) (AnnotationRef, bool) {
		if x == 24 && y == 10 {
			return v.Ref(nested), true
		}
		return AnnotationRef{}, false
	}
	assert.Empty(t, v.Track(24, 10, controlAt))
	assert.Equal(t, []string{"-nested-one"}, eventIDs(v.Track(25, 10, controlAt)))
}

func TestViewerScroll(t *testing.T) {
	v := newSampleViewer(t)
	outer := v.Ref(v.Document().Annotation("outer"))
	assert.Equal(t, 7.0, outer.Bounds().Y)

	assert.True(t, v.ScrollBy(0, 5))
	assert.Equal(t, 2.0, outer.Bounds().Y)

	assert.True(t, v.ScrollBy(0, 100))
	_, y := v.Scroll()
	assert.Equal(t, 8, y)
	assert.False(t, v.ScrollBy(0, 1))

	assert.True(t, v.ScrollBy(0, -100))
	assert.False(t, v.ScrollBy(-1, 0))
}

func TestViewerSelection(t *testing.T) {
	v := newSampleViewer(t)

	v.Press(0, 1)
	v.Drag(8, 1)
	v.Release(8, 1)
	require.True(t, v.HasSelection())
	assert.Equal(t, "netcanvas", v.SelectedText())

	v.Press(30, 1)
	v.Drag(4, 3)
	v.Release(4, 3)
	assert.Equal(t, " a page.\n\nHover", v.SelectedText())

	// A plain click clears.
	v.Press(5, 5)
	v.Release(5, 5)
	assert.False(t, v.HasSelection())
	assert.Equal(t, "", v.SelectedText())
}

func TestViewerSelectionCountsRunes(t *testing.T) {
	doc, err := ParseDocument([]byte("title: t\ntext: \"héllo wörld\"\n"))
	require.NoError(t, err)
	v := NewViewer(doc, 1)
	v.Resize(20, 5)

	v.Press(0, 1)
	v.Drag(1, 1)
	v.Release(1, 1)
	require.True(t, v.HasSelection())
	assert.Equal(t, "hé", v.SelectedText())

	v.Press(6, 1)
	v.Drag(30, 1)
	v.Release(30, 1)
	assert.Equal(t, "wörld", v.SelectedText())
	assert.True(t, utf8.ValidString(v.SelectedText()))
}

func TestViewerSelectionDisabled(t *testing.T) {
	v := newSampleViewer(t)
	v.Press(0, 1)
	v.Drag(8, 1)
	v.Release(8, 1)

	v.SetSelectionEnabled(false)
	assert.False(t, v.SelectionEnabled())
	v.Press(0, 2)
	v.Release(0, 2)
	assert.True(t, v.HasSelection(), "disabled selection ignores the click")

	v.SetSelectionEnabled(true)
	v.ClearSelection()
	assert.False(t, v.HasSelection())
}

func TestViewerDisableMidDrag(t *testing.T) {
	v := newSampleViewer(t)
	v.Press(0, 1)
	v.SetSelectionEnabled(false)
	v.SetSelectionEnabled(true)

	v.Drag(8, 1)
	v.Release(8, 1)
	assert.False(t, v.HasSelection())
}
