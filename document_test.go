package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDocument(t *testing.T) {
	doc := sampleDocument()

	assert.Equal(t, "Welcome to netcanvas", doc.Title)
	require.Len(t, doc.Annotations, 5)
	assert.Equal(t, "netcanvas links annotations on a page.", doc.Lines()[0])

	// Every sample region sits on text.
	lines := doc.Lines()
	for _, a := range doc.Annotations {
		assert.Less(t, a.Y+a.Height-1, len(lines), a.Key)
	}

	outer := doc.Annotation("outer")
	nested := doc.Annotation("nested-one")
	require.NotNil(t, outer)
	require.NotNil(t, nested)
	assert.True(t, outer.Region().Contains(Point{X: float64(nested.X), Y: float64(nested.Y)}))
	assert.Nil(t, doc.Annotation("nope"))
}

func TestDocumentSize(t *testing.T) {
	doc, err := ParseDocument([]byte(`
title: t
text: |
  abc
  abcdef
annotations:
  - id: a
    x: 10
    y: 4
    width: 3
    height: 2
`))
	require.NoError(t, err)

	w, h := doc.Size()
	assert.Equal(t, 14, w)
	assert.Equal(t, 6, h)
}

func TestDocumentSizeCountsRunes(t *testing.T) {
	doc, err := ParseDocument([]byte("title: t\ntext: \"héllo wörld\"\n"))
	require.NoError(t, err)

	w, h := doc.Size()
	assert.Equal(t, 11, w)
	assert.Equal(t, 1, h)
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing title",
			yaml: "text: hi\n",
			want: "Document.Title: field is required",
		},
		{
			name: "missing id",
			yaml: "title: t\nannotations:\n  - width: 1\n    height: 1\n",
			want: "Document.Annotations[0].Key: field is required",
		},
		{
			name: "negative x",
			yaml: "title: t\nannotations:\n  - id: a\n    x: -1\n    width: 1\n    height: 1\n",
			want: "Document.Annotations[0].X: must be at least 0",
		},
		{
			name: "zero width",
			yaml: "title: t\nannotations:\n  - id: a\n    height: 1\n",
			want: "Document.Annotations[0].Width: field is required",
		},
		{
			name: "duplicate id",
			yaml: "title: t\nannotations:\n  - id: a\n    width: 1\n    height: 1\n  - id: a\n    width: 1\n    height: 1\n",
			want: `annotations: duplicate id "a"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.yaml))
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestParseDocumentBadYAML(t *testing.T) {
	_, err := ParseDocument([]byte("title: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse document")
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocumentYAML), 0644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Annotations, 5)

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocAnnotationIdentity(t *testing.T) {
	a := &DocAnnotation{Key: "a", Label: "Alpha"}
	same := &DocAnnotation{Key: "a"}

	assert.True(t, a.IsEqual(same))
	assert.True(t, a.IsEqual(testAnnotation{id: "a"}))
	assert.False(t, a.IsEqual(nil))
	assert.Equal(t, "Alpha", a.DisplayName())
	assert.Equal(t, "a", same.DisplayName())
}
