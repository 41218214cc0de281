package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	doc := sampleDocument()
	created := []ConnectionCreated{
		{From: doc.Annotation("intro"), To: doc.Annotation("outer")},
		{From: doc.Annotation("nested-one"), To: doc.Annotation("footnote")},
	}

	var buf bytes.Buffer
	printSummary(&buf, created)

	out := buf.String()
	assert.Contains(t, out, "2 connections created")
	assert.Contains(t, out, "Intro -> Outer region")
	assert.Contains(t, out, "Nested one -> Footnote")
}

func TestPrintSummaryEmpty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	printSummary(&buf, nil)
	assert.Equal(t, "netcanvas: no connections created\n", buf.String())

	buf.Reset()
	printSummary(&buf, []ConnectionCreated{{From: testAnnotation{id: "a"}, To: testAnnotation{id: "b"}}})
	assert.Contains(t, buf.String(), "1 connection created")
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	})

	closeLog, err := setupLogging("")
	require.NoError(t, err)
	require.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "netcanvas.log")
	closeLog, err = setupLogging(path)
	require.NoError(t, err)
	log.Print("connection started")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "connection started")

	_, err = setupLogging(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}
