package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogging sends the standard logger to path, or discards it when path
// is empty; the terminal belongs to the UI.
func setupLogging(path string) (func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "netcanvas")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f.Close, nil
}
