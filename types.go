package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	width          int
	height         int
	pointerX       int
	pointerY       int
	config         *Config
	viewer         *Viewer
	scene          *Scene
	controller     *Controller
	session        *sessionLog
	keys           keyMap
	help           help.Model
	styles         map[cellStyle]lipgloss.Style
	showHelp       bool
	errorMessage   string
	successMessage string
}

type point struct {
	X, Y int
}

// sessionLog collects the connections created while the program runs.
type sessionLog struct {
	created []ConnectionCreated
}

func (s *sessionLog) record(ev ConnectionCreated) {
	s.created = append(s.created, ev)
}

func (s *sessionLog) Created() []ConnectionCreated {
	return s.created
}
