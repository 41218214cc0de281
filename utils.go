package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) bodyHeight() int {
	return max(m.height-titleHeight-statusHeight, 1)
}

func (m *model) pointer() Point {
	return Point{X: float64(m.pointerX), Y: float64(m.pointerY)}
}

// geometryChanged realigns the overlay after a scroll or resize and re-runs
// hover tracking, since regions may have moved under a still pointer.
func (m *model) geometryChanged() {
	m.controller.Handle(GeometryChanged{})
	m.track()
}

// track turns the pointer position into hover enter/leave events.
func (m *model) track() {
	for _, ev := range m.viewer.Track(m.pointerX, m.pointerY, m.controller.ControlAt) {
		m.controller.Handle(ev)
	}
}

func writeClipboardText(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return clipboard.WriteAll(text)
}
