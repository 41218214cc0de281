package main

func (m *model) handleScroll(key string, speed int) {
	page := max(m.viewer.height-1, 1)
	dx, dy := 0, 0
	switch key {
	case "h", "left", "H", "shift+left":
		dx = -speed
	case "l", "right", "L", "shift+right":
		dx = speed
	case "k", "up", "K", "shift+up":
		dy = -speed
	case "j", "down", "J", "shift+down":
		dy = speed
	case "pgup", "ctrl+u":
		dy = -page
	case "pgdown", "ctrl+d":
		dy = page
	}
	m.scroll(dx, dy)
}

func (m *model) scroll(dx, dy int) {
	if m.viewer.ScrollBy(dx, dy) {
		m.geometryChanged()
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
