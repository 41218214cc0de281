package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

func initialModel(doc *Document, config *Config) model {
	viewer := NewViewer(doc, titleHeight)
	scene := NewScene()
	controller := NewController(scene, config, viewer)

	session := &sessionLog{}
	controller.OnConnectionCreated(session.record)
	if config.NotifyFile != "" {
		controller.OnConnectionCreated(newJSONLNotifier(config.NotifyFile).Notify)
	}
	if config.CopyOnConnect {
		controller.OnConnectionCreated(copyConnection)
	}

	return model{
		config:     config,
		viewer:     viewer,
		scene:      scene,
		controller: controller,
		session:    session,
		keys:       keys,
		help:       help.New(),
		styles:     newCellStyles(config.Theme),
		pointerX:   -1,
		pointerY:   -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewer.Resize(msg.Width, m.bodyHeight())
		m.help.Width = msg.Width
		m.geometryChanged()
		return m, nil

	case selectionRestoreMsg:
		return m, m.controller.Handle(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(0, -wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll(0, wheelStep)
		return m, nil
	}

	m.pointerX, m.pointerY = msg.X, msg.Y
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.track()
		m.clearMessages()
		// The controller sees the press first so that starting a connection
		// disables selection before the viewer reacts to it.
		cmd := m.controller.Handle(PointerDown{X: msg.X, Y: msg.Y})
		m.viewer.Press(msg.X, msg.Y)
		return m, cmd
	case tea.MouseActionRelease:
		m.viewer.Release(msg.X, msg.Y)
	case tea.MouseActionMotion:
		m.track()
		m.controller.Handle(PointerMove{X: msg.X, Y: msg.Y})
		if msg.Button == tea.MouseButtonLeft {
			m.viewer.Drag(msg.X, msg.Y)
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Cancel) {
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			m.controller.Dispose()
			return m, tea.Quit
		}
		return m, nil
	}

	m.clearMessages()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.controller.Dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.controller.Arrow() != nil {
			return m, m.controller.Handle(Cancel{})
		}
		m.viewer.ClearSelection()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.PageUp, m.keys.PageDown):
		m.handleScroll(msg.String(), m.getMoveSpeed(msg.String()))

	case key.Matches(msg, m.keys.Yank):
		edges := m.controller.Network().Edges()
		if len(edges) == 0 {
			m.errorMessage = "No connections to copy"
			break
		}
		if err := writeClipboardText(edgeListText(edges)); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
			break
		}
		m.successMessage = fmt.Sprintf("Copied %d connection(s)", len(edges))

	case key.Matches(msg, m.keys.Copy):
		if !m.viewer.HasSelection() {
			m.errorMessage = "Nothing selected"
			break
		}
		if err := writeClipboardText(m.viewer.SelectedText()); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
			break
		}
		m.successMessage = "Copied selection"

	case key.Matches(msg, m.keys.ExportPNG):
		path, err := m.config.GetSavePath(defaultPNGName)
		if err == nil {
			err = ExportPNG(path, m.viewer, m.scene, m.config.Theme)
		}
		if err != nil {
			m.errorMessage = fmt.Sprintf("Export failed: %v", err)
			break
		}
		m.successMessage = fmt.Sprintf("Exported to %s", path)

	case key.Matches(msg, m.keys.ExportText):
		path, err := m.config.GetSavePath(defaultTXTName)
		if err == nil {
			err = exportVisualTXT(path, m.viewer, m.scene)
		}
		if err != nil {
			m.errorMessage = fmt.Sprintf("Export failed: %v", err)
			break
		}
		m.successMessage = fmt.Sprintf("Exported to %s", path)
	}
	return m, nil
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	frame := renderFrame(m.viewer, m.scene, m.width, m.height-statusHeight, m.pointer())
	lines := frame.StyledLines(m.styles)
	lines[0] = titleStyle.Width(m.width).Render(truncate(" "+m.viewer.Document().Title, m.width))

	var result strings.Builder
	result.WriteString(strings.Join(lines, "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	status := fmt.Sprintf("Mode: %s | Connections: %d", m.modeString(), m.controller.Network().Len())
	if top := m.controller.Hover().Top(); top != nil {
		status += fmt.Sprintf(" | %s", annotationLabel(top.Ref.Annotation))
	}
	switch {
	case m.errorMessage != "":
		return statusStyle.Render(status+" | ") + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		return statusStyle.Render(status+" | ") + okStyle.Render(m.successMessage)
	}
	return statusStyle.Render(status+" | ") + m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m model) modeString() string {
	state := m.controller.State()
	switch state {
	case StateDrawing:
		return "DRAWING (esc to cancel)"
	case StateSnapReady:
		return "SNAP (click to connect)"
	default:
		return state.String()
	}
}

func (m model) helpView() string {
	header := []string{
		"netcanvas help",
		"==============",
		"",
		"Hover a highlighted region and click to start a connection,",
		"or click the + control next to it. Move onto another region",
		"and click again to connect them. Esc cancels.",
		"",
	}
	body := m.help.FullHelpView(m.keys.FullHelp())
	return strings.Join(header, "\n") + "\n" + body + "\n\n" + statusStyle.Render("? or esc to close")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
