package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"synthmenu/menu"
	"synthmenu/midi"
	"synthmenu/store"
	"synthmenu/theme"
	"synthmenu/widgets"
)

const (
	listHeight  = 10
	chartWidth  = 48
	chartHeight = 6
	panelWidth  = 40
)

type Model struct {
	Menu      *menu.Menu
	Patch     *menu.Patch // optional, names saved files
	DeviceMgr *midi.DeviceManager
	Theme     *theme.Theme

	updates  chan struct{}
	status   string
	surfaces int
	showHelp bool
	quitting bool
}

// UpdateMsg is posted by the menu draw hook when another goroutine (a MIDI
// surface) changed the tree.
type UpdateMsg struct{}

type DeviceEventMsg midi.DeviceEvent

type SurfaceEventMsg struct {
	Surface *midi.Surface
	Event   midi.Event
}

func NewModel(m *menu.Menu, patch *menu.Patch, deviceMgr *midi.DeviceManager, th *theme.Theme) Model {
	model := Model{
		Menu:      m,
		Patch:     patch,
		DeviceMgr: deviceMgr,
		Theme:     th,
		updates:   make(chan struct{}, 1),
		showHelp:  true,
	}
	m.SetOnDraw(func(menu.Item) {
		select {
		case model.updates <- struct{}{}:
		default:
		}
	})
	return model
}

func (m Model) listenForUpdates() tea.Cmd {
	return func() tea.Msg {
		<-m.updates
		return UpdateMsg{}
	}
}

func (m Model) listenForDevices() tea.Cmd {
	return func() tea.Msg {
		event := <-m.DeviceMgr.Events()
		return DeviceEventMsg(event)
	}
}

func listenForSurface(s *midi.Surface) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-s.Events()
		if !ok {
			return nil
		}
		return SurfaceEventMsg{Surface: s, Event: event}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.listenForUpdates(),
		m.listenForDevices(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			m.Menu.Next()
		case "k", "up":
			m.Menu.Previous()
		case "l", "right":
			m.Menu.Increment()
		case "h", "left":
			m.Menu.Decrement()
		case "enter":
			m.Menu.Select()
		case "esc", "backspace":
			m.Menu.Exit()
		case "r":
			m.Menu.Reset()
		case "R":
			m.Menu.ResetAll()

		case "s":
			filename, err := store.Save(m.Menu, m.patchName())
			if err != nil {
				m.status = fmt.Sprintf("save failed: %v", err)
			} else {
				m.status = "saved " + filename
			}
		case "o":
			if err := store.Load(m.Menu, ""); err != nil {
				m.status = fmt.Sprintf("load failed: %v", err)
			} else {
				m.status = "loaded latest patch"
			}

		case "?":
			m.showHelp = !m.showHelp
		}

	case UpdateMsg:
		return m, m.listenForUpdates()

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		if event.Type == midi.DeviceConnected {
			m.surfaces++
			m.status = "connected " + event.ID
			return m, tea.Batch(m.listenForDevices(), listenForSurface(event.Surface))
		}
		m.surfaces--
		m.status = "disconnected " + event.ID
		return m, m.listenForDevices()

	case SurfaceEventMsg:
		m.apply(msg.Event)
		return m, listenForSurface(msg.Surface)
	}

	return m, nil
}

var keyHelp = []widgets.KeySection{
	{Title: "navigate", Keys: []widgets.KeyBinding{
		{Key: "j/k, up/down", Desc: "move between rows"},
		{Key: "enter", Desc: "open group / run action"},
		{Key: "esc, backspace", Desc: "back out"},
	}},
	{Title: "edit", Keys: []widgets.KeyBinding{
		{Key: "h/l, left/right", Desc: "step value"},
		{Key: "r / R", Desc: "reset item / reset everything"},
	}},
	{Title: "patches", Keys: []widgets.KeyBinding{
		{Key: "s", Desc: "save patch"},
		{Key: "o", Desc: "load latest patch"},
	}},
	{Title: "", Keys: []widgets.KeyBinding{
		{Key: "?", Desc: "toggle help"},
		{Key: "q", Desc: "quit"},
	}},
}

// apply routes one decoded surface operation into the menu.
func (m *Model) apply(e midi.Event) {
	switch e.Op {
	case midi.OpNext:
		m.Menu.Navigate(e.Steps)
	case midi.OpPrevious:
		m.Menu.Navigate(-e.Steps)
	case midi.OpIncrement:
		for i := 0; i < e.Steps; i++ {
			m.Menu.Increment()
		}
	case midi.OpDecrement:
		for i := 0; i < e.Steps; i++ {
			m.Menu.Decrement()
		}
	case midi.OpSelect:
		m.Menu.Select()
	case midi.OpExit:
		m.Menu.Exit()
	}
}

func (m Model) patchName() string {
	if m.Patch == nil {
		return ""
	}
	return strings.TrimSpace(m.Patch.Name.String())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	statusStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())

	surfaceStatus := ""
	if m.surfaces > 0 {
		surfaceStatus = fmt.Sprintf("  midi:%d", m.surfaces)
	}
	header := headerStyle.Render("synthmenu  "+m.Menu.Path()) + dimStyle.Render(surfaceStatus)

	body := m.renderSelected()

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(body)
	out.WriteString("\n")

	if m.showHelp {
		out.WriteString("\n")
		out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keyHelp)))
	} else {
		out.WriteString("\n")
		out.WriteString(dimStyle.Render("?:help"))
	}
	if m.status != "" {
		out.WriteString("\n")
		out.WriteString(statusStyle.Render(m.status))
	}

	return out.String()
}

// renderSelected draws the current editing context by kind: specialized
// panels for waveforms, envelopes, sequences and strings, a row list for
// plain groups, a value bar for leaves.
func (m Model) renderSelected() string {
	selected := m.Menu.Selected()

	switch selected.Kind() {
	case menu.KindWaveform:
		w := selected.(*menu.Waveform)
		return widgets.RenderWaveform(w, chartWidth, chartHeight, m.Theme) + "\n\n" + m.renderGroup(selected)

	case menu.KindAREnvelope, menu.KindADSREnvelope:
		return widgets.RenderEnvelope(selected, chartWidth, chartHeight, m.Theme) + "\n\n" + m.renderGroup(selected)

	case menu.KindSequence:
		s := selected.(*menu.Sequence)
		return widgets.RenderSteps(s, m.Theme)

	case menu.KindString:
		s := selected.(*menu.String)
		return widgets.RenderString(s, m.Theme)
	}

	if selected.Kind().Composite() {
		return m.renderGroup(selected)
	}
	return m.renderLeaf(selected)
}

func (m Model) renderGroup(item menu.Item) string {
	g := menu.AsGroup(item)
	if g == nil {
		return ""
	}
	return widgets.RenderLines(widgets.GroupLines(g, listHeight), panelWidth, m.Theme)
}

func (m Model) renderLeaf(item menu.Item) string {
	titleStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Bold(true)
	out := titleStyle.Render(item.Title()) + "\n\n"
	if n := menu.AsNumber(item); n != nil {
		return out + widgets.RenderBar(n, panelWidth, m.Theme)
	}
	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.Value())
	return out + labelStyle.Render(item.Label())
}
