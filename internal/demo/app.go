// Package demo hosts the example settings form that exercises the dropdown
// control: several stacked controls, focus routing, mouse forwarding, and an
// externally computed validation error.
package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/marcus/dropdown/pkg/dropdown/hit"
)

const fieldWidth = 34

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Copy      key.Binding
	Quit      key.Binding
	Control   dropdown.KeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy value")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Control:   dropdown.DefaultKeyMap(),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Control.Open, k.Control.Commit, k.Control.Dismiss, k.NextField, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	rows := k.Control.FullHelp()
	return append(rows, []key.Binding{k.NextField, k.PrevField, k.Copy, k.Quit})
}

// Model is the demo application.
type Model struct {
	controls []*dropdown.Control
	labels   []string
	values   map[string]string
	active   int
	width    int
	height   int
	keys     keyMap
	help     help.Model
	status   string
	labelMap *hit.Map
}

// New builds the demo form from a profile.
func New(profile *config.Profile) Model {
	variant := dropdown.VariantRegular
	if profile.Variant == string(dropdown.VariantOutlined) {
		variant = dropdown.VariantOutlined
	}

	env := dropdown.New("environment",
		dropdown.WithName("environment"),
		dropdown.WithPlaceholder(profile.Placeholder),
		dropdown.WithValue(profile.Placeholder),
		dropdown.WithOptions(profile.Environments...),
		dropdown.WithVariant(variant),
	)
	region := dropdown.New("region",
		dropdown.WithName("region"),
		dropdown.WithPlaceholder(profile.Placeholder),
		dropdown.WithValue(profile.Placeholder),
		dropdown.WithOptions(profile.Regions...),
		dropdown.WithVariant(dropdown.VariantOutlined),
		dropdown.WithFilterMode(true),
	)
	tier := dropdown.New("tier",
		dropdown.WithName("tier"),
		dropdown.WithPlaceholder(profile.Placeholder),
		dropdown.WithValue(profile.Placeholder),
		dropdown.WithOptions(profile.Tiers...),
		dropdown.WithVariant(variant),
		dropdown.WithRequired(),
		dropdown.WithError("Selection is required", true),
	)

	m := Model{
		controls: []*dropdown.Control{env, region, tier},
		labels:   []string{"Environment", "Region (filter)", "Tier"},
		values:   make(map[string]string),
		keys:     defaultKeyMap(),
		help:     help.New(),
		labelMap: hit.NewMap(),
	}
	return m
}

// Init focuses the first field.
func (m Model) Init() tea.Cmd {
	return m.controls[0].Focus()
}

// Update routes messages: keys go to the active control first, mouse goes to
// every control, and everything else is forwarded so the controls see their
// own scheduled messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dropdown.ValueChangedMsg:
		m.values[msg.ID] = msg.Value
		if ctl := m.byID(msg.ID); ctl != nil {
			ctl.SetValue(msg.Value)
			if msg.ID == "tier" {
				// The externally owned validation clears once a real
				// selection exists.
				ctl.SetError("Selection is required", false)
			}
		}
		m.status = fmt.Sprintf("%s → %s", msg.ID, msg.Value)
		return m, nil

	case dropdown.ErrorFocusMsg:
		m.status = fmt.Sprintf("revalidating %s…", msg.ID)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.controls[m.active].Update(msg); handled {
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextField):
			return m, m.cycleFocus(1)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.cycleFocus(-1)
		case key.Matches(msg, m.keys.Copy):
			ctl := m.controls[m.active]
			if err := copyToClipboard(ctl.Config().Value); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = fmt.Sprintf("copied %s value", ctl.Config().Name)
			}
			return m, nil
		}
		return m, nil

	case tea.MouseMsg:
		// Every control observes the press, the way a document-level
		// listener would: one control may commit or open while another
		// closes on the same outside interaction.
		var cmds []tea.Cmd
		for _, ctl := range m.controls {
			if cmd, _ := ctl.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		// A click can hand focus to another control.
		for i, ctl := range m.controls {
			if ctl.Focused() && i != m.active {
				m.controls[m.active].Blur()
				m.active = i
			}
		}
		// Clicking a field label focuses its field.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if region := m.labelMap.Test(msg.X, msg.Y); region != nil {
				if i := region.Data.(int); i != m.active {
					m.controls[m.active].Blur()
					m.active = i
					cmds = append(cmds, m.controls[i].Focus())
				}
			}
		}
		return m, tea.Batch(cmds...)
	}

	// Scheduled control messages (detector arming) and anything else.
	var cmds []tea.Cmd
	for _, ctl := range m.controls {
		if cmd, _ := ctl.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) cycleFocus(dir int) tea.Cmd {
	m.controls[m.active].Blur()
	n := len(m.controls)
	m.active = (m.active + dir + n) % n
	return m.controls[m.active].Focus()
}

func (m *Model) byID(id string) *dropdown.Control {
	for _, ctl := range m.controls {
		if ctl.Config().ID == id {
			return ctl
		}
	}
	return nil
}

// View stacks the labelled controls and keeps their mounted rectangles in
// sync with where each one actually lands on screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Deployment settings"))
	b.WriteString("\n\n")
	y := 2

	m.labelMap.Clear()
	for i, ctl := range m.controls {
		b.WriteString("  " + labelStyle.Render(m.labels[i]) + "\n")
		m.labelMap.Add(m.controls[i].Config().ID, 2, y, fieldWidth, 1, i)
		y++
		ctl.SetOrigin(2, y)
		b.WriteString(indent(ctl.View(fieldWidth), 2))
		b.WriteString("\n\n")
		y += ctl.Height() + 1
	}

	if len(m.values) > 0 {
		var parts []string
		for _, ctl := range m.controls {
			if v, ok := m.values[ctl.Config().ID]; ok {
				parts = append(parts, fmt.Sprintf("%s=%s", ctl.Config().Name, v))
			}
		}
		b.WriteString("  " + valueStyle.Render(strings.Join(parts, "  ")) + "\n")
	}
	if m.status != "" {
		b.WriteString("  " + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
