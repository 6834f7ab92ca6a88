package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/dropdown/hit"
)

// itemFlags are the derived per-option display flags. They are pure functions
// of the configuration and are recomputed on every render.
type itemFlags struct {
	First      bool // edge rounding at the top of the menu
	Last       bool // edge rounding at the bottom
	Selected   bool
	Emphasized bool // filter mode AND selected
}

// triggerState is the derived trigger display state.
type triggerState struct {
	Open         bool
	Focused      bool
	ActiveFilter bool
	Placeholder  bool // value equals the placeholder string
	Error        bool
}

// IsSelected reports whether an option is the committed selection: exact,
// case-sensitive string equality against the current value.
func (c *Control) IsSelected(option string) bool {
	return option == c.cfg.Value
}

func (c *Control) itemFlagsAt(i int) itemFlags {
	n := len(c.cfg.Options)
	if i < 0 || i >= n {
		return itemFlags{}
	}
	selected := c.IsSelected(c.cfg.Options[i])
	return itemFlags{
		First:      i == 0,
		Last:       i == n-1,
		Selected:   selected,
		Emphasized: c.cfg.Filter && selected,
	}
}

func (c *Control) triggerState() triggerState {
	return triggerState{
		Open:         c.open,
		Focused:      c.focused,
		ActiveFilter: c.cfg.ActiveFilter,
		Placeholder:  c.cfg.Value == c.cfg.Placeholder,
		Error:        c.cfg.ShowError,
	}
}

func (c *Control) triggerStyle(st triggerState) lipgloss.Style {
	switch {
	case st.Error:
		return c.styles.TriggerError
	case st.Open:
		return c.styles.TriggerOpen
	case st.Focused:
		return c.styles.TriggerFocused
	case st.ActiveFilter:
		return c.styles.TriggerActive
	case st.Placeholder:
		return c.styles.TriggerPlaceholder
	default:
		return c.styles.Trigger
	}
}

// View renders the control at the given width and mounts the trigger, menu
// surface, and item rectangles at the origin set with SetOrigin. Rendering is
// the only place rectangles are produced, so hit tests always match the
// frame on screen.
func (c *Control) View(width int) string {
	if width < 8 {
		width = 8
	}

	var sb strings.Builder
	sb.WriteString(c.viewTrigger(width))
	c.coord.MountTrigger(hit.Rect{X: c.originX, Y: c.originY, W: width, H: 1})

	if c.open {
		sb.WriteString("\n")
		sb.WriteString(c.viewMenu(width))
	} else {
		c.menuSurface = hit.Rect{}
	}

	if c.cfg.ShowError && c.cfg.ErrorText != "" {
		sb.WriteString("\n")
		sb.WriteString(c.styles.ErrorText.Render(ansi.Truncate(c.cfg.ErrorText, width, "…")))
	}

	return sb.String()
}

// Height returns the number of lines the next View call will occupy, for
// hosts that stack controls vertically.
func (c *Control) Height() int {
	h := 1
	if c.open {
		n := len(c.cfg.Options)
		if n == 0 {
			n = 1 // the "(no options)" row
		}
		h += n + 2 // border top and bottom
	}
	if c.cfg.ShowError && c.cfg.ErrorText != "" {
		h++
	}
	return h
}

// SetOrigin places the control's top-left corner on screen. Mounted
// rectangles are absolute, so hosts must keep this current across layout
// changes.
func (c *Control) SetOrigin(x, y int) {
	c.originX = x
	c.originY = y
}

func (c *Control) viewTrigger(width int) string {
	st := c.triggerState()
	style := c.triggerStyle(st)

	label := c.cfg.Value
	if label == "" {
		label = c.cfg.Placeholder
	}
	if c.cfg.Required {
		label += "*"
	}

	arrow := "▾"
	if st.Open {
		arrow = "▴"
	}

	// Padding(0,1) consumes two columns; the arrow and its gap two more.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	label = ansi.Truncate(label, inner, "…")
	gap := inner - ansi.StringWidth(label)
	return style.Render(label + strings.Repeat(" ", gap) + " " + arrow)
}

func (c *Control) viewMenu(width int) string {
	itemWidth := width - 2
	var sb strings.Builder

	if len(c.cfg.Options) == 0 {
		sb.WriteString("╭" + strings.Repeat("─", itemWidth) + "╮\n")
		empty := ansi.Truncate("(no options)", itemWidth, "…")
		pad := itemWidth - ansi.StringWidth(empty)
		sb.WriteString("│" + c.styles.MenuBorder.Render(empty+strings.Repeat(" ", pad)) + "│\n")
		sb.WriteString("╰" + strings.Repeat("─", itemWidth) + "╯")
		c.menuSurface = hit.Rect{X: c.originX, Y: c.originY + 1, W: width, H: 3}
		return sb.String()
	}

	focused := c.coord.Focused()
	for i, opt := range c.cfg.Options {
		flags := c.itemFlagsAt(i)
		if flags.First {
			sb.WriteString("╭" + strings.Repeat("─", itemWidth) + "╮\n")
		}

		marker := "  "
		if flags.Selected {
			marker = c.styles.Marker.Render("✓") + " "
		}

		style := c.styles.Item
		if flags.Emphasized {
			style = c.styles.ItemEmphasis
		} else if flags.Selected {
			style = c.styles.ItemSelected
		}
		if i == focused {
			style = c.styles.ItemFocused
		}

		label := ansi.Truncate(opt, itemWidth-2, "…")
		pad := itemWidth - 2 - ansi.StringWidth(label)
		sb.WriteString("│" + marker + style.Render(label+strings.Repeat(" ", pad)) + "│")

		c.coord.Mount(i, hit.Rect{X: c.originX + 1, Y: c.originY + 2 + i, W: itemWidth, H: 1})

		if flags.Last {
			sb.WriteString("\n╰" + strings.Repeat("─", itemWidth) + "╯")
		} else {
			sb.WriteString("\n")
		}
	}

	c.menuSurface = hit.Rect{X: c.originX, Y: c.originY + 1, W: width, H: len(c.cfg.Options) + 2}
	return sb.String()
}
