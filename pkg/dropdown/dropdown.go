package dropdown

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/dropdown/hit"
)

// Control is a single-select dropdown: a trigger line that reveals a menu of
// selectable text options with keyboard navigation, outside-click dismissal,
// error display, and an optional filter display mode.
//
// The committed value is externally owned. The control proposes changes by
// emitting ValueChangedMsg and renders whatever Config.Value it was given;
// hosts apply the change with SetValue (controlled-component pattern).
type Control struct {
	cfg    Config
	keys   KeyMap
	styles Styles

	open    bool
	focused bool

	coord     *Coordinator
	detector  Detector
	typeahead typeahead

	originX     int
	originY     int
	menuSurface hit.Rect
}

// New creates a closed, unfocused control.
func New(id string, opts ...Option) *Control {
	c := &Control{
		cfg:   Config{ID: id, Variant: VariantRegular},
		keys:  DefaultKeyMap(),
		coord: NewCoordinator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.Variant == "" {
		c.cfg.Variant = VariantRegular
	}
	c.styles = DefaultStyles(c.cfg.Variant)
	return c
}

// Config returns the current configuration.
func (c *Control) Config() Config {
	return c.cfg
}

// IsOpen reports whether the menu is open.
func (c *Control) IsOpen() bool {
	return c.open
}

// Focused reports whether the control holds focus within its host.
func (c *Control) Focused() bool {
	return c.focused
}

// Coordinator exposes the focus coordinator, mainly for hosts that lay out
// regions themselves and for tests.
func (c *Control) Coordinator() *Coordinator {
	return c.coord
}

// SetValue replaces the committed value. Hosts call this after applying a
// ValueChangedMsg; the control never updates the value on its own.
func (c *Control) SetValue(v string) {
	c.cfg.Value = v
}

// SetOptions replaces the menu contents. The focusable handle set is rebuilt
// from scratch on the next open; when the menu is already open the registry
// is refreshed immediately and focus is clamped into the new bounds.
func (c *Control) SetOptions(opts []string) {
	c.cfg.Options = opts
	if !c.open {
		return
	}
	focus := c.coord.Focused()
	c.registerHandles()
	if focus >= len(opts) {
		c.coord.FocusLast()
	} else {
		c.coord.FocusIndex(focus)
	}
}

// SetError replaces the externally computed validation message and its
// visibility. The control only displays and forwards it.
func (c *Control) SetError(text string, shown bool) {
	c.cfg.ErrorText = text
	c.cfg.ShowError = shown
}

// SetActiveFilter toggles the alternate active styling in filter mode.
func (c *Control) SetActiveFilter(active bool) {
	c.cfg.ActiveFilter = active
}

// Focus gives the control focus. When the error is shown, the returned
// command notifies the host's validation collaborator that the trigger was
// focused while in error.
func (c *Control) Focus() tea.Cmd {
	c.focused = true
	if !c.cfg.ShowError {
		return nil
	}
	id := c.cfg.ID
	return func() tea.Msg {
		return ErrorFocusMsg{ID: id}
	}
}

// Blur removes focus. An open menu closes without redirecting focus, the same
// way Tab lets focus leave naturally.
func (c *Control) Blur() {
	c.focused = false
	if c.open {
		c.closeMenu(false)
	}
}

// Teardown releases the outside detector and drops all handles. Call it when
// the control is removed from the host for good; afterwards every focus call
// is a no-op.
func (c *Control) Teardown() {
	if c.open {
		c.closeMenu(false)
	}
	c.detector.Release()
	c.coord.Reset()
	c.coord.UnmountTrigger()
	c.focused = false
}

// Update dispatches a message to the control. The bool reports whether the
// message was consumed; unconsumed messages (including the Tab that leaves
// the widget) should continue through the host's normal handling.
func (c *Control) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKey(msg)
	case tea.MouseMsg:
		return c.handleMouse(msg)
	case armMsg:
		if msg.id == c.cfg.ID && c.open {
			c.detector.Accept(msg)
		}
		return nil, false
	}
	return nil, false
}

// handleKey runs the keyboard side of the state machine. Arrow keys are
// always reported consumed while the menu is open so the host never also
// scrolls on them.
func (c *Control) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !c.focused {
		return nil, false
	}

	if !c.open {
		if key.Matches(msg, c.keys.Open) {
			return c.openMenu(), true
		}
		return nil, false
	}

	// Open, focus on the trigger: only possible with an empty option set.
	if c.coord.Focused() == FocusTrigger {
		switch {
		case key.Matches(msg, c.keys.Dismiss), key.Matches(msg, c.keys.Open):
			return c.closeMenu(true), true
		case key.Matches(msg, c.keys.Leave):
			c.closeMenu(false)
			return nil, false
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, c.keys.Commit):
		return c.commit(c.coord.Focused()), true

	case key.Matches(msg, c.keys.Next):
		c.typeahead.reset()
		c.coord.MoveFocus(Next)
		return nil, true

	case key.Matches(msg, c.keys.Prev):
		c.typeahead.reset()
		c.coord.MoveFocus(Previous)
		return nil, true

	case key.Matches(msg, c.keys.First):
		c.typeahead.reset()
		c.coord.FocusFirst()
		return nil, true

	case key.Matches(msg, c.keys.Last):
		c.typeahead.reset()
		c.coord.FocusLast()
		return nil, true

	case key.Matches(msg, c.keys.Dismiss):
		return c.closeMenu(true), true

	case key.Matches(msg, c.keys.Leave):
		// Close, but let natural tab order proceed.
		c.closeMenu(false)
		return nil, false
	}

	switch msg.Type {
	case tea.KeyBackspace:
		c.typeahead.backspace()
		c.jumpToTypeahead()
		return nil, true
	case tea.KeyRunes:
		c.typeahead.push(msg.Runes)
		c.jumpToTypeahead()
		return nil, true
	}

	return nil, false
}

// handleMouse runs the pointer side of the state machine: item commits,
// trigger toggling, and outside-interaction dismissal.
func (c *Control) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil, false
	}

	if !c.open {
		if tr, ok := c.coord.TriggerRect(); ok && tr.Contains(msg.X, msg.Y) {
			return tea.Batch(c.Focus(), c.openMenu()), true
		}
		return nil, false
	}

	for i := 0; i < c.coord.Len(); i++ {
		h, ok := c.coord.Handle(i)
		if !ok || !h.mounted {
			continue
		}
		if h.Rect.Contains(msg.X, msg.Y) {
			return c.commit(h.Index), true
		}
	}

	if tr, ok := c.coord.TriggerRect(); ok && tr.Contains(msg.X, msg.Y) {
		return c.closeMenu(true), true
	}

	// Inside the menu surface but on no item: swallow without closing.
	if c.menuSurface.Contains(msg.X, msg.Y) {
		return nil, true
	}

	// Outside everything. Close only while armed, and let the interaction
	// continue to whatever else it targeted.
	if c.detector.Armed() {
		c.closeMenu(false)
	}
	return nil, false
}

// openMenu transitions Closed -> Open: rebuild the handle set from the
// current options, focus the first handle, and schedule detector arming.
func (c *Control) openMenu() tea.Cmd {
	c.open = true
	c.typeahead.reset()
	c.registerHandles()
	c.coord.FocusFirst()
	return c.detector.Arm(c.cfg.ID)
}

// closeMenu transitions Open -> Closed by any path. The detector is released
// unconditionally; refocus selects between returning focus to the trigger
// (Escape, commit, trigger toggle) and letting it leave naturally (Tab,
// outside interaction, blur). Refocusing goes through Focus, so the trigger
// regaining focus while the error is shown notifies the host the same way a
// host-initiated focus does.
func (c *Control) closeMenu(refocus bool) tea.Cmd {
	c.open = false
	c.detector.Release()
	c.typeahead.reset()
	c.coord.ReturnToTrigger()
	c.menuSurface = hit.Rect{}
	if refocus {
		return c.Focus()
	}
	return nil
}

// commit finalizes the selection on the handle at index: emit the value
// change with the option's trimmed text, close, and return focus to the
// trigger. Unregistered indices are a no-op.
func (c *Control) commit(index int) tea.Cmd {
	h, ok := c.coord.Handle(index)
	if !ok {
		return nil
	}
	value := strings.TrimSpace(h.Label)
	focusCmd := c.closeMenu(true)
	id := c.cfg.ID
	change := func() tea.Msg {
		return ValueChangedMsg{ID: id, Value: value}
	}
	if focusCmd == nil {
		return change
	}
	return tea.Batch(change, focusCmd)
}

// registerHandles rebuilds the handle registry from the current options, one
// handle per rendered item in display order.
func (c *Control) registerHandles() {
	c.coord.Reset()
	for i, opt := range c.cfg.Options {
		c.coord.Register(i, opt)
	}
}

func (c *Control) jumpToTypeahead() {
	if i, ok := c.typeahead.match(c.cfg.Options); ok {
		c.coord.FocusIndex(i)
	}
}
