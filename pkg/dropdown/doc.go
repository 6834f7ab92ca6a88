// Package dropdown provides a reusable single-select control for Bubble Tea
// programs: a trigger line that reveals a menu of selectable text options,
// with keyboard navigation, outside-click dismissal, error display, and an
// optional filter display mode.
//
// The committed value is owned by the host (controlled-component pattern).
// The control renders whatever value it is configured with and proposes
// changes by emitting ValueChangedMsg; the host decides whether to apply
// them.
//
// # Quick Start
//
//	ctl := dropdown.New("env",
//	    dropdown.WithPlaceholder("Choose environment"),
//	    dropdown.WithOptions("Development", "Staging", "Production"),
//	    dropdown.WithValue("Staging"),
//	)
//
//	// In Update():
//	if cmd, handled := ctl.Update(msg); handled {
//	    return m, cmd
//	}
//	switch msg := msg.(type) {
//	case dropdown.ValueChangedMsg:
//	    ctl.SetValue(msg.Value)
//	}
//
//	// In View():
//	ctl.SetOrigin(x, y)
//	content := ctl.View(32)
//
// # Focus
//
// Hosts route keyboard input to the focused control and call Focus/Blur as
// focus moves between widgets. While the menu is open, Up/Down move between
// options with wraparound, Enter commits, Escape closes and returns focus to
// the trigger, and Tab closes while letting focus leave naturally. Typing
// jumps to the best fuzzy match.
//
// # Mouse
//
// Run the program with mouse tracking and forward every tea.MouseMsg to all
// controls. Rendering mounts the trigger, menu surface, and item rectangles;
// a press outside all of them while the menu is open closes it. The outside
// observer is armed one command-cycle after the menu opens, so the
// interaction that opened the menu is never the one that closes it.
package dropdown
