package dropdown

import tea "github.com/charmbracelet/bubbletea"

// Detector watches for pointer activity outside the open menu. It is owned by
// a single control: acquired on every open transition, released on every exit
// from Open and on teardown, so repeated open/close cycles and multiple
// control instances never leak a stale observer or double-close.
//
// Arming is deferred through the command queue. The arm command's message
// resolves only after the update that opened the menu has completed, which
// guarantees the detector observes subsequent interactions, never the click
// or keypress that caused the open itself.
type Detector struct {
	armed bool
	gen   uint64
}

// Arm schedules the detector to start observing. The returned command must be
// dispatched by the host program; the control arms itself when the message
// comes back. An arm scheduled before a close is invalidated by the close and
// ignored on delivery.
func (d *Detector) Arm(id string) tea.Cmd {
	d.gen++
	gen := d.gen
	return func() tea.Msg {
		return armMsg{id: id, gen: gen}
	}
}

// Accept applies a delivered arm message. Stale generations, left over from
// an open that already closed again, are rejected.
func (d *Detector) Accept(msg armMsg) bool {
	if msg.gen != d.gen {
		return false
	}
	d.armed = true
	return true
}

// Armed reports whether the detector is currently observing.
func (d *Detector) Armed() bool {
	return d.armed
}

// Release stops observing. Safe to call repeatedly; releasing also
// invalidates any arm still in flight.
func (d *Detector) Release() {
	d.armed = false
	d.gen++
}
