package dropdown

import "github.com/marcus/dropdown/pkg/dropdown/hit"

// Direction selects where moveFocus lands relative to the current handle.
type Direction int

const (
	Next Direction = iota
	Previous
)

// FocusTrigger is the coordinator's focus position when the trigger, rather
// than a menu item, holds focus.
const FocusTrigger = -1

// ItemHandle is an opaque reference to a rendered menu-item button. Handles
// are registered when the menu opens and their screen rectangles are filled
// in by rendering (render-then-measure), never discovered by traversal.
type ItemHandle struct {
	Index   int
	Label   string
	Rect    hit.Rect
	mounted bool
}

// Coordinator tracks the ordered set of focusable menu-item handles plus the
// trigger handle, and moves focus between them deterministically. The handle
// set is rebuilt on every open transition so stale handles from a previous
// option list are never focused.
type Coordinator struct {
	handles        []ItemHandle
	trigger        hit.Rect
	triggerMounted bool
	focus          int // FocusTrigger or a handle index
}

// NewCoordinator returns a coordinator with focus on the trigger and no
// registered handles.
func NewCoordinator() *Coordinator {
	return &Coordinator{focus: FocusTrigger}
}

// Reset drops all item handles and parks focus on the trigger.
func (fc *Coordinator) Reset() {
	fc.handles = fc.handles[:0]
	fc.focus = FocusTrigger
}

// Register adds the handle for the item at index. Items register in display
// order as they mount; registering an index twice updates the label in place.
func (fc *Coordinator) Register(index int, label string) {
	for i := range fc.handles {
		if fc.handles[i].Index == index {
			fc.handles[i].Label = label
			return
		}
	}
	fc.handles = append(fc.handles, ItemHandle{Index: index, Label: label})
}

// Mount records the screen rectangle for a registered handle. Unregistered
// indices are ignored.
func (fc *Coordinator) Mount(index int, r hit.Rect) {
	for i := range fc.handles {
		if fc.handles[i].Index == index {
			fc.handles[i].Rect = r
			fc.handles[i].mounted = true
			return
		}
	}
}

// MountTrigger records the trigger's screen rectangle.
func (fc *Coordinator) MountTrigger(r hit.Rect) {
	fc.trigger = r
	fc.triggerMounted = true
}

// UnmountTrigger forgets the trigger rectangle. Focus calls against an
// unmounted trigger are no-ops, not errors.
func (fc *Coordinator) UnmountTrigger() {
	fc.trigger = hit.Rect{}
	fc.triggerMounted = false
}

// Len returns the number of registered handles.
func (fc *Coordinator) Len() int {
	return len(fc.handles)
}

// Focused returns the current focus position: FocusTrigger or a handle index.
func (fc *Coordinator) Focused() int {
	return fc.focus
}

// Handle returns the handle at index, if registered.
func (fc *Coordinator) Handle(index int) (ItemHandle, bool) {
	for _, h := range fc.handles {
		if h.Index == index {
			return h, true
		}
	}
	return ItemHandle{}, false
}

// TriggerRect returns the trigger's screen rectangle and whether it is
// mounted.
func (fc *Coordinator) TriggerRect() (hit.Rect, bool) {
	return fc.trigger, fc.triggerMounted
}

// FocusFirst places focus on handle index 0. With no registered handles it is
// a no-op and focus stays on the trigger.
func (fc *Coordinator) FocusFirst() {
	if len(fc.handles) == 0 {
		return
	}
	fc.focus = 0
}

// FocusLast places focus on the final handle; no-op when the set is empty.
func (fc *Coordinator) FocusLast() {
	if len(fc.handles) == 0 {
		return
	}
	fc.focus = len(fc.handles) - 1
}

// FocusIndex places focus on a specific handle index; out-of-range indices
// are ignored.
func (fc *Coordinator) FocusIndex(i int) {
	if i < 0 || i >= len(fc.handles) {
		return
	}
	fc.focus = i
}

// MoveFocus shifts focus one handle in the given direction, wrapping at both
// ends. When focus is not on a registered handle the call is a no-op.
func (fc *Coordinator) MoveFocus(dir Direction) {
	n := len(fc.handles)
	if n == 0 || fc.focus < 0 || fc.focus >= n {
		return
	}
	switch dir {
	case Next:
		fc.focus = (fc.focus + 1) % n
	case Previous:
		fc.focus = (fc.focus - 1 + n) % n
	}
}

// ReturnToTrigger unconditionally places focus back on the trigger, including
// when the trigger is not currently mounted.
func (fc *Coordinator) ReturnToTrigger() {
	fc.focus = FocusTrigger
}
