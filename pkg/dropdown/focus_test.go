package dropdown

import (
	"testing"

	"github.com/marcus/dropdown/pkg/dropdown/hit"
)

func registerAll(fc *Coordinator, options []string) {
	fc.Reset()
	for i, opt := range options {
		fc.Register(i, opt)
	}
}

func TestFocusFirst(t *testing.T) {
	fc := NewCoordinator()

	// Empty set: no-op, focus stays on the trigger
	fc.FocusFirst()
	if fc.Focused() != FocusTrigger {
		t.Errorf("FocusFirst on empty set: focus = %d, want FocusTrigger", fc.Focused())
	}

	registerAll(fc, []string{"Alpha", "Beta", "Gamma"})
	fc.FocusFirst()
	if fc.Focused() != 0 {
		t.Errorf("FocusFirst: focus = %d, want 0", fc.Focused())
	}
}

func TestMoveFocusWraparound(t *testing.T) {
	// For all N >= 1 and all starting indices, next lands on (i+1) mod N and
	// previous on (i-1+N) mod N.
	for n := 1; n <= 5; n++ {
		options := make([]string, n)
		for i := range options {
			options[i] = string(rune('a' + i))
		}

		for i := 0; i < n; i++ {
			fc := NewCoordinator()
			registerAll(fc, options)

			fc.FocusIndex(i)
			fc.MoveFocus(Next)
			if want := (i + 1) % n; fc.Focused() != want {
				t.Errorf("N=%d i=%d MoveFocus(Next) = %d, want %d", n, i, fc.Focused(), want)
			}

			fc.FocusIndex(i)
			fc.MoveFocus(Previous)
			if want := (i - 1 + n) % n; fc.Focused() != want {
				t.Errorf("N=%d i=%d MoveFocus(Previous) = %d, want %d", n, i, fc.Focused(), want)
			}
		}
	}
}

func TestMoveFocusOffHandleNoop(t *testing.T) {
	fc := NewCoordinator()
	registerAll(fc, []string{"a", "b"})

	// Focus on the trigger is not a handle; navigation must not move it.
	fc.MoveFocus(Next)
	if fc.Focused() != FocusTrigger {
		t.Errorf("MoveFocus from trigger: focus = %d, want FocusTrigger", fc.Focused())
	}

	fc.MoveFocus(Previous)
	if fc.Focused() != FocusTrigger {
		t.Errorf("MoveFocus from trigger: focus = %d, want FocusTrigger", fc.Focused())
	}
}

func TestReturnToTrigger(t *testing.T) {
	fc := NewCoordinator()
	registerAll(fc, []string{"a", "b", "c"})
	fc.FocusIndex(2)

	fc.ReturnToTrigger()
	if fc.Focused() != FocusTrigger {
		t.Errorf("ReturnToTrigger: focus = %d, want FocusTrigger", fc.Focused())
	}

	// Unconditional, even when the trigger was never mounted
	fc2 := NewCoordinator()
	fc2.UnmountTrigger()
	fc2.ReturnToTrigger()
	if fc2.Focused() != FocusTrigger {
		t.Errorf("ReturnToTrigger unmounted: focus = %d, want FocusTrigger", fc2.Focused())
	}
	if _, mounted := fc2.TriggerRect(); mounted {
		t.Error("trigger should remain unmounted")
	}
}

func TestRebuildMatchesNewOptions(t *testing.T) {
	fc := NewCoordinator()
	registerAll(fc, []string{"a", "b", "c", "d", "e"})
	if fc.Len() != 5 {
		t.Fatalf("handle count = %d, want 5", fc.Len())
	}

	// Replace with a shorter list; the registry must match the new length
	// and order, and wraparound must follow the new bounds.
	registerAll(fc, []string{"x", "y"})
	if fc.Len() != 2 {
		t.Fatalf("handle count after rebuild = %d, want 2", fc.Len())
	}
	for i, want := range []string{"x", "y"} {
		h, ok := fc.Handle(i)
		if !ok || h.Label != want {
			t.Errorf("handle %d = %q (ok=%v), want %q", i, h.Label, ok, want)
		}
	}

	fc.FocusIndex(1)
	fc.MoveFocus(Next)
	if fc.Focused() != 0 {
		t.Errorf("wraparound after rebuild: focus = %d, want 0", fc.Focused())
	}
}

func TestMountBackfillsRects(t *testing.T) {
	fc := NewCoordinator()
	registerAll(fc, []string{"a", "b"})

	fc.Mount(1, hit.Rect{X: 1, Y: 3, W: 20, H: 1})
	h, ok := fc.Handle(1)
	if !ok {
		t.Fatal("handle 1 not registered")
	}
	if h.Rect != (hit.Rect{X: 1, Y: 3, W: 20, H: 1}) {
		t.Errorf("mounted rect = %+v", h.Rect)
	}

	// Unregistered index is ignored
	fc.Mount(7, hit.Rect{X: 0, Y: 0, W: 1, H: 1})
	if fc.Len() != 2 {
		t.Errorf("handle count = %d, want 2", fc.Len())
	}
}
