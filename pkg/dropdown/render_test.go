package dropdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/marcus/dropdown/pkg/dropdown/hit"
)

func TestIsSelectedExactEquality(t *testing.T) {
	tests := []struct {
		value    string
		option   string
		expected bool
	}{
		{"Beta", "Beta", true},
		{"Beta", "beta", false}, // case differs
		{"Beta", " Beta", false},
		{"Beta", "Beta ", false},
		{"", "", true},
		{"", " ", false}, // whitespace-only is distinct from empty
		{" ", " ", true},
		{"a", "", false},
	}

	for _, tt := range tests {
		c := New("x", WithValue(tt.value))
		if got := c.IsSelected(tt.option); got != tt.expected {
			t.Errorf("IsSelected(%q) with value %q = %v, want %v", tt.option, tt.value, got, tt.expected)
		}
	}
}

func TestItemFlags(t *testing.T) {
	c := New("x", WithOptions("a", "b", "c"), WithValue("b"), WithFilterMode(false))

	tests := []struct {
		idx      int
		expected itemFlags
	}{
		{0, itemFlags{First: true}},
		{1, itemFlags{Selected: true, Emphasized: true}},
		{2, itemFlags{Last: true}},
		{-1, itemFlags{}},
		{3, itemFlags{}},
	}
	for _, tt := range tests {
		if got := c.itemFlagsAt(tt.idx); got != tt.expected {
			t.Errorf("itemFlagsAt(%d) = %+v, want %+v", tt.idx, got, tt.expected)
		}
	}

	// Without filter mode the selected option is not emphasized.
	plain := New("y", WithOptions("a", "b"), WithValue("b"))
	if got := plain.itemFlagsAt(1); got.Emphasized {
		t.Error("emphasis requires filter mode")
	}

	// A single option is both first and last.
	solo := New("z", WithOptions("only"))
	if got := solo.itemFlagsAt(0); !got.First || !got.Last {
		t.Errorf("single option flags = %+v, want First and Last", got)
	}
}

func TestPlaceholderStateDerivedEachRender(t *testing.T) {
	c := New("x", WithPlaceholder("Pick one"), WithValue("Pick one"))

	if st := c.triggerState(); !st.Placeholder {
		t.Error("value equal to placeholder should show placeholder styling")
	}

	// Changing the value is re-evaluated, no caching.
	c.SetValue("Alpha")
	if st := c.triggerState(); st.Placeholder {
		t.Error("real value should not show placeholder styling")
	}

	// An equal-content string set through a different path matches again.
	c.SetValue(strings.TrimSpace("  Pick one  "))
	if st := c.triggerState(); !st.Placeholder {
		t.Error("equal-content value should show placeholder styling again")
	}
}

func TestTriggerStatePrecedence(t *testing.T) {
	c := New("x", WithOptions("a"), WithError("bad", true), WithFilterMode(true))
	c.Focus()
	openByKey(t, c)

	st := c.triggerState()
	if !st.Open || !st.Focused || !st.ActiveFilter || !st.Error {
		t.Errorf("trigger state = %+v, want all flags set", st)
	}
	if got := c.triggerStyle(st); !reflect.DeepEqual(got, c.styles.TriggerError) {
		t.Error("error styling should take precedence")
	}

	st.Error = false
	if got := c.triggerStyle(st); !reflect.DeepEqual(got, c.styles.TriggerOpen) {
		t.Error("open styling should follow error")
	}
}

func TestViewMountsRects(t *testing.T) {
	c := New("x", WithOptions("a", "b", "c"))
	openByKey(t, c)
	c.SetOrigin(5, 3)
	_ = c.View(24)

	tr, mounted := c.Coordinator().TriggerRect()
	if !mounted {
		t.Fatal("trigger should be mounted after render")
	}
	if tr != (hit.Rect{X: 5, Y: 3, W: 24, H: 1}) {
		t.Errorf("trigger rect = %+v", tr)
	}

	for i := 0; i < 3; i++ {
		h, ok := c.Coordinator().Handle(i)
		if !ok {
			t.Fatalf("handle %d missing", i)
		}
		want := hit.Rect{X: 6, Y: 3 + 2 + i, W: 22, H: 1}
		if h.Rect != want {
			t.Errorf("item %d rect = %+v, want %+v", i, h.Rect, want)
		}
	}

	if c.menuSurface != (hit.Rect{X: 5, Y: 4, W: 24, H: 5}) {
		t.Errorf("menu surface = %+v", c.menuSurface)
	}
}

func TestViewShowsErrorText(t *testing.T) {
	c := New("x", WithError("Selection is required", true))
	out := c.View(40)
	if !strings.Contains(out, "Selection is required") {
		t.Error("visible error text should render beneath the trigger")
	}

	c.SetError("Selection is required", false)
	out = c.View(40)
	if strings.Contains(out, "Selection is required") {
		t.Error("hidden error text should not render")
	}
}

func TestViewMarksSelectedOption(t *testing.T) {
	c := New("x", WithOptions("Alpha", "Beta"), WithValue("Beta"))
	openByKey(t, c)
	c.SetOrigin(0, 0)
	out := c.View(24)
	if !strings.Contains(out, "✓") {
		t.Error("selected option should carry the check indicator")
	}
}

func TestHeight(t *testing.T) {
	c := New("x", WithOptions("a", "b", "c"))
	if got := c.Height(); got != 1 {
		t.Errorf("closed height = %d, want 1", got)
	}

	c.SetError("bad", true)
	if got := c.Height(); got != 2 {
		t.Errorf("closed height with error = %d, want 2", got)
	}

	openByKey(t, c)
	if got := c.Height(); got != 7 {
		t.Errorf("open height = %d, want 7 (trigger + 3 items + borders + error)", got)
	}

	// Height matches the rendered line count.
	c.SetOrigin(0, 0)
	if lines := strings.Count(c.View(24), "\n") + 1; lines != c.Height() {
		t.Errorf("rendered %d lines, Height() = %d", lines, c.Height())
	}
}
