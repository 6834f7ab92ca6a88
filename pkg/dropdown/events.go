package dropdown

// ValueChangedMsg is emitted when a menu item is committed. Value carries the
// chosen option's text trimmed of surrounding whitespace. Exactly one message
// is emitted per commit; the control keeps no copy of the value.
type ValueChangedMsg struct {
	ID    string
	Value string
}

// ErrorFocusMsg is emitted when the trigger receives focus while the error is
// shown, so an external validation collaborator can react. The control itself
// performs no validation.
type ErrorFocusMsg struct {
	ID string
}

// armMsg arms the outside-interaction detector. It is delivered as a command
// result, which resolves after the update that opened the menu, so the
// detector never observes the interaction that caused the open itself.
type armMsg struct {
	id  string
	gen uint64
}
