package dropdown

// Variant selects the visual theme. It has no behavioral effect.
type Variant string

const (
	VariantRegular  Variant = "regular"
	VariantOutlined Variant = "outlined"
)

// Config is the externally supplied control configuration. The host owns it
// and may replace any of it between updates; the control never mutates it.
// Value is the committed selection (controlled-component pattern): the
// control reads it, renders it, and proposes changes via ValueChangedMsg,
// but keeps no internal copy of the truth.
type Config struct {
	ID           string   // associates the trigger with its menu and label
	Name         string   // form submission field name
	Value        string   // committed selection, externally owned
	Placeholder  string   // rendered when nothing real is selected upstream
	Required     bool     // forwarded as a form-required marker
	Options      []string // menu contents in display order, duplicates allowed
	Filter       bool     // filter-display semantics (bold selected option)
	ActiveFilter bool     // alternate active styling in filter mode
	Variant      Variant  // regular | outlined
	ErrorText    string   // validation message shown beneath the trigger
	ShowError    bool     // whether the validation message is visible
}

// Option configures a Control at construction time.
type Option func(*Control)

// WithName sets the form field name.
func WithName(name string) Option {
	return func(c *Control) { c.cfg.Name = name }
}

// WithValue sets the initial committed value.
func WithValue(v string) Option {
	return func(c *Control) { c.cfg.Value = v }
}

// WithPlaceholder sets the placeholder string.
func WithPlaceholder(p string) Option {
	return func(c *Control) { c.cfg.Placeholder = p }
}

// WithRequired marks the control as required.
func WithRequired() Option {
	return func(c *Control) { c.cfg.Required = true }
}

// WithOptions sets the menu contents.
func WithOptions(opts ...string) Option {
	return func(c *Control) { c.cfg.Options = opts }
}

// WithFilterMode switches the control to filter-display semantics.
func WithFilterMode(active bool) Option {
	return func(c *Control) {
		c.cfg.Filter = true
		c.cfg.ActiveFilter = active
	}
}

// WithVariant sets the visual variant.
func WithVariant(v Variant) Option {
	return func(c *Control) { c.cfg.Variant = v }
}

// WithError sets the validation message and its visibility.
func WithError(text string, shown bool) Option {
	return func(c *Control) {
		c.cfg.ErrorText = text
		c.cfg.ShowError = shown
	}
}
