package dropdown

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	primaryColor = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("241")
	accentColor  = lipgloss.Color("45")
	textColor    = lipgloss.Color("252")
	brightColor  = lipgloss.Color("255")
	surfaceColor = lipgloss.Color("237")
	fieldColor   = lipgloss.Color("238")
)

// Styles bundles every style the control renders with. Variants differ only
// in the trigger treatment; menu and item styles are shared.
type Styles struct {
	Trigger            lipgloss.Style
	TriggerOpen        lipgloss.Style
	TriggerFocused     lipgloss.Style
	TriggerPlaceholder lipgloss.Style
	TriggerActive      lipgloss.Style
	TriggerError       lipgloss.Style

	Item         lipgloss.Style
	ItemFocused  lipgloss.Style
	ItemSelected lipgloss.Style
	ItemEmphasis lipgloss.Style

	MenuBorder lipgloss.Style
	ErrorText  lipgloss.Style
	Marker     lipgloss.Style
}

// DefaultStyles returns the style set for a variant.
func DefaultStyles(v Variant) Styles {
	s := Styles{
		Trigger:            lipgloss.NewStyle().Foreground(textColor).Background(fieldColor).Padding(0, 1),
		TriggerOpen:        lipgloss.NewStyle().Foreground(brightColor).Background(surfaceColor).Padding(0, 1),
		TriggerFocused:     lipgloss.NewStyle().Foreground(brightColor).Background(primaryColor).Bold(true).Padding(0, 1),
		TriggerPlaceholder: lipgloss.NewStyle().Foreground(mutedColor).Background(fieldColor).Italic(true).Padding(0, 1),
		TriggerActive:      lipgloss.NewStyle().Foreground(brightColor).Background(accentColor).Padding(0, 1),
		TriggerError:       lipgloss.NewStyle().Foreground(brightColor).Background(errorColor).Padding(0, 1),

		Item:         lipgloss.NewStyle().Foreground(textColor),
		ItemFocused:  lipgloss.NewStyle().Background(surfaceColor).Foreground(brightColor).Bold(true),
		ItemSelected: lipgloss.NewStyle().Foreground(brightColor),
		ItemEmphasis: lipgloss.NewStyle().Foreground(brightColor).Bold(true),

		MenuBorder: lipgloss.NewStyle().Foreground(mutedColor),
		ErrorText:  lipgloss.NewStyle().Foreground(errorColor),
		Marker:     lipgloss.NewStyle().Foreground(primaryColor).Bold(true),
	}

	if v == VariantOutlined {
		s.Trigger = lipgloss.NewStyle().Foreground(textColor).Padding(0, 1)
		s.TriggerOpen = lipgloss.NewStyle().Foreground(brightColor).Underline(true).Padding(0, 1)
		s.TriggerFocused = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Padding(0, 1)
		s.TriggerPlaceholder = lipgloss.NewStyle().Foreground(mutedColor).Italic(true).Padding(0, 1)
		s.TriggerActive = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1)
		s.TriggerError = lipgloss.NewStyle().Foreground(errorColor).Bold(true).Padding(0, 1)
	}
	return s
}
