package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideText = `# Integrating the dropdown control

The control is a Bubble Tea component. Construct it once, route messages to
it from your Update, and render it from your View.

## Construction

` + "```go" + `
ctl := dropdown.New("env",
    dropdown.WithPlaceholder("Choose environment"),
    dropdown.WithOptions("Development", "Staging", "Production"),
)
` + "```" + `

## Message routing

Forward key messages to the focused control and mouse messages to every
control. The control reports whether it consumed a message; a Tab that
closes the menu is deliberately left unconsumed so your own focus order
proceeds.

` + "```go" + `
if cmd, handled := ctl.Update(msg); handled {
    return m, cmd
}
` + "```" + `

## The committed value

The control never stores the selection. Apply ValueChangedMsg yourself:

` + "```go" + `
case dropdown.ValueChangedMsg:
    m.value = msg.Value
    ctl.SetValue(msg.Value)
` + "```" + `

## Validation display

Pass the externally computed message with WithError or SetError. While the
error is visible, focusing the trigger emits ErrorFocusMsg so your
validation layer can revalidate. The control decides nothing itself.

## Mouse support

Run your program with ` + "`tea.WithMouseCellMotion()`" + ` and call SetOrigin before
View so the control knows where its rectangles land. A press outside the
open menu closes it; the press is not consumed, so the rest of your
interface still reacts to it.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the integration guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := r.Render(guideText)
		if err != nil {
			return fmt.Errorf("rendering guide: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
