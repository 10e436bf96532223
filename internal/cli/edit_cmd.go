package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/tui"
)

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <bestand>",
		Short: "Open een begroting in de interactieve editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("de editor heeft een terminal nodig; gebruik 'bouwkost show %s' voor een overzicht", args[0])
			}
			return tui.Run(app.Schedules, args[0])
		},
	}
}
