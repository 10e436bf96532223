package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/service"
	"github.com/woutmeijer/bouwkost/internal/tui"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedules service.ScheduleService
	PriceBook service.PriceBookService
	Recents   service.RecentFileService

	// IsInteractive reports whether stdin is a terminal; the bare
	// "bouwkost <file>" invocation opens the editor only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bouwkost" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bouwkost [bestand]",
		Short: "Bouwkosten begrotingen bewerken en exporteren",
		Long: "Bouwkost bewerkt hiërarchische bouwkostenbegrotingen, opgeslagen " +
			"als .ifcjson uitwisselingsbestanden, met prijzenboek en exports " +
			"naar Excel, PDF en HTML.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("de editor heeft een terminal nodig; gebruik 'bouwkost show %s' voor een overzicht", args[0])
			}
			return tui.Run(app.Schedules, args[0])
		},
	}

	root.AddCommand(
		newNewCmd(app),
		newInfoCmd(app),
		newShowCmd(app),
		newChapterCmd(app),
		newItemCmd(app),
		newRenumberCmd(app),
		newExportCmd(app),
		newPriceBookCmd(app),
		newRecentCmd(app),
		newEditCmd(app),
	)

	return root
}
