package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/cli/formatter"
)

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <bestand>",
		Short: "Toon samenvatting en totalen van een begroting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := app.Schedules.Open(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatScheduleInfo(schedule, app.Schedules.ProjectData(), app.Schedules.Path()))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <bestand>",
		Short: "Toon de begroting als boom met bedragen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := app.Schedules.Open(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header(schedule.Name))
			fmt.Println(formatter.RenderBudgetTree(formatter.ScheduleRows(schedule)))
			fmt.Println()
			fmt.Print(formatter.FormatTotals(schedule))
			return nil
		},
	}
}
