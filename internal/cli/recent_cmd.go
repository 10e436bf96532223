package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/cli/formatter"
)

func newRecentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Recent geopende bestanden",
	}
	cmd.AddCommand(newRecentListCmd(app), newRecentForgetCmd(app))
	return cmd
}

func newRecentListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Toon recent geopende bestanden",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := app.Recents.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println(formatter.Dim("Geen recente bestanden."))
				return nil
			}
			fmt.Print(formatter.FormatRecentFiles(files))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum aantal bestanden")

	return cmd
}

func newRecentForgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <bestand>",
		Short: "Verwijder een bestand uit de lijst",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Recents.Forget(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s vergeten\n", args[0])
			return nil
		},
	}
}
