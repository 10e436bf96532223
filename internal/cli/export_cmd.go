package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export <bestand>",
		Short: "Exporteer een begroting naar Excel, PDF of HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := app.Schedules.Open(context.Background(), args[0])
			if err != nil {
				return err
			}
			data := export.Build(schedule, app.Schedules.ProjectData())

			format = strings.ToLower(format)
			var content []byte
			switch format {
			case "xlsx", "excel":
				format = "xlsx"
				content, err = export.GenerateExcel(data)
			case "pdf":
				content, err = export.GeneratePDF(data)
			case "html":
				content, err = export.GenerateHTML(data)
			default:
				return fmt.Errorf("unknown format %q: use xlsx, pdf or html", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				output = base + "." + format
			}
			if err := os.WriteFile(output, content, 0644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Printf("Begroting geëxporteerd naar %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "xlsx", "Exportformaat: xlsx, pdf of html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Doelbestand (standaard naast het bronbestand)")

	return cmd
}
