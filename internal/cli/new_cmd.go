package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/cli/formatter"
	"github.com/woutmeijer/bouwkost/internal/ifcdoc"
	"github.com/woutmeijer/bouwkost/internal/stabu"
)

func newNewCmd(app *App) *cobra.Command {
	var name, templateName, templateFile, project, client string

	cmd := &cobra.Command{
		Use:   "new <bestand>",
		Short: "Maak een nieuwe begroting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if templateName != "" && templateFile != "" {
				return fmt.Errorf("--template and --template-file are mutually exclusive")
			}

			switch {
			case templateName != "":
				schema, err := stabu.LoadBuiltin(templateName)
				if err != nil {
					return err
				}
				generated, err := stabu.Execute(schema, name)
				if err != nil {
					return err
				}
				app.Schedules.NewFrom(generated)
			case templateFile != "":
				schema, err := stabu.LoadSchema(templateFile)
				if err != nil {
					return err
				}
				generated, err := stabu.Execute(schema, name)
				if err != nil {
					return err
				}
				app.Schedules.NewFrom(generated)
			default:
				if name == "" {
					name = "Nieuwe Begroting"
				}
				app.Schedules.New(name)
			}

			if project != "" || client != "" {
				app.Schedules.SetProjectData(ifcdoc.ProjectData{
					ProjectName: project,
					ClientName:  client,
				})
			}

			written, err := app.Schedules.Save(ctx, args[0])
			if err != nil {
				return err
			}

			schedule := app.Schedules.Schedule()
			fmt.Printf("Begroting %q aangemaakt in %s\n", schedule.Name, written)
			fmt.Print(formatter.FormatTotals(schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Naam van de begroting")
	cmd.Flags().StringVar(&templateName, "template", "", "Ingebouwd sjabloon (bijv. woning)")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "Pad naar een eigen sjabloonbestand")
	cmd.Flags().StringVar(&project, "project", "", "Projectnaam")
	cmd.Flags().StringVar(&client, "client", "", "Opdrachtgever")

	return cmd
}
