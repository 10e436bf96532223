package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/cli/formatter"
	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/importer"
)

func newPriceBookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pricebook",
		Aliases: []string{"pb"},
		Short:   "Prijzenboek beheren",
	}
	cmd.AddCommand(
		newPriceBookAddCmd(app),
		newPriceBookListCmd(app),
		newPriceBookImportCmd(app),
		newPriceBookRemoveCmd(app),
	)
	return cmd
}

func newPriceBookAddCmd(app *App) *cobra.Command {
	var code, name, description, kind, sfb string
	var price float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Voeg een prijzenboekregel toe",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &domain.PriceBookEntry{
				Code:        code,
				Name:        name,
				Description: description,
				SFBCode:     sfb,
				Kind:        domain.ParseQuantityKind(kind),
				UnitPrice:   price,
			}
			if err := app.PriceBook.Add(context.Background(), e); err != nil {
				return err
			}
			fmt.Printf("Regel %s %q toegevoegd: %s per %s\n",
				e.Code, e.Name, formatter.Money(e.UnitPrice), e.Kind.UnitName())
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Unieke code, bijv. 22.11.010")
	cmd.Flags().StringVar(&name, "name", "", "Omschrijving")
	cmd.Flags().StringVar(&description, "description", "", "Toelichting")
	cmd.Flags().Float64Var(&price, "price", 0, "Eenheidsprijs")
	cmd.Flags().StringVar(&kind, "kind", "count", "Eenheidssoort")
	cmd.Flags().StringVar(&sfb, "sfb", "", "NL/SfB-code")
	cmd.MarkFlagRequired("code")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newPriceBookListCmd(app *App) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Toon het prijzenboek",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var entries []*domain.PriceBookEntry
			var err error
			if prefix != "" {
				entries, err = app.PriceBook.ListByCodePrefix(ctx, prefix)
			} else {
				entries, err = app.PriceBook.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(formatter.Dim("Geen regels gevonden."))
				return nil
			}
			fmt.Print(formatter.FormatPriceBookTable(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Filter op codeprefix, bijv. 12.")

	return cmd
}

func newPriceBookImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <bestand>",
		Short: "Importeer regels uit een JSON-bestand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := importer.LoadPriceBookFile(args[0])
			if err != nil {
				return err
			}
			entries, err := importer.ConvertEntries(raw)
			if err != nil {
				return err
			}
			if err := app.PriceBook.Import(context.Background(), entries); err != nil {
				return err
			}
			fmt.Printf("%d regels geïmporteerd\n", len(entries))
			return nil
		},
	}
}

func newPriceBookRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <code>",
		Short: "Verwijder een regel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entry, err := app.PriceBook.FindByCode(ctx, args[0])
			if err != nil {
				return fmt.Errorf("price book entry not found: %q", args[0])
			}
			if err := app.PriceBook.Remove(ctx, entry.ID); err != nil {
				return err
			}
			fmt.Printf("Regel %s verwijderd\n", entry.Code)
			return nil
		},
	}
}
