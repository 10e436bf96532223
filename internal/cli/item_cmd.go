package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/cli/formatter"
	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/repository"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Posten beheren",
	}
	cmd.AddCommand(
		newItemAddCmd(app),
		newItemTextCmd(app),
		newItemPostCmd(app),
		newItemRemoveCmd(app),
		newItemMoveCmd(app),
	)
	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var parent, name, code, kind, sfb string
	var qty, price float64

	cmd := &cobra.Command{
		Use:   "add <bestand>",
		Short: "Voeg een post toe onder een hoofdstuk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSchedule(app, args[0], func(ctx context.Context, s *domain.CostSchedule) error {
				chapter, err := resolveItem(s, parent)
				if err != nil {
					return err
				}
				item, err := app.Schedules.AddCostItem(chapter, name, code)
				if err != nil {
					return err
				}
				item.SFBCode = sfb
				item.Value = domain.CostValue{
					Quantity:  qty,
					UnitPrice: price,
					Kind:      domain.ParseQuantityKind(kind),
				}
				fmt.Printf("Post %s %q toegevoegd: %s\n",
					item.Identification, item.Name, formatter.Money(item.Subtotal()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Code van het hoofdstuk")
	cmd.Flags().StringVar(&name, "name", "", "Omschrijving van de post")
	cmd.Flags().StringVar(&code, "code", "", "Postcode, bijv. 12.01")
	cmd.Flags().Float64Var(&qty, "qty", 0, "Hoeveelheid")
	cmd.Flags().Float64Var(&price, "price", 0, "Eenheidsprijs")
	cmd.Flags().StringVar(&kind, "kind", "count", "Eenheidssoort: count, length, area, volume, weight, time, number")
	cmd.Flags().StringVar(&sfb, "sfb", "", "NL/SfB-code")
	cmd.MarkFlagRequired("parent")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newItemTextCmd(app *App) *cobra.Command {
	var parent, text string

	cmd := &cobra.Command{
		Use:   "text <bestand>",
		Short: "Voeg een tekstregel toe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSchedule(app, args[0], func(ctx context.Context, s *domain.CostSchedule) error {
				chapter, err := resolveItem(s, parent)
				if err != nil {
					return err
				}
				if _, err := app.Schedules.AddTextRow(chapter, text); err != nil {
					return err
				}
				fmt.Println("Tekstregel toegevoegd")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Code van het hoofdstuk")
	cmd.Flags().StringVar(&text, "text", "", "Tekst")
	cmd.MarkFlagRequired("parent")
	cmd.MarkFlagRequired("text")

	return cmd
}

func newItemPostCmd(app *App) *cobra.Command {
	var parent, pbCode, code string
	var qty float64

	cmd := &cobra.Command{
		Use:   "post <bestand>",
		Short: "Voeg een post toe vanuit het prijzenboek",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSchedule(app, args[0], func(ctx context.Context, s *domain.CostSchedule) error {
				entry, err := app.PriceBook.FindByCode(ctx, pbCode)
				if err != nil {
					if errors.Is(err, repository.ErrNotFound) {
						return fmt.Errorf("price book entry not found: %q", pbCode)
					}
					return err
				}
				chapter, err := resolveItem(s, parent)
				if err != nil {
					return err
				}
				item := entry.Instantiate(code, qty)
				if chapter.AddChild(item) == nil {
					return fmt.Errorf("cannot add item under %q", chapter.Name)
				}
				fmt.Printf("Post %s %q toegevoegd: %s\n",
					item.Identification, item.Name, formatter.Money(item.Subtotal()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Code van het hoofdstuk")
	cmd.Flags().StringVar(&pbCode, "code", "", "Prijzenboekcode")
	cmd.Flags().StringVar(&code, "as", "", "Postcode in de begroting")
	cmd.Flags().Float64Var(&qty, "qty", 1, "Hoeveelheid")
	cmd.MarkFlagRequired("parent")
	cmd.MarkFlagRequired("code")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <bestand> <code>",
		Short: "Verwijder een post of hoofdstuk",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSchedule(app, args[0], func(ctx context.Context, s *domain.CostSchedule) error {
				item, err := resolveItem(s, args[1])
				if err != nil {
					return err
				}
				if !app.Schedules.RemoveItem(item) {
					return fmt.Errorf("could not remove %q", args[1])
				}
				fmt.Printf("%s %q verwijderd\n", item.Identification, item.Name)
				return nil
			})
		},
	}
}

func newItemMoveCmd(app *App) *cobra.Command {
	var up, down bool

	cmd := &cobra.Command{
		Use:   "move <bestand> <code>",
		Short: "Verplaats een post binnen zijn niveau",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if up == down {
				return fmt.Errorf("specify exactly one of --up or --down")
			}
			return withSchedule(app, args[0], func(ctx context.Context, s *domain.CostSchedule) error {
				item, err := resolveItem(s, args[1])
				if err != nil {
					return err
				}
				if !app.Schedules.MoveItem(item, up) {
					return fmt.Errorf("%q is already at the boundary", args[1])
				}
				fmt.Printf("%s %q verplaatst\n", item.Identification, item.Name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&up, "up", false, "Verplaats omhoog")
	cmd.Flags().BoolVar(&down, "down", false, "Verplaats omlaag")

	return cmd
}
