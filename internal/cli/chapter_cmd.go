package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// withSchedule opens the document, runs the edit and saves it back.
func withSchedule(app *App, path string, fn func(ctx context.Context, s *domain.CostSchedule) error) error {
	ctx := context.Background()
	schedule, err := app.Schedules.Open(ctx, path)
	if err != nil {
		return err
	}
	if err := fn(ctx, schedule); err != nil {
		return err
	}
	_, err = app.Schedules.Save(ctx, "")
	return err
}

// resolveItem finds an item by identification, trying schedule order.
func resolveItem(s *domain.CostSchedule, identification string) (*domain.CostItem, error) {
	item := s.FindByIdentification(identification)
	if item == nil {
		return nil, fmt.Errorf("item not found: %q", identification)
	}
	return item, nil
}

func newChapterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapter",
		Short: "Hoofdstukken beheren",
	}
	cmd.AddCommand(newChapterAddCmd(app))
	return cmd
}

func newChapterAddCmd(app *App) *cobra.Command {
	var name, code, description string

	cmd := &cobra.Command{
		Use:   "add <bestand>",
		Short: "Voeg een hoofdstuk toe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSchedule(app, args[0], func(ctx context.Context, s *domain.CostSchedule) error {
				chapter, err := app.Schedules.AddChapter(name, code, description)
				if err != nil {
					return err
				}
				fmt.Printf("Hoofdstuk %s %q toegevoegd\n", chapter.Identification, chapter.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Naam van het hoofdstuk")
	cmd.Flags().StringVar(&code, "code", "", "Code (leeg voor automatische nummering)")
	cmd.Flags().StringVar(&description, "description", "", "Omschrijving")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newRenumberCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "renumber <bestand>",
		Short: "Hernummer de hoofdstukken op documentvolgorde",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSchedule(app, args[0], func(ctx context.Context, s *domain.CostSchedule) error {
				app.Schedules.Renumber()
				fmt.Printf("%d hoofdstukken hernummerd\n", len(s.Items))
				return nil
			})
		},
	}
}
