package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/woutmeijer/bouwkost/internal/cli/formatter"
	"github.com/woutmeijer/bouwkost/internal/domain"
)

func budgetHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err != nil {
		return fmt.Errorf("geen geldig getal")
	}
	return nil
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	return v
}

// itemFormValues carries form input as strings; huh binds to string
// pointers and the model converts after submit.
type itemFormValues struct {
	Name     string
	Code     string
	Quantity string
	Price    string
	Kind     string
}

func kindOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(domain.AllQuantityKinds))
	for i, k := range domain.AllQuantityKinds {
		label := k.UnitName()
		if sym := k.UnitSymbol(); sym != "" {
			label += " (" + sym + ")"
		}
		opts[i] = huh.NewOption(label, string(k))
	}
	return opts
}

func newItemForm(title string, v *itemFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(title+": omschrijving").Value(&v.Name),
			huh.NewInput().Title("Code").Placeholder("12.01").Value(&v.Code),
			huh.NewInput().Title("Hoeveelheid").Placeholder("0").Value(&v.Quantity).Validate(validateNumber),
			huh.NewInput().Title("Eenheidsprijs").Placeholder("0,00").Value(&v.Price).Validate(validateNumber),
			huh.NewSelect[string]().Title("Eenheid").Options(kindOptions()...).Value(&v.Kind),
		),
	).WithTheme(budgetHuhTheme()).WithShowHelp(false)
}

func newChapterForm(v *itemFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Hoofdstuk: naam").Value(&v.Name),
			huh.NewInput().Title("Code (leeg voor automatisch)").Placeholder("01").Value(&v.Code),
		),
	).WithTheme(budgetHuhTheme()).WithShowHelp(false)
}

func newTextForm(v *itemFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Tekstregel").Value(&v.Name),
		),
	).WithTheme(budgetHuhTheme()).WithShowHelp(false)
}
