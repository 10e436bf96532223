package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/woutmeijer/bouwkost/internal/cli/formatter"
	"github.com/woutmeijer/bouwkost/internal/domain"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View())
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString(formatter.Dim("  Lege begroting. Druk op h voor een nieuw hoofdstuk.") + "\n")
	} else {
		b.WriteString(m.treeView())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	schedule := m.svc.Schedule()
	if schedule == nil {
		return formatter.Header("bouwkost")
	}
	title := schedule.Name
	if m.svc.IsModified() {
		title += " " + formatter.StyleYellow.Render("●")
	}
	path := m.svc.Path()
	if path == "" {
		path = "(nog niet opgeslagen)"
	}
	return formatter.Header(title) + "\n" + formatter.Dim(path)
}

func (m Model) treeView() string {
	var b strings.Builder
	amountWidth := 14

	for i, item := range m.rows {
		line := m.rowView(item, i == m.cursor)
		// Right-align the amount within the terminal width.
		amount := rowAmount(item)
		if amount != "" {
			pad := m.width - lipgloss.Width(line) - lipgloss.Width(amount) - 1
			if m.width == 0 || pad < 1 {
				pad = amountWidth - lipgloss.Width(amount) + 2
				if pad < 1 {
					pad = 1
				}
			}
			line += strings.Repeat(" ", pad) + amount
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) rowView(item *domain.CostItem, selected bool) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	indent := strings.Repeat("  ", item.Level())

	var title string
	switch {
	case item.IsTextOnly:
		title = formatter.StyleItalic.Render(item.Name)
	case item.IsChapter():
		marker := "▾ "
		if m.collapsed[item] {
			marker = "▸ "
		}
		title = formatter.Dim(marker+item.Identification+" ") + formatter.Bold(item.Name)
	default:
		title = formatter.Dim(item.Identification+" ") + item.Name
		if item.Value.Quantity != 0 {
			title += formatter.Dim(fmt.Sprintf("  %s × %s",
				item.Value.FormatQuantity(), formatter.Money(item.Value.UnitPrice)))
		}
	}
	if selected && !item.IsTextOnly {
		title = cursorStyle.Render(item.Identification + " " + item.Name)
	}

	return prefix + indent + title
}

func rowAmount(item *domain.CostItem) string {
	if item.IsTextOnly {
		return ""
	}
	return formatter.StyleBlue.Render(formatter.Money(item.Subtotal()))
}

func (m Model) footerView() string {
	schedule := m.svc.Schedule()
	var b strings.Builder

	if schedule != nil {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			formatter.Dim("Subtotaal ")+formatter.Money(schedule.Subtotal()),
			formatter.Dim(fmt.Sprintf("BTW %.0f%% ", schedule.VATRate))+formatter.Money(schedule.VATAmount()),
			formatter.Dim("Totaal ")+formatter.Bold(formatter.Money(schedule.Total())),
		))
	}
	if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
	}
	b.WriteString(footerStyle.Render(
		"h hoofdstuk · a post · t tekst · enter bewerken · x verwijderen · spatie klappen · " +
			"K/J verplaatsen · u/ctrl+r undo/redo · n hernummeren · ctrl+s opslaan · q afsluiten"))
	return b.String()
}
