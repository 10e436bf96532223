package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// BudgetRow is a single line of a rendered budget tree.
type BudgetRow struct {
	Identification string
	Title          string
	Level          int
	IsLast         bool
	IsChapter      bool
	IsTextOnly     bool
	Quantity       string
	Unit           string
	Amount         string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// ScheduleRows flattens a schedule into display rows in document order.
func ScheduleRows(s *domain.CostSchedule) []BudgetRow {
	var rows []BudgetRow
	for i, item := range s.Items {
		rows = appendItemRows(rows, item, i == len(s.Items)-1)
	}
	return rows
}

func appendItemRows(rows []BudgetRow, item *domain.CostItem, isLast bool) []BudgetRow {
	row := BudgetRow{
		Identification: item.Identification,
		Title:          item.Name,
		Level:          item.Level(),
		IsLast:         isLast,
		IsChapter:      item.IsChapter(),
		IsTextOnly:     item.IsTextOnly,
	}
	switch {
	case item.IsTextOnly:
	case item.IsChapter():
		row.Amount = Money(item.Subtotal())
	default:
		row.Quantity = item.Value.FormatQuantityBare()
		row.Unit = item.Value.UnitSymbol()
		row.Amount = Money(item.Subtotal())
	}
	rows = append(rows, row)
	for i, child := range item.Children {
		rows = appendItemRows(rows, child, i == len(item.Children)-1)
	}
	return rows
}

// RenderBudgetTree renders budget rows as an indented tree using
// box-drawing connectors. Chapters are bold, text rows dim italic, and
// amounts are right-aligned past the widest line.
func RenderBudgetTree(rows []BudgetRow) string {
	if len(rows) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		amount  string
	}

	lines := make([]lineInfo, len(rows))
	maxWidth := 0

	for idx, row := range rows {
		var prefix string
		if row.Level > 0 {
			for i := 1; i < row.Level; i++ {
				prefix += treePipe
			}
			if row.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := row.Title
		if row.Identification != "" {
			title = StyleDim.Render(row.Identification+" ") + title
		}

		switch {
		case row.IsTextOnly:
			title = StyleItalic.Render(row.Title)
		case row.IsChapter:
			title = StyleDim.Render(row.Identification+" ") + Bold(row.Title)
		default:
			if row.Quantity != "" {
				title += Dim("  " + row.Quantity + " " + row.Unit)
			}
		}

		lines[idx].content = prefix + title
		if row.Amount != "" {
			lines[idx].amount = StyleBlue.Render(row.Amount)
		}
		if w := lipgloss.Width(lines[idx].content); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line.content)
		if line.amount != "" {
			pad := maxWidth - lipgloss.Width(line.content) + 2
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(line.amount)
		}
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
