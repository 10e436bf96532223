package formatter

import (
	"fmt"
	"strings"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/ifcdoc"
)

// FormatScheduleInfo renders the summary block shown by "bouwkost info".
func FormatScheduleInfo(s *domain.CostSchedule, project ifcdoc.ProjectData, path string) string {
	var b strings.Builder

	b.WriteString(Header(s.Name))
	b.WriteString("\n")
	if s.Description != "" {
		b.WriteString(Dim(s.Description))
		b.WriteString("\n")
	}

	rows := [][]string{
		{"Bestand", path},
		{"Type", string(s.ScheduleType)},
		{"Status", StatusIndicator(s.Status)},
		{"Hoofdstukken", fmt.Sprintf("%d", len(s.Items))},
		{"Posten", fmt.Sprintf("%d", s.ItemCount())},
	}
	if project.ProjectName != "" {
		rows = append(rows, []string{"Project", project.ProjectName})
	}
	if project.ClientName != "" {
		rows = append(rows, []string{"Opdrachtgever", project.ClientName})
	}
	if project.ContractorName != "" {
		rows = append(rows, []string{"Aannemer", project.ContractorName})
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-15s %s\n", Dim(r[0]), r[1]))
	}

	b.WriteString("\n")
	b.WriteString(FormatTotals(s))
	return b.String()
}

// FormatTotals renders the subtotal, VAT and total lines.
func FormatTotals(s *domain.CostSchedule) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-15s %s\n", Dim("Subtotaal"), Money(s.Subtotal())))
	b.WriteString(fmt.Sprintf("%-15s %s\n", Dim(fmt.Sprintf("BTW %.0f%%", s.VATRate)), Money(s.VATAmount())))
	b.WriteString(fmt.Sprintf("%-15s %s\n", Dim("Totaal"), Bold(Money(s.Total()))))
	return b.String()
}

// FormatPriceBookTable renders price book entries as an aligned table.
func FormatPriceBookTable(entries []*domain.PriceBookEntry) string {
	headers := []string{"Code", "Omschrijving", "Eenheid", "Prijs"}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Code,
			e.Name,
			e.Kind.UnitSymbol(),
			Money(e.UnitPrice),
		}
	}
	return RenderTable(headers, rows)
}

// FormatRecentFiles renders the recent-file list.
func FormatRecentFiles(files []*domain.RecentFile) string {
	headers := []string{"Bestand", "Begroting", "Laatst geopend"}
	rows := make([][]string, len(files))
	for i, f := range files {
		rows[i] = []string{
			f.Path,
			f.ScheduleName,
			f.LastOpenedAt.Local().Format("2006-01-02 15:04"),
		}
	}
	return RenderTable(headers, rows)
}
