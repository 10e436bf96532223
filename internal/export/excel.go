package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel renders the schedule as an .xlsx workbook and returns
// the file contents.
func GenerateExcel(data Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Begroting"
	}
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("setting sheet name: %w", err)
	}

	// A: code, B: omschrijving, C: hoeveelheid, D: eenheid, E: prijs, F: bedrag.
	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]
	widths := []float64{10, 48, 12, 8, 14, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("setting column width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("creating title style: %w", err)
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("creating subtitle style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	chapterStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating chapter style: %w", err)
	}
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating item style: %w", err)
	}
	textRowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10, Italic: true},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating text row style: %w", err)
	}
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating summary label style: %w", err)
	}
	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("creating summary value style: %w", err)
	}

	// Title block, rows 1-3.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merging title row: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.ProjectName != "" || data.ClientName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merging project row: %w", err)
		}
		line := data.ProjectName
		if data.ClientName != "" {
			line += " - " + data.ClientName
		}
		f.SetCellValue(sheetName, "A2", sanitizeCell(line))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}
	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merging date row: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Datum: "+data.Date)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// Column headers at row 5.
	headers := []string{"Code", "Omschrijving", "Hoeveelheid", "Eenheid", "Prijs", "Bedrag"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeCell(r.Identification))

		desc := r.Description
		for i := 0; i < r.Level; i++ {
			desc = "  " + desc
		}
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeCell(desc))

		switch {
		case r.IsTextOnly:
			// Text rows carry only the description.
		case r.IsChapter:
			f.SetCellValue(sheetName, "F"+rowStr, formatMoney(r.Subtotal))
		default:
			f.SetCellValue(sheetName, "C"+rowStr, formatQuantity(r))
			f.SetCellValue(sheetName, "D"+rowStr, sanitizeCell(r.Unit))
			f.SetCellValue(sheetName, "E"+rowStr, formatMoney(r.UnitPrice))
			f.SetCellValue(sheetName, "F"+rowStr, formatMoney(r.Subtotal))
		}

		style := itemStyle
		if r.IsChapter {
			style = chapterStyle
		} else if r.IsTextOnly {
			style = textRowStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)
		row++
	}

	// Totals block after a blank row.
	row++
	for _, line := range summaryLines(data) {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+rowStr, line.label)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "F"+rowStr, line.value)
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, summaryValueStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type summaryLine struct {
	label string
	value string
}

func summaryLines(data Data) []summaryLine {
	return []summaryLine{
		{"Subtotaal:", formatMoney(data.Subtotal)},
		{fmt.Sprintf("BTW %.0f%%:", data.VATRate), formatMoney(data.VATAmount)},
		{"Totaal:", formatMoney(data.Total)},
	}
}

// sanitizeCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
