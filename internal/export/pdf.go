package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the schedule as a PDF and returns the raw bytes.
func GeneratePDF(data Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Pagina {current} van {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addTotals(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, data Data) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	gray := &props.Color{Red: 80, Green: 80, Blue: 80}
	left := data.ProjectName
	if data.ClientName != "" {
		left += " - " + data.ClientName
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(left, props.Text{Size: 9, Align: align.Left, Color: gray}),
			),
			col.New(6).Add(
				text.New("Datum: "+data.Date, props.Text{Size: 9, Align: align.Right, Color: gray}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Code", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Omschrijving", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Hoev.", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Eenh.", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Prijs", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Bedrag", headerText)).WithStyle(&headerCell),
		),
	)
}

func addTableRow(m core.Maroto, r Row) {
	var cellStyle *props.Cell
	textSize := 7.0
	textStyle := fontstyle.Normal
	prefix := ""

	switch {
	case r.IsChapter && r.Level == 0:
		textStyle = fontstyle.Bold
		textSize = 8
	case r.IsChapter:
		textStyle = fontstyle.Bold
		prefix = "  "
	case r.IsTextOnly:
		textStyle = fontstyle.Italic
		prefix = "  "
	default:
		prefix = "  "
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{Size: textSize, Style: textStyle, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	qty, unit, price, amount := "", "", "", ""
	switch {
	case r.IsTextOnly:
	case r.IsChapter:
		amount = formatMoney(r.Subtotal)
	default:
		qty = formatQuantity(r)
		unit = r.Unit
		price = formatMoney(r.UnitPrice)
		amount = formatMoney(r.Subtotal)
	}

	cols := []core.Col{
		col.New(1).Add(text.New(r.Identification, baseText)),
		col.New(5).Add(text.New(prefix+r.Description, leftText)),
		col.New(1).Add(text.New(qty, rightText)),
		col.New(1).Add(text.New(unit, baseText)),
		col.New(2).Add(text.New(price, rightText)),
		col.New(2).Add(text.New(amount, rightText)),
	}
	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}
	m.AddRows(row.New(7).Add(cols...))
}

func addTotals(m core.Maroto, data Data) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := labelStyle

	for _, line := range summaryLines(data) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(line.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(line.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}
}
