package export

import (
	"bytes"
	"fmt"
	"html/template"
)

// htmlPage is the standalone report layout. Styling stays inline so the
// file opens without any assets next to it.
const htmlPage = `<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Segoe UI", Arial, sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.5em; margin-bottom: 0.2em; }
p.meta { color: #555; margin-top: 0; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th { background: #333; color: #fff; padding: 6px 8px; text-align: left; }
td { border: 1px solid #ccc; padding: 4px 8px; }
tr.chapter td { font-weight: bold; background: #f0f0f0; }
tr.textrow td { font-style: italic; color: #555; }
td.num { text-align: right; white-space: nowrap; }
tfoot td { font-weight: bold; border: none; padding-top: 6px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.ProjectLine}}Datum: {{.Date}}</p>
<table>
<thead>
<tr><th>Code</th><th>Omschrijving</th><th>Hoeveelheid</th><th>Eenheid</th><th>Prijs</th><th>Bedrag</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr class="{{.Class}}">
<td>{{.Identification}}</td>
<td style="padding-left: {{.Indent}}em">{{.Description}}</td>
<td class="num">{{.Quantity}}</td>
<td>{{.Unit}}</td>
<td class="num">{{.Price}}</td>
<td class="num">{{.Amount}}</td>
</tr>
{{end}}</tbody>
<tfoot>
{{range .Summary}}<tr><td colspan="5" class="num">{{.Label}}</td><td class="num">{{.Value}}</td></tr>
{{end}}</tfoot>
</table>
</body>
</html>
`

type htmlRow struct {
	Class          string
	Indent         float64
	Identification string
	Description    string
	Quantity       string
	Unit           string
	Price          string
	Amount         string
}

type htmlSummary struct {
	Label string
	Value string
}

type htmlContext struct {
	Title       string
	ProjectLine string
	Date        string
	Rows        []htmlRow
	Summary     []htmlSummary
}

var htmlTmpl = template.Must(template.New("report").Parse(htmlPage))

// GenerateHTML renders the schedule as a self-contained HTML page.
func GenerateHTML(data Data) ([]byte, error) {
	ctx := htmlContext{
		Title: data.Title,
		Date:  data.Date,
	}
	if data.ProjectName != "" {
		ctx.ProjectLine = data.ProjectName
		if data.ClientName != "" {
			ctx.ProjectLine += " - " + data.ClientName
		}
		ctx.ProjectLine += " · "
	}
	for _, r := range data.Rows {
		hr := htmlRow{
			Indent:         float64(r.Level),
			Identification: r.Identification,
			Description:    r.Description,
		}
		switch {
		case r.IsTextOnly:
			hr.Class = "textrow"
		case r.IsChapter:
			hr.Class = "chapter"
			hr.Amount = formatMoney(r.Subtotal)
		default:
			hr.Class = "item"
			hr.Quantity = formatQuantity(r)
			hr.Unit = r.Unit
			hr.Price = formatMoney(r.UnitPrice)
			hr.Amount = formatMoney(r.Subtotal)
		}
		ctx.Rows = append(ctx.Rows, hr)
	}
	for _, line := range summaryLines(data) {
		ctx.Summary = append(ctx.Summary, htmlSummary{Label: line.label, Value: line.value})
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("rendering html report: %w", err)
	}
	return buf.Bytes(), nil
}
