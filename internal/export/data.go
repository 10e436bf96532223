// Package export renders a cost schedule to Excel, PDF and HTML. The
// tree is flattened once into rows; every renderer works from the same
// flat form.
package export

import (
	"time"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/ifcdoc"
)

// Row is one line of the flattened schedule.
type Row struct {
	Level          int
	Identification string
	Description    string
	IsChapter      bool
	IsTextOnly     bool
	Quantity       float64
	QuantityKind   domain.QuantityKind
	Unit           string
	UnitPrice      float64
	Subtotal       float64
}

// Data holds everything the renderers need.
type Data struct {
	Title          string
	ProjectName    string
	ClientName     string
	ContractorName string
	Date           string
	Rows           []Row
	Subtotal       float64
	VATRate        float64
	VATAmount      float64
	Total          float64
}

// Build flattens a schedule in document order. Chapters carry their
// summed subtotal, text rows carry nothing.
func Build(s *domain.CostSchedule, project ifcdoc.ProjectData) Data {
	data := Data{
		Title:          s.Name,
		ProjectName:    project.ProjectName,
		ClientName:     project.ClientName,
		ContractorName: project.ContractorName,
		Date:           time.Now().Format("2006-01-02"),
		Subtotal:       s.Subtotal(),
		VATRate:        s.VATRate,
		VATAmount:      s.VATAmount(),
		Total:          s.Total(),
	}
	if s.UpdateDate != nil {
		data.Date = s.UpdateDate.Format("2006-01-02")
	}
	for _, item := range s.AllItems() {
		row := Row{
			Level:          item.Level(),
			Identification: item.Identification,
			Description:    item.Name,
			IsChapter:      item.IsChapter(),
			IsTextOnly:     item.IsTextOnly,
			Subtotal:       item.Subtotal(),
		}
		if !item.IsChapter() && !item.IsTextOnly {
			row.Quantity = item.Value.Quantity
			row.QuantityKind = item.Value.Kind
			row.Unit = item.Value.UnitSymbol()
			row.UnitPrice = item.Value.UnitPrice
		}
		if item.IsTextOnly {
			row.Subtotal = 0
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// formatMoney renders an amount the way the editor shows it.
func formatMoney(v float64) string {
	return "€ " + domain.FormatAmount(v)
}

// formatQuantity renders counts without decimals.
func formatQuantity(r Row) string {
	if r.IsChapter || r.IsTextOnly {
		return ""
	}
	v := domain.CostValue{Quantity: r.Quantity, Kind: r.QuantityKind}
	return v.FormatQuantityBare()
}
