package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/ifcdoc"
	"github.com/woutmeijer/bouwkost/internal/testutil"
)

func TestFormatScheduleInfo_ShowsCountsAndProject(t *testing.T) {
	s := testutil.NewSampleSchedule()
	project := ifcdoc.ProjectData{
		ProjectName:    "Nieuwbouw woning",
		ClientName:     "Fam. Jansen",
		ContractorName: "Bouwbedrijf De Vries",
	}

	out := FormatScheduleInfo(s, project, "begroting.ifcjson")

	assert.Contains(t, out, "Testbegroting")
	assert.Contains(t, out, "begroting.ifcjson")
	assert.Contains(t, out, "Nieuwbouw woning")
	assert.Contains(t, out, "Fam. Jansen")
	assert.Contains(t, out, "Bouwbedrijf De Vries")
	assert.Contains(t, out, "2") // chapter count
}

func TestFormatScheduleInfo_OmitsEmptyProjectFields(t *testing.T) {
	out := FormatScheduleInfo(testutil.NewSampleSchedule(), ifcdoc.ProjectData{}, "x.ifcjson")

	assert.NotContains(t, out, "Opdrachtgever")
	assert.NotContains(t, out, "Aannemer")
}

func TestFormatTotals_VATLines(t *testing.T) {
	out := FormatTotals(testutil.NewSampleSchedule())

	assert.Contains(t, out, "Subtotaal")
	assert.Contains(t, out, "€ 4,782.50")
	assert.Contains(t, out, "BTW 21%")
	assert.Contains(t, out, "€ 1,004.3")
	assert.Contains(t, out, "€ 5,786.8")
}

func TestFormatPriceBookTable(t *testing.T) {
	entries := []*domain.PriceBookEntry{
		testutil.NewPriceBookEntry("22.10.01", "Metselwerk buitenspouwblad",
			testutil.WithKind(domain.QuantityArea), testutil.WithUnitPrice(86.50)),
	}

	out := FormatPriceBookTable(entries)

	assert.Contains(t, out, "22.10.01")
	assert.Contains(t, out, "Metselwerk buitenspouwblad")
	assert.Contains(t, out, "m²")
	assert.Contains(t, out, "€ 86.50")
}

func TestFormatRecentFiles(t *testing.T) {
	opened := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	files := []*domain.RecentFile{
		{Path: "/tmp/woning.ifcjson", ScheduleName: "Woning", LastOpenedAt: opened},
	}

	out := FormatRecentFiles(files)

	assert.Contains(t, out, "/tmp/woning.ifcjson")
	assert.Contains(t, out, "Woning")
	assert.Contains(t, out, "2026-03-14")
}
