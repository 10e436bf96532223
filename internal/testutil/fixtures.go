package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// PriceBookEntryOption mutates a fixture entry before use.
type PriceBookEntryOption func(*domain.PriceBookEntry)

func WithUnitPrice(p float64) PriceBookEntryOption {
	return func(e *domain.PriceBookEntry) { e.UnitPrice = p }
}

func WithKind(k domain.QuantityKind) PriceBookEntryOption {
	return func(e *domain.PriceBookEntry) { e.Kind = k }
}

func WithSFBCode(code string) PriceBookEntryOption {
	return func(e *domain.PriceBookEntry) { e.SFBCode = code }
}

// NewPriceBookEntry builds a price book entry fixture with sane defaults.
func NewPriceBookEntry(code, name string, opts ...PriceBookEntryOption) *domain.PriceBookEntry {
	now := time.Now().UTC()
	e := &domain.PriceBookEntry{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Kind:      domain.QuantityCount,
		UnitPrice: 10,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewSampleSchedule builds a small populated schedule: two chapters, two
// leaf posts and one text row, subtotal 1062.50 + 3720.00.
func NewSampleSchedule() *domain.CostSchedule {
	schedule := domain.NewCostSchedule("Testbegroting")

	grondwerk := schedule.CreateChapter("Grondwerk", "01", "")
	ontgraven := domain.NewCostItem("Ontgraven bouwput", "01.01")
	ontgraven.Value = domain.CostValue{UnitPrice: 12.50, Quantity: 85, Kind: domain.QuantityVolume}
	grondwerk.AddChild(ontgraven)

	remark := domain.NewCostItem("Inclusief afvoer", "01.02")
	remark.IsTextOnly = true
	grondwerk.AddChild(remark)

	fundering := schedule.CreateChapter("Fundering", "02", "")
	heien := domain.NewCostItem("Heipalen", "02.01")
	heien.Value = domain.CostValue{UnitPrice: 310, Quantity: 12, Kind: domain.QuantityCount}
	fundering.AddChild(heien)

	return schedule
}
