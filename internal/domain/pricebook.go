package domain

import "time"

// PriceBookEntry is a reusable standard cost post kept in the workspace
// database, independent of any open document.
type PriceBookEntry struct {
	ID          string
	Code        string
	Name        string
	Description string
	SFBCode     string
	Kind        QuantityKind
	UnitPrice   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Instantiate builds a detached leaf cost item from the entry with the
// given identification and quantity, ready to be attached to a chapter.
func (e *PriceBookEntry) Instantiate(identification string, quantity float64) *CostItem {
	item := NewCostItem(e.Name, identification)
	item.Description = e.Description
	item.SFBCode = e.SFBCode
	item.Value = CostValue{
		UnitPrice: e.UnitPrice,
		Quantity:  quantity,
		Kind:      e.Kind,
	}
	return item
}

// RecentFile records a document the editor opened, most recent first when
// listed.
type RecentFile struct {
	Path         string
	ScheduleName string
	LastOpenedAt time.Time
}
