package domain

import (
	"fmt"
	"time"
)

// DefaultVATRate is the Dutch high VAT percentage applied to new schedules.
const DefaultVATRate = 21.0

// CostSchedule is the root aggregate: schedule-wide metadata plus an
// ordered forest of root cost items. Totals recompute from the live tree
// on every access; there is no memoization.
type CostSchedule struct {
	Name         string
	Description  string
	ScheduleType ScheduleType
	Status       ScheduleStatus
	CreatedDate  time.Time
	UpdateDate   *time.Time
	SubmittedOn  *time.Time
	VATRate      float64
	Items        []*CostItem
}

// NewCostSchedule returns a fresh draft budget with the default VAT rate.
func NewCostSchedule(name string) *CostSchedule {
	return &CostSchedule{
		Name:         name,
		ScheduleType: ScheduleBudget,
		Status:       StatusDraft,
		CreatedDate:  time.Now(),
		VATRate:      DefaultVATRate,
	}
}

// Subtotal is the sum of the root item subtotals, excluding VAT.
func (s *CostSchedule) Subtotal() float64 {
	var sum float64
	for _, item := range s.Items {
		sum += item.Subtotal()
	}
	return sum
}

// VATAmount is the VAT due over the subtotal.
func (s *CostSchedule) VATAmount() float64 {
	return s.Subtotal() * (s.VATRate / 100)
}

// Total is the subtotal including VAT.
func (s *CostSchedule) Total() float64 {
	return s.Subtotal() + s.VATAmount()
}

// ItemCount is the total node count across the whole forest.
func (s *CostSchedule) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += 1 + len(item.Descendants())
	}
	return count
}

// ChapterCount is the number of root items.
func (s *CostSchedule) ChapterCount() int {
	return len(s.Items)
}

// AddItem appends a root item. Root items have no parent but do belong to
// the schedule, transitively through their subtree. Returns the item.
func (s *CostSchedule) AddItem(item *CostItem) *CostItem {
	if item == nil {
		return nil
	}
	item.Parent = nil
	item.setScheduleRecursive(s)
	s.Items = append(s.Items, item)
	return item
}

// InsertItem adds a root item at the given position; out-of-range indexes
// are clamped. Returns the item.
func (s *CostSchedule) InsertItem(index int, item *CostItem) *CostItem {
	if item == nil {
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.Items) {
		index = len(s.Items)
	}
	item.Parent = nil
	item.setScheduleRecursive(s)
	s.Items = append(s.Items, nil)
	copy(s.Items[index+1:], s.Items[index:])
	s.Items[index] = item
	return item
}

// RemoveItem detaches a root item, clearing the schedule reference across
// its subtree. Returns false (no-op) when the item is not a root item.
func (s *CostSchedule) RemoveItem(item *CostItem) bool {
	idx := s.ItemIndex(item)
	if idx < 0 {
		return false
	}
	item.setScheduleRecursive(nil)
	s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
	return true
}

// ItemIndex returns the position of a root item, or -1.
func (s *CostSchedule) ItemIndex(item *CostItem) int {
	for i, it := range s.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// FindByIdentification searches the whole forest depth-first for an exact
// identification match.
func (s *CostSchedule) FindByIdentification(identification string) *CostItem {
	for _, item := range s.Items {
		if found := item.FindByIdentification(identification); found != nil {
			return found
		}
	}
	return nil
}

// AllItems flattens the forest to a pre-order list across all roots.
func (s *CostSchedule) AllItems() []*CostItem {
	var out []*CostItem
	for _, item := range s.Items {
		out = append(out, item)
		out = append(out, item.Descendants()...)
	}
	return out
}

// ItemsAtLevel returns every item whose hierarchy level equals level
// (0 = root items).
func (s *CostSchedule) ItemsAtLevel(level int) []*CostItem {
	var out []*CostItem
	for _, item := range s.AllItems() {
		if item.Level() == level {
			out = append(out, item)
		}
	}
	return out
}

// CreateChapter adds a root chapter. When identification is empty a
// two-digit sequential code is generated once at creation time; it is not
// kept in sync with later reorders or deletes. Call RenumberChapters for
// that.
func (s *CostSchedule) CreateChapter(name, identification, description string) *CostItem {
	if identification == "" {
		identification = fmt.Sprintf("%02d", len(s.Items)+1)
	}
	chapter := NewCostItem(name, identification)
	chapter.Description = description
	return s.AddItem(chapter)
}

// RenumberChapters reassigns sequential two-digit identifications to the
// root items in their current order. A deliberate operation for callers
// to invoke after structural edits; nothing triggers it implicitly.
func (s *CostSchedule) RenumberChapters() {
	for i, item := range s.Items {
		item.Identification = fmt.Sprintf("%02d", i+1)
	}
}

// MarkModified stamps the update date. Financial figures are unaffected.
func (s *CostSchedule) MarkModified() {
	now := time.Now()
	s.UpdateDate = &now
}

// FormatSubtotal renders the subtotal with a currency prefix.
func (s *CostSchedule) FormatSubtotal(currency string) string {
	return fmt.Sprintf("%s %s", currency, FormatAmount(s.Subtotal()))
}

// FormatVAT renders the VAT amount with a currency prefix.
func (s *CostSchedule) FormatVAT(currency string) string {
	return fmt.Sprintf("%s %s", currency, FormatAmount(s.VATAmount()))
}

// FormatTotal renders the VAT-inclusive total with a currency prefix.
func (s *CostSchedule) FormatTotal(currency string) string {
	return fmt.Sprintf("%s %s", currency, FormatAmount(s.Total()))
}
