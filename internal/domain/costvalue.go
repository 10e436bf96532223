package domain

import "fmt"

// CostValue holds the unit price and quantity of a single cost post. The
// total is always derived, never stored. The zero value is usable; negative
// inputs are not rejected here, callers are responsible for domain-sane
// values.
type CostValue struct {
	UnitPrice float64
	Quantity  float64
	Kind      QuantityKind
	Category  string
}

// NewCostValue returns an empty cost value counting pieces.
func NewCostValue() CostValue {
	return CostValue{Kind: QuantityCount}
}

// Total returns quantity times unit price. Unit-agnostic: the quantity kind
// never enters the calculation.
func (v CostValue) Total() float64 {
	return v.Quantity * v.UnitPrice
}

// UnitSymbol returns the display unit of the quantity kind.
func (v CostValue) UnitSymbol() string {
	return v.Kind.UnitSymbol()
}

// UnitName returns the full unit name of the quantity kind.
func (v CostValue) UnitName() string {
	return v.Kind.UnitName()
}

// FormatPrice renders the unit price with a currency prefix.
func (v CostValue) FormatPrice(currency string) string {
	return fmt.Sprintf("%s %s", currency, FormatAmount(v.UnitPrice))
}

// FormatTotal renders the derived total with a currency prefix.
func (v CostValue) FormatTotal(currency string) string {
	return fmt.Sprintf("%s %s", currency, FormatAmount(v.Total()))
}

// FormatQuantity renders the quantity with its unit symbol. Counts are
// shown without decimals.
func (v CostValue) FormatQuantity() string {
	return fmt.Sprintf("%s %s", v.FormatQuantityBare(), v.UnitSymbol())
}

// FormatQuantityBare renders the quantity without its unit, for columns
// and input fields that carry the unit separately.
func (v CostValue) FormatQuantityBare() string {
	if v.Kind == QuantityCount {
		return fmt.Sprintf("%d", int(v.Quantity))
	}
	return FormatAmount(v.Quantity)
}
