package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantityKind_Units(t *testing.T) {
	assert.Equal(t, "st", QuantityCount.UnitSymbol())
	assert.Equal(t, "m³", QuantityVolume.UnitSymbol())
	assert.Equal(t, "", QuantityNumber.UnitSymbol())
	assert.Equal(t, "vierkante meter", QuantityArea.UnitName())
}

func TestParseQuantityKind(t *testing.T) {
	assert.Equal(t, QuantityArea, ParseQuantityKind("IfcQuantityArea"))
	assert.Equal(t, QuantityWeight, ParseQuantityKind("ifcquantityweight"))
	assert.Equal(t, QuantityVolume, ParseQuantityKind("volume"))
	assert.Equal(t, QuantityTime, ParseQuantityKind("Time"))
	assert.Equal(t, QuantityCount, ParseQuantityKind(""))
	assert.Equal(t, QuantityCount, ParseQuantityKind("garbage"))
}

func TestParseScheduleType_DefaultsToBudget(t *testing.T) {
	assert.Equal(t, ScheduleTender, ParseScheduleType("tender"))
	assert.Equal(t, SchedulePricedBillOfQty, ParseScheduleType(" PRICEDBILLOFQUANTITIES "))
	assert.Equal(t, ScheduleBudget, ParseScheduleType("something else"))
	assert.Equal(t, ScheduleBudget, ParseScheduleType(""))
}

func TestParseScheduleStatus_DefaultsToDraft(t *testing.T) {
	assert.Equal(t, StatusApproved, ParseScheduleStatus("approved"))
	assert.Equal(t, StatusDraft, ParseScheduleStatus("unknown"))
	assert.Equal(t, StatusDraft, ParseScheduleStatus(""))
}

func TestCostValue_Total(t *testing.T) {
	v := CostValue{UnitPrice: 12.50, Quantity: 85, Kind: QuantityVolume}
	assert.InDelta(t, 1062.5, v.Total(), 1e-9)
	assert.Zero(t, NewCostValue().Total())
}

func TestCostValue_Format(t *testing.T) {
	v := CostValue{UnitPrice: 1250, Quantity: 3, Kind: QuantityCount}
	assert.Equal(t, "€ 1,250.00", v.FormatPrice("€"))
	assert.Equal(t, "€ 3,750.00", v.FormatTotal("€"))
	assert.Equal(t, "3 st", v.FormatQuantity())

	area := CostValue{Quantity: 42.5, Kind: QuantityArea}
	assert.Equal(t, "42.50 m²", area.FormatQuantity())
	assert.Equal(t, "42.50", area.FormatQuantityBare())
	assert.Equal(t, "3", v.FormatQuantityBare())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "999.90", FormatAmount(999.9))
	assert.Equal(t, "1,062.50", FormatAmount(1062.5))
	assert.Equal(t, "1,234,567.89", FormatAmount(1234567.89))
	assert.Equal(t, "-12,000.00", FormatAmount(-12000))
}
