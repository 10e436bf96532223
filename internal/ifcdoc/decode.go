package ifcdoc

import (
	"strings"
	"time"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// quantityField pairs a record accessor with its quantity kind. Decoding
// walks this table in fixed priority order instead of probing attributes
// at runtime.
type quantityField struct {
	kind  domain.QuantityKind
	value func(*QuantityRecord) any
}

var quantityDecodeTable = []quantityField{
	{domain.QuantityCount, func(q *QuantityRecord) any { return q.CountValue }},
	{domain.QuantityLength, func(q *QuantityRecord) any { return q.LengthValue }},
	{domain.QuantityArea, func(q *QuantityRecord) any { return q.AreaValue }},
	{domain.QuantityVolume, func(q *QuantityRecord) any { return q.VolumeValue }},
	{domain.QuantityWeight, func(q *QuantityRecord) any { return q.WeightValue }},
	{domain.QuantityTime, func(q *QuantityRecord) any { return q.TimeValue }},
	{domain.QuantityNumber, func(q *QuantityRecord) any { return q.NumberValue }},
}

// DecodeSchedule builds an in-memory CostSchedule isomorphic to the
// persisted record, preserving item order. Unparsable numerics default to
// 0 and unknown enumeration values fall back to BUDGET/DRAFT; a partially
// populated record never fails the load.
func DecodeSchedule(rec CostScheduleRecord) *domain.CostSchedule {
	name := rec.Name
	if name == "" {
		name = "Onbekende Begroting"
	}
	schedule := domain.NewCostSchedule(name)
	schedule.Description = rec.Description
	schedule.ScheduleType = domain.ParseScheduleType(rec.PredefinedType)
	schedule.Status = domain.ParseScheduleStatus(rec.Status)
	schedule.UpdateDate = parseDate(rec.UpdateDate)
	schedule.SubmittedOn = parseDate(rec.SubmittedOn)
	if rec.VATRate != nil {
		schedule.VATRate = floatOrZero(rec.VATRate)
	}

	for _, itemRec := range rec.CostItems {
		schedule.AddItem(decodeItem(itemRec))
	}
	return schedule
}

// decodeItem converts one cost-item record and its nested children.
func decodeItem(rec CostItemRecord) *domain.CostItem {
	item := domain.NewCostItem(rec.Name, rec.Identification)
	item.Description = rec.Description
	item.Value = decodeValue(rec.CostValue, rec.Quantity)

	item.SFBCode = getProperty(rec.PropertySets, PsetClassification, PropSFBCode)
	item.HTMLName = getProperty(rec.PropertySets, PsetFormatting, PropHTMLName)
	item.IsTextOnly = strings.EqualFold(
		getProperty(rec.PropertySets, PsetFormatting, PropIsTextOnly), "true")

	for _, childRec := range rec.NestedItems {
		item.AddChild(decodeItem(childRec))
	}
	return item
}

// decodeValue combines the cost value and quantity records into a
// CostValue, walking the quantity decision table. Missing records yield
// the COUNT/0 default.
func decodeValue(value *CostValueRecord, quantity *QuantityRecord) domain.CostValue {
	v := domain.NewCostValue()
	if value != nil {
		v.UnitPrice = floatOrZero(value.AppliedValue)
		v.Category = value.Category
	}
	if quantity != nil {
		for _, field := range quantityDecodeTable {
			if raw := field.value(quantity); raw != nil {
				v.Quantity = floatOrZero(raw)
				v.Kind = field.kind
				break
			}
		}
	}
	return v
}

// parseDate reads a date field leniently: YYYY-MM-DD first, RFC 3339 as
// fallback, nil when neither fits.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
