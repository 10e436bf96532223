package ifcdoc

import (
	"time"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

const dateLayout = "2006-01-02"

// EncodeSchedule flattens a CostSchedule tree into its persisted record,
// walking every node in order. SFB code, text-only markers and rich-text
// names go into the property-set side channel.
func EncodeSchedule(s *domain.CostSchedule) CostScheduleRecord {
	rec := CostScheduleRecord{
		Name:           s.Name,
		Description:    s.Description,
		PredefinedType: string(s.ScheduleType),
		Status:         string(s.Status),
		UpdateDate:     formatDate(s.UpdateDate),
		SubmittedOn:    formatDate(s.SubmittedOn),
		VATRate:        s.VATRate,
		CostItems:      make([]CostItemRecord, 0, len(s.Items)),
	}
	for _, item := range s.Items {
		rec.CostItems = append(rec.CostItems, encodeItem(item))
	}
	return rec
}

// encodeItem converts one cost item and, recursively, its children.
func encodeItem(item *domain.CostItem) CostItemRecord {
	rec := CostItemRecord{
		Name:           item.Name,
		Identification: item.Identification,
		Description:    item.Description,
	}

	// Chapters carry no value of their own in the document; their total
	// is derived from the nesting.
	if item.IsLeaf() && !item.IsTextOnly {
		rec.CostValue = &CostValueRecord{
			AppliedValue: item.Value.UnitPrice,
			Category:     item.Value.Category,
		}
		rec.Quantity = encodeQuantity(item.Value)
	}

	if item.SFBCode != "" {
		rec.PropertySets = setProperty(rec.PropertySets, PsetClassification, PropSFBCode, item.SFBCode)
	}
	if item.HTMLName != "" {
		rec.PropertySets = setProperty(rec.PropertySets, PsetFormatting, PropHTMLName, item.HTMLName)
	}
	if item.IsTextOnly {
		rec.PropertySets = setProperty(rec.PropertySets, PsetFormatting, PropIsTextOnly, "true")
	}

	for _, child := range item.Children {
		rec.NestedItems = append(rec.NestedItems, encodeItem(child))
	}
	return rec
}

// encodeQuantity writes the quantity into the record field matching its
// kind.
func encodeQuantity(v domain.CostValue) *QuantityRecord {
	q := &QuantityRecord{}
	switch v.Kind {
	case domain.QuantityLength:
		q.LengthValue = v.Quantity
	case domain.QuantityArea:
		q.AreaValue = v.Quantity
	case domain.QuantityVolume:
		q.VolumeValue = v.Quantity
	case domain.QuantityWeight:
		q.WeightValue = v.Quantity
	case domain.QuantityTime:
		q.TimeValue = v.Quantity
	case domain.QuantityNumber:
		q.NumberValue = v.Quantity
	default:
		q.CountValue = v.Quantity
	}
	return q
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
