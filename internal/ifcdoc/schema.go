// Package ifcdoc maps the in-memory cost tree to and from the persisted
// interchange document: an ifcJSON-style file holding one project record
// and a forest of nested cost-item records. The core tree never touches
// the file system itself; everything flows through this adapter.
package ifcdoc

import (
	"strconv"
	"strings"
)

// SchemaVersion is written into every document this tool produces.
const SchemaVersion = "IFC4"

// Property-set namespaces for the side channel. The interchange schema
// models classification and cost natively but not rich-text names or
// text-only row markers; those travel in these bags and round-tripping
// depends on them surviving external edits.
const (
	PsetFormatting     = "Pset_CostFormatting"
	PsetClassification = "Pset_CostClassification"
	PsetProjectInfo    = "Pset_ProjectInfo"
	PsetClientInfo     = "Pset_ClientInfo"
	PsetContractorInfo = "Pset_ContractorInfo"

	PropHTMLName   = "HtmlName"
	PropIsTextOnly = "IsTextOnly"
	PropSFBCode    = "SFB_Code"
)

// Document is the top-level persisted structure.
type Document struct {
	Schema        string               `json:"schema"`
	Project       ProjectRecord        `json:"project"`
	CostSchedules []CostScheduleRecord `json:"costSchedules"`
}

// ProjectRecord carries project metadata plus generic property-set bags.
type ProjectRecord struct {
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	PropertySets []PropertySet `json:"propertySets,omitempty"`
}

// CostScheduleRecord is the persisted form of a schedule: attributes plus
// an ordered forest of nested cost-item records.
type CostScheduleRecord struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	PredefinedType string           `json:"predefinedType,omitempty"`
	Status         string           `json:"status,omitempty"`
	SubmittedOn    string           `json:"submittedOn,omitempty"`
	UpdateDate     string           `json:"updateDate,omitempty"`
	VATRate        any              `json:"vatRate,omitempty"`
	CostItems      []CostItemRecord `json:"costItems"`
}

// CostItemRecord is one node of the persisted forest. Each item carries at
// most one cost value and one physical quantity.
type CostItemRecord struct {
	Name           string           `json:"name"`
	Identification string           `json:"identification,omitempty"`
	Description    string           `json:"description,omitempty"`
	CostValue      *CostValueRecord `json:"costValue,omitempty"`
	Quantity       *QuantityRecord  `json:"quantity,omitempty"`
	NestedItems    []CostItemRecord `json:"nestedItems,omitempty"`
	PropertySets   []PropertySet    `json:"propertySets,omitempty"`
}

// CostValueRecord holds the applied unit rate. AppliedValue is loosely
// typed because externally produced records mix numbers and strings.
type CostValueRecord struct {
	AppliedValue any    `json:"appliedValue,omitempty"`
	Category     string `json:"category,omitempty"`
}

// QuantityRecord holds at most one of the known quantity value fields,
// named after the IFC physical quantity classes.
type QuantityRecord struct {
	CountValue  any `json:"countValue,omitempty"`
	LengthValue any `json:"lengthValue,omitempty"`
	AreaValue   any `json:"areaValue,omitempty"`
	VolumeValue any `json:"volumeValue,omitempty"`
	WeightValue any `json:"weightValue,omitempty"`
	TimeValue   any `json:"timeValue,omitempty"`
	NumberValue any `json:"numberValue,omitempty"`
}

// PropertySet is a generic key-value bag attached to a record under a
// fixed namespace name.
type PropertySet struct {
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties"`
}

// floatOrZero coerces a loosely typed JSON value to float64. Absent or
// unparsable values become 0; malformed external data never fails a load.
func floatOrZero(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// getProperty looks up a property value in the named set; empty string
// when the set or key is absent.
func getProperty(psets []PropertySet, setName, key string) string {
	for _, ps := range psets {
		if ps.Name == setName {
			return ps.Properties[key]
		}
	}
	return ""
}

// setProperty writes a property value, creating the named set on first
// use.
func setProperty(psets []PropertySet, setName, key, value string) []PropertySet {
	for i := range psets {
		if psets[i].Name == setName {
			if psets[i].Properties == nil {
				psets[i].Properties = make(map[string]string)
			}
			psets[i].Properties[key] = value
			return psets
		}
	}
	return append(psets, PropertySet{
		Name:       setName,
		Properties: map[string]string{key: value},
	})
}
