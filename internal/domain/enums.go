package domain

import "strings"

// QuantityKind identifies the unit category of a cost value. The values are
// the IFC physical quantity class names so they round-trip through the
// interchange document unchanged. The kind determines display unit only,
// never calculation.
type QuantityKind string

const (
	QuantityCount  QuantityKind = "IfcQuantityCount"
	QuantityLength QuantityKind = "IfcQuantityLength"
	QuantityArea   QuantityKind = "IfcQuantityArea"
	QuantityVolume QuantityKind = "IfcQuantityVolume"
	QuantityWeight QuantityKind = "IfcQuantityWeight"
	QuantityTime   QuantityKind = "IfcQuantityTime"
	QuantityNumber QuantityKind = "IfcQuantityNumber"
)

// AllQuantityKinds lists the kinds in decode priority order.
var AllQuantityKinds = []QuantityKind{
	QuantityCount, QuantityLength, QuantityArea, QuantityVolume,
	QuantityWeight, QuantityTime, QuantityNumber,
}

var quantitySymbols = map[QuantityKind]string{
	QuantityCount:  "st",
	QuantityLength: "m",
	QuantityArea:   "m²",
	QuantityVolume: "m³",
	QuantityWeight: "kg",
	QuantityTime:   "uur",
	QuantityNumber: "",
}

var quantityNames = map[QuantityKind]string{
	QuantityCount:  "stuks",
	QuantityLength: "meter",
	QuantityArea:   "vierkante meter",
	QuantityVolume: "kubieke meter",
	QuantityWeight: "kilogram",
	QuantityTime:   "uur",
	QuantityNumber: "nummer",
}

// UnitSymbol returns the short display unit for the kind ("m²", "st", ...).
func (k QuantityKind) UnitSymbol() string {
	return quantitySymbols[k]
}

// UnitName returns the full display name of the unit.
func (k QuantityKind) UnitName() string {
	return quantityNames[k]
}

// ParseQuantityKind maps a raw string onto a QuantityKind, accepting the
// IFC class name or its short form ("volume" for IfcQuantityVolume) with
// any casing. Unknown input defaults to QuantityCount; externally sourced
// records are often partially populated and must not fail the load.
func ParseQuantityKind(s string) QuantityKind {
	for _, k := range AllQuantityKinds {
		if strings.EqualFold(s, string(k)) {
			return k
		}
		short := strings.TrimPrefix(string(k), "IfcQuantity")
		if strings.EqualFold(s, short) {
			return k
		}
	}
	return QuantityCount
}

// ScheduleType classifies a cost schedule, mirroring the predefined types
// of the interchange format.
type ScheduleType string

const (
	ScheduleBudget             ScheduleType = "BUDGET"
	ScheduleCostPlan           ScheduleType = "COSTPLAN"
	ScheduleEstimate           ScheduleType = "ESTIMATE"
	ScheduleTender             ScheduleType = "TENDER"
	SchedulePricedBillOfQty    ScheduleType = "PRICEDBILLOFQUANTITIES"
	ScheduleUnpricedBillOfQty  ScheduleType = "UNPRICEDBILLOFQUANTITIES"
	ScheduleOfRates            ScheduleType = "SCHEDULEOFRATES"
)

var validScheduleTypes = map[ScheduleType]bool{
	ScheduleBudget: true, ScheduleCostPlan: true, ScheduleEstimate: true,
	ScheduleTender: true, SchedulePricedBillOfQty: true,
	ScheduleUnpricedBillOfQty: true, ScheduleOfRates: true,
}

// ParseScheduleType maps a raw string onto a ScheduleType, defaulting to
// ScheduleBudget for anything it does not recognize.
func ParseScheduleType(s string) ScheduleType {
	t := ScheduleType(strings.ToUpper(strings.TrimSpace(s)))
	if validScheduleTypes[t] {
		return t
	}
	return ScheduleBudget
}

// ScheduleStatus is a user-set workflow label. No transition rules are
// enforced here.
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "DRAFT"
	StatusApproved  ScheduleStatus = "APPROVED"
	StatusSubmitted ScheduleStatus = "SUBMITTED"
	StatusRejected  ScheduleStatus = "REJECTED"
)

var validScheduleStatuses = map[ScheduleStatus]bool{
	StatusDraft: true, StatusApproved: true,
	StatusSubmitted: true, StatusRejected: true,
}

// ParseScheduleStatus maps a raw string onto a ScheduleStatus, defaulting
// to StatusDraft.
func ParseScheduleStatus(s string) ScheduleStatus {
	st := ScheduleStatus(strings.ToUpper(strings.TrimSpace(s)))
	if validScheduleStatuses[st] {
		return st
	}
	return StatusDraft
}
