package domain

// RawRecord is one row from a jurisdiction's fee-schedule export, keyed by the
// source's own column names. The column set varies per source; absent columns
// are simply missing keys, never an error by themselves.
type RawRecord map[string]string

// CanonicalRecord is one normalized fee row. Every key of the active profile's
// Fields list is present, even when the value is empty. The profile's Fields
// order defines the output column order; the map itself is unordered.
type CanonicalRecord map[string]string

// CalcType is the canonical tag for how a fee amount is computed.
type CalcType = string

// Canonical calc type tags. Profiles recognize slightly different subsets;
// see Profile.CalcTypes.
const (
	CalcFlatFee       CalcType = "flat_fee"
	CalcPerUnit       CalcType = "per_unit"
	CalcPerSquareFoot CalcType = "per_square_foot"
	CalcPerAcre       CalcType = "per_acre"
	CalcPerMeterSize  CalcType = "per_meter_size"
	CalcFormula       CalcType = "formula"
)

// Canonical applies-to categories.
const (
	AppliesResidential = "Residential"
	AppliesCommercial  = "Commercial"
	AppliesIndustrial  = "Industrial"
	AppliesAll         = "All"
)

// AppliesToSeparator joins multiple applies-to categories in one field value.
const AppliesToSeparator = ";"

// MissingColumnError reports a structurally required source column that is
// entirely absent from a raw record. Blank values are not structural failures;
// only a missing key is.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return "missing required column " + e.Column
}
