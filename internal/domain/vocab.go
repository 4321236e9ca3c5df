package domain

// VocabTable maps raw calculation-method tokens to canonical calc types.
// Keys are literal strings from the source schedules: matching is
// case-sensitive and whitespace-exact, and variants not listed fall through
// to the caller's fallback tag. Tables are built once at startup and never
// mutated afterwards.
type VocabTable map[string]CalcType

// Translate resolves a raw token to its canonical calc type, or to fallback
// when the token is not in the table. It never fails: unrecognized vocabulary
// is a classification decision, not an error.
func (t VocabTable) Translate(rawToken string, fallback CalcType) CalcType {
	if mapped, ok := t[rawToken]; ok {
		return mapped
	}
	return fallback
}

// losAngelesVocab covers the calc_method vocabulary observed in the City of
// Los Angeles fee export.
var losAngelesVocab = VocabTable{
	"per_sqft":          CalcPerSquareFoot,
	"per_square_foot":   CalcPerSquareFoot,
	"flat":              CalcFlatFee,
	"flat_fee":          CalcFlatFee,
	"per_unit":          CalcPerUnit,
	"per_dwelling_unit": CalcPerUnit,
	"per_meter":         CalcPerUnit,
	"per_acre":          CalcPerUnit,
	"percentage":        CalcFormula,
	"tiered":            CalcFormula,
	"formula":           CalcFormula,
	"varies":            CalcFormula,
}

// saltLakeVocab covers the category vocabulary observed in the Salt Lake City
// consolidated fee schedule, which mixes development fees with utility and
// service charges and is by far the messiest of the three sources.
var saltLakeVocab = VocabTable{
	"flat":                                    CalcFlatFee,
	"per_month":                               CalcPerUnit,
	"per_eru_per_month":                       CalcPerUnit,
	"monthly_service_fee":                     CalcPerMeterSize,
	"formula_based":                           CalcFormula,
	"per_unit":                                CalcPerUnit,
	"per_square_foot":                         CalcPerSquareFoot,
	"per_sqft":                                CalcPerSquareFoot,
	"per_acre":                                CalcPerUnit,
	"per_month_per_eru":                       CalcPerUnit,
	"per_linear_foot":                         CalcPerUnit,
	"per_dwelling_unit":                       CalcPerUnit,
	"per_fixture_unit":                        CalcPerUnit,
	"per_connection_or_unit":                  CalcPerUnit,
	"hourly":                                  CalcPerUnit,
	"per_hour":                                CalcPerUnit,
	"annual":                                  CalcPerUnit,
	"per_kilowatt_hour":                       CalcPerUnit,
	"per_cleaning":                            CalcPerUnit,
	"per_bale":                                CalcPerUnit,
	"per_yard":                                CalcPerUnit,
	"per_bag":                                 CalcPerUnit,
	"per_job":                                 CalcPerUnit,
	"per_half_day":                            CalcPerUnit,
	"per_job_or_annual":                       CalcPerUnit,
	"monthly_volumetric":                      CalcPerUnit,
	"per_wireless_facility":                   CalcPerUnit,
	"per_device":                              CalcPerUnit,
	"per_valve":                               CalcPerUnit,
	"per_pump":                                CalcPerUnit,
	"per_tank":                                CalcPerUnit,
	"per_system":                              CalcPerUnit,
	"per_sqft_1000":                           CalcPerUnit,
	"per_hydrant":                             CalcPerUnit,
	"per_amp":                                 CalcPerUnit,
	"per_meter":                               CalcPerUnit,
	"per_horsepower":                          CalcPerUnit,
	"per_btu":                                 CalcPerUnit,
	"per_space":                               CalcPerUnit,
	"flat_plus_per_lot":                       CalcFormula,
	"flat_plus_per_acre":                      CalcFormula,
	"flat_plus_per_unit":                      CalcFormula,
	"flat_plus_hourly":                        CalcFormula,
	"flat_plus_actual":                        CalcFormula,
	"flat_plus_per_btu":                       CalcFormula,
	"flat_plus_per_cabinet":                   CalcFormula,
	"flat_plus_per_outlet":                    CalcFormula,
	"flat_per_month":                          CalcPerUnit,
	"percentage":                              CalcFormula,
	"percentage_of_value":                     CalcFormula,
	"formula":                                 CalcFormula,
	"tiered_percentage":                       CalcFormula,
	"cost_of_work":                            CalcFormula,
	"based_on_cost":                           CalcFormula,
	"actual_cost":                             CalcFormula,
	"building_permit_based":                   CalcFormula,
	"regular_fee_schedule":                    CalcFormula,
	"postage":                                 CalcFormula,
	"state_code_based":                        CalcFormula,
	"deposit":                                 CalcFlatFee,
	"reduction":                               CalcFormula,
	"free":                                    CalcFlatFee,
	"no_assessment_levied":                    CalcFlatFee,
	"no_charge":                               CalcFlatFee,
	"see_section":                             CalcFormula,
	"based_on_readings":                       CalcFormula,
	"cost_associated_with_labor_and_testing":  CalcFormula,
	"determined_by_potw":                      CalcFormula,
	"contracted_rate":                         CalcFormula,
	"doubled":                                 CalcFormula,
	"monthly_per_unit_flat":                   CalcPerUnit,
	"annual_plus_actual":                      CalcFormula,
}

// universalVocab is the jurisdiction-agnostic vocabulary used when staging
// exports that already use near-canonical calc tokens. Unlike the two city
// tables it keeps per_acre as its own tag.
var universalVocab = VocabTable{
	"flat_fee":          CalcFlatFee,
	"per_unit":          CalcPerUnit,
	"per_square_foot":   CalcPerSquareFoot,
	"per_acre":          CalcPerAcre,
	"per_meter_size":    CalcPerMeterSize,
	"formula":           CalcFormula,
	"flat":              CalcFlatFee,
	"per_sqft":          CalcPerSquareFoot,
	"per_sq_ft":         CalcPerSquareFoot,
	"per_dwelling_unit": CalcPerUnit,
	"per_linear_foot":   CalcPerUnit,
	"per_lf":            CalcPerUnit,
	"percentage":        CalcFormula,
	"tiered":            CalcFormula,
	"per_trip":          CalcPerUnit,
	"per_lineal_ft":     CalcPerUnit,
}
