package domain

import "fmt"

// Profile is the immutable configuration for one normalization pipeline. It
// carries everything that differs between sources: the output column set and
// order, the vocabulary table and its fallback, where the calc token and rate
// come from, which date layouts to attempt, and which source columns are
// structurally required. Profiles are built once at startup and passed
// explicitly; nothing in the engine reaches for package-level state.
type Profile struct {
	Name string

	// Fields is the fixed output column order. Every normalized record
	// contains exactly these keys.
	Fields []string

	// Vocab translates raw calc tokens; FallbackCalcType is assigned to any
	// token the table does not list.
	Vocab            VocabTable
	FallbackCalcType CalcType

	// CalcTypes enumerates the tags this profile can emit, used by output
	// validation.
	CalcTypes []CalcType

	// CalcSources are tried in order for the raw calc token. When
	// NormalizeCalcToken is set the first present non-blank source wins and
	// the token is trimmed and lowercased before lookup; otherwise the first
	// present source's value is used verbatim, preserving the exact-match
	// behavior of the single-source city pipelines. DefaultCalcToken applies
	// when every source is missing.
	CalcSources        []string
	NormalizeCalcToken bool
	DefaultCalcToken   string

	// RateSources are coalesced in priority order for the rate field.
	RateSources []string

	// DateLayouts are attempted in order by NormalizeDate.
	DateLayouts []string

	// Required lists source columns whose outright absence makes the row
	// unprocessable. Blank values are fine; a missing key is not.
	Required []string

	// DefaultInput and DefaultOutput, when set, let the command run without
	// positional path arguments.
	DefaultInput  string
	DefaultOutput string
}

// stagingFields is the reduced column set shared by the two city pipelines,
// which stage into the fee table variant that carries a formula column and no
// unit/sqft bracket columns.
var stagingFields = []string{
	"state_name", "jurisdiction_name", "agency_name", "fee_name",
	"calc_type", "description", "unit_label", "rate", "formula",
	"applies_to", "use_subtype", "service_area_name", "source_url",
	"legal_citation", "effective_date",
}

// universalFields is the full canonical column set, including the unit and
// square-footage bracket columns.
var universalFields = []string{
	"state_name", "jurisdiction_name", "agency_name", "fee_name",
	"calc_type", "rate", "unit_label", "applies_to", "use_subtype",
	"min_units", "max_units", "min_sqft", "max_sqft",
	"service_area_name", "description", "source_url",
	"legal_citation", "effective_date",
}

var losAngelesProfile = Profile{
	Name:             "los_angeles",
	Fields:           stagingFields,
	Vocab:            losAngelesVocab,
	FallbackCalcType: CalcPerUnit,
	CalcTypes:        []CalcType{CalcFlatFee, CalcPerUnit, CalcPerSquareFoot, CalcFormula},
	CalcSources:      []string{"calc_method"},
	RateSources:      []string{"rate"},
	DateLayouts:      MinimalDateLayouts,
	Required: []string{
		"state_name", "jurisdiction_name", "agency_name", "fee_name",
		"description", "unit_label", "rate", "applies_to", "use_subtype",
		"service_area_name", "source_url",
	},
	DefaultInput:  "fee_data/city_of_los_angeles_fees.csv",
	DefaultOutput: "fee_data/city_of_los_angeles_fees_transformed.csv",
}

var saltLakeProfile = Profile{
	Name:             "salt_lake",
	Fields:           stagingFields,
	Vocab:            saltLakeVocab,
	FallbackCalcType: CalcPerUnit,
	CalcTypes:        []CalcType{CalcFlatFee, CalcPerUnit, CalcPerSquareFoot, CalcPerMeterSize, CalcFormula},
	CalcSources:      []string{"category"},
	RateSources:      []string{"rate"},
	DateLayouts:      MinimalDateLayouts,
	Required: []string{
		"category", "state_name", "jurisdiction_name", "agency_name",
		"fee_name", "description", "unit_label", "rate", "formula",
		"applies_to", "use_subtype", "service_area_name", "source_url",
		"legal_citation", "effective_date",
	},
	DefaultInput:  "fee_data/salt_lake_city_fees.csv",
	DefaultOutput: "fee_data/salt_lake_city_fees_transformed.csv",
}

var universalProfile = Profile{
	Name:             "universal",
	Fields:           universalFields,
	Vocab:            universalVocab,
	FallbackCalcType: CalcPerUnit,
	CalcTypes: []CalcType{
		CalcFlatFee, CalcPerUnit, CalcPerSquareFoot, CalcPerAcre,
		CalcPerMeterSize, CalcFormula,
	},
	CalcSources:        []string{"calc_type", "calc_method", "category"},
	NormalizeCalcToken: true,
	DefaultCalcToken:   "flat_fee",
	RateSources:        []string{"min_fee", "rate", "max_fee"},
	DateLayouts:        ExtendedDateLayouts,
}

// Profiles returns all built-in profiles in a stable order.
func Profiles() []Profile {
	return []Profile{losAngelesProfile, saltLakeProfile, universalProfile}
}

// ProfileByName looks up a built-in profile.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown profile %q", name)
}
