package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRow_Universal(t *testing.T) {
	t.Run("typical sparse row", func(t *testing.T) {
		raw := RawRecord{
			"fee_name":   "Water Connection",
			"category":   "per_sqft",
			"rate":       "0.15",
			"applies_to": "residential; commercial",
		}

		rec, err := NormalizeRow(raw, universalProfile)
		require.NoError(t, err)

		assert.Equal(t, CalcPerSquareFoot, rec["calc_type"])
		assert.Equal(t, "0.15", rec["rate"])
		assert.ElementsMatch(t,
			[]string{AppliesResidential, AppliesCommercial},
			strings.Split(rec["applies_to"], AppliesToSeparator))
		assert.Equal(t, "Water Connection", rec["fee_name"])
		assert.Equal(t, "Citywide", rec["service_area_name"])
		assert.Equal(t, "", rec["effective_date"])
		assert.Equal(t, "", rec["state_name"])
	})

	t.Run("every profile field present even on empty input", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{}, universalProfile)
		require.NoError(t, err)

		assert.Len(t, rec, len(universalProfile.Fields))
		for _, f := range universalProfile.Fields {
			_, ok := rec[f]
			assert.True(t, ok, "missing output key %q", f)
		}
	})

	t.Run("calc token source priority", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{
			"calc_type":   "tiered",
			"calc_method": "flat",
			"category":    "per_acre",
		}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcFormula, rec["calc_type"])
	})

	t.Run("blank calc sources fall through", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{
			"calc_type": "  ",
			"category":  "per_acre",
		}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcPerAcre, rec["calc_type"])
	})

	t.Run("calc token is folded and trimmed", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{"calc_type": "  Per_Sqft "}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcPerSquareFoot, rec["calc_type"])
	})

	t.Run("absent calc sources default to flat_fee", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcFlatFee, rec["calc_type"])
	})

	t.Run("unknown token falls back to per_unit", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{"calc_type": "per_zeppelin"}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcPerUnit, rec["calc_type"])
	})

	t.Run("rate prefers min_fee over rate over max_fee", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{
			"min_fee": "100",
			"rate":    "250",
			"max_fee": "900",
		}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, "100", rec["rate"])
	})

	t.Run("blank service_area_name stays blank", func(t *testing.T) {
		// Citywide applies only when the column is absent, not when the
		// source left it empty.
		rec, err := NormalizeRow(RawRecord{"service_area_name": ""}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, "", rec["service_area_name"])
	})

	t.Run("copied fields are trimmed", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{
			"state_name": "  California  ",
			"min_sqft":   " 1000 ",
		}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, "California", rec["state_name"])
		assert.Equal(t, "1000", rec["min_sqft"])
	})

	t.Run("effective date normalized", func(t *testing.T) {
		rec, err := NormalizeRow(RawRecord{"effective_date": "03/15/2023"}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, "2023-03-15", rec["effective_date"])

		rec, err = NormalizeRow(RawRecord{"effective_date": "garbled"}, universalProfile)
		require.NoError(t, err)
		assert.Equal(t, "", rec["effective_date"])
	})
}

func TestNormalizeRow_LosAngeles(t *testing.T) {
	laRow := func() RawRecord {
		return RawRecord{
			"state_name":        "California",
			"jurisdiction_name": "City of Los Angeles",
			"agency_name":       "LADBS",
			"fee_name":          "Plan Check Fee",
			"calc_method":       "per_sqft",
			"description":       "Plan check for new construction",
			"unit_label":        "sq ft",
			"rate":              "0.45",
			"applies_to":        "residential",
			"use_subtype":       "",
			"service_area_name": "Citywide",
			"source_url":        "https://ladbs.org/fees",
			"effective_date":    "2023",
		}
	}

	t.Run("full row", func(t *testing.T) {
		rec, err := NormalizeRow(laRow(), losAngelesProfile)
		require.NoError(t, err)

		expected := CanonicalRecord{
			"state_name":        "California",
			"jurisdiction_name": "City of Los Angeles",
			"agency_name":       "LADBS",
			"fee_name":          "Plan Check Fee",
			"calc_type":         CalcPerSquareFoot,
			"description":       "Plan check for new construction",
			"unit_label":        "sq ft",
			"rate":              "0.45",
			"formula":           "",
			"applies_to":        AppliesResidential,
			"use_subtype":       "",
			"service_area_name": "Citywide",
			"source_url":        "https://ladbs.org/fees",
			"legal_citation":    "",
			"effective_date":    "2023-01-01",
		}
		if diff := cmp.Diff(expected, rec); diff != "" {
			t.Fatalf("normalized record mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing required column", func(t *testing.T) {
		raw := laRow()
		delete(raw, "rate")

		_, err := NormalizeRow(raw, losAngelesProfile)
		require.Error(t, err)

		var missing *MissingColumnError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "rate", missing.Column)
	})

	t.Run("calc token not folded", func(t *testing.T) {
		// The city tables match literally; a case variant falls to the
		// fallback tag instead of being folded into a match.
		raw := laRow()
		raw["calc_method"] = "Per_Sqft"

		rec, err := NormalizeRow(raw, losAngelesProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcPerUnit, rec["calc_type"])
	})

	t.Run("absent calc_method falls back", func(t *testing.T) {
		raw := laRow()
		delete(raw, "calc_method")

		rec, err := NormalizeRow(raw, losAngelesProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcPerUnit, rec["calc_type"])
	})

	t.Run("per_acre collapses to per_unit", func(t *testing.T) {
		raw := laRow()
		raw["calc_method"] = "per_acre"

		rec, err := NormalizeRow(raw, losAngelesProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcPerUnit, rec["calc_type"])
	})
}

func TestNormalizeRow_SaltLake(t *testing.T) {
	slcRow := func() RawRecord {
		return RawRecord{
			"category":          "per_eru_per_month",
			"state_name":        "Utah",
			"jurisdiction_name": "Salt Lake City",
			"agency_name":       "Public Utilities",
			"fee_name":          "Stormwater Fee",
			"description":       "Monthly stormwater charge",
			"unit_label":        "ERU",
			"rate":              "6.50",
			"formula":           "",
			"applies_to":        "All",
			"use_subtype":       "",
			"service_area_name": "Citywide",
			"source_url":        "https://slc.gov/fees",
			"legal_citation":    "17.81.200",
			"effective_date":    "07/01/2023",
		}
	}

	t.Run("full row", func(t *testing.T) {
		rec, err := NormalizeRow(slcRow(), saltLakeProfile)
		require.NoError(t, err)

		assert.Equal(t, CalcPerUnit, rec["calc_type"])
		assert.Equal(t, "6.50", rec["rate"])
		assert.Equal(t, AppliesAll, rec["applies_to"])
		assert.Equal(t, "2023-07-01", rec["effective_date"])
		assert.Len(t, rec, len(saltLakeProfile.Fields))
	})

	t.Run("missing category is structural", func(t *testing.T) {
		raw := slcRow()
		delete(raw, "category")

		_, err := NormalizeRow(raw, saltLakeProfile)
		var missing *MissingColumnError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "category", missing.Column)
	})

	t.Run("meter size vocabulary", func(t *testing.T) {
		raw := slcRow()
		raw["category"] = "monthly_service_fee"

		rec, err := NormalizeRow(raw, saltLakeProfile)
		require.NoError(t, err)
		assert.Equal(t, CalcPerMeterSize, rec["calc_type"])
	})
}

func TestProfileByName(t *testing.T) {
	for _, name := range []string{"los_angeles", "salt_lake", "universal"} {
		p, err := ProfileByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}

	_, err := ProfileByName("phoenix")
	assert.Error(t, err)
}

func TestProfiles_FallbackIsPerUnit(t *testing.T) {
	for _, p := range Profiles() {
		assert.Equal(t, CalcPerUnit, p.FallbackCalcType, p.Name)
		assert.Contains(t, p.CalcTypes, p.FallbackCalcType, p.Name)
	}
}
