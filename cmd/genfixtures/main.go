// Command genfixtures writes small sample raw fee-schedule CSVs, one per
// profile, for demos and manual pipeline runs. Each fixture uses its source's
// native column names and vocabulary so it exercises the real normalization
// path end to end.
//
// Usage:
//
//	genfixtures -out fee_data
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type fixture struct {
	file   string
	header []string
	rows   [][]string
}

var fixtures = []fixture{
	{
		file: "city_of_los_angeles_fees.csv",
		header: []string{
			"state_name", "jurisdiction_name", "agency_name", "fee_name",
			"calc_method", "description", "unit_label", "rate", "applies_to",
			"use_subtype", "service_area_name", "source_url", "effective_date",
		},
		rows: [][]string{
			{"California", "City of Los Angeles", "LADBS", "Plan Check Fee", "per_sqft",
				"Plan check for new construction", "sq ft", "0.45", "residential",
				"", "Citywide", "https://ladbs.org/fees", "2023"},
			{"California", "City of Los Angeles", "LADWP", "Water Meter Install", "flat",
				"Standard 3/4 inch meter", "meter", "1250", "Residential, Commercial",
				"", "Citywide", "https://ladwp.com/fees", "07/01/2023"},
			{"California", "City of Los Angeles", "LADOT", "Traffic Impact Fee", "varies",
				"Varies by trip generation", "trip", "", "all",
				"", "Westside", "https://ladot.lacity.org", ""},
		},
	},
	{
		file: "salt_lake_city_fees.csv",
		header: []string{
			"category", "state_name", "jurisdiction_name", "agency_name",
			"fee_name", "description", "unit_label", "rate", "formula",
			"applies_to", "use_subtype", "service_area_name", "source_url",
			"legal_citation", "effective_date",
		},
		rows: [][]string{
			{"per_eru_per_month", "Utah", "Salt Lake City", "Public Utilities",
				"Stormwater Fee", "Monthly stormwater charge", "ERU", "6.50", "",
				"All", "", "Citywide", "https://slc.gov/fees", "17.81.200", "2023-07-01"},
			{"monthly_service_fee", "Utah", "Salt Lake City", "Public Utilities",
				"Water Service", "Base charge by meter size", "meter", "", "base * size_factor",
				"Residential", "", "Citywide", "https://slc.gov/fees", "17.16.070", "2023-07-01"},
			{"percentage_of_value", "Utah", "Salt Lake City", "Building Services",
				"Building Permit", "Percent of construction value", "", "", "value * 0.0125",
				"Commercial; Industrial", "", "Citywide", "https://slc.gov/fees", "18.32.040", "2023"},
		},
	},
	{
		file: "universal_fees.csv",
		header: []string{
			"state_name", "jurisdiction_name", "agency_name", "fee_name",
			"calc_type", "min_fee", "rate", "max_fee", "unit_label",
			"applies_to", "min_sqft", "max_sqft", "effective_date",
		},
		rows: [][]string{
			{"Texas", "City of Austin", "Development Services", "Site Plan Review",
				"per_acre", "", "850", "", "acre", "Commercial", "", "", "2024-01-01"},
			{"Colorado", "City of Denver", "Community Planning", "Linkage Fee",
				"per_sqft", "0.64", "1.79", "2.11", "sq ft", "residential; commercial",
				"0", "25000", "03/15/2023"},
			{"Tennessee", "Metro Nashville", "Water Services", "Capacity Fee",
				"tiered", "", "", "3200", "meter", "Mixed-Use, Residential", "", "", "2022"},
		},
	},
}

func main() {
	outDir := flag.String("out", "fee_data", "directory to write fixture CSVs into")
	flag.Parse()

	if err := run(*outDir); err != nil {
		log.Fatal(err)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, fx := range fixtures {
		path := filepath.Join(outDir, fx.file)
		if err := writeFixture(path, fx); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d rows)\n", path, len(fx.rows))
	}
	return nil
}

func writeFixture(path string, fx fixture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(fx.header); err != nil {
		return err
	}
	for _, row := range fx.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
