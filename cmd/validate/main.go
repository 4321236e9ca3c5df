// Command validate checks a transformed fee staging CSV against its profile's
// canonical schema: header order, per-row completeness, calc type membership,
// date shape, and applies-to vocabulary.
//
// Usage:
//
//	validate -profile universal transformed.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/civicdata/fee-staging-etl/internal/domain"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	profileName := flag.String("profile", "", "profile the file was transformed with")
	flag.Parse()

	if *profileName == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: validate -profile name transformed.csv")
		os.Exit(1)
	}

	os.Exit(run(*profileName, flag.Arg(0)))
}

func run(profileName, path string) int {
	profile, err := domain.ProfileByName(profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	header, rows, err := loadCSV(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load %s: %v\n", path, err)
		return 1
	}

	fmt.Println("=== Fee Staging Validation ===")
	fmt.Println()

	phases := []*phase{
		validateHeader(header, profile),
		validateRowWidths(rows, profile),
		validateCalcTypes(header, rows, profile),
		validateEffectiveDates(header, rows),
		validateAppliesTo(header, rows),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-32s %s\n", p.name, status)
	}
	fmt.Println()
	fmt.Printf("Rows: %d\n", len(rows))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for _, e := range p.errors {
			fmt.Println(" ", e)
		}
	}

	if !allPassed {
		return 1
	}
	return 0
}

func loadCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("file has no header row")
	}
	return all[0], all[1:], nil
}

func validateHeader(header []string, profile domain.Profile) *phase {
	p := &phase{name: "header order"}
	if len(header) != len(profile.Fields) {
		p.errorf("header has %d columns, profile %s has %d", len(header), profile.Name, len(profile.Fields))
		return p
	}
	for i, want := range profile.Fields {
		if header[i] != want {
			p.errorf("column %d: got %q, want %q", i+1, header[i], want)
		}
	}
	return p
}

func validateRowWidths(rows [][]string, profile domain.Profile) *phase {
	p := &phase{name: "row completeness"}
	for i, row := range rows {
		if len(row) != len(profile.Fields) {
			p.errorf("row %d: %d fields, want %d", i+1, len(row), len(profile.Fields))
		}
	}
	return p
}

func validateCalcTypes(header []string, rows [][]string, profile domain.Profile) *phase {
	p := &phase{name: "calc type membership"}
	col := columnIndex(header, "calc_type")
	if col < 0 {
		p.errorf("no calc_type column")
		return p
	}

	valid := make(map[string]bool, len(profile.CalcTypes))
	for _, ct := range profile.CalcTypes {
		valid[ct] = true
	}
	for i, row := range rows {
		if col >= len(row) {
			continue
		}
		if !valid[row[col]] {
			p.errorf("row %d: calc_type %q not in profile %s", i+1, row[col], profile.Name)
		}
	}
	return p
}

func validateEffectiveDates(header []string, rows [][]string) *phase {
	p := &phase{name: "effective date shape"}
	col := columnIndex(header, "effective_date")
	if col < 0 {
		p.errorf("no effective_date column")
		return p
	}

	for i, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		d := row[col]
		if len(d) != 10 || d[4] != '-' || d[7] != '-' {
			p.errorf("row %d: effective_date %q is not YYYY-MM-DD or blank", i+1, d)
		}
	}
	return p
}

func validateAppliesTo(header []string, rows [][]string) *phase {
	p := &phase{name: "applies-to vocabulary"}
	col := columnIndex(header, "applies_to")
	if col < 0 {
		p.errorf("no applies_to column")
		return p
	}

	valid := map[string]bool{
		domain.AppliesResidential: true,
		domain.AppliesCommercial:  true,
		domain.AppliesIndustrial:  true,
		domain.AppliesAll:         true,
	}
	for i, row := range rows {
		if col >= len(row) {
			continue
		}
		for _, part := range strings.Split(row[col], domain.AppliesToSeparator) {
			if !valid[part] {
				p.errorf("row %d: applies_to part %q is not canonical", i+1, part)
			}
		}
	}
	return p
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
