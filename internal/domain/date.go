package domain

import (
	"strings"
	"time"
)

// canonicalDateLayout is the output form for every effective date.
const canonicalDateLayout = "2006-01-02"

// Date layout lists, tried in order. The minimum set covers the two formats
// every source has been seen to use; the extended set adds slash-delimited
// ISO and European day-first forms. Delimiters are deliberately tied to field
// orders: "15-03-2023" parses day-first but "15/03/2023" does not, and falls
// through to unknown rather than being reinterpreted.
var (
	MinimalDateLayouts  = []string{canonicalDateLayout, "01/02/2006"}
	ExtendedDateLayouts = []string{canonicalDateLayout, "01/02/2006", "2006/01/02", "02-01-2006"}
)

// NormalizeDate reconciles a raw date token into canonical YYYY-MM-DD form,
// attempting each layout in order. The boolean is false when the input is
// blank or matches no layout; the caller decides how to represent "unknown".
//
// A bare 4-digit year is pinned to January 1st. Input already in canonical
// shape (10 characters, hyphens after the year and month) is accepted as-is
// without reparsing, so out-of-calendar-range strings like "2023-13-45" pass
// through unvalidated. That leniency is intentional: staged rows keep whatever
// the source asserted, and range checking belongs downstream.
func NormalizeDate(raw string, layouts []string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if len(raw) == 4 && allDigits(raw) {
		return raw + "-01-01", true
	}

	if len(raw) == 10 && raw[4] == '-' && raw[7] == '-' {
		return raw, true
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}

	return "", false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
