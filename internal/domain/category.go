package domain

import "strings"

// categoryPriority orders the substring checks for multi-valued input. First
// match wins per part, so "Residential & Commercial Mixed" classifies as
// Residential.
var categoryPriority = []struct {
	token    string
	category string
}{
	{"residential", AppliesResidential},
	{"commercial", AppliesCommercial},
	{"industrial", AppliesIndustrial},
}

// NormalizeAppliesTo maps a free-text "applies to" value onto the closed
// category vocabulary. Blank input means the fee applies to everything.
//
// Comma- or semicolon-delimited input is split and each part classified
// independently by case-insensitive substring containment; parts matching no
// category are dropped, duplicates collapse, and the survivors are joined with
// ";". Single values additionally recognize "all" by substring and the four
// canonical labels by exact match. Anything still unclassified falls back to
// All: substring matching trades precision for coverage across jurisdictions'
// phrasing ("COMM", "Residential & Multi-Family"), and All is the safe default.
func NormalizeAppliesTo(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AppliesAll
	}

	if strings.ContainsAny(raw, ",;") {
		return normalizeMultiCategory(raw)
	}

	lower := strings.ToLower(raw)
	for _, c := range categoryPriority {
		if strings.Contains(lower, c.token) {
			return c.category
		}
	}
	if strings.Contains(lower, "all") {
		return AppliesAll
	}

	switch raw {
	case AppliesResidential, AppliesCommercial, AppliesIndustrial, AppliesAll:
		return raw
	}
	return AppliesAll
}

// normalizeMultiCategory handles delimited lists. Semicolons are substituted
// with commas first so mixed-delimiter input is handled as one split.
func normalizeMultiCategory(raw string) string {
	parts := strings.Split(strings.ReplaceAll(raw, ";", ","), ",")

	seen := make(map[string]bool, len(categoryPriority))
	var categories []string
	for _, part := range parts {
		lower := strings.ToLower(strings.TrimSpace(part))
		for _, c := range categoryPriority {
			if strings.Contains(lower, c.token) {
				if !seen[c.category] {
					seen[c.category] = true
					categories = append(categories, c.category)
				}
				break
			}
		}
	}

	if len(categories) == 0 {
		return AppliesAll
	}
	return strings.Join(categories, AppliesToSeparator)
}
