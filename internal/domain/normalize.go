package domain

import "strings"

// NormalizeRow maps one raw record onto the profile's canonical shape. Missing
// optional columns degrade to safe defaults and never fail; the only error is
// a structurally required column being absent from the record entirely.
//
// The returned record always contains every key in p.Fields.
func NormalizeRow(raw RawRecord, p Profile) (CanonicalRecord, error) {
	for _, col := range p.Required {
		if _, ok := raw[col]; !ok {
			return nil, &MissingColumnError{Column: col}
		}
	}

	out := make(CanonicalRecord, len(p.Fields))
	for _, field := range p.Fields {
		switch field {
		case "calc_type":
			out[field] = p.Vocab.Translate(calcToken(raw, p), p.FallbackCalcType)
		case "rate":
			// Coalesced across amount columns; blank when none are populated.
			rate, _ := FirstNonBlank(raw, p.RateSources...)
			out[field] = rate
		case "applies_to":
			out[field] = NormalizeAppliesTo(raw["applies_to"])
		case "effective_date":
			date, ok := NormalizeDate(raw["effective_date"], p.DateLayouts)
			if !ok {
				date = ""
			}
			out[field] = date
		case "service_area_name":
			out[field] = copyField(raw, field, "Citywide")
		default:
			out[field] = copyField(raw, field, "")
		}
	}
	return out, nil
}

// calcToken selects the raw vocabulary token for calc type translation.
// Profiles that normalize the token take the first present non-blank source,
// lowercased; the city profiles pass their single source column through
// verbatim so that case and whitespace variants fall to the fallback tag,
// matching the literal tables.
func calcToken(raw RawRecord, p Profile) string {
	if p.NormalizeCalcToken {
		tok, ok := FirstNonBlank(raw, p.CalcSources...)
		if !ok {
			tok = p.DefaultCalcToken
		}
		return strings.ToLower(strings.TrimSpace(tok))
	}

	for _, f := range p.CalcSources {
		if v, ok := raw[f]; ok {
			return v
		}
	}
	return p.DefaultCalcToken
}

// copyField returns the trimmed source value, or def when the column is absent
// from the record. A present-but-blank column stays blank; defaults apply only
// to columns the source never had.
func copyField(raw RawRecord, field, def string) string {
	v, ok := raw[field]
	if !ok {
		return def
	}
	return strings.TrimSpace(v)
}
