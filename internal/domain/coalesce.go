package domain

import "strings"

// FirstNonBlank returns the trimmed value of the first candidate field that is
// present in the record and non-blank after trimming. The boolean is false
// when every candidate is absent or blank.
//
// Candidate order is a domain policy, not a convenience: where several amount
// columns coexist the caller lists the more conservative column first (e.g.
// min_fee before rate before max_fee), and that order must not be rearranged.
func FirstNonBlank(rec RawRecord, fields ...string) (string, bool) {
	for _, f := range fields {
		v, ok := rec[f]
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}
