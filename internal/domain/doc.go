// Package domain normalizes municipal fee-schedule rows into the canonical
// fee staging shape.
//
// # Data Sources
//
// Raw rows arrive as loosely structured CSV exports from individual
// jurisdictions. Each source uses its own column names, its own vocabulary for
// how a fee is calculated, its own date formats, and free-text "applies to"
// fields. Three pipeline profiles cover the observed sources:
//
//	los_angeles  City of Los Angeles fee export (calc_method vocabulary)
//	salt_lake    Salt Lake City consolidated fee schedule (category vocabulary)
//	universal    jurisdiction-agnostic exports with near-canonical tokens
//
// # Vocabulary Translation
//
// Calc tokens are matched case-sensitively and whitespace-exactly against the
// profile's literal table; anything unlisted resolves to the profile's
// fallback tag (per_unit for all three). The same raw token can map
// differently across profiles: "per_acre" stays per_acre under the universal
// table but collapses to per_unit under both city tables.
//
// # Date Reconciliation
//
// Effective dates are reconciled to YYYY-MM-DD. A bare 4-digit year becomes
// January 1st of that year. Input already in canonical shape passes through
// unvalidated. Remaining inputs are tried against the profile's ordered layout
// list; unparseable dates become "unknown", never an error.
//
// # Applies-To Classification
//
// Free-text applies-to values are classified onto {Residential, Commercial,
// Industrial, All} by case-insensitive substring containment, with
// comma/semicolon lists split and classified part by part. Parts matching no
// category are dropped; a wholly unclassifiable value defaults to All.
// Multiple categories serialize joined with ";".
//
// # Failure Model
//
// Field-level problems (blank values, unknown tokens, bad dates) always
// degrade to defaults. The only row-fatal condition is a structurally
// required source column being absent from the record itself; that surfaces
// as [MissingColumnError] and is handled row-locally by the batch processor.
package domain
