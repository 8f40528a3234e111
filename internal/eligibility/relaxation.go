// Package eligibility decides whether an applicant may apply to a posting.
//
// Checks run in a fixed order and the first failing check determines the
// reason:
//
//	status ─► gender ─► category ─► age_present ─► min_age ─► max_age
//	       ─► qualification ─► stream ─► location
//
// Everything in this package is pure: inputs are never mutated and no
// state is kept between calls.
package eligibility

import "naukri/matcher-service/internal/model"

// Upper age limit relaxation, in years, for reserved categories.
const (
	OBCRelaxationYears  = 3
	SCSTRelaxationYears = 5
)

// Relax returns the maximum eligible age for an applicant in category c.
func Relax(baseMaxAge int, c model.Category) int {
	switch c {
	case model.CategoryOBC:
		return baseMaxAge + OBCRelaxationYears
	case model.CategorySC, model.CategoryST:
		return baseMaxAge + SCSTRelaxationYears
	case model.CategoryGeneral, model.CategoryUnset, model.CategoryAll:
		return baseMaxAge
	}
	return baseMaxAge
}
