package eligibility

import "naukri/matcher-service/internal/model"

// qualificationRanks orders the known levels. QualificationUnset is absent
// on purpose: it has no rank.
var qualificationRanks = map[model.Qualification]int{
	model.QualificationTenth:        0,
	model.QualificationTwelfth:      1,
	model.QualificationGraduate:     2,
	model.QualificationPostGraduate: 3,
}

// Rank returns the position of q in the hierarchy. ok is false for an unset
// or unknown qualification.
func Rank(q model.Qualification) (rank int, ok bool) {
	rank, ok = qualificationRanks[q]
	return rank, ok
}

// Satisfies reports whether an applicant holding applicant meets a posting
// that requires required. An applicant without a qualification satisfies
// nothing. A posting whose requirement is not a known level accepts any
// applicant that has one.
func Satisfies(applicant, required model.Qualification) bool {
	have, ok := Rank(applicant)
	if !ok {
		return false
	}
	need, ok := Rank(required)
	if !ok {
		return true
	}
	return have >= need
}
