// Package competition post-filters eligible postings by competition tier.
package competition

import "naukri/matcher-service/internal/model"

// FilterState is the user's competition filter selection. The zero value
// keeps every posting.
type FilterState struct {
	SmartMode    bool             `json:"smartMode"`
	HideVeryHigh bool             `json:"hideVeryHigh"`
	Tier         model.TierFilter `json:"tier"`
}

// Keep reports whether job survives st. Smart mode drops High postings and
// ignores the manual controls. An unknown tier matches nothing.
func Keep(job model.JobPosting, st FilterState) bool {
	if st.SmartMode {
		return job.CompetitionLevel != model.CompetitionHigh
	}
	if st.HideVeryHigh && job.CompetitionLevel == model.CompetitionHigh {
		return false
	}
	switch st.Tier {
	case model.TierAll, "":
		return true
	case model.TierLow:
		return job.CompetitionLevel == model.CompetitionLow
	case model.TierMedium:
		return job.CompetitionLevel == model.CompetitionMedium
	case model.TierHighRisk:
		return job.CompetitionLevel == model.CompetitionHigh
	}
	return false
}

// Filter returns the postings of jobs that survive st, in their original
// order. jobs is not modified.
func Filter(jobs []model.JobPosting, st FilterState) []model.JobPosting {
	out := make([]model.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if Keep(j, st) {
			out = append(out, j)
		}
	}
	return out
}
