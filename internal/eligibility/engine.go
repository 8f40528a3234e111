package eligibility

import (
	"fmt"
	"strings"

	"naukri/matcher-service/internal/model"
)

// Check names, in evaluation order.
const (
	CheckStatus        = "status"
	CheckGender        = "gender"
	CheckCategory      = "category"
	CheckAgePresent    = "age_present"
	CheckMinAge        = "min_age"
	CheckMaxAge        = "max_age"
	CheckQualification = "qualification"
	CheckStream        = "stream"
	CheckLocation      = "location"
)

// ReasonEligible is the reason attached to a passing verdict.
const ReasonEligible = "Eligible"

// rule is one named step of the pipeline. eval returns a non-empty reason
// when the step fails.
type rule struct {
	name string
	eval func(job model.JobPosting, p model.ApplicantProfile) (reason string, failed bool)
}

// pipeline is evaluated top to bottom; order is part of the contract.
var pipeline = []rule{
	{CheckStatus, checkStatus},
	{CheckGender, checkGender},
	{CheckCategory, checkCategory},
	{CheckAgePresent, checkAgePresent},
	{CheckMinAge, checkMinAge},
	{CheckMaxAge, checkMaxAge},
	{CheckQualification, checkQualification},
	{CheckStream, checkStream},
	{CheckLocation, checkLocation},
}

// CheckNames returns the pipeline step names in evaluation order.
func CheckNames() []string {
	names := make([]string, len(pipeline))
	for i, r := range pipeline {
		names[i] = r.name
	}
	return names
}

// Check evaluates profile against job and returns the verdict of the first
// failing step, or an eligible verdict when every step passes.
func Check(job model.JobPosting, profile model.ApplicantProfile) model.EligibilityResult {
	for _, r := range pipeline {
		if reason, failed := r.eval(job, profile); failed {
			return model.EligibilityResult{Eligible: false, Reason: reason, Check: r.name}
		}
	}
	return model.EligibilityResult{Eligible: true, Reason: ReasonEligible}
}

// IsEligible is shorthand for Check(job, profile).Eligible.
func IsEligible(job model.JobPosting, profile model.ApplicantProfile) bool {
	return Check(job, profile).Eligible
}

// ─── Steps ────────────────────────────────────────────────────────────────────

func checkStatus(job model.JobPosting, _ model.ApplicantProfile) (string, bool) {
	if !model.IsMatchable(job.Status) {
		return "Job application is closed.", true
	}
	return "", false
}

func checkGender(job model.JobPosting, p model.ApplicantProfile) (string, bool) {
	if job.Gender != model.GenderAll && job.Gender != p.Gender {
		return fmt.Sprintf("Only for %s candidates.", job.Gender), true
	}
	return "", false
}

// An unset applicant category only matches postings open to all.
func checkCategory(job model.JobPosting, p model.ApplicantProfile) (string, bool) {
	if job.Category != model.CategoryAll && job.Category != p.Category {
		return fmt.Sprintf("Restricted to %s category.", job.Category), true
	}
	return "", false
}

func checkAgePresent(_ model.JobPosting, p model.ApplicantProfile) (string, bool) {
	if p.Age == nil {
		return "Please enter your age.", true
	}
	return "", false
}

func checkMinAge(job model.JobPosting, p model.ApplicantProfile) (string, bool) {
	if *p.Age < job.MinAge {
		return fmt.Sprintf("Minimum age is %d.", job.MinAge), true
	}
	return "", false
}

func checkMaxAge(job model.JobPosting, p model.ApplicantProfile) (string, bool) {
	relaxed := Relax(job.MaxAge, p.Category)
	if *p.Age > relaxed {
		return fmt.Sprintf("Over age limit (%d yrs).%s", relaxed, relaxationHint(*p.Age, job.MaxAge, p.Category)), true
	}
	return "", false
}

// relaxationHint points a General or unset applicant at the first reserved
// tier whose limit would cover age. Thresholds come from Relax so the hint
// follows any change to the relaxation policy.
func relaxationHint(age, baseMaxAge int, c model.Category) string {
	if c != model.CategoryGeneral && c != model.CategoryUnset {
		return ""
	}
	switch {
	case age <= Relax(baseMaxAge, model.CategoryOBC):
		return " Check OBC/Reserved category relaxation."
	case age <= Relax(baseMaxAge, model.CategorySC):
		return " Check SC/ST category relaxation."
	}
	return ""
}

func checkQualification(job model.JobPosting, p model.ApplicantProfile) (string, bool) {
	if !Satisfies(p.Qualification, job.Qualification) {
		return fmt.Sprintf("Requires %s.", job.Qualification), true
	}
	return "", false
}

func checkStream(job model.JobPosting, p model.ApplicantProfile) (string, bool) {
	if job.AcceptsAnyStream() {
		return "", false
	}
	streams := job.Streams()
	if p.Stream != "" {
		for _, s := range streams {
			if s == p.Stream {
				return "", false
			}
		}
	}
	return fmt.Sprintf("Requires %s stream.", strings.Join(streams, " or ")), true
}

func checkLocation(job model.JobPosting, p model.ApplicantProfile) (string, bool) {
	if p.StatePreference == "" || job.State == model.AllIndia {
		return "", false
	}
	if job.State != p.StatePreference {
		return fmt.Sprintf("Job is for %s residents/location.", job.State), true
	}
	return "", false
}
