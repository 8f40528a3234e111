// Package classifier assigns a coarse subject-domain tag to a job posting.
package classifier

import (
	"strings"

	"naukri/matcher-service/internal/model"
)

// keywordRule maps any of its keywords, found case-insensitively in the
// posting name, to tag.
type keywordRule struct {
	tag      model.CategoryTag
	keywords []string
}

// rules are tried in order and the first match wins. "Railway Police" is
// Defence because police is checked before railway.
var rules = []keywordRule{
	{model.TagSSC, []string{"ssc"}},
	{model.TagBanking, []string{"bank", "sbi", "ibps"}},
	{model.TagDefence, []string{"police", "army", "agniveer", "defence"}},
	{model.TagTeaching, []string{"teacher", "pgt", "tgt"}},
	{model.TagRailways, []string{"rrb", "railway"}},
}

// Classify returns exactly one tag for job. Postings that match no keyword
// are State Govt when tied to a state and Other otherwise.
func Classify(job model.JobPosting) model.CategoryTag {
	name := strings.ToLower(job.Name)
	for _, r := range rules {
		if containsAny(name, r.keywords) {
			return r.tag
		}
	}
	if job.State != model.AllIndia {
		return model.TagStateGovt
	}
	return model.TagOther
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
