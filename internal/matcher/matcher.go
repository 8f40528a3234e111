// Package matcher composes the catalog with the eligibility engine, the
// classifier and the competition filter:
//
//	catalog (Active) ─► eligibility ─► category tag ─► competition ─► []Result
//
// Saved-only views bypass every filter and list the Active bookmarks, so a
// bookmarked posting stays visible after the profile or filters change.
package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"naukri/matcher-service/internal/catalog"
	"naukri/matcher-service/internal/classifier"
	"naukri/matcher-service/internal/competition"
	"naukri/matcher-service/internal/eligibility"
	"naukri/matcher-service/internal/model"
)

// AllCategories disables the category tag filter.
const AllCategories = "All"

// MatchOptions narrows a Match call. The zero value returns every eligible
// Active posting.
type MatchOptions struct {
	JobCategory string // a model.CategoryTag, AllCategories or ""
	Filter      competition.FilterState
	SavedOnly   bool
	SavedIDs    []string
}

// Result is one posting as shown to the applicant.
type Result struct {
	Job      model.JobPosting  `json:"job"`
	Tag      model.CategoryTag `json:"tag"`
	DaysLeft int               `json:"daysLeft"`
}

// Verdict pairs a posting with the engine's decision.
type Verdict struct {
	Job    model.JobPosting        `json:"job"`
	Tag    model.CategoryTag       `json:"tag"`
	Result model.EligibilityResult `json:"result"`
}

// Matcher reads postings from a catalog.Repository.
type Matcher struct {
	repo catalog.Repository
	now  func() time.Time
}

func New(repo catalog.Repository) *Matcher {
	return &Matcher{repo: repo, now: time.Now}
}

// WithClock returns a copy of m that uses now for days-left computation.
func (m *Matcher) WithClock(now func() time.Time) *Matcher {
	c := *m
	c.now = now
	return &c
}

func (m *Matcher) active(ctx context.Context, limit int) ([]model.JobPosting, error) {
	jobs, err := m.repo.List(ctx, catalog.ListOptions{Status: model.StatusActive, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list active postings: %w", err)
	}
	return jobs, nil
}

// Match returns the postings profile can apply for, newest first.
func (m *Matcher) Match(ctx context.Context, profile model.ApplicantProfile, opts MatchOptions) ([]Result, error) {
	var tag model.CategoryTag
	if opts.JobCategory != "" && opts.JobCategory != AllCategories {
		t, err := model.ParseCategoryTag(opts.JobCategory)
		if err != nil {
			return nil, err
		}
		tag = t
	}

	jobs, err := m.active(ctx, 0)
	if err != nil {
		return nil, err
	}

	saved := make(map[string]bool, len(opts.SavedIDs))
	for _, id := range opts.SavedIDs {
		saved[id] = true
	}

	now := m.now()
	out := make([]Result, 0)
	for _, job := range jobs {
		jt := classifier.Classify(job)
		if opts.SavedOnly {
			if saved[job.ID] {
				out = append(out, Result{Job: job, Tag: jt, DaysLeft: model.DaysRemaining(job.Deadline, now)})
			}
			continue
		}
		if !eligibility.IsEligible(job, profile) {
			continue
		}
		if tag != "" && jt != tag {
			continue
		}
		if !competition.Keep(job, opts.Filter) {
			continue
		}
		out = append(out, Result{Job: job, Tag: jt, DaysLeft: model.DaysRemaining(job.Deadline, now)})
	}

	slog.Debug("match complete",
		"active", len(jobs),
		"matched", len(out),
		"category", opts.JobCategory,
		"savedOnly", opts.SavedOnly,
	)
	return out, nil
}

// Latest returns the n newest Active postings regardless of eligibility.
func (m *Matcher) Latest(ctx context.Context, n int) ([]Result, error) {
	if n <= 0 {
		return []Result{}, nil
	}
	jobs, err := m.active(ctx, n)
	if err != nil {
		return nil, err
	}
	now := m.now()
	out := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, Result{Job: job, Tag: classifier.Classify(job), DaysLeft: model.DaysRemaining(job.Deadline, now)})
	}
	return out, nil
}

// Explain evaluates every Active posting and returns each verdict, eligible
// or not.
func (m *Matcher) Explain(ctx context.Context, profile model.ApplicantProfile) ([]Verdict, error) {
	jobs, err := m.active(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]Verdict, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, Verdict{Job: job, Tag: classifier.Classify(job), Result: eligibility.Check(job, profile)})
	}
	return out, nil
}
