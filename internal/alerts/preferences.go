// Package alerts derives and validates job-alert subscription preferences.
package alerts

import (
	"slices"
	"time"

	"naukri/matcher-service/internal/classifier"
	"naukri/matcher-service/internal/model"
)

// DefaultDeadlineDays is the reminder lead time used when none is set.
const DefaultDeadlineDays = 3

// SubscribableCategories are the categories offered for subscription. UPSC
// has no classifier tag but can still be subscribed to.
var SubscribableCategories = []string{
	string(model.TagSSC),
	string(model.TagBanking),
	string(model.TagRailways),
	string(model.TagDefence),
	string(model.TagTeaching),
	string(model.TagStateGovt),
	"UPSC",
}

// Defaults is the prefill derived from one posting.
type Defaults struct {
	Categories []string
	AlertTypes []model.AlertType
}

// NewPreferences returns the preferences shown to a user who has never
// subscribed.
func NewPreferences() model.AlertPreferences {
	return model.AlertPreferences{
		Categories:   []string{},
		AlertTypes:   []model.AlertType{model.AlertNewJob, model.AlertDeadline},
		Locations:    []string{model.AllIndia},
		Frequency:    model.FrequencyInstant,
		Channels:     []model.Channel{model.ChannelWhatsApp},
		DeadlineDays: DefaultDeadlineDays,
	}
}

// DefaultsFor maps job to the subscription it implies. Other postings are
// subscribed as State Govt, which is wider than the display tag.
func DefaultsFor(job model.JobPosting) Defaults {
	tag := classifier.Classify(job)
	if tag == model.TagOther {
		tag = model.TagStateGovt
	}
	return Defaults{
		Categories: []string{string(tag)},
		AlertTypes: []model.AlertType{model.AlertDeadline},
	}
}

// Prefill merges DefaultsFor(job) into prefs without duplicating entries.
// prefs is not modified.
func Prefill(prefs model.AlertPreferences, job model.JobPosting) model.AlertPreferences {
	d := DefaultsFor(job)
	out := prefs
	out.Categories = slices.Clone(prefs.Categories)
	out.AlertTypes = slices.Clone(prefs.AlertTypes)
	for _, c := range d.Categories {
		if !slices.Contains(out.Categories, c) {
			out.Categories = append(out.Categories, c)
		}
	}
	for _, a := range d.AlertTypes {
		if !slices.Contains(out.AlertTypes, a) {
			out.AlertTypes = append(out.AlertTypes, a)
		}
	}
	return out
}

// Normalize fills defaults into stored preferences on load.
func Normalize(prefs model.AlertPreferences) model.AlertPreferences {
	if prefs.DeadlineDays == 0 {
		prefs.DeadlineDays = DefaultDeadlineDays
	}
	return prefs
}

// Subscribe validates prefs and, when valid, marks them subscribed at now.
// Invalid preferences are returned unchanged alongside the failed result.
func Subscribe(prefs model.AlertPreferences, now time.Time) (model.AlertPreferences, ValidationResult) {
	res := Validate(prefs)
	if !res.Valid {
		return prefs, res
	}
	prefs.IsSubscribed = true
	prefs.LastUpdated = now.UnixMilli()
	return prefs, res
}
