// Package model defines the job posting, applicant profile and alert
// preference types shared by the matcher packages.
package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// AllIndia is the posting state that places no location constraint.
	AllIndia = "All India"
	// AnyStream in RequiredStreams places no stream constraint.
	AnyStream = "Any"
)

// JobPosting is a single government vacancy in the catalog. JSON keys follow
// the stored catalog format.
type JobPosting struct {
	ID               string           `json:"id"`
	Name             string           `json:"job_name"`
	MinAge           int              `json:"min_age"`
	MaxAge           int              `json:"max_age"`
	Qualification    Qualification    `json:"qualification"`
	Category         Category         `json:"category"`
	Gender           Gender           `json:"gender"`
	State            string           `json:"state"`
	CompetitionLevel CompetitionLevel `json:"competition_level"`
	Status           JobStatus        `json:"status"`
	Deadline         time.Time        `json:"deadline"`
	RequiredStreams  []string         `json:"required_streams"`
	SalaryRange      string           `json:"salary_range,omitempty"`
	ApplyLink        string           `json:"apply_link,omitempty"`
	OfficialWebsite  string           `json:"official_website,omitempty"`
	NotificationLink string           `json:"notification_link,omitempty"`
	SyllabusLink     string           `json:"syllabus_link,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Streams returns the required streams. Nil and empty lists both mean
// unconstrained.
func (j JobPosting) Streams() []string {
	if len(j.RequiredStreams) == 0 {
		return []string{AnyStream}
	}
	return j.RequiredStreams
}

// AcceptsAnyStream reports whether the posting places no stream constraint.
func (j JobPosting) AcceptsAnyStream() bool {
	for _, s := range j.Streams() {
		if s == AnyStream {
			return true
		}
	}
	return false
}

// ApplicantProfile is a complete snapshot of what the applicant entered.
// A nil Age means the age has not been entered.
type ApplicantProfile struct {
	Age             *int          `json:"age,omitempty"`
	Qualification   Qualification `json:"qualification"`
	Stream          string        `json:"stream"`
	Category        Category      `json:"category"`
	Gender          Gender        `json:"gender"`
	StatePreference string        `json:"statePreference"`
}

// AgeOf returns a pointer suitable for ApplicantProfile.Age.
func AgeOf(n int) *int { return &n }

// Validate checks that every set field holds a known value. Unset optional
// fields are accepted; the eligibility engine handles them.
func (p ApplicantProfile) Validate() error {
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("age must not be negative, got %d", *p.Age)
	}
	if p.Qualification != QualificationUnset {
		if _, err := ParseQualification(string(p.Qualification)); err != nil {
			return err
		}
	}
	if p.Category != CategoryUnset {
		if p.Category == CategoryAll {
			return fmt.Errorf("applicant category cannot be %q", CategoryAll)
		}
		if _, err := ParseCategory(string(p.Category)); err != nil {
			return err
		}
	}
	switch p.Gender {
	case GenderMale, GenderFemale:
	default:
		return fmt.Errorf("applicant gender must be %s or %s, got %q", GenderMale, GenderFemale, p.Gender)
	}
	return nil
}

// EligibilityResult is the verdict for one (posting, profile) pair. Check
// names the first failing rule and is empty when Eligible is true.
type EligibilityResult struct {
	Eligible bool   `json:"isEligible"`
	Reason   string `json:"reason"`
	Check    string `json:"check,omitempty"`
}

// ContactKind distinguishes the two contact formats accepted for alerts.
type ContactKind string

const (
	ContactPhone ContactKind = "phone"
	ContactEmail ContactKind = "email"
)

// AlertPreferences is a notification subscription.
type AlertPreferences struct {
	Contact      string      `json:"contact"`
	IsSubscribed bool        `json:"isSubscribed"`
	Categories   []string    `json:"categories"`
	AlertTypes   []AlertType `json:"alertTypes"`
	Locations    []string    `json:"locations"`
	Frequency    Frequency   `json:"frequency"`
	Channels     []Channel   `json:"channels"`
	DeadlineDays int         `json:"deadlineDays"`
	LastUpdated  int64       `json:"lastUpdated"` // unix millis
}

// ContactKind reports whether the contact is an email address or a phone
// number.
func (p AlertPreferences) ContactKind() ContactKind {
	if strings.Contains(p.Contact, "@") {
		return ContactEmail
	}
	return ContactPhone
}

// DaysRemaining returns the whole days left until deadline, rounded up and
// never negative.
func DaysRemaining(deadline, now time.Time) int {
	if deadline.IsZero() {
		return 0
	}
	d := deadline.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}
