package model

import "fmt"

// Qualification is an educational level. The zero value is QualificationUnset,
// which is distinct from the lowest real level.
type Qualification string

const (
	QualificationUnset        Qualification = ""
	QualificationTenth        Qualification = "10th Pass"
	QualificationTwelfth      Qualification = "12th Pass"
	QualificationGraduate     Qualification = "Graduate"
	QualificationPostGraduate Qualification = "Post Graduate"
)

// ParseQualification converts a raw string to a Qualification, returning an
// error for unknown values. The empty string is rejected; callers that allow
// an unset qualification check for it first.
func ParseQualification(s string) (Qualification, error) {
	q := Qualification(s)
	switch q {
	case QualificationTenth, QualificationTwelfth, QualificationGraduate, QualificationPostGraduate:
		return q, nil
	}
	return "", fmt.Errorf("unknown qualification %q", s)
}

// Category is a reservation category. Postings may also use CategoryAll.
type Category string

const (
	CategoryUnset   Category = ""
	CategoryGeneral Category = "General"
	CategoryOBC     Category = "OBC"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryAll     Category = "All"
)

// ParseCategory accepts the four applicant categories and "All".
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryGeneral, CategoryOBC, CategorySC, CategoryST, CategoryAll:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderAll    Gender = "All"
)

func ParseGender(s string) (Gender, error) {
	g := Gender(s)
	switch g {
	case GenderMale, GenderFemale, GenderAll:
		return g, nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// JobStatus is the lifecycle state of a posting. Only StatusActive postings
// are matchable.
type JobStatus string

const (
	StatusActive  JobStatus = "Active"
	StatusDraft   JobStatus = "Draft"
	StatusClosed  JobStatus = "Closed"
	StatusExpired JobStatus = "Expired"
)

func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case StatusActive, StatusDraft, StatusClosed, StatusExpired:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// IsMatchable reports whether applicants may be matched against a posting
// in status s.
func IsMatchable(s JobStatus) bool {
	switch s {
	case StatusActive:
		return true
	case StatusDraft, StatusClosed, StatusExpired:
		return false
	}
	return false
}

// CompetitionLevel is a coarse applicants-per-seat label.
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "Low"
	CompetitionMedium CompetitionLevel = "Medium"
	CompetitionHigh   CompetitionLevel = "High"
)

func ParseCompetitionLevel(s string) (CompetitionLevel, error) {
	l := CompetitionLevel(s)
	switch l {
	case CompetitionLow, CompetitionMedium, CompetitionHigh:
		return l, nil
	}
	return "", fmt.Errorf("unknown competition level %q", s)
}

// CategoryTag is the subject-domain classification of a posting. It is not
// the applicant's reservation Category.
type CategoryTag string

const (
	TagSSC       CategoryTag = "SSC"
	TagBanking   CategoryTag = "Banking"
	TagDefence   CategoryTag = "Defence"
	TagTeaching  CategoryTag = "Teaching"
	TagRailways  CategoryTag = "Railways"
	TagStateGovt CategoryTag = "State Govt"
	TagOther     CategoryTag = "Other"
)

// CategoryTags lists every tag the classifier can produce.
var CategoryTags = []CategoryTag{
	TagSSC, TagBanking, TagDefence, TagTeaching, TagRailways, TagStateGovt, TagOther,
}

func ParseCategoryTag(s string) (CategoryTag, error) {
	for _, t := range CategoryTags {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown category tag %q", s)
}

// TierFilter is the manual competition filter. TierHighRisk selects
// CompetitionHigh postings.
type TierFilter string

const (
	TierAll      TierFilter = "All"
	TierLow      TierFilter = "Low"
	TierMedium   TierFilter = "Medium"
	TierHighRisk TierFilter = "HighRisk"
)

func ParseTierFilter(s string) (TierFilter, error) {
	t := TierFilter(s)
	switch t {
	case TierAll, TierLow, TierMedium, TierHighRisk:
		return t, nil
	}
	return "", fmt.Errorf("unknown tier filter %q", s)
}

// ─── Alert enums ──────────────────────────────────────────────────────────────

type AlertType string

const (
	AlertNewJob    AlertType = "New Job"
	AlertDeadline  AlertType = "Deadline"
	AlertAdmitCard AlertType = "Admit Card"
	AlertResult    AlertType = "Result"
)

type Frequency string

const (
	FrequencyInstant Frequency = "Instant"
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
)

type Channel string

const (
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelTelegram Channel = "Telegram"
	ChannelEmail    Channel = "Email"
)
