// Package catalog stores job postings on behalf of the admin collaborator
// and serves them, read-only, to the matcher.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"naukri/matcher-service/internal/model"
)

// Repository is the storage contract for job postings. Implementations must
// return ErrNotFound for a missing ID and a *ValidationError when Put
// rejects a posting.
type Repository interface {
	Get(ctx context.Context, id string) (model.JobPosting, error)
	// Put inserts or replaces a posting and returns it as stored.
	Put(ctx context.Context, job model.JobPosting) (model.JobPosting, error)
	Delete(ctx context.Context, id string) error
	// List returns postings newest first.
	List(ctx context.Context, opts ListOptions) ([]model.JobPosting, error)
	// Stats counts postings per status.
	Stats(ctx context.Context) (map[model.JobStatus]int, error)
	// ExpireBefore moves Active postings whose deadline falls before cutoff
	// to Expired and returns their IDs.
	ExpireBefore(ctx context.Context, cutoff time.Time) ([]string, error)
	Ping(ctx context.Context) error
}

// ListOptions narrows List. The zero value lists everything.
type ListOptions struct {
	Status model.JobStatus // empty = any status
	Limit  int             // <= 0 = no limit
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// ErrNotFound is returned when a posting does not exist.
var ErrNotFound = fmt.Errorf("job posting not found")

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// ─── Admin-side validation ────────────────────────────────────────────────────

// Validate rejects postings the admin form should never have produced. The
// eligibility engine itself does not depend on these checks.
func Validate(job model.JobPosting) error {
	if job.Name == "" {
		return &ValidationError{Msg: "job name is required"}
	}
	if job.MinAge < 0 || job.MaxAge < 0 {
		return &ValidationError{Msg: "ages must not be negative"}
	}
	if job.MinAge > job.MaxAge {
		return &ValidationError{Msg: fmt.Sprintf("min age %d is greater than max age %d", job.MinAge, job.MaxAge)}
	}
	if _, err := model.ParseQualification(string(job.Qualification)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if _, err := model.ParseCategory(string(job.Category)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if _, err := model.ParseGender(string(job.Gender)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if _, err := model.ParseJobStatus(string(job.Status)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if _, err := model.ParseCompetitionLevel(string(job.CompetitionLevel)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	return nil
}

// prepare fills defaults on a posting about to be stored: a fresh ID, Draft
// status, All India state, Any stream and timestamps. created is the
// previous CreatedAt when replacing an existing posting; a new posting keeps
// its own CreatedAt if it has one.
func prepare(job model.JobPosting, created, now time.Time) model.JobPosting {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = model.StatusDraft
	}
	if job.State == "" {
		job.State = model.AllIndia
	}
	if len(job.RequiredStreams) == 0 {
		job.RequiredStreams = []string{model.AnyStream}
	}
	if !job.Deadline.IsZero() {
		job.Deadline = job.Deadline.UTC()
	}
	if created.IsZero() {
		created = job.CreatedAt
	}
	if created.IsZero() {
		created = now
	}
	job.CreatedAt = created.UTC()
	job.UpdatedAt = now.UTC()
	return job
}

// Cutoff returns the start of now's UTC day. Postings whose deadline is
// before it have passed their last date.
func Cutoff(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}
