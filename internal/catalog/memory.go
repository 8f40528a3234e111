package catalog

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"naukri/matcher-service/internal/model"
)

// MemoryRepository keeps postings in process memory. It backs tests and the
// "memory" catalog driver.
type MemoryRepository struct {
	mu   sync.RWMutex
	jobs map[string]model.JobPosting
	now  func() time.Time
}

// NewMemoryRepository returns a repository seeded with jobs. Seeded postings
// are stored as given; they do not pass through Put.
func NewMemoryRepository(jobs ...model.JobPosting) *MemoryRepository {
	r := &MemoryRepository{jobs: make(map[string]model.JobPosting, len(jobs)), now: time.Now}
	for _, j := range jobs {
		r.jobs[j.ID] = clone(j)
	}
	return r
}

func (r *MemoryRepository) Get(_ context.Context, id string) (model.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	if !ok {
		return model.JobPosting{}, ErrNotFound
	}
	return clone(j), nil
}

func (r *MemoryRepository) Put(_ context.Context, job model.JobPosting) (model.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created time.Time
	if prev, ok := r.jobs[job.ID]; ok && job.ID != "" {
		created = prev.CreatedAt
	}
	job = prepare(job, created, r.now())
	if err := Validate(job); err != nil {
		return model.JobPosting{}, err
	}
	r.jobs[job.ID] = clone(job)
	return clone(job), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, opts ListOptions) ([]model.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.JobPosting, 0, len(r.jobs))
	for _, j := range r.jobs {
		if opts.Status != "" && j.Status != opts.Status {
			continue
		}
		out = append(out, clone(j))
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID < out[b].ID
	})
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *MemoryRepository) Stats(_ context.Context) (map[model.JobStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := make(map[model.JobStatus]int)
	for _, j := range r.jobs {
		stats[j.Status]++
	}
	return stats, nil
}

func (r *MemoryRepository) ExpireBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	now := r.now().UTC()
	for id, j := range r.jobs {
		if j.Status != model.StatusActive || j.Deadline.IsZero() || !j.Deadline.Before(cutoff) {
			continue
		}
		j.Status = model.StatusExpired
		j.UpdatedAt = now
		r.jobs[id] = j
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *MemoryRepository) Ping(context.Context) error { return nil }

// clone copies the slice field so callers cannot alias stored postings.
func clone(j model.JobPosting) model.JobPosting {
	j.RequiredStreams = slices.Clone(j.RequiredStreams)
	return j
}
