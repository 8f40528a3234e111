package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"naukri/matcher-service/internal/catalog"
	"naukri/matcher-service/internal/model"
)

// exerciseRepository runs the shared contract against any backend.
func exerciseRepository(t *testing.T, repo catalog.Repository) {
	t.Helper()
	ctx := context.Background()

	// ── Put assigns defaults ────────────────────────────────────────────────
	draft := posting("")
	draft.Status = ""
	draft.State = ""
	draft.RequiredStreams = nil
	stored, err := repo.Put(ctx, draft)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if stored.ID == "" {
		t.Error("Put did not assign an ID")
	}
	if stored.Status != model.StatusDraft {
		t.Errorf("Status = %q, want Draft", stored.Status)
	}
	if stored.State != model.AllIndia {
		t.Errorf("State = %q, want %q", stored.State, model.AllIndia)
	}
	if len(stored.RequiredStreams) != 1 || stored.RequiredStreams[0] != model.AnyStream {
		t.Errorf("RequiredStreams = %v, want [Any]", stored.RequiredStreams)
	}

	// ── Get round trip ──────────────────────────────────────────────────────
	got, err := repo.Get(ctx, stored.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != stored.Name || got.Status != stored.Status || !got.CreatedAt.Equal(stored.CreatedAt) {
		t.Errorf("Get = %+v, want %+v", got, stored)
	}

	// ── Update keeps CreatedAt ──────────────────────────────────────────────
	stored.Name = "Renamed"
	updated, err := repo.Put(ctx, stored)
	if err != nil {
		t.Fatalf("Put update: %v", err)
	}
	if updated.Name != "Renamed" || !updated.CreatedAt.Equal(stored.CreatedAt) {
		t.Errorf("update = %+v, want renamed with CreatedAt %v", updated, stored.CreatedAt)
	}

	// ── Validation ──────────────────────────────────────────────────────────
	bad := posting("bad")
	bad.MinAge, bad.MaxAge = 40, 20
	var ve *catalog.ValidationError
	if _, err := repo.Put(ctx, bad); !errors.As(err, &ve) {
		t.Errorf("Put(min > max) err = %v, want *ValidationError", err)
	}
	if _, err := repo.Get(ctx, "bad"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("rejected posting was stored: %v", err)
	}

	// ── List and Stats ──────────────────────────────────────────────────────
	for _, id := range []string{"a", "b"} {
		if _, err := repo.Put(ctx, posting(id)); err != nil {
			t.Fatalf("Put(%s): %v", id, err)
		}
	}
	active, err := repo.List(ctx, catalog.ListOptions{Status: model.StatusActive})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("List(Active) = %d postings, want 2", len(active))
	}
	all, err := repo.List(ctx, catalog.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List() = %d postings, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Errorf("List() not newest first at %d", i)
		}
	}
	limited, err := repo.List(ctx, catalog.ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("List(limit): %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("List(Limit 1) = %d postings", len(limited))
	}
	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats[model.StatusActive] != 2 || stats[model.StatusDraft] != 1 {
		t.Errorf("Stats = %v", stats)
	}

	// ── Delete ──────────────────────────────────────────────────────────────
	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}
	if err := repo.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func exerciseExpiry(t *testing.T, repo catalog.Repository) {
	t.Helper()
	ctx := context.Background()
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	past := posting("past")
	past.Deadline = cutoff.AddDate(0, 0, -1)
	today := posting("today")
	today.Deadline = cutoff
	undated := posting("undated")
	closed := posting("closed")
	closed.Status = model.StatusClosed
	closed.Deadline = cutoff.AddDate(0, 0, -10)
	for _, j := range []model.JobPosting{past, today, undated, closed} {
		if _, err := repo.Put(ctx, j); err != nil {
			t.Fatalf("Put(%s): %v", j.ID, err)
		}
	}

	ids, err := repo.ExpireBefore(ctx, cutoff)
	if err != nil {
		t.Fatalf("ExpireBefore: %v", err)
	}
	if len(ids) != 1 || ids[0] != "past" {
		t.Fatalf("ExpireBefore = %v, want [past]", ids)
	}
	got, _ := repo.Get(ctx, "past")
	if got.Status != model.StatusExpired {
		t.Errorf("past.Status = %q, want Expired", got.Status)
	}
	for _, id := range []string{"today", "undated"} {
		if got, _ := repo.Get(ctx, id); got.Status != model.StatusActive {
			t.Errorf("%s.Status = %q, want Active", id, got.Status)
		}
	}

	// A second sweep finds nothing.
	ids, err = repo.ExpireBefore(ctx, cutoff)
	if err != nil || len(ids) != 0 {
		t.Errorf("second ExpireBefore = %v, %v", ids, err)
	}
}

func TestMemoryRepository(t *testing.T) {
	exerciseRepository(t, catalog.NewMemoryRepository())
}

func TestMemoryRepository_ExpireBefore(t *testing.T) {
	exerciseExpiry(t, catalog.NewMemoryRepository())
}

func TestMemoryRepository_SeededAsGiven(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sample := catalog.SampleJobs(now)
	repo := catalog.NewMemoryRepository(sample...)

	jobs, err := repo.List(context.Background(), catalog.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(jobs) != len(sample) {
		t.Fatalf("List() = %d postings, want %d", len(jobs), len(sample))
	}
	for i := range sample {
		if jobs[i].ID != sample[i].ID {
			t.Errorf("jobs[%d] = %s, want %s", i, jobs[i].ID, sample[i].ID)
		}
	}
}

func TestMemoryRepository_NoAliasing(t *testing.T) {
	repo := catalog.NewMemoryRepository(posting("x"))
	ctx := context.Background()

	j, _ := repo.Get(ctx, "x")
	j.RequiredStreams = append(j.RequiredStreams, "Arts")
	if _, err := repo.Put(ctx, j); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, _ := repo.Get(ctx, "x")
	got.RequiredStreams[0] = "Commerce"

	again, _ := repo.Get(ctx, "x")
	if again.RequiredStreams[0] == "Commerce" {
		t.Error("mutating a returned posting changed the stored copy")
	}
}
