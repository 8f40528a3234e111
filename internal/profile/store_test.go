package profile_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"naukri/matcher-service/internal/alerts"
	"naukri/matcher-service/internal/db"
	"naukri/matcher-service/internal/model"
	"naukri/matcher-service/internal/profile"
)

func exerciseStore(t *testing.T, s profile.Store, user string) {
	t.Helper()
	ctx := context.Background()

	// ── Profile ─────────────────────────────────────────────────────────────
	if _, err := s.LoadProfile(ctx, user); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("LoadProfile(new user) err = %v, want ErrNotFound", err)
	}
	p := model.ApplicantProfile{
		Age:           model.AgeOf(24),
		Qualification: model.QualificationGraduate,
		Stream:        "Science",
		Category:      model.CategoryOBC,
		Gender:        model.GenderFemale,
	}
	if err := s.SaveProfile(ctx, user, p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err := s.LoadProfile(ctx, user)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if got.Age == nil || *got.Age != 24 || got.Category != model.CategoryOBC || got.Stream != "Science" {
		t.Errorf("LoadProfile = %+v", got)
	}
	bad := p
	bad.Category = model.CategoryAll
	if err := s.SaveProfile(ctx, user, bad); err == nil {
		t.Error("SaveProfile accepted category All")
	}
	if err := s.SaveProfile(ctx, "", p); !errors.Is(err, profile.ErrNoUser) {
		t.Errorf("SaveProfile(empty user) err = %v, want ErrNoUser", err)
	}

	// ── Bookmarks ───────────────────────────────────────────────────────────
	ids, err := s.Bookmarks(ctx, user)
	if err != nil || len(ids) != 0 {
		t.Fatalf("Bookmarks(new user) = %v, %v", ids, err)
	}
	for _, id := range []string{"job-1", "job-2"} {
		saved, err := s.ToggleBookmark(ctx, user, id)
		if err != nil || !saved {
			t.Fatalf("ToggleBookmark(%s) = %v, %v; want saved", id, saved, err)
		}
	}
	ids, _ = s.Bookmarks(ctx, user)
	if len(ids) != 2 || ids[0] != "job-2" {
		t.Errorf("Bookmarks = %v, want newest first", ids)
	}
	saved, err := s.ToggleBookmark(ctx, user, "job-1")
	if err != nil || saved {
		t.Errorf("second ToggleBookmark = %v, %v; want removed", saved, err)
	}
	ids, _ = s.Bookmarks(ctx, user)
	if len(ids) != 1 || ids[0] != "job-2" {
		t.Errorf("Bookmarks after removal = %v", ids)
	}

	// ── Preferences ─────────────────────────────────────────────────────────
	prefs, err := s.LoadPreferences(ctx, user)
	if err != nil {
		t.Fatalf("LoadPreferences(new user): %v", err)
	}
	if prefs.IsSubscribed || prefs.DeadlineDays != alerts.DefaultDeadlineDays {
		t.Errorf("default preferences = %+v", prefs)
	}

	prefs.Contact = "ab"
	var ve *alerts.ValidationError
	if _, err := s.SavePreferences(ctx, user, prefs); !errors.As(err, &ve) {
		t.Fatalf("SavePreferences(short contact) err = %v, want *alerts.ValidationError", err)
	}
	if stored, _ := s.LoadPreferences(ctx, user); stored.IsSubscribed {
		t.Error("rejected preferences were stored")
	}

	prefs.Contact = "9876543210"
	prefs.Categories = []string{"SSC", "Banking"}
	prefs.DeadlineDays = 0
	out, err := s.SavePreferences(ctx, user, prefs)
	if err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	if !out.IsSubscribed || out.LastUpdated == 0 {
		t.Errorf("SavePreferences = %+v, want subscribed with timestamp", out)
	}
	loaded, err := s.LoadPreferences(ctx, user)
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if !loaded.IsSubscribed || len(loaded.Categories) != 2 || loaded.DeadlineDays != alerts.DefaultDeadlineDays {
		t.Errorf("LoadPreferences = %+v", loaded)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, profile.NewMemoryStore(), "user-1")
}

func TestMemoryStore_ProfileNotAliased(t *testing.T) {
	s := profile.NewMemoryStore()
	ctx := context.Background()
	age := 30
	p := model.ApplicantProfile{Age: &age, Gender: model.GenderMale}
	if err := s.SaveProfile(ctx, "u", p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	age = 99
	got, _ := s.LoadProfile(ctx, "u")
	if *got.Age != 30 {
		t.Errorf("stored age changed to %d through caller pointer", *got.Age)
	}
}

// Runs against a real server when REDIS_TEST_URL is set.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	rdb, err := db.NewRedisClient(context.Background(), url)
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })

	user := "test-" + uuid.NewString()
	t.Cleanup(func() {
		rdb.Del(context.Background(),
			"matcher:profile:"+user, "matcher:bookmarks:"+user, "matcher:alerts:"+user)
	})
	exerciseStore(t, profile.NewRedisStore(rdb), user)
}
