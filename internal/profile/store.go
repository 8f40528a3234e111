// Package profile persists per-user state the matcher reads: the applicant
// profile, saved-job bookmarks and alert preferences.
package profile

import (
	"context"
	"fmt"
	"time"

	"naukri/matcher-service/internal/alerts"
	"naukri/matcher-service/internal/model"
)

// Store is implemented by RedisStore and MemoryStore.
type Store interface {
	SaveProfile(ctx context.Context, userID string, p model.ApplicantProfile) error
	// LoadProfile returns ErrNotFound when the user has never saved one.
	LoadProfile(ctx context.Context, userID string) (model.ApplicantProfile, error)

	// ToggleBookmark saves jobID, or removes it if already saved, and reports
	// whether it is saved afterwards.
	ToggleBookmark(ctx context.Context, userID, jobID string) (bool, error)
	// Bookmarks returns saved job IDs, most recently saved first.
	Bookmarks(ctx context.Context, userID string) ([]string, error)

	// SavePreferences validates and subscribes prefs. Invalid preferences
	// are rejected with an *alerts.ValidationError and nothing is stored.
	SavePreferences(ctx context.Context, userID string, prefs model.AlertPreferences) (model.AlertPreferences, error)
	// LoadPreferences returns stored preferences, or fresh defaults.
	LoadPreferences(ctx context.Context, userID string) (model.AlertPreferences, error)
}

// ErrNotFound is returned when a user has no stored profile.
var ErrNotFound = fmt.Errorf("profile not found")

// ErrNoUser is returned for an empty user ID.
var ErrNoUser = fmt.Errorf("user id is required")

func subscribe(prefs model.AlertPreferences, now time.Time) (model.AlertPreferences, error) {
	out, res := alerts.Subscribe(prefs, now)
	if err := res.Err(); err != nil {
		return model.AlertPreferences{}, err
	}
	return out, nil
}
