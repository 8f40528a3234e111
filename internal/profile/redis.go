package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"naukri/matcher-service/internal/alerts"
	"naukri/matcher-service/internal/model"
)

// EventAlertsSubscribed is published after preferences are stored.
const EventAlertsSubscribed = "EVENT_ALERTS_SUBSCRIBED"

// RedisStore keeps user state in Redis:
//
//	matcher:profile:<user>    JSON ApplicantProfile
//	matcher:bookmarks:<user>  ZSET job ID -> saved-at millis
//	matcher:alerts:<user>     JSON AlertPreferences
type RedisStore struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, now: time.Now}
}

func profileKey(userID string) string   { return "matcher:profile:" + userID }
func bookmarksKey(userID string) string { return "matcher:bookmarks:" + userID }
func alertsKey(userID string) string    { return "matcher:alerts:" + userID }

func (s *RedisStore) SaveProfile(ctx context.Context, userID string, p model.ApplicantProfile) error {
	if userID == "" {
		return ErrNoUser
	}
	if err := p.Validate(); err != nil {
		return err
	}
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.rdb.Set(ctx, profileKey(userID), b, 0).Err(); err != nil {
		return fmt.Errorf("saveProfile: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadProfile(ctx context.Context, userID string) (model.ApplicantProfile, error) {
	b, err := s.rdb.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.ApplicantProfile{}, ErrNotFound
	}
	if err != nil {
		return model.ApplicantProfile{}, fmt.Errorf("loadProfile: %w", err)
	}
	var p model.ApplicantProfile
	if err := json.Unmarshal(b, &p); err != nil {
		return model.ApplicantProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func (s *RedisStore) ToggleBookmark(ctx context.Context, userID, jobID string) (bool, error) {
	if userID == "" {
		return false, ErrNoUser
	}
	key := bookmarksKey(userID)
	removed, err := s.rdb.ZRem(ctx, key, jobID).Result()
	if err != nil {
		return false, fmt.Errorf("toggleBookmark: %w", err)
	}
	if removed > 0 {
		return false, nil
	}
	err = s.rdb.ZAdd(ctx, key, redis.Z{Score: float64(s.now().UnixMilli()), Member: jobID}).Err()
	if err != nil {
		return false, fmt.Errorf("toggleBookmark: %w", err)
	}
	return true, nil
}

func (s *RedisStore) Bookmarks(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.rdb.ZRevRange(ctx, bookmarksKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("bookmarks: %w", err)
	}
	return ids, nil
}

// SavePreferences stores prefs and publishes EVENT_ALERTS_SUBSCRIBED for the
// notification worker. A failed publish is logged, not returned.
func (s *RedisStore) SavePreferences(ctx context.Context, userID string, prefs model.AlertPreferences) (model.AlertPreferences, error) {
	if userID == "" {
		return model.AlertPreferences{}, ErrNoUser
	}
	out, err := subscribe(prefs, s.now())
	if err != nil {
		return model.AlertPreferences{}, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return model.AlertPreferences{}, fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.rdb.Set(ctx, alertsKey(userID), b, 0).Err(); err != nil {
		return model.AlertPreferences{}, fmt.Errorf("savePreferences: %w", err)
	}

	event, _ := json.Marshal(map[string]any{
		"type":        EventAlertsSubscribed,
		"userId":      userID,
		"contactKind": out.ContactKind(),
		"channels":    out.Channels,
		"frequency":   out.Frequency,
	})
	if err := s.rdb.Publish(ctx, EventAlertsSubscribed, event).Err(); err != nil {
		slog.Warn("publish "+EventAlertsSubscribed+" failed", "err", err)
	}
	return out, nil
}

func (s *RedisStore) LoadPreferences(ctx context.Context, userID string) (model.AlertPreferences, error) {
	b, err := s.rdb.Get(ctx, alertsKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return alerts.NewPreferences(), nil
	}
	if err != nil {
		return model.AlertPreferences{}, fmt.Errorf("loadPreferences: %w", err)
	}
	var p model.AlertPreferences
	if err := json.Unmarshal(b, &p); err != nil {
		return model.AlertPreferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	return alerts.Normalize(p), nil
}
