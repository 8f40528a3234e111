package profile

import (
	"context"
	"slices"
	"sync"
	"time"

	"naukri/matcher-service/internal/alerts"
	"naukri/matcher-service/internal/model"
)

// MemoryStore keeps user state in process memory.
type MemoryStore struct {
	mu        sync.Mutex
	profiles  map[string]model.ApplicantProfile
	bookmarks map[string][]string // oldest first
	prefs     map[string]model.AlertPreferences
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:  make(map[string]model.ApplicantProfile),
		bookmarks: make(map[string][]string),
		prefs:     make(map[string]model.AlertPreferences),
		now:       time.Now,
	}
}

func (s *MemoryStore) SaveProfile(_ context.Context, userID string, p model.ApplicantProfile) error {
	if userID == "" {
		return ErrNoUser
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Age != nil {
		p.Age = model.AgeOf(*p.Age)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = p
	return nil
}

func (s *MemoryStore) LoadProfile(_ context.Context, userID string) (model.ApplicantProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return model.ApplicantProfile{}, ErrNotFound
	}
	if p.Age != nil {
		p.Age = model.AgeOf(*p.Age)
	}
	return p, nil
}

func (s *MemoryStore) ToggleBookmark(_ context.Context, userID, jobID string) (bool, error) {
	if userID == "" {
		return false, ErrNoUser
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.bookmarks[userID]
	if i := slices.Index(ids, jobID); i >= 0 {
		s.bookmarks[userID] = slices.Delete(ids, i, i+1)
		return false, nil
	}
	s.bookmarks[userID] = append(ids, jobID)
	return true, nil
}

func (s *MemoryStore) Bookmarks(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.bookmarks[userID])
	slices.Reverse(out)
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func (s *MemoryStore) SavePreferences(_ context.Context, userID string, prefs model.AlertPreferences) (model.AlertPreferences, error) {
	if userID == "" {
		return model.AlertPreferences{}, ErrNoUser
	}
	out, err := subscribe(prefs, s.now())
	if err != nil {
		return model.AlertPreferences{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID] = out
	return out, nil
}

func (s *MemoryStore) LoadPreferences(_ context.Context, userID string) (model.AlertPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prefs[userID]
	if !ok {
		return alerts.NewPreferences(), nil
	}
	return alerts.Normalize(p), nil
}
