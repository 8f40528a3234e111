// Package scheduler runs the cron job that expires Active postings whose
// last date has passed.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"naukri/matcher-service/internal/catalog"
)

// EventJobExpired is published once per sweep that expired anything.
const EventJobExpired = "EVENT_JOB_EXPIRED"

// Publisher is the subset of *redis.Client the sweeper needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Sweeper wraps robfig/cron and the expiry pass.
type Sweeper struct {
	cron *cron.Cron
	repo catalog.Repository
	pub  Publisher // nil disables events
	spec string    // cron spec, e.g. "@every 6h"
	now  func() time.Time
	wg   sync.WaitGroup // startup sweep
}

// New creates a Sweeper that fires every intervalHours hours. pub may be nil.
func New(repo catalog.Repository, pub Publisher, intervalHours int) *Sweeper {
	return &Sweeper{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		repo: repo,
		pub:  pub,
		spec: fmt.Sprintf("@every %dh", intervalHours),
		now:  time.Now,
	}
}

// Start registers the job and starts the scheduler. One sweep also runs
// immediately so postings that lapsed while the service was down are
// expired without waiting for the first tick.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Expiry sweep started — spec: %s", s.spec)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
	return nil
}

// Stop shuts down the scheduler and waits for running sweeps, the startup
// one included, to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
	log.Println("[scheduler] Expiry sweep stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		log.Printf("[scheduler] Expiry sweep error: %v", err)
	}
}

// RunOnce expires every Active posting whose deadline is before the start of
// today (UTC) and returns their IDs.
func (s *Sweeper) RunOnce(ctx context.Context) ([]string, error) {
	cutoff := catalog.Cutoff(s.now())
	ids, err := s.repo.ExpireBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("expire postings: %w", err)
	}
	if len(ids) == 0 {
		slog.Debug("expiry sweep: nothing to expire", "cutoff", cutoff)
		return ids, nil
	}

	slog.Info("expiry sweep", "expired", len(ids), "cutoff", cutoff)
	if s.pub != nil {
		event, _ := json.Marshal(map[string]any{
			"type":   EventJobExpired,
			"jobIds": ids,
			"cutoff": cutoff.Format(time.RFC3339),
		})
		if err := s.pub.Publish(ctx, EventJobExpired, event).Err(); err != nil {
			slog.Warn("publish "+EventJobExpired+" failed", "err", err)
		}
	}
	return ids, nil
}
