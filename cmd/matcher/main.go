// matcher-service
//
// Government-job eligibility matcher. Two modes:
//
//	matcher -profile me.json [-export out.xlsx]   one-shot: print (and export) matches
//	matcher -user <id> [-saved]                   one-shot using a stored profile
//	matcher -user <id> -bookmark <jobID>          save or unsave a posting
//	matcher -user <id> -subscribe prefs.json      subscribe to job alerts
//	matcher                                       service: expiry sweep + gRPC health
//
// The catalog lives in Postgres, SQLite or memory (CATALOG_DRIVER). Profiles,
// bookmarks and alert preferences live in Redis when REDIS_URL is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"naukri/matcher-service/internal/catalog"
	"naukri/matcher-service/internal/config"
	"naukri/matcher-service/internal/db"
	"naukri/matcher-service/internal/grpcserver"
	"naukri/matcher-service/internal/profile"
	"naukri/matcher-service/internal/scheduler"
)

const version = "1.0.0"

type options struct {
	profilePath string
	userID      string
	exportPath  string
	category    string
	tier        string
	smart       bool
	hideHigh    bool
	savedOnly   bool
	explain     bool
	latest      int
	seed        bool

	bookmark      string
	subscribePath string
	prefill       string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.profilePath, "profile", "", "applicant profile JSON file (one-shot mode)")
	flag.StringVar(&o.userID, "user", "", "user ID whose stored profile and bookmarks to use (one-shot mode)")
	flag.StringVar(&o.exportPath, "export", "", "write matches to this .xlsx workbook")
	flag.StringVar(&o.category, "category", "All", "category tag filter (SSC, Banking, Defence, ...)")
	flag.StringVar(&o.tier, "tier", "All", "competition tier: All, Low, Medium, HighRisk")
	flag.BoolVar(&o.smart, "smart", false, "smart mode: hide High competition postings")
	flag.BoolVar(&o.hideHigh, "hide-high", false, "hide High competition postings")
	flag.BoolVar(&o.savedOnly, "saved", false, "show the user's saved postings only (requires -user)")
	flag.BoolVar(&o.explain, "explain", false, "print the verdict for every Active posting")
	flag.IntVar(&o.latest, "latest", 0, "print the n newest Active postings and exit")
	flag.BoolVar(&o.seed, "seed", false, "load the sample catalog into an empty store")
	flag.StringVar(&o.bookmark, "bookmark", "", "toggle this job ID in the user's saved postings (requires -user)")
	flag.StringVar(&o.subscribePath, "subscribe", "", "alert preferences JSON to subscribe the user with (requires -user)")
	flag.StringVar(&o.prefill, "prefill", "", "with -subscribe: add the categories and alert types implied by this job ID")
	flag.Parse()
	return o
}

func main() {
	_ = godotenv.Load()
	opts := parseFlags()

	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[matcher-service] Config error: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Catalog ─────────────────────────────────────────────────────────────
	repo, closeRepo, err := openCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("[matcher-service] Catalog: %v", err)
	}
	defer closeRepo()

	if opts.seed {
		n, err := seedCatalog(ctx, repo)
		if err != nil {
			log.Fatalf("[matcher-service] Seed: %v", err)
		}
		log.Printf("[matcher-service] Seeded %d sample posting(s)", n)
	}

	// ── Redis ───────────────────────────────────────────────────────────────
	var (
		rdb   *redis.Client
		store profile.Store = profile.NewMemoryStore()
	)
	if cfg.RedisURL != "" {
		log.Println("[matcher-service] Connecting to Redis…")
		rdb, err = db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("[matcher-service] Redis: %v", err)
		}
		defer rdb.Close()
		store = profile.NewRedisStore(rdb)
		log.Println("[matcher-service] Redis connected ✓")
	} else {
		log.Println("[matcher-service] REDIS_URL not set — profiles kept in memory, events disabled")
	}

	// ── One-shot ────────────────────────────────────────────────────────────
	if opts.profilePath != "" || opts.userID != "" || opts.latest > 0 ||
		opts.bookmark != "" || opts.subscribePath != "" || opts.prefill != "" {
		if err := runOnce(ctx, repo, store, opts, os.Stdout); err != nil {
			log.Fatalf("[matcher-service] %v", err)
		}
		return
	}

	// ── Service ─────────────────────────────────────────────────────────────
	var pub scheduler.Publisher
	if rdb != nil {
		pub = rdb
	}
	sweeper := scheduler.New(repo, pub, cfg.SweepIntervalHours)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatalf("[matcher-service] Scheduler: %v", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPCPort))
	if err != nil {
		log.Fatalf("[matcher-service] gRPC listen: %v", err)
	}
	srv := grpcserver.NewServer(repo)
	srv.CheckNow(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[matcher-service] v%s gRPC health listening on :%s", version, cfg.GRPCPort)
		return srv.Serve(lis)
	})
	g.Go(func() error {
		srv.Watch(gctx, 30*time.Second)
		return nil
	})

	// ── Graceful shutdown ───────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-gctx.Done():
		log.Println("[matcher-service] gRPC server exited")
	}

	log.Println("[matcher-service] Shutting down…")
	cancel()
	sweeper.Stop()
	srv.Stop()
	if err := g.Wait(); err != nil {
		log.Printf("[matcher-service] Shutdown error: %v", err)
	}
	log.Println("[matcher-service] Stopped.")
}

// openCatalog connects the configured catalog driver and returns a close
// function for it.
func openCatalog(ctx context.Context, cfg *config.Config) (catalog.Repository, func(), error) {
	switch cfg.CatalogDriver {
	case config.DriverPostgres:
		log.Println("[matcher-service] Connecting to PostgreSQL…")
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo := catalog.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Println("[matcher-service] PostgreSQL connected ✓")
		return repo, pool.Close, nil

	case config.DriverSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo := catalog.NewSQLiteRepository(conn)
		if err := repo.Migrate(ctx); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		log.Printf("[matcher-service] SQLite catalog at %s ✓", cfg.SQLitePath)
		return repo, func() { _ = conn.Close() }, nil

	default:
		log.Println("[matcher-service] Using in-memory sample catalog")
		return catalog.NewMemoryRepository(catalog.SampleJobs(time.Now())...), func() {}, nil
	}
}

// seedCatalog stores the sample postings when repo is empty.
func seedCatalog(ctx context.Context, repo catalog.Repository) (int, error) {
	stats, err := repo.Stats(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range stats {
		total += n
	}
	if total > 0 {
		slog.Info("catalog not empty, skipping seed", "postings", total)
		return 0, nil
	}
	sample := catalog.SampleJobs(time.Now())
	for _, job := range sample {
		if _, err := repo.Put(ctx, job); err != nil {
			return 0, fmt.Errorf("seed %s: %w", job.ID, err)
		}
	}
	return len(sample), nil
}
