package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"naukri/matcher-service/internal/model"
)

// ─── PostgresRepository ──────────────────────────────────────────────────────

// PostgresRepository is the production catalog backed by a pgx pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns a repository using pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the job_postings table if it does not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS job_postings (
			id                TEXT PRIMARY KEY,
			job_name          TEXT NOT NULL,
			min_age           INTEGER NOT NULL,
			max_age           INTEGER NOT NULL,
			qualification     TEXT NOT NULL,
			category          TEXT NOT NULL,
			gender            TEXT NOT NULL,
			state             TEXT NOT NULL,
			competition_level TEXT NOT NULL,
			status            TEXT NOT NULL,
			deadline          TIMESTAMPTZ,
			required_streams  TEXT[] NOT NULL DEFAULT ARRAY['Any'],
			salary_range      TEXT NOT NULL DEFAULT '',
			apply_link        TEXT NOT NULL DEFAULT '',
			official_website  TEXT NOT NULL DEFAULT '',
			notification_link TEXT NOT NULL DEFAULT '',
			syllabus_link     TEXT NOT NULL DEFAULT '',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS job_postings_status_idx ON job_postings (status, created_at DESC)`)
	if err != nil {
		return fmt.Errorf("ensureSchema: %w", err)
	}
	return nil
}

const pgColumns = `id, job_name, min_age, max_age, qualification, category, gender, state,
	competition_level, status, deadline, required_streams, salary_range, apply_link,
	official_website, notification_link, syllabus_link, created_at, updated_at`

func scanPostgresJob(row pgx.Row) (model.JobPosting, error) {
	var (
		j        model.JobPosting
		deadline *time.Time
	)
	err := row.Scan(
		&j.ID, &j.Name, &j.MinAge, &j.MaxAge, &j.Qualification, &j.Category, &j.Gender, &j.State,
		&j.CompetitionLevel, &j.Status, &deadline, &j.RequiredStreams, &j.SalaryRange, &j.ApplyLink,
		&j.OfficialWebsite, &j.NotificationLink, &j.SyllabusLink, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return model.JobPosting{}, err
	}
	if deadline != nil {
		j.Deadline = deadline.UTC()
	}
	j.CreatedAt = j.CreatedAt.UTC()
	j.UpdatedAt = j.UpdatedAt.UTC()
	return j, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ─── Repository ──────────────────────────────────────────────────────────────

func (r *PostgresRepository) Get(ctx context.Context, id string) (model.JobPosting, error) {
	j, err := scanPostgresJob(r.pool.QueryRow(ctx,
		`SELECT `+pgColumns+` FROM job_postings WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.JobPosting{}, ErrNotFound
	}
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("getJobPosting: %w", err)
	}
	return j, nil
}

// Put upserts a posting. created_at survives updates because the conflict
// clause never touches it; the stored row is returned via RETURNING.
func (r *PostgresRepository) Put(ctx context.Context, job model.JobPosting) (model.JobPosting, error) {
	job = prepare(job, time.Time{}, time.Now())
	if err := Validate(job); err != nil {
		return model.JobPosting{}, err
	}

	stored, err := scanPostgresJob(r.pool.QueryRow(ctx,
		`INSERT INTO job_postings (`+pgColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 ON CONFLICT (id) DO UPDATE SET
		   job_name = EXCLUDED.job_name,
		   min_age = EXCLUDED.min_age,
		   max_age = EXCLUDED.max_age,
		   qualification = EXCLUDED.qualification,
		   category = EXCLUDED.category,
		   gender = EXCLUDED.gender,
		   state = EXCLUDED.state,
		   competition_level = EXCLUDED.competition_level,
		   status = EXCLUDED.status,
		   deadline = EXCLUDED.deadline,
		   required_streams = EXCLUDED.required_streams,
		   salary_range = EXCLUDED.salary_range,
		   apply_link = EXCLUDED.apply_link,
		   official_website = EXCLUDED.official_website,
		   notification_link = EXCLUDED.notification_link,
		   syllabus_link = EXCLUDED.syllabus_link,
		   updated_at = EXCLUDED.updated_at
		 RETURNING `+pgColumns,
		job.ID, job.Name, job.MinAge, job.MaxAge, string(job.Qualification), string(job.Category),
		string(job.Gender), job.State, string(job.CompetitionLevel), string(job.Status),
		nullableTime(job.Deadline), job.RequiredStreams, job.SalaryRange, job.ApplyLink,
		job.OfficialWebsite, job.NotificationLink, job.SyllabusLink, job.CreatedAt, job.UpdatedAt,
	))
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("putJobPosting: %w", err)
	}
	return stored, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleteJobPosting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, opts ListOptions) ([]model.JobPosting, error) {
	const base = `SELECT ` + pgColumns + ` FROM job_postings`
	const order = ` ORDER BY created_at DESC, id ASC`

	var (
		rows pgx.Rows
		err  error
	)
	// LIMIT NULL means no limit in Postgres.
	var limit *int
	if opts.Limit > 0 {
		limit = &opts.Limit
	}
	if opts.Status != "" {
		rows, err = r.pool.Query(ctx, base+` WHERE status = $1`+order+` LIMIT $2`, string(opts.Status), limit)
	} else {
		rows, err = r.pool.Query(ctx, base+order+` LIMIT $1`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("listJobPostings query: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.JobPosting, 0)
	for rows.Next() {
		j, err := scanPostgresJob(rows)
		if err != nil {
			return nil, fmt.Errorf("listJobPostings scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *PostgresRepository) Stats(ctx context.Context) (map[model.JobStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM job_postings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("jobPostingStats: %w", err)
	}
	defer rows.Close()

	stats := make(map[model.JobStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("jobPostingStats scan: %w", err)
		}
		stats[model.JobStatus(status)] = n
	}
	return stats, rows.Err()
}

func (r *PostgresRepository) ExpireBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`UPDATE job_postings
		 SET status = $1, updated_at = NOW()
		 WHERE status = $2 AND deadline IS NOT NULL AND deadline < $3
		 RETURNING id`,
		string(model.StatusExpired), string(model.StatusActive), cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("expireJobPostings: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("expireJobPostings collect: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
