package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"naukri/matcher-service/internal/model"
)

// SQLiteRepository stores postings in a single SQLite table. Timestamps are
// unix nanoseconds and required streams a JSON array.
type SQLiteRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository wraps an open database. Call Migrate before use.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db, now: time.Now}
}

// Migrate creates the schema if it does not exist.
func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
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
	deadline          INTEGER NOT NULL DEFAULT 0,
	required_streams  TEXT NOT NULL DEFAULT '["Any"]',
	salary_range      TEXT NOT NULL DEFAULT '',
	apply_link        TEXT NOT NULL DEFAULT '',
	official_website  TEXT NOT NULL DEFAULT '',
	notification_link TEXT NOT NULL DEFAULT '',
	syllabus_link     TEXT NOT NULL DEFAULT '',
	created_at        INTEGER NOT NULL,
	updated_at        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS job_postings_status_idx ON job_postings (status, created_at);
`)
	if err != nil {
		return fmt.Errorf("migrate job_postings: %w", err)
	}
	return nil
}

const sqliteColumns = `id, job_name, min_age, max_age, qualification, category, gender, state,
	competition_level, status, deadline, required_streams, salary_range, apply_link,
	official_website, notification_link, syllabus_link, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteJob(row rowScanner) (model.JobPosting, error) {
	var (
		j                model.JobPosting
		deadline         int64
		streams          string
		created, updated int64
	)
	if err := row.Scan(
		&j.ID, &j.Name, &j.MinAge, &j.MaxAge, &j.Qualification, &j.Category, &j.Gender, &j.State,
		&j.CompetitionLevel, &j.Status, &deadline, &streams, &j.SalaryRange, &j.ApplyLink,
		&j.OfficialWebsite, &j.NotificationLink, &j.SyllabusLink, &created, &updated,
	); err != nil {
		return model.JobPosting{}, err
	}
	if err := json.Unmarshal([]byte(streams), &j.RequiredStreams); err != nil {
		return model.JobPosting{}, fmt.Errorf("decode required_streams of %s: %w", j.ID, err)
	}
	if deadline != 0 {
		j.Deadline = time.Unix(0, deadline).UTC()
	}
	j.CreatedAt = time.Unix(0, created).UTC()
	j.UpdatedAt = time.Unix(0, updated).UTC()
	return j, nil
}

func unixNanoOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (model.JobPosting, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM job_postings WHERE id = ?`, id)
	j, err := scanSQLiteJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.JobPosting{}, ErrNotFound
	}
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("get job posting: %w", err)
	}
	return j, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, job model.JobPosting) (model.JobPosting, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.JobPosting{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var created time.Time
	if job.ID != "" {
		var ns int64
		switch err := tx.QueryRowContext(ctx, `SELECT created_at FROM job_postings WHERE id = ?`, job.ID).Scan(&ns); err {
		case nil:
			created = time.Unix(0, ns)
		case sql.ErrNoRows:
		default:
			return model.JobPosting{}, fmt.Errorf("lookup job posting: %w", err)
		}
	}

	job = prepare(job, created, r.now())
	if err := Validate(job); err != nil {
		return model.JobPosting{}, err
	}
	streams, err := json.Marshal(job.RequiredStreams)
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("encode required_streams: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO job_postings (`+sqliteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			job_name = excluded.job_name,
			min_age = excluded.min_age,
			max_age = excluded.max_age,
			qualification = excluded.qualification,
			category = excluded.category,
			gender = excluded.gender,
			state = excluded.state,
			competition_level = excluded.competition_level,
			status = excluded.status,
			deadline = excluded.deadline,
			required_streams = excluded.required_streams,
			salary_range = excluded.salary_range,
			apply_link = excluded.apply_link,
			official_website = excluded.official_website,
			notification_link = excluded.notification_link,
			syllabus_link = excluded.syllabus_link,
			updated_at = excluded.updated_at`,
		job.ID, job.Name, job.MinAge, job.MaxAge, string(job.Qualification), string(job.Category),
		string(job.Gender), job.State, string(job.CompetitionLevel), string(job.Status),
		unixNanoOrZero(job.Deadline), string(streams), job.SalaryRange, job.ApplyLink,
		job.OfficialWebsite, job.NotificationLink, job.SyllabusLink,
		job.CreatedAt.UnixNano(), job.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return model.JobPosting{}, fmt.Errorf("upsert job posting: %w", err)
	}

	committed = true
	if err := tx.Commit(); err != nil {
		return model.JobPosting{}, err
	}
	return job, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM job_postings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job posting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, opts ListOptions) ([]model.JobPosting, error) {
	limit := -1
	if opts.Limit > 0 {
		limit = opts.Limit
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+sqliteColumns+`
		FROM job_postings
		WHERE (? = '' OR status = ?)
		ORDER BY created_at DESC, id ASC
		LIMIT ?`,
		string(opts.Status), string(opts.Status), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.JobPosting, 0)
	for rows.Next() {
		j, err := scanSQLiteJob(rows)
		if err != nil {
			return nil, fmt.Errorf("list job postings scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *SQLiteRepository) Stats(ctx context.Context) (map[model.JobStatus]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(1) FROM job_postings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("job posting stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[model.JobStatus]int)
	for rows.Next() {
		var (
			status model.JobStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		stats[status] = n
	}
	return stats, rows.Err()
}

func (r *SQLiteRepository) ExpireBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		UPDATE job_postings
		SET status = ?, updated_at = ?
		WHERE status = ? AND deadline != 0 AND deadline < ?
		RETURNING id`,
		string(model.StatusExpired), r.now().UnixNano(), string(model.StatusActive), cutoff.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("expire job postings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
