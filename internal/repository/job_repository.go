package repository

import (
	"context"
	"fmt"
	"time"

	"career-guide/internal/database"
	"career-guide/internal/domain/job"
	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
)

const jobColumns = `id, title, company, location, required_skills, recommended_experience, job_type,
	description, track, apply_url, tags, created_by, created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	now := time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		j.ID, j.Title, j.Company, j.Location, j.RequiredSkills, string(j.RecommendedExperience), string(j.JobType),
		j.Description, j.Track, j.ApplyURL, j.Tags, j.CreatedBy, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return job.Job{}, job.ErrDuplicate
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, f job.ListFilter) ([]job.Job, int, error) {
	var w whereBuilder
	if f.Track != "" {
		w.add(`lower(track) = lower($%d)`, f.Track)
	}
	if f.Location != "" {
		w.add(`location ILIKE $%d`, "%"+f.Location+"%")
	}
	if f.JobType != "" {
		w.add(`job_type = $%d`, string(f.JobType))
	}
	if len(f.Patterns) > 0 {
		w.add(`(title ILIKE ANY($%d) OR company ILIKE ANY($%d) OR description ILIKE ANY($%d))`, f.Patterns)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := w.next()
	args := append(w.args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, w.sql(), limitPos, limitPos+1)

	out, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) ListRecent(ctx context.Context, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresJobRepository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE created_by = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresJobRepository) query(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var exp, jobType string
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.RequiredSkills, &exp, &jobType,
		&j.Description, &j.Track, &j.ApplyURL, &j.Tags, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.RecommendedExperience = skill.ParseExperienceLevel(exp)
	j.JobType = job.Type(jobType)
	return j, nil
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Apply inserts the application. A repeated application returns the
// existing row together with job.ErrAlreadyApplied.
func (r *PostgresApplicationRepository) Apply(ctx context.Context, a job.Application) (job.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	n, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (id, job_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (job_id, user_id) DO NOTHING`,
		a.ID, a.JobID, a.UserID, a.CreatedAt,
	)
	if err != nil {
		return job.Application{}, err
	}
	if n > 0 {
		return a, nil
	}

	var existing job.Application
	err = r.db.QueryRow(ctx,
		`SELECT id, job_id, user_id, created_at FROM job_applications WHERE job_id = $1 AND user_id = $2`,
		a.JobID, a.UserID,
	).Scan(&existing.ID, &existing.JobID, &existing.UserID, &existing.CreatedAt)
	if err != nil {
		return job.Application{}, err
	}
	return existing, job.ErrAlreadyApplied
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, user_id, created_at FROM job_applications WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Application, 0)
	for rows.Next() {
		var a job.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
