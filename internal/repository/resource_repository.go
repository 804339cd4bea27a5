package repository

import (
	"context"
	"fmt"
	"time"

	"career-guide/internal/database"
	"career-guide/internal/domain/resource"

	"github.com/google/uuid"
)

const resourceColumns = `id, title, platform, url, related_skills, cost, description, created_by, created_at, updated_at`

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) Create(ctx context.Context, res resource.Resource) (resource.Resource, error) {
	now := time.Now().UTC()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO resources (`+resourceColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		res.ID, res.Title, res.Platform, res.URL, res.RelatedSkills, string(res.Cost), res.Description,
		res.CreatedBy, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return resource.Resource{}, resource.ErrDuplicate
		}
		return resource.Resource{}, err
	}
	return res, nil
}

func (r *PostgresResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id)
	res, err := scanResource(row)
	if err != nil {
		if isNoRows(err) {
			return resource.Resource{}, resource.ErrNotFound
		}
		return resource.Resource{}, err
	}
	return res, nil
}

func (r *PostgresResourceRepository) List(ctx context.Context, f resource.ListFilter) ([]resource.Resource, int, error) {
	var w whereBuilder
	if f.Skill != "" {
		w.add(`$%d = ANY(related_skills)`, f.Skill)
	}
	if f.Cost != "" {
		w.add(`cost = $%d`, string(f.Cost))
	}
	if f.Platform != "" {
		w.add(`platform ILIKE $%d`, "%"+f.Platform+"%")
	}
	if len(f.Patterns) > 0 {
		w.add(`(title ILIKE ANY($%d) OR platform ILIKE ANY($%d) OR description ILIKE ANY($%d))`, f.Patterns)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM resources`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := w.next()
	args := append(w.args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM resources%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		resourceColumns, w.sql(), limitPos, limitPos+1)

	out, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresResourceRepository) ListRecent(ctx context.Context, limit int) ([]resource.Resource, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.query(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresResourceRepository) query(ctx context.Context, query string, args ...any) ([]resource.Resource, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resource.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanResource(row database.Row) (resource.Resource, error) {
	var res resource.Resource
	var cost string
	err := row.Scan(
		&res.ID, &res.Title, &res.Platform, &res.URL, &res.RelatedSkills, &cost, &res.Description,
		&res.CreatedBy, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return resource.Resource{}, err
	}
	res.Cost = resource.Cost(cost)
	return res, nil
}

type PostgresMarkRepository struct {
	db database.DB
}

func NewPostgresMarkRepository(db database.DB) *PostgresMarkRepository {
	return &PostgresMarkRepository{db: db}
}

func (r *PostgresMarkRepository) Upsert(ctx context.Context, m resource.Mark) (resource.Mark, error) {
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO resource_marks (user_id, resource_id, status, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, resource_id) DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`,
		m.UserID, m.ResourceID, string(m.Status), m.UpdatedAt,
	)
	if err != nil {
		return resource.Mark{}, err
	}
	return m, nil
}

func (r *PostgresMarkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]resource.Mark, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, resource_id, status, updated_at FROM resource_marks WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resource.Mark, 0)
	for rows.Next() {
		var m resource.Mark
		var status string
		if err := rows.Scan(&m.UserID, &m.ResourceID, &status, &m.UpdatedAt); err != nil {
			return nil, err
		}
		m.Status = resource.MarkStatus(status)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
