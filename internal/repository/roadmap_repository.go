package repository

import (
	"context"
	"encoding/json"
	"time"

	"career-guide/internal/database"
	"career-guide/internal/domain/roadmap"

	"github.com/google/uuid"
)

const roadmapColumns = `id, user_id, target_job, timeframe, content, created_at, updated_at`

type PostgresRoadmapRepository struct {
	db database.DB
}

func NewPostgresRoadmapRepository(db database.DB) *PostgresRoadmapRepository {
	return &PostgresRoadmapRepository{db: db}
}

func (r *PostgresRoadmapRepository) Create(ctx context.Context, rm roadmap.Roadmap) (roadmap.Roadmap, error) {
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	now := time.Now().UTC()
	rm.CreatedAt = now
	rm.UpdatedAt = now

	content, err := json.Marshal(rm.Content)
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO roadmaps (`+roadmapColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rm.ID, rm.UserID, rm.TargetJob, rm.Timeframe, content, rm.CreatedAt, rm.UpdatedAt,
	)
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	return rm, nil
}

func (r *PostgresRoadmapRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (roadmap.Roadmap, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roadmapColumns+` FROM roadmaps WHERE id = $1 AND user_id = $2`, id, userID)
	rm, err := scanRoadmap(row)
	if err != nil {
		if isNoRows(err) {
			return roadmap.Roadmap{}, roadmap.ErrNotFound
		}
		return roadmap.Roadmap{}, err
	}
	return rm, nil
}

func (r *PostgresRoadmapRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]roadmap.Roadmap, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roadmapColumns+` FROM roadmaps WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]roadmap.Roadmap, 0)
	for rows.Next() {
		rm, err := scanRoadmap(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRoadmapRepository) UpdateContent(ctx context.Context, rm roadmap.Roadmap) error {
	content, err := json.Marshal(rm.Content)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE roadmaps SET content = $3, updated_at = now() WHERE id = $1 AND user_id = $2`,
		rm.ID, rm.UserID, content,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return roadmap.ErrNotFound
	}
	return nil
}

func scanRoadmap(row database.Row) (roadmap.Roadmap, error) {
	var rm roadmap.Roadmap
	var content []byte
	if err := row.Scan(&rm.ID, &rm.UserID, &rm.TargetJob, &rm.Timeframe, &content, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		return roadmap.Roadmap{}, err
	}
	if err := json.Unmarshal(content, &rm.Content); err != nil {
		return roadmap.Roadmap{}, err
	}
	return rm, nil
}
