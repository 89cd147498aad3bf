package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// ActivityRepository defines persistence access for the audit trail.
type ActivityRepository interface {
	Create(ctx context.Context, log *domain.ActivityLog) error
	List(ctx context.Context, offset, limit int) ([]domain.ActivityLog, error)
}

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed implementation.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Create(ctx context.Context, log *domain.ActivityLog) error {
	const query = `
        INSERT INTO activity_logs (user_id, action, entity_type, entity_id, details)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, timestamp`

	return r.pool.QueryRow(ctx, query,
		log.UserID,
		log.Action,
		log.EntityType,
		log.EntityID,
		log.Details,
	).Scan(&log.ID, &log.Timestamp)
}

func (r *activityRepository) List(ctx context.Context, offset, limit int) ([]domain.ActivityLog, error) {
	const query = `
        SELECT id, user_id, action, entity_type, entity_id, details, timestamp
        FROM activity_logs ORDER BY id DESC OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.ActivityLog
	for rows.Next() {
		var log domain.ActivityLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.Action,
			&log.EntityType,
			&log.EntityID,
			&log.Details,
			&log.Timestamp,
		); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
