package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CourtRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourtRepo(db *dbpg.DB) *CourtRepository {
	return &CourtRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CourtRepository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	query := `SELECT id, name, is_active, created_at FROM courts WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}

	var c domain.Court
	if err = row.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("scan court: %w", err)
	}

	return &c, nil
}

func (r *CourtRepository) ListActive(ctx context.Context) ([]*domain.Court, error) {
	query := `SELECT id, name, is_active, created_at
			  FROM courts
			  WHERE is_active
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Court
	for rows.Next() {
		var c domain.Court
		if err = rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan court: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
