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

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT user_id, full_name, phone, email, birthday, notes, sex, division
			  FROM profiles
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var (
		p                                   domain.Profile
		name, phone, email, notes, sex, div sql.NullString
		birthday                            sql.NullTime
	)
	if err = row.Scan(&p.UserID, &name, &phone, &email, &birthday, &notes, &sex, &div); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	p.FullName = nullString(name)
	p.Phone = nullString(phone)
	p.Email = nullString(email)
	p.Birthday = nullTime(birthday)
	p.Notes = nullString(notes)
	p.Sex = nullString(sex)
	p.Division = nullString(div)

	return &p, nil
}
