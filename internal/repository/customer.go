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

const customerColumns = `id, full_name, phone_e164, email, birthday, notes, sex, division,
	is_active, created_at, updated_at`

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, full_name, phone_e164, email, birthday, notes, sex, division,
                       is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			  RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx, query, c.ID, c.FullName, c.PhoneE164, c.Email,
		c.Birthday, c.Notes, c.Sex, c.Division, c.IsActive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPhoneTaken
		}
		return fmt.Errorf("insert customer: %w", err)
	}

	return nil
}

// Update перезаписывает профиль клиента, побеждает последняя запись.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers
			  SET full_name = $2, email = $3, birthday = $4, notes = $5,
			      sex = $6, division = $7, updated_at = now()
			  WHERE id = $1
			  RETURNING updated_at`

	err := r.db.QueryRowContext(
		ctx, query, c.ID, c.FullName, c.Email,
		c.Birthday, c.Notes, c.Sex, c.Division,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phoneE164 string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone_e164 = $1`
	return r.getOne(ctx, query, phoneE164)
}

func (r *CustomerRepository) Search(ctx context.Context, q string, limit int) ([]*domain.Customer, error) {
	query := `SELECT ` + customerColumns + `
			  FROM customers
			  WHERE is_active
			    AND (full_name ILIKE '%' || $1::text || '%' OR phone_e164 LIKE '%' || $1::text || '%')
			  ORDER BY full_name
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CustomerRepository) getOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return c, nil
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var (
		c                      domain.Customer
		email, notes, sex, div sql.NullString
		birthday               sql.NullTime
	)

	if err := row.Scan(
		&c.ID, &c.FullName, &c.PhoneE164, &email, &birthday,
		&notes, &sex, &div, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Email = nullString(email)
	c.Birthday = nullTime(birthday)
	c.Notes = nullString(notes)
	c.Sex = nullString(sex)
	c.Division = nullString(div)

	return &c, nil
}
