package ports

import (
	"context"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phoneE164 string) (*domain.Customer, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Customer, error)
}

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
