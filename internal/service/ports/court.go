package ports

import (
	"context"

	"github.com/Roy125512/SacrePadel/internal/domain"
)

type CourtRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	ListActive(ctx context.Context) ([]*domain.Court, error)
}
