package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
)

const customerSearchLimit = 20

type CustomerService struct {
	customerRepo ports.CustomerRepo
}

func NewCustomerService(customerRepo ports.CustomerRepo) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) Search(ctx context.Context, query string) ([]*domain.Customer, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return nil, fmt.Errorf("%w: query must be at least 2 characters", domain.ErrValidation)
	}

	return s.customerRepo.Search(ctx, query, customerSearchLimit)
}
