package service

import (
	"context"
	"testing"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Search(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	found := []*domain.Customer{{ID: "cu1", FullName: "Ana López"}}
	repo.EXPECT().Search(mock.Anything, "ana", customerSearchLimit).Return(found, nil)

	got, err := svc.Search(context.Background(), "  ana ")

	require.NoError(t, err)
	assert.Equal(t, found, got)
}

func TestCustomerService_Search_TooShort(t *testing.T) {
	svc := NewCustomerService(mocks.NewMockCustomerRepo(t))

	for _, q := range []string{"", " ", "a", " ñ "} {
		_, err := svc.Search(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrValidation, "query %q", q)
	}
}
