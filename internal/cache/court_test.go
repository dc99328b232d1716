package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/redis"
)

type memStore struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return "", redis.NoMatches
	}
	return v, nil
}

func (s *memStore) SetWithExpiration(_ context.Context, key string, value any, expiration time.Duration) error {
	s.data[key] = value.(string)
	s.ttls[key] = expiration
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestCourtCache_GetByID_ReadThrough(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	store := newMemStore()
	c := NewCourtCache(repo, store, time.Minute, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Court{ID: "c1", Name: "Cancha 1", IsActive: true}, nil).Once()

	first, err := c.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	second, err := c.GetByID(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "Cancha 1", first.Name)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, time.Minute, store.ttls[courtKeyPrefix+"c1"])
}

func TestCourtCache_GetByID_NotFoundIsNotCached(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	store := newMemStore()
	c := NewCourtCache(repo, store, time.Minute, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, domain.ErrCourtNotFound).Twice()

	_, err := c.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
	_, err = c.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
	assert.Empty(t, store.data)
}

func TestCourtCache_ListActive_RedisDown(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	c := NewCourtCache(repo, store, time.Minute, newTestLogger(t))

	courts := []*domain.Court{{ID: "c1"}, {ID: "c2"}}
	repo.EXPECT().ListActive(mock.Anything).Return(courts, nil).Twice()

	for i := 0; i < 2; i++ {
		got, err := c.ListActive(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
}

func TestCourtCache_ListActive_CorruptedEntry(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	store := newMemStore()
	store.data[activeCourtsKey] = "{not json"
	c := NewCourtCache(repo, store, time.Minute, newTestLogger(t))

	repo.EXPECT().ListActive(mock.Anything).Return([]*domain.Court{{ID: "c1"}}, nil)

	got, err := c.ListActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, store.data[activeCourtsKey], `"id":"c1"`)
}
