//go:build integration

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/migrations"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
)

var club = time.FixedZone("club", -6*60*60)

func startPostgres(t *testing.T) *dbpg.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "sacrepadel",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=sacrepadel sslmode=disable",
		host, port.Port())

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, migrations.Up(raw))
	require.NoError(t, raw.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return db
}

func firstCourt(t *testing.T, db *dbpg.DB) string {
	t.Helper()
	courts, err := NewCourtRepo(db).ListActive(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, courts)
	return courts[0].ID
}

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, club)
}

func newHold(courtID string, start, end time.Time, expires *time.Time, source domain.BookingSource) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.NewString(),
		CourtID:       courtID,
		StartAt:       start,
		EndAt:         end,
		Status:        domain.BookingStatusHold,
		Source:        source,
		Kind:          domain.KindStandard,
		HoldExpiresAt: expires,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func newCustomer(phone string) *domain.Customer {
	return &domain.Customer{
		ID:        uuid.NewString(),
		FullName:  "Ana López",
		PhoneE164: phone,
		IsActive:  true,
	}
}

func TestBookingRepo_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	db := startPostgres(t)
	repo := NewBookingRepo(db)
	customers := NewCustomerRepo(db)
	courtID := firstCourt(t, db)
	ctx := context.Background()
	now := at(9, 0)

	t.Run("overlap is rejected, touching intervals are not", func(t *testing.T) {
		first := newHold(courtID, at(10, 0), at(11, 0), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		require.NoError(t, repo.CreateHold(ctx, first))

		overlapping := newHold(courtID, at(10, 30), at(11, 30), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		assert.ErrorIs(t, repo.CreateHold(ctx, overlapping), domain.ErrSlotUnavailable)

		adjacent := newHold(courtID, at(11, 0), at(12, 0), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		assert.NoError(t, repo.CreateHold(ctx, adjacent))
	})

	t.Run("unknown court", func(t *testing.T) {
		b := newHold(uuid.NewString(), at(7, 0), at(8, 0), nil, domain.SourceReception)
		assert.ErrorIs(t, repo.CreateHold(ctx, b), domain.ErrCourtNotFound)
	})

	t.Run("concurrent holds on the same slot, exactly one wins", func(t *testing.T) {
		const workers = 10
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			won     int
			blocked int
		)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b := newHold(courtID, at(13, 0), at(14, 30), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
				err := repo.CreateHold(ctx, b)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					won++
				case assert.ErrorIs(t, err, domain.ErrSlotUnavailable):
					blocked++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, won)
		assert.Equal(t, workers-1, blocked)
	})

	t.Run("expired holds are swept and free the slot", func(t *testing.T) {
		stale := newHold(courtID, at(15, 0), at(16, 0), ptrTime(now.Add(-time.Minute)), domain.SourceWeb)
		require.NoError(t, repo.CreateHold(ctx, stale))

		n, err := repo.SweepExpiredHolds(ctx, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))

		_, err = repo.GetByID(ctx, stale.ID)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)

		fresh := newHold(courtID, at(15, 0), at(16, 0), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		assert.NoError(t, repo.CreateHold(ctx, fresh))
	})

	t.Run("confirm, pay, attend", func(t *testing.T) {
		hold := newHold(courtID, at(17, 30), at(18, 30), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		require.NoError(t, repo.CreateHold(ctx, hold))

		customer := newCustomer("+522221110001")
		require.NoError(t, customers.Create(ctx, customer))

		confirmed, err := repo.Confirm(ctx, hold.ID, customer.ID, nil, now)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)
		assert.Nil(t, confirmed.HoldExpiresAt)
		require.NotNil(t, confirmed.CustomerID)
		assert.Equal(t, customer.ID, *confirmed.CustomerID)

		_, err = repo.Confirm(ctx, hold.ID, customer.ID, nil, now)
		assert.ErrorIs(t, err, domain.ErrNotHold)

		_, err = repo.MarkAttendance(ctx, hold.ID, domain.BookingStatusCompleted)
		assert.ErrorIs(t, err, domain.ErrAttendanceUnpaid)

		paid, err := repo.MarkPaid(ctx, domain.MarkPaidInput{
			BookingID: hold.ID, Amount: 375, Method: domain.PaymentCash,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, paid.PaymentStatus)
		require.NotNil(t, paid.PaidAmount)
		assert.InDelta(t, 375.0, *paid.PaidAmount, 0.001)

		_, err = repo.MarkPaid(ctx, domain.MarkPaidInput{
			BookingID: hold.ID, Amount: 375, Method: domain.PaymentCash,
		}, now)
		assert.ErrorIs(t, err, domain.ErrAlreadyPaid)

		_, err = repo.Cancel(ctx, hold.ID, domain.CancelledByReception)
		assert.ErrorIs(t, err, domain.ErrCancelPaid)

		done, err := repo.MarkAttendance(ctx, hold.ID, domain.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, done.Status)

		_, err = repo.Cancel(ctx, hold.ID, domain.CancelledByReception)
		assert.ErrorIs(t, err, domain.ErrCancelAttendance)
	})

	t.Run("concurrent payments, exactly one is recorded", func(t *testing.T) {
		hold := newHold(courtID, at(21, 0), at(22, 0), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		require.NoError(t, repo.CreateHold(ctx, hold))

		customer := newCustomer("+522221110004")
		require.NoError(t, customers.Create(ctx, customer))
		_, err := repo.Confirm(ctx, hold.ID, customer.ID, nil, now)
		require.NoError(t, err)

		payments := []domain.MarkPaidInput{
			{BookingID: hold.ID, Amount: 400, Method: domain.PaymentCash},
			{BookingID: hold.ID, Amount: 350, Method: domain.PaymentCard},
		}

		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			winner *domain.MarkPaidInput
			lost   int
		)
		for i := range payments {
			wg.Add(1)
			go func(in domain.MarkPaidInput) {
				defer wg.Done()
				_, err := repo.MarkPaid(ctx, in, now)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					winner = &in
				case assert.ErrorIs(t, err, domain.ErrAlreadyPaid):
					lost++
				}
			}(payments[i])
		}
		wg.Wait()

		require.NotNil(t, winner)
		assert.Equal(t, 1, lost)

		stored, err := repo.GetByID(ctx, hold.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, stored.PaymentStatus)
		require.NotNil(t, stored.PaidAmount)
		assert.InDelta(t, winner.Amount, *stored.PaidAmount, 0.001)
		require.NotNil(t, stored.PaymentMethod)
		assert.Equal(t, winner.Method, *stored.PaymentMethod)
	})

	t.Run("confirm after expiry is rejected", func(t *testing.T) {
		hold := newHold(courtID, at(19, 0), at(20, 0), ptrTime(now.Add(time.Minute)), domain.SourceWeb)
		require.NoError(t, repo.CreateHold(ctx, hold))

		customer := newCustomer("+522221110002")
		require.NoError(t, customers.Create(ctx, customer))

		_, err := repo.Confirm(ctx, hold.ID, customer.ID, nil, now.Add(2*time.Minute))
		assert.ErrorIs(t, err, domain.ErrHoldExpired)

		require.NoError(t, repo.DeleteExpiredHold(ctx, hold.ID, now.Add(2*time.Minute)))
		_, err = repo.GetByID(ctx, hold.ID)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})

	t.Run("reception hold cannot be confirmed from the web", func(t *testing.T) {
		hold := newHold(courtID, at(20, 0), at(21, 0), nil, domain.SourceReception)
		require.NoError(t, repo.CreateHold(ctx, hold))

		customer := newCustomer("+522221110003")
		require.NoError(t, customers.Create(ctx, customer))

		_, err := repo.Confirm(ctx, hold.ID, customer.ID, nil, now)
		assert.ErrorIs(t, err, domain.ErrNotWebHold)

		cancelled, err := repo.Cancel(ctx, hold.ID, domain.CancelledByReception)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

		_, err = repo.Cancel(ctx, hold.ID, domain.CancelledByReception)
		assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

		// отменённая бронь больше не блокирует слот
		again := newHold(courtID, at(20, 0), at(21, 0), nil, domain.SourceReception)
		assert.NoError(t, repo.CreateHold(ctx, again))
	})

	t.Run("extend hold keeps the exclusion", func(t *testing.T) {
		hold := newHold(courtID, at(7, 0), at(8, 0), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		require.NoError(t, repo.CreateHold(ctx, hold))
		blocker := newHold(courtID, at(9, 0), at(10, 0), ptrTime(now.Add(10*time.Minute)), domain.SourceWeb)
		require.NoError(t, repo.CreateHold(ctx, blocker))

		extended, err := repo.ExtendHold(ctx, hold.ID, at(8, 30), now, now.Add(10*time.Minute))
		require.NoError(t, err)
		assert.True(t, extended.EndAt.Equal(at(8, 30)))

		_, err = repo.ExtendHold(ctx, hold.ID, at(9, 30), now, now.Add(10*time.Minute))
		assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

		released, err := repo.ReleaseHold(ctx, hold.ID)
		require.NoError(t, err)
		assert.True(t, released)

		released, err = repo.ReleaseHold(ctx, hold.ID)
		require.NoError(t, err)
		assert.False(t, released)
	})

	t.Run("reception list hides customer cancellations", func(t *testing.T) {
		views, err := repo.ListForReception(ctx, at(0, 0), at(23, 59))
		require.NoError(t, err)
		require.NotEmpty(t, views)
		for _, v := range views {
			if v.Status == domain.BookingStatusCancelled {
				require.NotNil(t, v.CancelledBy)
				assert.Equal(t, domain.CancelledByReception, *v.CancelledBy)
			}
			assert.NotEmpty(t, v.CourtName)
		}

		blocking, err := repo.ListBlocking(ctx, at(0, 0), at(23, 59))
		require.NoError(t, err)
		for _, b := range blocking {
			assert.NotEqual(t, domain.BookingStatusCancelled, b.Status)
		}
	})
}

func TestCustomerRepo_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	db := startPostgres(t)
	repo := NewCustomerRepo(db)
	ctx := context.Background()

	c := newCustomer("+522229998877")
	require.NoError(t, repo.Create(ctx, c))

	dup := newCustomer("+522229998877")
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrPhoneTaken)

	found, err := repo.GetByPhone(ctx, "+522229998877")
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	email := "ana@example.com"
	found.FullName = "Ana María López"
	found.Email = &email
	require.NoError(t, repo.Update(ctx, found))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María López", got.FullName)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)

	res, err := repo.Search(ctx, "maría", 10)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, c.ID, res[0].ID)

	_, err = repo.GetByPhone(ctx, "+520000000000")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
