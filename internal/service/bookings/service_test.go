package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	bookingRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/booking"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	updatedStatus *domain.BookingStatus
	cancelled     bool
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	// Копируем, чтобы мутации домена не меняли "хранилище" до сохранения
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.ResourceID != filter.ResourceID {
			continue
		}
		if !filter.IncludeInactive && b.IsCancelled() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	r.updatedStatus = &status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason *string, cancelledAt time.Time) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &cancelledAt
	r.cancelled = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testWindow(t *testing.T) domain.Window {
	t.Helper()

	start, err := time.Parse(time.RFC3339, "2026-06-01T00:00:00Z")
	require.NoError(t, err)
	return domain.Window{Start: start, End: start.Add(48 * time.Hour)}
}

func pendingBooking(t *testing.T, id, userID int64) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:         id,
		ResourceID: 10,
		UserID:     userID,
		Window:     testWindow(t),
		Spaces:     2,
		Status:     domain.StatusPending,
	}
}

func TestService_GetByID_OwnershipCheck(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(t, 1, 42))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Чужое бронирование недоступно
	_, err = svc.GetByID(context.Background(), 1, 99)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 777, 42)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Confirm_FromPending(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(t, 1, 42))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1, &models.ConfirmBookingRequest{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
}

func TestService_Confirm_FromCancelled(t *testing.T) {
	booking := pendingBooking(t, 1, 42)
	booking.Status = domain.StatusCancelled

	repo := newFakeBookingRepo(booking)
	svc := NewService(repo, nopLogger{})

	// Отмена терминальна: подтверждение отмененного бронирования невозможно
	_, err := svc.Confirm(context.Background(), 1, &models.ConfirmBookingRequest{UserID: 42})
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, repo.updatedStatus)
}

func TestService_Cancel_Success(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(t, 1, 42))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "изменились планы",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)

	stored := repo.bookings[1]
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	require.NotNil(t, stored.CancellationReason)
	assert.Equal(t, "изменились планы", *stored.CancellationReason)
	assert.NotNil(t, stored.CancelledAt)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	booking := pendingBooking(t, 1, 42)
	booking.Status = domain.StatusCancelled

	repo := newFakeBookingRepo(booking)
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})
	require.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelled)
}

func TestService_Cancel_AccessDenied(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(t, 1, 42))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 99})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelled)
}

func TestService_GetUserBookings_StatusFilter(t *testing.T) {
	confirmed := pendingBooking(t, 2, 42)
	confirmed.Status = domain.StatusConfirmed

	repo := newFakeBookingRepo(pendingBooking(t, 1, 42), confirmed, pendingBooking(t, 3, 99))
	svc := NewService(repo, nopLogger{})

	status := "confirmed"
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)

	// Неизвестный статус отклоняется до похода в репозиторий
	bad := "unknown"
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: &bad,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
