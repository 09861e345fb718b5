package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

func (r *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, nil
}

type fakeResourceRepo struct {
	resource *domain.Resource
}

func (r *fakeResourceRepo) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	if r.resource == nil || r.resource.ID != id {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return r.resource, nil
}

type fakeAllocationRepo struct {
	allocations []*domain.Allocation
}

func (r *fakeAllocationRepo) GetByResourceOverlapping(_ context.Context, _ int64, _ domain.Window) ([]*domain.Allocation, error) {
	return r.allocations, nil
}

// fakeTxManager выполняет функцию напрямую, без транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustWindow(t *testing.T, start, end string) domain.Window {
	t.Helper()

	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)

	w, err := domain.NewWindow(s, e)
	require.NoError(t, err)
	return w
}

func newTestUseCase(resource *domain.Resource, bookings []*domain.Booking, allocations []*domain.Allocation) (*UseCase, *fakeBookingRepo, *fakeTxManager) {
	bookingRepo := &fakeBookingRepo{bookings: bookings, nextID: 100}
	txManager := &fakeTxManager{}
	uc := NewUseCase(
		bookingRepo,
		&fakeResourceRepo{resource: resource},
		&fakeAllocationRepo{allocations: allocations},
		txManager,
		nopLogger{},
	)
	return uc, bookingRepo, txManager
}

func TestUseCase_Execute_Success(t *testing.T) {
	resource := &domain.Resource{
		ID:            10,
		Title:         "Конференц-зал А",
		Capacity:      10,
		PricingPeriod: domain.PeriodDay,
	}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-03T00:00:00Z")

	existing := []*domain.Booking{
		{ID: 1, ResourceID: 10, Window: window, Spaces: 4, Status: domain.StatusConfirmed},
		{ID: 2, ResourceID: 10, Window: window, Spaces: 3, Status: domain.StatusPending},
	}

	uc, bookingRepo, txManager := newTestUseCase(resource, existing, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 10,
		Window:     window,
		Spaces:     3,
		Reference:  ptr.Ptr("ORDER-1017"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 3, resp.Spaces)
	assert.Equal(t, "ORDER-1017", ptr.Value(resp.Reference))
	// Остаток до создания был 10 - 7 = 3, после создания - 0
	assert.Equal(t, 0, resp.RemainingSpaces)

	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
	assert.Equal(t, int64(42), bookingRepo.created.UserID)

	// Проверка остатка и вставка идут внутри одной транзакции
	assert.Equal(t, 1, txManager.calls)
}

func TestUseCase_Execute_NotEnoughSpaces(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 10, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")

	existing := []*domain.Booking{
		{ID: 1, ResourceID: 10, Window: window, Spaces: 8, Status: domain.StatusConfirmed},
	}

	uc, bookingRepo, _ := newTestUseCase(resource, existing, nil)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 10,
		Window:     window,
		Spaces:     3,
	})
	require.ErrorIs(t, err, ErrNotEnoughSpaces)

	// При отказе бронирование не создается
	assert.Nil(t, bookingRepo.created)
}

func TestUseCase_Execute_AllocateAllBlocksWindow(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 10, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")

	// Полная резервация окна обнуляет эффективную емкость
	allocations := []*domain.Allocation{
		{ID: 1, ResourceID: 10, Window: window, Mode: domain.ModeAllocateAll},
	}

	uc, _, _ := newTestUseCase(resource, nil, allocations)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 10,
		Window:     window,
		Spaces:     1,
	})
	require.ErrorIs(t, err, ErrNotEnoughSpaces)
}

func TestUseCase_Execute_ResourceNotFound(t *testing.T) {
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")

	uc, _, txManager := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 999,
		Window:     window,
		Spaces:     1,
	})
	require.ErrorIs(t, err, ErrResourceNotFound)

	// До транзакции дело не доходит
	assert.Equal(t, 0, txManager.calls)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 10, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")
	emptyWindow := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-01T00:00:00Z")

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "zero user id",
			req:     &Request{UserID: 0, ResourceID: 10, Window: window, Spaces: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero resource id",
			req:     &Request{UserID: 42, ResourceID: 0, Window: window, Spaces: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero spaces",
			req:     &Request{UserID: 42, ResourceID: 10, Window: window, Spaces: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty window",
			req:     &Request{UserID: 42, ResourceID: 10, Window: emptyWindow, Spaces: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name: "end before start",
			req: &Request{
				UserID:     42,
				ResourceID: 10,
				Window: domain.Window{
					Start: window.End,
					End:   window.Start,
				},
				Spaces: 1,
			},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUseCase(resource, nil, nil)

			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_CancelledBookingsIgnored(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 5, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")

	// Отмененное бронирование не занимает мест
	existing := []*domain.Booking{
		{ID: 1, ResourceID: 10, Window: window, Spaces: 5, Status: domain.StatusCancelled},
	}

	uc, _, _ := newTestUseCase(resource, existing, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     42,
		ResourceID: 10,
		Window:     window,
		Spaces:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.RemainingSpaces)
}
