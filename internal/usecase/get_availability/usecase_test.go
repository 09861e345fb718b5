package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	resourceRepo "github.com/dmtrv/BRS-AvailabilityService/internal/infra/storage/resource"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
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

func newTestUseCase(resource *domain.Resource, bookings []*domain.Booking, allocations []*domain.Allocation) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeResourceRepo{resource: resource},
		&fakeAllocationRepo{allocations: allocations},
		nopLogger{},
	)
}

func TestUseCase_Execute_SlicesByPricingPeriod(t *testing.T) {
	resource := &domain.Resource{
		ID:            10,
		Title:         "Конференц-зал А",
		Capacity:      10,
		PricingPeriod: domain.PeriodDay,
	}

	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-04T00:00:00Z")

	// Бронирование занимает только первый день окна
	bookings := []*domain.Booking{
		{
			ID:         1,
			ResourceID: 10,
			Window:     mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z"),
			Spaces:     4,
			Status:     domain.StatusConfirmed,
		},
	}

	uc := newTestUseCase(resource, bookings, nil)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 10, Window: window})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.EffectiveCapacity)
	assert.Equal(t, 4, resp.BookedSpaces)
	assert.Equal(t, 6, resp.RemainingSpaces)
	assert.Equal(t, 6, resp.AvailableSpaces)
	assert.False(t, resp.Overbooked)
	assert.Equal(t, 3, resp.PeriodCount)

	require.Len(t, resp.Slices, 3)
	assert.Equal(t, 4, resp.Slices[0].BookedSpaces)
	assert.Equal(t, 6, resp.Slices[0].RemainingSpaces)
	// Бронирование первого дня не затрагивает остальные периоды
	assert.Equal(t, 0, resp.Slices[1].BookedSpaces)
	assert.Equal(t, 10, resp.Slices[1].RemainingSpaces)
	assert.Equal(t, 0, resp.Slices[2].BookedSpaces)
}

func TestUseCase_Execute_OverbookedWindow(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 5, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")

	bookings := []*domain.Booking{
		{ID: 1, ResourceID: 10, Window: window, Spaces: 8, Status: domain.StatusConfirmed},
	}

	uc := newTestUseCase(resource, bookings, nil)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 10, Window: window})
	require.NoError(t, err)

	// Остаток не обрезается, презентационное поле - обрезается
	assert.Equal(t, -3, resp.RemainingSpaces)
	assert.Equal(t, 0, resp.AvailableSpaces)
	assert.True(t, resp.Overbooked)

	require.Len(t, resp.Slices, 1)
	assert.True(t, resp.Slices[0].Overbooked)
}

func TestUseCase_Execute_AllocationsApplied(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 10, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-03T00:00:00Z")

	// Резервация затрагивает только первый день
	allocations := []*domain.Allocation{
		{
			ID:         1,
			ResourceID: 10,
			Window:     mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z"),
			Quantity:   4,
			Mode:       domain.ModeReserve,
		},
	}

	uc := newTestUseCase(resource, nil, allocations)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 10, Window: window})
	require.NoError(t, err)

	require.Len(t, resp.Slices, 2)
	assert.Equal(t, 6, resp.Slices[0].EffectiveCapacity)
	assert.Equal(t, 10, resp.Slices[1].EffectiveCapacity)

	// По всему окну аллокация применяется целиком (без пропорционального деления)
	assert.Equal(t, 6, resp.EffectiveCapacity)
}

func TestUseCase_Execute_EmptyWindow(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 10, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-01T00:00:00Z")

	uc := newTestUseCase(resource, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 10, Window: window})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.PeriodCount)
	require.Len(t, resp.Slices, 1)
	assert.True(t, resp.Slices[0].Window.IsEmpty())
}

func TestUseCase_Execute_ResourceNotFound(t *testing.T) {
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")

	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 999, Window: window})
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUseCase_Execute_InvalidRange(t *testing.T) {
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z")

	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID: 10,
		Window:     domain.Window{Start: window.End, End: window.Start},
	})
	require.ErrorIs(t, err, ErrInvalidRange)
}
