package report_overbookings

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

func TestUseCase_Execute_FindsOverbookedPeriods(t *testing.T) {
	resource := &domain.Resource{
		ID:            10,
		Title:         "Конференц-зал А",
		Capacity:      5,
		PricingPeriod: domain.PeriodDay,
	}

	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-04T00:00:00Z")

	// Второй день перебронирован: 8 мест при емкости 5
	bookings := []*domain.Booking{
		{
			ID:         1,
			ResourceID: 10,
			Window:     mustWindow(t, "2026-06-02T00:00:00Z", "2026-06-03T00:00:00Z"),
			Spaces:     8,
			Status:     domain.StatusConfirmed,
		},
		{
			ID:         2,
			ResourceID: 10,
			Window:     mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z"),
			Spaces:     3,
			Status:     domain.StatusPending,
		},
	}

	uc := newTestUseCase(resource, bookings, nil)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 10, Window: window})
	require.NoError(t, err)

	require.Len(t, resp.Overbookings, 1)

	ob := resp.Overbookings[0]
	assert.Equal(t, mustWindow(t, "2026-06-02T00:00:00Z", "2026-06-03T00:00:00Z"), ob.Window)
	assert.Equal(t, 5, ob.EffectiveCapacity)
	assert.Equal(t, 8, ob.BookedSpaces)
	assert.Equal(t, -3, ob.RemainingSpaces)
}

func TestUseCase_Execute_AllocationCausesOverbooking(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 10, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-03T00:00:00Z")

	// Ручная резервация снижает емкость под уже принятые бронирования
	allocations := []*domain.Allocation{
		{
			ID:         1,
			ResourceID: 10,
			Window:     mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z"),
			Quantity:   7,
			Mode:       domain.ModeReserve,
		},
	}

	bookings := []*domain.Booking{
		{
			ID:         1,
			ResourceID: 10,
			Window:     mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-02T00:00:00Z"),
			Spaces:     5,
			Status:     domain.StatusConfirmed,
		},
	}

	uc := newTestUseCase(resource, bookings, allocations)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 10, Window: window})
	require.NoError(t, err)

	require.Len(t, resp.Overbookings, 1)
	assert.Equal(t, 3, resp.Overbookings[0].EffectiveCapacity)
	assert.Equal(t, -2, resp.Overbookings[0].RemainingSpaces)
}

func TestUseCase_Execute_NoOverbookings(t *testing.T) {
	resource := &domain.Resource{ID: 10, Capacity: 10, PricingPeriod: domain.PeriodDay}
	window := mustWindow(t, "2026-06-01T00:00:00Z", "2026-06-03T00:00:00Z")

	bookings := []*domain.Booking{
		{ID: 1, ResourceID: 10, Window: window, Spaces: 10, Status: domain.StatusConfirmed},
	}

	uc := newTestUseCase(resource, bookings, nil)

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 10, Window: window})
	require.NoError(t, err)

	// Полная загрузка без превышения - не овербукинг
	assert.Empty(t, resp.Overbookings)
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
