package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

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

func testResource(capacity int) *domain.Resource {
	return &domain.Resource{
		ID:            10,
		Title:         "Конференц-зал А",
		Capacity:      capacity,
		PricingPeriod: domain.PeriodDay,
	}
}

func activeBooking(t *testing.T, id int64, spaces int, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:         id,
		ResourceID: 10,
		Window:     mustWindow(t, start, end),
		Spaces:     spaces,
		Status:     domain.StatusConfirmed,
	}
}

func TestEffectiveCapacity(t *testing.T) {
	resource := testResource(10)
	window := mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-15T00:00:00Z")

	tests := []struct {
		name        string
		allocations []*domain.Allocation
		want        int
	}{
		{
			name:        "no allocations",
			allocations: nil,
			want:        10,
		},
		{
			name: "increase adds quantity",
			allocations: []*domain.Allocation{
				{ResourceID: 10, Window: window, Quantity: 5, Mode: domain.ModeIncrease},
			},
			want: 15,
		},
		{
			name: "reserve subtracts quantity",
			allocations: []*domain.Allocation{
				{ResourceID: 10, Window: window, Quantity: 4, Mode: domain.ModeReserve},
			},
			want: 6,
		},
		{
			name: "allocate_all consumes full base capacity",
			allocations: []*domain.Allocation{
				{ResourceID: 10, Window: window, Quantity: 1, Mode: domain.ModeAllocateAll},
			},
			want: 0,
		},
		{
			name: "allocate_all then increase applied in deterministic order",
			allocations: []*domain.Allocation{
				{ResourceID: 10, Window: window, Quantity: 3, Mode: domain.ModeIncrease},
				{ResourceID: 10, Window: window, Quantity: 0, Mode: domain.ModeAllocateAll},
			},
			want: 3,
		},
		{
			name: "result clamped at zero",
			allocations: []*domain.Allocation{
				{ResourceID: 10, Window: window, Quantity: 25, Mode: domain.ModeReserve},
			},
			want: 0,
		},
		{
			name: "partially overlapping allocation applies whole quantity",
			allocations: []*domain.Allocation{
				// Пересекает только один день окна запроса, но применяется целиком
				{ResourceID: 10, Window: mustWindow(t, "2025-06-14T00:00:00Z", "2025-06-20T00:00:00Z"), Quantity: 4, Mode: domain.ModeReserve},
			},
			want: 6,
		},
		{
			name: "abutting allocation does not apply",
			allocations: []*domain.Allocation{
				{ResourceID: 10, Window: mustWindow(t, "2025-06-15T00:00:00Z", "2025-06-20T00:00:00Z"), Quantity: 4, Mode: domain.ModeReserve},
			},
			want: 10,
		},
		{
			name: "allocation for another resource ignored",
			allocations: []*domain.Allocation{
				{ResourceID: 99, Window: window, Quantity: 4, Mode: domain.ModeReserve},
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveCapacity(resource, window, tt.allocations))
		})
	}
}

func TestBookedQuantity(t *testing.T) {
	window := mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-15T00:00:00Z")

	t.Run("sums active overlapping bookings", func(t *testing.T) {
		bookings := []*domain.Booking{
			activeBooking(t, 1, 4, "2025-06-09T00:00:00Z", "2025-06-11T00:00:00Z"),
			activeBooking(t, 2, 3, "2025-06-12T00:00:00Z", "2025-06-13T00:00:00Z"),
		}
		assert.Equal(t, 7, BookedQuantity(10, window, bookings))
	})

	t.Run("cancelled booking contributes zero", func(t *testing.T) {
		cancelled := activeBooking(t, 3, 100, "2025-06-10T00:00:00Z", "2025-06-15T00:00:00Z")
		cancelled.Status = domain.StatusCancelled

		assert.Equal(t, 0, BookedQuantity(10, window, []*domain.Booking{cancelled}))
	})

	t.Run("pending bookings count", func(t *testing.T) {
		pending := activeBooking(t, 4, 2, "2025-06-10T00:00:00Z", "2025-06-11T00:00:00Z")
		pending.Status = domain.StatusPending

		assert.Equal(t, 2, BookedQuantity(10, window, []*domain.Booking{pending}))
	})

	t.Run("non-overlapping booking ignored", func(t *testing.T) {
		outside := activeBooking(t, 5, 4, "2025-06-15T00:00:00Z", "2025-06-16T00:00:00Z")
		assert.Equal(t, 0, BookedQuantity(10, window, []*domain.Booking{outside}))
	})

	t.Run("other resource ignored", func(t *testing.T) {
		other := activeBooking(t, 6, 4, "2025-06-10T00:00:00Z", "2025-06-11T00:00:00Z")
		other.ResourceID = 99
		assert.Equal(t, 0, BookedQuantity(10, window, []*domain.Booking{other}))
	})
}

func TestRemainingSpaces(t *testing.T) {
	resource := testResource(10)
	window := mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-15T00:00:00Z")

	bookings := []*domain.Booking{
		activeBooking(t, 1, 4, "2025-06-09T00:00:00Z", "2025-06-11T00:00:00Z"),
		activeBooking(t, 2, 3, "2025-06-12T00:00:00Z", "2025-06-13T00:00:00Z"),
	}

	t.Run("capacity 10 with bookings 4 and 3 leaves 3", func(t *testing.T) {
		assert.Equal(t, 7, BookedQuantity(resource.ID, window, bookings))
		assert.Equal(t, 3, RemainingSpaces(resource, window, nil, bookings))
		assert.False(t, IsOverbooked(resource, window, nil, bookings))
	})

	t.Run("allocate_all drives remaining negative", func(t *testing.T) {
		allocations := []*domain.Allocation{
			{ResourceID: 10, Window: window, Mode: domain.ModeAllocateAll},
		}

		assert.Equal(t, 0, EffectiveCapacity(resource, window, allocations))
		assert.Equal(t, -7, RemainingSpaces(resource, window, allocations, bookings))
		assert.True(t, IsOverbooked(resource, window, allocations, bookings))
	})

	t.Run("definitional identity remaining == effective - booked", func(t *testing.T) {
		allocations := []*domain.Allocation{
			{ResourceID: 10, Window: window, Quantity: 2, Mode: domain.ModeReserve},
			{ResourceID: 10, Window: window, Quantity: 5, Mode: domain.ModeIncrease},
		}

		got := RemainingSpaces(resource, window, allocations, bookings)
		want := EffectiveCapacity(resource, window, allocations) - BookedQuantity(resource.ID, window, bookings)
		assert.Equal(t, want, got)
	})

	t.Run("cancellation never decreases availability", func(t *testing.T) {
		before := RemainingSpaces(resource, window, nil, bookings)

		cancelled := *bookings[0]
		require.NoError(t, cancelled.MarkCancelled("", time.Now()))
		after := RemainingSpaces(resource, window, nil, []*domain.Booking{&cancelled, bookings[1]})

		assert.GreaterOrEqual(t, after, before)
	})
}

func TestFindOverbooked(t *testing.T) {
	resource := testResource(2)
	window := mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-12T00:00:00Z")

	okLine := Line{
		Resource: resource,
		Window:   window,
		Bookings: []*domain.Booking{activeBooking(t, 1, 2, "2025-06-10T00:00:00Z", "2025-06-12T00:00:00Z")},
	}
	badLine := Line{
		Resource: resource,
		Window:   window,
		Bookings: []*domain.Booking{activeBooking(t, 2, 5, "2025-06-10T00:00:00Z", "2025-06-12T00:00:00Z")},
	}

	t.Run("full booking is not overbooking", func(t *testing.T) {
		// Ровно заполненный ресурс (остаток 0) перебронированным не считается
		assert.Empty(t, FindOverbooked([]Line{okLine}))
	})

	t.Run("returns only oversubscribed pairs", func(t *testing.T) {
		got := FindOverbooked([]Line{okLine, badLine})
		require.Len(t, got, 1)
		assert.Equal(t, badLine.Bookings[0].ID, got[0].Bookings[0].ID)
	})
}
